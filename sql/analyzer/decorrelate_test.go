// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ShashwatArghode/presto/sql"
	"github.com/ShashwatArghode/presto/sql/analyzer"
	"github.com/ShashwatArghode/presto/sql/expression"
	"github.com/ShashwatArghode/presto/sql/plan"
	"github.com/ShashwatArghode/presto/sql/plantest"
)

func TestDecorrelateHoistsFilterPredicateOutOfSubquery(t *testing.T) {
	rctx := plantest.NewContext()
	outer := plantest.Var("outer_a", sql.Bigint)
	b := plantest.Var("b", sql.Bigint)
	scan := plantest.Scan(rctx, "inner", b)

	predicate := expression.NewEquals(expression.NewSymRef(b), expression.NewSymRef(outer))
	filter := plan.NewFilter(rctx.IDs.NextID(), scan, predicate)

	result, ok := analyzer.Decorrelate(rctx, filter, []sql.Variable{outer})
	require.True(t, ok)
	require.Same(t, scan, result.DecorrelatedNode, "Filter node itself is dropped")
	require.Len(t, result.CorrelatedPredicates, 1)
	require.Same(t, predicate, result.CorrelatedPredicates[0])
}

func TestDecorrelateGivesUpOnShallowCorrelatedProject(t *testing.T) {
	rctx := plantest.NewContext()
	outer := plantest.Var("outer_a", sql.Bigint)
	b := plantest.Var("b", sql.Bigint)
	scan := plantest.Scan(rctx, "inner", b)

	project := plan.NewProject(rctx.IDs.NextID(), scan, sql.Assignments{
		{Variable: b, Expression: expression.NewSymRef(outer)},
	})

	_, ok := analyzer.Decorrelate(rctx, project, []sql.Variable{outer})
	require.False(t, ok)
}

func TestDecorrelateAugmentsProjectWithIdentityBindingsForHoistedPredicateVars(t *testing.T) {
	rctx := plantest.NewContext()
	outer := plantest.Var("outer_a", sql.Bigint)
	b := plantest.Var("b", sql.Bigint)
	c := plantest.Var("c", sql.Bigint)
	scan := plantest.Scan(rctx, "inner", b, c)

	predicate := expression.NewEquals(expression.NewSymRef(c), expression.NewSymRef(outer))
	filter := plan.NewFilter(rctx.IDs.NextID(), scan, predicate)
	project := plan.NewProject(rctx.IDs.NextID(), filter, sql.Assignments{
		{Variable: b, Expression: expression.NewSymRef(b)},
	})

	result, ok := analyzer.Decorrelate(rctx, project, []sql.Variable{outer})
	require.True(t, ok)

	replacement, ok := result.DecorrelatedNode.(*plan.Project)
	require.True(t, ok)
	require.NotEqual(t, project.ID(), replacement.ID(), "replacement must get a fresh id, not reuse the original project's")

	_, bound := replacement.Assignments.Get(c)
	require.True(t, bound, "c must be carried through so the hoisted predicate can still reference it above")
}

func TestDecorrelateGivesUpWhenDefaultNodeReferencesCorrelationRecursively(t *testing.T) {
	rctx := plantest.NewContext()
	outer := plantest.Var("outer_a", sql.Bigint)
	b := plantest.Var("b", sql.Bigint)
	scan := plantest.Scan(rctx, "inner", b)

	join := plan.NewJoin(rctx.IDs.NextID(), plan.Inner, scan, scan,
		[]plan.JoinCriterion{{Left: b, Right: outer}}, []sql.Variable{b}, nil)

	_, ok := analyzer.Decorrelate(rctx, join, []sql.Variable{outer})
	require.False(t, ok)
}

func TestDecorrelateSucceedsOnUncorrelatedDefaultNode(t *testing.T) {
	rctx := plantest.NewContext()
	outer := plantest.Var("outer_a", sql.Bigint)
	b := plantest.Var("b", sql.Bigint)
	scan := plantest.Scan(rctx, "inner", b)

	result, ok := analyzer.Decorrelate(rctx, scan, []sql.Variable{outer})
	require.True(t, ok)
	require.Same(t, scan, result.DecorrelatedNode)
	require.Empty(t, result.CorrelatedPredicates)
}
