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
	"github.com/ShashwatArghode/presto/sql/transform"
)

// TestSimplifyCountOverConstantRewritesLiteralArgument is S1: count(1) over
// a row set becomes count(*).
func TestSimplifyCountOverConstantRewritesLiteralArgument(t *testing.T) {
	rctx := plantest.NewContext()
	a := plantest.Var("a", sql.Bigint)
	one := plantest.Var("one", sql.Bigint)
	cnt := plantest.Var("cnt", sql.Bigint)
	scan := plantest.Scan(rctx, "t", a)

	project := plan.NewProject(rctx.IDs.NextID(), scan, sql.Assignments{
		{Variable: one, Expression: expression.NewLongLiteral(1)},
	})
	agg := plan.NewAggregation(rctx.IDs.NextID(), project, nil, []plan.AggregationBinding{
		{Variable: cnt, Entry: sql.AggregationEntry{
			Function:  rctx.Functions.CountArg(),
			Arguments: []sql.Expression{expression.NewSymRef(one)},
		}},
	})

	c := transform.NewCaptures()
	require.True(t, analyzer.SimplifyCountOverConstantRule.Pattern(agg, c))

	result, identity, err := analyzer.SimplifyCountOverConstantRule.Apply(rctx, agg, c)
	require.NoError(t, err)
	require.Equal(t, transform.NewTree, identity)

	rewritten := result.(*plan.Aggregation)
	require.Empty(t, rewritten.Entries[0].Entry.Arguments)
	require.True(t, rctx.Functions.IsCount(rewritten.Entries[0].Entry.Function))
}

// TestSimplifyCountOverConstantLeavesNullArgumentAlone is S2: count(NULL)
// is never count(*) (NULL rows would be excluded, count(*) would not).
func TestSimplifyCountOverConstantLeavesNullArgumentAlone(t *testing.T) {
	rctx := plantest.NewContext()
	a := plantest.Var("a", sql.Bigint)
	nullCol := plantest.Var("n", sql.Bigint)
	cnt := plantest.Var("cnt", sql.Bigint)
	scan := plantest.Scan(rctx, "t", a)

	project := plan.NewProject(rctx.IDs.NextID(), scan, sql.Assignments{
		{Variable: nullCol, Expression: expression.NewNullLiteral(sql.Bigint)},
	})
	agg := plan.NewAggregation(rctx.IDs.NextID(), project, nil, []plan.AggregationBinding{
		{Variable: cnt, Entry: sql.AggregationEntry{
			Function:  rctx.Functions.CountArg(),
			Arguments: []sql.Expression{expression.NewSymRef(nullCol)},
		}},
	})

	c := transform.NewCaptures()
	result, identity, err := analyzer.SimplifyCountOverConstantRule.Apply(rctx, agg, c)
	require.NoError(t, err)
	require.Equal(t, transform.SameTree, identity)
	require.Same(t, agg, result)
}

func TestSimplifyCountOverConstantPatternRejectsNonProjectSource(t *testing.T) {
	rctx := plantest.NewContext()
	a := plantest.Var("a", sql.Bigint)
	cnt := plantest.Var("cnt", sql.Bigint)
	scan := plantest.Scan(rctx, "t", a)

	agg := plan.NewAggregation(rctx.IDs.NextID(), scan, nil, []plan.AggregationBinding{
		{Variable: cnt, Entry: sql.AggregationEntry{Function: rctx.Functions.CountStar()}},
	})

	require.False(t, analyzer.SimplifyCountOverConstantRule.Pattern(agg, transform.NewCaptures()))
}
