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
	"github.com/ShashwatArghode/presto/sql/plan"
	"github.com/ShashwatArghode/presto/sql/plantest"
	"github.com/ShashwatArghode/presto/sql/transform"
)

// TestRemoveUnreferencedScalarLateralNodesElidesUnreferencedInput is half
// of S6: a scalar, zero-output input side disappears and the subquery
// alone survives.
func TestRemoveUnreferencedScalarLateralNodesElidesUnreferencedInput(t *testing.T) {
	rctx := plantest.NewContext()
	a := plantest.Var("a", sql.Bigint)
	subqueryScan := plantest.Scan(rctx, "t", a)

	// A global Aggregation (empty grouping set) with no bindings: scalar by
	// construction, and its Outputs() is empty, the exact shape the rule
	// matches on the input side.
	zeroOutputScalar := plan.NewAggregation(rctx.IDs.NextID(), subqueryScan, nil, nil)

	b := plantest.Var("b", sql.Bigint)
	subquery := plantest.Scan(rctx, "sub", b)

	lj := plan.NewLateralJoin(rctx.IDs.NextID(), zeroOutputScalar, subquery, nil, "subquery: %s")

	c := transform.NewCaptures()
	require.True(t, analyzer.RemoveUnreferencedScalarLateralNodesRule.Pattern(lj, c))

	result, identity, err := analyzer.RemoveUnreferencedScalarLateralNodesRule.Apply(rctx, lj, c)
	require.NoError(t, err)
	require.Equal(t, transform.NewTree, identity)
	require.Same(t, subquery, result)
}

// TestRemoveUnreferencedScalarLateralNodesElidesUnreferencedSubquery is the
// other half of S6: a scalar, zero-output subquery disappears and the
// input side alone survives.
func TestRemoveUnreferencedScalarLateralNodesElidesUnreferencedSubquery(t *testing.T) {
	rctx := plantest.NewContext()
	a := plantest.Var("a", sql.Bigint)
	input := plantest.Scan(rctx, "t", a)

	b := plantest.Var("b", sql.Bigint)
	subScan := plantest.Scan(rctx, "sub", b)
	zeroOutputSubquery := plan.NewAggregation(rctx.IDs.NextID(), subScan, nil, nil)

	lj := plan.NewLateralJoin(rctx.IDs.NextID(), input, zeroOutputSubquery, nil, "subquery: %s")

	result, identity, err := analyzer.RemoveUnreferencedScalarLateralNodesRule.Apply(rctx, lj, transform.NewCaptures())
	require.NoError(t, err)
	require.Equal(t, transform.NewTree, identity)
	require.Same(t, input, result)
}

func TestRemoveUnreferencedScalarLateralNodesDeclinesWhenNeitherSideQualifies(t *testing.T) {
	rctx := plantest.NewContext()
	a := plantest.Var("a", sql.Bigint)
	b := plantest.Var("b", sql.Bigint)
	input := plantest.Scan(rctx, "t", a)
	subquery := plantest.Scan(rctx, "sub", b)

	lj := plan.NewLateralJoin(rctx.IDs.NextID(), input, subquery, nil, "subquery: %s")

	result, identity, err := analyzer.RemoveUnreferencedScalarLateralNodesRule.Apply(rctx, lj, transform.NewCaptures())
	require.NoError(t, err)
	require.Equal(t, transform.SameTree, identity)
	require.Same(t, lj, result)
}
