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

package plan_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ShashwatArghode/presto/sql"
	"github.com/ShashwatArghode/presto/sql/plan"
	"github.com/ShashwatArghode/presto/sql/plantest"
)

func TestAggregationOutputsGroupingSetThenEntries(t *testing.T) {
	rctx := plantest.NewContext()
	a := plantest.Var("a", sql.Bigint)
	cnt := plantest.Var("cnt", sql.Bigint)
	scan := plantest.Scan(rctx, "t", a)

	agg := plan.NewAggregation(rctx.IDs.NextID(), scan, []sql.Variable{a}, []plan.AggregationBinding{
		{Variable: cnt, Entry: sql.AggregationEntry{Function: rctx.Functions.CountStar()}},
	})

	require.Equal(t, []sql.Variable{a, cnt}, agg.Outputs())
	require.Equal(t, sql.Single, agg.Step)
}

func TestAggregationWithEntriesPreservesGroupingSet(t *testing.T) {
	rctx := plantest.NewContext()
	a := plantest.Var("a", sql.Bigint)
	cnt := plantest.Var("cnt", sql.Bigint)
	scan := plantest.Scan(rctx, "t", a)

	agg := plan.NewAggregation(rctx.IDs.NextID(), scan, []sql.Variable{a}, []plan.AggregationBinding{
		{Variable: cnt, Entry: sql.AggregationEntry{Function: rctx.Functions.CountStar()}},
	})

	distinctEntry := sql.AggregationEntry{Function: rctx.Functions.CountStar(), Distinct: true}
	updated := agg.WithEntries([]plan.AggregationBinding{{Variable: cnt, Entry: distinctEntry}})

	require.Equal(t, []sql.Variable{a}, updated.GroupingSet)
	require.True(t, updated.Entries[0].Entry.Distinct)
	require.False(t, agg.Entries[0].Entry.Distinct, "original Aggregation must be untouched")
}

func TestAggregationWithSourcesArityPanics(t *testing.T) {
	rctx := plantest.NewContext()
	a := plantest.Var("a", sql.Bigint)
	scan := plantest.Scan(rctx, "t", a)
	agg := plan.NewAggregation(rctx.IDs.NextID(), scan, nil, nil)

	require.Panics(t, func() {
		agg.WithSources(scan, scan)
	})
}
