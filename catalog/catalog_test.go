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

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ShashwatArghode/presto/catalog"
	"github.com/ShashwatArghode/presto/sql"
	"github.com/ShashwatArghode/presto/sql/plan"
)

func TestFunctionsResolvesCount(t *testing.T) {
	f := catalog.Functions{}
	require.Equal(t, f.CountStar(), f.CountArg())
	require.True(t, f.IsCount(f.CountStar()))
	require.False(t, f.IsCount(sql.FunctionHandle{Name: "sum"}))
}

func TestCardinalityRecognizesGlobalAggregationAsScalar(t *testing.T) {
	card := catalog.Cardinality{}
	lookup := sql.IdentityLookup{}
	a := sql.Variable{Name: "a", Type: sql.Bigint}
	scan := plan.NewScan(1, "t", []sql.Variable{a})

	globalAgg := plan.NewAggregation(2, scan, nil, nil)
	require.True(t, card.IsScalar(globalAgg, lookup))

	groupedAgg := plan.NewAggregation(3, scan, []sql.Variable{a}, nil)
	require.False(t, card.IsScalar(groupedAgg, lookup))
}

func TestCardinalityRecursesThroughProjectAndFilter(t *testing.T) {
	card := catalog.Cardinality{}
	lookup := sql.IdentityLookup{}
	a := sql.Variable{Name: "a", Type: sql.Bigint}
	scan := plan.NewScan(1, "t", []sql.Variable{a})
	globalAgg := plan.NewAggregation(2, scan, nil, nil)
	project := plan.NewProject(3, globalAgg, nil)
	filter := plan.NewFilter(4, project, nil)

	require.True(t, card.IsScalar(filter, lookup))
	require.False(t, card.IsScalar(scan, lookup))
}

func TestTypesFallsBackToVariableTypeThenMap(t *testing.T) {
	types := catalog.Types{"untyped": sql.Boolean}

	typed := sql.Variable{Name: "a", Type: sql.Bigint}
	require.Equal(t, sql.Bigint, types.Get(typed))

	untyped := sql.Variable{Name: "untyped", Type: sql.Other}
	require.Equal(t, sql.Boolean, types.Get(untyped))

	unknown := sql.Variable{Name: "unknown", Type: sql.Other}
	require.Equal(t, sql.Other, types.Get(unknown))
}
