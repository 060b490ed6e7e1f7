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

// TestImplementIntersectAsUnionProducesUnionAggFilterProject is S3: two
// one-column sources INTERSECTed rewrite into Project(Filter(Aggregation(Union(...)))).
func TestImplementIntersectAsUnionProducesUnionAggFilterProject(t *testing.T) {
	rctx := plantest.NewContext()
	a := plantest.Var("a", sql.Bigint)
	s1 := plantest.Scan(rctx, "s1", a)
	s2 := plantest.Scan(rctx, "s2", a)

	mapping := []plan.SetOpMapping{{OutVar: a, Inputs: []sql.Variable{a, a}}}
	in := plan.NewIntersect(rctx.IDs.NextID(), []sql.Node{s1, s2}, mapping)

	c := transform.NewCaptures()
	require.True(t, analyzer.ImplementIntersectAsUnionRule.Pattern(in, c))

	result, identity, err := analyzer.ImplementIntersectAsUnionRule.Apply(rctx, in, c)
	require.NoError(t, err)
	require.Equal(t, transform.NewTree, identity)

	project, ok := result.(*plan.Project)
	require.True(t, ok)
	require.Equal(t, []sql.Variable{a}, project.Outputs())

	filter, ok := project.Source.(*plan.Filter)
	require.True(t, ok)

	agg, ok := filter.Source.(*plan.Aggregation)
	require.True(t, ok)
	require.Equal(t, []sql.Variable{a}, agg.GroupingSet)
	require.Len(t, agg.Entries, 2, "one count per source branch")

	_, ok = agg.Source.(*plan.Union)
	require.True(t, ok)
}

// TestImplementExceptAsUnionProducesSameShape is S4: the EXCEPT variant
// shares the Union/Aggregation/Filter/Project shape with a different
// post-aggregation predicate.
func TestImplementExceptAsUnionProducesSameShape(t *testing.T) {
	rctx := plantest.NewContext()
	a := plantest.Var("a", sql.Bigint)
	s1 := plantest.Scan(rctx, "s1", a)
	s2 := plantest.Scan(rctx, "s2", a)

	mapping := []plan.SetOpMapping{{OutVar: a, Inputs: []sql.Variable{a, a}}}
	ex := plan.NewExcept(rctx.IDs.NextID(), []sql.Node{s1, s2}, mapping)

	c := transform.NewCaptures()
	result, identity, err := analyzer.ImplementExceptAsUnionRule.Apply(rctx, ex, c)
	require.NoError(t, err)
	require.Equal(t, transform.NewTree, identity)

	project := result.(*plan.Project)
	filter := project.Source.(*plan.Filter)
	agg := filter.Source.(*plan.Aggregation)
	require.Len(t, agg.Entries, 2)
}
