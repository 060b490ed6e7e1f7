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

package analyzer

import (
	"github.com/ShashwatArghode/presto/sql"
	"github.com/ShashwatArghode/presto/sql/expression"
	"github.com/ShashwatArghode/presto/sql/plan"
	"github.com/ShashwatArghode/presto/sql/transform"
)

// TransformCorrelatedInPredicateToJoinRule is §4.3: rewrites
// `x IN (correlated subquery)` into a left-outer-join plus a case-analysis
// aggregation that reproduces SQL's three-valued IN semantics.
var TransformCorrelatedInPredicateToJoinRule = transform.Rule{
	Name:    "TransformCorrelatedInPredicateToJoin",
	Pattern: transform.NodeIs[*plan.Apply](),
	Apply:   applyCorrelatedInToJoin,
}

func applyCorrelatedInToJoin(rctx *sql.Context, n sql.Node, _ *transform.Captures) (sql.Node, transform.TreeIdentity, error) {
	apply := n.(*plan.Apply)
	if !apply.IsCorrelated() {
		return n, transform.SameTree, nil
	}
	if len(apply.SubqueryAssignments) != 1 {
		return n, transform.SameTree, nil
	}
	o := apply.SubqueryAssignments[0].Variable
	v, b, ok := expression.AsScalarSubqueryIn(apply.SubqueryAssignments[0].Expression)
	if !ok {
		return n, transform.SameTree, nil
	}

	decorrelated, ok := Decorrelate(rctx, apply.Subquery, apply.Correlation)
	if !ok {
		return n, transform.SameTree, nil
	}

	A := apply.Input
	B := decorrelated.DecorrelatedNode
	P := decorrelated.CorrelatedPredicates

	// 1. Tag each probe row with a fresh identity.
	uniqueVar := rctx.Symbols.NewVariable("unique", sql.Bigint)
	probeSide := plan.NewAssignUniqueID(rctx.IDs.NextID(), A, uniqueVar)

	// 2. Append a known-non-null constant column on the build side.
	buildSideKnownNonNull := rctx.Symbols.NewVariable("build_side_known_non_null", sql.Bigint)
	buildAssignments := plan.IdentityAssignments(B.Outputs()).
		With(buildSideKnownNonNull, expression.NewCast(expression.NewLongLiteral(0), sql.Bigint))
	buildSide := plan.NewProject(rctx.IDs.NextID(), B, buildAssignments)

	// 3. Left join probeSide to buildSide.
	valueRef := expression.NewSymRef(v)
	listRef := expression.NewSymRef(b)
	joinFilter := expression.NewAnd(
		expression.NewOr(
			expression.NewIsNull(valueRef),
			expression.NewOr(expression.NewEquals(valueRef, listRef), expression.NewIsNull(listRef)),
		),
		expression.AndAll(P),
	)
	joinOutputs := append(append([]sql.Variable{}, probeSide.Outputs()...), buildSide.Outputs()...)
	join := plan.NewJoin(rctx.IDs.NextID(), plan.Left, probeSide, buildSide, nil, joinOutputs, joinFilter)

	// 4. Group by probeSide's outputs, computing the two filtered counts.
	matchCond := expression.NewAnd(expression.NewIsNotNull(valueRef), expression.NewIsNotNull(listRef))
	countMatchesVar := rctx.Symbols.NewVariable("count_matches", sql.Bigint)
	countMatches := plan.AggregationBinding{
		Variable: countMatchesVar,
		Entry: sql.AggregationEntry{
			Function: rctx.Functions.CountStar(),
			Filter:   matchCond,
		},
	}
	countNullMatchesVar := rctx.Symbols.NewVariable("count_null_matches", sql.Bigint)
	countNullMatches := plan.AggregationBinding{
		Variable: countNullMatchesVar,
		Entry: sql.AggregationEntry{
			Function: rctx.Functions.CountStar(),
			Filter: expression.NewAnd(
				expression.NewIsNotNull(expression.NewSymRef(buildSideKnownNonNull)),
				expression.NewNot(matchCond),
			),
		},
	}
	agg := plan.NewAggregation(rctx.IDs.NextID(), join, probeSide.Outputs(), []plan.AggregationBinding{countMatches, countNullMatches})

	// 5. Project the original input columns plus o bound to the case.
	caseExpr := expression.NewSearchedCase([]expression.When{
		{Cond: expression.NewCompare(expression.Gt, expression.NewSymRef(countMatchesVar), expression.NewLongLiteral(0)), Result: expression.NewBoolLiteral(true)},
		{Cond: expression.NewCompare(expression.Gt, expression.NewSymRef(countNullMatchesVar), expression.NewLongLiteral(0)), Result: expression.NewNullLiteral(sql.Boolean)},
	}, expression.NewBoolLiteral(false))

	finalAssignments := plan.IdentityAssignments(A.Outputs()).With(o, caseExpr)
	result := plan.NewProject(rctx.IDs.NextID(), agg, finalAssignments)

	return result, transform.NewTree, nil
}
