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
	"fmt"

	"github.com/ShashwatArghode/presto/sql"
	"github.com/ShashwatArghode/presto/sql/expression"
	"github.com/ShashwatArghode/presto/sql/plan"
	"github.com/ShashwatArghode/presto/sql/transform"
)

// ImplementIntersectAsUnionRule and ImplementExceptAsUnionRule are §4.4:
// both handle their set operation identically up to the final predicate.
var (
	ImplementIntersectAsUnionRule = transform.Rule{
		Name:    "ImplementIntersectAsUnion",
		Pattern: transform.NodeIs[*plan.Intersect](),
		Apply:   applyIntersectAsUnion,
	}
	ImplementExceptAsUnionRule = transform.Rule{
		Name:    "ImplementExceptAsUnion",
		Pattern: transform.NodeIs[*plan.Except](),
		Apply:   applyExceptAsUnion,
	}
)

func applyIntersectAsUnion(rctx *sql.Context, n sql.Node, _ *transform.Captures) (sql.Node, transform.TreeIdentity, error) {
	in := n.(*plan.Intersect)
	result := rewriteSetOpAsUnion(rctx, in.Sources(), in.Mapping, intersectFilter)
	return result, transform.NewTree, nil
}

func applyExceptAsUnion(rctx *sql.Context, n sql.Node, _ *transform.Captures) (sql.Node, transform.TreeIdentity, error) {
	ex := n.(*plan.Except)
	result := rewriteSetOpAsUnion(rctx, ex.Sources(), ex.Mapping, exceptFilter)
	return result, transform.NewTree, nil
}

// filterBuilder builds the post-aggregation filter predicate for one kind
// of set operation, given the per-branch count variables in source order.
type filterBuilder func(counts []sql.Variable) sql.Expression

func intersectFilter(counts []sql.Variable) sql.Expression {
	preds := make([]sql.Expression, len(counts))
	for i, c := range counts {
		preds[i] = expression.NewCompare(expression.Gte, expression.NewSymRef(c), expression.NewLongLiteral(1))
	}
	return expression.AndAll(preds)
}

func exceptFilter(counts []sql.Variable) sql.Expression {
	preds := make([]sql.Expression, 0, len(counts))
	preds = append(preds, expression.NewCompare(expression.Gte, expression.NewSymRef(counts[0]), expression.NewLongLiteral(1)))
	for _, c := range counts[1:] {
		preds = append(preds, expression.NewCompare(expression.Eq, expression.NewSymRef(c), expression.NewLongLiteral(0)))
	}
	return expression.AndAll(preds)
}

// rewriteSetOpAsUnion implements the shared §4.4 construction: sources are
// already rewritten bottom-up by the driver, so nested set operations are
// fully expanded by the time this runs.
func rewriteSetOpAsUnion(rctx *sql.Context, sources []sql.Node, mapping []plan.SetOpMapping, buildFilter filterBuilder) sql.Node {
	n := len(sources)
	outputs := make([]sql.Variable, len(mapping))
	for i, m := range mapping {
		outputs[i] = m.OutVar
	}

	markers := make([]sql.Variable, n)
	for i := range markers {
		markers[i] = rctx.Symbols.NewVariable(fmt.Sprintf("marker_%d", i+1), sql.Boolean)
	}

	// 2. One Project per source: rename outputs to fresh per-source
	// variables at the same positions, set this source's marker true and
	// every other marker to a typed null.
	perSourceVars := make([][]sql.Variable, n)
	projected := make([]sql.Node, n)
	for i, src := range sources {
		assignments := make(sql.Assignments, 0, len(mapping)+n)
		perSourceVars[i] = make([]sql.Variable, len(mapping))
		for j, m := range mapping {
			fresh := rctx.Symbols.NewVariable(m.OutVar.Name, m.OutVar.Type)
			perSourceVars[i][j] = fresh
			assignments = append(assignments, sql.Assignment{Variable: fresh, Expression: expression.NewSymRef(m.Inputs[i])})
		}
		for k, marker := range markers {
			var expr sql.Expression
			if k == i {
				expr = expression.NewBoolLiteral(true)
			} else {
				expr = expression.NewNullLiteral(sql.Boolean)
			}
			assignments = append(assignments, sql.Assignment{Variable: marker, Expression: expr})
		}
		projected[i] = plan.NewProject(rctx.IDs.NextID(), src, assignments)
	}

	// 3. Union of the n projected sources.
	unionMapping := make([]plan.SetOpMapping, 0, len(outputs)+n)
	for j, out := range outputs {
		inputs := make([]sql.Variable, n)
		for i := range sources {
			inputs[i] = perSourceVars[i][j]
		}
		unionMapping = append(unionMapping, plan.SetOpMapping{OutVar: out, Inputs: inputs})
	}
	for _, marker := range markers {
		inputs := make([]sql.Variable, n)
		for i := range sources {
			inputs[i] = marker
		}
		unionMapping = append(unionMapping, plan.SetOpMapping{OutVar: marker, Inputs: inputs})
	}
	union := plan.NewUnion(rctx.IDs.NextID(), projected, unionMapping)

	// 4. Aggregation grouped by the set-operation outputs, counting markers.
	counts := make([]sql.Variable, n)
	entries := make([]plan.AggregationBinding, n)
	for i, marker := range markers {
		counts[i] = rctx.Symbols.NewVariable(fmt.Sprintf("count_%d", i+1), sql.Bigint)
		entries[i] = plan.AggregationBinding{
			Variable: counts[i],
			Entry: sql.AggregationEntry{
				Function:  rctx.Functions.CountArg(),
				Arguments: []sql.Expression{expression.NewSymRef(marker)},
			},
		}
	}
	agg := plan.NewAggregation(rctx.IDs.NextID(), union, outputs, entries)

	// 5. Filter using the per-kind predicate builder.
	filtered := plan.NewFilter(rctx.IDs.NextID(), agg, buildFilter(counts))

	// 6. Final projection selecting only the original outputs.
	return plan.NewProject(rctx.IDs.NextID(), filtered, plan.IdentityAssignments(outputs))
}
