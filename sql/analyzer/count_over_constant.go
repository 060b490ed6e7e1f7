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

// SimplifyCountOverConstantRule is §4.5: count(c) over a projected
// non-null constant becomes count(*), which lets downstream execution skip
// a per-row null check it can never fail.
var SimplifyCountOverConstantRule = transform.Rule{
	Name:    "SimplifyCountOverConstant",
	Pattern: transform.All(transform.NodeIs[*plan.Aggregation](), hasProjectSource),
	Apply:   applySimplifyCountOverConstant,
}

func hasProjectSource(n sql.Node, _ *transform.Captures) bool {
	agg := n.(*plan.Aggregation)
	_, ok := agg.Source.(*plan.Project)
	return ok
}

func applySimplifyCountOverConstant(rctx *sql.Context, n sql.Node, _ *transform.Captures) (sql.Node, transform.TreeIdentity, error) {
	agg := n.(*plan.Aggregation)
	project := agg.Source.(*plan.Project)

	changed := false
	newEntries := make([]plan.AggregationBinding, len(agg.Entries))
	for i, binding := range agg.Entries {
		newEntries[i] = binding
		if !rctx.Functions.IsCount(binding.Entry.Function) || len(binding.Entry.Arguments) != 1 {
			continue
		}
		if !isNonNullConstant(binding.Entry.Arguments[0], project) {
			continue
		}
		newEntries[i] = plan.AggregationBinding{
			Variable: binding.Variable,
			Entry: sql.AggregationEntry{
				Function: rctx.Functions.CountStar(),
				Filter:   binding.Entry.Filter,
				Distinct: binding.Entry.Distinct,
				Mask:     binding.Entry.Mask,
			},
		}
		changed = true
	}
	if !changed {
		return n, transform.SameTree, nil
	}
	return agg.WithEntries(newEntries), transform.NewTree, nil
}

// isNonNullConstant reports whether arg is, directly, a non-null literal,
// or a SymRef bound by project to a non-null literal (§4.5).
func isNonNullConstant(arg sql.Expression, project *plan.Project) bool {
	if expression.IsNonNullLiteral(arg) {
		return true
	}
	ref, ok := expression.AsSymRef(arg)
	if !ok {
		return false
	}
	bound, ok := project.Assignments.Get(ref.Var)
	if !ok {
		return false
	}
	return expression.IsNonNullLiteral(bound)
}
