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
	"github.com/ShashwatArghode/presto/sql/plan"
	"github.com/ShashwatArghode/presto/sql/transform"
)

// RemoveUnreferencedScalarLateralNodesRule is §4.6: elides a lateral join
// whose one side contributes no referenced columns and is statically
// scalar. It does not re-check the removed side for side effects beyond
// producing rows; that side is silently discarded, matching the behavior
// of the system this is modeled on (§9 open question).
var RemoveUnreferencedScalarLateralNodesRule = transform.Rule{
	Name:    "RemoveUnreferencedScalarLateralNodes",
	Pattern: transform.NodeIs[*plan.LateralJoin](),
	Apply:   applyRemoveUnreferencedScalarLateral,
}

func applyRemoveUnreferencedScalarLateral(rctx *sql.Context, n sql.Node, _ *transform.Captures) (sql.Node, transform.TreeIdentity, error) {
	lj := n.(*plan.LateralJoin)
	input := rctx.Lookup.Resolve(lj.Input)
	subquery := rctx.Lookup.Resolve(lj.Subquery)

	if len(input.Outputs()) == 0 && rctx.Card.IsScalar(input, rctx.Lookup) {
		return subquery, transform.NewTree, nil
	}
	if len(subquery.Outputs()) == 0 && rctx.Card.IsScalar(subquery, rctx.Lookup) {
		return input, transform.NewTree, nil
	}
	return n, transform.SameTree, nil
}
