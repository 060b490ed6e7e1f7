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
)

// CheckSubqueryNodesAreRewritten is §4.7: after the driver reaches a fixed
// point, no Apply or LateralJoin may remain. A correlated node that
// survived means every rewriter declined; an uncorrelated one reaching
// here is an internal-consistency failure, since all non-correlated
// variants must have been rewritten by earlier passes owned by the
// parser/analyzer layer upstream of this module.
func CheckSubqueryNodesAreRewritten(rctx *sql.Context, root sql.Node) error {
	return walkForSubqueryNodes(rctx, root)
}

func walkForSubqueryNodes(rctx *sql.Context, n sql.Node) error {
	if n == nil {
		return nil
	}
	resolved := rctx.Lookup.Resolve(n)

	switch v := resolved.(type) {
	case *plan.Apply:
		if !v.IsCorrelated() {
			return sql.NewInternalConsistencyError("uncorrelated Apply node reached the verifier: " + v.String())
		}
		rctx.Log.WithField("node", v.String()).Error("correlated subquery not rewritten")
		return sql.NewCorrelatedSubqueryError(v.OriginSubqueryError)
	case *plan.LateralJoin:
		if !v.IsCorrelated() {
			return sql.NewInternalConsistencyError("uncorrelated LateralJoin node reached the verifier: " + v.String())
		}
		rctx.Log.WithField("node", v.String()).Error("correlated subquery not rewritten")
		return sql.NewCorrelatedSubqueryError(v.OriginSubqueryError)
	}

	for _, child := range resolved.Sources() {
		if err := walkForSubqueryNodes(rctx, child); err != nil {
			return err
		}
	}
	return nil
}
