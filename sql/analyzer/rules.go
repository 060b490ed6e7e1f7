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
	"context"

	"github.com/ShashwatArghode/presto/sql"
	"github.com/ShashwatArghode/presto/sql/transform"
)

// Rules returns the five rules of the four rewriters (§4.3-§4.6; §4.4
// contributes one rule for INTERSECT and one for EXCEPT) in the
// deterministic order the driver (§4.1) requires. The verifier is not
// among them; Optimize runs it after the driver. Ordering here mirrors
// the order the design narrative introduces them in; any total order is sound, since a rule's
// pattern determines which node variant it fires on and no two rules ever
// compete for the same node shape.
func Rules() []transform.Rule {
	return []transform.Rule{
		TransformCorrelatedInPredicateToJoinRule,
		ImplementIntersectAsUnionRule,
		ImplementExceptAsUnionRule,
		SimplifyCountOverConstantRule,
		RemoveUnreferencedScalarLateralNodesRule,
	}
}

// Optimize runs the full pipeline: the rewrite driver to a fixed point,
// then the post-condition verifier (§4.7). This is the one entry point
// downstream physical planning needs (§6).
func Optimize(rctx *sql.Context, root sql.Node) (sql.Node, error) {
	return optimize(rctx, root, false)
}

// OptimizeWithIdempotenceCheck is Optimize, plus the self-check described
// in SPEC_FULL §12: it asserts a second driver pass over the fixed point is
// a no-op before verifying. Intended for tests, not hot-path planning.
func OptimizeWithIdempotenceCheck(rctx *sql.Context, root sql.Node) (sql.Node, error) {
	return optimize(rctx, root, true)
}

func optimize(rctx *sql.Context, root sql.Node, checkIdempotence bool) (sql.Node, error) {
	driver := transform.NewDriver(Rules()...)

	var rewritten sql.Node
	var err error
	if checkIdempotence {
		rewritten, err = driver.RunWithIdempotenceCheck(rctx, context.Background(), root)
	} else {
		rewritten, err = driver.Run(rctx, context.Background(), root)
	}
	if err != nil {
		return nil, err
	}

	if err := CheckSubqueryNodesAreRewritten(rctx, rewritten); err != nil {
		return nil, err
	}
	return rewritten, nil
}
