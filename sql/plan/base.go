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

// Package plan holds the rooted DAG of polymorphic plan nodes enumerated in
// the design's data model (§3): Project, Filter, Aggregation, Union,
// Intersect, Except, Join, AssignUniqueId, Apply and LateralJoin, plus a
// minimal Scan leaf standing in for a base relation.
package plan

import (
	"fmt"

	"github.com/ShashwatArghode/presto/sql"
	"github.com/ShashwatArghode/presto/sql/expression"
)

func init() {
	sql.RegisterVariantNamer(VariantName)
}

// VariantName names a node's concrete Go type for diagnostics and for the
// sql.Lookup cycle guard, without sql needing to import plan.
func VariantName(n sql.Node) string {
	switch n.(type) {
	case *Project:
		return "Project"
	case *Filter:
		return "Filter"
	case *Aggregation:
		return "Aggregation"
	case *Union:
		return "Union"
	case *Intersect:
		return "Intersect"
	case *Except:
		return "Except"
	case *Join:
		return "Join"
	case *AssignUniqueID:
		return "AssignUniqueId"
	case *Apply:
		return "Apply"
	case *LateralJoin:
		return "LateralJoin"
	case *Scan:
		return "Scan"
	default:
		return fmt.Sprintf("%T", n)
	}
}

// IdentityAssignments returns, for every variable in vars, the identity
// binding v -> SymRef(v). Used whenever a Project must pass a set of
// variables through unchanged (§4.3 step 2, §4.4 step 6).
func IdentityAssignments(vars []sql.Variable) sql.Assignments {
	out := make(sql.Assignments, len(vars))
	for i, v := range vars {
		out[i] = sql.Assignment{Variable: v, Expression: expression.NewSymRef(v)}
	}
	return out
}
