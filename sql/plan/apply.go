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

package plan

import (
	"fmt"

	"github.com/ShashwatArghode/presto/sql"
)

// Apply evaluates Subquery once per row of Input, binding
// SubqueryAssignments alongside Input's own columns. Correlation lists the
// outer-scope variables Subquery depends on; Apply is uncorrelated iff
// Correlation is empty (§3). Every Apply must be rewritten away before the
// verifier (§4.7); OriginSubqueryError is the template used if it is not.
type Apply struct {
	id                  sql.PlanNodeID
	Input               sql.Node
	Subquery            sql.Node
	SubqueryAssignments sql.Assignments
	Correlation         []sql.Variable
	OriginSubqueryError string
}

var _ sql.Node = (*Apply)(nil)

func NewApply(id sql.PlanNodeID, input, subquery sql.Node, subqueryAssignments sql.Assignments, correlation []sql.Variable, originSubqueryError string) *Apply {
	return &Apply{
		id:                  id,
		Input:               input,
		Subquery:            subquery,
		SubqueryAssignments: subqueryAssignments,
		Correlation:         correlation,
		OriginSubqueryError: originSubqueryError,
	}
}

func (a *Apply) ID() sql.PlanNodeID { return a.id }

func (a *Apply) Outputs() []sql.Variable {
	return append(append([]sql.Variable{}, a.Input.Outputs()...), a.SubqueryAssignments.Vars()...)
}

func (a *Apply) Sources() []sql.Node { return []sql.Node{a.Input, a.Subquery} }

func (a *Apply) WithSources(sources ...sql.Node) sql.Node {
	if len(sources) != 2 {
		panic("plan.Apply: WithSources expects exactly two sources")
	}
	return NewApply(a.id, sources[0], sources[1], a.SubqueryAssignments, a.Correlation, a.OriginSubqueryError)
}

// IsCorrelated reports whether this Apply references any outer-scope
// variable, i.e. whether Correlation is non-empty (§3).
func (a *Apply) IsCorrelated() bool { return len(a.Correlation) > 0 }

func (a *Apply) String() string {
	return fmt.Sprintf("Apply[correlation=%v]", a.Correlation)
}
