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

// LateralJoin evaluates Subquery once per row of Input, with Subquery
// allowed to reference Input's columns directly (unlike Apply, it carries
// Subquery's full row set rather than a single scalar assignment). Like
// Apply, it must be rewritten away before the verifier (§4.7).
type LateralJoin struct {
	id                  sql.PlanNodeID
	Input               sql.Node
	Subquery            sql.Node
	Correlation         []sql.Variable
	OriginSubqueryError string
}

var _ sql.Node = (*LateralJoin)(nil)

func NewLateralJoin(id sql.PlanNodeID, input, subquery sql.Node, correlation []sql.Variable, originSubqueryError string) *LateralJoin {
	return &LateralJoin{id: id, Input: input, Subquery: subquery, Correlation: correlation, OriginSubqueryError: originSubqueryError}
}

func (l *LateralJoin) ID() sql.PlanNodeID { return l.id }

func (l *LateralJoin) Outputs() []sql.Variable {
	return append(append([]sql.Variable{}, l.Input.Outputs()...), l.Subquery.Outputs()...)
}

func (l *LateralJoin) Sources() []sql.Node { return []sql.Node{l.Input, l.Subquery} }

func (l *LateralJoin) WithSources(sources ...sql.Node) sql.Node {
	if len(sources) != 2 {
		panic("plan.LateralJoin: WithSources expects exactly two sources")
	}
	return NewLateralJoin(l.id, sources[0], sources[1], l.Correlation, l.OriginSubqueryError)
}

func (l *LateralJoin) IsCorrelated() bool { return len(l.Correlation) > 0 }

func (l *LateralJoin) String() string {
	return fmt.Sprintf("LateralJoin[correlation=%v]", l.Correlation)
}
