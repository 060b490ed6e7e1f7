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

// AssignUniqueID tags every row of Source with a fresh, row-unique BIGINT
// identity in IDVar. Used by TransformCorrelatedInPredicateToJoin (§4.3)
// to give the probe side a grouping key that survives the outer join.
type AssignUniqueID struct {
	id     sql.PlanNodeID
	Source sql.Node
	IDVar  sql.Variable
}

var _ sql.Node = (*AssignUniqueID)(nil)

func NewAssignUniqueID(id sql.PlanNodeID, source sql.Node, idVar sql.Variable) *AssignUniqueID {
	return &AssignUniqueID{id: id, Source: source, IDVar: idVar}
}

func (a *AssignUniqueID) ID() sql.PlanNodeID { return a.id }

func (a *AssignUniqueID) Outputs() []sql.Variable {
	return append(append([]sql.Variable{}, a.Source.Outputs()...), a.IDVar)
}

func (a *AssignUniqueID) Sources() []sql.Node { return []sql.Node{a.Source} }

func (a *AssignUniqueID) WithSources(sources ...sql.Node) sql.Node {
	if len(sources) != 1 {
		panic("plan.AssignUniqueId: WithSources expects exactly one source")
	}
	return NewAssignUniqueID(a.id, sources[0], a.IDVar)
}

func (a *AssignUniqueID) String() string {
	return fmt.Sprintf("AssignUniqueId[%s]", a.IDVar)
}
