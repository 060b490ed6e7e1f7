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

// JoinKind is one of the four join kinds §3 enumerates.
type JoinKind int

const (
	Inner JoinKind = iota
	Left
	Right
	Full
)

func (k JoinKind) String() string {
	switch k {
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	case Full:
		return "FULL"
	default:
		return "INNER"
	}
}

// JoinCriterion is one equality condition of Join.Criteria.
type JoinCriterion struct {
	Left, Right sql.Variable
}

// Join is an explicit-output join between Left and Right. Filter is an
// optional residual predicate beyond the equi-join Criteria (used by
// TransformCorrelatedInPredicateToJoin's three-valued-IN filter, §4.3).
type Join struct {
	id       sql.PlanNodeID
	Kind     JoinKind
	LeftSrc  sql.Node
	RightSrc sql.Node
	Criteria []JoinCriterion
	Outs     []sql.Variable
	Filter   sql.Expression // optional, nil if none
}

var _ sql.Node = (*Join)(nil)

func NewJoin(id sql.PlanNodeID, kind JoinKind, left, right sql.Node, criteria []JoinCriterion, outputs []sql.Variable, filter sql.Expression) *Join {
	return &Join{id: id, Kind: kind, LeftSrc: left, RightSrc: right, Criteria: criteria, Outs: outputs, Filter: filter}
}

func (j *Join) ID() sql.PlanNodeID      { return j.id }
func (j *Join) Outputs() []sql.Variable { return j.Outs }
func (j *Join) Sources() []sql.Node     { return []sql.Node{j.LeftSrc, j.RightSrc} }

func (j *Join) WithSources(sources ...sql.Node) sql.Node {
	if len(sources) != 2 {
		panic("plan.Join: WithSources expects exactly two sources")
	}
	return NewJoin(j.id, j.Kind, sources[0], sources[1], j.Criteria, j.Outs, j.Filter)
}

func (j *Join) String() string {
	return fmt.Sprintf("%sJoin[filter=%v]", j.Kind, j.Filter)
}
