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
	"strings"

	"github.com/ShashwatArghode/presto/sql"
)

// Project computes Assignments over Source. Its output variables are the
// keys of Assignments, in insertion order.
type Project struct {
	id          sql.PlanNodeID
	Source      sql.Node
	Assignments sql.Assignments
}

var _ sql.Node = (*Project)(nil)

func NewProject(id sql.PlanNodeID, source sql.Node, assignments sql.Assignments) *Project {
	return &Project{id: id, Source: source, Assignments: assignments}
}

func (p *Project) ID() sql.PlanNodeID      { return p.id }
func (p *Project) Outputs() []sql.Variable { return p.Assignments.Vars() }
func (p *Project) Sources() []sql.Node     { return []sql.Node{p.Source} }

func (p *Project) WithSources(sources ...sql.Node) sql.Node {
	if len(sources) != 1 {
		panic("plan.Project: WithSources expects exactly one source")
	}
	return NewProject(p.id, sources[0], p.Assignments)
}

// WithAssignments returns a copy of p with a new assignment list, same
// source and id.
func (p *Project) WithAssignments(assignments sql.Assignments) *Project {
	return NewProject(p.id, p.Source, assignments)
}

func (p *Project) String() string {
	parts := make([]string, len(p.Assignments))
	for i, a := range p.Assignments {
		parts[i] = fmt.Sprintf("%s := %s", a.Variable, a.Expression)
	}
	return fmt.Sprintf("Project[%s]", strings.Join(parts, ", "))
}
