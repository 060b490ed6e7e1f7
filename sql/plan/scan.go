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

// Scan is a leaf standing in for a base relation (a resolved table, a
// values list, anything a real parser/analyzer would hand the rewriters as
// already-resolved input). It carries only a name and its output
// variables; it has no rows, per §1's exclusion of the physical executor.
type Scan struct {
	id      sql.PlanNodeID
	Name    string
	Outs    []sql.Variable
}

var _ sql.Node = (*Scan)(nil)

func NewScan(id sql.PlanNodeID, name string, outputs []sql.Variable) *Scan {
	return &Scan{id: id, Name: name, Outs: outputs}
}

func (s *Scan) ID() sql.PlanNodeID     { return s.id }
func (s *Scan) Outputs() []sql.Variable { return s.Outs }
func (s *Scan) Sources() []sql.Node    { return nil }

func (s *Scan) WithSources(sources ...sql.Node) sql.Node {
	if len(sources) != 0 {
		panic("plan.Scan: WithSources called with non-zero sources")
	}
	return s
}

func (s *Scan) String() string {
	return fmt.Sprintf("Scan[%s]", s.Name)
}
