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

// Filter passes through Source's rows that satisfy Predicate. Its outputs
// are exactly Source's outputs.
type Filter struct {
	id        sql.PlanNodeID
	Source    sql.Node
	Predicate sql.Expression
}

var _ sql.Node = (*Filter)(nil)

func NewFilter(id sql.PlanNodeID, source sql.Node, predicate sql.Expression) *Filter {
	return &Filter{id: id, Source: source, Predicate: predicate}
}

func (f *Filter) ID() sql.PlanNodeID      { return f.id }
func (f *Filter) Outputs() []sql.Variable { return f.Source.Outputs() }
func (f *Filter) Sources() []sql.Node     { return []sql.Node{f.Source} }

func (f *Filter) WithSources(sources ...sql.Node) sql.Node {
	if len(sources) != 1 {
		panic("plan.Filter: WithSources expects exactly one source")
	}
	return NewFilter(f.id, sources[0], f.Predicate)
}

func (f *Filter) String() string {
	return fmt.Sprintf("Filter[%s]", f.Predicate)
}
