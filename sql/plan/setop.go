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

// SetOpMapping binds each set-operation output variable to the variable
// that carries it on each source, positionally: Inputs[i] is source i's
// variable feeding OutVar.
type SetOpMapping struct {
	OutVar sql.Variable
	Inputs []sql.Variable
}

// setOp is the shared shape of Union, Intersect and Except: an ordered list
// of sources and an output mapping. The three spec variants differ only in
// the relational-algebra meaning the set-operation rewrite (§4.4,
// analyzer.ImplementIntersectAsUnionRule and ImplementExceptAsUnionRule)
// assigns them; Union additionally appears as the *output* of that rewrite.
type setOp struct {
	id      sql.PlanNodeID
	Sources_ []sql.Node
	Mapping []SetOpMapping
}

func (s *setOp) ID() sql.PlanNodeID { return s.id }

func (s *setOp) Outputs() []sql.Variable {
	out := make([]sql.Variable, len(s.Mapping))
	for i, m := range s.Mapping {
		out[i] = m.OutVar
	}
	return out
}

func (s *setOp) Sources() []sql.Node { return s.Sources_ }

func (s *setOp) checkArity(sources []sql.Node) {
	if len(sources) != len(s.Sources_) {
		panic(fmt.Sprintf("plan: set operation WithSources expects %d sources, got %d", len(s.Sources_), len(sources)))
	}
}

// Union is the n-ary union-all of its sources with marker columns carried
// through Mapping like any other output; deduplication, if any, is made
// explicit elsewhere (the rewriters in this module only ever produce
// union-all, per §4.4 step 3).
type Union struct{ setOp }

var _ sql.Node = (*Union)(nil)

func NewUnion(id sql.PlanNodeID, sources []sql.Node, mapping []SetOpMapping) *Union {
	return &Union{setOp{id: id, Sources_: sources, Mapping: mapping}}
}

func (u *Union) WithSources(sources ...sql.Node) sql.Node {
	u.checkArity(sources)
	return NewUnion(u.id, sources, u.Mapping)
}

func (u *Union) String() string { return "Union" }

// Intersect produces rows present in every source, per standard SQL
// INTERSECT DISTINCT semantics. Eliminated by analyzer.ImplementIntersectAsUnionRule.
type Intersect struct{ setOp }

var _ sql.Node = (*Intersect)(nil)

func NewIntersect(id sql.PlanNodeID, sources []sql.Node, mapping []SetOpMapping) *Intersect {
	return &Intersect{setOp{id: id, Sources_: sources, Mapping: mapping}}
}

func (i *Intersect) WithSources(sources ...sql.Node) sql.Node {
	i.checkArity(sources)
	return NewIntersect(i.id, sources, i.Mapping)
}

func (i *Intersect) String() string { return "Intersect" }

// Except produces rows present in the first source but not in any other,
// per standard SQL EXCEPT DISTINCT semantics. Eliminated by
// analyzer.ImplementExceptAsUnionRule.
type Except struct{ setOp }

var _ sql.Node = (*Except)(nil)

func NewExcept(id sql.PlanNodeID, sources []sql.Node, mapping []SetOpMapping) *Except {
	return &Except{setOp{id: id, Sources_: sources, Mapping: mapping}}
}

func (e *Except) WithSources(sources ...sql.Node) sql.Node {
	e.checkArity(sources)
	return NewExcept(e.id, sources, e.Mapping)
}

func (e *Except) String() string { return "Except" }
