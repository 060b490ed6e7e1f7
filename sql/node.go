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

package sql

// PlanNodeID identifies a plan node uniquely within one query's plan.
// Produced only by IDAllocator.NextID; never reused, never guessed.
type PlanNodeID int64

// Node is a plan node: a rooted DAG of polymorphic, immutable operators.
// Every variant in §3 of the design implements Node. Rewrites never mutate
// a Node in place; they build a new one sharing unchanged children.
type Node interface {
	// ID is this node's stable identity.
	ID() PlanNodeID
	// Outputs is the ordered list of variables this node produces.
	Outputs() []Variable
	// Sources is the ordered list of this node's child plan nodes. Leaves
	// return nil.
	Sources() []Node
	// WithSources returns a copy of this node with its children replaced
	// positionally. len(sources) must equal len(Sources()).
	WithSources(sources ...Node) Node
	// String renders the node (not its subtree) for diagnostics.
	String() string
}

// Assignment is one binding in a Project's ordered assignment list.
type Assignment struct {
	Variable   Variable
	Expression Expression
}

// Assignments is an ordered Variable -> Expression mapping, as used by
// Project and by the per-branch projections set-operation rewriting builds.
type Assignments []Assignment

// Vars returns the ordered list of bound variables.
func (a Assignments) Vars() []Variable {
	out := make([]Variable, len(a))
	for i, e := range a {
		out[i] = e.Variable
	}
	return out
}

// Get returns the expression bound to v, and whether v is bound at all.
func (a Assignments) Get(v Variable) (Expression, bool) {
	for _, e := range a {
		if e.Variable.Name == v.Name {
			return e.Expression, true
		}
	}
	return nil, false
}

// With returns a copy of a with (v -> expr) appended or replacing an
// existing binding for v, preserving original position on replace.
func (a Assignments) With(v Variable, expr Expression) Assignments {
	out := make(Assignments, len(a))
	copy(out, a)
	for i, e := range out {
		if e.Variable.Name == v.Name {
			out[i].Expression = expr
			return out
		}
	}
	return append(out, Assignment{Variable: v, Expression: expr})
}

// AggStep enumerates aggregation execution steps. Only SINGLE is exercised
// by the rewriters in this module; the others are carried for fidelity with
// the modeled system's richer pipeline (partial/intermediate/final steps
// used by distributed execution, out of scope here).
type AggStep int

const (
	Single AggStep = iota
	Partial
	Intermediate
	Final
)

func (s AggStep) String() string {
	switch s {
	case Partial:
		return "PARTIAL"
	case Intermediate:
		return "INTERMEDIATE"
	case Final:
		return "FINAL"
	default:
		return "SINGLE"
	}
}

// FunctionHandle identifies a resolved function (only "count" is exercised
// directly by the rewriters; other handles are opaque).
type FunctionHandle struct {
	Name string
}

// AggregationEntry is one aggregate computed by an Aggregation node.
type AggregationEntry struct {
	Function  FunctionHandle
	Arguments []Expression
	Filter    Expression // optional, nil if none
	Distinct  bool
	Mask      *Variable // optional FILTER-mask variable
}

func (e AggregationEntry) References() []string {
	var out []string
	seen := map[string]struct{}{}
	add := func(names []string) {
		for _, n := range names {
			if _, ok := seen[n]; !ok {
				seen[n] = struct{}{}
				out = append(out, n)
			}
		}
	}
	for _, arg := range e.Arguments {
		add(arg.References())
	}
	if e.Filter != nil {
		add(e.Filter.References())
	}
	return out
}
