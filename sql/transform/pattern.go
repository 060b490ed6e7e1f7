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

package transform

import "github.com/ShashwatArghode/presto/sql"

// Captures is the binding environment a successful Pattern match produces:
// a mapping from capture handle to bound subtree or sub-expression.
type Captures struct {
	Nodes map[string]sql.Node
	Exprs map[string]sql.Expression
}

func NewCaptures() *Captures {
	return &Captures{Nodes: map[string]sql.Node{}, Exprs: map[string]sql.Expression{}}
}

// Pattern is a declarative matcher: a predicate over a candidate node that
// may record captures as a side effect of matching. Patterns compose by
// ordinary function composition (All, Source, NodeIs...).
type Pattern func(n sql.Node, c *Captures) bool

// Any matches every node.
func Any() Pattern { return func(sql.Node, *Captures) bool { return true } }

// NodeIs matches when the candidate's concrete type is exactly T.
func NodeIs[T sql.Node]() Pattern {
	return func(n sql.Node, _ *Captures) bool {
		_, ok := n.(T)
		return ok
	}
}

// All requires every sub-pattern to match the same candidate.
func All(patterns ...Pattern) Pattern {
	return func(n sql.Node, c *Captures) bool {
		for _, p := range patterns {
			if !p(n, c) {
				return false
			}
		}
		return true
	}
}

// Where wraps an arbitrary structural predicate as a Pattern, for the
// "structural-predicate" half of pattern(variant).with(predicate) (§4.1).
func Where(pred func(n sql.Node) bool) Pattern {
	return func(n sql.Node, _ *Captures) bool { return pred(n) }
}

// Source requires the candidate's source at position idx to match
// sourcePattern (resolved through lookup first, so memo group references
// are transparent to the match per §3's Lookup component).
func Source(lookup sql.Lookup, idx int, sourcePattern Pattern) Pattern {
	return func(n sql.Node, c *Captures) bool {
		srcs := n.Sources()
		if idx < 0 || idx >= len(srcs) {
			return false
		}
		resolved := lookup.Resolve(srcs[idx])
		return sourcePattern(resolved, c)
	}
}

// CaptureNode wraps p, binding the matched node under name when p matches.
func CaptureNode(name string, p Pattern) Pattern {
	return func(n sql.Node, c *Captures) bool {
		if !p(n, c) {
			return false
		}
		c.Nodes[name] = n
		return true
	}
}
