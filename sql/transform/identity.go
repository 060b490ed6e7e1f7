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

// Package transform holds the generic bottom-up tree-rewrite primitive the
// rewrite driver and every rule build on (§4.1): a NodeFunc visits one node
// and returns either the same node (SameTree) or a replacement (NewTree).
package transform

import "github.com/ShashwatArghode/presto/sql"

// TreeIdentity records whether a transformation changed anything, so a
// parent can propagate "no change" without reallocating, and so the driver
// knows when a pass reached a fixed point.
type TreeIdentity bool

const (
	SameTree TreeIdentity = false
	NewTree  TreeIdentity = true
)

// NodeFunc is applied to one node at a time by Node below.
// A rule's "no change" (§4.1 Result.empty) is (n, SameTree, nil); its
// replacement (§4.1 Result.ofPlanNode) is (replacement, NewTree, nil).
type NodeFunc func(n sql.Node) (sql.Node, TreeIdentity, error)

// Node applies f to every node of the tree rooted at n, bottom-up: children
// are rewritten (and their replacements spliced in) before f is called on
// the parent. Unchanged subtrees are returned by reference, never copied.
func Node(n sql.Node, f NodeFunc) (sql.Node, TreeIdentity, error) {
	if n == nil {
		return n, SameTree, nil
	}

	children := n.Sources()
	same := SameTree
	var newChildren []sql.Node

	if len(children) > 0 {
		newChildren = make([]sql.Node, len(children))
		for i, c := range children {
			newChild, identity, err := Node(c, f)
			if err != nil {
				return nil, SameTree, err
			}
			newChildren[i] = newChild
			if identity == NewTree {
				same = NewTree
			}
		}
	}

	current := n
	if same == NewTree {
		current = n.WithSources(newChildren...)
	}

	newNode, identity, err := f(current)
	if err != nil {
		return nil, SameTree, err
	}
	if identity == NewTree {
		same = NewTree
	}
	return newNode, same, nil
}
