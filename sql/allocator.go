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

import "fmt"

// SymbolAllocator hands out fresh, collision-free variables. The simplest
// satisfying implementation, per design notes, is a per-query monotonic
// counter appended to the caller's name hint; it is not expected to be
// thread-safe, and must not be shared across queries (§5).
type SymbolAllocator struct {
	next int
}

// NewSymbolAllocator returns an allocator whose counter starts at zero. It
// does not inspect any plan: names are fresh only as long as the input plan
// holds no variable of the form "<hint>_<n>" that the counter can reach.
func NewSymbolAllocator() *SymbolAllocator {
	return &SymbolAllocator{}
}

// NewVariable allocates a fresh typed variable. nameHint appears in the
// generated name for debuggability but carries no semantic meaning.
func (a *SymbolAllocator) NewVariable(nameHint string, typ Type) Variable {
	a.next++
	if nameHint == "" {
		nameHint = "expr"
	}
	return Variable{Name: fmt.Sprintf("%s_%d", nameHint, a.next), Type: typ}
}

// IDAllocator hands out fresh plan-node identities, one per query, never
// reused.
type IDAllocator struct {
	next int64
}

func NewIDAllocator() *IDAllocator {
	return &IDAllocator{}
}

func (a *IDAllocator) NextID() PlanNodeID {
	a.next++
	return PlanNodeID(a.next)
}
