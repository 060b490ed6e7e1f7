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

import "github.com/mitchellh/hashstructure"

// Lookup is the indirection layer rewriters traverse a plan through. In a
// memo-backed optimizer a child may be an opaque group reference; Resolve
// returns the canonical concrete node for it. IdentityLookup (below) is
// correct whenever there is no memo.
type Lookup interface {
	Resolve(n Node) Node
}

// IdentityLookup is the Lookup used whenever the plan is a plain tree with
// no memo, i.e. every node is already concrete. Resolve is the identity.
type IdentityLookup struct{}

func (IdentityLookup) Resolve(n Node) Node { return n }

// GuardedLookup wraps another Lookup and adds a cheap structural-repeat
// guard: if resolving the same node id in immediate succession yields a
// fingerprint identical to the one just seen, it is a self-referential
// group reference (a memo cycle) rather than progress, and that is an
// internal-consistency violation (§7.2), not a plan to keep walking.
//
// This only guards against the single most common memo bug (a group
// reference that resolves to itself); it is not a general cycle detector
// and is cheap enough to wrap every resolve call.
type GuardedLookup struct {
	inner    Lookup
	lastID   PlanNodeID
	lastHash uint64
	primed   bool
}

func NewGuardedLookup(inner Lookup) *GuardedLookup {
	return &GuardedLookup{inner: inner}
}

func (g *GuardedLookup) Resolve(n Node) Node {
	resolved := g.inner.Resolve(n)
	h, err := hashstructure.Hash(fingerprint(resolved), nil)
	if err != nil {
		// hashstructure only fails on unsupported field types; our
		// fingerprint is plain data, so this is unreachable in practice.
		return resolved
	}
	if g.primed && g.lastID == resolved.ID() && g.lastHash == h && resolved == n {
		panic(NewInternalConsistencyError("lookup.Resolve did not make progress on node " + resolved.String()))
	}
	g.lastID, g.lastHash, g.primed = resolved.ID(), h, true
	return resolved
}

type planFingerprint struct {
	ID       PlanNodeID
	Variant  string
	NumKids  int
	Outputs  []string
}

func fingerprint(n Node) planFingerprint {
	outs := make([]string, len(n.Outputs()))
	for i, v := range n.Outputs() {
		outs[i] = v.Name
	}
	return planFingerprint{
		ID:      n.ID(),
		Variant: variantName(n),
		NumKids: len(n.Sources()),
		Outputs: outs,
	}
}

// variantName is filled in by the plan package via RegisterVariantNamer,
// since sql cannot import plan (plan imports sql). Falls back to the
// constant "node" when no namer is registered.
var variantNamer func(Node) string

// RegisterVariantNamer lets package plan teach sql how to name a node's
// variant for fingerprinting, without sql importing plan.
func RegisterVariantNamer(f func(Node) string) { variantNamer = f }

func variantName(n Node) string {
	if variantNamer != nil {
		return variantNamer(n)
	}
	return "node"
}
