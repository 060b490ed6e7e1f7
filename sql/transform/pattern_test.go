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

package transform_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ShashwatArghode/presto/sql"
	"github.com/ShashwatArghode/presto/sql/transform"
)

func TestAnyMatchesEverything(t *testing.T) {
	require.True(t, transform.Any()(node("a"), transform.NewCaptures()))
	require.True(t, transform.Any()(node("z", node("x")), transform.NewCaptures()))
}

func TestNodeIsMatchesConcreteType(t *testing.T) {
	var l sql.Node = node("a")
	require.True(t, transform.NodeIs[*leaf]()(l, transform.NewCaptures()))
}

func TestAllRequiresEverySubPattern(t *testing.T) {
	isLeaf := transform.NodeIs[*leaf]()
	isTaggedA := transform.Where(func(n sql.Node) bool { return n.(*leaf).tag == "a" })

	c := transform.NewCaptures()
	require.True(t, transform.All(isLeaf, isTaggedA)(node("a"), c))
	require.False(t, transform.All(isLeaf, isTaggedA)(node("b"), c))
}

func TestWhereWrapsStructuralPredicate(t *testing.T) {
	hasTwoChildren := transform.Where(func(n sql.Node) bool { return len(n.Sources()) == 2 })

	require.True(t, hasTwoChildren(node("a", node("b"), node("c")), transform.NewCaptures()))
	require.False(t, hasTwoChildren(node("a", node("b")), transform.NewCaptures()))
}

func TestSourceResolvesThroughLookupBeforeMatching(t *testing.T) {
	inner := node("b")
	outer := node("a", inner)

	lookup := sql.IdentityLookup{}
	matchesB := transform.Source(lookup, 0, transform.Where(func(n sql.Node) bool { return n.(*leaf).tag == "b" }))

	require.True(t, matchesB(outer, transform.NewCaptures()))
	require.False(t, matchesB(node("a"), transform.NewCaptures()))
}

func TestSourceRejectsOutOfRangeIndex(t *testing.T) {
	lookup := sql.IdentityLookup{}
	matchesAnything := transform.Source(lookup, 0, transform.Any())

	require.False(t, matchesAnything(node("a"), transform.NewCaptures()))
}

func TestCaptureNodeBindsOnMatch(t *testing.T) {
	p := transform.CaptureNode("n", transform.NodeIs[*leaf]())
	c := transform.NewCaptures()
	n := node("a")

	require.True(t, p(n, c))
	require.Same(t, n, c.Nodes["n"])
}

func TestCaptureNodeDoesNotBindOnMismatch(t *testing.T) {
	p := transform.CaptureNode("n", transform.Where(func(n sql.Node) bool { return n.(*leaf).tag == "nope" }))
	c := transform.NewCaptures()

	require.False(t, p(node("a"), c))
	_, ok := c.Nodes["n"]
	require.False(t, ok)
}
