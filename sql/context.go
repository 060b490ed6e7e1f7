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

import (
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
)

// FunctionResolution resolves the handful of well-known functions the
// rewriters need to recognize or synthesize (§6).
type FunctionResolution interface {
	CountStar() FunctionHandle
	CountArg() FunctionHandle
	IsCount(h FunctionHandle) bool
}

// Cardinality answers the one structural question the lateral-join rewriter
// needs: can this node be proven to produce exactly one row for any input?
type Cardinality interface {
	IsScalar(n Node, lookup Lookup) bool
}

// TypeProvider resolves a variable's declared type (§6).
type TypeProvider interface {
	Get(v Variable) Type
}

// Context bundles the per-query allocators and the read-only, shared
// environment handles every rule needs (§5: allocators are per-query and
// not required to be thread-safe; environment handles are read-only and
// may be shared across concurrently-planning queries).
type Context struct {
	Symbols   *SymbolAllocator
	IDs       *IDAllocator
	Lookup    Lookup
	Types     TypeProvider
	Functions FunctionResolution
	Card      Cardinality

	Log    *logrus.Entry
	Tracer opentracing.Tracer
}

// NewContext builds a Context with fresh per-query allocators. log and
// tracer may be nil, in which case a discard logger and the global no-op
// tracer are used, so callers (and tests) never need to wire observability
// just to run a rewrite.
func NewContext(lookup Lookup, types TypeProvider, funcs FunctionResolution, card Cardinality, log *logrus.Entry, tracer opentracing.Tracer) *Context {
	if lookup == nil {
		lookup = IdentityLookup{}
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(discardWriter{})
		log = logrus.NewEntry(l)
	}
	if tracer == nil {
		tracer = opentracing.NoopTracer{}
	}
	return &Context{
		Symbols:   NewSymbolAllocator(),
		IDs:       NewIDAllocator(),
		Lookup:    lookup,
		Types:     types,
		Functions: funcs,
		Card:      card,
		Log:       log,
		Tracer:    tracer,
	}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
