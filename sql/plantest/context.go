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

// Package plantest holds small, shared test-construction helpers used by
// this module's own test suite (sql/analyzer, sql/plan, sql/transform):
// a ready-made rewrite sql.Context and a leaf-relation builder, so each
// *_test.go file can focus on the plan shape it actually exercises.
package plantest

import (
	"github.com/ShashwatArghode/presto/catalog"
	"github.com/ShashwatArghode/presto/sql"
	"github.com/ShashwatArghode/presto/sql/plan"
)

// NewContext returns a fresh per-query rewrite Context backed by the
// default catalog implementations, exactly what a real caller would build
// once per query (§5).
func NewContext() *sql.Context {
	return sql.NewContext(sql.IdentityLookup{}, catalog.Types{}, catalog.Functions{}, catalog.Cardinality{}, nil, nil)
}

// Scan builds a plan.Scan leaf with the given name and (name, type) output
// columns, using rctx's id allocator so ids stay unique within a test.
func Scan(rctx *sql.Context, name string, cols ...sql.Variable) *plan.Scan {
	return plan.NewScan(rctx.IDs.NextID(), name, cols)
}

// Var is a convenience constructor for a named, typed Variable literal,
// used by tests that need the exact pre-existing columns of a Scan rather
// than a freshly allocated one.
func Var(name string, typ sql.Type) sql.Variable {
	return sql.Variable{Name: name, Type: typ}
}
