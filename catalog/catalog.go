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

// Package catalog provides the default, read-only implementations of the
// environment handles the rewriters consume from outside this module
// (§6): function resolution, query cardinality, and variable types. A real
// deployment would back these with its actual catalog/metadata service;
// these defaults are what the rewriters need and nothing more.
package catalog

import (
	"github.com/ShashwatArghode/presto/sql"
	"github.com/ShashwatArghode/presto/sql/plan"
)

const (
	countStarName = "count"
	countArgName  = "count"
)

// Functions is the default sql.FunctionResolution. Both CountStar and
// CountArg resolve to a handle named "count"; IsCount recognizes either by
// name, since this module never needs to distinguish them beyond arity.
type Functions struct{}

var _ sql.FunctionResolution = Functions{}

func (Functions) CountStar() sql.FunctionHandle { return sql.FunctionHandle{Name: countStarName} }
func (Functions) CountArg() sql.FunctionHandle  { return sql.FunctionHandle{Name: countArgName} }
func (Functions) IsCount(h sql.FunctionHandle) bool {
	return h.Name == countStarName || h.Name == countArgName
}

// Cardinality is the default sql.Cardinality: a node is provably scalar iff
// it is a global Aggregation (empty grouping set), or a Project/Filter
// whose source is itself scalar — the two shapes §4.5's rewrite and plain
// scalar-subquery construction actually produce.
type Cardinality struct{}

var _ sql.Cardinality = Cardinality{}

func (Cardinality) IsScalar(n sql.Node, lookup sql.Lookup) bool {
	resolved := lookup.Resolve(n)
	switch v := resolved.(type) {
	case *plan.Aggregation:
		return len(v.GroupingSet) == 0
	case *plan.Project:
		return Cardinality{}.IsScalar(v.Source, lookup)
	case *plan.Filter:
		return Cardinality{}.IsScalar(v.Source, lookup)
	default:
		return false
	}
}

// Types is a default sql.TypeProvider backed by a plain map, good enough
// for tests and for any caller that already tracks variable types
// elsewhere and just wants a lookup.
type Types map[string]sql.Type

var _ sql.TypeProvider = Types{}

func (t Types) Get(v sql.Variable) sql.Type {
	if v.Type != sql.Other {
		return v.Type
	}
	if typ, ok := t[v.Name]; ok {
		return typ
	}
	return sql.Other
}
