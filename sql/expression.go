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

// Expression is the opaque algebraic value the plan layer builds trees out
// of but never evaluates. Concrete variants live in package expression;
// this interface is the seam the plan package depends on so it never needs
// to import expression.
type Expression interface {
	// Type reports the static type of the expression, Other if unknown.
	Type() Type
	// References returns every SymRef name this expression (and its
	// children) reads, in no particular order, with duplicates removed.
	References() []string
	// Children returns the expression's immediate sub-expressions, in
	// positional order. Leaves return nil.
	Children() []Expression
	// WithChildren returns a copy of the expression with its children
	// replaced positionally. len(children) must equal len(Children()).
	WithChildren(children ...Expression) Expression
	// String renders the expression for diagnostics and test output.
	String() string
}

// ReferencesVar reports whether expr (or any descendant) references v.
func ReferencesVar(expr Expression, v Variable) bool {
	if expr == nil {
		return false
	}
	for _, name := range expr.References() {
		if name == v.Name {
			return true
		}
	}
	return false
}

// ReferencesAny reports whether expr (or any descendant) references any
// variable in vs.
func ReferencesAny(expr Expression, vs VariableSet) bool {
	if expr == nil {
		return false
	}
	for _, name := range expr.References() {
		if _, ok := vs[name]; ok {
			return true
		}
	}
	return false
}
