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

package expression

import (
	"strings"

	"github.com/ShashwatArghode/presto/sql"
)

// And is n-ary logical conjunction.
type And struct{ Args []sql.Expression }

// Or is n-ary logical disjunction.
type Or struct{ Args []sql.Expression }

// Not is logical negation of a single argument.
type Not struct{ Arg sql.Expression }

var (
	_ sql.Expression = (*And)(nil)
	_ sql.Expression = (*Or)(nil)
	_ sql.Expression = (*Not)(nil)
)

func NewAnd(args ...sql.Expression) sql.Expression {
	args = flattenNonNil(args)
	if len(args) == 1 {
		return args[0]
	}
	return &And{Args: args}
}

func NewOr(args ...sql.Expression) sql.Expression {
	args = flattenNonNil(args)
	if len(args) == 1 {
		return args[0]
	}
	return &Or{Args: args}
}

func NewNot(arg sql.Expression) *Not { return &Not{Arg: arg} }

func flattenNonNil(args []sql.Expression) []sql.Expression {
	out := make([]sql.Expression, 0, len(args))
	for _, a := range args {
		if a != nil {
			out = append(out, a)
		}
	}
	return out
}

func (a *And) Type() sql.Type             { return sql.Boolean }
func (a *And) References() []string       { return mergeReferences(a.Args...) }
func (a *And) Children() []sql.Expression { return a.Args }
func (a *And) WithChildren(children ...sql.Expression) sql.Expression {
	return &And{Args: children}
}
func (a *And) String() string { return joinExprs(a.Args, " AND ") }

func (o *Or) Type() sql.Type             { return sql.Boolean }
func (o *Or) References() []string       { return mergeReferences(o.Args...) }
func (o *Or) Children() []sql.Expression { return o.Args }
func (o *Or) WithChildren(children ...sql.Expression) sql.Expression {
	return &Or{Args: children}
}
func (o *Or) String() string { return joinExprs(o.Args, " OR ") }

func (n *Not) Type() sql.Type             { return sql.Boolean }
func (n *Not) References() []string       { return n.Arg.References() }
func (n *Not) Children() []sql.Expression { return []sql.Expression{n.Arg} }
func (n *Not) WithChildren(children ...sql.Expression) sql.Expression {
	if len(children) != 1 {
		panic("expression.Not: WithChildren expects exactly one child")
	}
	return NewNot(children[0])
}
func (n *Not) String() string { return "(NOT " + n.Arg.String() + ")" }

func joinExprs(args []sql.Expression, sep string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return "(" + strings.Join(parts, sep) + ")"
}

// AndAll builds one flat n-ary AND over a (possibly empty) slice of predicates,
// per §4.3/§4.4's "AND(P)"/"AND over i of" notation. An empty slice yields
// a literal true, so callers never need a special case for zero predicates.
func AndAll(preds []sql.Expression) sql.Expression {
	preds = flattenNonNil(preds)
	if len(preds) == 0 {
		return NewBoolLiteral(true)
	}
	return NewAnd(preds...)
}
