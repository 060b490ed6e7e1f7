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

// Package expression holds the concrete Expression variants enumerated in
// the design's data model (§3). Expressions are immutable; WithChildren
// always returns a new value.
package expression

import (
	"fmt"

	"github.com/ShashwatArghode/presto/sql"
)

// Literal is BoolLit, LongLit, StringLit and NullLit all at once: a null
// literal is a Literal whose Null field is true, regardless of Typ.
type Literal struct {
	Value interface{}
	Typ   sql.Type
	Null  bool
}

var _ sql.Expression = (*Literal)(nil)

func NewBoolLiteral(v bool) *Literal {
	return &Literal{Value: v, Typ: sql.Boolean}
}

func NewNullLiteral(typ sql.Type) *Literal {
	return &Literal{Typ: typ, Null: true}
}

func NewLongLiteral(v int64) *Literal {
	return &Literal{Value: v, Typ: sql.Bigint}
}

func NewStringLiteral(v string) *Literal {
	return &Literal{Value: v, Typ: sql.Other}
}

func (l *Literal) Type() sql.Type            { return l.Typ }
func (l *Literal) References() []string      { return nil }
func (l *Literal) Children() []sql.Expression { return nil }

func (l *Literal) WithChildren(children ...sql.Expression) sql.Expression {
	if len(children) != 0 {
		panic("expression.Literal: WithChildren called with non-zero children")
	}
	return l
}

func (l *Literal) String() string {
	if l.Null {
		return "NULL"
	}
	switch l.Typ {
	case sql.Boolean:
		return fmt.Sprintf("%v", l.Value)
	case sql.Bigint:
		return fmt.Sprintf("BIGINT '%v'", l.Value)
	default:
		return fmt.Sprintf("%v", l.Value)
	}
}

// IsNonNullLiteral reports whether e is a *Literal and not null. Used by
// SimplifyCountOverConstant (§4.5).
func IsNonNullLiteral(e sql.Expression) bool {
	lit, ok := e.(*Literal)
	return ok && !lit.Null
}
