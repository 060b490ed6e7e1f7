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
	"fmt"

	"github.com/ShashwatArghode/presto/sql"
)

// CompareOp is one of the six comparison operators §3 enumerates.
type CompareOp int

const (
	Eq CompareOp = iota
	Neq
	Lt
	Lte
	Gt
	Gte
)

func (op CompareOp) String() string {
	switch op {
	case Eq:
		return "="
	case Neq:
		return "<>"
	case Lt:
		return "<"
	case Lte:
		return "<="
	case Gt:
		return ">"
	case Gte:
		return ">="
	default:
		return "?"
	}
}

// Compare is a binary comparison between Left and Right.
type Compare struct {
	Op          CompareOp
	Left, Right sql.Expression
}

var _ sql.Expression = (*Compare)(nil)

func NewCompare(op CompareOp, left, right sql.Expression) *Compare {
	return &Compare{Op: op, Left: left, Right: right}
}

func NewEquals(left, right sql.Expression) *Compare { return NewCompare(Eq, left, right) }

func (c *Compare) Type() sql.Type { return sql.Boolean }

func (c *Compare) References() []string {
	return mergeReferences(c.Left, c.Right)
}

func (c *Compare) Children() []sql.Expression { return []sql.Expression{c.Left, c.Right} }

func (c *Compare) WithChildren(children ...sql.Expression) sql.Expression {
	if len(children) != 2 {
		panic("expression.Compare: WithChildren expects exactly two children")
	}
	return NewCompare(c.Op, children[0], children[1])
}

func (c *Compare) String() string {
	return fmt.Sprintf("(%s %s %s)", c.Left, c.Op, c.Right)
}
