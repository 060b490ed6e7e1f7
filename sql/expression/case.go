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
	"strings"

	"github.com/ShashwatArghode/presto/sql"
)

// When is one branch of a SearchedCase: WHEN Cond THEN Result.
type When struct {
	Cond   sql.Expression
	Result sql.Expression
}

// SearchedCase is `CASE WHEN c1 THEN r1 WHEN c2 THEN r2 ... ELSE e END`.
type SearchedCase struct {
	Whens []When
	Else  sql.Expression
}

var _ sql.Expression = (*SearchedCase)(nil)

func NewSearchedCase(whens []When, els sql.Expression) *SearchedCase {
	return &SearchedCase{Whens: whens, Else: els}
}

func (c *SearchedCase) Type() sql.Type {
	if c.Else != nil {
		return c.Else.Type()
	}
	if len(c.Whens) > 0 {
		return c.Whens[0].Result.Type()
	}
	return sql.Other
}

func (c *SearchedCase) References() []string {
	var exprs []sql.Expression
	for _, w := range c.Whens {
		exprs = append(exprs, w.Cond, w.Result)
	}
	if c.Else != nil {
		exprs = append(exprs, c.Else)
	}
	return mergeReferences(exprs...)
}

func (c *SearchedCase) Children() []sql.Expression {
	out := make([]sql.Expression, 0, 2*len(c.Whens)+1)
	for _, w := range c.Whens {
		out = append(out, w.Cond, w.Result)
	}
	if c.Else != nil {
		out = append(out, c.Else)
	}
	return out
}

func (c *SearchedCase) WithChildren(children ...sql.Expression) sql.Expression {
	expected := 2*len(c.Whens) + 1
	if c.Else == nil {
		expected--
	}
	if len(children) != expected {
		panic("expression.SearchedCase: WithChildren arity mismatch")
	}
	whens := make([]When, len(c.Whens))
	for i := range c.Whens {
		whens[i] = When{Cond: children[2*i], Result: children[2*i+1]}
	}
	var els sql.Expression
	if c.Else != nil {
		els = children[len(children)-1]
	}
	return NewSearchedCase(whens, els)
}

func (c *SearchedCase) String() string {
	var sb strings.Builder
	sb.WriteString("CASE")
	for _, w := range c.Whens {
		sb.WriteString(fmt.Sprintf(" WHEN %s THEN %s", w.Cond, w.Result))
	}
	if c.Else != nil {
		sb.WriteString(fmt.Sprintf(" ELSE %s", c.Else))
	}
	sb.WriteString(" END")
	return sb.String()
}
