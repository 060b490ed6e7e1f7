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

// Cast casts Child to Target, e.g. `cast(0 as BIGINT)`.
type Cast struct {
	Child  sql.Expression
	Target sql.Type
}

var _ sql.Expression = (*Cast)(nil)

func NewCast(child sql.Expression, target sql.Type) *Cast {
	return &Cast{Child: child, Target: target}
}

func (c *Cast) Type() sql.Type             { return c.Target }
func (c *Cast) References() []string       { return c.Child.References() }
func (c *Cast) Children() []sql.Expression { return []sql.Expression{c.Child} }

func (c *Cast) WithChildren(children ...sql.Expression) sql.Expression {
	if len(children) != 1 {
		panic("expression.Cast: WithChildren expects exactly one child")
	}
	return NewCast(children[0], c.Target)
}

func (c *Cast) String() string {
	return fmt.Sprintf("CAST(%s AS %s)", c.Child, c.Target)
}
