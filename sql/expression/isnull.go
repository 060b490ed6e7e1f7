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

import "github.com/ShashwatArghode/presto/sql"

type IsNull struct{ Arg sql.Expression }
type IsNotNull struct{ Arg sql.Expression }

var (
	_ sql.Expression = (*IsNull)(nil)
	_ sql.Expression = (*IsNotNull)(nil)
)

func NewIsNull(arg sql.Expression) *IsNull       { return &IsNull{Arg: arg} }
func NewIsNotNull(arg sql.Expression) *IsNotNull { return &IsNotNull{Arg: arg} }

func (n *IsNull) Type() sql.Type             { return sql.Boolean }
func (n *IsNull) References() []string       { return n.Arg.References() }
func (n *IsNull) Children() []sql.Expression { return []sql.Expression{n.Arg} }
func (n *IsNull) WithChildren(children ...sql.Expression) sql.Expression {
	if len(children) != 1 {
		panic("expression.IsNull: WithChildren expects exactly one child")
	}
	return NewIsNull(children[0])
}
func (n *IsNull) String() string { return "(" + n.Arg.String() + " IS NULL)" }

func (n *IsNotNull) Type() sql.Type             { return sql.Boolean }
func (n *IsNotNull) References() []string       { return n.Arg.References() }
func (n *IsNotNull) Children() []sql.Expression { return []sql.Expression{n.Arg} }
func (n *IsNotNull) WithChildren(children ...sql.Expression) sql.Expression {
	if len(children) != 1 {
		panic("expression.IsNotNull: WithChildren expects exactly one child")
	}
	return NewIsNotNull(children[0])
}
func (n *IsNotNull) String() string { return "(" + n.Arg.String() + " IS NOT NULL)" }
