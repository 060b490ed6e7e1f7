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

// SymRef is a reference to a variable produced by some source reachable
// without crossing a plan boundary the rewriter has not accounted for.
type SymRef struct {
	Var sql.Variable
}

var _ sql.Expression = (*SymRef)(nil)

func NewSymRef(v sql.Variable) *SymRef {
	return &SymRef{Var: v}
}

func (s *SymRef) Type() sql.Type             { return s.Var.Type }
func (s *SymRef) References() []string       { return []string{s.Var.Name} }
func (s *SymRef) Children() []sql.Expression { return nil }

func (s *SymRef) WithChildren(children ...sql.Expression) sql.Expression {
	if len(children) != 0 {
		panic("expression.SymRef: WithChildren called with non-zero children")
	}
	return s
}

func (s *SymRef) String() string { return s.Var.Name }

// AsSymRef returns e as a *SymRef and true, or nil, false if it is not one.
func AsSymRef(e sql.Expression) (*SymRef, bool) {
	s, ok := e.(*SymRef)
	return s, ok
}
