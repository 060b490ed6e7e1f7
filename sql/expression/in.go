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

// In is `Value IN (ValueList)`. Per §3, after subquery extraction
// ValueList is always a SymRef; the type still admits an arbitrary
// expression so In can be constructed before that extraction has run.
type In struct {
	Value     sql.Expression
	ValueList sql.Expression
}

var _ sql.Expression = (*In)(nil)

func NewIn(value, valueList sql.Expression) *In {
	return &In{Value: value, ValueList: valueList}
}

func (i *In) Type() sql.Type             { return sql.Boolean }
func (i *In) References() []string       { return mergeReferences(i.Value, i.ValueList) }
func (i *In) Children() []sql.Expression { return []sql.Expression{i.Value, i.ValueList} }
func (i *In) WithChildren(children ...sql.Expression) sql.Expression {
	if len(children) != 2 {
		panic("expression.In: WithChildren expects exactly two children")
	}
	return NewIn(children[0], children[1])
}
func (i *In) String() string { return fmt.Sprintf("(%s IN (%s))", i.Value, i.ValueList) }

// AsScalarSubqueryIn reports whether e is an In expression whose Value and
// ValueList are both SymRefs, returning the two referenced variables. This
// is the trigger shape §4.3 requires of Apply.subqueryAssignments' single
// binding.
func AsScalarSubqueryIn(e sql.Expression) (value, list sql.Variable, ok bool) {
	in, isIn := e.(*In)
	if !isIn {
		return sql.Variable{}, sql.Variable{}, false
	}
	v, vok := AsSymRef(in.Value)
	l, lok := AsSymRef(in.ValueList)
	if !vok || !lok {
		return sql.Variable{}, sql.Variable{}, false
	}
	return v.Var, l.Var, true
}
