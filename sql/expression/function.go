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

// FunctionCall is used only to express aggregations (§3): count(*),
// count(col), etc. Plain scalar function calls are out of scope.
type FunctionCall struct {
	Handle sql.FunctionHandle
	Args   []sql.Expression
}

var _ sql.Expression = (*FunctionCall)(nil)

func NewFunctionCall(handle sql.FunctionHandle, args ...sql.Expression) *FunctionCall {
	return &FunctionCall{Handle: handle, Args: args}
}

func (f *FunctionCall) Type() sql.Type             { return sql.Bigint }
func (f *FunctionCall) References() []string       { return mergeReferences(f.Args...) }
func (f *FunctionCall) Children() []sql.Expression { return f.Args }
func (f *FunctionCall) WithChildren(children ...sql.Expression) sql.Expression {
	return NewFunctionCall(f.Handle, children...)
}

func (f *FunctionCall) String() string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.String()
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%s()", f.Handle.Name)
	}
	return fmt.Sprintf("%s(%s)", f.Handle.Name, strings.Join(parts, ", "))
}
