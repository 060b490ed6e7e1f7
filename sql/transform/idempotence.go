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

package transform

import (
	"context"

	"github.com/ShashwatArghode/presto/sql"
)

// RunWithIdempotenceCheck runs the driver to a fixed point, then runs it a
// second time over the result and fails loudly if that second pass is not
// a no-op (spec §8 property 2, promoted from a testable property to a
// runtime assertion used by this module's own test suite).
func (d *Driver) RunWithIdempotenceCheck(rctx *sql.Context, gocancel context.Context, root sql.Node) (sql.Node, error) {
	fixed, err := d.Run(rctx, gocancel, root)
	if err != nil {
		return nil, err
	}
	again, identity, err := d.runOnePass(rctx, fixed, -1)
	if err != nil {
		return nil, err
	}
	if identity == NewTree {
		return nil, sql.NewInternalConsistencyError("driver is not idempotent: a second pass over its own fixed point changed the plan (" + again.String() + ")")
	}
	return fixed, nil
}
