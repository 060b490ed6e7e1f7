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

package sql

import (
	"fmt"

	errors "gopkg.in/src-d/go-errors.v1"
)

// unsupportedCorrelatedSubqueryMessage is the fixed message every verifier
// error is built from; the offending node's originSubqueryError template
// supplies the surrounding context (e.g. "subquery on line 3: %s").
const unsupportedCorrelatedSubqueryMessage = "Given correlated subquery is not supported"

// ErrCorrelatedSubqueryNotSupported is raised by the verifier (§4.7) when a
// rewriter declined an Apply/LateralJoin and no alternative rewrite exists.
var ErrCorrelatedSubqueryNotSupported = errors.NewKind("%s")

// ErrInternalConsistency marks a programming error: an invariant the
// rewriters rely on was violated (e.g. a non-correlated Apply reaching the
// verifier, or a decorrelator postcondition failing). These abort planning
// with a diagnostic naming the invariant; they are never meant to be
// recovered from by a caller.
var ErrInternalConsistency = errors.NewKind("internal consistency violation: %s")

// NewCorrelatedSubqueryError formats the verifier's user-facing error using
// the node-supplied template, per §6/§7. originSubqueryError is expected to
// contain a single "%s" substitution point.
func NewCorrelatedSubqueryError(originSubqueryError string) error {
	msg := fmt.Sprintf(originSubqueryError, unsupportedCorrelatedSubqueryMessage)
	return ErrCorrelatedSubqueryNotSupported.New(msg)
}

// NewInternalConsistencyError wraps a broken-invariant message.
func NewInternalConsistencyError(invariant string) error {
	return ErrInternalConsistency.New(invariant)
}
