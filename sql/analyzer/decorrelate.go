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

// Package analyzer holds the decorrelator and the four concrete rewriters
// (§4.2-§4.6) plus the post-condition verifier (§4.7).
package analyzer

import (
	"github.com/ShashwatArghode/presto/sql"
	"github.com/ShashwatArghode/presto/sql/expression"
	"github.com/ShashwatArghode/presto/sql/plan"
)

// Decorrelated is the decorrelator's success result: an uncorrelated core
// plus the predicates that were hoisted out of it to be applied above.
type Decorrelated struct {
	DecorrelatedNode     sql.Node
	CorrelatedPredicates []sql.Expression
}

// Decorrelate is a bottom-up visitor over resolved nodes (§4.2). It returns
// (result, true) on success, or (nil, false) if decorrelation is not
// possible for this subplan shape.
func Decorrelate(rctx *sql.Context, subquery sql.Node, correlation []sql.Variable) (*Decorrelated, bool) {
	c := sql.NewVariableSet(correlation...)
	rctx.Log.WithField("correlation", correlation).Trace("decorrelate: entering subplan")
	return decorrelate(rctx, subquery, c)
}

func decorrelate(rctx *sql.Context, node sql.Node, c sql.VariableSet) (*Decorrelated, bool) {
	resolved := rctx.Lookup.Resolve(node)

	switch n := resolved.(type) {
	case *plan.Project:
		// Shallow correlation: the project's own assignments reference a
		// correlation variable directly. No rewrite can pull that out from
		// under the project, so we give up (§4.2).
		for _, a := range n.Assignments {
			if sql.ReferencesAny(a.Expression, c) {
				return nil, false
			}
		}
		inner, ok := decorrelate(rctx, n.Source, c)
		if !ok {
			return nil, false
		}
		// Augment the project with identity bindings for every
		// non-correlation variable referenced by the pulled-up predicates,
		// so those variables stay visible above the project (§4.2).
		assignments := n.Assignments
		seen := sql.NewVariableSet(assignments.Vars()...)
		for _, pred := range inner.CorrelatedPredicates {
			for _, name := range pred.References() {
				v := sql.Variable{Name: name}
				if c.Contains(v) || seen.Contains(v) {
					continue
				}
				typed := resolveType(rctx, inner.DecorrelatedNode, name)
				assignments = assignments.With(typed, expression.NewSymRef(typed))
				seen.Add(typed)
			}
		}
		// Allocate a fresh id for the replacement rather than reusing n's:
		// the assignments may differ from n's (identity bindings added
		// above), so the replacement is not safely interchangeable with n
		// under an id-keyed lookup (§9).
		newSource := inner.DecorrelatedNode
		replacement := plan.NewProject(rctx.IDs.NextID(), newSource, assignments)
		return &Decorrelated{DecorrelatedNode: replacement, CorrelatedPredicates: inner.CorrelatedPredicates}, true

	case *plan.Filter:
		inner, ok := decorrelate(rctx, n.Source, c)
		if !ok {
			return nil, false
		}
		predicates := append(append([]sql.Expression{}, inner.CorrelatedPredicates...), n.Predicate)
		return &Decorrelated{DecorrelatedNode: inner.DecorrelatedNode, CorrelatedPredicates: predicates}, true

	default:
		if referencesCorrelationRecursive(rctx, resolved, c) {
			return nil, false
		}
		return &Decorrelated{DecorrelatedNode: resolved, CorrelatedPredicates: nil}, true
	}
}

// referencesCorrelationShallow inspects only node's own expressions, not
// its children (§4.2).
func referencesCorrelationShallow(n sql.Node, c sql.VariableSet) bool {
	switch v := n.(type) {
	case *plan.Project:
		for _, a := range v.Assignments {
			if sql.ReferencesAny(a.Expression, c) {
				return true
			}
		}
	case *plan.Filter:
		return sql.ReferencesAny(v.Predicate, c)
	case *plan.Join:
		for _, crit := range v.Criteria {
			if c.Contains(crit.Left) || c.Contains(crit.Right) {
				return true
			}
		}
		if v.Filter != nil && sql.ReferencesAny(v.Filter, c) {
			return true
		}
	case *plan.Aggregation:
		for _, e := range v.Entries {
			for _, name := range e.Entry.References() {
				if c.Contains(sql.Variable{Name: name}) {
					return true
				}
			}
		}
	case *plan.Apply:
		for _, a := range v.SubqueryAssignments {
			if sql.ReferencesAny(a.Expression, c) {
				return true
			}
		}
	}
	return false
}

// referencesCorrelationRecursive is shallow-at-this-node OR
// recursive-at-any-resolved-child (§4.2).
func referencesCorrelationRecursive(rctx *sql.Context, n sql.Node, c sql.VariableSet) bool {
	if referencesCorrelationShallow(n, c) {
		return true
	}
	for _, child := range n.Sources() {
		resolved := rctx.Lookup.Resolve(child)
		if referencesCorrelationRecursive(rctx, resolved, c) {
			return true
		}
	}
	return false
}

// resolveType looks up name among node's own outputs first, falling back
// to rctx.Types if available, and finally to sql.Other. It never
// fails: an unresolvable type just means the variable is carried opaquely.
func resolveType(rctx *sql.Context, node sql.Node, name string) sql.Variable {
	for _, v := range node.Outputs() {
		if v.Name == name {
			return v
		}
	}
	v := sql.Variable{Name: name, Type: sql.Other}
	if rctx.Types != nil {
		v.Type = rctx.Types.Get(v)
	}
	return v
}
