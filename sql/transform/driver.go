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

	"github.com/opentracing/opentracing-go"

	"github.com/ShashwatArghode/presto/sql"
)

// Rule declares a pattern and an apply function (§4.1). Apply returns
// SameTree to decline (the driver tries the next rule at that position)
// or NewTree with a replacement subtree.
type Rule struct {
	Name    string
	Pattern Pattern
	Apply   func(rctx *sql.Context, n sql.Node, c *Captures) (sql.Node, TreeIdentity, error)
}

// Driver runs a fixed ordered set of Rules to a fixed point (§4.1). Rule
// application order is fixed and deterministic: at each position, rules are
// tried in Rules order and the first match wins.
type Driver struct {
	Rules []Rule
}

func NewDriver(rules ...Rule) *Driver {
	return &Driver{Rules: rules}
}

// Run applies the driver's rules to root until a full pass produces no
// change, checking cancel between passes (§5). gocancel may be nil.
func (d *Driver) Run(rctx *sql.Context, gocancel context.Context, root sql.Node) (sql.Node, error) {
	span, _ := opentracing.StartSpanFromContextWithTracer(optCtx(gocancel), rctx.Tracer, "rewrite.fixed_point")
	defer span.Finish()

	pass := 0
	for {
		pass++
		if gocancel != nil {
			if err := gocancel.Err(); err != nil {
				return nil, err
			}
		}
		newRoot, identity, err := d.runOnePass(rctx, root, pass)
		if err != nil {
			return nil, err
		}
		root = newRoot
		if identity == SameTree {
			return root, nil
		}
	}
}

func (d *Driver) runOnePass(rctx *sql.Context, root sql.Node, pass int) (sql.Node, TreeIdentity, error) {
	passSpan := rctx.Tracer.StartSpan("rewrite.pass")
	defer passSpan.Finish()

	return Node(root, func(n sql.Node) (sql.Node, TreeIdentity, error) {
		for _, rule := range d.Rules {
			c := NewCaptures()
			if !rule.Pattern(n, c) {
				continue
			}
			replacement, identity, err := rule.Apply(rctx, n, c)
			if err != nil {
				return nil, SameTree, err
			}
			if identity == NewTree {
				rctx.Log.WithField("rule", rule.Name).WithField("pass", pass).Debug("rule applied")
				return replacement, NewTree, nil
			}
		}
		return n, SameTree, nil
	})
}

func optCtx(gocancel context.Context) context.Context {
	if gocancel != nil {
		return gocancel
	}
	return context.Background()
}
