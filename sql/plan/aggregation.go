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

package plan

import (
	"fmt"
	"strings"

	"github.com/ShashwatArghode/presto/sql"
)

// Aggregation groups Source by GroupingSet and computes Entries.
// Outputs are GroupingSet followed by the aggregation output variables, in
// the order Entries was built (an ordered slice, not a bare map, so
// output order is reproducible).
type Aggregation struct {
	id           sql.PlanNodeID
	Source       sql.Node
	GroupingSet  []sql.Variable
	Entries      []AggregationBinding
	Step         sql.AggStep
	HashVar      *sql.Variable
	GroupIDVar   *sql.Variable
}

// AggregationBinding binds one output variable to one AggregationEntry.
type AggregationBinding struct {
	Variable sql.Variable
	Entry    sql.AggregationEntry
}

var _ sql.Node = (*Aggregation)(nil)

func NewAggregation(id sql.PlanNodeID, source sql.Node, groupingSet []sql.Variable, entries []AggregationBinding) *Aggregation {
	return &Aggregation{id: id, Source: source, GroupingSet: groupingSet, Entries: entries, Step: sql.Single}
}

func (a *Aggregation) ID() sql.PlanNodeID { return a.id }

func (a *Aggregation) Outputs() []sql.Variable {
	out := make([]sql.Variable, 0, len(a.GroupingSet)+len(a.Entries))
	out = append(out, a.GroupingSet...)
	for _, e := range a.Entries {
		out = append(out, e.Variable)
	}
	return out
}

func (a *Aggregation) Sources() []sql.Node { return []sql.Node{a.Source} }

func (a *Aggregation) WithSources(sources ...sql.Node) sql.Node {
	if len(sources) != 1 {
		panic("plan.Aggregation: WithSources expects exactly one source")
	}
	cp := *a
	cp.Source = sources[0]
	return &cp
}

// WithEntries returns a copy of a with a new (same-length, same-variable)
// set of aggregation bindings. Used by SimplifyCountOverConstant (§4.5),
// which only ever rewrites an entry's Entry field in place.
func (a *Aggregation) WithEntries(entries []AggregationBinding) *Aggregation {
	cp := *a
	cp.Entries = entries
	return &cp
}

func (a *Aggregation) String() string {
	parts := make([]string, len(a.Entries))
	for i, e := range a.Entries {
		parts[i] = fmt.Sprintf("%s := %s", e.Variable, e.Entry.Function.Name)
	}
	return fmt.Sprintf("Aggregation[group=%v, %s]", a.GroupingSet, strings.Join(parts, ", "))
}
