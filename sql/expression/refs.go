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

// mergeReferences unions the References() of a set of child expressions,
// in first-seen order, with duplicates removed.
func mergeReferences(children ...sql.Expression) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, c := range children {
		if c == nil {
			continue
		}
		for _, name := range c.References() {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}
