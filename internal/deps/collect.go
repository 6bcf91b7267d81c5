// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package deps

import "fillmore-labs.com/memodeps/internal/syntax"

// references collects the distinct paths referenced in the children, in
// order of first occurrence.
//
// Only the outermost identifier or property access of a chain is recorded,
// so a.b is one reference, not two. Computed keys and non-identifier roots
// of a chain are searched for further references.
func (a Analyzer) references(children []*syntax.Node) []Path {
	c := collector{walker: a.walker, seen: make(map[Path]struct{})}
	a.walker.InspectAll(children, c.visit)

	return c.paths
}

type collector struct {
	walker syntax.Walker
	seen   map[Path]struct{}
	paths  []Path
}

func (c *collector) visit(n *syntax.Node) bool {
	switch n.Kind {
	case syntax.Identifier:
		c.add(Path(n.Name))

		return false

	case syntax.PropertyAccess:
		if p, ok := ReferencePath(n); ok {
			c.add(p)
		}

		root, accesses := accessChain(n)
		if root != nil && root.Kind != syntax.Identifier {
			c.walker.Inspect(root, c.visit)
		}

		for _, access := range accesses {
			if access.Computed {
				c.walker.InspectAll(access.Edge(syntax.EdgeProperty), c.visit)
			}
		}

		return false

	default:
		return true
	}
}

func (c *collector) add(p Path) {
	if _, ok := c.seen[p]; ok {
		return
	}

	c.seen[p] = struct{}{}
	c.paths = append(c.paths, p)
}
