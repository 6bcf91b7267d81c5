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

package syntax

import (
	"iter"
	"slices"
)

// Walker traverses syntax trees, never following the configured edges.
type Walker struct {
	skip []string
}

// NewWalker creates a [Walker] skipping the named edges in addition to [EdgeParent].
func NewWalker(skip ...string) Walker {
	if !slices.Contains(skip, EdgeParent) {
		skip = append(slices.Clip(skip), EdgeParent)
	}

	return Walker{skip: skip}
}

// DefaultWalker only skips parent back-references.
var DefaultWalker = NewWalker()

// Inspect traverses the tree rooted at root in depth-first order.
// It calls f for each node; if f returns false, the children of that node are skipped.
func (w Walker) Inspect(root *Node, f func(*Node) bool) {
	if root == nil || !f(root) {
		return
	}

	for _, child := range w.Children(root) {
		w.Inspect(child, f)
	}
}

// InspectAll calls [Walker.Inspect] for every root in order.
func (w Walker) InspectAll(roots []*Node, f func(*Node) bool) {
	for _, root := range roots {
		w.Inspect(root, f)
	}
}

// Children yields the edge names and direct children of n in order.
func (w Walker) Children(n *Node) iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		for _, e := range n.Edges {
			if w.skipped(e.Name) {
				continue
			}

			for _, c := range e.Nodes {
				if !yield(e.Name, c) {
					return
				}
			}
		}
	}
}

// Preorder yields the nodes of the given kinds in depth-first order.
// With no kinds, all nodes are yielded.
func (w Walker) Preorder(root *Node, kinds ...Kind) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		done := false
		w.Inspect(root, func(n *Node) bool {
			if done {
				return false
			}

			if len(kinds) == 0 || slices.Contains(kinds, n.Kind) {
				if !yield(n) {
					done = true

					return false
				}
			}

			return true
		})
	}
}

func (w Walker) skipped(name string) bool {
	return slices.Contains(w.skip, name)
}
