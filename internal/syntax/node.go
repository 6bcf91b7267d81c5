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

// Package syntax models the trees consumed by the dependency analyzer.
//
// A tree is made of [Node] values connected by named edges. Front ends
// (Go, JSX) convert their parser output into this form; the analyzer never
// sees source text. Nodes may carry a back-reference to their parent under
// the [EdgeParent] edge, which a [Walker] never follows.
package syntax

import "go/token"

//go:generate go tool stringer -type Kind -linecomment

// Kind discriminates syntax nodes.
type Kind uint8

const (
	// Other is any node without special meaning to the analyzer.
	Other Kind = iota // other

	// Identifier is a name referencing a binding.
	Identifier // identifier

	// PropertyAccess is a member access, computed (x[k]) or static (x.k).
	PropertyAccess // property access

	// ArrayLiteral is a literal list of elements.
	ArrayLiteral // array literal

	// Call is a function invocation.
	Call // call

	// Lambda is a function literal.
	Lambda // lambda

	// Element is a view element with attributes and children.
	Element // element

	// Attribute is a named attribute of an element.
	Attribute // attribute
)

// Edge names used by the front ends.
const (
	EdgeParent     = "parent"
	EdgeObject     = "object"
	EdgeProperty   = "property"
	EdgeElements   = "elements"
	EdgeAttributes = "attributes"
	EdgeChildren   = "children"
	EdgeValue      = "value"
	EdgeCallee     = "callee"
	EdgeArguments  = "arguments"
	EdgeBody       = "body"
)

// Node is a node of a syntax tree.
type Node struct {
	// Kind is the node discriminant.
	Kind Kind

	// Name is the identifier name, the static property name, or the element or attribute name.
	Name string

	// Computed marks an index or expression keyed property access.
	Computed bool

	// Pos and End delimit the source range, for reporting only.
	Pos, End token.Pos

	// Edges are the ordered, named child edges.
	Edges []Edge
}

// Edge is a named, ordered list of child nodes.
type Edge struct {
	Name  string
	Nodes []*Node
}

// Edge returns the nodes of the first edge with the given name.
func (n *Node) Edge(name string) []*Node {
	if n == nil {
		return nil
	}

	for _, e := range n.Edges {
		if e.Name == name {
			return e.Nodes
		}
	}

	return nil
}

// First returns the first node of the named edge, or nil.
func (n *Node) First(name string) *Node {
	if nodes := n.Edge(name); len(nodes) > 0 {
		return nodes[0]
	}

	return nil
}

// Add appends children to the named edge, creating it when necessary.
// Nil children are dropped. Add returns n for chaining.
func (n *Node) Add(name string, children ...*Node) *Node {
	i := 0
	for ; i < len(n.Edges); i++ {
		if n.Edges[i].Name == name {
			break
		}
	}

	if i == len(n.Edges) {
		n.Edges = append(n.Edges, Edge{Name: name})
	}

	for _, c := range children {
		if c != nil {
			n.Edges[i].Nodes = append(n.Edges[i].Nodes, c)
		}
	}

	return n
}

// Parent returns the parent back-reference, if set.
func (n *Node) Parent() *Node {
	return n.First(EdgeParent)
}

// Link sets the parent back-reference of every node reachable from root.
// Nodes shared between several parents keep the first parent found.
func Link(root *Node) {
	if root == nil {
		return
	}

	seen := map[*Node]struct{}{root: {}}

	var link func(n *Node)
	link = func(n *Node) {
		for _, e := range n.Edges {
			if e.Name == EdgeParent {
				continue
			}

			for _, c := range e.Nodes {
				if _, ok := seen[c]; ok {
					continue
				}

				seen[c] = struct{}{}

				if c.Parent() == nil {
					c.Add(EdgeParent, n)
				}

				link(c)
			}
		}
	}

	link(root)
}
