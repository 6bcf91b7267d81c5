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

import (
	"iter"

	"fillmore-labs.com/memodeps/internal/syntax"
)

// Invocation is one use site of the wrapper element.
type Invocation struct {
	Element *syntax.Node
}

// Attributes returns the attributes of the invocation in source order.
func (i Invocation) Attributes() []*syntax.Node {
	return i.Element.Edge(syntax.EdgeAttributes)
}

// Children returns the children subtree of the invocation.
func (i Invocation) Children() []*syntax.Node {
	return i.Element.Edge(syntax.EdgeChildren)
}

// Attribute returns the first attribute with the given name, or nil.
func (i Invocation) Attribute(name string) *syntax.Node {
	for _, attr := range i.Attributes() {
		if attr.Name == name {
			return attr
		}
	}

	return nil
}

// Invocations yields all elements named wrapper in the tree rooted at root,
// outer invocations before nested ones.
func Invocations(w syntax.Walker, root *syntax.Node, wrapper string) iter.Seq[Invocation] {
	return func(yield func(Invocation) bool) {
		for n := range w.Preorder(root, syntax.Element) {
			if n.Name != wrapper {
				continue
			}

			if !yield(Invocation{Element: n}) {
				return
			}
		}
	}
}
