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
	"strings"

	"fillmore-labs.com/memodeps/internal/syntax"
)

// Path is the dot-joined representation of an identifier or a chain of
// static property accesses, like "a.b.c".
type Path string

// Root returns the root identifier of the path.
func (p Path) Root() string {
	root, _, _ := strings.Cut(string(p), ".")

	return root
}

// Covers reports whether other equals p or accesses a property below p.
// "a" covers "a" and "a.b", but neither "ab" nor, in reverse, "a.b" covers "a".
func (p Path) Covers(other Path) bool {
	if len(other) < len(p) || other[:len(p)] != p {
		return false
	}

	return len(other) == len(p) || other[len(p)] == '.'
}

// IsVariable reports whether n is an identifier or a static property access
// chain rooted at an identifier, i.e. whether [PathOf] is defined for n.
func IsVariable(n *syntax.Node) bool {
	for ; n != nil; n = n.First(syntax.EdgeObject) {
		switch n.Kind {
		case syntax.Identifier:
			return true

		case syntax.PropertyAccess:
			if n.Computed {
				return false
			}

		default:
			return false
		}
	}

	return false
}

// PathOf reconstructs the property path of an identifier or static property access.
//
// Calling PathOf on any other node violates its contract and panics with a [*ContractError].
func PathOf(n *syntax.Node) Path {
	if n == nil {
		panic(&ContractError{Op: "PathOf"})
	}

	switch n.Kind {
	case syntax.Identifier:
		return Path(n.Name)

	case syntax.PropertyAccess:
		if n.Computed {
			break
		}

		return PathOf(n.First(syntax.EdgeObject)) + "." + Path(n.Name)
	}

	panic(&ContractError{Op: "PathOf", Kind: n.Kind, Pos: n.Pos})
}

// accessChain splits a property access chain into its root and the accesses,
// innermost first.
func accessChain(n *syntax.Node) (root *syntax.Node, accesses []*syntax.Node) {
	for n != nil && n.Kind == syntax.PropertyAccess {
		accesses = append(accesses, n)
		n = n.First(syntax.EdgeObject)
	}

	for i, j := 0, len(accesses)-1; i < j; i, j = i+1, j-1 {
		accesses[i], accesses[j] = accesses[j], accesses[i]
	}

	return n, accesses
}

// ReferencePath returns the deepest statically reconstructible prefix of a
// reference: for a.b[k].c it is "a.b". ok is false when the chain is not
// rooted at an identifier.
func ReferencePath(n *syntax.Node) (p Path, ok bool) {
	root, accesses := accessChain(n)
	if root == nil || root.Kind != syntax.Identifier {
		return "", false
	}

	var path strings.Builder

	path.WriteString(root.Name) // ignore error

	for _, a := range accesses {
		if a.Computed {
			break
		}

		path.WriteByte('.')     // ignore error
		path.WriteString(a.Name) // ignore error
	}

	return Path(path.String()), true
}
