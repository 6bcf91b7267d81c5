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

package jsx

import (
	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/memodeps/internal/deps"
)

// scope is a function or module scope with the names it declares.
type scope struct {
	parent *scope
	names  map[string]struct{}
}

func newScope(parent *scope, n *sitter.Node, src []byte) *scope {
	s := &scope{parent: parent, names: make(map[string]struct{})}
	declare := func(name string) { s.names[name] = struct{}{} }

	switch n.Type() {
	case "program":
		scopeDeclarations(n, src, declare)

	default: // function-like
		if isFunctionExpression(n.Type()) {
			if name := n.ChildByFieldName("name"); name != nil {
				declare(name.Content(src))
			}
		}

		parameters(n, src, declare)

		if body := n.ChildByFieldName("body"); body != nil {
			scopeDeclarations(body, src, declare)
		}
	}

	return s
}

// lookup returns the innermost scope declaring name, or nil for globals.
func (s *scope) lookup(name string) *scope {
	for sc := s; sc != nil; sc = sc.parent {
		if _, ok := sc.names[name]; ok {
			return sc
		}
	}

	return nil
}

// within reports whether s is nested strictly inside outer.
func (s *scope) within(outer *scope) bool {
	for sc := s.parent; sc != nil; sc = sc.parent {
		if sc == outer {
			return true
		}
	}

	return false
}

// binding classifies name as seen from this scope.
// Names declared in the module scope or nowhere at all (globals) are stable.
func (s *scope) binding(name string) deps.Binding {
	for sc := s; sc != nil; sc = sc.parent {
		if _, ok := sc.names[name]; !ok {
			continue
		}

		if sc.parent == nil {
			return deps.ModuleStable
		}

		return deps.RenderLocal
	}

	return deps.ModuleStable
}

func isFunctionLike(typ string) bool {
	switch typ {
	case "function_declaration", "generator_function_declaration", "method_definition":
		return true

	default:
		return isFunctionExpression(typ)
	}
}

func isFunctionExpression(typ string) bool {
	switch typ {
	case "function", "function_expression", "generator_function", "arrow_function":
		return true

	default:
		return false
	}
}

// scopeDeclarations calls declare for each name bound in the scope of n,
// without descending into nested functions.
func scopeDeclarations(n *sitter.Node, src []byte, declare func(string)) {
	for i := range int(n.NamedChildCount()) {
		child := n.NamedChild(i)

		if isFunctionLike(child.Type()) {
			switch child.Type() {
			case "function_declaration", "generator_function_declaration":
				if name := child.ChildByFieldName("name"); name != nil {
					declare(name.Content(src))
				}
			}

			continue
		}

		bindings(child, src, declare)
		scopeDeclarations(child, src, declare)
	}
}

// bindings calls declare for the names a declaration site n binds directly.
func bindings(n *sitter.Node, src []byte, declare func(string)) {
	switch n.Type() {
	case "variable_declarator":
		patternNames(n.ChildByFieldName("name"), src, declare)

	case "class_declaration":
		if name := n.ChildByFieldName("name"); name != nil {
			declare(name.Content(src))
		}

	case "catch_clause":
		patternNames(n.ChildByFieldName("parameter"), src, declare)

	case "for_in_statement":
		if n.ChildByFieldName("kind") != nil {
			patternNames(n.ChildByFieldName("left"), src, declare)
		}

	case "import_clause", "named_imports", "namespace_import":
		for i := range int(n.NamedChildCount()) {
			if child := n.NamedChild(i); child.Type() == "identifier" {
				declare(child.Content(src))
			}
		}

	case "import_specifier":
		name := n.ChildByFieldName("alias")
		if name == nil {
			name = n.ChildByFieldName("name")
		}

		if name != nil {
			declare(name.Content(src))
		}
	}
}

// parameters calls declare for the parameter names of the function-like node n.
func parameters(n *sitter.Node, src []byte, declare func(string)) {
	if p := n.ChildByFieldName("parameter"); p != nil {
		patternNames(p, src, declare)
	}

	params := n.ChildByFieldName("parameters")
	if params == nil {
		return
	}

	for i := range int(params.NamedChildCount()) {
		patternNames(params.NamedChild(i), src, declare)
	}
}

// patternNames calls declare for each name bound by a binding pattern.
func patternNames(n *sitter.Node, src []byte, declare func(string)) {
	if n == nil {
		return
	}

	switch n.Type() {
	case "identifier", "shorthand_property_identifier_pattern", "shorthand_property_identifier":
		declare(n.Content(src))

	case "assignment_pattern", "object_assignment_pattern":
		patternNames(n.ChildByFieldName("left"), src, declare)

	case "pair_pattern":
		patternNames(n.ChildByFieldName("value"), src, declare)

	case "object_pattern", "array_pattern", "rest_pattern":
		for i := range int(n.NamedChildCount()) {
			patternNames(n.NamedChild(i), src, declare)
		}
	}
}
