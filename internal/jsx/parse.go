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
	"context"
	"errors"
	"fmt"
	"go/token"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"fillmore-labs.com/memodeps/internal/syntax"
)

// ErrSyntax is returned for sources tree-sitter cannot parse without errors.
var ErrSyntax = errors.New("syntax error")

// File is a parsed JavaScript module.
type File struct {
	// Name is the file name used in positions.
	Name string

	// Root is the converted program.
	Root *syntax.Node

	fset     *token.FileSet
	elements map[*syntax.Node]*scope // scope enclosing each element
	resolved map[*syntax.Node]*scope // declaring scope of each bound identifier
}

// Parse parses src as a JavaScript module with JSX and converts it.
// Positions are recorded in fset.
func Parse(ctx context.Context, fset *token.FileSet, filename string, src []byte) (*File, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	defer tree.Close()

	tf := fset.AddFile(filename, -1, len(src))
	tf.SetLinesForContent(src)

	root := tree.RootNode()
	if root.HasError() {
		pos := tf.Pos(int(firstError(root).StartByte()))

		return nil, fmt.Errorf("%s: %w", fset.Position(pos), ErrSyntax)
	}

	c := converter{
		src:      src,
		file:     tf,
		elements: make(map[*syntax.Node]*scope),
		resolved: make(map[*syntax.Node]*scope),
	}

	c.scope = newScope(nil, root, src)

	program := c.convert(root)
	syntax.Link(program)

	return &File{Name: filename, Root: program, fset: fset, elements: c.elements, resolved: c.resolved}, nil
}

// firstError returns the first erroneous or missing node below n.
func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}

	for i := range int(n.ChildCount()) {
		if child := n.Child(i); child.HasError() {
			return firstError(child)
		}
	}

	return n
}

type converter struct {
	src      []byte
	file     *token.File
	scope    *scope
	elements map[*syntax.Node]*scope
	resolved map[*syntax.Node]*scope
}

func (c *converter) node(kind syntax.Kind, name string, n *sitter.Node) *syntax.Node {
	return &syntax.Node{
		Kind: kind,
		Name: name,
		Pos:  c.file.Pos(int(n.StartByte())),
		End:  c.file.Pos(int(n.EndByte())),
	}
}

// convert translates n and its subtree. Comments and JSX text convert to nil.
func (c *converter) convert(n *sitter.Node) *syntax.Node {
	if n == nil {
		return nil
	}

	typ := n.Type()

	if isFunctionLike(typ) {
		c.scope = newScope(c.scope, n, c.src)
		defer func() { c.scope = c.scope.parent }()
	}

	switch typ {
	case "comment", "jsx_text", "jsx_closing_element":
		return nil

	case "identifier", "shorthand_property_identifier":
		return c.identifier(n)

	case "member_expression":
		name := ""
		if property := n.ChildByFieldName("property"); property != nil {
			name = property.Content(c.src)
		}

		return c.node(syntax.PropertyAccess, name, n).
			Add(syntax.EdgeObject, c.convert(n.ChildByFieldName("object")))

	case "subscript_expression":
		access := c.node(syntax.PropertyAccess, "", n)
		access.Computed = true

		return access.Add(syntax.EdgeObject, c.convert(n.ChildByFieldName("object"))).
			Add(syntax.EdgeProperty, c.convert(n.ChildByFieldName("index")))

	case "array":
		return c.node(syntax.ArrayLiteral, "", n).Add(syntax.EdgeElements, c.children(n)...)

	case "call_expression":
		call := c.node(syntax.Call, "", n).Add(syntax.EdgeCallee, c.convert(n.ChildByFieldName("function")))

		if args := n.ChildByFieldName("arguments"); args != nil && args.Type() == "arguments" {
			call.Add(syntax.EdgeArguments, c.children(args)...)
		} else {
			call.Add(syntax.EdgeArguments, c.convert(args)) // tagged template
		}

		return call

	case "parenthesized_expression", "jsx_expression":
		children := c.children(n)
		if len(children) == 1 {
			return children[0]
		}

		return c.node(syntax.Other, "", n).Add(syntax.EdgeChildren, children...)

	case "jsx_element", "jsx_self_closing_element":
		return c.element(n)

	case "jsx_attribute":
		return c.attribute(n)
	}

	var kind syntax.Kind
	if isFunctionExpression(typ) {
		kind = syntax.Lambda
	}

	edge := syntax.EdgeChildren
	if kind == syntax.Lambda {
		edge = syntax.EdgeBody
	}

	return c.node(kind, "", n).Add(edge, c.children(n)...)
}

// children converts the named children of n.
func (c *converter) children(n *sitter.Node) []*syntax.Node {
	count := int(n.NamedChildCount())
	nodes := make([]*syntax.Node, 0, count)

	for i := range count {
		if child := c.convert(n.NamedChild(i)); child != nil {
			nodes = append(nodes, child)
		}
	}

	return nodes
}

// element converts a JSX element. Element names are not references.
func (c *converter) element(n *sitter.Node) *syntax.Node {
	opening := n
	if n.Type() == "jsx_element" {
		opening = n.NamedChild(0)
	}

	name := ""
	nameNode := opening.ChildByFieldName("name")
	if nameNode != nil {
		name = nameNode.Content(c.src)
	}

	el := c.node(syntax.Element, name, n)

	for i := range int(opening.NamedChildCount()) {
		child := opening.NamedChild(i)
		if nameNode != nil && child.StartByte() == nameNode.StartByte() {
			continue
		}

		switch child.Type() {
		case "comment":

		case "jsx_attribute":
			el.Add(syntax.EdgeAttributes, c.attribute(child))

		default: // spread attribute
			el.Add(syntax.EdgeAttributes, c.node(syntax.Attribute, "", child).Add(syntax.EdgeValue, c.convert(child)))
		}
	}

	if n.Type() == "jsx_element" {
		for i := 1; i < int(n.NamedChildCount()); i++ {
			el.Add(syntax.EdgeChildren, c.convert(n.NamedChild(i)))
		}
	}

	c.elements[el] = c.scope

	return el
}

// attribute converts a JSX attribute; the first named child is the name,
// the optional second one the value.
func (c *converter) attribute(n *sitter.Node) *syntax.Node {
	name := ""
	if n.NamedChildCount() > 0 {
		name = n.NamedChild(0).Content(c.src)
	}

	attr := c.node(syntax.Attribute, name, n)
	if n.NamedChildCount() > 1 {
		attr.Add(syntax.EdgeValue, c.convert(n.NamedChild(1)))
	}

	return attr
}

// identifier converts an identifier, recording the scope declaring it.
// Unresolved identifiers are globals.
func (c *converter) identifier(n *sitter.Node) *syntax.Node {
	id := c.node(syntax.Identifier, n.Content(c.src), n)

	if sc := c.scope.lookup(id.Name); sc != nil {
		c.resolved[id] = sc
	}

	return id
}
