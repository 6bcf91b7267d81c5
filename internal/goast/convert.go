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

package goast

import (
	"go/ast"
	"go/types"

	"fillmore-labs.com/memodeps/internal/deps"
	"fillmore-labs.com/memodeps/internal/syntax"
)

// Convert translates the wrapper literal lit into an invocation and returns
// the oracle classifying its identifiers.
func Convert(info *types.Info, lit *ast.CompositeLit, w Wrapper, depsField string) (deps.Invocation, deps.Oracle) {
	c := converter{
		info:     info,
		lit:      lit,
		bindings: make(oracle),
	}

	el := c.element(w.Display(), depsField)
	syntax.Link(el)

	return deps.Invocation{Element: el}, c.bindings
}

type converter struct {
	info     *types.Info
	lit      *ast.CompositeLit
	bindings oracle
}

// element converts the fields of the wrapper literal.
func (c *converter) element(name, depsField string) *syntax.Node {
	el := c.node(syntax.Element, name, c.lit)

	fields, _ := underlying(c.info.TypeOf(c.lit)).(*types.Struct)

	for i, elt := range c.lit.Elts {
		field, value := "", elt

		if kv, ok := elt.(*ast.KeyValueExpr); ok {
			if key, ok := kv.Key.(*ast.Ident); ok {
				field = key.Name
			}

			value = kv.Value
		} else if fields != nil && i < fields.NumFields() {
			field = fields.Field(i).Name()
		}

		v := c.expr(value)
		el.Add(syntax.EdgeAttributes, c.node(syntax.Attribute, field, elt).Add(syntax.EdgeValue, v))

		if field != depsField {
			el.Add(syntax.EdgeChildren, v)
		}
	}

	return el
}

func (c *converter) expr(e ast.Expr) *syntax.Node {
	switch e := e.(type) {
	case *ast.ParenExpr:
		return c.expr(e.X)

	case *ast.Ident:
		return c.ident(e)

	case *ast.SelectorExpr:
		return c.node(syntax.PropertyAccess, e.Sel.Name, e).
			Add(syntax.EdgeObject, c.expr(e.X))

	case *ast.IndexExpr:
		n := c.node(syntax.PropertyAccess, "", e)
		n.Computed = true

		return n.Add(syntax.EdgeObject, c.expr(e.X)).
			Add(syntax.EdgeProperty, c.expr(e.Index))

	case *ast.CallExpr:
		n := c.node(syntax.Call, "", e).Add(syntax.EdgeCallee, c.expr(e.Fun))
		for _, arg := range e.Args {
			n.Add(syntax.EdgeArguments, c.expr(arg))
		}

		return n

	case *ast.FuncLit:
		return c.node(syntax.Lambda, "", e).
			Add(syntax.EdgeBody, c.generic(e.Type), c.generic(e.Body))

	case *ast.CompositeLit:
		return c.compositeLit(e)

	default:
		return c.generic(e)
	}
}

// compositeLit converts slice and array literals to array literals.
// Type expressions and struct field keys are not references and are dropped.
func (c *converter) compositeLit(lit *ast.CompositeLit) *syntax.Node {
	var n *syntax.Node

	switch literalType(c.info.TypeOf(lit)).(type) {
	case *types.Slice, *types.Array:
		n = c.node(syntax.ArrayLiteral, "", lit)
		for _, elt := range lit.Elts {
			n.Add(syntax.EdgeElements, c.expr(elementValue(elt)))
		}

	case *types.Struct:
		n = c.node(syntax.Other, "", lit)
		for _, elt := range lit.Elts {
			n.Add(syntax.EdgeChildren, c.expr(elementValue(elt)))
		}

	default:
		n = c.node(syntax.Other, "", lit)
		for _, elt := range lit.Elts {
			n.Add(syntax.EdgeChildren, c.expr(elt))
		}
	}

	return n
}

// generic converts any other node, keeping all its children.
func (c *converter) generic(n ast.Node) *syntax.Node {
	out := c.node(syntax.Other, "", n)

	ast.Inspect(n, func(child ast.Node) bool {
		switch child := child.(type) {
		case nil:
			return false

		case ast.Expr:
			if child == n {
				return true
			}

			out.Add(syntax.EdgeChildren, c.expr(child))

		default:
			if child == n {
				return true
			}

			out.Add(syntax.EdgeChildren, c.generic(child))
		}

		return false
	})

	return out
}

// ident converts an identifier. Only uses of objects declared outside the
// wrapper literal become [syntax.Identifier] nodes.
func (c *converter) ident(id *ast.Ident) *syntax.Node {
	n := c.node(syntax.Other, id.Name, id)

	if id.Name == "_" {
		return n
	}

	if _, ok := c.info.Defs[id]; ok {
		return n // declaration
	}

	obj := c.info.Uses[id]
	if obj == nil || c.declaredInside(obj) {
		return n
	}

	if v, ok := obj.(*types.Var); ok && v.IsField() {
		return n // struct literal key
	}

	n.Kind = syntax.Identifier
	c.bindings.record(id.Name, binding(obj))

	return n
}

func (c *converter) declaredInside(obj types.Object) bool {
	pos := obj.Pos()

	return pos.IsValid() && c.lit.Pos() <= pos && pos < c.lit.End()
}

func (c *converter) node(kind syntax.Kind, name string, n ast.Node) *syntax.Node {
	return &syntax.Node{Kind: kind, Name: name, Pos: n.Pos(), End: n.End()}
}

// binding classifies a used object.
func binding(obj types.Object) deps.Binding {
	v, ok := obj.(*types.Var)
	if !ok {
		return deps.ModuleStable // constants, types, functions, packages, builtins and nil
	}

	if pkg := v.Pkg(); pkg != nil && v.Parent() == pkg.Scope() {
		return deps.ModuleStable
	}

	return deps.RenderLocal
}

// oracle maps names used by one invocation to their binding.
type oracle map[string]deps.Binding

// record stores the binding of name. When a name denotes different objects
// within one invocation, render-local wins.
func (o oracle) record(name string, b deps.Binding) {
	if prev, ok := o[name]; ok && prev == deps.RenderLocal {
		return
	}

	o[name] = b
}

// Classify implements [deps.Oracle].
func (o oracle) Classify(name string) deps.Binding {
	if b, ok := o[name]; ok {
		return b
	}

	return deps.RenderLocal
}

func underlying(t types.Type) types.Type {
	if t == nil {
		return nil
	}

	return t.Underlying()
}

// literalType is the underlying type of a composite literal. Literals with
// elided type in pointer element position, like the elements of []*T{{...}},
// are recorded as *T.
func literalType(t types.Type) types.Type {
	t = underlying(t)
	if p, ok := t.(*types.Pointer); ok {
		return p.Elem().Underlying()
	}

	return t
}

func elementValue(e ast.Expr) ast.Expr {
	if kv, ok := e.(*ast.KeyValueExpr); ok {
		return kv.Value
	}

	return e
}
