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

package deps_test

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/memodeps/internal/deps"
	"fillmore-labs.com/memodeps/internal/syntax"
)

const wrapper = "Donkey"

func ident(name string) *syntax.Node {
	return &syntax.Node{Kind: syntax.Identifier, Name: name}
}

func access(object *syntax.Node, name string) *syntax.Node {
	return (&syntax.Node{Kind: syntax.PropertyAccess, Name: name}).Add(syntax.EdgeObject, object)
}

func index(object, key *syntax.Node) *syntax.Node {
	return (&syntax.Node{Kind: syntax.PropertyAccess, Computed: true}).
		Add(syntax.EdgeObject, object).
		Add(syntax.EdgeProperty, key)
}

func array(elements ...*syntax.Node) *syntax.Node {
	return (&syntax.Node{Kind: syntax.ArrayLiteral}).Add(syntax.EdgeElements, elements...)
}

func call(callee *syntax.Node, args ...*syntax.Node) *syntax.Node {
	return (&syntax.Node{Kind: syntax.Call}).Add(syntax.EdgeCallee, callee).Add(syntax.EdgeArguments, args...)
}

func lambda(body ...*syntax.Node) *syntax.Node {
	return (&syntax.Node{Kind: syntax.Lambda}).Add(syntax.EdgeBody, body...)
}

func attr(name string, value *syntax.Node) *syntax.Node {
	return (&syntax.Node{Kind: syntax.Attribute, Name: name}).Add(syntax.EdgeValue, value)
}

func element(name string, attrs []*syntax.Node, children ...*syntax.Node) *syntax.Node {
	el := &syntax.Node{Kind: syntax.Element, Name: name}
	el.Add(syntax.EdgeAttributes, attrs...)
	el.Add(syntax.EdgeChildren, children...)
	syntax.Link(el)

	return el
}

func donkey(deps *syntax.Node, children ...*syntax.Node) Invocation {
	return Invocation{Element: element(wrapper, []*syntax.Node{attr("deps", deps)}, children...)}
}

func describe(findings []Finding) []string {
	got := make([]string, 0, len(findings))
	for _, f := range findings {
		got = append(got, fmt.Sprintf("%s@%s: %s", f.Kind, f.Node.Kind, f.Message(wrapper)))
	}

	return got
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		inv    Invocation
		oracle Oracle
		want   []string
	}{
		{
			name: "empty_deps_no_references",
			inv:  donkey(array(), &syntax.Node{Kind: syntax.Other, Name: "null"}),
			want: []string{},
		},
		{
			name: "exact_match",
			inv:  donkey(array(ident("a"), ident("b")), call(ident("a"), ident("b"))),
			want: []string{},
		},
		{
			name: "missing",
			inv:  donkey(array(ident("a")), ident("a"), ident("b")),
			want: []string{"missing dependency@attribute: Donkey is missing some deps: b."},
		},
		{
			name: "missing_batched_and_unique",
			inv: donkey(array(ident("a")),
				ident("b"), access(ident("c"), "d"), ident("a"), ident("b"), access(ident("c"), "d")),
			want: []string{"missing dependency@attribute: Donkey is missing some deps: b, c.d."},
		},
		{
			name: "unused",
			inv:  donkey(array(ident("x"), ident("y"))),
			want: []string{
				"unused dependency@identifier: Unused dep: 'x'",
				"unused dependency@identifier: Unused dep: 'y'",
			},
		},
		{
			name: "object_covers_property",
			inv:  donkey(array(ident("obj")), access(ident("obj"), "field")),
			want: []string{},
		},
		{
			name: "property_does_not_cover_object",
			inv:  donkey(array(access(ident("obj"), "field")), ident("obj")),
			want: []string{
				"missing dependency@attribute: Donkey is missing some deps: obj.",
				"unused dependency@property access: Unused dep: 'obj.field'",
			},
		},
		{
			name: "prefix_is_dotted",
			inv:  donkey(array(ident("a")), ident("ab")),
			want: []string{
				"missing dependency@attribute: Donkey is missing some deps: ab.",
				"unused dependency@identifier: Unused dep: 'a'",
			},
		},
		{
			name:   "stable_not_required",
			inv:    donkey(array(ident("a")), ident("a"), access(ident("window"), "location"), ident("thing")),
			oracle: NewStableNames("window", "thing"),
			want:   []string{},
		},
		{
			name:   "stable_unnecessary",
			inv:    donkey(array(ident("var1"), ident("thing"), ident("localDep"), ident("window")), ident("var1"), ident("thing"), ident("localDep"), ident("window")),
			oracle: NewStableNames("var1", "thing", "window"),
			want: []string{
				"unnecessary dependency@identifier: Unnecessary dep: 'var1'",
				"unnecessary dependency@identifier: Unnecessary dep: 'thing'",
				"unnecessary dependency@identifier: Unnecessary dep: 'window'",
			},
		},
		{
			name:   "stable_and_unused",
			inv:    donkey(array(access(ident("Math"), "PI"))),
			oracle: NewStableNames("Math"),
			want: []string{
				"unused dependency@property access: Unused dep: 'Math.PI'",
				"unnecessary dependency@property access: Unnecessary dep: 'Math.PI'",
			},
		},
		{
			name: "child_local",
			inv:  donkey(array(ident("items")), call(access(ident("items"), "map"), lambda(access(ident("item"), "id")))),
			oracle: OracleFunc(func(name string) Binding {
				if name == "item" {
					return ChildLocal
				}

				return RenderLocal
			}),
			want: []string{},
		},
		{
			name: "nested_lambda_and_wrapper",
			inv: donkey(array(ident("a")),
				lambda(element(wrapper, []*syntax.Node{attr("deps", array(ident("b")))}, ident("b")))),
			want: []string{
				"missing dependency@attribute: Donkey is missing some deps: b.",
				"unused dependency@identifier: Unused dep: 'a'",
			},
		},
		{
			name: "computed_access",
			inv:  donkey(array(access(ident("a"), "b"), ident("k")), access(index(access(ident("a"), "b"), ident("k")), "c")),
			want: []string{},
		},
		{
			name: "non_identifier_root",
			inv:  donkey(array(ident("f"), ident("x")), access(call(ident("f"), ident("x")), "y")),
			want: []string{},
		},
		{
			name: "no_attributes",
			inv:  Invocation{Element: element(wrapper, nil, ident("a"))},
			want: []string{"structural error@element: Donkey must be called with the deps prop."},
		},
		{
			name: "no_deps",
			inv:  Invocation{Element: element(wrapper, []*syntax.Node{attr("foo", ident("whatever"))})},
			want: []string{"structural error@element: Donkey must only be called with the deps prop."},
		},
		{
			name: "extra_attribute",
			inv: Invocation{Element: element(wrapper,
				[]*syntax.Node{attr("foo", ident("whatever")), attr("deps", array(ident("a")))}, ident("a"))},
			want: []string{},
		},
		{
			name: "deps_not_array",
			inv:  donkey(lambda(), ident("a")),
			want: []string{"structural error@lambda: Donkey's deps must be an array."},
		},
		{
			name: "deps_not_variables",
			inv:  donkey(array(lambda(), ident("a"), call(ident("f")), index(ident("a"), ident("k"))), ident("a"), ident("b")),
			want: []string{
				"structural error@lambda: Donkey's deps should only be variables.",
				"structural error@call: Donkey's deps should only be variables.",
				"structural error@property access: Donkey's deps should only be variables.",
				"missing dependency@attribute: Donkey is missing some deps: b.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := describe(Analyze(tt.inv, tt.oracle))

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Analyze() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	t.Parallel()

	inv := donkey(array(ident("a"), ident("g"), lambda()), ident("b"), access(ident("c"), "d"))
	oracle := NewStableNames("g")

	first := Analyze(inv, oracle)
	second := Analyze(inv, oracle)

	if diff := cmp.Diff(describe(first), describe(second)); diff != "" {
		t.Errorf("Analyze() not idempotent (-first +second):\n%s", diff)
	}

	for i := range first {
		if first[i].Node != second[i].Node {
			t.Errorf("Finding %d attached to different nodes", i)
		}
	}
}

func TestFindingNodes(t *testing.T) {
	t.Parallel()

	x, y := ident("x"), ident("y")
	inv := donkey(array(x, y), ident("x"), ident("z"))

	findings := Analyze(inv, nil)
	if len(findings) != 2 {
		t.Fatalf("Got %d findings, want 2", len(findings))
	}

	if got, want := findings[0].Node, inv.Attribute("deps"); got != want {
		t.Errorf("Missing deps attached to %v, want deps attribute", got.Kind)
	}

	if got := findings[1].Node; got != y {
		t.Errorf("Unused dep attached to %s, want y", got.Name)
	}
}

func TestCustomDepsAttribute(t *testing.T) {
	t.Parallel()

	inv := Invocation{Element: element("memo.View",
		[]*syntax.Node{attr("Deps", array(ident("a"))), attr("Render", lambda(ident("a")))},
		lambda(ident("a")))}

	if got := New("Deps").Analyze(inv, nil); len(got) != 0 {
		t.Errorf("Got findings %v, want none", describe(got))
	}

	if got, want := describe(Analyze(inv, nil)), []string{
		"structural error@element: Donkey must only be called with the deps prop.",
	}; !slices.Equal(got, want) {
		t.Errorf("Analyze() = %v, want %v", got, want)
	}
}

func TestInvocations(t *testing.T) {
	t.Parallel()

	inner := element(wrapper, []*syntax.Node{attr("deps", array())})
	other := element("NotDonkey", []*syntax.Node{attr("foo", ident("bar"))}, inner)
	root := element(wrapper, nil, other)

	var got []*syntax.Node
	for inv := range Invocations(syntax.DefaultWalker, root, wrapper) {
		got = append(got, inv.Element)
	}

	if len(got) != 2 || got[0] != root || got[1] != inner {
		t.Errorf("Invocations() = %d elements, want outer and nested wrapper", len(got))
	}
}

func TestCheckRecoversContractError(t *testing.T) {
	t.Parallel()

	faulty := OracleFunc(func(string) Binding {
		panic(&ContractError{Op: "Classify", Kind: syntax.Other})
	})

	findings, err := New("").Check(donkey(array(), ident("a")), faulty)

	var cerr *ContractError
	if !errors.As(err, &cerr) {
		t.Fatalf("Check() error = %v, want *ContractError", err)
	}

	if findings != nil {
		t.Errorf("Check() findings = %v, want nil", describe(findings))
	}
}

func TestCheckRepanics(t *testing.T) {
	t.Parallel()

	faulty := OracleFunc(func(string) Binding { panic("boom") })

	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("Recovered %v, want boom", r)
		}
	}()

	_, _ = New("").Check(donkey(array(), ident("a")), faulty)

	t.Error("Check() did not panic")
}
