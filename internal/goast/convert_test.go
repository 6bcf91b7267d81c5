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

package goast_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/memodeps/internal/goast"

	"fillmore-labs.com/memodeps/internal/deps"
	"fillmore-labs.com/memodeps/internal/testsource"
)

const viewDecl = `type View struct {
	Deps   []any
	Render func() string
}

`

var view = Wrapper{Path: "test", Name: "View"}

func analyze(t *testing.T, src string) []string {
	t.Helper()

	fset, f := testsource.Parse(t, viewDecl+src)
	_, info := testsource.Check(t, fset, f)

	a := deps.New(DefaultDepsField)

	got := []string{}

	for lit := range testsource.CompositeLits(f) {
		w, ok := Match(info, lit, []Wrapper{view})
		if !ok {
			continue
		}

		inv, oracle := Convert(info, lit, w, DefaultDepsField)

		findings, err := a.Check(inv, oracle)
		if err != nil {
			t.Fatalf("Check failed: %v", err)
		}

		for _, finding := range findings {
			got = append(got, fmt.Sprintf("%s: %s", finding.Kind, finding.Message(w.Display())))
		}
	}

	return got
}

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "exact",
			src: `func _(a string) View {
	return View{Deps: []any{a}, Render: func() string { return a }}
}`,
			want: []string{},
		},
		{
			name: "missing",
			src: `func _(a, b string) View {
	return View{Deps: []any{}, Render: func() string { return a + b }}
}`,
			want: []string{"missing dependency: test.View is missing some deps: a, b."},
		},
		{
			name: "unused",
			src: `func _(a, b string) View {
	return View{Deps: []any{a, b}, Render: func() string { return a }}
}`,
			want: []string{"unused dependency: Unused dep: 'b'"},
		},
		{
			name: "package level",
			src: `var title = "title"

const prefix = "> "

func format(s string) string { return prefix + s }

func _() View {
	return View{Deps: []any{title}, Render: func() string { return format(title) }}
}`,
			want: []string{"unnecessary dependency: Unnecessary dep: 'title'"},
		},
		{
			name: "imported package",
			src: `import "strings"

func _(s string) View {
	return View{Deps: []any{s}, Render: func() string { return strings.ToUpper(s) }}
}`,
			want: []string{},
		},
		{
			name: "selector",
			src: `type user struct{ name, mail string }

func _(u user) View {
	return View{Deps: []any{u.name}, Render: func() string { return u.name + u.mail }}
}`,
			want: []string{"missing dependency: test.View is missing some deps: u.mail."},
		},
		{
			name: "prefix covers",
			src: `type user struct{ name, mail string }

func _(u user) View {
	return View{Deps: []any{u}, Render: func() string { return u.name + u.mail }}
}`,
			want: []string{},
		},
		{
			name: "inner declarations",
			src: `func _(items []string) View {
	return View{
		Deps: []any{items},
		Render: func() string {
			var s string
			for _, item := range items {
				s += item
			}
			return s
		},
	}
}`,
			want: []string{},
		},
		{
			name: "index",
			src: `func _(m map[string]string, k string) View {
	return View{Deps: []any{m}, Render: func() string { return m[k] }}
}`,
			want: []string{"missing dependency: test.View is missing some deps: k."},
		},
		{
			name: "positional",
			src: `func _(a string) View {
	return View{[]any{a}, func() string { return a }}
}`,
			want: []string{},
		},
		{
			name: "no attributes",
			src: `func _() View {
	return View{}
}`,
			want: []string{"structural error: test.View must be called with the deps prop."},
		},
		{
			name: "no deps",
			src: `func _() View {
	return View{Render: func() string { return "" }}
}`,
			want: []string{"structural error: test.View must only be called with the deps prop."},
		},
		{
			name: "deps not array",
			src: `func _(d []any) View {
	return View{Deps: d, Render: func() string { return "" }}
}`,
			want: []string{"structural error: test.View's deps must be an array."},
		},
		{
			name: "deps not variables",
			src: `func _(a string) View {
	return View{Deps: []any{a, len(a)}, Render: func() string { return a }}
}`,
			want: []string{"structural error: test.View's deps should only be variables."},
		},
		{
			name: "elided pointer elements",
			src: `type P struct{ X int }

func _(a int) View {
	return View{Deps: []any{a}, Render: func() string { _ = []*P{{X: a}}; return "" }}
}`,
			want: []string{},
		},
		{
			name: "elided pointer map values",
			src: `type P struct{ X int }

func _(a int) View {
	return View{Deps: []any{a}, Render: func() string { _ = map[string]*P{"k": {X: a}}; return "" }}
}`,
			want: []string{},
		},
		{
			name: "elided pointer map keys",
			src: `type P struct{ X int }

func _(a, b int) View {
	return View{Deps: []any{a}, Render: func() string { _ = map[*P]int{{X: a}: b}; return "" }}
}`,
			want: []string{"missing dependency: test.View is missing some deps: b."},
		},
		{
			name: "type parameter struct literal",
			src: `func f[T struct{ X int }](a int) View {
	return View{Deps: []any{a}, Render: func() string { _ = T{X: a}; return "" }}
}`,
			want: []string{},
		},
		{
			name: "nested",
			src: `func _(a, b string) View {
	return View{
		Deps: []any{a, b},
		Render: func() string {
			inner := View{Deps: []any{}, Render: func() string { return b }}
			return a + inner.Render()
		},
	}
}`,
			want: []string{"missing dependency: test.View is missing some deps: b."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := analyze(t, tt.src)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("findings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
