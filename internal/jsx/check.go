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
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/memodeps/internal/config"
	"fillmore-labs.com/memodeps/internal/deps"
	"fillmore-labs.com/memodeps/internal/syntax"
)

// Config configures the JSX checker.
type Config struct {
	// Wrapper is the element name of the memoization wrapper.
	Wrapper string `json:"wrapper" yaml:"wrapper"`

	// Display is the wrapper name used in messages.
	Display string `json:"display" yaml:"display"`

	// DepsAttr is the name of the dependency attribute.
	DepsAttr string `json:"deps-attribute" yaml:"deps-attribute"`

	// Checks are the enabled checks.
	Checks config.Checks `json:"-" yaml:"-"`
}

// DefaultConfig returns the configuration for React Donkey.
func DefaultConfig() Config {
	return Config{
		Wrapper:  "Donkey",
		Display:  "React Donkey",
		DepsAttr: deps.DefaultDepsAttribute,
		Checks:   config.DefaultChecks(),
	}
}

// Diagnostic is a reported finding with resolved positions.
type Diagnostic struct {
	Pos     token.Position   `json:"pos"     yaml:"pos"`
	End     token.Position   `json:"end"     yaml:"end"`
	Kind    deps.FindingKind `json:"kind"    yaml:"kind"`
	Message string           `json:"message" yaml:"message"`
}

// Check analyzes every wrapper element of the file.
// Elements that cannot be analyzed do not stop the check; their errors are
// joined into the returned error next to the diagnostics of the others.
func (f *File) Check(cfg Config) ([]Diagnostic, error) {
	return f.check(cfg, f.oracle)
}

func (f *File) check(cfg Config, oracle func(el *syntax.Node) deps.Oracle) ([]Diagnostic, error) {
	a := deps.New(cfg.DepsAttr)

	var (
		diagnostics []Diagnostic
		errs        []error
	)

	for inv := range deps.Invocations(syntax.DefaultWalker, f.Root, cfg.Wrapper) {
		findings, err := a.Check(f.invocation(inv.Element), oracle(inv.Element))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.fset.Position(inv.Element.Pos), err))

			continue
		}

		for _, finding := range findings {
			if !finding.Enabled(cfg.Checks) {
				continue
			}

			diagnostics = append(diagnostics, Diagnostic{
				Pos:     f.fset.Position(finding.Node.Pos),
				End:     f.fset.Position(finding.Node.End),
				Kind:    finding.Kind,
				Message: finding.Message(cfg.Display),
			})
		}
	}

	return diagnostics, errors.Join(errs...)
}

// invocation returns a copy of the wrapper element el where identifiers
// bound inside el are no longer references.
func (f *File) invocation(el *syntax.Node) deps.Invocation {
	outer := f.elements[el]

	var local func(n *syntax.Node) *syntax.Node
	local = func(n *syntax.Node) *syntax.Node {
		c := &syntax.Node{Kind: n.Kind, Name: n.Name, Computed: n.Computed, Pos: n.Pos, End: n.End}

		if sc, ok := f.resolved[n]; ok && n.Kind == syntax.Identifier && sc.within(outer) {
			c.Kind = syntax.Other
		}

		for _, e := range n.Edges {
			if e.Name == syntax.EdgeParent {
				continue
			}

			nodes := make([]*syntax.Node, 0, len(e.Nodes))
			for _, child := range e.Nodes {
				nodes = append(nodes, local(child))
			}

			c.Edges = append(c.Edges, syntax.Edge{Name: e.Name, Nodes: nodes})
		}

		return c
	}

	root := local(el)
	syntax.Link(root)

	return deps.Invocation{Element: root}
}

// oracle classifies the names referenced by el from the scope enclosing it.
func (f *File) oracle(el *syntax.Node) deps.Oracle {
	outer := f.elements[el]

	return deps.OracleFunc(func(name string) deps.Binding {
		if outer == nil {
			return deps.RenderLocal
		}

		return outer.binding(name)
	})
}

// Result holds the outcome of checking one file.
type Result struct {
	File        string       `json:"file"                  yaml:"file"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
	Err         error        `json:"-"                     yaml:"-"`
}

// CheckSource parses and checks a single source.
func CheckSource(ctx context.Context, fset *token.FileSet, filename string, src []byte, cfg Config) ([]Diagnostic, error) {
	f, err := Parse(ctx, fset, filename, src)
	if err != nil {
		return nil, err
	}

	return f.Check(cfg)
}

// CheckFiles reads and checks the named files using up to parallel goroutines.
// Results are returned in input order; per-file errors are recorded in [Result.Err].
// The returned error is only set when ctx is canceled.
func CheckFiles(ctx context.Context, paths []string, cfg Config, parallel int) ([]Result, error) {
	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}

	fset := token.NewFileSet()

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = checkFile(ctx, fset, path, cfg)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func checkFile(ctx context.Context, fset *token.FileSet, path string, cfg Config) Result {
	result := Result{File: path}

	src, err := os.ReadFile(path)
	if err != nil {
		result.Err = err

		return result
	}

	result.Diagnostics, result.Err = CheckSource(ctx, fset, path, src, cfg)

	slog.Debug("Checked file", slog.String("file", path), slog.Int("diagnostics", len(result.Diagnostics)), slog.Any("error", result.Err))

	return result
}
