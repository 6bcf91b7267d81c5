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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/memodeps/internal/astutil"
	"fillmore-labs.com/memodeps/internal/config"
	"fillmore-labs.com/memodeps/internal/deps"
	"fillmore-labs.com/memodeps/internal/goast"
	"fillmore-labs.com/memodeps/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the memodeps analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("memodeps: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	if len(r.Wrappers) == 0 {
		return nil, nil
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "MemoDeps")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	a := deps.New(r.DepsField)

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if hasNoLint(file.Doc) {
			continue
		}

		for c := range f.Preorder((*ast.CompositeLit)(nil)) {
			lit := c.Node().(*ast.CompositeLit)

			w, ok := goast.Match(p.TypesInfo, lit, r.Wrappers)
			if !ok || currentFile.NoLintComment(lit.Pos()) || inNoLintFunc(c) {
				continue
			}

			r.check(ctx, p, a, lit, w)
		}
	}

	return nil, nil
}

func (r *Options) check(ctx context.Context, p *analysis.Pass, a deps.Analyzer, lit *ast.CompositeLit, w goast.Wrapper) {
	defer trace.StartRegion(ctx, "Check").End()

	inv, oracle := goast.Convert(p.TypesInfo, lit, w, r.DepsField)

	findings, err := a.Check(inv, oracle)
	if err != nil {
		astutil.InternalError(p, lit, "Can't check %s: %v", w.Display(), err)

		return
	}

	report.Report(ctx, p, w.Display(), findings, r.Checks, r.Behavior)
}

// inNoLintFunc reports whether c is inside a function declaration with a nolint comment.
func inNoLintFunc(c inspector.Cursor) bool {
	for fc := range c.Enclosing((*ast.FuncDecl)(nil)) {
		return hasNoLint(fc.Node().(*ast.FuncDecl).Doc)
	}

	return false
}

func hasNoLint(doc *ast.CommentGroup) bool {
	return doc != nil && astutil.CommentHasNoLint(doc.List[len(doc.List)-1])
}
