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

// Package report converts dependency findings into analysis diagnostics.
package report

import (
	"context"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/memodeps/internal/config"
	"fillmore-labs.com/memodeps/internal/deps"
)

// Report emits the enabled findings of one invocation.
func Report(ctx context.Context, p *analysis.Pass, wrapper string, findings []deps.Finding, checks config.Checks, behavior config.Behavior) {
	if len(findings) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	for _, d := range Diagnostics(wrapper, findings, checks, behavior.Enabled(config.SuggestFixes)) {
		p.Report(d)
	}
}

// Diagnostics creates a diagnostic for each finding passing checks.
// The category of a diagnostic is the finding kind.
func Diagnostics(wrapper string, findings []deps.Finding, checks config.Checks, fixes bool) []analysis.Diagnostic {
	var removals map[*deps.Finding][]analysis.TextEdit
	if fixes {
		removals = removeEdits(findings, checks)
	}

	diagnostics := make([]analysis.Diagnostic, 0, len(findings))

	for i := range findings {
		f := &findings[i]
		if !f.Enabled(checks) {
			continue
		}

		d := analysis.Diagnostic{
			Pos:      f.Node.Pos,
			End:      f.Node.End,
			Category: f.Kind.String(),
			Message:  f.Message(wrapper),
		}

		if fixes {
			d.SuggestedFixes = suggestedFixes(f, removals[f])
		}

		diagnostics = append(diagnostics, d)
	}

	return diagnostics
}

func suggestedFixes(f *deps.Finding, removal []analysis.TextEdit) []analysis.SuggestedFix {
	switch f.Kind {
	case deps.MissingDependency:
		if edits := insertMissing(f); len(edits) > 0 {
			return []analysis.SuggestedFix{{Message: "Add missing dependencies", TextEdits: edits}}
		}

	case deps.UnusedDependency:
		if len(removal) > 0 {
			return []analysis.SuggestedFix{{Message: "Remove unused dependency '" + string(f.Path()) + "'", TextEdits: removal}}
		}

	case deps.UnnecessaryDependency:
		if len(removal) > 0 {
			return []analysis.SuggestedFix{{Message: "Remove unnecessary dependency '" + string(f.Path()) + "'", TextEdits: removal}}
		}
	}

	return nil
}
