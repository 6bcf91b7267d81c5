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

package report

import (
	"go/token"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/memodeps/internal/config"
	"fillmore-labs.com/memodeps/internal/deps"
	"fillmore-labs.com/memodeps/internal/syntax"
)

// insertMissing appends the missing paths to the deps array.
func insertMissing(f *deps.Finding) []analysis.TextEdit {
	value := f.Node.First(syntax.EdgeValue)
	if value == nil || value.Kind != syntax.ArrayLiteral || !value.End.IsValid() {
		return nil
	}

	paths := make([]string, len(f.Paths))
	for i, p := range f.Paths {
		paths[i] = string(p)
	}

	text := strings.Join(paths, ", ")

	elements := value.Edge(syntax.EdgeElements)
	if len(elements) == 0 {
		// before the closing brace
		return []analysis.TextEdit{{Pos: value.End - 1, End: value.End - 1, NewText: []byte(text)}}
	}

	last := elements[len(elements)-1]

	return []analysis.TextEdit{{Pos: last.End, End: last.End, NewText: []byte(", " + text)}}
}

// removeEdits calculates the edits deleting unused and unnecessary deps.
//
// Deps removed by several findings are deleted once, preferring the unused finding.
// The edits of all findings of one deps array are disjoint.
func removeEdits(findings []deps.Finding, checks config.Checks) map[*deps.Finding][]analysis.TextEdit {
	owner := make(map[*syntax.Node]*deps.Finding)

	for i := range findings {
		f := &findings[i]
		if !f.Enabled(checks) {
			continue
		}

		switch f.Kind {
		case deps.UnusedDependency, deps.UnnecessaryDependency:
			if _, ok := owner[f.Node]; !ok {
				owner[f.Node] = f
			}
		}
	}

	if len(owner) == 0 {
		return nil
	}

	edits := make(map[*deps.Finding][]analysis.TextEdit, len(owner))
	done := make(map[*syntax.Node]bool)

	for n := range owner {
		array := n.Parent()
		if array == nil || done[array] {
			continue
		}

		done[array] = true

		elements := array.Edge(syntax.EdgeElements)

		removed := make([]bool, len(elements))
		for i, e := range elements {
			_, removed[i] = owner[e]
		}

		for i, edit := range removals(elements, removed) {
			if removed[i] {
				f := owner[elements[i]]
				edits[f] = append(edits[f], edit)
			}
		}
	}

	return edits
}

// removals calculates deletions for the removed elements, keeping the
// separators between the remaining ones.
//
// Elements before the first kept one are deleted up to their successor,
// elements after it starting at the end of their predecessor.
func removals(elements []*syntax.Node, removed []bool) []analysis.TextEdit {
	first := len(elements)

	for i, r := range removed {
		if !r {
			first = i
			break
		}
	}

	edits := make([]analysis.TextEdit, len(elements))

	for i, e := range elements {
		if !removed[i] {
			continue
		}

		var pos, end token.Pos

		switch {
		case i < first && i+1 < len(elements):
			pos, end = e.Pos, elements[i+1].Pos

		case i < first:
			pos, end = e.Pos, e.End

		default:
			pos, end = elements[i-1].End, e.End
		}

		edits[i] = analysis.TextEdit{Pos: pos, End: end}
	}

	return edits
}
