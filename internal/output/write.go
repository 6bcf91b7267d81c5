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

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/memodeps/internal/jsx"
)

// report is the serialized form of a [jsx.Result].
type report struct {
	File        string           `json:"file"                  yaml:"file"`
	Error       string           `json:"error,omitempty"       yaml:"error,omitempty"`
	Diagnostics []jsx.Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Write renders results to w in the given format.
func Write(w io.Writer, format Format, results []jsx.Result) error {
	switch format {
	case Text:
		return writeText(w, results)

	case Table:
		writeTable(w, results)

		return nil

	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(reports(results))

	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(reports(results)); err != nil {
			return err
		}

		return enc.Close()

	default:
		return fmt.Errorf("unknown output format %d", format)
	}
}

func reports(results []jsx.Result) []report {
	rs := make([]report, len(results))
	for i, r := range results {
		rs[i] = report{File: r.File, Diagnostics: r.Diagnostics}
		if r.Err != nil {
			rs[i].Error = r.Err.Error()
		}
	}

	return rs
}

func writeText(w io.Writer, results []jsx.Result) error {
	for _, r := range results {
		if r.Err != nil {
			if _, err := fmt.Fprintf(w, "%s: error: %v\n", r.File, r.Err); err != nil {
				return err
			}
		}

		for _, d := range r.Diagnostics {
			if _, err := fmt.Fprintf(w, "%s: %s\n", d.Pos, d.Message); err != nil {
				return err
			}
		}
	}

	return nil
}

func writeTable(w io.Writer, results []jsx.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"File", "Line", "Column", "Kind", "Message"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)

	for _, r := range results {
		if r.Err != nil {
			table.Append([]string{r.File, "", "", "error", r.Err.Error()})
		}

		for _, d := range r.Diagnostics {
			table.Append([]string{r.File, strconv.Itoa(d.Pos.Line), strconv.Itoa(d.Pos.Column), d.Kind.String(), d.Message})
		}
	}

	table.Render()
}

// Count returns the number of diagnostics and failed files.
func Count(results []jsx.Result) (diagnostics, failed int) {
	for _, r := range results {
		if r.Err != nil {
			failed++
		}

		diagnostics += len(r.Diagnostics)
	}

	return diagnostics, failed
}
