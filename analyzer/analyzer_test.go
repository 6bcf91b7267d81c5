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

package analyzer_test

import (
	"io"
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	. "fillmore-labs.com/memodeps/analyzer"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	testdata := analysistest.TestData()

	tests := []struct {
		name    string
		dir     string
		options Option
		fix     bool
	}{
		{
			name:    "Default",
			dir:     "./a",
			options: WithWrappers("test/memo.View"),
			fix:     true,
		},
		{
			name:    "Checks",
			dir:     "./nofix",
			options: Options{WithWrappers("test/memo.View"), WithUnused(false), WithUnnecessary(false)},
		},
		{
			name:    "Custom",
			dir:     "./custom",
			options: Options{WithWrappers("test/custom.Cached"), WithDepsField("Inputs")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if a := New(tt.options); tt.fix {
				analysistest.RunWithSuggestedFixes(t, testdata, a, tt.dir)
			} else {
				analysistest.Run(t, testdata, a, tt.dir)
			}
		})
	}
}

func TestFlags(t *testing.T) {
	t.Parallel()

	a := New()

	for _, name := range []string{"generated", "missing", "unused", "unnecessary", "wrapper", "deps-field"} {
		if a.Flags.Lookup(name) == nil {
			t.Errorf("Flag -%s not registered", name)
		}
	}

	if err := a.Flags.Parse([]string{"-wrapper=test/memo.View,test/custom.Cached", "-unused=false"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got, want := a.Flags.Lookup("wrapper").Value.String(), "test/memo.View,test/custom.Cached"; got != want {
		t.Errorf("Got -wrapper=%q, want %q", got, want)
	}

	if got := a.Flags.Lookup("unused").Value.String(); got != "false" {
		t.Errorf("Got -unused=%s, want false", got)
	}
}

func TestInvalidWrapperFlag(t *testing.T) {
	t.Parallel()

	a := New()
	a.Flags.Init("test", 0)
	a.Flags.SetOutput(io.Discard)

	if err := a.Flags.Parse([]string{"-wrapper=View"}); err == nil {
		t.Error("Expected error for malformed wrapper")
	}
}

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{WithWrappers("test/memo.View"), nil, Options{WithMissing(false), WithGenerated(true)}}

	const want = "[wrappers=[test/memo.View] nil=<nil> missing=false generated=true]"
	if got := opts.LogValue().String(); got != want {
		t.Errorf("LogValue() = %q, want %q", got, want)
	}
}
