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
	"flag"
	"strings"
	"testing"

	. "fillmore-labs.com/memodeps/analyzer"

	"fillmore-labs.com/memodeps/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.Check
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.MissingCheck,
			args:    []string{"-unused"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.UnusedCheck,
			args:    []string{"-unused=false"},
			want:    false,
		},
		{
			name:    "Off",
			initial: config.UnusedCheck,
			args:    []string{"-unused=off"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			checks := config.NewBitMask(tt.initial)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.UnusedCheck
			fv := NewCheckValue(&checks, value)
			fs.Var(fv, "unused", "report unused dependencies")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if checks.Enabled(value) != tt.want {
				t.Errorf("UnusedCheck enabled = %v, want %v", checks.Enabled(value), tt.want)
			}

			if !checks.Enabled(tt.initial) && tt.initial != value {
				t.Errorf("Flag changed unrelated check %d", tt.initial)
			}
		})
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	checks := config.DefaultChecks()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewCheckValue(&checks, config.UnnecessaryCheck)
	fs.Var(fv, "unnecessary", "report unnecessary dependencies")

	const expectedUsage = `
  -unnecessary
    	report unnecessary dependencies (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}
