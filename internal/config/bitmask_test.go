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

package config_test

import (
	"testing"

	. "fillmore-labs.com/memodeps/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	checks := DefaultChecks()

	checks.Set(UnusedCheck, false)

	if !checks.Enabled(MissingCheck) || !checks.Enabled(UnnecessaryCheck) {
		t.Errorf("Expected missing and unnecessary checks to stay enabled")
	}

	if checks.Enabled(UnusedCheck) {
		t.Errorf("Expected unused check to be disabled")
	}

	checks.Disable(MissingCheck | UnnecessaryCheck)

	if !checks.Empty() {
		t.Errorf("Expected no checks, got some enabled")
	}
}

func TestDefaultBehavior(t *testing.T) {
	t.Parallel()

	b := DefaultBehavior()

	if b.Enabled(IncludeGenerated) {
		t.Errorf("Generated files should be skipped by default")
	}

	if !b.Enabled(SuggestFixes) {
		t.Errorf("Fixes should be suggested by default")
	}
}
