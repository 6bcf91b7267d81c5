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

package config

// Check selects a class of exhaustiveness diagnostics.
// Structural errors of a wrapper invocation are always reported.
type Check uint8

const (
	// MissingCheck reports paths used by the children but not declared in deps.
	MissingCheck Check = 1 << iota

	// UnusedCheck reports declared deps not used by the children.
	UnusedCheck

	// UnnecessaryCheck reports declared deps that are stable across renders.
	UnnecessaryCheck
)

// Checks is the set of enabled checks.
type Checks = BitMask[Check]

// DefaultChecks returns all checks enabled.
func DefaultChecks() Checks {
	return NewBitMask(MissingCheck, UnusedCheck, UnnecessaryCheck)
}

// Flag is a behavioral option of the analyzer drivers.
type Flag uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Flag = 1 << iota

	// SuggestFixes enables suggested fixes for missing and unused deps.
	SuggestFixes
)

// Behavior holds behavioral options.
type Behavior = BitMask[Flag]

// DefaultBehavior returns the default behavior: fixes on, generated files skipped.
func DefaultBehavior() Behavior {
	return NewBitMask(SuggestFixes)
}
