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

package gclplugin

import (
	memodeps "fillmore-labs.com/memodeps/analyzer"
	"fillmore-labs.com/memodeps/internal/goast"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Wrappers lists the fully qualified wrapper types to check.
	Wrappers []string `json:"wrappers,omitzero"`
	// DepsField is the name of the dependency field.
	DepsField *string `json:"deps-field,omitzero"`
	// Missing enables missing dependency checks.
	Missing *bool `json:"missing,omitzero"`
	// Unused enables unused dependency checks.
	Unused *bool `json:"unused,omitzero"`
	// Unnecessary enables unnecessary dependency checks.
	Unnecessary *bool `json:"unnecessary,omitzero"`
	// SuggestFixes enables suggested fixes.
	SuggestFixes *bool `json:"suggest-fixes,omitzero"`
}

// Validate checks the wrapper type names.
func (s Settings) Validate() error {
	for _, w := range s.Wrappers {
		if _, err := goast.ParseWrapper(w); err != nil {
			return err
		}
	}

	return nil
}

// Options converts [Settings] into a list of [memodeps.Option] for the memodeps analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
// Call [Settings.Validate] first, malformed wrapper names panic.
func (s Settings) Options() []memodeps.Option {
	var opts []memodeps.Option

	if len(s.Wrappers) > 0 {
		opts = append(opts, memodeps.WithWrappers(s.Wrappers...))
	}

	opts = appendOption(opts, s.DepsField, memodeps.WithDepsField)
	opts = appendOption(opts, s.Missing, memodeps.WithMissing)
	opts = appendOption(opts, s.Unused, memodeps.WithUnused)
	opts = appendOption(opts, s.Unnecessary, memodeps.WithUnnecessary)
	opts = appendOption(opts, s.SuggestFixes, memodeps.WithSuggestFixes)

	return opts
}

// appendOption appends a non-nil setting to a [memodeps.Option] list.
func appendOption[T any](opts []memodeps.Option, value *T, constructor func(T) memodeps.Option) []memodeps.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
