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

package analyzer

import (
	"log/slog"
	"slices"

	"fillmore-labs.com/memodeps/internal/config"
	"fillmore-labs.com/memodeps/internal/goast"
	"fillmore-labs.com/memodeps/internal/run"
)

// Option configures specific behavior of a [New] memodeps analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithWrappers is an [Option] to configure the checked wrapper types, given
// as fully qualified names like "example.com/ui/memo.View".
// It panics on malformed names.
func WithWrappers(wrappers ...string) Option {
	ws := make([]goast.Wrapper, len(wrappers))
	for i, w := range wrappers {
		ws[i] = goast.MustParseWrapper(w)
	}

	return wrappersOption{wrappers: ws}
}

type wrappersOption struct{ wrappers []goast.Wrapper }

func (o wrappersOption) apply(r *run.Options) {
	r.Wrappers = slices.Clone(o.wrappers)
}

func (o wrappersOption) LogAttr() slog.Attr {
	names := make([]string, len(o.wrappers))
	for i, w := range o.wrappers {
		names[i] = w.String()
	}

	return slog.Any("wrappers", names)
}

// WithDepsField is an [Option] to configure the name of the dependency field.
func WithDepsField(field string) Option { return depsFieldOption{field: field} }

type depsFieldOption struct{ field string }

func (o depsFieldOption) apply(r *run.Options) {
	r.DepsField = o.field
}

func (o depsFieldOption) LogAttr() slog.Attr {
	return slog.String("deps-field", o.field)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithSuggestFixes is an [Option] to configure whether diagnostics carry suggested fixes.
func WithSuggestFixes(fixes bool) Option { return fixesOption{fixes: fixes} }

type fixesOption struct{ fixes bool }

func (o fixesOption) apply(r *run.Options) {
	r.Behavior.Set(config.SuggestFixes, o.fixes)
}

func (o fixesOption) LogAttr() slog.Attr {
	return slog.Bool("suggest-fixes", o.fixes)
}

// WithMissing is an [Option] to configure whether missing dependencies are reported.
func WithMissing(missing bool) Option { return checkOption{check: config.MissingCheck, name: "missing", enabled: missing} }

// WithUnused is an [Option] to configure whether unused dependencies are reported.
func WithUnused(unused bool) Option { return checkOption{check: config.UnusedCheck, name: "unused", enabled: unused} }

// WithUnnecessary is an [Option] to configure whether unnecessary dependencies are reported.
func WithUnnecessary(unnecessary bool) Option {
	return checkOption{check: config.UnnecessaryCheck, name: "unnecessary", enabled: unnecessary}
}

type checkOption struct {
	check   config.Check
	name    string
	enabled bool
}

func (o checkOption) apply(r *run.Options) {
	r.Checks.Set(o.check, o.enabled)
}

func (o checkOption) LogAttr() slog.Attr {
	return slog.Bool(o.name, o.enabled)
}
