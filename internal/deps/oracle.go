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

package deps

// Binding classifies a name by how it may change across renders.
type Binding uint8

const (
	// RenderLocal names are declared in the rendering function and may differ between renders.
	RenderLocal Binding = iota

	// ModuleStable names are declared at module level or resolve to globals;
	// they are referentially stable across renders.
	ModuleStable

	// ChildLocal names are declared inside the children of the invocation
	// itself, like lambda parameters. They are never dependencies.
	ChildLocal
)

// Oracle resolves names of one invocation to their [Binding].
// An Oracle is a read-only snapshot and must be safe for concurrent use.
type Oracle interface {
	Classify(name string) Binding
}

// OracleFunc adapts a function to the [Oracle] interface.
type OracleFunc func(name string) Binding

// Classify implements [Oracle].
func (f OracleFunc) Classify(name string) Binding { return f(name) }

// StableNames is an [Oracle] classifying its members as [ModuleStable]
// and every other name as [RenderLocal].
type StableNames map[string]struct{}

// NewStableNames creates a [StableNames] set.
func NewStableNames(names ...string) StableNames {
	s := make(StableNames, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}

	return s
}

// Classify implements [Oracle].
func (s StableNames) Classify(name string) Binding {
	if _, ok := s[name]; ok {
		return ModuleStable
	}

	return RenderLocal
}

func classify(o Oracle, name string) Binding {
	if o == nil {
		return RenderLocal
	}

	return o.Classify(name)
}
