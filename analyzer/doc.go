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

// Package analyzer implements the memodeps static analysis pass.
//
// # Overview
//
// memodeps checks that the dependency list of a memoization wrapper literal
// matches the variables its other fields reference. By default the wrapper is
// [memo.View]; other struct types with a slice valued Deps field can be
// configured with [WithWrappers] or the -wrapper flag.
//
// # Example
//
//	func Greeting(user User, locale string) memo.View[string] {
//	    return memo.View[string]{
//	        Deps:   []any{user},   // memo.View is missing some deps: locale.
//	        Render: func() string { return translate(locale, "Hello, ") + user.Name },
//	    }
//	}
//
// # Diagnostics
//
//   - missing dependency: a render-local variable is referenced but not declared
//   - unused dependency: a declared dependency is never referenced
//   - unnecessary dependency: a declared dependency is a package-level variable,
//     constant, type, function or imported package and never changes
//   - structural error: the literal has no fields, no Deps field, a Deps value
//     that is not a slice literal, or elements that are not variables or
//     field selections
//
// Each check except the structural one can be disabled. Missing, unused and
// unnecessary dependencies come with suggested fixes.
//
// [memo.View]: https://pkg.go.dev/fillmore-labs.com/memodeps/memo#View
package analyzer
