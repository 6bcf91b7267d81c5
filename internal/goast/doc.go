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

// Package goast converts Go composite literals of memoization wrapper types
// into syntax trees for the dependency analyzer.
//
// A wrapper is a struct type like [memo.View]. Each keyed or positional field
// of a literal becomes an attribute; the value of the deps field is the
// declared dependency list, all other field values form the children.
// Binding classification comes from [types.Info]: package-level variables,
// constants, types, functions and imported packages are module-stable,
// everything else declared outside the literal is render-local, and
// identifiers declared inside the literal are not references at all.
//
// [memo.View]: https://pkg.go.dev/fillmore-labs.com/memodeps/memo#View
package goast
