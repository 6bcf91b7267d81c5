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

// Package deps checks that the declared dependencies of a memoization
// wrapper match the references of its children.
//
// # Overview
//
// A wrapper invocation is an element with a deps attribute listing the
// values it re-renders on:
//
//	<Donkey deps={[user, count]}>
//	    <Profile name={user.name} count={count} />
//	</Donkey>
//
// [Analyzer.Analyze] validates the structure of the invocation, collects the
// free references of the children as property paths and matches them
// against the declared paths:
//
//   - A used path is covered by a declared path equal to it or a dotted prefix of it.
//   - Uncovered paths rooted at a module-stable binding need no declaration.
//   - Declared paths covering no used path are unused.
//   - Declared paths rooted at a module-stable binding are unnecessary.
//
// Whether a binding is module-stable is decided by an [Oracle] supplied by
// the front end.
package deps
