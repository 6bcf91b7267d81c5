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

// Package jsx checks memoization wrapper elements in JavaScript modules with JSX.
//
// Sources are parsed with tree-sitter and converted into the analyzer's
// syntax tree. Bindings are resolved lexically: names declared in the module
// scope or not declared at all (globals like window) are module-stable, names
// declared in an enclosing function are render-local. Each identifier is
// resolved where it appears, so an identifier bound inside the children of a
// wrapper element, like a callback parameter, is not a reference of that
// element even when an outer variable has the same name.
package jsx
