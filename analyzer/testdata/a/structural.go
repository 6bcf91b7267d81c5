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

package a

import "test/memo"

func NoFields() memo.View[string] {
	return memo.View[string]{} // want "memo.View must be called with the deps prop."
}

func NoDeps() memo.View[string] {
	return memo.View[string]{Render: func() string { return "" }} // want "memo.View must only be called with the deps prop."
}

func NotArray(deps []any) memo.View[string] {
	return memo.View[string]{
		Deps:   deps, // want "memo.View's deps must be an array."
		Render: func() string { return "" },
	}
}

func NotVariable(u User) memo.View[string] {
	return memo.View[string]{
		Deps:   []any{u, len(u.Name)}, // want "memo.View's deps should only be variables."
		Render: func() string { return u.Name },
	}
}
