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

package custom

// Cached memoizes a computation.
type Cached struct {
	Inputs  []any
	Compute func() int
}

func Sum(a, b int) Cached {
	return Cached{
		Inputs:  []any{a}, // want "custom.Cached is missing some deps: b."
		Compute: func() int { return a + b },
	}
}

func Deps(a int) Cached {
	return Cached{ // want "custom.Cached must only be called with the deps prop."
		Compute: func() int { return a },
	}
}
