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

package memo

import (
	"slices"
	"sync"
)

// View is a memoized piece of content.
//
// Deps lists the values Render reads; Render is only called again when they
// change according to [ShouldRecompute].
type View[T any] struct {
	Deps   []any
	Render func() T
}

// Cache holds the last rendered value of a [View].
// The zero value is an empty cache. A Cache is safe for concurrent use.
type Cache[T any] struct {
	mu    sync.Mutex
	deps  []any
	value T
	valid bool
}

// Get returns the cached value, rendering v first when the cache is empty
// or the dependencies changed.
func (c *Cache[T]) Get(v View[T]) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && !ShouldRecompute(c.deps, v.Deps) {
		return c.value
	}

	c.value = v.Render()
	c.deps = slices.Clone(v.Deps)
	c.valid = true

	return c.value
}

// Reset empties the cache.
func (c *Cache[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	c.deps, c.value, c.valid = nil, zero, false
}
