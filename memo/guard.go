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

import "reflect"

// ShouldRecompute reports whether content depending on previous must be
// recomputed for next.
//
// It returns false when both lists are the same slice, or have equal length
// and pairwise [Same] elements. It does not compare values deeply.
func ShouldRecompute(previous, next []any) bool {
	if sameSlice(previous, next) {
		return false
	}

	if len(previous) != len(next) {
		return true
	}

	for i := range next {
		if !Same(previous[i], next[i]) {
			return true
		}
	}

	return false
}

func sameSlice(a, b []any) bool {
	return len(a) == len(b) && len(a) > 0 && &a[0] == &b[0]
}

// Same reports whether a and b are identical.
//
// Pointers, maps, channels and unsafe pointers are identical when they
// point to the same object; slices when they share backing array, length and
// capacity. Other comparable values are compared with ==. Functions and
// values not comparable at run time are never identical, since Go does not
// expose the identity of closures.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return va.UnsafePointer() == vb.UnsafePointer()

	case reflect.Slice:
		return va.UnsafePointer() == vb.UnsafePointer() && va.Len() == vb.Len() && va.Cap() == vb.Cap()

	case reflect.Func:
		return false

	default:
		return va.Comparable() && vb.Comparable() && a == b
	}
}
