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

// Package memo provides the run-time side of memoized views: a comparison
// of dependency lists by identity, and a small cache built on it.
//
// # Example
//
//	var profile memo.Cache[string]
//
//	func render(user *User, count int) string {
//	    return profile.Get(memo.View[string]{
//	        Deps:   []any{user, count},
//	        Render: func() string { return fmt.Sprintf("%s: %d", user.Name, count) },
//	    })
//	}
//
// The memodeps analyzer checks that Deps lists exactly the values Render
// reads.
package memo
