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

import (
	"strings"

	"test/memo"
)

type User struct {
	Name string
	Mail string
}

var greeting = "Hello"

const separator = ", "

func Exact(u User) memo.View[string] {
	return memo.View[string]{
		Deps:   []any{u},
		Render: func() string { return greeting + separator + u.Name },
	}
}

func Positional(u User) memo.View[string] {
	return memo.View[string]{[]any{u.Name}, func() string { return u.Name }}
}

func Missing(u User, locale string) memo.View[string] {
	return memo.View[string]{
		Deps:   []any{u.Name}, // want "memo.View is missing some deps: locale, u.Mail."
		Render: func() string { return strings.ToUpper(locale) + u.Name + u.Mail },
	}
}

func Unused(u User, count int) memo.View[string] {
	return memo.View[string]{
		Deps:   []any{u, count}, // want "Unused dep: 'count'"
		Render: func() string { return u.Name },
	}
}

func Unnecessary(u User) memo.View[string] {
	return memo.View[string]{
		Deps:   []any{greeting, u}, // want "Unnecessary dep: 'greeting'"
		Render: func() string { return greeting + u.Name },
	}
}

func UnusedAndUnnecessary(u User) memo.View[string] {
	return memo.View[string]{
		Deps:   []any{u, separator}, // want "Unused dep: 'separator'" "Unnecessary dep: 'separator'"
		Render: func() string { return u.Name },
	}
}

func Nested(u User, title string) memo.View[string] {
	return memo.View[string]{
		Deps: []any{u, title},
		Render: func() string {
			inner := memo.View[string]{
				Deps:   []any{}, // want "memo.View is missing some deps: title."
				Render: func() string { return title },
			}

			return u.Name + inner.Render()
		},
	}
}

func Loop(users []User) memo.View[string] {
	return memo.View[string]{
		Deps: []any{users},
		Render: func() string {
			var names []string
			for _, u := range users {
				names = append(names, u.Name)
			}

			return strings.Join(names, separator)
		},
	}
}

func Index(users []User, i int) memo.View[string] {
	return memo.View[string]{
		Deps:   []any{users}, // want "memo.View is missing some deps: i."
		Render: func() string { return users[i].Name },
	}
}

//nolint:memodeps
func Ignored(u User) memo.View[string] {
	return memo.View[string]{Deps: []any{}, Render: func() string { return u.Name }}
}

func IgnoredLine(u User) memo.View[string] {
	return memo.View[string]{Deps: []any{}, Render: func() string { return u.Name }} //nolint:memodeps
}
