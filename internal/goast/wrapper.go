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

package goast

import (
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"path"
	"strings"
)

// DefaultWrapper is the fully qualified name of [memo.View].
//
// [memo.View]: https://pkg.go.dev/fillmore-labs.com/memodeps/memo#View
const DefaultWrapper = "fillmore-labs.com/memodeps/memo.View"

// DefaultDepsField is the struct field holding the declared dependencies.
const DefaultDepsField = "Deps"

// ErrInvalidWrapper is returned for malformed wrapper type names.
var ErrInvalidWrapper = errors.New("invalid wrapper type")

// Wrapper identifies a memoization wrapper struct type.
type Wrapper struct {
	// Path is the import path of the declaring package.
	Path string
	// Name is the type name.
	Name string
}

// ParseWrapper parses a fully qualified type name like "example.com/ui/memo.View".
func ParseWrapper(s string) (Wrapper, error) {
	s = strings.TrimSpace(s)

	i := strings.LastIndexByte(s, '.')
	if i <= 0 || i == len(s)-1 || strings.HasSuffix(s[:i], "/") {
		return Wrapper{}, fmt.Errorf("%w %q: expected <package path>.<type name>", ErrInvalidWrapper, s)
	}

	return Wrapper{Path: s[:i], Name: s[i+1:]}, nil
}

// MustParseWrapper is like [ParseWrapper] but panics on error.
func MustParseWrapper(s string) Wrapper {
	w, err := ParseWrapper(s)
	if err != nil {
		panic(err)
	}

	return w
}

// String returns the fully qualified type name.
func (w Wrapper) String() string {
	return w.Path + "." + w.Name
}

// Display returns the package qualified name used in diagnostics, like "memo.View".
func (w Wrapper) Display() string {
	return path.Base(w.Path) + "." + w.Name
}

// Match returns the wrapper instantiated by lit, if any.
func Match(info *types.Info, lit *ast.CompositeLit, wrappers []Wrapper) (Wrapper, bool) {
	named, ok := types.Unalias(info.TypeOf(lit)).(*types.Named)
	if !ok {
		return Wrapper{}, false
	}

	obj := named.Origin().Obj()

	pkg := obj.Pkg()
	if pkg == nil {
		return Wrapper{}, false
	}

	for _, w := range wrappers {
		if w.Name == obj.Name() && w.Path == pkg.Path() {
			return w, true
		}
	}

	return Wrapper{}, false
}
