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

package deps

import (
	"fmt"
	"strings"

	"fillmore-labs.com/memodeps/internal/config"
	"fillmore-labs.com/memodeps/internal/syntax"
)

//go:generate go tool stringer -type FindingKind -linecomment

// FindingKind is the class of a [Finding].
type FindingKind uint8

const (
	// StructuralError is a malformed wrapper invocation.
	StructuralError FindingKind = iota // structural error

	// MissingDependency lists used paths not covered by a declared dep.
	MissingDependency // missing dependency

	// UnusedDependency is a declared dep not used by the children.
	UnusedDependency // unused dependency

	// UnnecessaryDependency is a declared dep rooted at a module-stable binding.
	UnnecessaryDependency // unnecessary dependency
)

// MarshalText implements [encoding.TextMarshaler].
func (k FindingKind) MarshalText() ([]byte, error) {
	if k > UnnecessaryDependency {
		return nil, fmt.Errorf("unknown finding kind %d", k)
	}

	return []byte(k.String()), nil
}

// Check returns the check enabling this kind of finding.
// Structural errors are not tied to a check and return 0.
func (k FindingKind) Check() config.Check {
	switch k {
	case MissingDependency:
		return config.MissingCheck

	case UnusedDependency:
		return config.UnusedCheck

	case UnnecessaryDependency:
		return config.UnnecessaryCheck

	default:
		return 0
	}
}

// Reason describes a structural error.
type Reason uint8

const (
	_ Reason = iota

	// NoAttributes: the invocation has no attributes at all.
	NoAttributes

	// NoDeps: the invocation has attributes, but none is named deps.
	NoDeps

	// DepsNotArray: the deps value is not an array literal.
	DepsNotArray

	// DepNotVariable: a deps element is not a variable or static property path.
	DepNotVariable
)

func (r Reason) String() string {
	switch r {
	case NoAttributes:
		return "must be called with the deps prop"

	case NoDeps:
		return "must only be called with the deps prop"

	case DepsNotArray:
		return "deps must be an array"

	case DepNotVariable:
		return "deps should only be variables"

	default:
		return fmt.Sprintf("Reason(%d)", uint8(r))
	}
}

// Finding is one result of [Analyzer.Analyze].
type Finding struct {
	// Kind is the class of the finding.
	Kind FindingKind

	// Reason is set for structural errors.
	Reason Reason

	// Paths holds the affected paths: all missing paths of the invocation,
	// or the single unused or unnecessary dep.
	Paths []Path

	// Node is the node the finding is attached to.
	Node *syntax.Node
}

// Message formats the finding for a wrapper with the given display name.
func (f Finding) Message(wrapper string) string {
	switch f.Kind {
	case StructuralError:
		switch f.Reason {
		case NoAttributes, NoDeps:
			return fmt.Sprintf("%s %s.", wrapper, f.Reason)

		default:
			return fmt.Sprintf("%s's %s.", wrapper, f.Reason)
		}

	case MissingDependency:
		paths := make([]string, len(f.Paths))
		for i, p := range f.Paths {
			paths[i] = string(p)
		}

		return fmt.Sprintf("%s is missing some deps: %s.", wrapper, strings.Join(paths, ", "))

	case UnusedDependency:
		return fmt.Sprintf("Unused dep: '%s'", f.Path())

	case UnnecessaryDependency:
		return fmt.Sprintf("Unnecessary dep: '%s'", f.Path())

	default:
		return fmt.Sprintf("%s: %s", wrapper, f.Kind)
	}
}

// Path returns the first affected path, or "" for structural errors.
func (f Finding) Path() Path {
	if len(f.Paths) == 0 {
		return ""
	}

	return f.Paths[0]
}

// Enabled reports whether the finding passes the enabled checks.
// Structural errors always pass.
func (f Finding) Enabled(checks config.Checks) bool {
	check := f.Kind.Check()

	return check == 0 || checks.Enabled(check)
}

func structural(reason Reason, n *syntax.Node) Finding {
	return Finding{Kind: StructuralError, Reason: reason, Node: n}
}
