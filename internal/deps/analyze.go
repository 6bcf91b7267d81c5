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
	"errors"

	"fillmore-labs.com/memodeps/internal/syntax"
)

// DefaultDepsAttribute is the attribute holding the declared dependencies.
const DefaultDepsAttribute = "deps"

// Analyzer checks wrapper invocations. The zero value is not usable, use [New].
type Analyzer struct {
	depsAttr string
	walker   syntax.Walker
}

// New creates an [Analyzer] reading the declared dependencies from the attribute depsAttr.
func New(depsAttr string) Analyzer {
	if depsAttr == "" {
		depsAttr = DefaultDepsAttribute
	}

	return Analyzer{depsAttr: depsAttr, walker: syntax.DefaultWalker}
}

// Analyze checks an invocation with the default deps attribute.
func Analyze(inv Invocation, oracle Oracle) []Finding {
	return New(DefaultDepsAttribute).Analyze(inv, oracle)
}

// DepsAttribute returns the name of the attribute holding the declared dependencies.
func (a Analyzer) DepsAttribute() string {
	return a.depsAttr
}

// dep is a well-formed declared dependency.
type dep struct {
	node *syntax.Node
	path Path
	used bool
}

// Analyze checks one invocation against the oracle and returns the findings
// in a deterministic order: structural errors, missing deps, unused deps and
// unnecessary deps, each group in declaration order.
//
// Analyze panics with a [*ContractError] when the front end produced an
// inconsistent tree; use [Analyzer.Check] to recover.
func (a Analyzer) Analyze(inv Invocation, oracle Oracle) []Finding {
	attrs := inv.Attributes()
	if len(attrs) == 0 {
		return []Finding{structural(NoAttributes, inv.Element)}
	}

	depsAttr := inv.Attribute(a.depsAttr)
	if depsAttr == nil {
		return []Finding{structural(NoDeps, inv.Element)}
	}

	value := depsAttr.First(syntax.EdgeValue)
	if value == nil {
		return []Finding{structural(DepsNotArray, depsAttr)}
	}

	if value.Kind != syntax.ArrayLiteral {
		return []Finding{structural(DepsNotArray, value)}
	}

	var findings []Finding

	elements := value.Edge(syntax.EdgeElements)
	declared := make([]dep, 0, len(elements))

	for _, e := range elements {
		if !IsVariable(e) {
			findings = append(findings, structural(DepNotVariable, e))

			continue
		}

		declared = append(declared, dep{node: e, path: PathOf(e)})
	}

	used := a.references(inv.Children())

	if missing := matchUsed(used, declared, oracle); len(missing) > 0 {
		findings = append(findings, Finding{Kind: MissingDependency, Paths: missing, Node: depsAttr})
	}

	for _, d := range declared {
		if !d.used {
			findings = append(findings, Finding{Kind: UnusedDependency, Paths: []Path{d.path}, Node: d.node})
		}
	}

	for _, d := range declared {
		if classify(oracle, d.path.Root()) == ModuleStable {
			findings = append(findings, Finding{Kind: UnnecessaryDependency, Paths: []Path{d.path}, Node: d.node})
		}
	}

	return findings
}

// matchUsed marks the declared deps covering a used path and returns the
// used paths neither covered nor exempt by the oracle.
func matchUsed(used []Path, declared []dep, oracle Oracle) []Path {
	var missing []Path

	for _, p := range used {
		covered := false

		for i := range declared {
			if declared[i].path.Covers(p) {
				declared[i].used = true
				covered = true
			}
		}

		if covered || classify(oracle, p.Root()) != RenderLocal {
			continue
		}

		missing = append(missing, p) // used paths are unique
	}

	return missing
}

// Check is [Analyzer.Analyze], returning contract violations as an error.
func (a Analyzer) Check(inv Invocation, oracle Oracle) (findings []Finding, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		rerr, ok := r.(error)
		if !ok {
			panic(r)
		}

		var cerr *ContractError
		if !errors.As(rerr, &cerr) {
			panic(r)
		}

		findings, err = nil, cerr
	}()

	return a.Analyze(inv, oracle), nil
}
