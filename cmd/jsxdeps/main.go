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

// Jsxdeps checks the deps of memoization wrapper elements in JavaScript
// modules with JSX.
//
// Usage:
//
//	jsxdeps check [flags] [files or directories...]
//
// Configuration is read from memodeps.yaml in the current directory and
// MEMODEPS_* environment variables, flags take precedence.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command line and returns the exit code:
// 0 when clean, 1 when diagnostics were reported and 2 on errors.
func run(args []string) int {
	cmd := newRootCmd(newConfig())
	cmd.SetArgs(args)

	err := cmd.Execute()
	switch {
	case err == nil:
		return 0

	case errors.Is(err, errFindings):
		return 1

	default:
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)

		return 2
	}
}
