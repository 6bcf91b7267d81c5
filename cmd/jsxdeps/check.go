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

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fillmore-labs.com/memodeps/internal/jsx"
	"fillmore-labs.com/memodeps/internal/output"
)

var (
	errFindings    = errors.New("dependency findings reported")
	errCheckFailed = errors.New("some files could not be checked")
)

const checkLongDescription = `Check the given JavaScript files. Directories are searched recursively
for .js, .jsx, .mjs and .cjs files, skipping node_modules.

The exit code is 1 when diagnostics were reported and 2 on errors.`

func newCheckCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [files or directories...]",
		Short: "Check memoization wrapper dependencies",
		Long:  checkLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, v, args)
		},
	}

	defaults := jsx.DefaultConfig()

	flags := cmd.Flags()
	flags.String(wrapperFlagName, defaults.Wrapper, "element name of the memoization wrapper")
	flags.String(displayFlagName, defaults.Display, "wrapper name used in messages")
	flags.String(depsFlagName, defaults.DepsAttr, "name of the dependency attribute")
	flags.Bool(missingFlagName, true, "report missing dependencies")
	flags.Bool(unusedFlagName, true, "report unused dependencies")
	flags.Bool(unnecessaryFlagName, true, "report unnecessary dependencies")
	flags.IntP(parallelFlagName, "j", 0, "number of files checked in parallel (default number of CPUs)")

	var format output.Format
	flags.VarP(&format, formatFlagName, "f", "output format: text, table, json or yaml (default table on a terminal, text otherwise)")

	cmd.PreRunE = func(cmd *cobra.Command, _ []string) error {
		for flag, key := range map[string]string{
			wrapperFlagName:     wrapperNameKey,
			displayFlagName:     wrapperDisplayKey,
			depsFlagName:        wrapperDepsKey,
			missingFlagName:     missingKey,
			unusedFlagName:      unusedKey,
			unnecessaryFlagName: unnecessaryKey,
			parallelFlagName:    parallelKey,
			formatFlagName:      formatKey,
		} {
			if err := bindFlagToConfig(v, cmd.Flags().Lookup(flag), key); err != nil {
				return err
			}
		}

		return nil
	}

	return cmd
}

func runCheck(cmd *cobra.Command, v *viper.Viper, args []string) error {
	logger := newLogger(v)

	format, err := outputFormat(v, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	paths, err := sourceFiles(args)
	if err != nil {
		return err
	}

	cfg := checkConfig(v)
	parallel := v.GetInt(parallelKey)

	logger.Info("Checking files",
		slog.Int("files", len(paths)),
		slog.String("wrapper", cfg.Wrapper),
		slog.String("deps", cfg.DepsAttr),
		slog.Int("parallel", parallel))

	results, err := jsx.CheckFiles(cmd.Context(), paths, cfg, parallel)
	if err != nil {
		return err
	}

	if err := output.Write(cmd.OutOrStdout(), format, results); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}

	diagnostics, failed := output.Count(results)

	logger.Info("Check finished", slog.Int("diagnostics", diagnostics), slog.Int("failed", failed))

	switch {
	case failed > 0:
		return fmt.Errorf("%w: %d of %d", errCheckFailed, failed, len(results))

	case diagnostics > 0:
		return errFindings

	default:
		return nil
	}
}

var sourceExtensions = []string{".js", ".jsx", ".mjs", ".cjs"}

// sourceFiles expands directories into the JavaScript files they contain.
func sourceFiles(args []string) ([]string, error) {
	var paths []string

	for _, arg := range args {
		err := filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			switch {
			case err != nil:
				return err

			case d.IsDir():
				if path != arg && d.Name() == "node_modules" {
					return filepath.SkipDir
				}

			case path == arg || slices.Contains(sourceExtensions, filepath.Ext(path)):
				paths = append(paths, path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return paths, nil
}
