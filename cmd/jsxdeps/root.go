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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const rootLongDescription = `Jsxdeps checks that the deps attribute of memoization wrapper elements
like <Donkey deps={[a, b]}>...</Donkey> lists exactly the render-local
variables the children reference.

Configuration is read from memodeps.yaml and MEMODEPS_* environment variables.`

func newRootCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "jsxdeps",
		Short:         "Check memoization wrapper dependencies in JSX",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	var configPath string

	cmd.PersistentFlags().StringVar(&configPath, configFlagName, "", "configuration file (default ./"+configFileName+")")
	cmd.PersistentFlags().String(logFileFlagName, "", "write logs to this file")
	cmd.PersistentFlags().BoolP(verboseFlagName, "v", false, "log debug messages")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if err := bindFlagToConfig(v, cmd.Flags().Lookup(logFileFlagName), logFilenameKey); err != nil {
			return err
		}

		if err := bindFlagToConfig(v, cmd.Flags().Lookup(verboseFlagName), logVerboseKey); err != nil {
			return err
		}

		if err := readConfig(v, configPath); err != nil {
			return fmt.Errorf("reading configuration: %w", err)
		}

		return nil
	}

	cmd.AddCommand(newCheckCmd(v), newVersionCmd())

	return cmd
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(v *viper.Viper, flag *pflag.Flag, key string) error {
	if flag == nil {
		return fmt.Errorf("flag for config key %q not found", key)
	}

	return v.BindPFlag(key, flag)
}
