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
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"fillmore-labs.com/memodeps/internal/config"
	"fillmore-labs.com/memodeps/internal/jsx"
	"fillmore-labs.com/memodeps/internal/output"
)

const (
	configBaseName   = "memodeps"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	envPrefix = "MEMODEPS"

	wrapperFlagName     = "wrapper"
	displayFlagName     = "display"
	depsFlagName        = "deps"
	missingFlagName     = "missing"
	unusedFlagName      = "unused"
	unnecessaryFlagName = "unnecessary"
	parallelFlagName    = "parallel"
	formatFlagName      = "format"
	configFlagName      = "config"
	logFileFlagName     = "log-file"
	verboseFlagName     = "verbose"

	wrapperNameKey    = "wrapper.name"
	wrapperDisplayKey = "wrapper.display"
	wrapperDepsKey    = "wrapper.deps"
	missingKey        = "checks.missing"
	unusedKey         = "checks.unused"
	unnecessaryKey    = "checks.unnecessary"
	parallelKey       = "check.parallel"
	formatKey         = "output.format"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ""
	defaultLogLevel      = "info"
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// newConfig creates the configuration with defaults, environment binding
// and the optional configuration file.
func newConfig() *viper.Viper {
	v := viper.New()
	v.SetConfigName(configBaseName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configFolderPath)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	defaults := jsx.DefaultConfig()
	v.SetDefault(wrapperNameKey, defaults.Wrapper)
	v.SetDefault(wrapperDisplayKey, defaults.Display)
	v.SetDefault(wrapperDepsKey, defaults.DepsAttr)
	v.SetDefault(missingKey, true)
	v.SetDefault(unusedKey, true)
	v.SetDefault(unnecessaryKey, true)
	v.SetDefault(parallelKey, runtime.GOMAXPROCS(0))
	v.SetDefault(formatKey, "")

	v.SetDefault(logFilenameKey, defaultLogFilename)
	v.SetDefault(logLevelKey, defaultLogLevel)
	v.SetDefault(logVerboseKey, false)
	v.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	v.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	v.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	v.SetDefault(logCompressKey, defaultLogCompress)

	return v
}

// readConfig reads the configuration file. A missing default file is not an error.
func readConfig(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	}

	err := v.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if path == "" && errors.As(err, &notFound) {
		return nil
	}

	return err
}

// checkConfig builds the checker configuration.
func checkConfig(v *viper.Viper) jsx.Config {
	var checks config.Checks
	checks.Set(config.MissingCheck, v.GetBool(missingKey))
	checks.Set(config.UnusedCheck, v.GetBool(unusedKey))
	checks.Set(config.UnnecessaryCheck, v.GetBool(unnecessaryKey))

	return jsx.Config{
		Wrapper:  v.GetString(wrapperNameKey),
		Display:  v.GetString(wrapperDisplayKey),
		DepsAttr: v.GetString(wrapperDepsKey),
		Checks:   checks,
	}
}

// outputFormat returns the configured format. Without one, terminals get
// a table and everything else plain text.
func outputFormat(v *viper.Viper, out io.Writer) (output.Format, error) {
	var format output.Format

	if name := v.GetString(formatKey); name != "" {
		err := format.UnmarshalText([]byte(name))

		return format, err
	}

	if f, ok := out.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return output.Table, nil
	}

	return output.Text, nil
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// newLogger creates a logger writing to a rotating log file.
// Without a log file name logging is disabled.
func newLogger(v *viper.Viper) *slog.Logger {
	logPath := strings.TrimSpace(v.GetString(logFilenameKey))
	if logPath == "" {
		return slog.New(slog.DiscardHandler)
	}

	var logLevel slog.Level
	if v.GetBool(logVerboseKey) {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(v.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    v.GetInt(logMaxSizeKey),
		MaxBackups: v.GetInt(logMaxBackupsKey),
		MaxAge:     v.GetInt(logMaxAgeKey),
		Compress:   v.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	return slog.New(handler)
}
