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

// Package output renders check results.
package output

import (
	"fmt"
	"strings"
)

// Format is an output format for check results.
type Format uint8

const (
	// Text prints one "file:line:column: message" line per diagnostic.
	Text Format = iota

	// Table prints an aligned table.
	Table

	// JSON prints the results as a JSON array.
	JSON

	// YAML prints the results as a YAML sequence.
	YAML
)

// Formats lists the names of all formats.
func Formats() []string {
	return []string{"text", "table", "json", "yaml"}
}

// MarshalText implements [encoding.TextMarshaler].
func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case Text:
		return []byte("text"), nil

	case Table:
		return []byte("table"), nil

	case JSON:
		return []byte("json"), nil

	case YAML:
		return []byte("yaml"), nil

	default:
		return nil, fmt.Errorf("unknown output format %d", f)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Format) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "text":
		*f = Text

	case "table":
		*f = Table

	case "json":
		*f = JSON

	case "yaml", "yml":
		*f = YAML

	default:
		return fmt.Errorf("unknown output format %q, expected one of %s", string(text), strings.Join(Formats(), ", "))
	}

	return nil
}

// String implements [pflag.Value].
//
// [pflag.Value]: https://pkg.go.dev/github.com/spf13/pflag#Value
func (f Format) String() string {
	text, err := f.MarshalText()
	if err != nil {
		return fmt.Sprintf("Format(%d)", uint8(f))
	}

	return string(text)
}

// Set implements [pflag.Value].
func (f *Format) Set(s string) error {
	return f.UnmarshalText([]byte(s))
}

// Type implements [pflag.Value].
func (*Format) Type() string {
	return "format"
}
