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

package analyzer

import (
	"flag"
	"strconv"
	"strings"

	"fillmore-labs.com/memodeps/internal/config"
	"fillmore-labs.com/memodeps/internal/goast"
)

// NewCheckValue returns a boolean [flag.Value] toggling check in checks.
func NewCheckValue(checks *config.Checks, check config.Check) flag.Getter {
	return boolValue[config.Check, *config.Checks]{checks, check}
}

type boolValue[F any, B boolFlag[F]] struct {
	flags B
	value F
}

type boolFlag[F any] interface {
	comparable
	Set(flag F, value bool)
	Enabled(flag F) bool
}

// Set implements [flag.Value].
func (f boolValue[_, B]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.value, b)

	return nil
}

// String implements [flag.Value].
func (f boolValue[_, B]) String() string {
	var null B
	if f.flags == null {
		return "false"
	}

	return strconv.FormatBool(f.flags.Enabled(f.value))
}

// Get implements [flag.Getter].
func (f boolValue[_, B]) Get() any {
	var null B
	if f.flags == null {
		return false
	}

	return f.flags.Enabled(f.value)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f boolValue[_, _]) IsBoolFlag() bool { return true }

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On", "full", "Full":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}

// wrapperList is a [flag.Value] holding a comma separated list of wrapper types.
// The first Set replaces the default list, further ones append.
type wrapperList struct {
	wrappers *[]goast.Wrapper
	set      bool
}

// Set implements [flag.Value].
func (w *wrapperList) Set(s string) error {
	var wrappers []goast.Wrapper

	for name := range strings.SplitSeq(s, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}

		wrapper, err := goast.ParseWrapper(name)
		if err != nil {
			return err
		}

		wrappers = append(wrappers, wrapper)
	}

	if !w.set {
		*w.wrappers, w.set = nil, true
	}

	*w.wrappers = append(*w.wrappers, wrappers...)

	return nil
}

// String implements [flag.Value].
func (w *wrapperList) String() string {
	if w == nil || w.wrappers == nil {
		return ""
	}

	names := make([]string, len(*w.wrappers))
	for i, wrapper := range *w.wrappers {
		names[i] = wrapper.String()
	}

	return strings.Join(names, ",")
}
