// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package termio

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ColourMode determines whether output is decorated with ANSI escapes.
type ColourMode uint8

const (
	// COLOUR_AUTO enables escapes only when writing to a terminal.
	COLOUR_AUTO ColourMode = iota
	// COLOUR_ALWAYS always enables escapes.
	COLOUR_ALWAYS
	// COLOUR_NEVER never enables escapes.
	COLOUR_NEVER
)

// ParseColourMode parses a colour mode from its name.
func ParseColourMode(name string) (ColourMode, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return COLOUR_AUTO, nil
	case "always", "on", "true":
		return COLOUR_ALWAYS, nil
	case "never", "off", "false":
		return COLOUR_NEVER, nil
	}
	//
	return COLOUR_AUTO, fmt.Errorf("unknown colour mode %q (expected auto, always or never)", name)
}

func (m ColourMode) String() string {
	switch m {
	case COLOUR_ALWAYS:
		return "always"
	case COLOUR_NEVER:
		return "never"
	}
	//
	return "auto"
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ColourMode) UnmarshalText(text []byte) error {
	mode, err := ParseColourMode(string(text))
	if err != nil {
		return err
	}
	//
	*m = mode
	//
	return nil
}

// Enabled determines whether escapes should be written to a given file under
// this mode.
func (m ColourMode) Enabled(file *os.File) bool {
	switch m {
	case COLOUR_ALWAYS:
		return true
	case COLOUR_NEVER:
		return false
	}
	//
	return IsTerminal(file)
}

// IsTerminal checks whether a given file is attached to a terminal.
func IsTerminal(file *os.File) bool {
	return file != nil && term.IsTerminal(int(file.Fd()))
}
