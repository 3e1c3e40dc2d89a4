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
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Escape_01(t *testing.T) {
	assert.Equal(t, "\033[31m", NewAnsiEscape().FgColour(TERM_RED).Build())
	assert.Equal(t, "\033[1;32;44m", BoldAnsiEscape().FgColour(TERM_GREEN).BgColour(TERM_BLUE).Build())
	assert.Equal(t, "\033[33mx\033[0m", NewAnsiEscape().FgColour(TERM_YELLOW).Wrap("x"))
}

func Test_ColourMode_01(t *testing.T) {
	for _, mode := range []ColourMode{COLOUR_AUTO, COLOUR_ALWAYS, COLOUR_NEVER} {
		var parsed ColourMode
		//
		require.NoError(t, parsed.UnmarshalText([]byte(mode.String())))
		assert.Equal(t, mode, parsed)
	}
	//
	_, err := ParseColourMode("sometimes")
	assert.Error(t, err)
}

func Test_ColourMode_02(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	//
	defer file.Close()
	// Regular files are never terminals
	assert.False(t, IsTerminal(file))
	assert.False(t, COLOUR_AUTO.Enabled(file))
	assert.True(t, COLOUR_ALWAYS.Enabled(file))
	assert.False(t, COLOUR_NEVER.Enabled(file))
}
