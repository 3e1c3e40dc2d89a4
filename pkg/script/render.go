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
package script

import (
	"strings"

	"github.com/consensys/go-epistemic/pkg/epistemic"
	"github.com/consensys/go-epistemic/pkg/util/termio"
)

// Render a resolved term for display.  When colour is enabled, known values are
// shown in green, intervals in yellow, unknown values in red and residual
// symbolic nodes in cyan.
func Render(term epistemic.Term, colour bool) string {
	text := term.String()
	//
	if !colour {
		return text
	}
	//
	var col uint
	//
	switch term.Kind() {
	case epistemic.KNOWN:
		col = termio.TERM_GREEN
	case epistemic.INTERVAL:
		col = termio.TERM_YELLOW
	case epistemic.UNKNOWN:
		col = termio.TERM_RED
	default:
		col = termio.TERM_CYAN
	}
	//
	return termio.NewAnsiEscape().FgColour(col).Wrap(text)
}

// RenderAll resolves and renders a sequence of terms on a single line.
func RenderAll(terms []epistemic.Term, colour bool) (string, error) {
	var builder strings.Builder
	//
	for i, term := range terms {
		r, err := term.Resolve()
		if err != nil {
			return "", err
		}
		//
		if i != 0 {
			builder.WriteString(" ")
		}
		//
		builder.WriteString(Render(r, colour))
	}
	//
	return builder.String(), nil
}
