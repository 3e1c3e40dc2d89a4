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
package epistemic

// Kind classifies the degree of knowledge held about a given quantity.  A Value
// is always exactly one of UNKNOWN, KNOWN or INTERVAL.  The SYMBOLIC kind is
// only ever reported by a Node, and indicates that at least one of its
// operands cannot (yet) be evaluated.
type Kind uint8

// UNKNOWN indicates nothing at all is known about the quantity.
const UNKNOWN Kind = 0

// KNOWN indicates the quantity is a single scalar.
const KNOWN Kind = 1

// INTERVAL indicates the quantity lies within a closed range of scalars.
const INTERVAL Kind = 2

// SYMBOLIC indicates the quantity is an unevaluated expression.
const SYMBOLIC Kind = 3

func (k Kind) String() string {
	switch k {
	case UNKNOWN:
		return "unknown"
	case KNOWN:
		return "known"
	case INTERVAL:
		return "interval"
	case SYMBOLIC:
		return "symbolic"
	}
	//
	return "invalid"
}

// IsEvaluable returns true for those kinds which carry numeric bounds (i.e.
// KNOWN and INTERVAL).
func (k Kind) IsEvaluable() bool {
	return k == KNOWN || k == INTERVAL
}
