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

// Term is anything which can appear as an operand of a symbolic node, and is
// implemented by both *Value and *Node.
type Term interface {
	// Kind reports what is currently known about this term.
	Kind() Kind
	// Resolve this term as far as possible.  A value resolves to itself, whilst
	// a node resolves either to a value or, when its inputs are insufficiently
	// known, to a residual node.
	Resolve() (Term, error)
	// String renders this term in a human-readable form.
	String() string
}

// Collapse resolves a term into a value.  A residual node collapses to an
// unknown value.
func Collapse(term Term) (*Value, error) {
	r, err := term.Resolve()
	//
	if err != nil {
		return nil, err
	} else if v, ok := r.(*Value); ok {
		return v, nil
	}
	//
	return Unknown(), nil
}

// isNumeric checks whether a term is a value which can be evaluated
// numerically (i.e. is known or an interval).
func isNumeric(term Term) bool {
	v, ok := term.(*Value)
	//
	return ok && v.kind.IsEvaluable()
}

func asValue(term Term) (*Value, bool) {
	v, ok := term.(*Value)
	return v, ok
}
