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

// simplify applies a small number of algebraic rewrites (identities, absorbing
// elements and self-cancellation) to an operator over some resolved operands.
// If a rule determines the result outright, this is returned.  Otherwise, the
// (possibly reduced) list of operands is returned for further evaluation.
func simplify(op Operator, operands []Term) (Term, []Term) {
	switch op {
	case OpAdd:
		return simplifyAdd(operands)
	case OpSub:
		return simplifySub(operands)
	case OpMul:
		return simplifyMul(operands)
	case OpDiv:
		return simplifyDiv(operands)
	case OpPow:
		return simplifyPow(operands)
	case OpAnd:
		return simplifyAnd(operands)
	case OpOr:
		return simplifyOr(operands)
	case OpNot:
		if v, ok := asValue(operands[0]); ok && v.kind == KNOWN {
			return truth(v.lower == 0), nil
		}
	}
	//
	return nil, operands
}

// x + 0 = x
func simplifyAdd(operands []Term) (Term, []Term) {
	rest := filter(operands, isKnownZero)
	//
	switch len(rest) {
	case 0:
		return Known(0), nil
	case 1:
		return rest[0], nil
	}
	//
	return nil, rest
}

// x - 0 = x, and x - x = 0
func simplifySub(operands []Term) (Term, []Term) {
	if len(operands) == 1 {
		return nil, operands
	}
	//
	rest := append([]Term{operands[0]}, filter(operands[1:], isKnownZero)...)
	//
	switch {
	case len(rest) == 1:
		return rest[0], nil
	case len(rest) == 2 && cancels(rest[0], rest[1]):
		return Known(0), nil
	}
	//
	return nil, rest
}

// x * 0 = 0, and x * 1 = x
func simplifyMul(operands []Term) (Term, []Term) {
	if exists(operands, isKnownZero) {
		return Known(0), nil
	}
	//
	rest := filter(operands, isKnownOne)
	//
	switch len(rest) {
	case 0:
		return Known(1), nil
	case 1:
		return rest[0], nil
	}
	//
	return nil, rest
}

// 0 / x = 0, x / 1 = x, and x / x = 1
func simplifyDiv(operands []Term) (Term, []Term) {
	if len(operands) == 1 {
		return nil, operands
	}
	// Division by zero must still be reported
	if isKnownZero(operands[0]) && !exists(operands[1:], isKnownZero) {
		return Known(0), nil
	}
	//
	rest := append([]Term{operands[0]}, filter(operands[1:], isKnownOne)...)
	//
	switch {
	case len(rest) == 1:
		return rest[0], nil
	case len(rest) == 2 && !isKnownZero(rest[1]) && cancels(rest[0], rest[1]):
		return Known(1), nil
	}
	//
	return nil, rest
}

// x ^ 0 = 1, x ^ 1 = x, 0 ^ x = 0, and 1 ^ x = 1
func simplifyPow(operands []Term) (Term, []Term) {
	if len(operands) != 2 {
		return nil, operands
	}
	//
	base, exp := operands[0], operands[1]
	//
	switch {
	case isKnownZero(exp):
		return Known(1), nil
	case isKnownOne(exp):
		return base, nil
	case isKnownZero(base) && !isKnownNegative(exp):
		return Known(0), nil
	case isKnownOne(base):
		return Known(1), nil
	}
	//
	return nil, operands
}

// x && 0 = 0, and x && 1 = x
func simplifyAnd(operands []Term) (Term, []Term) {
	if exists(operands, isKnownZero) {
		return False(), nil
	}
	//
	rest := filter(operands, isKnownNonZero)
	//
	if len(rest) == 0 {
		return True(), nil
	}
	//
	return nil, rest
}

// x || 1 = 1, and x || 0 = x
func simplifyOr(operands []Term) (Term, []Term) {
	if exists(operands, isKnownNonZero) {
		return True(), nil
	}
	//
	rest := filter(operands, isKnownZero)
	//
	if len(rest) == 0 {
		return False(), nil
	}
	//
	return nil, rest
}

// cancels checks whether two operands certainly denote the same quantity.  Known
// values cancel when equal.  Unknown values cancel only against themselves,
// whilst intervals never cancel since two equal intervals need not hold the same
// underlying quantity.
func cancels(lhs Term, rhs Term) bool {
	l, lok := asValue(lhs)
	r, rok := asValue(rhs)
	//
	if !lok || !rok {
		return false
	}
	//
	switch l.kind {
	case KNOWN:
		return l.StructurallyEqual(r)
	case UNKNOWN:
		return l == r
	}
	//
	return false
}

// filter returns those terms for which the predicate does not hold.
func filter(terms []Term, drop func(Term) bool) []Term {
	var rest []Term
	//
	for _, t := range terms {
		if !drop(t) {
			rest = append(rest, t)
		}
	}
	//
	return rest
}

func exists(terms []Term, pred func(Term) bool) bool {
	for _, t := range terms {
		if pred(t) {
			return true
		}
	}
	//
	return false
}

func isKnownZero(t Term) bool {
	v, ok := asValue(t)
	return ok && v.IsKnownZero()
}

func isKnownOne(t Term) bool {
	v, ok := asValue(t)
	return ok && v.IsKnownOne()
}

func isKnownNonZero(t Term) bool {
	v, ok := asValue(t)
	return ok && v.kind == KNOWN && v.lower != 0
}

func isKnownNegative(t Term) bool {
	v, ok := asValue(t)
	return ok && v.kind == KNOWN && v.lower < 0
}
