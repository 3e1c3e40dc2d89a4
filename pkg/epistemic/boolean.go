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

// Comparisons and logical connectives produce three-valued booleans: True()
// when the relation certainly holds, False() when it certainly does not, and
// Partial() when it holds for some, but not all, of the possible values.  The
// comparisons are only meaningful for evaluable operands; an unknown operand
// gives an unknown result (though operator dispatch never gets this far, since
// it builds a symbolic node instead).

// GreaterThan compares a > b.
func GreaterThan(a *Value, b *Value) *Value {
	if a.kind == UNKNOWN || b.kind == UNKNOWN {
		return Unknown()
	}
	//
	aMin, aMax := a.span()
	bMin, bMax := b.span()
	//
	if aMin > bMax {
		return True()
	} else if aMax <= bMin {
		return False()
	}
	//
	return Partial()
}

// LessThan compares a < b, which is b > a.
func LessThan(a *Value, b *Value) *Value {
	return GreaterThan(b, a)
}

// GreaterEqual compares a >= b.
func GreaterEqual(a *Value, b *Value) *Value {
	if a.kind == UNKNOWN || b.kind == UNKNOWN {
		return Unknown()
	}
	//
	aMin, aMax := a.span()
	bMin, bMax := b.span()
	//
	if aMin >= bMax {
		return True()
	} else if aMax < bMin {
		return False()
	}
	//
	return Partial()
}

// LessEqual compares a <= b, which is b >= a.
func LessEqual(a *Value, b *Value) *Value {
	return GreaterEqual(b, a)
}

// Equal compares a == b.  This is certainly false when the two ranges are
// disjoint, and certainly true only when both are known and equal.
func Equal(a *Value, b *Value) *Value {
	if a.kind == UNKNOWN || b.kind == UNKNOWN {
		return Unknown()
	}
	//
	aMin, aMax := a.span()
	bMin, bMax := b.span()
	//
	if aMax < bMin || bMax < aMin {
		return False()
	} else if a.kind == KNOWN && b.kind == KNOWN && aMin == bMin {
		return True()
	}
	//
	return Partial()
}

// NotEqual compares a != b, and is the complement of Equal.
func NotEqual(a *Value, b *Value) *Value {
	if a.kind == UNKNOWN || b.kind == UNKNOWN {
		return Unknown()
	}
	//
	aMin, aMax := a.span()
	bMin, bMax := b.span()
	//
	if aMax < bMin || bMax < aMin {
		return True()
	} else if a.kind == KNOWN && b.kind == KNOWN && aMin == bMin {
		return False()
	}
	//
	return Partial()
}

// LogicAnd returns the conjunction of two booleans.  As for Classify, a known
// zero is false and any other known value true.
func LogicAnd(a *Value, b *Value) *Value {
	if a.kind == KNOWN && b.kind == KNOWN {
		return truth(a.lower != 0 && b.lower != 0)
	} else if a.kind == UNKNOWN || b.kind == UNKNOWN {
		return Unknown()
	}
	//
	return Partial()
}

// LogicOr returns the disjunction of two booleans.
func LogicOr(a *Value, b *Value) *Value {
	if a.kind == KNOWN && b.kind == KNOWN {
		return truth(a.lower != 0 || b.lower != 0)
	} else if a.kind == UNKNOWN || b.kind == UNKNOWN {
		return Unknown()
	}
	//
	return Partial()
}

// LogicNot returns the negation of a boolean.
func LogicNot(a *Value) *Value {
	switch a.kind {
	case KNOWN:
		return truth(a.lower == 0)
	case INTERVAL:
		return Partial()
	}
	//
	return Unknown()
}

func truth(val bool) *Value {
	if val {
		return True()
	}
	//
	return False()
}
