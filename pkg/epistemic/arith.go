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

import (
	"fmt"
	"math"
)

// Sum returns a + b.  An unknown operand gives an unknown result.  Otherwise,
// known values are treated as degenerate intervals, and the lower (resp. upper)
// bounds are summed independently.
func Sum(a *Value, b *Value) *Value {
	if a.kind == UNKNOWN || b.kind == UNKNOWN {
		return Unknown()
	} else if a.kind == KNOWN && b.kind == KNOWN {
		return Known(a.lower + b.lower)
	}
	//
	aMin, aMax := a.span()
	bMin, bMax := b.span()
	// lower bound
	low := aMin + bMin
	// upper bound
	high := aMax + bMax
	//
	return fromBounds(math.Min(low, high), math.Max(low, high))
}

// Difference returns a - b, which is computed as a + (-b).
func Difference(a *Value, b *Value) *Value {
	return Sum(a, b.Negate())
}

// Product returns a * b.  A known zero operand gives zero regardless of the
// other operand (including when it is unknown).  Otherwise, an unknown operand
// gives an unknown result.  For intervals, the result encloses all four corner
// products.
func Product(a *Value, b *Value) *Value {
	if a.IsKnownZero() || b.IsKnownZero() {
		return Known(0)
	} else if a.kind == UNKNOWN || b.kind == UNKNOWN {
		return Unknown()
	} else if a.kind == KNOWN && b.kind == KNOWN {
		return Known(a.lower * b.lower)
	}
	//
	aMin, aMax := a.span()
	bMin, bMax := b.span()
	//
	return hullOf(aMin*bMin, aMin*bMax, aMax*bMin, aMax*bMax)
}

// Divide returns a / b.  An unknown operand gives an unknown result.  An error
// is returned when dividing by a known zero, or by an interval which includes
// zero.  Otherwise, the result encloses the corner quotients (where a quotient
// which is not a number, such as Inf/Inf, is an error).
func Divide(a *Value, b *Value) (*Value, error) {
	if a.kind == UNKNOWN || b.kind == UNKNOWN {
		return Unknown(), nil
	}
	//
	indeterminate := fmt.Errorf("%w: %s / %s is indeterminate", ErrUnsupportedDivision, a.String(), b.String())
	//
	switch b.kind {
	case KNOWN:
		if b.lower == 0 {
			return nil, ErrDivisionByZero
		} else if a.kind == KNOWN {
			return corners(indeterminate, a.lower/b.lower)
		} else if a.kind == INTERVAL {
			// Negative divisors flip the bounds
			return corners(indeterminate, a.lower/b.lower, a.higher/b.lower)
		}
	case INTERVAL:
		if b.lower <= 0 && 0 <= b.higher {
			return nil, fmt.Errorf("%w: %s", ErrDivisionByZeroInterval, b.String())
		} else if a.kind == KNOWN {
			return corners(indeterminate, a.lower/b.lower, a.lower/b.higher)
		} else if a.kind == INTERVAL {
			return corners(indeterminate, a.lower/b.lower, a.lower/b.higher, a.higher/b.lower, a.higher/b.higher)
		}
	}
	//
	return nil, fmt.Errorf("%w: %s by %s", ErrUnsupportedDivision, a.kind, b.kind)
}

// Power returns a raised to the power b.  An unknown operand gives an unknown
// result, and 0^0 is 1.  Interval bases are supported for known exponents, and
// non-negative known bases for interval exponents, where the result encloses
// the powers of the respective bounds.  Raising an interval to an interval is
// not supported.  A result which is not a number is reported as an error.
func Power(a *Value, b *Value) (*Value, error) {
	if a.kind == UNKNOWN || b.kind == UNKNOWN {
		return Unknown(), nil
	}
	//
	indeterminate := fmt.Errorf("%w: %s^%s is indeterminate", ErrUnsupportedOperation, a.String(), b.String())
	//
	switch {
	case a.kind == KNOWN && b.kind == KNOWN:
		base, exp := a.lower, b.lower
		//
		if base == 0 && exp == 0 {
			return Known(1), nil
		} else if base == 0 && exp < 0 {
			return nil, ErrZeroNegativePower
		} else if base < 0 && !isIntegral(exp) {
			return nil, fmt.Errorf("%w: %s^%s", ErrFractionalPowerOfNegative, a.String(), b.String())
		}
		//
		return corners(indeterminate, math.Pow(base, exp))
	case a.kind == INTERVAL && b.kind == KNOWN:
		exp := b.lower
		//
		if a.lower <= 0 && 0 <= a.higher && exp < 0 {
			return nil, fmt.Errorf("%w: %s^%s", ErrZeroNegativePower, a.String(), b.String())
		} else if a.lower < 0 && !isIntegral(exp) {
			return nil, fmt.Errorf("%w: %s^%s", ErrFractionalPowerOfNegative, a.String(), b.String())
		}
		//
		return corners(indeterminate, math.Pow(a.lower, exp), math.Pow(a.higher, exp))
	case a.kind == KNOWN && b.kind == INTERVAL:
		base := a.lower
		//
		// Every interval exponent spans fractional exponents
		if base < 0 {
			return nil, fmt.Errorf("%w: %s^%s", ErrFractionalPowerOfNegative, a.String(), b.String())
		} else if base == 0 && b.lower < 0 {
			return nil, fmt.Errorf("%w: %s^%s", ErrZeroNegativePower, a.String(), b.String())
		}
		//
		return corners(indeterminate, math.Pow(base, b.lower), math.Pow(base, b.higher))
	case a.kind == INTERVAL && b.kind == INTERVAL:
		return nil, ErrUnsupportedExponent
	}
	//
	return nil, fmt.Errorf("%w: %s^%s", ErrUnsupportedOperation, a.kind, b.kind)
}

// Hull returns the smallest value enclosing both a and b.  This is used to
// merge the outcomes of two branches which may both have been taken.  If either
// value is unknown, so is the hull.
func Hull(a *Value, b *Value) *Value {
	if a.kind == UNKNOWN || b.kind == UNKNOWN {
		return Unknown()
	}
	//
	aMin, aMax := a.span()
	bMin, bMax := b.span()
	//
	return fromBounds(math.Min(aMin, bMin), math.Max(aMax, bMax))
}

// corners returns the smallest value enclosing the results of an operation at
// the corners of its operands, or the given error if any result is not a
// number.
func corners(indeterminate error, vals ...float64) (*Value, error) {
	for _, val := range vals {
		if math.IsNaN(val) {
			return nil, indeterminate
		}
	}
	//
	return hullOf(vals...), nil
}

func isIntegral(val float64) bool {
	return !math.IsInf(val, 0) && val == math.Trunc(val)
}
