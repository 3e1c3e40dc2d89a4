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

import "errors"

// ErrInvalidInterval is reported when an interval is constructed whose lower
// bound exceeds its upper bound (or where either bound is not a number).
var ErrInvalidInterval = errors.New("invalid interval")

// ErrUndefinedBounds is reported when the bounds of an unknown value are
// requested.
var ErrUndefinedBounds = errors.New("bounds of unknown value are undefined")

// ErrDivisionByZero is reported when dividing by a known zero.
var ErrDivisionByZero = errors.New("division by zero")

// ErrDivisionByZeroInterval is reported when dividing by an interval which
// includes zero.
var ErrDivisionByZeroInterval = errors.New("division by interval containing zero")

// ErrUnsupportedDivision is reported for any combination of kinds which
// division does not model.
var ErrUnsupportedDivision = errors.New("unsupported division")

// ErrZeroNegativePower is reported when zero (or an interval including zero) is
// raised to a negative power.
var ErrZeroNegativePower = errors.New("zero cannot be raised to a negative power")

// ErrFractionalPowerOfNegative is reported when a negative base is raised to a
// non-integral power.
var ErrFractionalPowerOfNegative = errors.New("negative base cannot be raised to a fractional power")

// ErrUnsupportedExponent is reported when raising an interval to an interval.
var ErrUnsupportedExponent = errors.New("exponentiation with interval exponent not supported")

// ErrUnsupportedOperation is reported for any other unsupported combination of
// operand kinds.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// ErrUnknownOperator is reported when a node carries an unrecognised operator.
var ErrUnknownOperator = errors.New("unknown operator")

// ErrOperandCount is reported when a node has the wrong number of operands for
// its operator.
var ErrOperandCount = errors.New("incorrect number of operands")

// ErrImmutableOperands is reported when reassigning the operands of a constant
// node.
var ErrImmutableOperands = errors.New("operands of constant node cannot be modified")

// ErrAmbiguousTruthValue is reported when an uncertain boolean is coerced into
// a native truth value.
var ErrAmbiguousTruthValue = errors.New("cannot convert uncertain boolean to truth value")
