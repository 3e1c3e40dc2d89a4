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

// Operator identifies the operation performed by a symbolic node.
type Operator uint8

const (
	// OpAdd is n-ary addition.
	OpAdd Operator = iota
	// OpSub is left-associative subtraction.
	OpSub
	// OpMul is n-ary multiplication.
	OpMul
	// OpDiv is left-associative division.
	OpDiv
	// OpPow is left-associative exponentiation.
	OpPow
	// OpEq is equality.
	OpEq
	// OpNe is disequality.
	OpNe
	// OpGt is strictly greater than.
	OpGt
	// OpGe is greater than or equal.
	OpGe
	// OpLt is strictly less than.
	OpLt
	// OpLe is less than or equal.
	OpLe
	// OpAnd is n-ary conjunction.
	OpAnd
	// OpOr is n-ary disjunction.
	OpOr
	// OpNot is negation.
	OpNot
)

var operatorNames = []string{"add", "sub", "mul", "div", "pow", "eq", "ne", "gt", "ge", "lt", "le", "and", "or", "not"}

var operatorSymbols = map[string]Operator{
	"+": OpAdd, "-": OpSub, "*": OpMul, "/": OpDiv, "^": OpPow, "**": OpPow,
	"==": OpEq, "!=": OpNe, ">": OpGt, ">=": OpGe, "<": OpLt, "<=": OpLe,
	"&&": OpAnd, "||": OpOr, "!": OpNot,
}

// ParseOperator determines the operator for a given name (e.g. "add") or
// symbol (e.g. "+").
func ParseOperator(name string) (Operator, error) {
	for i, n := range operatorNames {
		if n == name {
			return Operator(i), nil
		}
	}
	//
	if op, ok := operatorSymbols[name]; ok {
		return op, nil
	}
	//
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, name)
}

// IsValid checks whether this is a recognised operator.
func (op Operator) IsValid() bool {
	return int(op) < len(operatorNames)
}

// IsComparison checks whether this operator compares two numbers.
func (op Operator) IsComparison() bool {
	return op >= OpEq && op <= OpLe
}

func (op Operator) String() string {
	if op.IsValid() {
		return operatorNames[op]
	}
	//
	return fmt.Sprintf("op%d", uint8(op))
}

// arity returns the minimum and maximum number of operands accepted by this
// operator.
func (op Operator) arity() (int, int) {
	switch {
	case op == OpAdd || op == OpMul || op == OpAnd || op == OpOr:
		return 0, math.MaxInt
	case op == OpNot:
		return 1, 1
	case op.IsComparison():
		return 2, 2
	}
	// sub, div, pow
	return 1, math.MaxInt
}

func (op Operator) checkArity(n int) error {
	if !op.IsValid() {
		return fmt.Errorf("%w: %s", ErrUnknownOperator, op)
	}
	//
	if lo, hi := op.arity(); n < lo || n > hi {
		return fmt.Errorf("%w: %s given %d", ErrOperandCount, op, n)
	}
	//
	return nil
}

// apply this operator to a list of evaluable values, folding from the left
// where the operator is n-ary.  A single operand to sub (resp. div) gives its
// negation (resp. reciprocal).
func (op Operator) apply(values []*Value) (*Value, error) {
	var err error
	//
	switch op {
	case OpAdd:
		return fold(values, Known(0), func(a, b *Value) (*Value, error) { return Sum(a, b), nil })
	case OpSub:
		if len(values) == 1 {
			return values[0].Negate(), nil
		}
		//
		return fold(values[1:], values[0], func(a, b *Value) (*Value, error) { return Difference(a, b), nil })
	case OpMul:
		return fold(values, Known(1), func(a, b *Value) (*Value, error) { return Product(a, b), nil })
	case OpDiv:
		if len(values) == 1 {
			return Divide(Known(1), values[0])
		}
		//
		return fold(values[1:], values[0], Divide)
	case OpPow:
		return fold(values[1:], values[0], Power)
	case OpAnd:
		return fold(values, True(), func(a, b *Value) (*Value, error) { return LogicAnd(a, b), nil })
	case OpOr:
		return fold(values, False(), func(a, b *Value) (*Value, error) { return LogicOr(a, b), nil })
	case OpNot:
		return LogicNot(values[0]), nil
	case OpEq:
		return Equal(values[0], values[1]), nil
	case OpNe:
		return NotEqual(values[0], values[1]), nil
	case OpGt:
		return GreaterThan(values[0], values[1]), nil
	case OpGe:
		return GreaterEqual(values[0], values[1]), nil
	case OpLt:
		return LessThan(values[0], values[1]), nil
	case OpLe:
		return LessEqual(values[0], values[1]), nil
	}
	//
	err = fmt.Errorf("%w: %s", ErrUnknownOperator, op)
	//
	return nil, err
}

func fold(values []*Value, acc *Value, fn func(*Value, *Value) (*Value, error)) (*Value, error) {
	var err error
	//
	for _, v := range values {
		if acc, err = fn(acc, v); err != nil {
			return nil, err
		}
	}
	//
	return acc, nil
}
