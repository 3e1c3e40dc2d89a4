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

// Apply an operator to some operands.  When every operand is a known value or
// an interval, the result is computed immediately.  Otherwise (i.e. when some
// operand is unknown or a node), a loud node is constructed instead, such that
// evaluation is deferred until the operands are better known.
func Apply(op Operator, operands ...Term) (Term, error) {
	if err := op.checkArity(len(operands)); err != nil {
		return nil, err
	} else if values, ok := evaluable(operands); ok {
		return op.apply(values)
	}
	//
	return Symbolic(op, operands...)
}

// Add returns the sum of zero or more operands.
func Add(operands ...Term) (Term, error) {
	return Apply(OpAdd, operands...)
}

// Sub subtracts all remaining operands from the first, or negates a single
// operand.
func Sub(operands ...Term) (Term, error) {
	return Apply(OpSub, operands...)
}

// Mul returns the product of zero or more operands.
func Mul(operands ...Term) (Term, error) {
	return Apply(OpMul, operands...)
}

// Div divides the first operand by all remaining operands, or returns the
// reciprocal of a single operand.
func Div(operands ...Term) (Term, error) {
	return Apply(OpDiv, operands...)
}

// Pow raises the first operand to the power of the remaining operands, folding
// from the left.
func Pow(operands ...Term) (Term, error) {
	return Apply(OpPow, operands...)
}

// Eq compares two operands for equality.
func Eq(lhs Term, rhs Term) (Term, error) {
	return Apply(OpEq, lhs, rhs)
}

// Ne compares two operands for disequality.
func Ne(lhs Term, rhs Term) (Term, error) {
	return Apply(OpNe, lhs, rhs)
}

// Gt checks whether lhs > rhs.
func Gt(lhs Term, rhs Term) (Term, error) {
	return Apply(OpGt, lhs, rhs)
}

// Ge checks whether lhs >= rhs.
func Ge(lhs Term, rhs Term) (Term, error) {
	return Apply(OpGe, lhs, rhs)
}

// Lt checks whether lhs < rhs.
func Lt(lhs Term, rhs Term) (Term, error) {
	return Apply(OpLt, lhs, rhs)
}

// Le checks whether lhs <= rhs.
func Le(lhs Term, rhs Term) (Term, error) {
	return Apply(OpLe, lhs, rhs)
}

// And returns the conjunction of zero or more operands.
func And(operands ...Term) (Term, error) {
	return Apply(OpAnd, operands...)
}

// Or returns the disjunction of zero or more operands.
func Or(operands ...Term) (Term, error) {
	return Apply(OpOr, operands...)
}

// Not returns the negation of an operand.
func Not(operand Term) (Term, error) {
	return Apply(OpNot, operand)
}
