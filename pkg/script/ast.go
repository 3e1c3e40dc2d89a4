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
	"github.com/consensys/go-epistemic/pkg/conditional"
	"github.com/consensys/go-epistemic/pkg/epistemic"
)

// Expr is a statement or expression of a script.  All implementations are
// pointers, such that every occurrence in a script is distinct (and hence can be
// mapped back to its position in the source file).
type Expr interface {
	isExpr()
}

// Literal is a constant value, such as 1, unknown or [1 2].  Zero bounds
// denote an unknown value, one bound a known value and two bounds an
// interval.
type Literal struct {
	Bounds []float64
}

// Variable reads a bound name.
type Variable struct {
	Name string
}

// Operation applies an operator.  A lazy operation always constructs a symbolic
// node, even when its operands are known.
type Operation struct {
	Operator epistemic.Operator
	Args     []Expr
	Lazy     bool
}

// Call invokes a user-defined function.
type Call struct {
	Name string
	Args []Expr
}

// Let binds a name to the result of an expression.
type Let struct {
	Name string
	Body Expr
}

// Assign updates the value bound to a name in place, thereby invalidating any
// symbolic node using it.
type Assign struct {
	Name string
	Body Expr
}

// Print resolves and prints zero or more expressions on a single line.
type Print struct {
	Args []Expr
}

// Sequence evaluates expressions in order, producing the result of the last.
type Sequence struct {
	Body []Expr
}

// If is an epistemic conditional.  When Policy is nil, the interpreter's
// default policy applies.  Else may be nil.
type If struct {
	Policy *conditional.Policy
	Cond   Expr
	Then   Expr
	Else   Expr
}

// Defun defines a function.
type Defun struct {
	Name   string
	Params []string
	Body   Expr
}

// Quiet converts a symbolic node into one which collapses to unknown.
type Quiet struct {
	Body Expr
}

// Const converts a symbolic node into one whose operands cannot be changed.
type Const struct {
	Body Expr
}

func (*Literal) isExpr()   {}
func (*Variable) isExpr()  {}
func (*Operation) isExpr() {}
func (*Call) isExpr()      {}
func (*Let) isExpr()       {}
func (*Assign) isExpr()    {}
func (*Print) isExpr()     {}
func (*Sequence) isExpr()  {}
func (*If) isExpr()        {}
func (*Defun) isExpr()     {}
func (*Quiet) isExpr()     {}
func (*Const) isExpr()     {}

// isStatement identifies those forms whose results are not printed when
// appearing at the top level of a script.
func isStatement(e Expr) bool {
	switch e.(type) {
	case *Let, *Assign, *Print, *Defun, *If, *Sequence:
		return true
	}
	//
	return false
}
