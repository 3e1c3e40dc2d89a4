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
	"errors"
	"fmt"
	"io"

	"github.com/consensys/go-epistemic/pkg/conditional"
	"github.com/consensys/go-epistemic/pkg/epistemic"
	"github.com/consensys/go-epistemic/pkg/function"
	"github.com/consensys/go-epistemic/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// ErrNoValue is reported when a statement (such as let or print) is used where
// a value is expected.
var ErrNoValue = errors.New("expression has no value")

// Interpreter executes scripts against a single global environment, such that
// bindings made by one script are visible to the next.
type Interpreter struct {
	out    io.Writer
	policy conditional.Policy
	colour bool
	env    *Environment
}

// NewInterpreter constructs an interpreter which prints to a given writer, and
// uses a given default policy for conditionals.
func NewInterpreter(out io.Writer, policy conditional.Policy, colour bool) *Interpreter {
	return &Interpreter{out, policy, colour, NewEnvironment()}
}

// Environment returns the global environment of this interpreter.
func (p *Interpreter) Environment() *Environment {
	return p.env
}

// Execute a script.  Syntax errors prevent execution altogether, whilst
// execution stops at the first runtime error.  In both cases, errors are
// reported against their position in the source file.  The result of each
// top-level expression (other than statements) is printed.
func (p *Interpreter) Execute(file *source.File) []source.SyntaxError {
	exprs, srcmap, errs := Parse(file)
	if len(errs) > 0 {
		return errs
	}
	//
	log.Debugf("executing %d statement(s) from %s", len(exprs), file.Filename())
	//
	for _, expr := range exprs {
		result, err := p.eval(expr, p.env)
		//
		if err == nil && result != nil && !isStatement(expr) {
			err = p.print([]epistemic.Term{result})
		}
		//
		if err != nil {
			return []source.SyntaxError{*runtimeError(srcmap, expr, err)}
		}
	}
	//
	return nil
}

// ===================================================================
// Evaluation
// ===================================================================

// evalError associates a runtime error with the innermost expression where it
// arose.
type evalError struct {
	expr Expr
	err  error
}

func (e *evalError) Error() string {
	return e.err.Error()
}

func (e *evalError) Unwrap() error {
	return e.err
}

func (p *Interpreter) eval(expr Expr, env *Environment) (epistemic.Term, error) {
	term, err := p.evalExpr(expr, env)
	//
	var inner *evalError
	//
	if err != nil && !errors.As(err, &inner) {
		return nil, &evalError{expr, err}
	}
	//
	return term, err
}

func (p *Interpreter) evalExpr(expr Expr, env *Environment) (epistemic.Term, error) {
	switch e := expr.(type) {
	case *Literal:
		return epistemic.NewValue(e.Bounds...)
	case *Variable:
		return env.Lookup(e.Name)
	case *Operation:
		return p.evalOperation(e, env)
	case *Call:
		return p.evalCall(e, env)
	case *Let:
		return nil, p.evalLet(e, env)
	case *Assign:
		return nil, p.evalAssign(e, env)
	case *Print:
		return nil, p.evalPrint(e, env)
	case *Sequence:
		return p.evalSequence(e, env)
	case *If:
		return p.evalIf(e, env)
	case *Defun:
		return nil, p.evalDefun(e, env)
	case *Quiet:
		return p.evalWrapper(e.Body, env, true, false)
	case *Const:
		return p.evalWrapper(e.Body, env, false, true)
	}
	//
	return nil, fmt.Errorf("unknown expression (%T)", expr)
}

func (p *Interpreter) evalOperation(e *Operation, env *Environment) (epistemic.Term, error) {
	args, err := p.evalValues(e.Args, env)
	//
	if err != nil {
		return nil, err
	} else if e.Lazy {
		return epistemic.Symbolic(e.Operator, args...)
	}
	//
	return epistemic.Apply(e.Operator, args...)
}

func (p *Interpreter) evalCall(e *Call, env *Environment) (epistemic.Term, error) {
	fn, err := env.LookupFunction(e.Name)
	if err != nil {
		return nil, err
	}
	//
	args, err := p.evalValues(e.Args, env)
	if err != nil {
		return nil, err
	}
	//
	log.Debugf("calling %s with %d argument(s)", e.Name, len(args))
	//
	return fn.Call(args...)
}

// Let binds the term itself, rather than a copy.  Hence, (let y x) makes y an
// alias for x.
func (p *Interpreter) evalLet(e *Let, env *Environment) error {
	term, err := p.evalValue(e.Body, env)
	if err != nil {
		return err
	}
	//
	env.Define(e.Name, term)
	//
	return nil
}

// Assignment mutates a bound value in place, thereby invalidating every node
// which uses it.
func (p *Interpreter) evalAssign(e *Assign, env *Environment) error {
	binding, err := env.Lookup(e.Name)
	if err != nil {
		return err
	}
	//
	leaf, ok := binding.(*epistemic.Value)
	if !ok {
		return fmt.Errorf("cannot assign %q (bound to symbolic node)", e.Name)
	}
	//
	term, err := p.evalValue(e.Body, env)
	if err != nil {
		return err
	}
	//
	val, err := epistemic.Collapse(term)
	if err != nil {
		return err
	}
	//
	leaf.Set(val)
	//
	return nil
}

func (p *Interpreter) evalPrint(e *Print, env *Environment) error {
	args, err := p.evalValues(e.Args, env)
	if err != nil {
		return err
	}
	//
	return p.print(args)
}

func (p *Interpreter) evalSequence(e *Sequence, env *Environment) (epistemic.Term, error) {
	var (
		last epistemic.Term
		err  error
	)
	//
	for _, body := range e.Body {
		if last, err = p.eval(body, env); err != nil {
			return nil, err
		}
	}
	//
	return last, nil
}

func (p *Interpreter) evalIf(e *If, env *Environment) (epistemic.Term, error) {
	policy := p.policy
	//
	if e.Policy != nil {
		policy = *e.Policy
	}
	//
	cond, err := p.evalValue(e.Cond, env)
	if err != nil {
		return nil, err
	}
	//
	branch := func(body Expr) func() (epistemic.Term, error) {
		return func() (epistemic.Term, error) {
			if body == nil {
				return nil, nil
			}
			//
			return p.eval(body, env)
		}
	}
	//
	result, outcome, err := conditional.Choose(cond, branch(e.Then), branch(e.Else), policy)
	//
	if err == nil {
		log.Debugf("conditional on %s took %s", cond.String(), outcome)
	}
	//
	return result, err
}

// Functions close over the environment in which they are defined.
func (p *Interpreter) evalDefun(e *Defun, env *Environment) error {
	fn, err := function.New(e.Params, func(args map[string]epistemic.Term) (epistemic.Term, error) {
		scope := env.Child()
		//
		for name, arg := range args {
			scope.Define(name, arg)
		}
		//
		return p.evalValue(e.Body, scope)
	})
	//
	if err != nil {
		return err
	}
	//
	env.DefineFunction(e.Name, fn)
	//
	return nil
}

// Rebuild a symbolic node with different flags.  Values pass through unchanged,
// since there is nothing left to defer.
func (p *Interpreter) evalWrapper(body Expr, env *Environment, quiet bool, locked bool) (epistemic.Term, error) {
	term, err := p.evalValue(body, env)
	if err != nil {
		return nil, err
	}
	//
	node, ok := term.(*epistemic.Node)
	if !ok {
		return term, nil
	}
	//
	return epistemic.NewNode(node.Operator(), node.Operands(), quiet || node.IsQuiet(), locked || node.IsLocked())
}

// evalValue evaluates an expression which must produce a term.
func (p *Interpreter) evalValue(expr Expr, env *Environment) (epistemic.Term, error) {
	term, err := p.eval(expr, env)
	//
	if err != nil {
		return nil, err
	} else if term == nil {
		return nil, &evalError{expr, ErrNoValue}
	}
	//
	return term, nil
}

func (p *Interpreter) evalValues(exprs []Expr, env *Environment) ([]epistemic.Term, error) {
	terms := make([]epistemic.Term, len(exprs))
	//
	for i, expr := range exprs {
		var err error
		//
		if terms[i], err = p.evalValue(expr, env); err != nil {
			return nil, err
		}
	}
	//
	return terms, nil
}

func (p *Interpreter) print(terms []epistemic.Term) error {
	line, err := RenderAll(terms, p.colour)
	if err != nil {
		return err
	}
	//
	_, err = fmt.Fprintln(p.out, line)
	//
	return err
}

// runtimeError converts an error arising during execution into a syntax error
// highlighting the expression responsible.
func runtimeError(srcmap *source.Map[Expr], top Expr, err error) *source.SyntaxError {
	var inner *evalError
	//
	if errors.As(err, &inner) && srcmap.Has(inner.expr) {
		return srcmap.SyntaxError(inner.expr, inner.err.Error())
	}
	//
	return srcmap.SyntaxError(top, err.Error())
}
