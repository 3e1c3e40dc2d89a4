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
	"math"
	"strconv"
	"unicode"

	"github.com/consensys/go-epistemic/pkg/conditional"
	"github.com/consensys/go-epistemic/pkg/epistemic"
	"github.com/consensys/go-epistemic/pkg/util/source"
	"github.com/consensys/go-epistemic/pkg/util/source/sexp"
)

var keywords = map[string][]float64{
	"unknown": nil,
	"true":    {1},
	"false":   {0},
	"partial": {0, 1},
}

// conditionals maps each form of conditional onto the policy it uses (where nil
// means the interpreter's default).
var conditionals = map[string]*conditional.Policy{
	"if":          nil,
	"if:run-both": ref(conditional.RunBoth),
	"if:strict":   ref(conditional.Strict),
	"if:fail":     ref(conditional.FailOnPartial),
}

// Parse a script into a sequence of statements, along with a source map
// recording where each statement and expression originated.
func Parse(file *source.File) ([]Expr, *source.Map[Expr], []source.SyntaxError) {
	sexps, srcmap, err := sexp.ParseAll(file)
	if err != nil {
		return nil, nil, []source.SyntaxError{*err}
	}
	//
	p := newTranslator(file, srcmap)
	//
	exprs, errs := p.TranslateAll(sexps)
	if len(errs) > 0 {
		return nil, nil, errs
	}
	//
	return exprs, p.SourceMap(), nil
}

func newTranslator(file *source.File, srcmap *source.Map[sexp.SExp]) *sexp.Translator[Expr] {
	p := sexp.NewTranslator[Expr](file, srcmap)
	// Symbols
	p.AddSymbolRule(keywordRule)
	p.AddSymbolRule(numberRule)
	p.AddSymbolRule(variableRule)
	// Arrays
	p.AddDefaultArrayRule(intervalRule(p))
	// Lists
	p.AddListRule("let", bindingRule(p, func(name string, body Expr) Expr { return &Let{name, body} }))
	p.AddListRule("set", bindingRule(p, func(name string, body Expr) Expr { return &Assign{name, body} }))
	p.AddRecursiveListRule("print", func(_ string, args []Expr) (Expr, error) { return &Print{args}, nil })
	p.AddRecursiveListRule("do", func(_ string, args []Expr) (Expr, error) { return &Sequence{args}, nil })
	p.AddRecursiveListRule("quiet", unaryRule(func(e Expr) Expr { return &Quiet{e} }))
	p.AddRecursiveListRule("const", unaryRule(func(e Expr) Expr { return &Const{e} }))
	p.AddListRule("defun", defunRule(p))
	p.AddListRule("lazy", lazyRule(p))
	//
	for name, policy := range conditionals {
		p.AddRecursiveListRule(name, ifRule(policy))
	}
	//
	p.AddDefaultListRule(applicationRule(p))
	//
	return p
}

// ===================================================================
// Symbols
// ===================================================================

func keywordRule(symbol string) (Expr, bool, error) {
	if bounds, ok := keywords[symbol]; ok {
		return &Literal{bounds}, true, nil
	}
	//
	return nil, false, nil
}

func numberRule(symbol string) (Expr, bool, error) {
	if !isNumber(symbol) {
		return nil, false, nil
	}
	//
	val, err := parseNumber(symbol)
	//
	return &Literal{[]float64{val}}, true, err
}

func variableRule(symbol string) (Expr, bool, error) {
	if !isIdentifier(symbol) {
		return nil, true, fmt.Errorf("invalid identifier %q", symbol)
	}
	//
	return &Variable{symbol}, true, nil
}

// ===================================================================
// Arrays
// ===================================================================

// [lo hi] is an interval, [x] a known value and [] an unknown value.
func intervalRule(p *sexp.Translator[Expr]) sexp.ArrayRule[Expr] {
	return func(arr *sexp.Array) (Expr, []source.SyntaxError) {
		var bounds []float64
		//
		if arr.Len() > 2 {
			return nil, p.SyntaxErrors(arr, "interval requires at most two bounds")
		}
		//
		for _, e := range arr.Elements {
			sym := e.AsSymbol()
			if sym == nil || !isNumber(sym.Value) {
				return nil, p.SyntaxErrors(e, "expected number")
			}
			//
			val, err := parseNumber(sym.Value)
			if err != nil {
				return nil, p.SyntaxErrors(e, err.Error())
			}
			//
			bounds = append(bounds, val)
		}
		//
		if _, err := epistemic.NewValue(bounds...); err != nil {
			return nil, p.SyntaxErrors(arr, err.Error())
		}
		//
		return &Literal{bounds}, nil
	}
}

// ===================================================================
// Lists
// ===================================================================

// (let x e) and (set x e)
func bindingRule(p *sexp.Translator[Expr], constructor func(string, Expr) Expr) sexp.ListRule[Expr] {
	return func(l *sexp.List) (Expr, []source.SyntaxError) {
		if l.Len() != 3 {
			return nil, p.SyntaxErrors(l, fmt.Sprintf("expected (%s name expr)", l.Head()))
		}
		//
		name, errs := identifier(p, l.Get(1))
		if errs != nil {
			return nil, errs
		}
		//
		body, errs := p.Translate(l.Get(2))
		if errs != nil {
			return nil, errs
		}
		//
		return constructor(name, body), nil
	}
}

// (defun f (x y) body)
func defunRule(p *sexp.Translator[Expr]) sexp.ListRule[Expr] {
	return func(l *sexp.List) (Expr, []source.SyntaxError) {
		if l.Len() != 4 || l.Get(2).AsList() == nil {
			return nil, p.SyntaxErrors(l, "expected (defun name (params...) body)")
		}
		//
		name, errs := identifier(p, l.Get(1))
		if errs != nil {
			return nil, errs
		}
		//
		params := make([]string, l.Get(2).AsList().Len())
		//
		for i, e := range l.Get(2).AsList().Elements {
			if params[i], errs = identifier(p, e); errs != nil {
				return nil, errs
			}
		}
		//
		body, errs := p.Translate(l.Get(3))
		if errs != nil {
			return nil, errs
		}
		//
		return &Defun{name, params, body}, nil
	}
}

// (lazy op args...)
func lazyRule(p *sexp.Translator[Expr]) sexp.ListRule[Expr] {
	return func(l *sexp.List) (Expr, []source.SyntaxError) {
		if l.Len() < 2 || l.Get(1).AsSymbol() == nil {
			return nil, p.SyntaxErrors(l, "expected (lazy operator args...)")
		}
		//
		op, err := epistemic.ParseOperator(l.Get(1).AsSymbol().Value)
		if err != nil {
			return nil, p.SyntaxErrors(l.Get(1), err.Error())
		}
		//
		args, errs := p.TranslateAll(l.Elements[2:])
		if len(errs) > 0 {
			return nil, errs
		}
		//
		return &Operation{op, args, true}, nil
	}
}

// (if c then) and (if c then else)
func ifRule(policy *conditional.Policy) sexp.RecursiveRule[Expr] {
	return func(head string, args []Expr) (Expr, error) {
		switch len(args) {
		case 2:
			return &If{policy, args[0], args[1], nil}, nil
		case 3:
			return &If{policy, args[0], args[1], args[2]}, nil
		}
		//
		return nil, fmt.Errorf("expected (%s cond then [else])", head)
	}
}

func unaryRule(constructor func(Expr) Expr) sexp.RecursiveRule[Expr] {
	return func(head string, args []Expr) (Expr, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("expected (%s expr)", head)
		}
		//
		return constructor(args[0]), nil
	}
}

// (op args...) or (f args...)
func applicationRule(p *sexp.Translator[Expr]) sexp.ListRule[Expr] {
	return func(l *sexp.List) (Expr, []source.SyntaxError) {
		head := l.Head()
		//
		if head == "" {
			return nil, p.SyntaxErrors(l, "invalid list")
		}
		//
		args, errs := p.TranslateAll(l.Elements[1:])
		if len(errs) > 0 {
			return nil, errs
		}
		//
		if op, err := epistemic.ParseOperator(head); err == nil {
			return &Operation{op, args, false}, nil
		} else if !isIdentifier(head) {
			return nil, p.SyntaxErrors(l.Get(0), fmt.Sprintf("invalid function name %q", head))
		}
		//
		return &Call{head, args}, nil
	}
}

// ===================================================================
// Helpers
// ===================================================================

func identifier(p *sexp.Translator[Expr], e sexp.SExp) (string, []source.SyntaxError) {
	if sym := e.AsSymbol(); sym != nil && isIdentifier(sym.Value) {
		return sym.Value, nil
	}
	//
	return "", p.SyntaxErrors(e, "expected identifier")
}

// isNumber checks whether a symbol looks like a number, i.e. begins with a digit
// (optionally preceded by a sign or decimal point).
func isNumber(symbol string) bool {
	for _, c := range symbol {
		switch {
		case unicode.IsDigit(c):
			return true
		case c != '-' && c != '+' && c != '.':
			return false
		}
	}
	//
	return false
}

func parseNumber(symbol string) (float64, error) {
	val, err := strconv.ParseFloat(symbol, 64)
	//
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("invalid number %q", symbol)
	} else if math.IsNaN(val) {
		return 0, fmt.Errorf("invalid number %q", symbol)
	}
	// Out of range values saturate to infinity
	return val, nil
}

// isIdentifier checks whether a symbol can be used as a name.  Identifiers
// start with a letter or underscore, and cannot be keywords.
func isIdentifier(symbol string) bool {
	if _, ok := keywords[symbol]; ok || symbol == "" {
		return false
	}
	//
	for i, c := range symbol {
		switch {
		case c == '_' || unicode.IsLetter(c):
		case i > 0 && (unicode.IsDigit(c) || c == '-' || c == '?' || c == '!'):
		default:
			return false
		}
	}
	//
	return true
}

func ref[T any](val T) *T {
	return &val
}
