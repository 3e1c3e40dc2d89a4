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
package sexp

import (
	"fmt"

	"github.com/consensys/go-epistemic/pkg/util/source"
)

// SymbolRule is responsible for converting a terminating expression (i.e. a
// symbol) into an expression type T, such as a number or a variable access.  The
// boolean indicates whether the rule applied.
type SymbolRule[T comparable] func(string) (T, bool, error)

// ListRule is responsible for converting a list into an expression type T.  The
// rule is given the raw list, and may translate its elements recursively via
// the translator.
type ListRule[T comparable] func(*List) (T, []source.SyntaxError)

// ArrayRule is responsible for converting an array into an expression type T.
type ArrayRule[T comparable] func(*Array) (T, []source.SyntaxError)

// RecursiveRule is a wrapper for translating lists whose arguments are
// translated by recursively reusing the enclosing translator.  The rule is given
// the head of the list and the translated arguments.
type RecursiveRule[T comparable] func(string, []T) (T, error)

// ===================================================================
// Translator
// ===================================================================

// Translator is a generic mechanism for translating S-Expressions into a
// structured form.  As terms are translated, a source map is constructed which
// maps each term back to its originating span.
type Translator[T comparable] struct {
	srcfile *source.File
	// Rules for parsing lists, keyed by their head
	lists map[string]ListRule[T]
	// Fallback rule for lists not matching any other rule.
	listDefault ListRule[T]
	// Rule for parsing arrays.
	arrayDefault ArrayRule[T]
	// Rules for parsing symbols, tried in order
	symbols []SymbolRule[T]
	// Maps S-Expressions to their spans in the original source file.
	sexpMap *source.Map[SExp]
	// Maps translated terms to their spans in the original source file.
	termMap *source.Map[T]
}

// NewTranslator constructs a new Translator instance.
func NewTranslator[T comparable](srcfile *source.File, srcmap *source.Map[SExp]) *Translator[T] {
	return &Translator[T]{
		srcfile: srcfile,
		lists:   make(map[string]ListRule[T]),
		symbols: make([]SymbolRule[T], 0),
		sexpMap: srcmap,
		termMap: source.NewSourceMap[T](srcfile),
	}
}

// SourceMap returns the source map maintained for terms constructed by this
// translator.
func (p *Translator[T]) SourceMap() *source.Map[T] {
	return p.termMap
}

// Translate a given S-Expression into the structured representation T.
func (p *Translator[T]) Translate(sexp SExp) (T, []source.SyntaxError) {
	var empty T
	//
	switch e := sexp.(type) {
	case *List:
		return p.translateList(e)
	case *Array:
		if p.arrayDefault == nil {
			return empty, p.SyntaxErrors(e, "unexpected array")
		}
		//
		return p.mapped(e)(p.arrayDefault(e))
	case *Symbol:
		for _, rule := range p.symbols {
			node, ok, err := rule(e.Value)
			//
			if ok && err != nil {
				return empty, p.SyntaxErrors(e, err.Error())
			} else if ok {
				p.termMap.Put(node, p.SpanOf(e))
				return node, nil
			}
		}
		//
		return empty, p.SyntaxErrors(e, fmt.Sprintf("unknown symbol %q", e.Value))
	}
	// Should be unreachable
	return empty, p.SyntaxErrors(sexp, fmt.Sprintf("invalid s-expression (%T)", sexp))
}

// TranslateAll translates a sequence of S-Expressions, accumulating all errors
// encountered.
func (p *Translator[T]) TranslateAll(sexps []SExp) ([]T, []source.SyntaxError) {
	var (
		terms  = make([]T, len(sexps))
		errors []source.SyntaxError
	)
	//
	for i, s := range sexps {
		var errs []source.SyntaxError
		terms[i], errs = p.Translate(s)
		errors = append(errors, errs...)
	}
	//
	return terms, errors
}

// AddListRule adds a raw list rule to this translator.
func (p *Translator[T]) AddListRule(name string, rule ListRule[T]) {
	p.lists[name] = rule
}

// AddRecursiveListRule adds a list rule whose arguments are translated
// recursively before the rule is applied.
func (p *Translator[T]) AddRecursiveListRule(name string, rule RecursiveRule[T]) {
	p.lists[name] = p.createRecursiveListRule(rule)
}

// AddDefaultListRule adds a rule to be applied to lists when no other rule
// applies.
func (p *Translator[T]) AddDefaultListRule(rule ListRule[T]) {
	p.listDefault = rule
}

// AddDefaultArrayRule adds the rule to be applied to arrays.
func (p *Translator[T]) AddDefaultArrayRule(rule ArrayRule[T]) {
	p.arrayDefault = rule
}

// AddSymbolRule adds a new symbol rule to this translator.  Symbol rules are
// tried in the order they are added.
func (p *Translator[T]) AddSymbolRule(rule SymbolRule[T]) {
	p.symbols = append(p.symbols, rule)
}

// SpanOf gets the span associated with a given S-Expression in the original
// source file.
func (p *Translator[T]) SpanOf(sexp SExp) source.Span {
	return p.sexpMap.Get(sexp)
}

// SyntaxError constructs a suitable syntax error for a given S-Expression.
func (p *Translator[T]) SyntaxError(s SExp, msg string) *source.SyntaxError {
	return p.srcfile.SyntaxError(p.SpanOf(s), msg)
}

// SyntaxErrors constructs a suitable syntax error for a given S-Expression,
// wrapped in an array.
func (p *Translator[T]) SyntaxErrors(s SExp, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.SyntaxError(s, msg)}
}

// ===================================================================
// Private
// ===================================================================

func (p *Translator[T]) translateList(l *List) (T, []source.SyntaxError) {
	var empty T
	//
	if rule := p.lists[l.Head()]; rule != nil && l.Head() != "" {
		return p.mapped(l)(rule(l))
	} else if p.listDefault != nil {
		return p.mapped(l)(p.listDefault(l))
	}
	//
	return empty, p.SyntaxErrors(l, "unknown list encountered")
}

func (p *Translator[T]) createRecursiveListRule(rule RecursiveRule[T]) ListRule[T] {
	return func(l *List) (T, []source.SyntaxError) {
		var empty T
		// Translate arguments
		args, errors := p.TranslateAll(l.Elements[1:])
		//
		if len(errors) > 0 {
			return empty, errors
		}
		// Apply constructor
		term, err := rule(l.Head(), args)
		if err != nil {
			return empty, p.SyntaxErrors(l, err.Error())
		}
		//
		return term, nil
	}
}

// mapped records the span of a successfully translated term.
func (p *Translator[T]) mapped(sexp SExp) func(T, []source.SyntaxError) (T, []source.SyntaxError) {
	return func(term T, errors []source.SyntaxError) (T, []source.SyntaxError) {
		if len(errors) == 0 {
			p.termMap.Put(term, p.SpanOf(sexp))
		}
		//
		return term, errors
	}
}
