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
	"strconv"
	"testing"

	"github.com/consensys/go-epistemic/pkg/util/source"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sym(s string) *Symbol { return NewSymbol(s) }

func list(elements ...SExp) *List { return NewList(elements) }

func array(elements ...SExp) *Array { return NewArray(elements) }

func Test_Parse_01(t *testing.T) {
	checkParse(t, "x", sym("x"))
	checkParse(t, "  12.5 ", sym("12.5"))
	checkParse(t, "()", list())
	checkParse(t, "(+ 1 2)", list(sym("+"), sym("1"), sym("2")))
}

func Test_Parse_02(t *testing.T) {
	checkParse(t, "(let x [1 2])", list(sym("let"), sym("x"), array(sym("1"), sym("2"))))
	checkParse(t, "(f (g x) [a])", list(sym("f"), list(sym("g"), sym("x")), array(sym("a"))))
}

func Test_Parse_03(t *testing.T) {
	// Comments run to end of line
	checkParse(t, "; leading\n(a ; inner\n b)", list(sym("a"), sym("b")))
}

func Test_Parse_04(t *testing.T) {
	checkParseError(t, "(a b", "unexpected end-of-file")
	checkParseError(t, ")", "unexpected end-of-list")
	checkParseError(t, "[1 )", "unexpected end-of-list")
	checkParseError(t, "a b", "unexpected remainder")
}

func Test_ParseAll_01(t *testing.T) {
	file := source.NewSourceFile("test", []byte("(let x 1)\n(print x) y"))
	//
	terms, srcmap, err := ParseAll(file)
	require.Nil(t, err)
	//
	expected := []SExp{
		list(sym("let"), sym("x"), sym("1")),
		list(sym("print"), sym("x")),
		sym("y"),
	}
	//
	if diff := cmp.Diff(expected, terms); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	// Spans
	span := srcmap.Get(terms[1])
	assert.Equal(t, 10, span.Start())
	assert.Equal(t, 19, span.End())
}

func Test_ParseAll_02(t *testing.T) {
	file := source.NewSourceFile("test.sk", []byte("(a)\n  (b"))
	//
	_, _, err := ParseAll(file)
	require.NotNil(t, err)
	assert.Equal(t, "test.sk:2:5: unexpected end-of-file", err.Error())
}

// ===================================================================
// Translator
// ===================================================================

type term struct {
	name  string
	value float64
	args  []*term
}

func newTranslator(file *source.File, srcmap *source.Map[SExp]) *Translator[*term] {
	p := NewTranslator[*term](file, srcmap)
	//
	p.AddSymbolRule(func(s string) (*term, bool, error) {
		v, err := strconv.ParseFloat(s, 64)
		return &term{value: v}, err == nil, nil
	})
	p.AddRecursiveListRule("sum", func(_ string, args []*term) (*term, error) {
		return &term{name: "sum", args: args}, nil
	})
	//
	return p
}

func Test_Translator_01(t *testing.T) {
	file := source.NewSourceFile("test", []byte("(sum 1 (sum 2 3))"))
	sexp, srcmap, err := Parse(file)
	require.Nil(t, err)
	//
	p := newTranslator(file, srcmap)
	//
	r, errs := p.Translate(sexp)
	require.Empty(t, errs)
	assert.Equal(t, "sum", r.name)
	require.Len(t, r.args, 2)
	assert.Equal(t, 1.0, r.args[0].value)
	// Spans carried across
	span := p.SourceMap().Get(r.args[1])
	assert.Equal(t, 7, span.Start())
	assert.Equal(t, 16, span.End())
}

func Test_Translator_02(t *testing.T) {
	file := source.NewSourceFile("test", []byte("(sum x (prod 1) [2])"))
	sexp, srcmap, err := Parse(file)
	require.Nil(t, err)
	//
	_, errs := newTranslator(file, srcmap).Translate(sexp)
	require.Len(t, errs, 3)
	assert.Equal(t, "unknown symbol \"x\"", errs[0].Message())
	assert.Equal(t, "unknown list encountered", errs[1].Message())
	assert.Equal(t, "unexpected array", errs[2].Message())
}

func checkParse(t *testing.T, input string, expected SExp) {
	t.Helper()
	//
	sexp, _, err := Parse(source.NewSourceFile("test", []byte(input)))
	require.Nil(t, err)
	//
	if diff := cmp.Diff(expected, sexp); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func checkParseError(t *testing.T, input string, msg string) {
	t.Helper()
	//
	_, _, err := Parse(source.NewSourceFile("test", []byte(input)))
	require.NotNil(t, err)
	assert.Equal(t, msg, err.Message())
}
