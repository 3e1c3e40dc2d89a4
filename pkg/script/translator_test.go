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
	"testing"

	"github.com/consensys/go-epistemic/pkg/conditional"
	"github.com/consensys/go-epistemic/pkg/epistemic"
	"github.com/consensys/go-epistemic/pkg/util/source"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Translate_01(t *testing.T) {
	checkTranslate(t, "1 -2.5 .5 unknown true false partial [] [3] [1 2] x",
		&Literal{[]float64{1}}, &Literal{[]float64{-2.5}}, &Literal{[]float64{0.5}},
		&Literal{nil}, &Literal{[]float64{1}}, &Literal{[]float64{0}}, &Literal{[]float64{0, 1}},
		&Literal{nil}, &Literal{[]float64{3}}, &Literal{[]float64{1, 2}}, &Variable{"x"})
}

func Test_Translate_02(t *testing.T) {
	checkTranslate(t, "(let x (+ 1 y))\n(set x 2)\n(print x (not x))",
		&Let{"x", &Operation{epistemic.OpAdd, []Expr{&Literal{[]float64{1}}, &Variable{"y"}}, false}},
		&Assign{"x", &Literal{[]float64{2}}},
		&Print{[]Expr{&Variable{"x"}, &Operation{epistemic.OpNot, []Expr{&Variable{"x"}}, false}}})
}

func Test_Translate_03(t *testing.T) {
	strict := conditional.Strict
	//
	checkTranslate(t, "(if c 1)\n(if:strict c 1 2)",
		&If{nil, &Variable{"c"}, &Literal{[]float64{1}}, nil},
		&If{&strict, &Variable{"c"}, &Literal{[]float64{1}}, &Literal{[]float64{2}}})
}

func Test_Translate_04(t *testing.T) {
	checkTranslate(t, "(defun f (a b) (f a))\n(lazy mul a)\n(do (quiet x) (const y))",
		&Defun{"f", []string{"a", "b"}, &Call{"f", []Expr{&Variable{"a"}}}},
		&Operation{epistemic.OpMul, []Expr{&Variable{"a"}}, true},
		&Sequence{[]Expr{&Quiet{&Variable{"x"}}, &Const{&Variable{"y"}}}})
}

func Test_Translate_05(t *testing.T) {
	assert.True(t, isIdentifier("x1"))
	assert.True(t, isIdentifier("is-known?"))
	assert.True(t, isIdentifier("_"))
	assert.False(t, isIdentifier("1x"))
	assert.False(t, isIdentifier("-x"))
	assert.False(t, isIdentifier("unknown"))
	assert.False(t, isIdentifier(""))
}

func checkTranslate(t *testing.T, input string, expected ...Expr) {
	t.Helper()
	//
	exprs, srcmap, errs := Parse(source.NewSourceFile("test.eps", []byte(input)))
	require.Empty(t, errs)
	//
	if diff := cmp.Diff(expected, exprs); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	// Every statement is mapped
	for _, e := range exprs {
		assert.True(t, srcmap.Has(e))
	}
}
