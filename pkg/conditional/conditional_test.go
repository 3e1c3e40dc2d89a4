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
package conditional

import (
	"errors"
	"testing"

	"github.com/consensys/go-epistemic/pkg/epistemic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trace records the order in which branches were executed.
type trace []string

func (t *trace) branches() (func(), func()) {
	return func() { *t = append(*t, "true") }, func() { *t = append(*t, "false") }
}

func Test_If_01(t *testing.T) {
	for _, policy := range []Policy{RunBoth, Strict, FailOnPartial} {
		var tr trace
		//
		onTrue, onFalse := tr.branches()
		outcome, err := If(epistemic.True(), onTrue, onFalse, policy)
		require.NoError(t, err)
		assert.Equal(t, TrueBranch, outcome)
		assert.Equal(t, trace{"true"}, tr)
	}
}

func Test_If_02(t *testing.T) {
	for _, policy := range []Policy{RunBoth, Strict, FailOnPartial} {
		var tr trace
		//
		onTrue, onFalse := tr.branches()
		outcome, err := If(epistemic.False(), onTrue, onFalse, policy)
		require.NoError(t, err)
		assert.Equal(t, FalseBranch, outcome)
		assert.Equal(t, trace{"false"}, tr)
	}
}

func Test_If_03(t *testing.T) {
	var tr trace
	//
	onTrue, onFalse := tr.branches()
	outcome, err := If(epistemic.Partial(), onTrue, onFalse, RunBoth)
	require.NoError(t, err)
	assert.Equal(t, BothBranches, outcome)
	assert.Equal(t, trace{"true", "false"}, tr)
}

func Test_If_04(t *testing.T) {
	var tr trace
	//
	onTrue, onFalse := tr.branches()
	outcome, err := If(epistemic.Partial(), onTrue, onFalse, Strict)
	require.NoError(t, err)
	assert.Equal(t, NoBranch, outcome)
	assert.Empty(t, tr)
}

func Test_If_05(t *testing.T) {
	var (
		tr      trace
		partial *PartialConditionError
	)
	//
	onTrue, onFalse := tr.branches()
	_, err := If(epistemic.Partial(), onTrue, onFalse, FailOnPartial)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPartialCondition)
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, "[0..1]", partial.Bound)
	assert.Equal(t, epistemic.INTERVAL, partial.Kind)
	assert.Equal(t, "partial or unknown condition: [0..1]", err.Error())
	assert.Empty(t, tr)
}

func Test_If_06(t *testing.T) {
	var tr trace
	// Unknown conditions are uncertain as well
	onTrue, onFalse := tr.branches()
	outcome, err := If(epistemic.Unknown(), onTrue, onFalse, RunBoth)
	require.NoError(t, err)
	assert.Equal(t, BothBranches, outcome)
	//
	_, err = If(epistemic.Unknown(), onTrue, onFalse, FailOnPartial)
	assert.ErrorIs(t, err, ErrPartialCondition)
}

func Test_If_07(t *testing.T) {
	var tr trace
	// Conditions are resolved first
	x := epistemic.Unknown()
	cond, err := epistemic.Gt(x, epistemic.Known(3))
	require.NoError(t, err)
	//
	onTrue, onFalse := tr.branches()
	outcome, err := If(cond, onTrue, onFalse, Strict)
	require.NoError(t, err)
	assert.Equal(t, NoBranch, outcome)
	//
	x.SetKnown(5)
	outcome, err = If(cond, onTrue, onFalse, Strict)
	require.NoError(t, err)
	assert.Equal(t, TrueBranch, outcome)
	assert.Equal(t, trace{"true"}, tr)
}

func Test_If_08(t *testing.T) {
	outcome, err := If(epistemic.Partial(), nil, nil, RunBoth)
	require.NoError(t, err)
	assert.Equal(t, BothBranches, outcome)
}

func Test_Evaluate_01(t *testing.T) {
	onTrue := func() (string, error) { return "yes", nil }
	onFalse := func() (string, error) { return "no", nil }
	//
	r, _, err := Evaluate(epistemic.True(), onTrue, onFalse, Strict)
	require.NoError(t, err)
	assert.Equal(t, "yes", r)
	//
	r, _, err = Evaluate(epistemic.False(), onTrue, onFalse, Strict)
	require.NoError(t, err)
	assert.Equal(t, "no", r)
	//
	r, outcome, err := Evaluate(epistemic.Partial(), onTrue, onFalse, RunBoth)
	require.NoError(t, err)
	assert.Equal(t, BothBranches, outcome)
	assert.Equal(t, "", r)
}

func Test_Evaluate_02(t *testing.T) {
	failure := errors.New("failure")
	called := false
	//
	onTrue := func() (int, error) { return 0, failure }
	onFalse := func() (int, error) { called = true; return 1, nil }
	//
	_, _, err := Evaluate(epistemic.Partial(), onTrue, onFalse, RunBoth)
	assert.ErrorIs(t, err, failure)
	assert.False(t, called)
}

func Test_Evaluate_03(t *testing.T) {
	bad, err := epistemic.Symbolic(epistemic.OpDiv, epistemic.Known(1), epistemic.Known(0))
	require.NoError(t, err)
	//
	_, outcome, err := Evaluate[int](bad, nil, nil, RunBoth)
	assert.ErrorIs(t, err, epistemic.ErrDivisionByZero)
	assert.Equal(t, NoBranch, outcome)
}

func Test_Choose_01(t *testing.T) {
	onTrue := constant(epistemic.Known(1))
	onFalse := constant(epistemic.Known(5))
	//
	r, outcome, err := Choose(epistemic.Partial(), onTrue, onFalse, RunBoth)
	require.NoError(t, err)
	assert.Equal(t, BothBranches, outcome)
	assert.Equal(t, "[1..5]", r.String())
	//
	r, _, err = Choose(epistemic.Partial(), onTrue, onFalse, Strict)
	require.NoError(t, err)
	assert.Equal(t, "unknown", r.String())
	//
	r, _, err = Choose(epistemic.False(), onTrue, onFalse, Strict)
	require.NoError(t, err)
	assert.Equal(t, "5", r.String())
}

func Test_Choose_02(t *testing.T) {
	onTrue := constant(epistemic.MustInterval(-2, 0))
	onFalse := constant(epistemic.Unknown())
	//
	r, _, err := Choose(epistemic.Partial(), onTrue, onFalse, RunBoth)
	require.NoError(t, err)
	assert.Equal(t, "unknown", r.String())
	//
	r, _, err = Choose(epistemic.Partial(), onTrue, nil, RunBoth)
	require.NoError(t, err)
	assert.Equal(t, "unknown", r.String())
}

func Test_Policy_01(t *testing.T) {
	for _, policy := range []Policy{RunBoth, Strict, FailOnPartial} {
		text, err := policy.MarshalText()
		require.NoError(t, err)
		//
		var parsed Policy
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, policy, parsed)
	}
}

func Test_Policy_02(t *testing.T) {
	var p Policy
	//
	require.NoError(t, p.Set("FAIL_ON_PARTIAL"))
	assert.Equal(t, FailOnPartial, p)
	assert.Equal(t, "policy", p.Type())
	//
	assert.ErrorIs(t, p.Set("sometimes"), ErrUnknownPolicy)
	assert.Equal(t, FailOnPartial, p)
}

func constant(v epistemic.Term) func() (epistemic.Term, error) {
	return func() (epistemic.Term, error) { return v, nil }
}
