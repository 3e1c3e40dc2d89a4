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
package function

import (
	"testing"

	"github.com/consensys/go-epistemic/pkg/epistemic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(t *testing.T) *Function {
	f, err := New([]string{"a", "b"}, func(args map[string]epistemic.Term) (epistemic.Term, error) {
		return epistemic.Add(args["a"], args["b"])
	})
	require.NoError(t, err)
	//
	return f
}

func Test_Function_01(t *testing.T) {
	f := sum(t)
	assert.Equal(t, 2, f.Arity())
	assert.Equal(t, []string{"a", "b"}, f.Parameters())
	//
	r, err := f.Call(epistemic.Known(2), epistemic.MustInterval(8, 16))
	require.NoError(t, err)
	assert.Equal(t, "[10..18]", r.String())
}

func Test_Function_02(t *testing.T) {
	x := epistemic.Unknown()
	//
	r, err := sum(t).Call(x, epistemic.Known(1))
	require.NoError(t, err)
	assert.Equal(t, epistemic.SYMBOLIC, r.Kind())
	// Results stay connected to their arguments
	x.SetKnown(4)
	//
	v, err := epistemic.Collapse(r)
	require.NoError(t, err)
	assert.Equal(t, "5", v.String())
}

func Test_Function_03(t *testing.T) {
	_, err := sum(t).Call(epistemic.Known(1))
	assert.ErrorIs(t, err, ErrArgumentCountMismatch)
	assert.EqualError(t, err, "argument count mismatch: expected 2, got 1")
}

func Test_Function_04(t *testing.T) {
	_, err := New([]string{"x", "x"}, nil)
	assert.ErrorIs(t, err, ErrDuplicateParameter)
}
