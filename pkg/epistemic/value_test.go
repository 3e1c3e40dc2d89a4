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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Value_01(t *testing.T) {
	v, err := NewValue()
	require.NoError(t, err)
	assert.Equal(t, UNKNOWN, v.Kind())
	assert.Equal(t, "unknown", v.String())
	//
	_, _, err = v.Bounds()
	assert.ErrorIs(t, err, ErrUndefinedBounds)
}

func Test_Value_02(t *testing.T) {
	v, err := NewValue(3.5)
	require.NoError(t, err)
	assert.Equal(t, KNOWN, v.Kind())
	assert.Equal(t, "3.5", v.String())
	//
	lo, hi, err := v.Bounds()
	require.NoError(t, err)
	assert.Equal(t, 3.5, lo)
	assert.Equal(t, 3.5, hi)
}

func Test_Value_03(t *testing.T) {
	// Equal bounds collapse
	v, err := NewValue(2, 2)
	require.NoError(t, err)
	assert.Equal(t, KNOWN, v.Kind())
	assert.Equal(t, "2", v.String())
}

func Test_Value_04(t *testing.T) {
	v, err := NewInterval(-1, 4)
	require.NoError(t, err)
	assert.Equal(t, INTERVAL, v.Kind())
	assert.Equal(t, "[-1..4]", v.String())
}

func Test_Value_05(t *testing.T) {
	_, err := NewInterval(4, -1)
	assert.ErrorIs(t, err, ErrInvalidInterval)
	//
	_, err = NewInterval(math.NaN(), 1)
	assert.ErrorIs(t, err, ErrInvalidInterval)
	//
	_, err = NewValue(1, 2, 3)
	assert.ErrorIs(t, err, ErrInvalidInterval)
	//
	assert.Panics(t, func() { MustInterval(2, 1) })
}

func Test_Value_06(t *testing.T) {
	assert.True(t, Known(1).StructurallyEqual(Known(1)))
	assert.False(t, Known(1).StructurallyEqual(Known(2)))
	assert.True(t, MustInterval(1, 2).StructurallyEqual(MustInterval(1, 2)))
	assert.False(t, MustInterval(1, 2).StructurallyEqual(MustInterval(1, 3)))
	assert.False(t, Known(1).StructurallyEqual(MustInterval(1, 2)))
	assert.True(t, Unknown().StructurallyEqual(Unknown()))
	assert.False(t, Unknown().StructurallyEqual(nil))
}

func Test_Value_07(t *testing.T) {
	assert.Equal(t, "-3", Known(3).Negate().String())
	assert.Equal(t, "[-4..1]", MustInterval(-1, 4).Negate().String())
	assert.Equal(t, UNKNOWN, Unknown().Negate().Kind())
}

func Test_Value_08(t *testing.T) {
	v := Unknown()
	//
	v.SetKnown(5)
	assert.Equal(t, "5", v.String())
	//
	require.NoError(t, v.SetInterval(1, 2))
	assert.Equal(t, "[1..2]", v.String())
	//
	require.NoError(t, v.SetInterval(7, 7))
	assert.Equal(t, KNOWN, v.Kind())
	// Invalid range leaves value unchanged
	assert.ErrorIs(t, v.SetInterval(3, 1), ErrInvalidInterval)
	assert.Equal(t, "7", v.String())
	//
	v.SetUnknown()
	assert.Equal(t, UNKNOWN, v.Kind())
	//
	v.Set(MustInterval(0, 9))
	assert.Equal(t, "[0..9]", v.String())
}

func Test_Value_09(t *testing.T) {
	b, err := Known(2).Bool()
	require.NoError(t, err)
	assert.True(t, b)
	//
	b, err = False().Bool()
	require.NoError(t, err)
	assert.False(t, b)
	//
	_, err = Partial().Bool()
	assert.ErrorIs(t, err, ErrAmbiguousTruthValue)
	//
	_, err = Unknown().Bool()
	assert.ErrorIs(t, err, ErrAmbiguousTruthValue)
}

func Test_Value_10(t *testing.T) {
	v := MustInterval(1, 2)
	c := v.Clone()
	//
	c.SetKnown(3)
	assert.Equal(t, "[1..2]", v.String())
	assert.Equal(t, "3", c.String())
}

func Test_Value_11(t *testing.T) {
	assert.True(t, Known(0).IsKnownZero())
	assert.False(t, Unknown().IsKnownZero())
	assert.False(t, MustInterval(0, 1).IsKnownZero())
	//
	s, ok := Known(4).Scalar()
	assert.True(t, ok)
	assert.Equal(t, 4.0, s)
	//
	_, ok = Partial().Scalar()
	assert.False(t, ok)
}

func Test_Value_12(t *testing.T) {
	values := []*Value{
		Known(0), Known(3), Known(-7.25), Known(math.Inf(1)),
		MustInterval(-1, 4), MustInterval(2, 3), MustInterval(-5, -1), MustInterval(math.Inf(-1), 0),
	}
	//
	for _, v := range values {
		if r := v.Negate().Negate(); !r.StructurallyEqual(v) {
			t.Errorf("negating %s twice gives %s", v, r)
		}
	}
}

func Test_Value_13(t *testing.T) {
	// NaN carries no information
	assert.Equal(t, UNKNOWN, Known(math.NaN()).Kind())
	//
	v := Known(1)
	v.SetKnown(math.NaN())
	assert.Equal(t, UNKNOWN, v.Kind())
	//
	_, err := NewInterval(math.NaN(), 1)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}
