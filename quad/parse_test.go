// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/xfloat/quad"
)

func TestParseSentinels(t *testing.T) {
	nan, err := quad.Parse("NaN")
	require.NoError(t, err)
	assert.True(t, nan.IsNaN())

	inf, err := quad.Parse("Infinity")
	require.NoError(t, err)
	assert.True(t, inf.IsPositiveInfinity())

	negInf, err := quad.Parse("-Infinity")
	require.NoError(t, err)
	assert.True(t, negInf.IsNegativeInfinity())
}

func TestParseExponentSpellings(t *testing.T) {
	for _, s := range []string{"1e10", "1E10", "1e+10", "1 e10", "1.0e10"} {
		v, err := quad.Parse(s)
		require.NoError(t, err, "input %q", s)
		require.InEpsilon(t, 1e10, v.Float64(), 1e-9, "input %q", s)
	}
}

func TestParseSurvivesFloat64OverflowExponent(t *testing.T) {
	v, err := quad.Parse("1e400")
	require.NoError(t, err)
	assert.False(t, v.IsInfinity())
	assert.False(t, v.IsNaN())
	assert.True(t, v.Gt(quad.FromInt64(1)))
}

func TestParseNegative(t *testing.T) {
	v, err := quad.Parse("-123.456")
	require.NoError(t, err)
	require.InDelta(t, -123.456, v.Float64(), 1e-9)
}

func TestParseInvalid(t *testing.T) {
	_, err := quad.Parse("not-a-number")
	assert.Error(t, err)
}

func TestMustParsePanicsOnError(t *testing.T) {
	assert.Panics(t, func() { quad.MustParse("garbage") })
}
