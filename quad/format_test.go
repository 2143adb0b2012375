// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/xfloat/quad"
)

func TestHexExponentialRoundTrip(t *testing.T) {
	for _, f := range []float64{1, -1, 0.5, 3, 100.25, 1e100, -1e-100} {
		v := quad.FromFloat64(f)
		s := quad.HexExponential(v)
		var got quad.Value
		require.NoError(t, got.UnmarshalText([]byte(s)))
		assert.True(t, v.Eq(got), "round-trip %q: got %v want %v", s, got, v)
	}
}

func TestHexExponentialRoundTripBeyondFloat64Range(t *testing.T) {
	v := quad.Pow(quad.FromInt64(2), 5000)
	s := quad.HexExponential(v)
	var got quad.Value
	require.NoError(t, got.UnmarshalText([]byte(s)))
	assert.True(t, v.Eq(got), "round-trip %q", s)
}

func TestHexExponentialSentinels(t *testing.T) {
	assert.Equal(t, "NaN", quad.HexExponential(quad.NaN()))
	assert.Equal(t, "Infinity", quad.HexExponential(quad.Inf(1)))
	assert.Equal(t, "-Infinity", quad.HexExponential(quad.Inf(-1)))
	assert.Equal(t, "0x0p+0", quad.HexExponential(quad.Zero))
}

func TestMarshalUnmarshalTextRoundTrip(t *testing.T) {
	v := quad.FromFloat64(1234.5678)
	b, err := v.MarshalText()
	require.NoError(t, err)
	var got quad.Value
	require.NoError(t, got.UnmarshalText(b))
	assert.True(t, v.Eq(got))
}

func TestScientificExactHarvestsDigits(t *testing.T) {
	v := quad.FromFloat64(1234.5678)
	s := quad.ScientificExact(v)
	assert.True(t, strings.HasPrefix(s, "1.2345678"), "got %q", s)
	assert.Contains(t, s, "E+3")
}

func TestScientificExactRoundNumber(t *testing.T) {
	assert.Equal(t, "3.0E+0", quad.ScientificExact(quad.FromInt64(3)))
	assert.Equal(t, "-5.0E+1", quad.ScientificExact(quad.FromInt64(-50)))
}

func TestScientificExactSurvivesFloat64Overflow(t *testing.T) {
	v := quad.Pow(quad.FromInt64(2), 5000)
	s := quad.ScientificExact(v)
	assert.Contains(t, s, "E+1505")
	assert.True(t, strings.HasPrefix(s, "1."), "got %q", s)
}

func TestScientificExactSentinels(t *testing.T) {
	assert.Equal(t, "NaN", quad.ScientificExact(quad.NaN()))
	assert.Equal(t, "Infinity", quad.ScientificExact(quad.Inf(1)))
	assert.Equal(t, "0.0", quad.ScientificExact(quad.Zero))
}

func TestDecimalExponentialApproximatesLargeMagnitudes(t *testing.T) {
	v := quad.Pow(quad.FromInt64(2), 5000)
	s := quad.DecimalExponential(v)
	assert.Contains(t, s, "E")
}

func TestScientificApproximateSentinels(t *testing.T) {
	assert.Equal(t, "NaN", quad.ScientificApproximate(quad.NaN()))
	assert.Equal(t, "Infinity", quad.ScientificApproximate(quad.Inf(1)))
}

func TestUnmarshalTextSentinels(t *testing.T) {
	var v quad.Value
	require.NoError(t, v.UnmarshalText([]byte("NaN")))
	assert.True(t, v.IsNaN())
	require.NoError(t, v.UnmarshalText([]byte("-Infinity")))
	assert.True(t, v.IsNegativeInfinity())
}
