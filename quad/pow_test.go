// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/xfloat/quad"
)

func TestPowIntegerExponent(t *testing.T) {
	got := quad.Pow(quad.FromInt64(2), 10)
	want := quad.FromInt64(1024)
	assert.True(t, got.Eq(want), "got %v want %v", got, want)
}

func TestPowNegativeExponent(t *testing.T) {
	got := quad.Pow(quad.FromInt64(2), -3)
	require.InDelta(t, 0.125, got.Float64(), 1e-12)
}

func TestPowSurvivesFloat64Overflow(t *testing.T) {
	got := quad.Pow(quad.FromFloat64(1.15), 6000)
	assert.False(t, got.IsInfinity())
	assert.False(t, got.IsNaN())
	assert.True(t, got.Gt(quad.FromInt64(1)))
}

func TestPowNegativeBaseOddIntegerExponent(t *testing.T) {
	got := quad.Pow(quad.FromInt64(-2), 3)
	want := quad.FromInt64(-8)
	assert.True(t, got.Eq(want), "got %v want %v", got, want)
}

func TestPowNegativeBaseFractionalExponentIsNaN(t *testing.T) {
	assert.True(t, quad.Pow(quad.FromInt64(-4), 0.5).IsNaN())
}

func TestSqrtAndCbrt(t *testing.T) {
	require.InDelta(t, 3.0, quad.Sqrt(quad.FromInt64(9)).Float64(), 1e-9)
	require.InDelta(t, -2.0, quad.Cbrt(quad.FromInt64(-8)).Float64(), 1e-6)
}

func TestLogFamily(t *testing.T) {
	require.InDelta(t, 3.0, quad.Log2(quad.FromInt64(8)).Float64(), 1e-9)
	require.InDelta(t, 0.0, quad.Ln(quad.One).Float64(), 1e-12)
	require.InDelta(t, 2.0, quad.Log(quad.FromInt64(100), 10).Float64(), 1e-6)
}

func TestLogOfNonPositive(t *testing.T) {
	assert.True(t, quad.Log2(quad.Zero).IsNegativeInfinity())
	assert.True(t, quad.Log2(quad.FromInt64(-1)).IsNaN())
}

func TestExpAndExp2(t *testing.T) {
	require.InDelta(t, math.E, quad.Exp(quad.One).Float64(), 1e-9)
	require.InDelta(t, 8.0, quad.Exp2(quad.FromInt64(3)).Float64(), 1e-9)
}
