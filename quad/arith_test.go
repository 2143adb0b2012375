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

func TestAddSmallIntegers(t *testing.T) {
	sum := quad.Add(quad.FromInt64(299), quad.FromInt64(18))
	want := quad.FromInt64(317)
	assert.True(t, sum.Eq(want), "got %v want %v", sum, want)
}

func TestSubYieldsExactZero(t *testing.T) {
	x := quad.FromFloat64(12345.6789)
	assert.True(t, quad.Sub(x, x).IsZero())
}

func TestAddDifferingSignsDispatchesToSubtraction(t *testing.T) {
	a := quad.FromInt64(10)
	b := quad.FromInt64(-3)
	got := quad.Add(a, b)
	want := quad.FromInt64(7)
	assert.True(t, got.Eq(want), "got %v want %v", got, want)

	got = quad.Add(quad.FromInt64(3), quad.FromInt64(-10))
	want = quad.FromInt64(-7)
	assert.True(t, got.Eq(want), "got %v want %v", got, want)
}

func TestAddFarApartCollapses(t *testing.T) {
	big := quad.FromFloat64(1.0)
	tiny := quad.Lshift(quad.FromFloat64(1.0), -100)
	got := quad.Add(big, tiny)
	assert.True(t, got.Eq(big))
}

func TestIdentities(t *testing.T) {
	x := quad.FromFloat64(42.5)
	assert.True(t, quad.Add(x, quad.Zero).Eq(x))
	assert.True(t, quad.Mul(x, quad.One).Eq(x))
	assert.True(t, quad.Sub(x, x).IsZero())
	one := quad.Div(x, x)
	require.InDelta(t, 1.0, one.Float64(), 1e-12)
}

func TestCommutativity(t *testing.T) {
	a := quad.FromFloat64(3.14)
	b := quad.FromFloat64(-2.71)
	require.InDelta(t, quad.Add(a, b).Float64(), quad.Add(b, a).Float64(), 1e-12)
	require.InDelta(t, quad.Mul(a, b).Float64(), quad.Mul(b, a).Float64(), 1e-12)
}

func TestMulAndDivRoundTrip(t *testing.T) {
	a := quad.FromFloat64(123.456)
	b := quad.FromFloat64(0.00789)
	prod := quad.Mul(a, b)
	back := quad.Div(prod, b)
	require.InEpsilon(t, a.Float64(), back.Float64(), 1e-9)
}

func TestMulSurvivesFloat64Overflow(t *testing.T) {
	a := quad.FromFloat64(1e200)
	b := quad.FromFloat64(1e200)
	got := quad.Mul(a, b)
	require.False(t, got.IsInfinity())
	require.False(t, got.IsNaN())
	log2 := quad.Log2(got).Float64() // ~2*log2(1e200) == ~1328.77
	assert.InDelta(t, 1328.77, log2, 1)
}

func TestDivisionByZero(t *testing.T) {
	x := quad.FromInt64(5)
	assert.True(t, quad.Div(x, quad.Zero).IsPositiveInfinity())
	assert.True(t, quad.Div(quad.Negate(x), quad.Zero).IsNegativeInfinity())
	assert.True(t, quad.Div(quad.Zero, quad.Zero).IsNaN())
}

func TestSentinelArithmetic(t *testing.T) {
	inf := quad.Inf(1)
	negInf := quad.Inf(-1)
	assert.True(t, quad.Add(inf, negInf).IsNaN())
	assert.True(t, quad.Mul(quad.Zero, inf).IsNaN())
	assert.True(t, quad.Add(inf, quad.FromInt64(1)).IsPositiveInfinity())
	assert.True(t, quad.Div(inf, inf).IsNaN())
}

func TestAbsAndNegate(t *testing.T) {
	x := quad.FromInt64(-7)
	assert.True(t, quad.Abs(x).Eq(quad.FromInt64(7)))
	assert.Equal(t, -quad.Sign(x), quad.Sign(quad.Negate(x)))
	assert.True(t, quad.Negate(quad.Zero).IsZero())
}

func TestIncrementDecrement(t *testing.T) {
	x := quad.FromInt64(9)
	assert.True(t, quad.Increment(x).Eq(quad.FromInt64(10)))
	assert.True(t, quad.Decrement(x).Eq(quad.FromInt64(8)))
}

func TestReciprocal(t *testing.T) {
	x := quad.FromInt64(4)
	r := quad.Reciprocal(x)
	require.InDelta(t, 0.25, r.Float64(), 1e-12)
}
