// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdouble_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/xfloat/bigdouble"
)

func TestAddSmallIntegersStayExact(t *testing.T) {
	sum := bigdouble.Add(bigdouble.FromInt64(299), bigdouble.FromInt64(18))
	want := bigdouble.FromInt64(317)
	assert.True(t, sum.Eq(want), "got %v want %v", sum, want)
	assert.InDelta(t, 317, sum.Float64(), 1e-9)
}

func TestAddFarApartCollapses(t *testing.T) {
	big := bigdouble.MustParse("1.23456789e1234")
	small := bigdouble.MustParse("1.23456789e123")
	got := bigdouble.Add(big, small)
	assert.True(t, got.Eq(big))
}

func TestCancellationYieldsExactZero(t *testing.T) {
	a := bigdouble.MustParse("1.23456789e1234")
	b := bigdouble.MustParse("-1.23456789e1234")
	got := bigdouble.Add(a, b)
	assert.True(t, got.IsZero())
}

func TestToleranceEquality(t *testing.T) {
	a := bigdouble.FromInt64(300)
	require.True(t, a.EqTol(bigdouble.FromFloat64(300.00000002), 1e-9))
	require.False(t, a.EqTol(bigdouble.FromFloat64(300.0000005), 1e-9))
	require.True(t, a.EqTol(bigdouble.FromFloat64(300.0000005), 1e-8))
}

func TestIdentities(t *testing.T) {
	x := bigdouble.MustParse("4.2e57")
	assert.True(t, bigdouble.Add(x, bigdouble.Zero).Eq(x))
	assert.True(t, bigdouble.Mul(x, bigdouble.One).Eq(x))
	assert.True(t, bigdouble.Sub(x, x).IsZero())
	one := bigdouble.Div(x, x)
	assert.True(t, one.EqTol(bigdouble.One, 1e-9))
}

func TestCommutativity(t *testing.T) {
	a := bigdouble.MustParse("3.14e10")
	b := bigdouble.MustParse("-2.71e15")
	assert.True(t, bigdouble.Add(a, b).EqTol(bigdouble.Add(b, a), 1e-9))
	assert.True(t, bigdouble.Mul(a, b).EqTol(bigdouble.Mul(b, a), 1e-9))
}

func TestSignAndAbs(t *testing.T) {
	x := bigdouble.MustParse("-7.5e3")
	assert.True(t, bigdouble.Abs(x).Gte(bigdouble.Zero))
	assert.Equal(t, -bigdouble.Sign(x), bigdouble.Sign(bigdouble.Negate(x)))
}

func TestDivisionByZero(t *testing.T) {
	x := bigdouble.FromInt64(5)
	assert.True(t, bigdouble.Div(x, bigdouble.Zero).IsPositiveInfinity())
	assert.True(t, bigdouble.Div(bigdouble.Negate(x), bigdouble.Zero).IsNegativeInfinity())
	assert.True(t, bigdouble.Div(bigdouble.Zero, bigdouble.Zero).IsNaN())
}

func TestSentinelArithmetic(t *testing.T) {
	inf := bigdouble.Inf(1)
	negInf := bigdouble.Inf(-1)
	assert.True(t, bigdouble.Add(inf, negInf).IsNaN())
	assert.True(t, bigdouble.Mul(bigdouble.Zero, inf).IsNaN())
	assert.True(t, bigdouble.Add(inf, bigdouble.FromInt64(1)).IsPositiveInfinity())
}
