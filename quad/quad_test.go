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

func TestFromFloat64Sentinels(t *testing.T) {
	assert.True(t, quad.FromFloat64(math.NaN()).IsNaN())
	assert.True(t, quad.FromFloat64(math.Inf(1)).IsPositiveInfinity())
	assert.True(t, quad.FromFloat64(math.Inf(-1)).IsNegativeInfinity())
	assert.True(t, quad.FromFloat64(0).IsZero())
}

func TestRoundTripFloat64(t *testing.T) {
	for _, f := range []float64{1, -1, 0.5, 123.456, 0.001, 1e100, -1e-100, 3.0, 1024.0} {
		v := quad.FromFloat64(f)
		got := v.Float64()
		require.InEpsilon(t, f, got, 1e-12, "value %v", f)
	}
}

func TestRoundTripFloat64Subnormal(t *testing.T) {
	for _, f := range []float64{
		math.SmallestNonzeroFloat64,
		-math.SmallestNonzeroFloat64,
		5e-320,
		-5e-320,
		math.SmallestNonzeroFloat64 * 1000,
	} {
		v := quad.FromFloat64(f)
		got := v.Float64()
		assert.Equal(t, f, got, "value %v", f)
	}
}

func TestFromInt64RoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 5, -5, 1 << 40, -(1 << 40), math.MaxInt64, math.MinInt64} {
		v := quad.FromInt64(n)
		got, err := v.ToInt64()
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}

func TestFromUint64RoundTrip(t *testing.T) {
	for _, n := range []uint64{0, 1, 5, 1 << 40, math.MaxUint64} {
		v := quad.FromUint64(n)
		got, err := v.ToUint64()
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}

func TestZeroGoValueIsNotNumericZero(t *testing.T) {
	var v quad.Value
	assert.True(t, v.Eq(quad.One))
	assert.False(t, v.IsZero())
}

func TestSignbit(t *testing.T) {
	assert.False(t, quad.FromInt64(5).Signbit())
	assert.True(t, quad.FromInt64(-5).Signbit())
}
