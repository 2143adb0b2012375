// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/db47h/xfloat/quad"
)

func TestFloorCeilRoundTruncate(t *testing.T) {
	x := quad.FromFloat64(3.7)
	assert.InDelta(t, 3.0, quad.Floor(x).Float64(), 1e-12)
	assert.InDelta(t, 4.0, quad.Ceil(x).Float64(), 1e-12)
	assert.InDelta(t, 4.0, quad.Round(x).Float64(), 1e-12)
	assert.InDelta(t, 3.0, quad.Truncate(x).Float64(), 1e-12)
}

func TestFloorCeilNegative(t *testing.T) {
	x := quad.FromFloat64(-3.7)
	assert.InDelta(t, -4.0, quad.Floor(x).Float64(), 1e-12)
	assert.InDelta(t, -3.0, quad.Ceil(x).Float64(), 1e-12)
	assert.InDelta(t, -3.0, quad.Truncate(x).Float64(), 1e-12)
}

func TestFloorCeilBelowOne(t *testing.T) {
	pos := quad.FromFloat64(0.3)
	assert.True(t, quad.Floor(pos).IsZero())
	assert.True(t, quad.Ceil(pos).Eq(quad.One))

	neg := quad.FromFloat64(-0.3)
	assert.True(t, quad.Floor(neg).Eq(quad.Negate(quad.One)))
	assert.True(t, quad.Ceil(neg).IsZero())
}

func TestRoundingLargeValuesIsNoOp(t *testing.T) {
	x := quad.Pow(quad.FromInt64(2), 5000)
	assert.True(t, quad.Floor(x).Eq(x))
	assert.True(t, quad.Ceil(x).Eq(x))
	assert.True(t, quad.Round(x).Eq(x))
	assert.True(t, quad.Truncate(x).Eq(x))
}

func TestRoundingSentinelsPassThrough(t *testing.T) {
	assert.True(t, quad.Floor(quad.NaN()).IsNaN())
	assert.True(t, quad.Ceil(quad.Inf(1)).IsPositiveInfinity())
}
