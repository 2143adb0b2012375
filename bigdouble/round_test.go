// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdouble_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/db47h/xfloat/bigdouble"
)

func TestFloorCeilRoundTruncate(t *testing.T) {
	v := bigdouble.FromFloat64(3.7)
	assert.True(t, bigdouble.Floor(v).Eq(bigdouble.FromInt64(3)))
	assert.True(t, bigdouble.Ceil(v).Eq(bigdouble.FromInt64(4)))
	assert.True(t, bigdouble.Round(v).Eq(bigdouble.FromInt64(4)))
	assert.True(t, bigdouble.Truncate(v).Eq(bigdouble.FromInt64(3)))

	neg := bigdouble.FromFloat64(-0.3)
	assert.True(t, bigdouble.Floor(neg).Eq(bigdouble.FromInt64(-1)))
	assert.True(t, bigdouble.Ceil(neg).Eq(bigdouble.Zero))
}

func TestRoundingLargeValuesAreNoOp(t *testing.T) {
	v := bigdouble.MustParse("1.5e30")
	assert.True(t, bigdouble.Floor(v).Eq(v))
	assert.True(t, bigdouble.Ceil(v).Eq(v))
}

func TestMinMax(t *testing.T) {
	a := bigdouble.FromInt64(3)
	b := bigdouble.FromInt64(9)
	assert.True(t, bigdouble.Min(a, b).Eq(a))
	assert.True(t, bigdouble.Max(a, b).Eq(b))
	assert.True(t, bigdouble.Min(a, bigdouble.NaN()).IsNaN())
}
