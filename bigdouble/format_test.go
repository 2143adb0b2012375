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

func TestFormatSentinels(t *testing.T) {
	assert.Equal(t, "NaN", bigdouble.NaN().String())
	assert.Equal(t, "Infinity", bigdouble.Inf(1).String())
	assert.Equal(t, "-Infinity", bigdouble.Inf(-1).String())
}

func TestFormatGWithinRange(t *testing.T) {
	v := bigdouble.FromFloat64(1234.5)
	s, err := v.Format("G")
	require.NoError(t, err)
	assert.Equal(t, "1234.5", s)
}

func TestFormatGOutOfRange(t *testing.T) {
	v := bigdouble.MustParse("1.5e1234")
	s, err := v.Format("G")
	require.NoError(t, err)
	assert.Contains(t, s, "E+1234")
}

func TestFormatE(t *testing.T) {
	v := bigdouble.MustParse("1.23456789e50")
	s, err := v.Format("E3")
	require.NoError(t, err)
	assert.Equal(t, "1.235E+50", s)
}

func TestFormatRRoundTrip(t *testing.T) {
	v := bigdouble.MustParse("1.23456789e1234")
	s, err := v.Format("R")
	require.NoError(t, err)
	back, err := bigdouble.Parse(s)
	require.NoError(t, err)
	assert.True(t, v.EqTol(back, 1e-9))
}

func TestFormatInvalidSpec(t *testing.T) {
	_, err := bigdouble.Zero.Format("Q")
	assert.Error(t, err)
}

func TestMarshalUnmarshalText(t *testing.T) {
	v := bigdouble.MustParse("6.02214076e23")
	b, err := v.MarshalText()
	require.NoError(t, err)
	var got bigdouble.Value
	require.NoError(t, got.UnmarshalText(b))
	assert.True(t, v.EqTol(got, 1e-9))
}
