// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import "math"

// Floor returns the largest integer value <= v.
func Floor(v Value) Value {
	if done, r := roundShortCircuit(v); done {
		return r
	}
	if v.exp < 0 {
		if v.Signbit() {
			return Negate(One)
		}
		return Zero
	}
	return FromFloat64(math.Floor(v.Float64()))
}

// Ceil returns the smallest integer value >= v.
func Ceil(v Value) Value {
	if done, r := roundShortCircuit(v); done {
		return r
	}
	if v.exp < 0 {
		if v.Signbit() {
			return Zero
		}
		return One
	}
	return FromFloat64(math.Ceil(v.Float64()))
}

// Round returns v rounded to the nearest integer, ties away from zero.
func Round(v Value) Value {
	if done, r := roundShortCircuit(v); done {
		return r
	}
	if v.exp < -1 {
		return Zero
	}
	return FromFloat64(math.Round(v.Float64()))
}

// Truncate returns v with its fractional part removed.
func Truncate(v Value) Value {
	if done, r := roundShortCircuit(v); done {
		return r
	}
	if v.exp < 0 {
		return Zero
	}
	return FromFloat64(math.Trunc(v.Float64()))
}

// roundShortCircuit handles the two cases common to all four rounding
// modes: non-finite operands pass through unchanged, and once v.exp >= 63
// the entire significand lies left of the binary point, so v is already
// an integer.
func roundShortCircuit(v Value) (bool, Value) {
	if !v.IsFinite() {
		return true, v
	}
	if v.exp >= 63 {
		return true, v
	}
	return false, Value{}
}
