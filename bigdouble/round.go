// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdouble

import "math"

// Abs returns |v|.
func Abs(v Value) Value {
	if v.IsNaN() {
		return v
	}
	return Value{mantissa: math.Abs(v.mantissa), exponent: v.exponent}
}

// Sign returns -1, 0 or +1 according to the sign of v's mantissa. NaN
// reports 0, matching math.Signbit's inapplicability to NaN.
func Sign(v Value) int {
	if v.IsNaN() {
		return 0
	}
	return mantSign(v.mantissa)
}

// Floor returns the largest integer value <= v (spec.md §4.1.4).
func Floor(v Value) Value {
	if !v.IsFinite() {
		return v
	}
	if v.exponent < -1 {
		if v.mantissa < 0 {
			return Value{mantissa: -1, exponent: 0}
		}
		return Zero
	}
	if v.exponent < MAX_SIGNIFICANT_DIGITS {
		return FromFloat64(math.Floor(v.Float64()))
	}
	return v
}

// Ceil returns the smallest integer value >= v.
func Ceil(v Value) Value {
	if !v.IsFinite() {
		return v
	}
	if v.exponent < -1 {
		if v.mantissa > 0 {
			return One
		}
		return Zero
	}
	if v.exponent < MAX_SIGNIFICANT_DIGITS {
		return FromFloat64(math.Ceil(v.Float64()))
	}
	return v
}

// Round returns v rounded to the nearest integer, ties away from zero.
func Round(v Value) Value {
	if !v.IsFinite() {
		return v
	}
	if v.exponent < -1 {
		return Zero
	}
	if v.exponent < MAX_SIGNIFICANT_DIGITS {
		return FromFloat64(math.Round(v.Float64()))
	}
	return v
}

// Truncate returns v with its fractional part removed.
func Truncate(v Value) Value {
	if !v.IsFinite() {
		return v
	}
	if v.exponent < -1 {
		return Zero
	}
	if v.exponent < MAX_SIGNIFICANT_DIGITS {
		return FromFloat64(math.Trunc(v.Float64()))
	}
	return v
}

// Min returns the smaller of a and b. NaN operands make the result NaN.
func Min(a, b Value) Value {
	if a.IsNaN() || b.IsNaN() {
		return NaN()
	}
	if Cmp(a, b) <= 0 {
		return a
	}
	return b
}

// Max returns the larger of a and b. NaN operands make the result NaN.
func Max(a, b Value) Value {
	if a.IsNaN() || b.IsNaN() {
		return NaN()
	}
	if Cmp(a, b) >= 0 {
		return a
	}
	return b
}
