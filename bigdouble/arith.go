// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdouble

import "math"

// Add returns a + b (spec.md §4.1.3).
//
// If either operand is the canonical zero, the other operand is returned
// unchanged (this also covers the source library's documented Add typo:
// both a.mantissa == 0 and b.mantissa == 0 are handled explicitly, see
// DESIGN.md). If either operand is non-finite, host float semantics on the
// mantissas decide the sentinel result. Otherwise the smaller-exponent
// operand is scaled into the larger's frame, added at 1e14 fixed-point
// precision, and the sum is renormalized.
func Add(a, b Value) Value {
	if a.mantissa == 0 {
		return b
	}
	if b.mantissa == 0 {
		return a
	}
	if !a.IsFinite() || !b.IsFinite() {
		return normalizeSentinel(a.mantissa + b.mantissa)
	}
	big, small := a, b
	if small.exponent > big.exponent {
		big, small = small, big
	}
	if big.exponent-small.exponent > MAX_SIGNIFICANT_DIGITS {
		return big
	}
	scale := tenPow(small.exponent - big.exponent)
	scaledMantissa := math.Round(1e14*big.mantissa + 1e14*small.mantissa*scale)
	return normalize(scaledMantissa, big.exponent-14)
}

// normalizeSentinel wraps a raw binary64 combination result (which may be
// NaN or ±Inf, or occasionally 0 for e.g. +Inf + -Inf's finite remainder,
// which cannot happen, but 0 - 0) back into a Value without running it
// through log10-based normalization.
func normalizeSentinel(m float64) Value {
	switch {
	case math.IsNaN(m):
		return NaN()
	case math.IsInf(m, 1):
		return Inf(1)
	case math.IsInf(m, -1):
		return Inf(-1)
	case m == 0:
		return Zero
	default:
		return normalize(m, 0)
	}
}

// Sub returns a - b.
func Sub(a, b Value) Value {
	return Add(a, Negate(b))
}

// Mul returns a * b.
func Mul(a, b Value) Value {
	if a.IsNaN() || b.IsNaN() {
		return NaN()
	}
	if (a.mantissa == 0 && b.IsInfinity()) || (b.mantissa == 0 && a.IsInfinity()) {
		return NaN()
	}
	if !a.IsFinite() || !b.IsFinite() {
		return normalizeSentinel(a.mantissa * b.mantissa)
	}
	return normalize(a.mantissa*b.mantissa, a.exponent+b.exponent)
}

// Div returns a / b.
func Div(a, b Value) Value {
	if a.IsNaN() || b.IsNaN() {
		return NaN()
	}
	if a.IsInfinity() && b.IsInfinity() {
		return NaN()
	}
	if b.mantissa == 0 {
		if a.mantissa == 0 {
			return NaN()
		}
		return Inf(sign(a.mantissa))
	}
	if a.IsInfinity() {
		return Inf(sign(a.mantissa) * sign(b.mantissa))
	}
	if b.IsInfinity() {
		return Zero
	}
	return normalize(a.mantissa/b.mantissa, a.exponent-b.exponent)
}

// Negate returns -v.
func Negate(v Value) Value {
	if v.mantissa == 0 {
		return Zero
	}
	return Value{mantissa: -v.mantissa, exponent: v.exponent}
}

// Reciprocal returns 1 / v.
func Reciprocal(v Value) Value {
	return Div(One, v)
}

// Increment returns v + 1.
func Increment(v Value) Value { return Add(v, One) }

// Decrement returns v - 1.
func Decrement(v Value) Value { return Sub(v, One) }
