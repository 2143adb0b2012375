// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"math/bits"

	"github.com/db47h/xfloat/xfmath"
)

// Add returns a + b (spec.md §4.2.3/§4.2.4).
//
// Sentinel operands resolve through addTable in O(1); a zero operand
// yields the other operand. For two
// finite nonzero operands of the same sign, addSameSign aligns and adds
// their significands directly. For operands of differing sign, Add
// dispatches to the shared-sign subtraction routine on (a, Negate(b)),
// which is exactly the "flip the second operand's sign and subtract"
// dispatch spec.md describes for both Add and Sub.
func Add(a, b Value) Value {
	if sr := addTable[categorize(a)][categorize(b)]; !sr.useFinitePath {
		return sr.value
	}
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	if a.Signbit() == b.Signbit() {
		return addSameSign(a, b)
	}
	return subSharedSign(a, Negate(b))
}

// Sub returns a - b.
func Sub(a, b Value) Value {
	return Add(a, Negate(b))
}

// addSameSign adds two finite nonzero operands known to share a sign bit.
func addSameSign(a, b Value) Value {
	sign := a.Signbit()
	big, small := a, b
	if small.exp > big.exp {
		big, small = small, big
	}
	shift := big.exp - small.exp
	if shift >= 64 {
		return big
	}
	bigMag := explicitSignificand(big.sig)
	smallMag := explicitSignificand(small.sig) >> uint(shift)

	sum, carry := bits.Add64(bigMag, smallMag, 0)
	resultExp := big.exp
	if carry != 0 {
		sum = (sum >> 1) | (carry << 63)
		resultExp++
		if resultExp < big.exp {
			traceSaturate("add", sum, resultExp)
			return Inf(signOf(sign))
		}
	}
	return fromNormalized(sign, sum, resultExp)
}

// subSharedSign subtracts two finite nonzero operands known to share a
// sign bit, resolving the result's sign from which magnitude is larger
// (spec.md §4.2.4).
func subSharedSign(x, y Value) Value {
	sharedSign := x.Signbit()
	big, small := x, y
	yIsBig := false
	if small.exp > big.exp {
		big, small = small, big
		yIsBig = true
	}
	shift := big.exp - small.exp
	bigMag := explicitSignificand(big.sig)
	var smallMag uint64
	if shift < 64 {
		smallMag = explicitSignificand(small.sig) >> uint(shift)
	}
	if bigMag == smallMag {
		return Zero
	}
	diff := xfmath.Max(bigMag, smallMag) - xfmath.Min(bigMag, smallMag)
	// x - y is negative iff |x| < |y|. When exponents differ, the swap
	// above already settles it (yIsBig); when they match, no swap
	// happens and smallMag/bigMag (still holding y/x directly) decide.
	xIsSmaller := yIsBig || smallMag > bigMag
	resultSign := sharedSign != xIsSmaller
	lz := nlz64(diff)
	renorm := diff << lz
	return fromNormalized(resultSign, renorm, big.exp-int64(lz))
}

// Mul returns a * b (spec.md §4.2.5).
//
// Both explicit significands are exact Q63 fixed-point values in [1, 2);
// their exact 128-bit product is obtained via math/bits.Mul64 (the same
// hardware-backed primitive the teacher library reaches for throughout
// dec_arith.go) rather than the source material's manual 32-bit split,
// which exists there only to approximate what Go's standard library
// already computes exactly — see DESIGN.md.
func Mul(a, b Value) Value {
	if sr := mulTable[categorize(a)][categorize(b)]; !sr.useFinitePath {
		return sr.value
	}
	sign := a.Signbit() != b.Signbit()
	magA := explicitSignificand(a.sig)
	magB := explicitSignificand(b.sig)

	hi, lo := bits.Mul64(magA, magB)
	topBit := hi >> 63
	magFull := (hi << 1) | (lo >> 63)

	var resultMag uint64
	var resultExp int64
	rawSum := a.exp + b.exp
	if topBit == 0 {
		resultMag = magFull
		resultExp = rawSum
	} else {
		resultMag = (magFull >> 1) | signBit
		resultExp = rawSum + 1
	}

	if overflowed := (b.exp > 0 && rawSum < a.exp) || (b.exp < 0 && rawSum > a.exp); overflowed {
		if b.exp > 0 {
			traceSaturate("mul", resultMag, resultExp)
			return Inf(signOf(sign))
		}
		traceSaturate("mul", resultMag, resultExp)
		return Zero
	}
	if resultExp > ExpUpperBound {
		traceSaturate("mul", resultMag, resultExp)
		return Inf(signOf(sign))
	}
	if resultExp < ExpLowerBound {
		traceSaturate("mul", resultMag, resultExp)
		return Zero
	}
	return fromNormalized(sign, resultMag, resultExp)
}

// Div returns a / b (spec.md §4.2.6), computed via math/bits.Div64 — the
// standard library's implementation of the same 64-by-64-bit division
// (Hacker's Delight's divlu, generalized to arbitrary word counts by
// db47h/decimal's own div10VWW) the source material reimplements by hand.
func Div(a, b Value) Value {
	if sr := divTable[categorize(a)][categorize(b)]; !sr.useFinitePath {
		return sr.value
	}
	sign := a.Signbit() != b.Signbit()
	magA := explicitSignificand(a.sig)
	magB := explicitSignificand(b.sig)

	q, _ := bits.Div64(magA>>1, (magA&1)<<63, magB)

	var resultMag uint64
	var resultExp int64
	rawDiff := a.exp - b.exp
	if q&signBit != 0 {
		resultMag = q
		resultExp = rawDiff
	} else {
		resultMag = q << 1
		resultExp = rawDiff - 1
	}

	if overflowed := (b.exp < 0 && rawDiff < a.exp) || (b.exp > 0 && rawDiff > a.exp); overflowed {
		if b.exp < 0 {
			traceSaturate("div", resultMag, resultExp)
			return Inf(signOf(sign))
		}
		traceSaturate("div", resultMag, resultExp)
		return Zero
	}
	if resultExp > ExpUpperBound {
		traceSaturate("div", resultMag, resultExp)
		return Inf(signOf(sign))
	}
	if resultExp < ExpLowerBound {
		traceSaturate("div", resultMag, resultExp)
		return Zero
	}
	return fromNormalized(sign, resultMag, resultExp)
}

// Negate returns -v. Sentinels other than the two infinities are returned
// unchanged (NaN has no sign, Zero has no sign).
func Negate(v Value) Value {
	switch {
	case v.IsPositiveInfinity():
		return Inf(-1)
	case v.IsNegativeInfinity():
		return Inf(1)
	case v.IsNaN(), v.IsZero():
		return v
	default:
		return Value{sig: v.sig ^ signBit, exp: v.exp}
	}
}

// Abs returns |v|.
func Abs(v Value) Value {
	if v.IsNegativeInfinity() {
		return Inf(1)
	}
	if v.IsNaN() || v.IsZero() || v.IsPositiveInfinity() {
		return v
	}
	return Value{sig: v.sig &^ signBit, exp: v.exp}
}

// Reciprocal returns 1 / v.
func Reciprocal(v Value) Value {
	return Div(One, v)
}

// Increment returns v + 1.
func Increment(v Value) Value { return Add(v, One) }

// Decrement returns v - 1.
func Decrement(v Value) Value { return Sub(v, One) }
