// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"math"

	"github.com/db47h/xfloat/xferr"
)

// ToUint64 converts v to an unsigned 64-bit integer (spec.md §4.2.10),
// truncating any fractional part. It fails for NaN, ±Infinity, negative
// values, and magnitudes that do not fit in 64 bits.
//
// value = mantissaValue * 2**exp with mantissaValue in [1, 2), so the
// largest representable exponent is 63 (mantissaValue * 2**63 approaches
// but never reaches 2**64).
func (v Value) ToUint64() (uint64, error) {
	if v.IsNaN() {
		return 0, xferr.NewCastError(xferr.CastNaN, "uint64")
	}
	if v.IsInfinity() {
		return 0, xferr.NewCastError(xferr.CastInf, "uint64")
	}
	if v.IsZero() {
		return 0, nil
	}
	if v.Signbit() {
		return 0, xferr.NewCastError(xferr.CastNegative, "uint64")
	}
	if v.exp > 63 {
		return 0, xferr.NewCastError(xferr.CastOverflow, "uint64")
	}
	if v.exp <= -64 {
		return 0, nil
	}
	return explicitSignificand(v.sig) >> uint(63-v.exp), nil
}

// ToInt64 converts v to a signed 64-bit integer, truncating any fractional
// part. It fails for NaN, ±Infinity, and magnitudes that do not fit in the
// signed 64-bit range.
//
// math.MinInt64's magnitude, 2**63, is one past ToUint64's own signed
// range but is a legal negative int64, so it is special-cased here rather
// than folded into the mag > math.MaxInt64 check below.
func (v Value) ToInt64() (int64, error) {
	if v.IsNaN() {
		return 0, xferr.NewCastError(xferr.CastNaN, "int64")
	}
	if v.IsInfinity() {
		return 0, xferr.NewCastError(xferr.CastInf, "int64")
	}
	if v.IsZero() {
		return 0, nil
	}
	mag, err := Abs(v).ToUint64()
	if err != nil {
		return 0, xferr.NewCastError(xferr.CastOverflow, "int64")
	}
	if v.Signbit() {
		if mag > 1<<63 {
			return 0, xferr.NewCastError(xferr.CastOverflow, "int64")
		}
		if mag == 1<<63 {
			return math.MinInt64, nil
		}
		return -int64(mag), nil
	}
	if mag > math.MaxInt64 {
		return 0, xferr.NewCastError(xferr.CastOverflow, "int64")
	}
	return int64(mag), nil
}

// Float64 converts v to the nearest binary64, saturating to ±Inf if v's
// magnitude exceeds binary64's range and truncating toward zero (flushing
// to signed 0 only once the magnitude drops below binary64's smallest
// subnormal, 2**-1074) if it underflows binary64's normal range.
func (v Value) Float64() float64 {
	switch {
	case v.IsNaN():
		return math.NaN()
	case v.IsPositiveInfinity():
		return math.Inf(1)
	case v.IsNegativeInfinity():
		return math.Inf(-1)
	case v.IsZero():
		return 0
	}
	var signBitOut uint64
	if v.Signbit() {
		signBitOut = 1 << 63
	}
	// value = 1.fraction * 2**exp; binary64 stores a biased 11-bit
	// exponent with the same 1.fraction convention, so this is the
	// inverse of FromFloat64's normal-number path.
	if v.exp >= 0x7FF-1023 {
		return math.Inf(signOf(v.Signbit()))
	}
	biased := v.exp + 1023
	if biased <= 0 {
		// Below binary64's normal range: mirror FromFloat64's subnormal
		// path in reverse. explicit (bit 63 set, [2**63,2**64)) satisfies
		// value == explicit * 2**(v.exp-63), and a subnormal binary64's
		// value is subMantissa * 2**-1074, so subMantissa ==
		// explicit >> (12-biased).
		shift := uint(12 - biased)
		if shift >= 64 {
			return math.Float64frombits(signBitOut) // underflows even the smallest subnormal
		}
		subMantissa := explicitSignificand(v.sig) >> shift
		return math.Float64frombits(signBitOut | subMantissa)
	}
	frac := (v.sig &^ signBit) >> 11
	bitsOut := signBitOut | uint64(biased)<<52 | frac
	return math.Float64frombits(bitsOut)
}
