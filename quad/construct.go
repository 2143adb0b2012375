// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"math"
	"math/bits"

	"github.com/db47h/xfloat/internal/ilog"
)

// FromInt64 builds a Value equal to n (spec.md §4.2.1).
func FromInt64(n int64) Value {
	if n == 0 {
		return Zero
	}
	neg := n < 0
	mag := uint64(n)
	if neg {
		mag = uint64(-n)
	}
	lz := ilog.NLZ64(mag)
	top := int(63 - lz) // bit index of the top set bit
	shift := uint(63 - top)
	explicitMag := mag << shift
	return fromNormalized(neg, explicitMag, int64(top))
}

// FromUint64 builds a Value equal to n.
func FromUint64(n uint64) Value {
	if n == 0 {
		return Zero
	}
	lz := ilog.NLZ64(n)
	top := int(63 - lz)
	shift := uint(63 - top)
	return fromNormalized(false, n<<shift, int64(top))
}

// FromFloat64 builds a Value from a binary64 by decomposing its IEEE-754
// bit pattern directly (spec.md §4.2.1), rather than routing through a
// decimal string.
func FromFloat64(x float64) Value {
	bitsX := math.Float64bits(x)
	sign := bitsX>>63 != 0
	biasedExp := int((bitsX >> 52) & 0x7FF)
	mantissa := bitsX & ((1 << 52) - 1)

	switch {
	case biasedExp == 0x7FF && mantissa == 0:
		return Inf(signOf(sign))
	case biasedExp == 0x7FF:
		return NaN()
	case biasedExp == 0 && mantissa == 0:
		return Zero
	case biasedExp == 0:
		// subnormal: mantissa's top set bit sits somewhere below bit 51.
		// Shifting left by its own leading-zero count moves that bit to
		// bit 63, the convention every other fromNormalized caller uses.
		// The binary64 value is mantissa * 2**-1074; solving
		// (mantissa<<lz)/2**63 * 2**exp == mantissa * 2**-1074 for exp
		// gives exp == -1011-lz.
		lz := ilog.NLZ64(mantissa)
		explicitMag := mantissa << lz
		exp := int64(-1011) - int64(lz)
		return fromNormalized(sign, explicitMag, exp)
	default:
		// shift the 52-bit mantissa left by 11 to place the implicit 1 at
		// bit 63, then convert the IEEE bias to this representation.
		explicitMag := (mantissa << 11) | signBit
		exp := int64(biasedExp) - 1023
		return fromNormalized(sign, explicitMag, exp)
	}
}

// nlz64 is a small local alias for bits.LeadingZeros64, used by
// subSharedSign to renormalize a difference.
func nlz64(x uint64) uint { return uint(bits.LeadingZeros64(x)) }
