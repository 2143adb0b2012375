// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import "github.com/db47h/xfloat/bigdouble"

// ToBigDouble converts v to the equivalent bigdouble.Value, exactly for
// sentinels and to within bigdouble's own ~15-significant-digit precision
// for finite values. This is the base for the decimal formatting modes in
// format.go: bigdouble's unbounded base-10 exponent can represent any
// Quad magnitude without the overflow a plain binary64-mediated decimal
// conversion would hit.
func (v Value) ToBigDouble() bigdouble.Value {
	switch {
	case v.IsNaN():
		return bigdouble.NaN()
	case v.IsPositiveInfinity():
		return bigdouble.Inf(1)
	case v.IsNegativeInfinity():
		return bigdouble.Inf(-1)
	case v.IsZero():
		return bigdouble.Zero
	}
	frac := explicitSignificand(v.sig)
	mantissaValue := float64(frac) / (1 << 63)
	if v.Signbit() {
		mantissaValue = -mantissaValue
	}
	bd := bigdouble.FromFloat64(mantissaValue)
	return bigdouble.Mul(bd, bigdouble.Pow(bigdouble.FromInt64(2), float64(v.exp)))
}
