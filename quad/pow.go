// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import "math"

// Pow returns v raised to the integer or fractional power p (spec.md
// §4.2.7). Repeated squaring handles integer exponents up to 2**20 in
// magnitude (to within the ~63-bit precision floor). Fractional or larger
// exponents compute t = p * log2|v| in binary64: the integer part of t
// becomes the result's binary exponent and only the fractional part goes
// through math.Exp2, so the result keeps Quad's exponent range.
func Pow(v Value, p float64) Value {
	switch {
	case v.IsNaN():
		return NaN()
	case p == 0:
		return One
	case v.IsZero():
		if p < 0 {
			return Inf(1)
		}
		return Zero
	case v.IsPositiveInfinity():
		if p < 0 {
			return Zero
		}
		return Inf(1)
	case v.IsNegativeInfinity():
		if p < 0 {
			return Zero
		}
		if isOddInt(p) {
			return Inf(-1)
		}
		return Inf(1)
	}
	if v.Signbit() && !isIntegral(p) {
		return NaN()
	}

	if isIntegral(p) && math.Abs(p) <= 1<<20 {
		return powInt(v, int64(p))
	}

	var res Value
	switch t := p * Log2(Abs(v)).Float64(); {
	case t >= float64(ExpUpperBound):
		res = Inf(1)
	case t < float64(ExpLowerBound):
		res = Zero
	default:
		ip := math.Floor(t)
		res = Lshift(FromFloat64(math.Exp2(t-ip)), int64(ip))
	}
	if v.Signbit() && isOddInt(p) {
		return Negate(res)
	}
	return res
}

// powInt computes v**n for an integer exponent by repeated squaring,
// operating on |v| and fixing up the sign at the end.
func powInt(v Value, n int64) Value {
	negExp := n < 0
	if negExp {
		n = -n
	}
	negBase := v.Signbit() && n&1 == 1
	base := Abs(v)
	result := One
	for n > 0 {
		if n&1 == 1 {
			result = Mul(result, base)
		}
		base = Mul(base, base)
		n >>= 1
	}
	if negExp {
		result = Reciprocal(result)
	}
	if negBase {
		result = Negate(result)
	}
	return result
}

func isIntegral(p float64) bool { return p == math.Trunc(p) && !math.IsInf(p, 0) }

func isOddInt(p float64) bool {
	if !isIntegral(p) {
		return false
	}
	t := math.Trunc(p)
	return math.Mod(t, 2) != 0
}

// Log2 returns log base 2 of v.
func Log2(v Value) Value {
	switch {
	case v.IsNaN(), v.Signbit():
		return NaN()
	case v.IsZero():
		return Inf(-1)
	case v.IsPositiveInfinity():
		return Inf(1)
	}
	// log2(1.fraction * 2**exp) = exp + log2(1.fraction), and 1.fraction is
	// in [1, 2) so log2 of it is in [0, 1).
	frac := explicitSignificand(v.sig)
	mantissaValue := float64(frac) / (1 << 63)
	return FromFloat64(float64(v.exp) + math.Log2(mantissaValue))
}

// Ln returns the natural logarithm of v.
func Ln(v Value) Value { return Mul(Log2(v), FromFloat64(ln2)) }

// Log returns the logarithm of v in the given base.
func Log(v Value, base float64) Value {
	return Div(Log2(v), Log2(FromFloat64(base)))
}

const ln2 = 0.6931471805599453

// Exp2 returns 2**v, bridging through binary64 (spec.md's stated range for
// Quad's transcendental surface).
func Exp2(v Value) Value {
	if v.IsNaN() {
		return NaN()
	}
	return FromFloat64(math.Exp2(v.Float64()))
}

// Exp returns e**v.
func Exp(v Value) Value {
	if v.IsNaN() {
		return NaN()
	}
	return FromFloat64(math.Exp(v.Float64()))
}

// Sqrt returns the square root of v.
func Sqrt(v Value) Value {
	if v.Signbit() && !v.IsZero() {
		return NaN()
	}
	return Pow(v, 0.5)
}

// Cbrt returns the cube root of v, preserving sign for negative operands.
func Cbrt(v Value) Value {
	if v.IsNaN() {
		return NaN()
	}
	if v.Signbit() {
		return Negate(Pow(Negate(v), 1.0/3.0))
	}
	return Pow(v, 1.0/3.0)
}
