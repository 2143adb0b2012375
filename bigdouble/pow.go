// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdouble

import "math"

const (
	ln10    = 2.302585092994046
	invLn10 = 1 / ln10
	ln2     = 0.6931471805599453
	log2_10 = 3.321928094887362
	log10_2 = 0.3010299956639812
)

// Pow returns v raised to the power p (spec.md §4.1.3).
//
// If p is an integer and v's mantissa is exactly 1 (v is an exact power of
// ten), the fast path multiplies the exponent directly. Otherwise the
// exponent scaling t = v.exponent * p is computed; if t is itself an
// integer within EXP_LIMIT the mantissa is raised to p directly via
// math.Pow. The general path splits t into an integer exponent and a
// fractional remainder folded back into the mantissa via 10**r.
func Pow(v Value, p float64) Value {
	if v.IsNaN() {
		return NaN()
	}
	if p == 0 {
		return One
	}
	if v.mantissa == 0 {
		if p < 0 {
			return Inf(1)
		}
		return Zero
	}
	if v.IsInfinity() {
		if p < 0 {
			return Zero
		}
		if math.Signbit(v.mantissa) && isOddInt(p) {
			return Inf(-1)
		}
		return Inf(1)
	}
	if v.mantissa < 0 && !isIntegral(p) {
		return NaN()
	}

	if isIntegral(p) && v.mantissa == 1 {
		newExp := scaleExp(v.exponent, p)
		if newExp > EXP_LIMIT {
			traceSaturate("pow", 1, newExp)
			return Inf(1)
		}
		if newExp < -EXP_LIMIT {
			traceSaturate("pow", 1, newExp)
			return Zero
		}
		return Value{mantissa: 1, exponent: newExp}
	}

	t := float64(v.exponent) * p
	if isIntegral(t) && math.Abs(t) < float64(EXP_LIMIT) {
		newM := math.Pow(v.mantissa, p)
		if !math.IsNaN(newM) && !math.IsInf(newM, 0) {
			return normalize(newM, int64(t))
		}
	}

	newE := math.Trunc(t)
	r := t - newE
	newM := math.Pow(10, p*math.Log10(math.Abs(v.mantissa))+r)
	if !math.IsNaN(newM) && !math.IsInf(newM, 0) {
		if v.mantissa < 0 {
			newM = -newM
		}
		return normalize(newM, int64(newE))
	}
	// fallback: work entirely in log space
	absLog := AbsLog10(v)
	result := Pow(FromInt64(10), p*absLog)
	if v.mantissa < 0 && isOddInt(p) {
		return Negate(result)
	}
	return result
}

func isIntegral(f float64) bool { return f == math.Trunc(f) }

func isOddInt(f float64) bool {
	return isIntegral(f) && math.Mod(f, 2) != 0
}

// scaleExp multiplies e by the integer value of p in binary64 (exact while
// |e*p| <= 2**53) and clamps a product beyond ±EXP_LIMIT to ±(EXP_LIMIT+1),
// so the caller's range checks see it without int64 overflow.
func scaleExp(e int64, p float64) int64 {
	scaled := float64(e) * p
	if scaled > float64(EXP_LIMIT) {
		return EXP_LIMIT + 1
	}
	if scaled < float64(-EXP_LIMIT) {
		return -EXP_LIMIT - 1
	}
	return int64(scaled)
}

// AbsLog10 returns log10(|v|) as a binary64 (spec.md §4.1.3's Log family).
func AbsLog10(v Value) float64 {
	if v.mantissa == 0 {
		return math.Inf(-1)
	}
	return float64(v.exponent) + math.Log10(math.Abs(v.mantissa))
}

// Log10 returns log10(v). Domain errors (v <= 0) return NaN per spec.md §7.
func Log10(v Value) float64 {
	if v.IsNaN() || v.mantissa < 0 {
		return math.NaN()
	}
	if v.mantissa == 0 {
		return math.Inf(-1)
	}
	if v.IsPositiveInfinity() {
		return math.Inf(1)
	}
	return AbsLog10(v)
}

// Ln returns the natural logarithm of v.
func Ln(v Value) float64 { return Log10(v) * ln10 }

// Log2 returns the base-2 logarithm of v.
func Log2(v Value) float64 { return Log10(v) * log2_10 }

// Log returns the logarithm of v in the given base.
func Log(v Value, base float64) float64 { return Log10(v) / math.Log10(base) }

// Exp returns e**v. Because the result is fed back through math.Exp, this
// is only accurate for v within binary64's overflow range; for v larger
// than that, Exp saturates to +Infinity, matching the "approximate beyond
// binary64 range" contract of transcendentals layered on Pow.
func Exp(v Value) Value {
	return FromFloat64(math.Exp(v.Float64()))
}

// Sqrt returns the square root of v.
func Sqrt(v Value) Value { return Pow(v, 0.5) }

// Cbrt returns the cube root of v, preserving sign for negative v.
func Cbrt(v Value) Value {
	if v.mantissa < 0 {
		return Negate(Pow(Negate(v), 1.0/3.0))
	}
	return Pow(v, 1.0/3.0)
}

// Sinh returns the hyperbolic sine of v (binary64 bridged, see Exp).
func Sinh(v Value) Value { return FromFloat64(math.Sinh(v.Float64())) }

// Cosh returns the hyperbolic cosine of v.
func Cosh(v Value) Value { return FromFloat64(math.Cosh(v.Float64())) }

// Tanh returns the hyperbolic tangent of v.
func Tanh(v Value) Value { return FromFloat64(math.Tanh(v.Float64())) }

// Asinh returns the inverse hyperbolic sine of v.
func Asinh(v Value) Value { return FromFloat64(math.Asinh(v.Float64())) }

// Acosh returns the inverse hyperbolic cosine of v.
func Acosh(v Value) Value { return FromFloat64(math.Acosh(v.Float64())) }

// Atanh returns the inverse hyperbolic tangent of v.
func Atanh(v Value) Value { return FromFloat64(math.Atanh(v.Float64())) }

// stirlingCoeffs are the first terms of the Stirling series correction
// 1/(12n) - 1/(360n^3) + 1/(1260n^5) - 1/(1680n^7), used by Factorial for
// arguments outside the range where math.Gamma is trustworthy.
var stirlingCoeffs = [...]float64{1.0 / 12, -1.0 / 360, 1.0 / 1260, -1.0 / 1680}

// Factorial approximates v! via the Stirling series (spec.md §6). For |v|
// small enough that v+1 stays within binary64's Gamma domain, math.Gamma
// is used directly; otherwise the Stirling asymptotic expansion is
// evaluated in log space so the result can exceed binary64's range.
func Factorial(v Value) Value {
	if v.IsNaN() {
		return NaN()
	}
	n := v.Float64()
	if !math.IsInf(n, 0) && math.Abs(n) < 170 {
		return FromFloat64(math.Gamma(n + 1))
	}
	if n < 0 {
		return NaN()
	}
	// ln(n!) ~ n*ln(n) - n + 0.5*ln(2*pi*n) + sum stirlingCoeffs[k]/n^(2k+1)
	lnN := math.Log(n)
	lnFact := n*lnN - n + 0.5*math.Log(2*math.Pi*n)
	inv := 1 / n
	invPow := inv
	for _, c := range stirlingCoeffs {
		lnFact += c * invPow
		invPow *= inv * inv
	}
	return Pow(FromFloat64(math.E), lnFact)
}
