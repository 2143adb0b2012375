// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdouble

// Cmp returns -1, 0 or +1 as a < b, a == b or a > b.
//
// Sentinels defer to host float comparison semantics on the mantissa: NaN
// compares unordered with everything, including itself, which Cmp
// resolves by returning +2 as a distinguished "unordered" code so callers
// that only need three-way comparison of finite/infinite values are not
// silently handed a wrong answer; Eq/Lt/etc. all check IsNaN first and
// never observe +2.
func Cmp(a, b Value) int {
	if a.IsNaN() || b.IsNaN() {
		return 2
	}
	if a.Eq(b) {
		return 0
	}
	sa, sb := mantSign(a.mantissa), mantSign(b.mantissa)
	if sa != sb {
		if sa < sb {
			return -1
		}
		return 1
	}
	// same sign (or one/both zero, handled by Eq above otherwise)
	if a.IsInfinity() || b.IsInfinity() {
		switch {
		case a.IsPositiveInfinity() && !b.IsPositiveInfinity():
			return 1
		case b.IsPositiveInfinity() && !a.IsPositiveInfinity():
			return -1
		case a.IsNegativeInfinity() && !b.IsNegativeInfinity():
			return -1
		case b.IsNegativeInfinity() && !a.IsNegativeInfinity():
			return 1
		default:
			return 0
		}
	}
	if a.exponent != b.exponent {
		if sa < 0 {
			// negative numbers: larger exponent is more negative
			if a.exponent > b.exponent {
				return -1
			}
			return 1
		}
		if a.exponent < b.exponent {
			return -1
		}
		return 1
	}
	if a.mantissa < b.mantissa {
		return -1
	}
	if a.mantissa > b.mantissa {
		return 1
	}
	return 0
}

func mantSign(m float64) int {
	switch {
	case m < 0:
		return -1
	case m > 0:
		return 1
	default:
		return 0
	}
}

// Eq reports whether a and b are bit-equal (both components equal). NaN
// never equals itself, per host float semantics on the mantissa field.
func (a Value) Eq(b Value) bool {
	return a.mantissa == b.mantissa && a.exponent == b.exponent
}

// Neq is the negation of Eq.
func (a Value) Neq(b Value) bool { return !a.Eq(b) }

// Lt reports whether a < b. Comparisons involving NaN are always false.
func (a Value) Lt(b Value) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	return Cmp(a, b) < 0
}

// Lte reports whether a <= b.
func (a Value) Lte(b Value) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	return Cmp(a, b) <= 0
}

// Gt reports whether a > b.
func (a Value) Gt(b Value) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	return Cmp(a, b) > 0
}

// Gte reports whether a >= b.
func (a Value) Gte(b Value) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	return Cmp(a, b) >= 0
}

// EqTol reports whether a and b are equal within a relative tolerance:
// |a - b| <= max(|a|, |b|) * tolerance (spec.md §4.1.5).
func (a Value) EqTol(b Value, tolerance float64) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	if a.Eq(b) {
		return true
	}
	if a.IsInfinity() || b.IsInfinity() {
		return a.Eq(b)
	}
	diff := Abs(Sub(a, b))
	threshold := Mul(Max(Abs(a), Abs(b)), FromFloat64(tolerance))
	return diff.Lte(threshold)
}

// EqDefaultTol is a convenience wrapper for EqTol using DefaultTolerance, matching
// the "eqTol" scenario spelled out in spec.md §8.
func (a Value) EqDefaultTol(b Value) bool { return a.EqTol(b, DefaultTolerance) }
