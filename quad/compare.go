// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

// Cmp returns -1, 0, or 1 if a is less than, equal to, or greater than b.
// It returns 2 if either operand is NaN, mirroring bigdouble.Cmp's
// "unordered" sentinel rather than an arbitrary in-range value.
func Cmp(a, b Value) int {
	if a.IsNaN() || b.IsNaN() {
		return 2
	}
	ca, cb := categorize(a), categorize(b)
	sameFiniteSign := (ca == CatPosFinite && cb == CatPosFinite) || (ca == CatNegFinite && cb == CatNegFinite)
	if !sameFiniteSign {
		switch d := orderedValue(ca, cb); {
		case d < 0:
			return -1
		case d > 0:
			return 1
		default:
			return 0
		}
	}
	// Both operands are finite and share a sign; compare exponent then
	// significand, flipping the result for negative operands since a
	// larger magnitude means a smaller (more negative) value there.
	sign := a.Signbit()
	switch {
	case a.exp < b.exp:
		return signedResult(sign, -1)
	case a.exp > b.exp:
		return signedResult(sign, 1)
	}
	am, bm := explicitSignificand(a.sig), explicitSignificand(b.sig)
	switch {
	case am < bm:
		return signedResult(sign, -1)
	case am > bm:
		return signedResult(sign, 1)
	default:
		return 0
	}
}

func signedResult(negative bool, cmp int) int {
	if negative {
		return -cmp
	}
	return cmp
}

// Eq reports whether a and b are numerically equal. NaN is never equal to
// anything, including itself.
func (a Value) Eq(b Value) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	return a == b
}

// Neq is the negation of Eq.
func (a Value) Neq(b Value) bool { return !a.Eq(b) }

// Lt reports whether a < b. Comparisons involving NaN are always false.
func (a Value) Lt(b Value) bool { return Cmp(a, b) == -1 }

// Lte reports whether a <= b.
func (a Value) Lte(b Value) bool { c := Cmp(a, b); return c == -1 || c == 0 }

// Gt reports whether a > b.
func (a Value) Gt(b Value) bool { return Cmp(a, b) == 1 }

// Gte reports whether a >= b.
func (a Value) Gte(b Value) bool { c := Cmp(a, b); return c == 1 || c == 0 }

// Sign returns -1, 0, or 1 according to the sign of v. NaN's sign is 0.
func Sign(v Value) int {
	switch {
	case v.IsNaN(), v.IsZero():
		return 0
	case v.Signbit():
		return -1
	default:
		return 1
	}
}

// Min returns the lesser of a and b, propagating NaN.
func Min(a, b Value) Value {
	if a.IsNaN() || b.IsNaN() {
		return NaN()
	}
	if Cmp(a, b) <= 0 {
		return a
	}
	return b
}

// Max returns the greater of a and b, propagating NaN.
func Max(a, b Value) Value {
	if a.IsNaN() || b.IsNaN() {
		return NaN()
	}
	if Cmp(a, b) >= 0 {
		return a
	}
	return b
}
