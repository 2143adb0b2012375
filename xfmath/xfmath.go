// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xfmath holds tiny generic helpers for the plain ordered scalars
// (exponents, packed magnitudes, digit counts) that bigdouble and quad
// manipulate internally. Value.Min/Max on each engine apply their own
// NaN/sentinel rules and are not generic over Value (Value does not
// satisfy constraints.Ordered), but the exponent and magnitude arithmetic
// feeding those and other operations is plain scalar comparison, and
// shares this package's Min/Max/Clamp.
package xfmath

import "golang.org/x/exp/constraints"

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp returns x restricted to [lo, hi]. Behavior is undefined if lo > hi.
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	return Max(lo, Min(x, hi))
}
