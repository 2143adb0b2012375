// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

// Lshift returns v * 2**k (spec.md §4.2.9). Sentinels are returned
// unchanged; no significand bits are touched, only the exponent.
func Lshift(v Value, k int64) Value {
	if !v.IsFinite() || v.IsZero() {
		return v
	}
	return fromNormalized(v.Signbit(), explicitSignificand(v.sig), v.exp+k)
}

// Rshift returns v / 2**k.
func Rshift(v Value, k int64) Value {
	return Lshift(v, -k)
}
