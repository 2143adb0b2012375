// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ilog holds small bit-counting helpers. The quad engine uses
// NLZ64; bigdouble does not import this package. Nothing here allocates;
// every function operates on plain machine words.
package ilog

import "math/bits"

// pow10Tab mirrors the teacher library's pow10tab: the ten powers of ten
// that fit in a uint64, used to disambiguate the off-by-one that
// bits.Len64 alone leaves in Mag10.
var pow10Tab = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000,
	1000000000000000, 10000000000000000, 100000000000000000, 1000000000000000000,
	10000000000000000000,
}

// digitsForBitlen[n] is the number of decimal digits in a value whose
// binary length is n, or that value plus one; Mag10 disambiguates with a
// single comparison against pow10Tab.
var digitsForBitlen = [...]uint{
	1, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 4, 5, 5,
	5, 6, 6, 6, 7, 7, 7, 7, 8, 8, 8, 9, 9, 9, 10, 10,
	10, 10, 11, 11, 11, 12, 12, 12, 13, 13, 13, 13, 14, 14, 14, 15,
	15, 15, 16, 16, 16, 16, 17, 17, 17, 18, 18, 18, 19, 19, 19, 20, 20,
}

// Mag10 returns the number of decimal digits of x, i.e. the smallest n >= 1
// such that x < 10**n. Mag10(0) == 1.
func Mag10(x uint64) uint {
	if x == 0 {
		return 1
	}
	n := digitsForBitlen[bits.Len64(x)]
	if x < pow10Tab[n-1] {
		n--
	}
	return n
}

// NLZ64 returns the number of leading zero bits of x. NLZ64(0) == 64.
func NLZ64(x uint64) uint {
	return uint(bits.LeadingZeros64(x))
}
