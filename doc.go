// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package xfloat is the root of a small family of extended-range
floating-point types built for workloads — incremental and idle games in
particular — that need numbers far outside the range of a binary64 (roughly
1e±308) while staying close to native arithmetic throughput.

Two independent representations are provided as subpackages:

  - bigdouble: a normalized base-10 pair (mantissa in [1,10), a signed
    64-bit decimal exponent). Approximate (~15 significant digits), simple,
    and the cheapest of the two to compute with.

  - quad: a 128-bit binary float (64-bit signed-and-fractional significand,
    64-bit binary exponent). ~63-64 bits of precision and a binary exponent
    range wide enough that overflow is essentially unreachable in practice.

Neither type attempts arbitrary precision or decimal-exact rounding; both
trade accuracy for range and speed. Pick bigdouble when values are only ever
displayed and compared loosely (the common case for idle-game currencies),
and quad when a computation chain needs to survive many repeated operations
without accumulating visible drift.

The supporting package xfconv holds the literal scanner shared by both
engines; internal/tenpow (a powers-of-ten table) serves bigdouble and
internal/ilog (bit-counting helpers) serves quad. xferr defines the
error taxonomy returned by parsing and casting operations. xflog is an
optional structured-logging hook that the arithmetic engines never invoke
on their own hot path. cmd/xfcalc is a small command-line calculator built
entirely on the public API, included as a worked example rather than part
of the library surface.
*/
package xfloat
