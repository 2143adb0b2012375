// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bigdouble implements a base-10 extended-range floating point
// type: a normalized (mantissa, exponent) pair where the logical value is
// mantissa * 10**exponent. It trades precision (roughly 15 significant
// decimal digits, inherited from binary64) for a decimal exponent range
// far beyond binary64's ~10**±308, at close to native arithmetic speed.
//
// The zero value of Value is the numeric value 0, so Value can be used
// directly as a struct field or embedded in a slice without further
// initialization:
//
//	var total bigdouble.Value // total == 0
//
// Values are immutable: every operation returns a new Value rather than
// mutating its receiver or arguments. This mirrors spec.md §5's
// "value-type library with no internal concurrency" contract — a Value is
// plain bit-level data, safe to copy and pass across goroutines.
package bigdouble

import (
	"math"

	"github.com/db47h/xfloat/internal/tenpow"
)

// EXP_LIMIT bounds the magnitude of a finite exponent (spec.md §3.1
// invariant 5). The source material documents two variants across
// versions (9e15 and math.MaxInt64); this port fixes it at 1<<62, which is
// comfortably below math.MaxInt64 so that exponent addition/subtraction in
// Mul, Div and Pow cannot itself overflow int64 before the overflow check
// runs, while still being far larger than any value an idle game will ever
// produce.
const EXP_LIMIT int64 = 1 << 62

// MAX_SIGNIFICANT_DIGITS is the number of decimal digits of precision Add
// preserves from the smaller operand (spec.md §4.1.3).
const MAX_SIGNIFICANT_DIGITS = 17

// DefaultTolerance is the relative tolerance used by Value.EqDefaultTol (spec.md
// §6's "default 1e-9 for BigDouble").
const DefaultTolerance = 1e-9

// Value is a base-10 extended-range floating point number: mantissa *
// 10**exponent. The zero value is the number 0.
type Value struct {
	mantissa float64
	exponent int64
}

// Zero is the canonical representation of 0.
var Zero = Value{}

// One is the canonical representation of 1.
var One = Value{mantissa: 1, exponent: 0}

// NaN returns the canonical not-a-number sentinel.
func NaN() Value { return Value{mantissa: math.NaN()} }

// Inf returns +Infinity if sign >= 0, -Infinity otherwise.
func Inf(sign int) Value {
	if sign < 0 {
		return Value{mantissa: math.Inf(-1)}
	}
	return Value{mantissa: math.Inf(1)}
}

// debugLogger receives a trace event whenever an operation saturates to a
// sentinel. It is nil by default and installing one is the only way this
// package ever performs I/O — see SPEC_FULL.md §5.2.
var debugLogger func(event string, fields map[string]any)

// SetDebugLogger installs (or, with nil, removes) a diagnostic hook that
// fires whenever an arithmetic operation saturates to ±Infinity or
// underflows to 0. It has no effect on the value returned by any
// operation; it exists purely so a game's numeric designer can find where
// their curves are hitting the representable range without instrumenting
// every call site by hand.
func SetDebugLogger(f func(event string, fields map[string]any)) {
	debugLogger = f
}

func traceSaturate(op string, m float64, e int64) {
	if debugLogger != nil {
		debugLogger("bigdouble.saturate", map[string]any{"op": op, "mantissa": m, "exponent": e})
	}
}

// mantissaExponent exposes the raw components for the format and
// parse helpers in this package; they are not part of the public API.
func (v Value) mantissaExponent() (float64, int64) { return v.mantissa, v.exponent }

// New builds a Value from a raw (mantissa, exponent) pair, normalizing it
// per spec.md §4.1.1.
func New(mantissa float64, exponent int64) Value {
	return normalize(mantissa, exponent)
}

// normalize rewrites (m, e) into canonical form: |m| in [1, 10) or m == 0
// with e == 0, or m is a non-finite sentinel.
func normalize(m float64, e int64) Value {
	if math.IsNaN(m) {
		return Value{mantissa: m}
	}
	if math.IsInf(m, 0) {
		return Value{mantissa: m}
	}
	if m == 0 {
		return Value{}
	}
	am := math.Abs(m)
	if am >= 1 && am < 10 {
		return Value{mantissa: m, exponent: e}
	}
	k := int64(math.Floor(math.Log10(am)))
	var scaled float64
	if k == -324 {
		// avoid subnormal division loss at the smallest binary64 decade
		scaled = m * 10 / 1e-323
	} else {
		scaled = m / pow10f(k)
	}
	newExp := e + k
	// log10 rounding can leave |scaled| just outside [1,10); nudge once.
	for math.Abs(scaled) >= 10 {
		scaled /= 10
		newExp++
	}
	for scaled != 0 && math.Abs(scaled) < 1 {
		scaled *= 10
		newExp--
	}
	if newExp > EXP_LIMIT {
		traceSaturate("normalize", m, e)
		return Inf(sign(scaled))
	}
	if newExp < -EXP_LIMIT {
		traceSaturate("normalize", m, e)
		return Zero
	}
	return Value{mantissa: scaled, exponent: newExp}
}

func sign(f float64) int {
	if f < 0 {
		return -1
	}
	return 1
}

// pow10f computes 10**k as a binary64 directly, used only inside
// normalize where k is the small (usually single-digit) correction from
// log10 rather than an arbitrary exponent; large-magnitude exponent scaling
// elsewhere goes through internal/tenpow instead.
func pow10f(k int64) float64 {
	return math.Pow(10, float64(k))
}

// FromFloat64 constructs a Value from a binary64, propagating NaN, ±Inf
// and 0 to their sentinels (spec.md §4.1.1).
func FromFloat64(x float64) Value {
	switch {
	case math.IsNaN(x):
		return NaN()
	case math.IsInf(x, 1):
		return Inf(1)
	case math.IsInf(x, -1):
		return Inf(-1)
	case x == 0:
		return Zero
	default:
		return normalize(x, 0)
	}
}

// FromInt64 constructs a Value equal to n.
func FromInt64(n int64) Value {
	return FromFloat64(float64(n))
}

// Float64 converts v back to a binary64 (spec.md §4.1.2).
//
// NaN maps to NaN. Exponents above the binary64 decimal exponent ceiling
// saturate to ±Inf; exponents below the floor underflow to 0. At the
// smallest representable decade the smallest positive/negative subnormal
// is returned. Otherwise the result is m * 10**e with an integer
// snap-back heuristic: a result within 1e-10 of a non-negative integer is
// rounded to that integer, to hide the FP noise the inverse scale
// introduces (spec.md §9).
func (v Value) Float64() float64 {
	if v.IsNaN() {
		return math.NaN()
	}
	if v.IsPositiveInfinity() {
		return math.Inf(1)
	}
	if v.IsNegativeInfinity() {
		return math.Inf(-1)
	}
	if v.mantissa == 0 {
		return 0
	}
	const doubleExpMax = 308
	const doubleExpMin = -324
	if v.exponent > doubleExpMax {
		return math.Inf(sign(v.mantissa))
	}
	if v.exponent < doubleExpMin {
		return 0
	}
	if v.exponent == doubleExpMin {
		if v.mantissa < 0 {
			return -5e-324
		}
		return 5e-324
	}
	result := v.mantissa * tenPow(v.exponent)
	if v.exponent >= 0 {
		rounded := math.Round(result)
		if rounded >= 0 && math.Abs(result-rounded) < 1e-10 {
			return rounded
		}
	}
	return result
}

// tenPow returns 10**e using the shared lookup table when e is within its
// domain, falling back to math.Pow for the rare exponent just outside it
// (the table's Max is binary64's overflow ceiling, so this only matters at
// the very edge of the representable range).
func tenPow(e int64) float64 {
	if tenpow.InRange(e) {
		return tenpow.At(e)
	}
	return math.Pow(10, float64(e))
}

// IsNaN reports whether v is the NaN sentinel.
func (v Value) IsNaN() bool { return math.IsNaN(v.mantissa) }

// IsFinite reports whether v is neither NaN nor infinite.
func (v Value) IsFinite() bool { return !math.IsNaN(v.mantissa) && !math.IsInf(v.mantissa, 0) }

// IsInfinity reports whether v is +Infinity or -Infinity.
func (v Value) IsInfinity() bool { return math.IsInf(v.mantissa, 0) }

// IsPositiveInfinity reports whether v is +Infinity.
func (v Value) IsPositiveInfinity() bool { return math.IsInf(v.mantissa, 1) }

// IsNegativeInfinity reports whether v is -Infinity.
func (v Value) IsNegativeInfinity() bool { return math.IsInf(v.mantissa, -1) }

// IsZero reports whether v is the canonical zero.
func (v Value) IsZero() bool { return v.mantissa == 0 }
