// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

//go:generate stringer -type=Category

// Category classifies an operand for the sentinel-algebra lookup tables in
// spec.md §4.2.2, replacing a cascade of conditionals with an O(1) table
// probe.
type Category int

const (
	CatZero Category = iota
	CatPosInf
	CatNegInf
	CatNaN
	CatPosFinite
	CatNegFinite
)

func categorize(v Value) Category {
	switch {
	case v.IsNaN():
		return CatNaN
	case v.IsPositiveInfinity():
		return CatPosInf
	case v.IsNegativeInfinity():
		return CatNegInf
	case v.IsZero():
		return CatZero
	case v.Signbit():
		return CatNegFinite
	default:
		return CatPosFinite
	}
}

// sentinelResult describes how a table entry resolves: either a fixed
// sentinel/zero result, or "not a sentinel case" (both operands finite
// nonzero), signaled by useFinitePath.
type sentinelResult struct {
	value         Value
	useFinitePath bool
}

func finite() sentinelResult { return sentinelResult{useFinitePath: true} }
func fixed(v Value) sentinelResult { return sentinelResult{value: v} }

// addTable[a][b] gives the result of a + b whenever at least one of a, b is
// not a finite nonzero value. The cells pairing Zero with a finite nonzero
// operand are marked finite(); Add returns the nonzero operand for those
// before reaching its finite path. IEEE-754 rules:
// +Inf + -Inf = NaN, NaN absorbs everything, 0 + x = x, Inf + finite = Inf.
var addTable = [6][6]sentinelResult{
	CatZero:      {CatZero: fixed(Zero), CatPosInf: fixed(Inf(1)), CatNegInf: fixed(Inf(-1)), CatNaN: fixed(NaN()), CatPosFinite: finite(), CatNegFinite: finite()},
	CatPosInf:    {CatZero: fixed(Inf(1)), CatPosInf: fixed(Inf(1)), CatNegInf: fixed(NaN()), CatNaN: fixed(NaN()), CatPosFinite: fixed(Inf(1)), CatNegFinite: fixed(Inf(1))},
	CatNegInf:    {CatZero: fixed(Inf(-1)), CatPosInf: fixed(NaN()), CatNegInf: fixed(Inf(-1)), CatNaN: fixed(NaN()), CatPosFinite: fixed(Inf(-1)), CatNegFinite: fixed(Inf(-1))},
	CatNaN:       {CatZero: fixed(NaN()), CatPosInf: fixed(NaN()), CatNegInf: fixed(NaN()), CatNaN: fixed(NaN()), CatPosFinite: fixed(NaN()), CatNegFinite: fixed(NaN())},
	CatPosFinite: {CatZero: finite(), CatPosInf: fixed(Inf(1)), CatNegInf: fixed(Inf(-1)), CatNaN: fixed(NaN()), CatPosFinite: finite(), CatNegFinite: finite()},
	CatNegFinite: {CatZero: finite(), CatPosInf: fixed(Inf(1)), CatNegInf: fixed(Inf(-1)), CatNaN: fixed(NaN()), CatPosFinite: finite(), CatNegFinite: finite()},
}

// mulTable[a][b] gives a * b whenever at least one operand is a sentinel or
// zero. 0 * ±Inf = NaN; Inf * finite nonzero = signed Inf; Inf * Inf =
// signed Inf; NaN absorbs.
var mulTable = [6][6]sentinelResult{
	CatZero:      {CatZero: fixed(Zero), CatPosInf: fixed(NaN()), CatNegInf: fixed(NaN()), CatNaN: fixed(NaN()), CatPosFinite: fixed(Zero), CatNegFinite: fixed(Zero)},
	CatPosInf:    {CatZero: fixed(NaN()), CatPosInf: fixed(Inf(1)), CatNegInf: fixed(Inf(-1)), CatNaN: fixed(NaN()), CatPosFinite: fixed(Inf(1)), CatNegFinite: fixed(Inf(-1))},
	CatNegInf:    {CatZero: fixed(NaN()), CatPosInf: fixed(Inf(-1)), CatNegInf: fixed(Inf(1)), CatNaN: fixed(NaN()), CatPosFinite: fixed(Inf(-1)), CatNegFinite: fixed(Inf(1))},
	CatNaN:       {CatZero: fixed(NaN()), CatPosInf: fixed(NaN()), CatNegInf: fixed(NaN()), CatNaN: fixed(NaN()), CatPosFinite: fixed(NaN()), CatNegFinite: fixed(NaN())},
	CatPosFinite: {CatZero: fixed(Zero), CatPosInf: fixed(Inf(1)), CatNegInf: fixed(Inf(-1)), CatNaN: fixed(NaN()), CatPosFinite: finite(), CatNegFinite: finite()},
	CatNegFinite: {CatZero: fixed(Zero), CatPosInf: fixed(Inf(-1)), CatNegInf: fixed(Inf(1)), CatNaN: fixed(NaN()), CatPosFinite: finite(), CatNegFinite: finite()},
}

// divTable[a][b] gives a / b whenever at least one operand is a sentinel
// or the divisor is zero. 0/0 = NaN, x/0 = ±Inf for finite nonzero x,
// Inf/Inf = NaN, Inf/finite = signed Inf, finite/Inf = 0.
var divTable = [6][6]sentinelResult{
	CatZero:      {CatZero: fixed(NaN()), CatPosInf: fixed(Zero), CatNegInf: fixed(Zero), CatNaN: fixed(NaN()), CatPosFinite: fixed(Zero), CatNegFinite: fixed(Zero)},
	CatPosInf:    {CatZero: fixed(Inf(1)), CatPosInf: fixed(NaN()), CatNegInf: fixed(NaN()), CatNaN: fixed(NaN()), CatPosFinite: fixed(Inf(1)), CatNegFinite: fixed(Inf(-1))},
	CatNegInf:    {CatZero: fixed(Inf(-1)), CatPosInf: fixed(NaN()), CatNegInf: fixed(NaN()), CatNaN: fixed(NaN()), CatPosFinite: fixed(Inf(-1)), CatNegFinite: fixed(Inf(1))},
	CatNaN:       {CatZero: fixed(NaN()), CatPosInf: fixed(NaN()), CatNegInf: fixed(NaN()), CatNaN: fixed(NaN()), CatPosFinite: fixed(NaN()), CatNegFinite: fixed(NaN())},
	CatPosFinite: {CatZero: fixed(Inf(1)), CatPosInf: fixed(Zero), CatNegInf: fixed(Zero), CatNaN: fixed(NaN()), CatPosFinite: finite(), CatNegFinite: finite()},
	CatNegFinite: {CatZero: fixed(Inf(-1)), CatPosInf: fixed(Zero), CatNegInf: fixed(Zero), CatNaN: fixed(NaN()), CatPosFinite: finite(), CatNegFinite: finite()},
}

// orderedValue gives each category's rank in the total order over
// categories (spec.md §4.2.2's comparison table, collapsed from four
// literal boolean tables into a single rank subtraction since the
// categories admit a strict total pre-order: -Inf < negative finite <
// zero < positive finite < +Inf). Cmp uses this for any pair that isn't
// two finite values sharing a sign; those fall back to significand
// comparison.
func orderedValue(a, b Category) float64 {
	rank := map[Category]float64{
		CatNegInf: -2, CatNegFinite: -1, CatZero: 0, CatPosFinite: 1, CatPosInf: 2,
	}
	return rank[a] - rank[b]
}
