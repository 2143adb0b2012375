// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"math"
	"strconv"
	"strings"
)

// Powers of ten used by ScientificExact to drive a value into [1, 10) and
// to harvest its fractional digits, computed once through Quad's own
// exact Mul (see Pow/powInt) rather than a binary64 literal, so the
// reduction stays exact even though some of these constants exceed
// int64.
var (
	ten1  = FromInt64(10)
	ten3  = Pow(ten1, 3)
	ten5  = Pow(ten1, 5)
	ten10 = Pow(ten1, 10)
	ten19 = Pow(ten1, 19)
)

var exactReductionSteps = [...]struct {
	pow Value
	n   int64
}{
	{ten19, 19},
	{ten10, 10},
	{ten5, 5},
	{ten3, 3},
	{ten1, 1},
}

var log10Of2 = math.Log10(2)

// exactFractionGroups bounds how many 10**19-digit groups ScientificExact
// harvests from the fractional part. Quad's 64-bit significand carries
// roughly 19-20 decimal digits of real information (see doc.go); two
// groups (38 digits) comfortably covers that, so further groups would
// only ever surface representation noise past the value's actual
// precision, not more real digits.
const exactFractionGroups = 2

// ScientificExact renders v as decimal digits harvested directly from its
// significand (spec.md §4.2.8), rather than bridging through bigdouble
// (DecimalExponential, ScientificApproximate) or the native base-16 form
// (HexExponential).
//
// A binary64 estimate of the decimal exponent (from Log2) seeds the
// reduction so the loop below runs a handful of times rather than once
// per decade for extreme magnitudes; the loop itself then repeatedly
// divides by descending powers of ten (10**19, 10**10, 10**5, 10**3, 10)
// to land the magnitude exactly in [1, 10), matching spec.md's
// description. The fractional part is then harvested by repeatedly
// multiplying by 10**19 and printing the integer portion, until the
// fraction is zero or the value's precision is exhausted.
func ScientificExact(v Value) string {
	switch {
	case v.IsNaN():
		return "NaN"
	case v.IsPositiveInfinity():
		return "Infinity"
	case v.IsNegativeInfinity():
		return "-Infinity"
	case v.IsZero():
		return "0.0"
	}
	sign := ""
	cur := v
	if v.Signbit() {
		sign = "-"
		cur = Abs(v)
	}

	estimate := int64(math.Floor(Log2(cur).Float64() * log10Of2))
	scaled := Div(cur, Pow(ten1, float64(estimate)))
	decExp := estimate

	for _, step := range exactReductionSteps {
		for Cmp(scaled, step.pow) >= 0 {
			scaled = Div(scaled, step.pow)
			decExp += step.n
		}
	}
	for Cmp(scaled, One) < 0 {
		scaled = Mul(scaled, ten1)
		decExp--
	}

	lead, err := Floor(scaled).ToUint64()
	if err != nil {
		lead = 9 // scaled is in [1,10) by construction; only reachable via boundary rounding
	}
	frac := Sub(scaled, FromUint64(lead))

	var fracDigits strings.Builder
	for i := 0; i < exactFractionGroups && !frac.IsZero(); i++ {
		frac = Mul(frac, ten19)
		group, err := Floor(frac).ToUint64()
		if err != nil {
			break
		}
		fracDigits.WriteString(padDigits19(group))
		frac = Sub(frac, FromUint64(group))
	}

	fracStr := strings.TrimRight(fracDigits.String(), "0")
	if fracStr == "" {
		fracStr = "0"
	}
	return sign + strconv.FormatUint(lead, 10) + "." + fracStr + "E" + signedExpQ(decExp)
}

func padDigits19(group uint64) string {
	s := strconv.FormatUint(group, 10)
	if len(s) < 19 {
		s = strings.Repeat("0", 19-len(s)) + s
	}
	return s
}
