// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"strconv"
	"strings"

	"github.com/db47h/xfloat/xfconv"
	"github.com/db47h/xfloat/xferr"
)

// Parse parses a decimal literal into a Value (spec.md §4.2.8), accepting
// the same grammar as bigdouble.Parse: an optional sign, digits, an
// optional fractional part, and an optional e/E exponent marker.
//
// Since Value's exponent is binary, the decimal exponent cannot be folded
// in directly the way bigdouble does. Instead the digit run (sign, integer
// and fractional digits) is parsed as a binary64 mantissa (rounded to the
// nearest binary64 by strconv.ParseFloat) and the decimal exponent is applied
// separately as a single Quad multiplication by 10**exp, batching what
// would otherwise be a per-digit scaling loop into one Pow/Mul pair. This
// is also what lets literals like "1e400", well outside binary64 range,
// round-trip through this parser without ever overflowing intermediate
// binary64 arithmetic.
func Parse(s string) (Value, error) {
	trimmed := strings.TrimSpace(s)
	if word, ok := xfconv.IsSentinelWord(trimmed); ok {
		switch word {
		case "NaN":
			return NaN(), nil
		case "Infinity":
			return Inf(1), nil
		case "-Infinity":
			return Inf(-1), nil
		}
	}

	parts, ok := xfconv.Scan(trimmed)
	if !ok {
		return Value{}, xferr.NewSyntaxError(s, 0, "malformed numeric literal")
	}

	front := parts.IntDigits
	if parts.FracDigits != "" {
		front += "." + parts.FracDigits
	}
	if parts.Neg {
		front = "-" + front
	}
	mantissa, err := strconv.ParseFloat(front, 64)
	if err != nil {
		return Value{}, xferr.NewSyntaxError(s, 0, "invalid mantissa")
	}

	decExp := int64(0)
	if parts.HasExp {
		decExp = xfconv.ParseExp(parts.ExpNeg, parts.ExpDigits)
	}

	m := FromFloat64(mantissa)
	if decExp == 0 {
		return m, nil
	}
	return Mul(m, Pow(FromInt64(10), float64(decExp))), nil
}

// MustParse is Parse but panics on error. It exists for test tables and
// package-level literal declarations, never for handling user input.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}
