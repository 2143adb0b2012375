// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdouble

import (
	"strconv"
	"strings"

	"github.com/db47h/xfloat/xfconv"
	"github.com/db47h/xfloat/xferr"
)

// Parse decodes s into a Value. Accepted literal forms are documented in
// spec.md §6: the sentinel spellings "NaN", "Infinity", "-Infinity", "0",
// and the numeric grammar "[sign] digits [. digits] [(e|E)[sign] digits]"
// with whitespace around the exponent marker normalized away.
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
	var front strings.Builder
	if parts.Neg {
		front.WriteByte('-')
	}
	if parts.IntDigits != "" {
		front.WriteString(parts.IntDigits)
	} else {
		front.WriteByte('0')
	}
	if parts.FracDigits != "" {
		front.WriteByte('.')
		front.WriteString(parts.FracDigits)
	}
	frontVal, err := strconv.ParseFloat(front.String(), 64)
	if err != nil {
		if ne, isNum := err.(*strconv.NumError); !isNum || ne.Err != strconv.ErrRange {
			return Value{}, xferr.NewSyntaxError(s, 0, "malformed numeric literal")
		}
		// ErrRange: frontVal already holds the correctly-signed ±Inf.
	}
	var exp int64
	if parts.HasExp {
		exp = xfconv.ParseExp(parts.ExpNeg, parts.ExpDigits)
	}
	return New(frontVal, exp), nil
}

// MustParse is like Parse but panics on error; intended for tests and
// package-level literal tables, not for parsing untrusted input.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}
