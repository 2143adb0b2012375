// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xfconv holds the decimal-string scanning primitives shared by
// bigdouble.Parse and quad.Parse. Both types accept the same numeric
// literal grammar (spec.md §6):
//
//	[sign] digits [ . digits ] [ (e|E) [sign] digits ]
//
// with any whitespace surrounding the exponent marker normalized away, and
// spellings "e", "E" accepted (the grammar's "eE"/"Ee" forms describe the
// same single-character marker case-insensitively, not a two-character
// marker).
package xfconv

import (
	"strconv"
	"strings"
)

// Parts is the decomposition of a scanned numeric literal.
type Parts struct {
	Neg        bool
	IntDigits  string // digits before the decimal point, may be empty
	FracDigits string // digits after the decimal point, may be empty
	HasExp     bool
	ExpNeg     bool
	ExpDigits  string
}

// Scan decomposes s into Parts. It does not itself recognize the sentinel
// spellings ("NaN", "Infinity", "-Infinity"); callers check those first
// (see IsSentinelWord) since their target representation differs between
// bigdouble and quad. "0" is an ordinary digit run here.
func Scan(s string) (Parts, bool) {
	var p Parts
	i, n := 0, len(s)
	if i < n && (s[i] == '+' || s[i] == '-') {
		p.Neg = s[i] == '-'
		i++
	}
	start := i
	for i < n && isDigit(s[i]) {
		i++
	}
	p.IntDigits = s[start:i]
	if i < n && s[i] == '.' {
		i++
		start = i
		for i < n && isDigit(s[i]) {
			i++
		}
		p.FracDigits = s[start:i]
	}
	if p.IntDigits == "" && p.FracDigits == "" {
		return Parts{}, false
	}
	// normalize away whitespace immediately around the exponent marker
	j := i
	for j < n && s[j] == ' ' {
		j++
	}
	if j < n && (s[j] == 'e' || s[j] == 'E') {
		j++
		for j < n && s[j] == ' ' {
			j++
		}
		if j < n && (s[j] == '+' || s[j] == '-') {
			p.ExpNeg = s[j] == '-'
			j++
		}
		start = j
		for j < n && isDigit(s[j]) {
			j++
		}
		if j == start {
			return Parts{}, false
		}
		p.ExpDigits = s[start:j]
		p.HasExp = true
		i = j
	}
	if i != n {
		return Parts{}, false
	}
	return p, true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// ParseExp parses an exponent digit run as an int64, saturating to
// 1<<62 / -(1<<62) on overflow rather than failing: a literal
// exponent that overflows int64 is, for both engines' purposes,
// indistinguishable from "as large as this representation can express".
func ParseExp(neg bool, digits string) int64 {
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		if neg {
			return -1 << 62
		}
		return 1 << 62
	}
	if neg {
		return -v
	}
	return v
}

// IsSentinelWord reports whether s (after trimming ASCII space) equals one
// of the three case-sensitive sentinel spellings shared by both engines,
// and returns which one.
func IsSentinelWord(s string) (word string, ok bool) {
	s = strings.TrimSpace(s)
	switch s {
	case "NaN", "Infinity", "-Infinity":
		return s, true
	default:
		return "", false
	}
}
