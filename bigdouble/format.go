// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdouble

import (
	"strconv"
	"strings"

	"github.com/db47h/xfloat/xfmath"
)

// String returns v formatted with the default "G" specifier.
func (v Value) String() string {
	s, _ := v.Format("G")
	return s
}

// Format renders v according to spec, one of "G[n]", "E[n]", "F[n]" or
// "R" (spec.md §4.1.6). n is an optional decimal digit count; when absent,
// the shortest round-trippable representation is used where applicable.
//
// Sentinel values always format as "NaN", "Infinity" or "-Infinity"
// regardless of spec.
func (v Value) Format(spec string) (string, error) {
	if v.IsNaN() {
		return "NaN", nil
	}
	if v.IsPositiveInfinity() {
		return "Infinity", nil
	}
	if v.IsNegativeInfinity() {
		return "-Infinity", nil
	}
	if spec == "" {
		spec = "G"
	}
	verb := spec[0]
	digits, hasDigits, err := parseDigits(spec[1:])
	if err != nil {
		return "", err
	}
	switch verb {
	case 'G', 'g':
		return v.formatG(), nil
	case 'E', 'e':
		return v.formatE(digits, hasDigits), nil
	case 'F', 'f':
		return v.formatF(digits, hasDigits), nil
	case 'R', 'r':
		return v.formatR(), nil
	default:
		return "", &formatError{spec}
	}
}

type formatError struct{ spec string }

func (e *formatError) Error() string { return "bigdouble: invalid format specifier " + strconv.Quote(e.spec) }

func parseDigits(s string) (n int, ok bool, err error) {
	if s == "" {
		return 0, false, nil
	}
	n64, err := strconv.Atoi(s)
	if err != nil || n64 < 0 {
		return 0, false, &formatError{s}
	}
	return n64, true, nil
}

func (v Value) formatG() string {
	if v.exponent >= -6 && v.exponent <= 20 {
		return strconv.FormatFloat(v.Float64(), 'f', -1, 64)
	}
	// Outside that window, fall back to spec's documented E form
	// (mantissa + "E" + signed exponent) rather than the "R" round-trip
	// form, which uses a bare, unsigned exponent.
	return v.formatE(0, false)
}

func (v Value) formatE(digits int, has bool) string {
	prec := -1
	if has {
		prec = digits
	}
	m := strconv.FormatFloat(v.mantissa, 'f', prec, 64)
	return m + "E" + signedExp(v.exponent)
}

func (v Value) formatF(digits int, has bool) string {
	prec := -1
	if has {
		prec = digits
	}
	if v.exponent >= MAX_SIGNIFICANT_DIGITS {
		return v.formatRawDigits(digits, has)
	}
	return strconv.FormatFloat(v.Float64(), 'f', prec, 64)
}

// formatRawDigits prints the mantissa's significant digits followed by
// zeros out to the decimal point, for magnitudes too large for binary64
// to represent exactly (spec.md §4.1.6's "print the raw mantissa digits
// followed by zeros").
func (v Value) formatRawDigits(digits int, has bool) string {
	sign := ""
	m := v.mantissa
	if m < 0 {
		sign = "-"
		m = -m
	}
	mantStr := strconv.FormatFloat(m, 'f', 15, 64)
	mantStr = strings.Replace(mantStr, ".", "", 1)
	mantStr = strings.TrimRight(mantStr, "0")
	if mantStr == "" {
		mantStr = "0"
	}
	zeros := xfmath.Max(int(v.exponent)-(len(mantStr)-1), 0)
	out := sign + mantStr + strings.Repeat("0", zeros)
	if has && digits > 0 {
		out += "." + strings.Repeat("0", digits)
	}
	return out
}

func (v Value) formatR() string {
	m := strconv.FormatFloat(v.mantissa, 'g', -1, 64)
	return m + "e" + strconv.FormatInt(v.exponent, 10)
}

func signedExp(e int64) string {
	if e < 0 {
		return strconv.FormatInt(e, 10)
	}
	return "+" + strconv.FormatInt(e, 10)
}

// MarshalText implements encoding.TextMarshaler using the "R" format, so a
// Value round-trips exactly through UnmarshalText.
func (v Value) MarshalText() ([]byte, error) {
	s, err := v.Format("R")
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Value) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
