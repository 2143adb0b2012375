// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/db47h/xfloat/xfconv"
	"github.com/db47h/xfloat/xferr"
)

// String implements fmt.Stringer using the approximate decimal scientific
// form, the one most useful for logging and casual inspection.
func (v Value) String() string {
	return ScientificApproximate(v)
}

// HexExponential renders v in its native base, e.g. "0x1.8p+1" for 3.0.
// Because it reflects the stored significand and exponent directly with
// no base conversion, it is the only format that round-trips a Value
// exactly.
func HexExponential(v Value) string {
	switch {
	case v.IsNaN():
		return "NaN"
	case v.IsPositiveInfinity():
		return "Infinity"
	case v.IsNegativeInfinity():
		return "-Infinity"
	case v.IsZero():
		return "0x0p+0"
	}
	frac := explicitSignificand(v.sig) &^ signBit // drop the implicit leading bit
	hexFrac := strings.TrimRight(fmt.Sprintf("%016x", frac<<1), "0")
	sign := ""
	if v.Signbit() {
		sign = "-"
	}
	if hexFrac == "" {
		return fmt.Sprintf("%s0x1p%s", sign, signedExpQ(v.exp))
	}
	return fmt.Sprintf("%s0x1.%sp%s", sign, hexFrac, signedExpQ(v.exp))
}

// DecimalExponential renders v as a decimal scientific literal by
// bridging through bigdouble, which can hold the resulting base-10
// exponent without overflow. The conversion is inherently approximate
// past bigdouble's own ~15 significant decimal digits.
func DecimalExponential(v Value) string {
	if !v.IsFinite() {
		return HexExponential(v)
	}
	s, err := v.ToBigDouble().Format("E")
	if err != nil {
		return HexExponential(v)
	}
	return s
}

// ScientificApproximate renders v as a compact decimal scientific string
// suitable for UI display, trading precision for brevity.
func ScientificApproximate(v Value) string {
	if !v.IsFinite() {
		return HexExponential(v)
	}
	s, err := v.ToBigDouble().Format("E5")
	if err != nil {
		return HexExponential(v)
	}
	return s
}

func signedExpQ(e int64) string {
	if e < 0 {
		return strconv.FormatInt(e, 10)
	}
	return "+" + strconv.FormatInt(e, 10)
}

// MarshalText implements encoding.TextMarshaler using the exact hex form,
// so a round-trip through Marshal/Unmarshal never loses precision.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(HexExponential(v)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts both the
// exact "0x1.8p+1" hex form produced by MarshalText and ordinary decimal
// literals accepted by Parse.
func (v *Value) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if word, ok := xfconv.IsSentinelWord(s); ok {
		switch word {
		case "NaN":
			*v = NaN()
		case "Infinity":
			*v = Inf(1)
		case "-Infinity":
			*v = Inf(-1)
		}
		return nil
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "-0x") {
		parsed, err := parseHexExponential(s)
		if err != nil {
			return err
		}
		*v = parsed
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// parseHexExponential is the exact inverse of HexExponential, parsing the
// full int64 binary exponent range that strconv.ParseFloat's hex-float
// support (bounded to binary64's exponent) cannot reach.
func parseHexExponential(s string) (Value, error) {
	orig := s
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if !strings.HasPrefix(s, "0x") {
		return Value{}, xferr.NewSyntaxError(orig, 0, "not a hex float literal")
	}
	s = s[2:]
	pIdx := strings.IndexByte(s, 'p')
	if pIdx < 0 {
		return Value{}, xferr.NewSyntaxError(orig, 0, "missing binary exponent marker")
	}
	mantissaPart, expPart := s[:pIdx], s[pIdx+1:]
	exp, err := strconv.ParseInt(expPart, 10, 64)
	if err != nil {
		return Value{}, xferr.NewSyntaxError(orig, pIdx, "invalid binary exponent")
	}
	if mantissaPart == "0" {
		return Zero, nil
	}
	if !strings.HasPrefix(mantissaPart, "1") {
		return Value{}, xferr.NewSyntaxError(orig, 0, "hex mantissa must start with 1")
	}
	hexFrac := ""
	if len(mantissaPart) > 1 {
		if mantissaPart[1] != '.' {
			return Value{}, xferr.NewSyntaxError(orig, 1, "expected '.' after leading 1")
		}
		hexFrac = mantissaPart[2:]
	}
	for len(hexFrac) < 16 {
		hexFrac += "0"
	}
	frac64, err := strconv.ParseUint(hexFrac, 16, 64)
	if err != nil {
		return Value{}, xferr.NewSyntaxError(orig, 0, "invalid hex fraction")
	}
	explicit := signBit | (frac64 >> 1)
	return fromNormalized(neg, explicit, exp), nil
}
