// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xferr defines the error taxonomy returned by the bigdouble and
// quad packages. Domain errors (log of a non-positive value, a negative
// base raised to a non-integer power) are not part of this taxonomy: per
// spec.md §7 those propagate as the NaN sentinel, not as a Go error.
//
// Only the two rows of the error table that must surface as typed failures
// do so here: unparseable input (SyntaxError) and out-of-range integer
// casts from quad.Value (CastError).
package xferr

import (
	"fmt"

	"github.com/pkg/errors"
)

// SyntaxError reports that a decimal-string literal could not be parsed.
// Src is the original input, and Pos is the byte offset passed by the
// caller; bigdouble.Parse and quad.Parse always pass 0, so Pos does not
// locate the failing byte.
type SyntaxError struct {
	Src string
	Pos int
	err error
}

// NewSyntaxError builds a SyntaxError wrapped with a stack trace captured
// at the call site, so a caller further up the stack can log where in the
// parser the input was rejected.
func NewSyntaxError(src string, pos int, reason string) *SyntaxError {
	return &SyntaxError{
		Src: src,
		Pos: pos,
		err: errors.Wrapf(errors.New(reason), "xfloat: invalid numeric literal %q at byte %d", src, pos),
	}
}

func (e *SyntaxError) Error() string { return e.err.Error() }

// Unwrap exposes the pkg/errors-wrapped cause for errors.Is/errors.As.
func (e *SyntaxError) Unwrap() error { return e.err }

// CastKind identifies the reason an integer cast from quad.Value failed.
type CastKind int

const (
	// CastNaN: the source value is NaN.
	CastNaN CastKind = iota
	// CastInf: the source value is ±infinity.
	CastInf
	// CastOverflow: the magnitude of the source value exceeds the target
	// integer type's range.
	CastOverflow
	// CastNegative: an unsigned cast was attempted on a negative value.
	CastNegative
)

func (k CastKind) String() string {
	switch k {
	case CastNaN:
		return "NaN"
	case CastInf:
		return "infinite"
	case CastOverflow:
		return "out of range"
	case CastNegative:
		return "negative"
	default:
		return "unknown"
	}
}

// CastError reports that a quad.Value could not be represented as the
// requested integer type.
type CastError struct {
	Kind   CastKind
	Target string // e.g. "int64", "uint64"
}

func (e *CastError) Error() string {
	return fmt.Sprintf("xfloat: cannot convert %s value to %s", e.Kind, e.Target)
}

// NewCastError constructs a CastError, wrapping it with a stack trace so
// the failure site is recoverable via errors.Cause-style tooling.
func NewCastError(kind CastKind, target string) error {
	return errors.WithStack(&CastError{Kind: kind, Target: target})
}
