// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xflog is a thin structured-logging shim shared by the bigdouble
// and quad debug hooks and by cmd/xfcalc.
//
// Neither arithmetic engine imports zerolog directly: each exposes a
// SetDebugLogger(func(event string, fields map[string]any)) hook that is
// nil (and therefore free) until a caller installs one. xflog.Hook adapts
// a zerolog.Logger into that hook shape, so installing structured
// diagnostics is a one-line call rather than a new dependency threaded
// through the arithmetic packages themselves.
package xflog

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a zerolog.Logger writing human-readable output to w (or
// os.Stderr if w is nil), suitable for cmd/xfcalc and for interactive use
// of the debug hooks.
func New(w *os.File) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
}

// Hook adapts logger into the func(event string, fields map[string]any)
// shape expected by bigdouble.SetDebugLogger and quad.SetDebugLogger.
func Hook(logger zerolog.Logger) func(string, map[string]any) {
	return func(event string, fields map[string]any) {
		e := logger.Trace().Str("event", event)
		for k, v := range fields {
			e = e.Interface(k, v)
		}
		e.Msg(event)
	}
}
