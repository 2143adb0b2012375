// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command xfcalc is a small demonstrator for the bigdouble and quad
// packages: it parses a literal with the selected engine, optionally
// applies a binary operation against a second literal, and prints the
// result in that engine's exact and approximate formats.
//
// xfcalc is deliberately thin: it only ever calls the public
// bigdouble/quad API, matching spec §6's boundary between the arithmetic
// libraries and any surrounding CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/db47h/xfloat/bigdouble"
	"github.com/db47h/xfloat/quad"
	"github.com/db47h/xfloat/xflog"
)

// No CLI framework (cobra, urfave/cli, kingpin, ...) is grounded anywhere
// in the retrieval pack this repo was built from, so argument parsing
// here uses the standard library's flag package rather than an imported
// framework; see DESIGN.md.

func main() {
	var (
		engine = flag.String("engine", "bigdouble", `arithmetic engine to use: "bigdouble" or "quad"`)
		op     = flag.String("op", "", `optional binary operation: "add", "sub", "mul", "div", "pow"`)
		rhs    = flag.String("rhs", "", "right-hand operand for -op")
		format = flag.String("format", "", "bigdouble format verb (see bigdouble.Value.Format); ignored for quad")
		debug  = flag.Bool("debug", false, "install a trace-level debug logger on sentinel saturation")
	)
	flag.Parse()

	logger := xflog.New(os.Stderr)
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		// stderr is redirected to a file or pipe: fall back to a plain,
		// non-colored writer so logs stay greppable.
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	if *debug {
		hook := xflog.Hook(logger)
		bigdouble.SetDebugLogger(hook)
		quad.SetDebugLogger(hook)
	}

	args := flag.Args()
	if len(args) != 1 {
		logger.Error().Msg("expected exactly one numeric literal argument")
		flag.Usage()
		os.Exit(2)
	}

	var err error
	switch *engine {
	case "bigdouble":
		err = runBigDouble(logger, args[0], *op, *rhs, *format)
	case "quad":
		err = runQuad(logger, args[0], *op, *rhs)
	default:
		err = fmt.Errorf("unknown -engine %q (want bigdouble or quad)", *engine)
	}
	if err != nil {
		logger.Error().Err(err).Msg("xfcalc failed")
		os.Exit(1)
	}
}

func runBigDouble(logger zerolog.Logger, lit, op, rhsLit, format string) error {
	v, err := bigdouble.Parse(lit)
	if err != nil {
		return err
	}
	if op != "" {
		if rhsLit == "" {
			return fmt.Errorf("-op %q requires -rhs", op)
		}
		rhs, err := bigdouble.Parse(rhsLit)
		if err != nil {
			return err
		}
		v, err = applyBigDouble(op, v, rhs)
		if err != nil {
			return err
		}
	}
	logger.Info().Str("engine", "bigdouble").Str("exact", v.String()).Msg("result")
	if format != "" {
		formatted, err := v.Format(format)
		if err != nil {
			return err
		}
		fmt.Println(formatted)
		return nil
	}
	fmt.Println(v.String())
	return nil
}

func applyBigDouble(op string, a, b bigdouble.Value) (bigdouble.Value, error) {
	switch op {
	case "add":
		return bigdouble.Add(a, b), nil
	case "sub":
		return bigdouble.Sub(a, b), nil
	case "mul":
		return bigdouble.Mul(a, b), nil
	case "div":
		return bigdouble.Div(a, b), nil
	case "pow":
		return bigdouble.Pow(a, b.Float64()), nil
	default:
		return bigdouble.Value{}, fmt.Errorf("unknown -op %q", op)
	}
}

func runQuad(logger zerolog.Logger, lit, op, rhsLit string) error {
	v, err := quad.Parse(lit)
	if err != nil {
		return err
	}
	if op != "" {
		if rhsLit == "" {
			return fmt.Errorf("-op %q requires -rhs", op)
		}
		rhs, err := quad.Parse(rhsLit)
		if err != nil {
			return err
		}
		v, err = applyQuad(op, v, rhs)
		if err != nil {
			return err
		}
	}
	logger.Info().Str("engine", "quad").Str("hex", quad.HexExponential(v)).Msg("result")
	fmt.Println(quad.ScientificApproximate(v))
	return nil
}

func applyQuad(op string, a, b quad.Value) (quad.Value, error) {
	switch op {
	case "add":
		return quad.Add(a, b), nil
	case "sub":
		return quad.Sub(a, b), nil
	case "mul":
		return quad.Mul(a, b), nil
	case "div":
		return quad.Div(a, b), nil
	case "pow":
		return quad.Pow(a, b.Float64()), nil
	default:
		return quad.Value{}, fmt.Errorf("unknown -op %q", op)
	}
}
