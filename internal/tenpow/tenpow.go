// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tenpow provides a precomputed table of 10**k as binary64 values,
// avoiding the systematic imprecision of computing math.Pow(10, k) at
// runtime for large |k| (see spec.md §3.3 / §4.1.2).
//
// The table spans k in [Min, Max], the widest window that keeps every
// entry either exactly representable or the correctly-rounded binary64
// approximation of the decimal literal "1e"+k, obtained by routing the
// construction through strconv.ParseFloat rather than repeated
// multiplication.
package tenpow

import (
	"strconv"
	"sync"
)

const (
	// Min and Max bound the table's domain. They match binary64's decimal
	// exponent range: math.SmallestNonzeroFloat64 is ~4.9e-324 and
	// math.MaxFloat64 is ~1.8e308.
	Min = -323
	Max = 308
)

var (
	once  sync.Once
	table [Max - Min + 1]float64
)

func build() {
	for k := Min; k <= Max; k++ {
		f, err := strconv.ParseFloat("1e"+strconv.Itoa(k), 64)
		if err != nil {
			// Every k in [Min, Max] parses cleanly; a failure here would be
			// a bug in the bounds above, not a runtime condition.
			panic("tenpow: " + err.Error())
		}
		table[k-Min] = f
	}
}

// init eagerly builds the table at package load, relying on Go's
// package-initialization ordering guarantee.
func init() {
	build()
}

// Rebuild runs build behind sync.Once: only the first call in a process
// rebuilds the table (with the same values init already stored), and later
// calls do nothing.
func Rebuild() {
	once.Do(build)
}

// At returns 10**k for k in [Min, Max]. It panics if k is out of range;
// callers are expected to have already checked against overflow bounds
// before indexing this table.
func At(k int64) float64 {
	if k < Min || k > Max {
		panic("tenpow: exponent out of range")
	}
	return table[k-Min]
}

// InRange reports whether k falls within the table's domain.
func InRange(k int64) bool {
	return k >= Min && k <= Max
}
