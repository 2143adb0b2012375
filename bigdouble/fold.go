// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigdouble

// Sum folds vs with Add, left to right, starting from Zero. It exists so
// callers that aggregate many small contributions (a game's income
// sources, say) don't each re-implement the same normalize-after-every-add
// loop.
func Sum(vs ...Value) Value {
	total := Zero
	for _, v := range vs {
		total = Add(total, v)
	}
	return total
}

// Product folds vs with Mul, left to right, starting from One.
func Product(vs ...Value) Value {
	total := One
	for _, v := range vs {
		total = Mul(total, v)
	}
	return total
}
