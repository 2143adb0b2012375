// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

// Sum returns the sum of vs, or Zero if vs is empty.
func Sum(vs ...Value) Value {
	acc := Zero
	for _, v := range vs {
		acc = Add(acc, v)
	}
	return acc
}

// Product returns the product of vs, or One if vs is empty.
func Product(vs ...Value) Value {
	acc := One
	for _, v := range vs {
		acc = Mul(acc, v)
	}
	return acc
}
