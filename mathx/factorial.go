// Copyright 2024 The Gaussian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"fmt"
	"math"
)

// factorial16 is (16k)! for k = 0..10. 160! is the largest block below
// the float64 overflow point at 171!.
var factorial16 = [11]float64{
	1,
	20922789888000,
	2.631308369336935e+35,
	1.2413915592536073e+61,
	1.2688693218588417e+89,
	7.156945704626381e+118,
	9.916779348709496e+149,
	1.974506857221074e+182,
	3.856204823625804e+215,
	5.5502938327393044e+249,
	4.7147236359920616e+284,
}

// Factorial returns floor(x)! as a float64. It returns NaN for a NaN
// argument, +Inf when floor(x) > 170 (the largest factorial
// representable in a float64 is 170!), and an error for negative x.
//
// The result is computed from a table of factorials at multiples of 16
// extended by direct multiplication, so the cost is bounded by 15
// multiplications.
func Factorial(x float64) (float64, error) {
	if math.IsNaN(x) {
		return math.NaN(), nil
	}
	if x < 0 {
		return 0, fmt.Errorf("mathx: factorial of negative number %v", x)
	}
	// Compare before converting: floor(x) may not fit in an int.
	if math.Floor(x) > 170 {
		return math.Inf(1), nil
	}
	return factorial(int(math.Floor(x))), nil
}

// factorial is Factorial for an int in [0, 170].
func factorial(n int) float64 {
	if n > 170 {
		return math.Inf(1)
	}
	r := factorial16[n/16]
	for i := n/16*16 + 1; i <= n; i++ {
		r *= float64(i)
	}
	return r
}
