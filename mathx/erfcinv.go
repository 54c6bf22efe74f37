// Copyright 2024 The Gaussian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// An InvErfc approximates the inverse complementary error function:
// for p in (0, 2) it returns the x such that erfc(x) = 1 - erf(x) = p.
// Outside that interval implementations saturate to finite sentinels
// rather than diverge.
type InvErfc func(p float64) float64

// twoOverSqrtPi is erf'(x)/e^(-x²), the leading constant of the error
// function.
const twoOverSqrtPi = 1.1283791670955126

// Erfcinv approximates the inverse complementary error function using
// ErfChebyshev for the refinement steps. See ErfcinvWith.
func Erfcinv(p float64) float64 {
	return erfcinv(p, ErfChebyshev)
}

// ErfcinvWith returns an InvErfc whose refinement steps evaluate erf.
// The accuracy of the result is bounded below by the accuracy of the
// supplied approximation.
func ErfcinvWith(erf Erf) InvErfc {
	return func(p float64) float64 {
		return erfcinv(p, erf)
	}
}

// erfcinv computes a rational initial guess sharpened by exactly two
// Halley steps. Two steps are a fixed accuracy/cost trade-off, not a
// convergence test.
//
// p ≥ 2 and p ≤ 0 correspond to x = -Inf and x = +Inf; they return the
// finite sentinels ∓100 so that downstream arithmetic (for example
// scaling by a standard deviation) stays finite.
func erfcinv(p float64, erf Erf) float64 {
	if p >= 2 {
		return -100
	}
	if p <= 0 {
		return 100
	}
	// Fold onto (0, 1] using erfc(-x) = 2 - erfc(x).
	pp := p
	if p >= 1 {
		pp = 2 - p
	}
	t := math.Sqrt(-2 * math.Log(pp/2))
	x := -0.70711 * ((2.30753+t*0.27061)/(1+t*(0.99229+t*0.04481)) - t)
	for j := 0; j < 2; j++ {
		err := (1 - erf(x)) - pp
		x += err / (twoOverSqrtPi*math.Exp(-x*x) - x*err)
	}
	if p >= 1 {
		return -x
	}
	return x
}
