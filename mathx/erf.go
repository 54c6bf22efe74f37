// Copyright 2024 The Gaussian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// An Erf approximates the Gauss error function
//
//	erf(x) = 2/√π ∫₀ˣ e^(−t²) dt.
//
// Implementations must return exactly 0 at 0 and be odd
// (erf(-x) = -erf(x)). Except where noted, they saturate to ±1 as
// x → ±Inf. The approximations in this package are interchangeable;
// they trade accuracy against evaluation cost.
type Erf func(x float64) float64

// ErfChebyshev approximates erf(x) by a Chebyshev rational
// approximation with absolute error below 1.2e-7. This is the default
// strategy throughout the package.
//
// It evaluates a degree-9 polynomial in t = 2/(2+|x|) under a
// e^(-x²) envelope and restores the sign of x.
func ErfChebyshev(x float64) float64 {
	if x == 0 {
		// The rounded coefficients cancel the envelope at t = 1
		// only to ~3e-8.
		return 0
	}
	z := math.Abs(x)
	t := 2 / (2 + z)
	r := t * math.Exp(-z*z-1.26551223+t*(1.00002368+t*(0.37409196+
		t*(0.09678418+t*(-0.18628806+t*(0.27886807+t*(-1.13520398+
			t*(1.48851587+t*(-0.82215223+t*0.17087277)))))))))
	if x < 0 {
		return r - 1
	}
	return 1 - r
}

// DefaultTaylorDegree is the canonical truncation degree for ErfTaylor.
// Earlier releases of this library defaulted to 15; degree 40 widens
// the accurate range to roughly |x| ≤ 3.
const DefaultTaylorDegree = 40

// ErfTaylor approximates erf(x) by the truncated Maclaurin series
//
//	erf(x) = 2/√π Σₖ (−1)ᵏ x^(2k+1) / (k!·(2k+1)),  k = 0..degree.
//
// Accuracy improves with degree up to a plateau, but a finite
// truncation diverges for large |x|: at degree 40 the series is only
// trustworthy for roughly |x| ≤ 3 and does not saturate to ±1.
func ErfTaylor(x float64, degree int) float64 {
	sum := 0.0
	for k := 0; k <= degree; k++ {
		term := math.Pow(x, float64(2*k)) / (factorial(k) * float64(2*k+1))
		if k%2 == 1 {
			term = -term
		}
		sum += term
	}
	return 2 / math.SqrtPi * x * sum
}

// ErfTaylorDegree binds a truncation degree, yielding an Erf that can
// be injected wherever one is expected.
func ErfTaylorDegree(degree int) Erf {
	return func(x float64) float64 {
		return ErfTaylor(x, degree)
	}
}

// ErfVazquezLeal approximates erf(x) by the Vazquez-Leal closed form
//
//	tanh(11.0017·x − 55.5·atan(0.17790·x))
//
// with relative error below 1.88e-4. The tanh envelope saturates to
// ±1 naturally.
func ErfVazquezLeal(x float64) float64 {
	return math.Tanh(11.0017*x - 55.5*math.Atan(0.17790*x))
}

// Soranzo-form coefficients, fitted by minimax over (0, 7].
const (
	soranzoA = 1.2733247
	soranzoB = 0.1487573
	soranzoC = 0.1476565
	soranzoD = 0.0006595
)

// ErfSoranzo approximates erf(x) by the Soranzo closed form
//
//	√(1 − exp(−x²·(a+b·x²)/(1+c·x²+d·x⁴)))
//
// with relative error below 1.21e-4. The radical is only defined for
// nonnegative arguments, so it is evaluated at |x| and the sign is
// restored via erf(-x) = -erf(x).
func ErfSoranzo(x float64) float64 {
	z := math.Abs(x)
	z2 := z * z
	z4 := z2 * z2
	var r float64
	if math.IsInf(z4, 1) {
		// The rational exponent degenerates to Inf/Inf here.
		r = 1
	} else {
		r = math.Sqrt(1 - math.Exp(-z2*(soranzoA+soranzoB*z2)/(1+soranzoC*z2+soranzoD*z4)))
	}
	if x < 0 {
		return -r
	}
	return r
}
