// Copyright 2024 The Gaussian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// threeSigma holds the shares of a normal population within μ±σ,
// μ±2σ, and μ±3σ, evaluated via the default error function.
var threeSigma = [3]float64{
	0.6826894772086507,
	0.954499740219751,
	0.9973002038534888,
}

// DefaultFitTolerance is the absolute tolerance used by
// IsNormalDistributed when none is supplied.
const DefaultFitTolerance = 0.005

// IsNormalDistributed reports whether cdf behaves like the cumulative
// distribution function of a normal distribution with the given mean
// and standard deviation, by checking the one, two, and three sigma
// band probabilities against the normal shares within an absolute
// tolerance (DefaultFitTolerance if none is supplied). The first band
// outside tolerance decides the answer.
//
// mu and sigma are validated exactly like NewNormalDist's parameters.
func IsNormalDistributed(cdf func(float64) float64, mu, sigma float64, tolerance ...float64) (bool, error) {
	if err := checkParams(mu, sigma); err != nil {
		return false, err
	}
	tol := DefaultFitTolerance
	if len(tolerance) > 0 {
		tol = tolerance[0]
	}
	for i, want := range threeSigma {
		k := float64(i + 1)
		got := cdf(mu+k*sigma) - cdf(mu-k*sigma)
		if math.Abs(got-want) > tol {
			return false, nil
		}
	}
	return true, nil
}
