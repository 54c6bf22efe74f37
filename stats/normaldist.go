// Copyright 2024 The Gaussian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/normstats/go-gaussian/mathx"
)

// Validation errors reported by the NormalDist factories and by
// IsNormalDistributed. Callers can test for them with errors.Is.
var (
	ErrMeanNaN = errors.New("stats: mean must not be NaN")
	ErrStdDev  = errors.New("stats: standard deviation must be positive and finite")
	ErrNilErf  = errors.New("stats: nil error function")
)

// A NormalDist is a normal (Gaussian) distribution with a fixed
// error-function approximation backing CDF and InvCDF.
//
// A NormalDist is immutable. The zero value is not usable; construct
// one with NewNormalDist or Standard, or use StdNormal.
type NormalDist struct {
	mu, sigma float64
	erf       mathx.Erf
}

// StdNormal is the standard normal distribution N(0, 1) with the
// default (Chebyshev) error function.
var StdNormal = NormalDist{mu: 0, sigma: 1, erf: mathx.ErfChebyshev}

// NewNormalDist returns the normal distribution with the given mean
// and standard deviation. If an error-function approximation is
// supplied it backs CDF and InvCDF; otherwise mathx.ErfChebyshev is
// used.
//
// It returns a validation error if mu is NaN, if sigma is NaN,
// non-positive, or infinite, or if an explicitly supplied erf is nil.
func NewNormalDist(mu, sigma float64, erf ...mathx.Erf) (NormalDist, error) {
	if err := checkParams(mu, sigma); err != nil {
		return NormalDist{}, err
	}
	e := mathx.Erf(mathx.ErfChebyshev)
	if len(erf) > 0 {
		if erf[0] == nil {
			return NormalDist{}, ErrNilErf
		}
		e = erf[0]
	}
	return NormalDist{mu: mu, sigma: sigma, erf: e}, nil
}

// Standard returns the standard normal distribution N(0, 1),
// optionally backed by the supplied error-function approximation. A
// nil erf falls back to the default.
func Standard(erf ...mathx.Erf) NormalDist {
	d := StdNormal
	if len(erf) > 0 && erf[0] != nil {
		d.erf = erf[0]
	}
	return d
}

func checkParams(mu, sigma float64) error {
	if math.IsNaN(mu) {
		return ErrMeanNaN
	}
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma <= 0 {
		return fmt.Errorf("%w: got %v", ErrStdDev, sigma)
	}
	return nil
}

// Mean returns the mean of the distribution.
func (d NormalDist) Mean() float64 { return d.mu }

// StdDev returns the standard deviation of the distribution.
func (d NormalDist) StdDev() float64 { return d.sigma }

// Variance returns the variance σ².
func (d NormalDist) Variance() float64 { return d.sigma * d.sigma }

// Standardize maps x to the standard normal scale: (x - mean) / stddev.
func (d NormalDist) Standardize(x float64) float64 {
	return (x - d.mu) / d.sigma
}

func (d NormalDist) PDF(x float64) float64 {
	z := d.Standardize(x)
	return math.Exp(-z*z/2) / (d.sigma * math.Sqrt(2*math.Pi))
}

func (d NormalDist) CDF(x float64) float64 {
	return (1 + d.erf(d.Standardize(x)/math.Sqrt2)) / 2
}

// InvCDF returns the x such that CDF(x) = p, up to the combined error
// of the distribution's error function and its inverse refinement.
// Out-of-domain p saturates per mathx.InvErfc rather than producing
// infinities.
func (d NormalDist) InvCDF(p float64) float64 {
	return d.InvCDFFunc(p, mathx.ErfcinvWith(d.erf))
}

// InvCDFFunc is InvCDF with a caller-supplied inverse complementary
// error function.
func (d NormalDist) InvCDFFunc(p float64, erfcinv mathx.InvErfc) float64 {
	return d.mu - d.sigma*math.Sqrt2*erfcinv(2*p)
}

// Between returns the probability mass on the interval
// (start, end]. It is exactly 0 when start >= end.
func (d NormalDist) Between(start, end float64) float64 {
	if start >= end {
		return 0
	}
	return d.CDF(end) - d.CDF(start)
}

// Bounds returns the ±3 sigma interval, which covers all but ~0.3% of
// the distribution's weight.
func (d NormalDist) Bounds() (float64, float64) {
	return d.mu - 3*d.sigma, d.mu + 3*d.sigma
}

// Rand returns a sample drawn from the distribution using the
// Marsaglia polar method.
func (d NormalDist) Rand() float64 {
	return d.rand(rand.Float64)
}

// RandFrom is Rand drawing its uniform variates from rng.
func (d NormalDist) RandFrom(rng *rand.Rand) float64 {
	return d.rand(rng.Float64)
}

func (d NormalDist) rand(uniform func() float64) float64 {
	// Rejection sampling on the unit disk. The loop is unbounded;
	// each round accepts with probability π/4.
	for {
		u := 2*uniform() - 1
		v := 2*uniform() - 1
		r := u*u + v*v
		if r <= 0 || r >= 1 {
			continue
		}
		return d.mu + d.sigma*v*math.Sqrt(-2*math.Log(r)/r)
	}
}
