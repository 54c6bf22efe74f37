// Copyright 2024 The Gaussian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestIsNormalDistributed(t *testing.T) {
	// The exact normal CDF passes for its own parameters.
	ref := distuv.Normal{Mu: 0, Sigma: 1}
	ok, err := IsNormalDistributed(ref.CDF, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("exact standard normal CDF should pass")
	}

	shifted := distuv.Normal{Mu: 7, Sigma: 0.5}
	ok, err = IsNormalDistributed(shifted.CDF, 7, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("exact N(7, 0.5) CDF should pass")
	}

	// A normal CDF checked against the wrong parameters fails.
	ok, err = IsNormalDistributed(ref.CDF, 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("standard normal CDF should fail for sigma=2")
	}

	// The library's own approximated CDF stays within the default
	// tolerance.
	ok, err = IsNormalDistributed(StdNormal.CDF, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("StdNormal.CDF should pass")
	}
}

func TestIsNormalDistributedUniform(t *testing.T) {
	uniform := func(x float64) float64 {
		const a, b = -3.5, 3.5
		switch {
		case x < a:
			return 0
		case x > b:
			return 1
		}
		return (x - a) / (b - a)
	}
	ok, err := IsNormalDistributed(uniform, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("uniform CDF should fail the three-sigma check")
	}

	// The one-sigma band of this uniform is off by ~0.4, so an
	// absurdly loose tolerance accepts it.
	ok, err = IsNormalDistributed(uniform, 0, 1, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("uniform CDF should pass with tolerance 0.5")
	}
}

func TestIsNormalDistributedEmpirical(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	s := Sample{Xs: make([]float64, 50000)}
	for i := range s.Xs {
		s.Xs[i] = StdNormal.RandFrom(rng)
	}
	s.Sort()
	ok, err := IsNormalDistributed(s.EmpiricalCDF, 0, 1, 0.05)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("empirical CDF of normal samples should pass with tolerance 0.05")
	}
}

func TestIsNormalDistributedValidation(t *testing.T) {
	cdf := StdNormal.CDF
	if _, err := IsNormalDistributed(cdf, math.NaN(), 1); !errors.Is(err, ErrMeanNaN) {
		t.Errorf("NaN mean: expected ErrMeanNaN, got %v", err)
	}
	for _, sigma := range []float64{0, -2, math.NaN()} {
		if _, err := IsNormalDistributed(cdf, 0, sigma); !errors.Is(err, ErrStdDev) {
			t.Errorf("sigma %v: expected ErrStdDev, got %v", sigma, err)
		}
	}
}
