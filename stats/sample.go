// Copyright 2024 The Gaussian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
)

// Sample is a collection of possibly unsorted measurements.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Sum returns the sum of the sample, or 0 for an empty sample.
func (s Sample) Sum() float64 {
	sum := 0.0
	for _, x := range s.Xs {
		sum += x
	}
	return sum
}

// Mean returns the arithmetic mean of the sample, or NaN for an empty
// sample.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return s.Sum() / float64(len(s.Xs))
}

// GeoMean returns the geometric mean of the sample. It returns NaN if
// the sample is empty or contains a non-positive value.
func (s Sample) GeoMean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	logSum := 0.0
	for _, x := range s.Xs {
		if x <= 0 {
			return nan
		}
		logSum += math.Log(x)
	}
	return math.Exp(logSum / float64(len(s.Xs)))
}

// Variance returns the sample variance (with Bessel's correction), or
// NaN if the sample has fewer than two values.
func (s Sample) Variance() float64 {
	if len(s.Xs) < 2 {
		return nan
	}
	mean := s.Mean()
	sum := 0.0
	for _, x := range s.Xs {
		d := x - mean
		sum += d * d
	}
	return sum / float64(len(s.Xs)-1)
}

// StdDev returns the sample standard deviation.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Bounds returns the minimum and maximum values of the sample, or
// (NaN, NaN) for an empty sample.
func (s Sample) Bounds() (min, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	min, max = s.Xs[0], s.Xs[0]
	for _, x := range s.Xs[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return
}

// Quantile returns the qth quantile of the sample using the
// median-unbiased estimator (R-8): linear interpolation at rank
// 1/3 + q·(N + 1/3). q outside [0, 1] is clamped to the extreme
// values. It returns NaN for an empty sample.
func (s Sample) Quantile(q float64) float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	xs := s.Xs
	if !s.Sorted {
		xs = s.Copy().Sort().Xs
	}

	N := float64(len(xs))
	n := 1/3.0 + q*(N+1/3.0)
	kf, frac := math.Modf(n)
	k := int(kf)
	if k <= 0 {
		return xs[0]
	} else if k >= len(xs) {
		return xs[len(xs)-1]
	}
	return xs[k-1] + frac*(xs[k]-xs[k-1])
}

// EmpiricalCDF returns the fraction of the sample that is <= x, or
// NaN for an empty sample.
func (s Sample) EmpiricalCDF(x float64) float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	if !s.Sorted {
		count := 0
		for _, v := range s.Xs {
			if v <= x {
				count++
			}
		}
		return float64(count) / float64(len(s.Xs))
	}
	i := sort.Search(len(s.Xs), func(i int) bool { return s.Xs[i] > x })
	return float64(i) / float64(len(s.Xs))
}

// Copy returns a copy of the Sample with a fresh Xs slice.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	return &Sample{xs, s.Sorted}
}

// Sort sorts the sample in place and returns it for chaining.
func (s *Sample) Sort() *Sample {
	if !s.Sorted {
		sort.Float64s(s.Xs)
		s.Sorted = true
	}
	return s
}
