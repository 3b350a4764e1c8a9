// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timing summarizes repeated timing measurements.
package timing

// References:
//
// Hyndman, Rob J.; Fan, Yanan (November 1996).
// "Sample Quantiles in Statistical Packages".
// American Statistician. 50 (4).

import (
	"math"
	"time"

	"github.com/sortlab/bottomup/mergesort"
)

// A Summary describes a set of durations.
type Summary struct {
	N      int           `json:"n"`
	Mean   time.Duration `json:"mean"`
	StdDev time.Duration `json:"stddev"`
	Min    time.Duration `json:"min"`
	Median time.Duration `json:"median"`
	P90    time.Duration `json:"p90"`
	Max    time.Duration `json:"max"`
}

// Summarize returns the summary of ds. It panics if ds is empty.
func Summarize(ds []time.Duration) Summary {
	values := make([]float64, len(ds))
	for i, d := range ds {
		values[i] = float64(d)
	}
	mean, stddev := MeanAndStdDev(values)
	q := Quantiles(values, 0, 0.5, 0.9, 1)
	return Summary{
		N:      len(ds),
		Mean:   time.Duration(mean),
		StdDev: time.Duration(stddev),
		Min:    time.Duration(q[0]),
		Median: time.Duration(q[1]),
		P90:    time.Duration(q[2]),
		Max:    time.Duration(q[3]),
	}
}

// MeanAndStdDev returns the arithmetic mean and sample standard deviation
// of values; the standard deviation of a single value is 0.
//
// MeanAndStdDev panics if values is empty.
func MeanAndStdDev(values []float64) (float64, float64) {
	if len(values) == 0 {
		panic("mean: empty slice")
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	if len(values) == 1 {
		return mean, 0
	}
	squaredDiffs := 0.0
	for _, v := range values {
		diff := v - mean
		squaredDiffs += diff * diff
	}
	return mean, math.Sqrt(squaredDiffs / float64(len(values)-1))
}

// Quantiles returns the requested quantiles of values using the "inclusive"
// method (R-7 in Hyndman and Fan). A quantile of 0 is the minimum and 1 the
// maximum.
//
// Quantiles does not modify values. It panics if values is empty or a
// quantile is outside [0, 1].
func Quantiles(values []float64, quantiles ...float64) []float64 {
	if len(values) == 0 {
		panic("quantiles: empty slice")
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	mergesort.Sort(sorted)

	res := make([]float64, len(quantiles))
	for i, q := range quantiles {
		if !(0 <= q && q <= 1) {
			panic("quantile must be contained in the interval [0, 1]")
		}
		h := float64(len(sorted)-1) * q
		lo, hi := int(math.Floor(h)), int(math.Ceil(h))
		res[i] = sorted[lo] + (h-math.Floor(h))*(sorted[hi]-sorted[lo])
	}
	return res
}
