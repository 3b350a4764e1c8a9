// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"time"

	"github.com/sortlab/bottomup/internal/timing"
)

// A Trial is one timed sort.
type Trial struct {
	Algorithm string        `json:"algorithm"`
	Size      int           `json:"size"`
	Trial     int           `json:"trial"`
	Duration  time.Duration `json:"duration"`
	Sorted    bool          `json:"sorted"`
}

// A Result summarizes all trials of one algorithm.
type Result struct {
	Algorithm string         `json:"algorithm"`
	Trials    []Trial        `json:"trials"`
	Summary   timing.Summary `json:"summary"`
}

// A Reporter logs benchmark progress and results.
type Reporter struct {
	log Logger
}

// NewReporter returns a Reporter writing through l.
func NewReporter(l Logger) *Reporter {
	return &Reporter{log: l}
}

// Start records the benchmark parameters.
func (r *Reporter) Start(seed int64, size, from, to, threshold int) {
	r.log.Info("start", "seed", seed, "size", size, "from", from, "to", to, "threshold", threshold)
}

// Trial records a single trial.
func (r *Reporter) Trial(t Trial) {
	r.log.Info("trial", "algorithm", t.Algorithm, "size", t.Size, "trial", t.Trial, "duration", t.Duration, "sorted", t.Sorted)
}

// Result records the summary of one algorithm.
func (r *Reporter) Result(res Result) {
	s := res.Summary
	r.log.Info("summary", "algorithm", res.Algorithm, "n", s.N,
		"mean", s.Mean, "stddev", s.StdDev, "min", s.Min, "median", s.Median, "p90", s.P90, "max", s.Max)
}

// Compare records whether the outputs of two algorithms were identical.
func (r *Reporter) Compare(a, b string, identical bool) {
	r.log.Info("compare", "a", a, "b", b, "identical", identical)
}

// Error records a failure.
func (r *Reporter) Error(err error, msg string) {
	r.log.Error(err, msg)
}

// Close flushes the underlying logger.
func (r *Reporter) Close() error {
	return r.log.Sync()
}
