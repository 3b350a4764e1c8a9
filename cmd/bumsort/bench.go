// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/sortlab/bottomup/internal/report"
	"github.com/sortlab/bottomup/internal/sortcheck"
	"github.com/sortlab/bottomup/internal/timing"
	"github.com/sortlab/bottomup/mergesort"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/xerrors"
)

// config holds the parameters of one benchmark run.
type config struct {
	size      int
	seed      int64
	trials    int
	threshold int
	from, to  int // to < 0 means size
	json      bool
}

// An algorithm sorts x[from:to] in place.
type algorithm struct {
	name string
	sort func(x []int, from, to int) error
}

func algorithms(threshold int) []algorithm {
	s := mergesort.New(mergesort.WithThreshold(threshold))
	return []algorithm{
		{"mergesort", func(x []int, from, to int) error {
			return mergesort.TrySortRangeWith(s, x, from, to, cmp.Compare[int])
		}},
		{"slices", func(x []int, from, to int) error {
			slices.SortStableFunc(x[from:to], cmp.Compare[int])
			return nil
		}},
	}
}

// summary is the JSON document written with --json.
type summary struct {
	Seed      int64           `json:"seed"`
	Size      int             `json:"size"`
	From      int             `json:"from"`
	To        int             `json:"to"`
	Threshold int             `json:"threshold"`
	Results   []report.Result `json:"results"`
	Identical bool            `json:"identical"`
}

// run sorts the same random input with every algorithm cfg.trials times,
// checks the outputs and reports timings through r. Every algorithm and
// every trial gets a span from tracer. When cfg.json is set a summary is
// also written to out.
func run(ctx context.Context, cfg config, r *report.Reporter, tracer trace.Tracer, out io.Writer) (err error) {
	ctx, span := tracer.Start(ctx, "bumsort")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if cfg.size < 0 {
		return xerrors.Errorf("negative size %d", cfg.size)
	}
	if cfg.trials < 1 {
		return xerrors.Errorf("need at least one trial, got %d", cfg.trials)
	}
	to := cfg.to
	if to < 0 {
		to = cfg.size
	}
	threshold := mergesort.New(mergesort.WithThreshold(cfg.threshold)).Threshold()
	r.Start(cfg.seed, cfg.size, cfg.from, to, threshold)
	span.SetAttributes(
		attribute.Int64("seed", cfg.seed),
		attribute.Int("size", cfg.size),
		attribute.Int("threshold", threshold),
	)

	input := sortcheck.RandomInts(cfg.size, rand.New(rand.NewSource(cfg.seed)))
	sum := summary{Seed: cfg.seed, Size: cfg.size, From: cfg.from, To: to, Threshold: threshold, Identical: true}

	var first []int
	for _, alg := range algorithms(cfg.threshold) {
		res, x, err := runAlgorithm(ctx, r, tracer, alg, input, cfg.from, to, cfg.trials)
		if err != nil {
			return err
		}
		r.Result(res)
		sum.Results = append(sum.Results, res)

		if first == nil {
			first = x
			continue
		}
		identical := sortcheck.Identical(first, x)
		r.Compare(sum.Results[0].Algorithm, alg.name, identical)
		sum.Identical = sum.Identical && identical
	}

	if cfg.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "\t")
		if err := enc.Encode(sum); err != nil {
			return err
		}
	}
	if !sum.Identical {
		return xerrors.New("sort outputs differ")
	}
	return nil
}

// runAlgorithm times trials sorts of fresh copies of input with alg, logs
// each trial through r and returns the result together with the output of the last trial.
func runAlgorithm(ctx context.Context, r *report.Reporter, tracer trace.Tracer, alg algorithm, input []int, from, to, trials int) (res report.Result, x []int, err error) {
	ctx, span := tracer.Start(ctx, alg.name, trace.WithAttributes(attribute.String("algorithm", alg.name)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	res.Algorithm = alg.name
	durations := make([]time.Duration, 0, trials)
	for i := 1; i <= trials; i++ {
		x = slices.Clone(input)
		_, tspan := tracer.Start(ctx, "trial")
		start := time.Now()
		err := alg.sort(x, from, to)
		t := report.Trial{
			Algorithm: alg.name,
			Size:      to - from,
			Trial:     i,
			Duration:  time.Since(start),
		}
		if err != nil {
			tspan.RecordError(err)
			tspan.End()
			return res, nil, xerrors.Errorf("%s: %w", alg.name, err)
		}
		t.Sorted = sortcheck.IsSorted(x, from, to, cmp.Compare[int])
		tspan.SetAttributes(
			attribute.String("algorithm", t.Algorithm),
			attribute.Int("size", t.Size),
			attribute.Int("trial", t.Trial),
			attribute.Bool("sorted", t.Sorted),
		)
		tspan.End()
		r.Trial(t)
		if !t.Sorted {
			return res, nil, xerrors.Errorf("%s: trial %d left the range unsorted", alg.name, i)
		}
		res.Trials = append(res.Trials, t)
		durations = append(durations, t.Duration)
	}
	res.Summary = timing.Summarize(durations)
	return res, x, nil
}
