// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The bumsort command times the bottom-up merge sort against the standard
// library's stable sort on the same random input and checks that both
// produce identical output.
//
// Usage:
//
//	bumsort [--size n] [--seed s] [--trials t] [--threshold k] [--from i] [--to j] [--logger name] [--json] [--trace]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/sortlab/bottomup/internal/report"
	"github.com/sortlab/bottomup/mergesort"
	"github.com/urfave/cli"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/xerrors"
)

var (
	sizeFlag = cli.IntFlag{
		Name:  "size",
		Usage: "Number of random ints to sort",
		Value: 2000000,
	}
	seedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "Seed for the random input; defaults to the current time",
	}
	trialsFlag = cli.IntFlag{
		Name:  "trials",
		Usage: "Number of times each algorithm sorts the input",
		Value: 1,
	}
	thresholdFlag = cli.IntFlag{
		Name:  "threshold",
		Usage: fmt.Sprintf("Insertion sort threshold, clamped to [%d, %d]", mergesort.MinThreshold, mergesort.MaxThreshold),
		Value: mergesort.DefaultThreshold,
	}
	fromFlag = cli.IntFlag{
		Name:  "from",
		Usage: "Start of the sorted range",
	}
	toFlag = cli.IntFlag{
		Name:  "to",
		Usage: "End of the sorted range; defaults to --size",
		Value: -1,
	}
	loggerFlag = cli.StringFlag{
		Name:  "logger",
		Usage: "Logging backend: " + strings.Join(report.Backends(), ", "),
		Value: "zap",
	}
	jsonFlag = cli.BoolFlag{
		Name:  "json",
		Usage: "Write a JSON summary to stdout",
	}
	traceFlag = cli.BoolFlag{
		Name:  "trace",
		Usage: "Log a span for the run, each algorithm and each trial",
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "bumsort"
	app.Usage = "Compare the bottom-up merge sort with the standard library's stable sort"
	app.Flags = []cli.Flag{sizeFlag, seedFlag, trialsFlag, thresholdFlag, fromFlag, toFlag, loggerFlag, jsonFlag, traceFlag}
	app.Action = action

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func action(c *cli.Context) error {
	logger, err := report.New(c.String(loggerFlag.Name), os.Stderr)
	if err != nil {
		return err
	}
	r := report.NewReporter(logger)
	defer flush(r, os.Stderr)

	ctx := context.Background()
	tracer := trace.NewNoopTracerProvider().Tracer("")
	if c.Bool(traceFlag.Name) {
		tp := report.NewTracerProvider(logger)
		defer tp.Shutdown(ctx)
		tracer = tp.Tracer("bumsort")
	}

	cfg := config{
		size:      c.Int(sizeFlag.Name),
		seed:      time.Now().UnixNano(),
		trials:    c.Int(trialsFlag.Name),
		threshold: c.Int(thresholdFlag.Name),
		from:      c.Int(fromFlag.Name),
		to:        c.Int(toFlag.Name),
		json:      c.Bool(jsonFlag.Name),
	}
	if c.IsSet(seedFlag.Name) {
		cfg.seed = c.Int64(seedFlag.Name)
	}

	if err := run(ctx, cfg, r, tracer, os.Stdout); err != nil {
		r.Error(err, "benchmark failed")
		return cli.NewExitError("", 1)
	}
	return nil
}

// flush closes r and writes any failure to w.
func flush(r *report.Reporter, w io.Writer) {
	// Syncing a terminal fails with EINVAL; there is nothing to flush.
	if err := r.Close(); err != nil && !xerrors.Is(err, syscall.EINVAL) {
		fmt.Fprintln(w, "flushing log:", err)
	}
}
