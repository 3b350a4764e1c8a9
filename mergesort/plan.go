// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mergesort

import "math/bits"

// plan describes the shape of one sort: how many runs the presort phase
// produces and how many merge passes it takes to reduce them to one.
type plan struct {
	runs   int
	passes int
}

// newPlan returns the plan for sorting n elements with runs of at most
// threshold elements. n and threshold must be positive.
func newPlan(n, threshold int) plan {
	runs := (n + threshold - 1) / threshold
	return plan{runs: runs, passes: log2Ceil(runs)}
}

// odd reports whether the plan has an odd number of merge passes. Data moves
// to the other buffer on every pass, so an odd plan must start from the
// scratch buffer to finish in the caller's slice.
func (p plan) odd() bool {
	return p.passes&1 == 1
}

// log2Ceil returns ceil(log2(n)), with log2Ceil(n) == 0 for n <= 1.
func log2Ceil(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}
