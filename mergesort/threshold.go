// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mergesort

// Bounds and default of the insertion sort threshold, the maximum length of
// a run that is presorted with insertion sort before merging starts.
const (
	MinThreshold     = 4
	MaxThreshold     = 32
	DefaultThreshold = 13
)

// threshold is read once at the start of every package-level sort.
//
// It is not synchronized. Calling SetThreshold while another goroutine is
// sorting is a data race; programs that need different thresholds in
// different goroutines should use a Sorter instead.
var threshold = DefaultThreshold

// SetThreshold sets the insertion sort threshold used by the package-level
// sort functions, clamped to [MinThreshold, MaxThreshold]. It only affects
// sorts started after it returns.
func SetThreshold(v int) {
	threshold = clampThreshold(v)
}

// Threshold returns the insertion sort threshold used by the package-level
// sort functions.
func Threshold() int {
	return threshold
}

func clampThreshold(v int) int {
	return max(MinThreshold, min(MaxThreshold, v))
}
