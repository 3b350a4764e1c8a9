// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mergesort implements a stable, non-recursive (bottom-up) merge
// sort over slices.
//
// The range to sort is cut into chunks of at most Threshold elements, each
// chunk is sorted with insertion sort, and then the resulting runs are
// merged pairwise with doubling width until a single run covers the whole
// range. Merging alternates between the caller's slice and one scratch
// buffer of the same length; the buffer that starts as the merge source is
// chosen so that the last pass always writes into the caller's slice.
//
// All sorts in this package are stable: elements that compare equal keep
// their original relative order.
package mergesort

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Sort sorts x in ascending order. It is stable.
// Floating-point NaNs are ordered before other values.
func Sort[S ~[]E, E constraints.Ordered](x S) {
	sortRange(x, 0, len(x), Threshold(), cmp.Compare[E])
}

// SortRange sorts x[from:to] in ascending order, leaving the rest of x
// untouched. It is stable.
func SortRange[S ~[]E, E constraints.Ordered](x S, from, to int) {
	sortRange(x, from, to, Threshold(), cmp.Compare[E])
}

// SortFunc sorts x in ascending order as determined by the cmp function.
// cmp(a, b) should return a negative number when a < b, a positive number
// when a > b and zero when a == b. cmp must be a strict weak ordering.
//
// SortFunc is stable.
func SortFunc[S ~[]E, E any](x S, cmp func(a, b E) int) {
	sortRange(x, 0, len(x), Threshold(), cmp)
}

// SortRangeFunc sorts x[from:to] as determined by the cmp function,
// leaving elements outside the range untouched. It is stable.
//
// The indices are not validated beforehand: an invalid range panics at the
// first out-of-bounds access. See TrySortRangeFunc for a checked variant.
func SortRangeFunc[S ~[]E, E any](x S, from, to int, cmp func(a, b E) int) {
	sortRange(x, from, to, Threshold(), cmp)
}

// sortRange is the driver shared by every entry point. It returns the number
// of merge passes performed.
func sortRange[E any](x []E, from, to, threshold int, cmp func(a, b E) int) int {
	n := to - from
	if n < 2 {
		return 0
	}

	p := newPlan(n, threshold)
	b := newBuffers(x, from, n, p.odd())

	// Presort the initial runs in whichever slot the merge starts from.
	src, off := b.source()
	for i := 0; i < p.runs; i++ {
		lo := off + i*threshold
		insertionSort(src, lo, min(lo+threshold, off+n), cmp)
	}

	runs := p.runs
	for width := threshold; width < n; width <<= 1 {
		if i := mergePass(b, runs, width, n, cmp); i < runs {
			copyOrphan(b, i*width, n)
		}
		runs = (runs + 1) >> 1
		b.swap()
	}
	return b.swaps
}
