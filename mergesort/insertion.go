// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mergesort

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// InsertionSort sorts x[from:to] in ascending order using insertion sort.
// It is stable and runs in O(n²) time, so it is only suited to short ranges.
func InsertionSort[S ~[]E, E constraints.Ordered](x S, from, to int) {
	insertionSort(x, from, to, cmp.Compare[E])
}

// InsertionSortFunc sorts x[from:to] as determined by the cmp function using
// insertion sort. It is stable.
func InsertionSortFunc[S ~[]E, E any](x S, from, to int, cmp func(a, b E) int) {
	insertionSort(x, from, to, cmp)
}

func insertionSort[E any](x []E, from, to int, cmp func(a, b E) int) {
	for i := from + 1; i < to; i++ {
		curr := x[i]
		j := i
		// Only strictly greater predecessors move, so equal elements stay put.
		for ; j > from && cmp(x[j-1], curr) > 0; j-- {
			x[j] = x[j-1]
		}
		x[j] = curr
	}
}
