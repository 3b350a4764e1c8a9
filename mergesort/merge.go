// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mergesort

// mergePass merges the runs of the given width in the source slot pairwise
// into the target slot. n is the length of the sorted range and runs the
// number of runs in it. mergePass returns the index of the first run that
// was not merged; it is less than runs only when runs is odd.
func mergePass[E any](b *buffers[E], runs, width, n int, cmp func(a, b E) int) int {
	src, srcOff := b.source()
	dst, dstOff := b.target()
	end := srcOff + n

	i := 0
	for ; i < runs-1; i += 2 {
		left := srcOff + i*width
		mid := left + width
		right := min(mid+width, end)
		merge(src, dst, left, mid, right, dstOff+i*width, cmp)
	}
	return i
}

// copyOrphan copies the unpaired trailing run starting at relative
// position start from the source slot to the same position in the target
// slot. The run is already sorted; it only has to be present in the target
// for the next pass.
func copyOrphan[E any](b *buffers[E], start, n int) {
	src, srcOff := b.source()
	dst, dstOff := b.target()
	copy(dst[dstOff+start:dstOff+n], src[srcOff+start:srcOff+n])
}

// merge merges the sorted runs src[left:mid] and src[mid:right] into dst
// starting at index at. On ties the element of the left run is emitted
// first, which keeps the merge stable.
func merge[E any](src, dst []E, left, mid, right, at int, cmp func(a, b E) int) {
	i, j := left, mid
	for i < mid && j < right {
		if cmp(src[j], src[i]) < 0 {
			dst[at] = src[j]
			j++
		} else {
			dst[at] = src[i]
			i++
		}
		at++
	}
	at += copy(dst[at:], src[i:mid])
	copy(dst[at:], src[j:right])
}
