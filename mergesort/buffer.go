// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mergesort

// Slot indices of a buffers value.
const (
	callerSlot  = 0
	scratchSlot = 1
)

// buffers is the double buffer a sort bounces its runs between. Slot 0 is
// the caller's slice, addressed from the start of the sorted range; slot 1
// is a scratch copy of that range, addressed from zero. src names the slot
// currently read by merge passes; the other slot is written.
type buffers[E any] struct {
	data  [2][]E
	off   [2]int
	src   int
	swaps int
}

// newBuffers allocates the scratch slot for x[from:from+n] and assigns the
// initial roles. When startScratch is set the scratch slot is the first
// source, otherwise the caller's slice is.
func newBuffers[E any](x []E, from, n int, startScratch bool) *buffers[E] {
	scratch := make([]E, n)
	copy(scratch, x[from:from+n])
	b := &buffers[E]{
		data: [2][]E{callerSlot: x, scratchSlot: scratch},
		off:  [2]int{callerSlot: from, scratchSlot: 0},
		src:  callerSlot,
	}
	if startScratch {
		b.src = scratchSlot
	}
	return b
}

func (b *buffers[E]) source() ([]E, int) {
	return b.data[b.src], b.off[b.src]
}

func (b *buffers[E]) target() ([]E, int) {
	t := b.src ^ 1
	return b.data[t], b.off[t]
}

// swap exchanges the source and target roles. No elements move.
func (b *buffers[E]) swap() {
	b.src ^= 1
	b.swaps++
}
