// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mergesort

// A Sorter carries sort configuration explicitly instead of through the
// package-level threshold. The zero Sorter uses DefaultThreshold. Sorters
// are immutable and may be shared between goroutines.
type Sorter struct {
	threshold int
}

// An Option configures a Sorter.
type Option func(*Sorter)

// WithThreshold sets the insertion sort threshold, clamped to
// [MinThreshold, MaxThreshold].
func WithThreshold(v int) Option {
	return func(s *Sorter) {
		s.threshold = clampThreshold(v)
	}
}

// New returns a Sorter configured by opts.
func New(opts ...Option) Sorter {
	s := Sorter{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Threshold returns the insertion sort threshold of s.
func (s Sorter) Threshold() int {
	if s.threshold == 0 {
		return DefaultThreshold
	}
	return s.threshold
}

// SortWith sorts x as determined by the cmp function using the
// configuration of s. It is stable.
func SortWith[S ~[]E, E any](s Sorter, x S, cmp func(a, b E) int) {
	sortRange(x, 0, len(x), s.Threshold(), cmp)
}

// SortRangeWith sorts x[from:to] as determined by the cmp function using
// the configuration of s. It is stable.
func SortRangeWith[S ~[]E, E any](s Sorter, x S, from, to int, cmp func(a, b E) int) {
	sortRange(x, from, to, s.Threshold(), cmp)
}

// TrySortRangeWith is the checked form of SortRangeWith; see
// TrySortRangeFunc.
func TrySortRangeWith[S ~[]E, E any](s Sorter, x S, from, to int, cmp func(a, b E) int) error {
	return trySortRange(x, from, to, s.Threshold(), cmp)
}
