// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sortcheck provides helpers for checking and exercising sorts:
// sortedness and identity predicates and random input generators.
package sortcheck

import "math/rand"

// IsSorted reports whether x[from:to] is in ascending order as determined
// by cmp.
func IsSorted[E any](x []E, from, to int, cmp func(a, b E) int) bool {
	for i := from; i < to-1; i++ {
		if cmp(x[i], x[i+1]) > 0 {
			return false
		}
	}
	return true
}

// IsSortedFunc reports whether all of x is in ascending order as determined
// by cmp.
func IsSortedFunc[E any](x []E, cmp func(a, b E) int) bool {
	return IsSorted(x, 0, len(x), cmp)
}

// Identical reports whether a and b have the same length and their elements
// are pairwise ==. For pointer element types this compares identity, not
// the pointed-to values.
func Identical[E comparable](a, b []E) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// RandomInts returns n ints drawn uniformly from [0, n).
func RandomInts(n int, r *rand.Rand) []int {
	ints := make([]int, n)
	for i := range ints {
		ints[i] = r.Intn(n)
	}
	return ints
}

// A Pair is a key with the position it was generated at. Sorting pairs by
// Key and then checking Seq exposes unstable sorts.
type Pair struct {
	Key, Seq int
}

// ComparePairs orders pairs by Key only.
func ComparePairs(a, b Pair) int {
	switch {
	case a.Key < b.Key:
		return -1
	case a.Key > b.Key:
		return 1
	}
	return 0
}

// RandomPairs returns n pairs with keys drawn from [0, keys) and Seq set
// to the pair's index.
func RandomPairs(n, keys int, r *rand.Rand) []Pair {
	pairs := make([]Pair, n)
	for i := range pairs {
		pairs[i] = Pair{Key: r.Intn(keys), Seq: i}
	}
	return pairs
}

// InOrder reports whether pairs with equal keys in x[from:to] appear in
// increasing Seq order.
func InOrder(x []Pair, from, to int) bool {
	for i := from; i < to-1; i++ {
		if x[i].Key == x[i+1].Key && x[i].Seq >= x[i+1].Seq {
			return false
		}
	}
	return true
}
