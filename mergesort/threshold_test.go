// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mergesort

import (
	"math"
	"testing"
)

func TestSetThreshold(t *testing.T) {
	t.Cleanup(func() { SetThreshold(DefaultThreshold) })

	if got := Threshold(); got != DefaultThreshold {
		t.Fatalf("default Threshold() = %d, want %d", got, DefaultThreshold)
	}
	tests := []struct {
		in, want int
	}{
		{math.MinInt, MinThreshold},
		{-7, MinThreshold},
		{0, MinThreshold},
		{3, MinThreshold},
		{4, 4},
		{13, 13},
		{20, 20},
		{32, 32},
		{33, MaxThreshold},
		{math.MaxInt, MaxThreshold},
	}
	for _, tt := range tests {
		SetThreshold(tt.in)
		if got := Threshold(); got != tt.want {
			t.Errorf("SetThreshold(%d); Threshold() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSorterThreshold(t *testing.T) {
	t.Cleanup(func() { SetThreshold(DefaultThreshold) })

	if got := (Sorter{}).Threshold(); got != DefaultThreshold {
		t.Errorf("zero Sorter threshold = %d, want %d", got, DefaultThreshold)
	}
	if got := New().Threshold(); got != DefaultThreshold {
		t.Errorf("New().Threshold() = %d, want %d", got, DefaultThreshold)
	}
	for in, want := range map[int]int{-1: MinThreshold, 6: 6, 100: MaxThreshold} {
		if got := New(WithThreshold(in)).Threshold(); got != want {
			t.Errorf("New(WithThreshold(%d)).Threshold() = %d, want %d", in, got, want)
		}
	}

	s := New(WithThreshold(8))
	SetThreshold(30)
	if got := s.Threshold(); got != 8 {
		t.Errorf("Sorter threshold changed with the global one: got %d, want 8", got)
	}
	data := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	SortWith(s, data, func(a, b int) int { return a - b })
	for i, v := range data {
		if v != i {
			t.Fatalf("SortWith: got %v", data)
		}
	}
}

func TestSortRangeWith(t *testing.T) {
	s := New(WithThreshold(MinThreshold))
	data := []int{3, 2, 1, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	SortRangeWith(s, data, 3, len(data), func(a, b int) int { return a - b })
	want := []int{3, 2, 1, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("SortRangeWith: got %v, want %v", data, want)
		}
	}
}
