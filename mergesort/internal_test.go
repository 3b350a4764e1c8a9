// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mergesort

import (
	"cmp"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/sortlab/bottomup/internal/sortcheck"
)

func TestNewPlan(t *testing.T) {
	tests := []struct {
		n, threshold int
		want         plan
		odd          bool
	}{
		{1, 13, plan{runs: 1, passes: 0}, false},
		{13, 13, plan{runs: 1, passes: 0}, false},
		{14, 13, plan{runs: 2, passes: 1}, true},
		{26, 13, plan{runs: 2, passes: 1}, true},
		{27, 13, plan{runs: 3, passes: 2}, false},
		{52, 13, plan{runs: 4, passes: 2}, false},
		{53, 13, plan{runs: 5, passes: 3}, true},
		{29, 4, plan{runs: 8, passes: 3}, true},
		{33, 4, plan{runs: 9, passes: 4}, false},
		{2000000, 13, plan{runs: 153847, passes: 18}, false},
	}
	for _, tt := range tests {
		got := newPlan(tt.n, tt.threshold)
		if got != tt.want {
			t.Errorf("newPlan(%d, %d) = %+v, want %+v", tt.n, tt.threshold, got, tt.want)
		}
		if got.odd() != tt.odd {
			t.Errorf("newPlan(%d, %d).odd() = %t, want %t", tt.n, tt.threshold, got.odd(), tt.odd)
		}
	}
}

func TestLog2Ceil(t *testing.T) {
	for n, want := range map[int]int{-1: 0, 0: 0, 1: 0, 2: 1, 3: 2, 4: 2, 5: 3, 8: 3, 9: 4, 1 << 20: 20, 1<<20 + 1: 21} {
		if got := log2Ceil(n); got != want {
			t.Errorf("log2Ceil(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestBuffersRoles(t *testing.T) {
	x := []int{9, 9, 3, 1, 2, 9}

	b := newBuffers(x, 2, 3, false)
	src, off := b.source()
	if &src[0] != &x[0] || off != 2 {
		t.Errorf("even plan: source is not the caller's slice at offset 2")
	}
	dst, off := b.target()
	if diff := gocmp.Diff([]int{3, 1, 2}, dst); diff != "" || off != 0 {
		t.Errorf("even plan: target is not a scratch copy of the range (-want +got):\n%s", diff)
	}

	b.swap()
	if src, off = b.source(); &src[0] == &x[0] || off != 0 {
		t.Errorf("after swap: source is not the scratch slot")
	}
	if dst, off = b.target(); &dst[0] != &x[0] || off != 2 {
		t.Errorf("after swap: target is not the caller's slice")
	}
	if b.swaps != 1 {
		t.Errorf("swaps = %d, want 1", b.swaps)
	}

	b = newBuffers(x, 2, 3, true)
	if src, off = b.source(); &src[0] == &x[0] || off != 0 {
		t.Errorf("odd plan: source is not the scratch slot")
	}
}

func TestMerge(t *testing.T) {
	src := []sortcheck.Pair{
		{Key: 0, Seq: -1}, // outside the runs
		{Key: 1, Seq: 0}, {Key: 3, Seq: 1}, {Key: 3, Seq: 2}, {Key: 7, Seq: 3},
		{Key: 3, Seq: 4}, {Key: 3, Seq: 5}, {Key: 4, Seq: 6},
	}
	dst := make([]sortcheck.Pair, 9)
	merge(src, dst, 1, 5, 8, 2, sortcheck.ComparePairs)

	want := []sortcheck.Pair{
		{}, {},
		{Key: 1, Seq: 0}, {Key: 3, Seq: 1}, {Key: 3, Seq: 2}, {Key: 3, Seq: 4},
		{Key: 3, Seq: 5}, {Key: 4, Seq: 6}, {Key: 7, Seq: 3},
	}
	if diff := gocmp.Diff(want, dst); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeEmptyRun(t *testing.T) {
	src := []int{1, 2, 3}
	dst := make([]int, 3)
	merge(src, dst, 0, 3, 3, 0, cmp.Compare[int])
	if diff := gocmp.Diff(src, dst); diff != "" {
		t.Errorf("merge with empty right run (-want +got):\n%s", diff)
	}
}

func TestMergePassOrphan(t *testing.T) {
	// Three runs of width 2 over a range of 5: the last run is the orphan.
	x := []int{100, 4, 5, 1, 2, 0, 100}
	b := newBuffers(x, 1, 5, false)

	i := mergePass(b, 3, 2, 5, cmp.Compare[int])
	if i != 2 {
		t.Fatalf("mergePass returned %d, want 2", i)
	}
	copyOrphan(b, i*2, 5)

	dst, _ := b.target()
	if diff := gocmp.Diff([]int{1, 2, 4, 5, 0}, dst); diff != "" {
		t.Errorf("target after pass (-want +got):\n%s", diff)
	}
	if x[0] != 100 || x[6] != 100 {
		t.Errorf("pass wrote outside the range: %v", x)
	}
}
