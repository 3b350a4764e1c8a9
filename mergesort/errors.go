// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mergesort

import (
	"fmt"

	"golang.org/x/xerrors"
)

var (
	// ErrInvalidArgument is returned for a nil comparison function.
	ErrInvalidArgument = xerrors.New("mergesort: invalid argument")

	// ErrOutOfBounds is returned when a range does not satisfy
	// 0 <= from <= to <= len(x).
	ErrOutOfBounds = xerrors.New("mergesort: range out of bounds")
)

// A ComparatorError records a panic raised by a comparison function. The
// range being sorted is left in an unspecified order.
type ComparatorError struct {
	// Value is the value passed to panic.
	Value interface{}
}

func (e *ComparatorError) Error() string {
	return fmt.Sprintf("mergesort: comparison function panicked: %v", e.Value)
}

// Unwrap returns Value if it is an error.
func (e *ComparatorError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// TrySortRangeFunc is like SortRangeFunc but validates its arguments and
// reports a panicking comparison function as a *ComparatorError instead of
// propagating the panic.
func TrySortRangeFunc[S ~[]E, E any](x S, from, to int, cmp func(a, b E) int) error {
	return trySortRange(x, from, to, Threshold(), cmp)
}

func trySortRange[E any](x []E, from, to, threshold int, cmp func(a, b E) int) (err error) {
	if cmp == nil {
		return xerrors.Errorf("nil comparison function: %w", ErrInvalidArgument)
	}
	if from < 0 || from > to || to > len(x) {
		return xerrors.Errorf("[%d, %d) with length %d: %w", from, to, len(x), ErrOutOfBounds)
	}
	defer func() {
		if r := recover(); r != nil {
			err = &ComparatorError{Value: r}
		}
	}()
	sortRange(x, from, to, threshold, cmp)
	return nil
}
