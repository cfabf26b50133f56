// SPDX-License-Identifier: MIT
// Package gridmat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error
// conditions. Panics are reserved for programmer errors (option
// constructors with nonsensical values).

package gridmat

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "gridmat: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with matrixErrorf at the call
// site — callers will still use errors.Is to match.

var (
	// ErrZeroSize is returned when a construction form is asked for zero
	// rows or zero columns (or an empty diagonal). A live matrix always has
	// rows ≥ 1 and cols ≥ 1; negative counts violate the same invariant and
	// yield the same sentinel.
	ErrZeroSize = errors.New("gridmat: zero rows or columns")

	// ErrInitializerWrongSize is returned by NewFromSlice when the flat
	// initializer length does not equal rows*cols.
	ErrInitializerWrongSize = errors.New("gridmat: initializer length does not equal rows*cols")

	// ErrIncompatibleSizesAdd indicates operand shapes differ for Add, Sub
	// and their compound forms. One sentinel covers both directions of the
	// elementwise family.
	ErrIncompatibleSizesAdd = errors.New("gridmat: operand shapes differ for add/subtract")

	// ErrIncompatibleSizesMultiply indicates a.Cols() != b.Rows() for Mul.
	ErrIncompatibleSizesMultiply = errors.New("gridmat: inner dimensions mismatch for multiply")

	// ErrIndexOutOfRange indicates that a checked accessor (At/SetAt) was
	// given a row or column outside the current bounds. The checked path
	// fails BEFORE touching memory; the unchecked path never reports this.
	ErrIndexOutOfRange = errors.New("gridmat: index out of range")
)

// matrixErrorf wraps an underlying sentinel with operation context.
// Call sites wrap exactly once; validators return plain sentinels.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
