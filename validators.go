// SPDX-License-Identifier: MIT
// Package gridmat: canonical validation checks.
//
// Purpose:
//   - Provide a single source of truth for shape and index guards.
//   - Keep constructors and operators minimal by delegating checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly via matrixErrorf.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing. O(1) each.

package gridmat

// validateShape ensures rows ≥ 1 and cols ≥ 1.
// Returns ErrZeroSize otherwise (negative counts included).
func validateShape(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return ErrZeroSize
	}

	return nil
}

// validateSameShape ensures a and b have equal dimensions.
// Assumes both operands are constructed (caller holds the receivers).
// Returns ErrIncompatibleSizesAdd on any mismatch.
func validateSameShape[T Numeric](a, b *Matrix[T]) error {
	if a.rows != b.rows || a.cols != b.cols {
		return ErrIncompatibleSizesAdd
	}

	return nil
}

// validateMulShape ensures the inner dimensions agree: a.cols == b.rows.
// Returns ErrIncompatibleSizesMultiply otherwise.
func validateMulShape[T Numeric](a, b *Matrix[T]) error {
	if a.cols != b.rows {
		return ErrIncompatibleSizesMultiply
	}

	return nil
}

// validateIndex ensures 0 ≤ row < m.rows and 0 ≤ col < m.cols.
// Returns ErrIndexOutOfRange otherwise. Used ONLY by the checked accessors;
// the unchecked path bypasses this by contract.
func validateIndex[T Numeric](m *Matrix[T], row, col int) error {
	if row < 0 || row >= m.rows {
		return ErrIndexOutOfRange
	}
	if col < 0 || col >= m.cols {
		return ErrIndexOutOfRange
	}

	return nil
}
