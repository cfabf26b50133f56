// SPDX-License-Identifier: MIT

// Package gridmat: the Matrix type and its construction forms.
// Every constructor either returns a matrix satisfying the package
// invariants (rows ≥ 1, cols ≥ 1, len(data) == rows*cols, exclusively
// owned buffer) or a sentinel error — never a partially built value.
package gridmat

// Matrix is a dense, row-major grid of numeric values.
// rows and cols are the current dimensions and data holds rows*cols
// elements in row-major order: element (i, j) lives at offset i*cols + j.
//
// The zero Matrix value and a moved-from Matrix are both the empty (0×0)
// state: no buffer, not usable for element access, rendered as "()".
// Public construction can never produce that state.
type Matrix[T Numeric] struct {
	rows, cols int // current dimensions; both ≥ 1 unless moved-from
	data       []T // flat backing storage, length == rows*cols
}

// New creates a rows×cols matrix WITHOUT meaningful initial contents.
// Stage 1 (Validate): ensure rows ≥ 1 and cols ≥ 1.
// Stage 2 (Prepare): allocate the flat backing slice in one shot.
// Stage 3 (Finalize): return the new Matrix or ErrZeroSize.
//
// The elements start at the zero value of T but the contract treats them
// as UNSPECIFIED: the caller must write every element before reading it.
// Use NewFilled when a defined initial value is wanted.
// Complexity: O(rows*cols) time and memory.
func New[T Numeric](rows, cols int) (*Matrix[T], error) {
	// Validate dimensions.
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf("New", err)
	}

	// Allocate and return; no per-element pass.
	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// NewFilled creates a rows×cols matrix with every element set to fill.
// Complexity: O(rows*cols) time and memory.
func NewFilled[T Numeric](rows, cols int, fill T) (*Matrix[T], error) {
	// Validate dimensions.
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf("NewFilled", err)
	}

	// Allocate and fill in a single deterministic pass.
	data := make([]T, rows*cols)
	for k := range data {
		data[k] = fill
	}

	return &Matrix[T]{rows: rows, cols: cols, data: data}, nil
}

// NewDiagonal creates a square matrix whose side equals len(diag), with
// diag on the main diagonal and the additive identity everywhere else.
// Stage 1 (Validate): reject an empty diagonal (ErrZeroSize).
// Stage 2 (Prepare): allocate n*n zeroed storage.
// Stage 3 (Finalize): write the diagonal entries only.
// Complexity: O(n²) time and memory for side n.
func NewDiagonal[T Numeric](diag []T) (*Matrix[T], error) {
	n := len(diag)
	// An empty diagonal would produce a 0×0 matrix, which cannot exist.
	if err := validateShape(n, n); err != nil {
		return nil, matrixErrorf("NewDiagonal", err)
	}

	// Off-diagonal entries are the zero value courtesy of make.
	data := make([]T, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = diag[i]
	}

	return &Matrix[T]{rows: n, cols: n, data: data}, nil
}

// NewFromSlice creates a rows×cols matrix initialized from elems, given in
// flattened row-major form: element (i, j) is elems[i*cols+j]. The input
// slice is copied, never retained — the matrix owns its buffer exclusively.
// Stage 1 (Validate): shape, then len(elems) == rows*cols.
// Stage 2 (Prepare): allocate and copy.
// Stage 3 (Finalize): return the new Matrix or the matching sentinel.
// Complexity: O(rows*cols) time and memory.
func NewFromSlice[T Numeric](rows, cols int, elems []T) (*Matrix[T], error) {
	// Validate dimensions first: shape errors win over length errors.
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf("NewFromSlice", err)
	}
	// Validate initializer length against the element count.
	if len(elems) != rows*cols {
		return nil, matrixErrorf("NewFromSlice", ErrInitializerWrongSize)
	}

	// Copy into freshly owned storage.
	data := make([]T, rows*cols)
	copy(data, elems)

	return &Matrix[T]{rows: rows, cols: cols, data: data}, nil
}
