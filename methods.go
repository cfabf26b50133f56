// SPDX-License-Identifier: MIT

// Package gridmat: accessors and ownership transfer.
//
// Two access paths exist on purpose:
//   - Get/Set/Ref perform NO bounds validation. They exist purely for
//     performance in hot loops where indices are known-valid; misuse reads
//     or writes the wrong element, or panics on the slice bound — it is
//     never reported as a checked error.
//   - At/SetAt validate first and return ErrIndexOutOfRange BEFORE touching
//     memory.
//
// Ownership follows the single-owner rule: Clone/CopyFrom deep-copy,
// Move/MoveFrom steal the buffer and empty the source.
package gridmat

// Rows returns the number of rows (0 only for a moved-from matrix).
// Complexity: O(1).
func (m *Matrix[T]) Rows() int {
	return m.rows
}

// Cols returns the number of columns (0 only for a moved-from matrix).
// Complexity: O(1).
func (m *Matrix[T]) Cols() int {
	return m.cols
}

// Empty reports whether m is in the moved-from (0×0) state.
// Complexity: O(1).
func (m *Matrix[T]) Empty() bool {
	return m.rows == 0 && m.cols == 0
}

// Get returns the element at (row, col) WITHOUT bounds validation.
// Caller guarantees 0 ≤ row < Rows() and 0 ≤ col < Cols().
// Complexity: O(1).
func (m *Matrix[T]) Get(row, col int) T {
	return m.data[row*m.cols+col]
}

// Set assigns v at (row, col) WITHOUT bounds validation.
// Caller guarantees 0 ≤ row < Rows() and 0 ≤ col < Cols().
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) {
	m.data[row*m.cols+col] = v
}

// Ref returns a mutable pointer to the element at (row, col) WITHOUT
// bounds validation. The pointer stays valid until the buffer is replaced
// (CopyFrom/MoveFrom) or stolen (Move).
// Complexity: O(1).
func (m *Matrix[T]) Ref(row, col int) *T {
	return &m.data[row*m.cols+col]
}

// At retrieves the element at (row, col) WITH bounds validation.
// Returns ErrIndexOutOfRange if row or col is outside the current bounds;
// the check happens before any memory access.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	if err := validateIndex(m, row, col); err != nil {
		var zero T
		return zero, matrixErrorf("Matrix.At", err)
	}

	return m.data[row*m.cols+col], nil
}

// SetAt assigns v at (row, col) WITH bounds validation.
// Returns ErrIndexOutOfRange if row or col is outside the current bounds.
// Complexity: O(1).
func (m *Matrix[T]) SetAt(row, col int, v T) error {
	if err := validateIndex(m, row, col); err != nil {
		return matrixErrorf("Matrix.SetAt", err)
	}
	m.data[row*m.cols+col] = v

	return nil
}

// Clone returns a deep copy of m. The result owns independent storage;
// mutating either matrix never affects the other.
// Complexity: O(rows*cols) time and memory.
func (m *Matrix[T]) Clone() *Matrix[T] {
	// Allocate a fresh buffer and copy all elements.
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Matrix[T]{rows: m.rows, cols: m.cols, data: data}
}

// CopyFrom replaces m's dimensions and buffer with a deep copy of src,
// discarding m's previous storage. Copy-assignment semantics.
// Complexity: O(src.rows*src.cols) time and memory.
func (m *Matrix[T]) CopyFrom(src *Matrix[T]) {
	// Build the copy first so self-assignment stays well-defined.
	data := make([]T, len(src.data))
	copy(data, src.data)

	m.rows, m.cols, m.data = src.rows, src.cols, data
}

// Move transfers ownership of m's buffer into a newly returned matrix and
// leaves m in the empty (0×0) state. Move-construction semantics: no
// element is copied.
// Complexity: O(1).
func (m *Matrix[T]) Move() *Matrix[T] {
	out := &Matrix[T]{rows: m.rows, cols: m.cols, data: m.data}
	m.rows, m.cols, m.data = 0, 0, nil

	return out
}

// MoveFrom discards m's current storage, takes ownership of src's buffer
// and leaves src in the empty (0×0) state. Move-assignment semantics.
// A self-move leaves m untouched.
// Complexity: O(1).
func (m *Matrix[T]) MoveFrom(src *Matrix[T]) {
	if m == src {
		return
	}
	m.rows, m.cols, m.data = src.rows, src.cols, src.data
	src.rows, src.cols, src.data = 0, 0, nil
}
