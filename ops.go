// SPDX-License-Identifier: MIT
// Package gridmat: arithmetic operators.
//
// Purpose:
//   - Negation, elementwise addition/subtraction (plus compound forms),
//     matrix multiplication and scalar multiplication in both operand
//     orders.
//
// Design:
//   - Pure operators allocate a fresh result and never mutate operands.
//   - Compound forms (AddAssign/SubAssign) are full reassignment of the
//     receiver, not in-place mutation: on success the receiver's buffer is
//     REPLACED by the freshly computed one; on error the receiver is
//     untouched.
//   - Hot loops run on the flat row-major buffer directly (the unchecked
//     path); all shape validation happens once, up front, via validators.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1, or i→j→k for Mul with cached row
//     bases). No hidden allocations beyond the output matrix.

package gridmat

// Neg returns a new matrix of the same shape with every element negated.
// Complexity: O(rows*cols) time and memory.
func (m *Matrix[T]) Neg() *Matrix[T] {
	out := &Matrix[T]{rows: m.rows, cols: m.cols, data: make([]T, len(m.data))}
	// Single pass over the flat buffer.
	for k, v := range m.data {
		out.data[k] = -v
	}

	return out
}

// Add returns the elementwise sum a + b as a new matrix.
// Returns ErrIncompatibleSizesAdd when the shapes differ.
// Complexity: O(rows*cols) time and memory.
func (a *Matrix[T]) Add(b *Matrix[T]) (*Matrix[T], error) {
	// Validate shapes once; the loop below is unchecked by contract.
	if err := validateSameShape(a, b); err != nil {
		return nil, matrixErrorf("Matrix.Add", err)
	}

	out := &Matrix[T]{rows: a.rows, cols: a.cols, data: make([]T, len(a.data))}
	for k, v := range a.data {
		out.data[k] = v + b.data[k]
	}

	return out, nil
}

// Sub returns the elementwise difference a - b as a new matrix.
// Returns ErrIncompatibleSizesAdd when the shapes differ.
// Complexity: O(rows*cols) time and memory.
func (a *Matrix[T]) Sub(b *Matrix[T]) (*Matrix[T], error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, matrixErrorf("Matrix.Sub", err)
	}

	out := &Matrix[T]{rows: a.rows, cols: a.cols, data: make([]T, len(a.data))}
	for k, v := range a.data {
		out.data[k] = v - b.data[k]
	}

	return out, nil
}

// AddAssign replaces a with a + b. Equivalent to a full reassignment from
// Add's result; on shape mismatch a is left untouched and
// ErrIncompatibleSizesAdd is returned.
// Complexity: O(rows*cols) time and memory.
func (a *Matrix[T]) AddAssign(b *Matrix[T]) error {
	sum, err := a.Add(b) // Add wraps the sentinel with its own context
	if err != nil {
		return err
	}
	// Full reassignment: adopt the fresh buffer, drop the old one.
	*a = *sum

	return nil
}

// SubAssign replaces a with a - b. Same contract as AddAssign.
// Complexity: O(rows*cols) time and memory.
func (a *Matrix[T]) SubAssign(b *Matrix[T]) error {
	diff, err := a.Sub(b)
	if err != nil {
		return err
	}
	*a = *diff

	return nil
}

// Mul returns the matrix product a × b as a new a.rows×b.cols matrix,
// with entry (i, j) = Σ_k a(i,k)*b(k,j). The running sum starts at T's
// additive identity (the zero value).
// Returns ErrIncompatibleSizesMultiply when a.Cols() != b.Rows().
// Stage 1 (Validate): inner dimensions.
// Stage 2 (Prepare): allocate the zeroed result.
// Stage 3 (Execute): i→j→k triple loop over the flat buffers.
// Complexity: O(a.rows * a.cols * b.cols) time, O(a.rows*b.cols) memory.
func (a *Matrix[T]) Mul(b *Matrix[T]) (*Matrix[T], error) {
	if err := validateMulShape(a, b); err != nil {
		return nil, matrixErrorf("Matrix.Mul", err)
	}

	out := &Matrix[T]{rows: a.rows, cols: b.cols, data: make([]T, a.rows*b.cols)}
	for i := 0; i < a.rows; i++ {
		aBase := i * a.cols   // base offset of row i in a
		outBase := i * b.cols // base offset of row i in out
		for j := 0; j < b.cols; j++ {
			var sum T // additive identity
			for k := 0; k < a.cols; k++ {
				sum += a.data[aBase+k] * b.data[k*b.cols+j]
			}
			out.data[outBase+j] = sum
		}
	}

	return out, nil
}

// Scale returns s × m: a new matrix with every element multiplied by the
// scalar s on the LEFT (out(i,j) = s * m(i,j)).
// Complexity: O(rows*cols) time and memory.
func (m *Matrix[T]) Scale(s T) *Matrix[T] {
	out := &Matrix[T]{rows: m.rows, cols: m.cols, data: make([]T, len(m.data))}
	for k, v := range m.data {
		out.data[k] = s * v
	}

	return out
}

// ScaleRight returns m × s: a new matrix with every element multiplied by
// the scalar s on the RIGHT (out(i,j) = m(i,j) * s). The operand order is
// spelled out per entry point rather than defining one form in terms of
// the other; for every type admitted by Numeric the builtin multiplication
// is commutative, so Scale and ScaleRight agree.
// Complexity: O(rows*cols) time and memory.
func (m *Matrix[T]) ScaleRight(s T) *Matrix[T] {
	out := &Matrix[T]{rows: m.rows, cols: m.cols, data: make([]T, len(m.data))}
	for k, v := range m.data {
		out.data[k] = v * s
	}

	return out
}
