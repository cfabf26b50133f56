// SPDX-License-Identifier: MIT

// Package gridmat_test contains unit tests for the construction forms.
package gridmat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridmat"
)

// TestNewZeroSize ensures New rejects zero and negative dimensions.
func TestNewZeroSize(t *testing.T) {
	_, err := gridmat.New[float64](0, 5)              // zero rows
	require.ErrorIs(t, err, gridmat.ErrZeroSize)      // expect ErrZeroSize

	_, err = gridmat.New[float64](5, 0)               // zero columns
	require.ErrorIs(t, err, gridmat.ErrZeroSize)      // expect ErrZeroSize

	_, err = gridmat.New[float64](-1, 3)              // negative rows violate the same invariant
	require.ErrorIs(t, err, gridmat.ErrZeroSize)      // expect ErrZeroSize
}

// TestNewShape verifies that Rows() and Cols() reflect the requested shape.
func TestNewShape(t *testing.T) {
	rows, cols := 3, 4
	m, err := gridmat.New[float64](rows, cols)
	require.NoError(t, err) // assert no error on valid dimensions

	require.Equal(t, rows, m.Rows()) // assert Rows() equals expected rows
	require.Equal(t, cols, m.Cols()) // assert Cols() equals expected cols
	require.False(t, m.Empty())      // a constructed matrix is never empty
}

// TestNewFilledAllElements verifies the uniform-fill property at every cell.
func TestNewFilledAllElements(t *testing.T) {
	const fill = 2.5
	m, err := gridmat.NewFilled(3, 4, fill)
	require.NoError(t, err) // assert valid creation

	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)    // every in-bounds At succeeds
			require.Equal(t, fill, v)  // every element equals the fill value
		}
	}
}

// TestNewFilledZeroSize ensures the fill form shares the shape validation.
func TestNewFilledZeroSize(t *testing.T) {
	_, err := gridmat.NewFilled(0, 4, 1.0)
	require.ErrorIs(t, err, gridmat.ErrZeroSize)

	_, err = gridmat.NewFilled(4, 0, 1.0)
	require.ErrorIs(t, err, gridmat.ErrZeroSize)
}

// TestNewDiagonal checks diagonal placement and additive-identity fill.
func TestNewDiagonal(t *testing.T) {
	diag := []float64{1, 2, 3}
	m, err := gridmat.NewDiagonal(diag)
	require.NoError(t, err)

	require.Equal(t, len(diag), m.Rows()) // square: side equals len(diag)
	require.Equal(t, len(diag), m.Cols())

	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			if i == j {
				require.Equal(t, diag[i], v) // diagonal entry from the sequence
			} else {
				require.Equal(t, 0.0, v) // off-diagonal is the additive identity
			}
		}
	}
}

// TestNewDiagonalEmpty ensures an empty diagonal cannot produce a matrix.
func TestNewDiagonalEmpty(t *testing.T) {
	_, err := gridmat.NewDiagonal([]float64{})
	require.ErrorIs(t, err, gridmat.ErrZeroSize)

	_, err = gridmat.NewDiagonal[float64](nil)
	require.ErrorIs(t, err, gridmat.ErrZeroSize)
}

// TestNewFromSliceRoundTrip verifies flat row-major initialization:
// reading back via At reproduces elems[i*cols+j] exactly.
func TestNewFromSliceRoundTrip(t *testing.T) {
	rows, cols := 2, 3
	elems := []float64{1, 2, 3, 4, 5, 6}
	m, err := gridmat.NewFromSlice(rows, cols, elems)
	require.NoError(t, err)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, elems[i*cols+j], v) // row-major round-trip
		}
	}
}

// TestNewFromSliceWrongSize ensures a mismatched initializer is rejected.
func TestNewFromSliceWrongSize(t *testing.T) {
	_, err := gridmat.NewFromSlice(2, 3, []float64{1, 2, 3})
	require.ErrorIs(t, err, gridmat.ErrInitializerWrongSize)

	_, err = gridmat.NewFromSlice(2, 3, make([]float64, 7))
	require.ErrorIs(t, err, gridmat.ErrInitializerWrongSize)
}

// TestNewFromSliceZeroSizeWins ensures the shape check precedes the
// initializer-length check.
func TestNewFromSliceZeroSizeWins(t *testing.T) {
	_, err := gridmat.NewFromSlice(0, 3, []float64{})
	require.ErrorIs(t, err, gridmat.ErrZeroSize)
}

// TestNewFromSliceOwnsBuffer ensures the input slice is copied, not
// retained: mutating it afterwards must not affect the matrix.
func TestNewFromSliceOwnsBuffer(t *testing.T) {
	elems := []float64{1, 2, 3, 4}
	m, err := gridmat.NewFromSlice(2, 2, elems)
	require.NoError(t, err)

	elems[0] = 99 // mutate the caller's slice

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v) // matrix keeps its own copy
}

// TestIntInstantiation exercises a non-float element type end to end.
func TestIntInstantiation(t *testing.T) {
	m, err := gridmat.NewFromSlice(2, 2, []int{1, 2, 3, 4})
	require.NoError(t, err)

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3, v)

	d, err := gridmat.NewDiagonal([]int{5, 6})
	require.NoError(t, err)
	require.Equal(t, 0, d.Get(0, 1)) // int zero value off the diagonal
}
