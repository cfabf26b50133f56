// SPDX-License-Identifier: MIT

// Package gridmat_test: shared helpers for the package tests.
// Helpers fail the test on construction errors so the test bodies can stay
// focused on the behavior under test.
package gridmat_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridmat"
)

// mustNew builds a rows×cols float64 matrix or fails the test.
func mustNew(tb testing.TB, rows, cols int) *gridmat.Matrix[float64] {
	tb.Helper()
	m, err := gridmat.New[float64](rows, cols)
	if err != nil {
		tb.Fatalf("New(%d,%d): %v", rows, cols, err)
	}

	return m
}

// mustFromSlice builds a matrix from a flat row-major slice or fails the test.
func mustFromSlice(tb testing.TB, rows, cols int, elems []float64) *gridmat.Matrix[float64] {
	tb.Helper()
	m, err := gridmat.NewFromSlice(rows, cols, elems)
	if err != nil {
		tb.Fatalf("NewFromSlice(%d,%d): %v", rows, cols, err)
	}

	return m
}

// fillRand populates m with deterministic pseudo-random values.
func fillRand(tb testing.TB, m *gridmat.Matrix[float64], seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			m.Set(i, j, rng.Float64())
		}
	}
}
