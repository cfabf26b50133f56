// SPDX-License-Identifier: MIT

// Package gridmat: domain types. This file intentionally contains ONLY the
// element-type constraint; errors and formatting configuration live in
// dedicated files (errors.go, format.go) per the package conventions.
package gridmat

// Numeric constrains the element type of a Matrix to the builtin numeric
// types. Every admitted type supports addition, subtraction, unary negation
// and multiplication, and its zero value is the additive identity — which
// is exactly what the diagonal constructor and the Mul accumulator rely on.
//
// Multiplication is commutative for every admitted type; see ScaleRight for
// why that matters.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}
