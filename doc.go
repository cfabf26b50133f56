// SPDX-License-Identifier: MIT

// Package gridmat provides a generic dense two-dimensional numeric container.
//
// What & Why:
//
//	Matrix[T] is a fixed-size, mutable, rectangular grid of numeric values
//	stored in a single flat slice in row-major order, for performance and
//	cache friendliness. The package is deliberately small: the library IS
//	the data type plus its operator contracts. It offers several
//	construction forms (unspecified contents, uniform fill, diagonal, flat
//	row-major initializer), element access both with and without bounds
//	checking, elementwise arithmetic (negation, addition, subtraction),
//	matrix and scalar multiplication, and formatted textual rendering.
//
// Ownership:
//
//	Every Matrix exclusively owns its backing buffer; no two live instances
//	ever share storage. Clone and CopyFrom allocate an independent deep
//	copy. Move and MoveFrom transfer buffer ownership and leave the source
//	in the empty (0×0) state, which must not be used for element access
//	until reassigned.
//
// Errors:
//
//	All user-triggered violations surface as package-level sentinel errors
//	(ErrZeroSize, ErrInitializerWrongSize, ErrIncompatibleSizesAdd,
//	ErrIncompatibleSizesMultiply, ErrIndexOutOfRange) matched via
//	errors.Is. The unchecked accessors Get/Set/Ref perform no validation
//	at all; that is their contract, not an oversight — use At/SetAt when
//	indices are not known-valid.
//
// Complexity:
//
//	Rows, Cols and all element accessors run in O(1). Construction,
//	cloning, rendering and the elementwise operators run in O(rows*cols).
//	Mul runs in O(a.rows * a.cols * b.cols).
//
// Concurrency:
//
//	Matrix carries no internal synchronization. Distinct instances are
//	safe to use from distinct goroutines because storage is never shared;
//	sharing one instance requires external synchronization by the caller.
package gridmat
