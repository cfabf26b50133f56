// SPDX-License-Identifier: MIT

// Package gridmat: textual rendering and its functional configuration.
// This file defines:
//   - FormatOption (functional options with internal state),
//   - documented defaults (constants),
//   - WithWidth constructor with strong validation (panic on nonsensical
//     values — programmer error, never a runtime error),
//   - Render / Fprint / String.
//
// Design goals:
//   - Deterministic output: no global state; the element width travels
//     explicitly with each render call instead of living in a per-type
//     global.
//   - Safe by construction: option fields are unexported; public entry
//     points consume ...FormatOption and resolve them internally.
package gridmat

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultOutputWidth is the element width used when no WithWidth option is
// given. Elements narrower than the width are left-padded (right-aligned).
const DefaultOutputWidth = 5

// emptyRendering is the placeholder for the moved-from (0×0) state, which
// is only reachable via Move/MoveFrom, never via public construction.
const emptyRendering = "()\n"

// panicWidthInvalid is the stable message for a nonsensical WithWidth call.
const panicWidthInvalid = "gridmat: WithWidth: width must be non-negative"

// FormatOption mutates the internal rendering options. Safe to apply
// repeatedly (idempotent).
type FormatOption func(*formatOptions)

// formatOptions stores the effective rendering configuration after
// applying FormatOption setters.
type formatOptions struct {
	width int // element width; ≥ 0; DefaultOutputWidth
}

// WithWidth sets the character width every element is padded to when
// rendering. A width of 0 disables padding. Panics on negative width.
func WithWidth(w int) FormatOption {
	if w < 0 {
		panic(panicWidthInvalid)
	}

	return func(o *formatOptions) { o.width = w }
}

// gatherFormatOptions resolves defaults, then applies the given setters.
func gatherFormatOptions(opts ...FormatOption) formatOptions {
	o := formatOptions{width: DefaultOutputWidth}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Render produces the human-readable multi-line form of m: one line per
// row, each row wrapped in parentheses, each element right-aligned to the
// configured width and followed by a single space, with one blank line
// appended after the whole matrix. The moved-from (0×0) state renders as
// the "()" placeholder line.
// Complexity: O(rows*cols) for string construction.
func (m *Matrix[T]) Render(opts ...FormatOption) string {
	o := gatherFormatOptions(opts...)
	if m.rows == 0 && m.cols == 0 {
		return emptyRendering
	}

	// Build the element verb once; "%0v" would mean zero-padding, so a
	// zero width falls back to the plain verb.
	verb := "%v"
	if o.width > 0 {
		verb = "%" + strconv.Itoa(o.width) + "v"
	}

	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		base := i * m.cols // base offset of row i
		sb.WriteString("( ")
		for j := 0; j < m.cols; j++ {
			fmt.Fprintf(&sb, verb, m.data[base+j])
			sb.WriteByte(' ')
		}
		sb.WriteString(")\n")
	}
	sb.WriteByte('\n') // blank line terminates the matrix block

	return sb.String()
}

// Fprint writes the rendered form of m to the given sink.
// Returns only the sink's write error, if any.
func (m *Matrix[T]) Fprint(w io.Writer, opts ...FormatOption) error {
	_, err := io.WriteString(w, m.Render(opts...))

	return err
}

// String implements fmt.Stringer using the default rendering options.
func (m *Matrix[T]) String() string {
	return m.Render()
}
