// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All constructors and accessors MUST return these sentinels and tests
// MUST check them via errors.Is. No public function panics on user input.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Call sites wrap
// with fmt.Errorf("ctx: %w", ErrX) when coordinates or an operation tag help;
// callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> index -> NaN/Inf -> sign.

var (
	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRaggedRows signals that row slices passed to NewFromRows differ in length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrDimensionMismatch indicates incompatible dimensions between operands
	// or between a flat buffer and the requested shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegative signals a negative entry where a non-negative matrix is required
	// (costs, transport plans).
	ErrNegative = errors.New("matrix: negative value")
)
