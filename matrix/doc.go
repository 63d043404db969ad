// Package matrix offers a fixed-shape, row-major dense matrix used for
// cost matrices and transport plans.
//
// The matrix package provides:
//
//   - Dense: rows and cols are fixed at construction; At/Set return
//     ErrOutOfRange instead of panicking on bad indices.
//   - Constructors that validate shape at the boundary (NewDense,
//     NewFromRows, NewFromData) so ragged or empty input never reaches
//     numeric code.
//   - Small, allocation-explicit kernels needed around optimal transport:
//     Transpose, Scale, RowSums, ColSums, Sum and AllClose.
//   - A bridge to gonum (Dense.Mat) for code that talks to gonum solvers.
//
// All operations are deterministic: loops run in fixed row-major order and
// no map iteration is involved.
package matrix
