// SPDX-License-Identifier: MIT

// Package matrix provides a float64 row-major Dense matrix whose storage is a
// grid.Grid, so rows, columns, diagonals, windows and the transpose all come
// from the grid views instead of hand-written index loops.
//
// What:
//
//   - Dense: r×c matrix over a flat buffer (offset = i*c + j) with safe At/Set
//     that return sentinel errors instead of panicking.
//   - MatrixView: a no-copy window; writes land in the base matrix.
//   - Transpose, Row, Col, Diag, AntiDiag built on grid views.
//   - Add, Sub, Hadamard, Scale, Mul, MatVec, RowSums, ColSums: kernels that
//     reduce grid row and column sequences.
//   - gonum interop: ToGonum / FromGonum exchange data with gonum.org/v1/gonum/mat;
//     Inverse and EigenSym delegate the factorizations to it.
//
// Errors:
//
//   - ErrInvalidDimensions, ErrOutOfRange, ErrDimensionMismatch, ErrBadShape,
//     ErrNaNInf, ErrNilMatrix, ErrSingular, ErrAsymmetry, ErrNotConverged.
//     Match with errors.Is.
//
// Complexity:
//
//   - NewDense O(r*c); At/Set O(1); Row/Col O(c)/O(r); View O(1); Transpose O(r*c);
//     Mul O(r*n*c); Inverse and EigenSym O(n³).
package matrix
