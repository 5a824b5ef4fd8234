// Copyright ©2026 The ldlsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package packed implements row-major packed storage for the upper triangle of
// a symmetric matrix, together with the copy primitives that move rectangular
// and diagonal blocks between packed storage and dense row-major scratch
// buffers.
//
// An n×n symmetric matrix is held as a slice of Len(n) = n(n+1)/2 values, row
// by row: row i contributes its entries for columns i…n-1, so element (i,j)
// with i ≤ j lives at Index(i, j, n). Elements below the diagonal are not
// stored; callers needing them mirror (j,i) to (i,j).
package packed

// Len returns the number of values needed to store the upper triangle of an
// n×n symmetric matrix.
func Len(n int) int {
	return n * (n + 1) / 2
}

// Index returns the offset of element (i,j) in packed storage.
// It does not validate its arguments; i ≤ j < n is required.
func Index(i, j, n int) int {
	return i*n - i*(i-1)/2 + j - i
}
