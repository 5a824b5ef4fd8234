// Copyright ©2026 The ldlsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package packed

// Panic strings for malformed block copy parameters.
const (
	badBlock = "packed: block outside matrix"
	shortAP  = "packed: insufficient length of ap"
	shortDst = "packed: insufficient length of block buffer"
)

// GatherBlock copies the r×c block with top-left element (row, col) from
// packed storage into the dense row-major buffer b. The block must lie
// strictly above the diagonal block of its row, that is col ≥ row+r. The
// buffer is zeroed first so that unused trailing cells of an edge block stay
// zero.
func GatherBlock(ap []float64, row, col, n, r, c int, b []float64) {
	checkBlock(ap, row, col, n, r, c, b)

	clear(b[:r*c])
	k := Index(row, col, n)
	for i := 0; i < r; i++ {
		copy(b[i*c:i*c+c], ap[k:k+c])
		k += n - (row + i) - 1
	}
}

// ScatterBlock writes the dense row-major r×c buffer b back into packed
// storage at (row, col). It is the inverse of GatherBlock.
func ScatterBlock(ap []float64, row, col, n, r, c int, b []float64) {
	checkBlock(ap, row, col, n, r, c, b)

	k := Index(row, col, n)
	for i := 0; i < r; i++ {
		copy(ap[k:k+c], b[i*c:i*c+c])
		k += n - (row + i) - 1
	}
}

// GatherDiag copies the m×m diagonal block starting at index t into the dense
// row-major buffer b. Only the upper triangle is stored; the strict lower
// triangle of b is left zero.
func GatherDiag(ap []float64, t, n, m int, b []float64) {
	checkDiag(ap, t, n, m, b)

	clear(b[:m*m])
	k := Index(t, t, n)
	for i := 0; i < m; i++ {
		copy(b[i*m+i:i*m+m], ap[k:k+m-i])
		k += n - (t + i)
	}
}

// ScatterDiag writes the upper triangle of the dense m×m buffer b back into
// the diagonal block of packed storage starting at index t. Cells below the
// diagonal of b are ignored.
func ScatterDiag(ap []float64, t, n, m int, b []float64) {
	checkDiag(ap, t, n, m, b)

	k := Index(t, t, n)
	for i := 0; i < m; i++ {
		copy(ap[k:k+m-i], b[i*m+i:i*m+m])
		k += n - (t + i)
	}
}

func checkBlock(ap []float64, row, col, n, r, c int, b []float64) {
	switch {
	case row < 0 || r < 1 || row+r > n || col < row+r || c < 1 || col+c > n:
		panic(badBlock)
	case len(ap) < Len(n):
		panic(shortAP)
	case len(b) < r*c:
		panic(shortDst)
	}
}

func checkDiag(ap []float64, t, n, m int, b []float64) {
	switch {
	case t < 0 || m < 1 || t+m > n:
		panic(badBlock)
	case len(ap) < Len(n):
		panic(shortAP)
	case len(b) < m*m:
		panic(shortDst)
	}
}
