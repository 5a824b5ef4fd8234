// Copyright ©2026 The ldlsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ldl

import "math"

// pivTol is the magnitude below which a diagonal pivot is treated as zero.
// It sits close to machine epsilon, so ill-conditioned but nonsingular blocks
// may be reported as singular.
const pivTol = 1e-16

// choleskyBlock factors the dense row-major n×n block a in place as
// Rᵀ·diag(d)·R. Only the upper triangle of a is read; on return it holds R.
// d receives the pivot signs. It reports false when a pivot magnitude falls
// below pivTol.
func choleskyBlock(n int, a, d []float64) bool {
	for i := 0; i < n; i++ {
		d[i] = 1
	}
	for i := 0; i < n; i++ {
		ai := a[i*n : i*n+n]
		for k := 0; k < i; k++ {
			ak := a[k*n : k*n+n]
			t := ak[i] * d[k]
			for j := i; j < n; j++ {
				ai[j] -= t * ak[j]
			}
		}
		if ai[i] < 0 {
			d[i] = -1
			ai[i] = -ai[i]
		}
		if ai[i] < pivTol {
			return false
		}
		ai[i] = math.Sqrt(ai[i])
		t := 1 / ai[i]
		for j := i + 1; j < n; j++ {
			ai[j] *= t
		}
	}
	return true
}

// invUpperDiag computes b = R⁻¹·diag(d) for the dense row-major n×n upper
// triangular block a holding R. b is upper triangular with zeros below the
// diagonal; it satisfies R·b = diag(d). It reports false when a diagonal
// entry of R has magnitude below pivTol.
func invUpperDiag(n int, a, d, b []float64) bool {
	clear(b[:n*n])
	for i := 0; i < n; i++ {
		b[i*n+i] = d[i]
	}
	for i := n - 1; i >= 0; i-- {
		if math.Abs(a[i*n+i]) < pivTol {
			return false
		}
		bi := b[i*n : i*n+n]
		t := 1 / a[i*n+i]
		for j := i; j < n; j++ {
			bi[j] *= t
		}
		for j := 0; j < i; j++ {
			bj := b[j*n : j*n+n]
			s := a[j*n+i]
			for k := i; k < n; k++ {
				bj[k] -= bi[k] * s
			}
		}
	}
	return true
}

// schurSub applies the Schur complement update c ← c − aᵀ·diag(d)·b, where a
// is n×m, b is n×l, c is m×l and d has length n, all dense row-major.
func schurSub(n, m, l int, a, b, d, c []float64) {
	for k := 0; k < n; k++ {
		ak := a[k*m : k*m+m]
		bk := b[k*l : k*l+l]
		dk := d[k]
		for i := 0; i < m; i++ {
			t := ak[i] * dk
			ci := c[i*l : i*l+l]
			for j, bkj := range bk {
				ci[j] -= bkj * t
			}
		}
	}
}

// mulTransA computes c = aᵀ·b for a dense row-major n×m block a and n×l block
// b, zeroing the m×l destination first. The transposed convention is what the
// trailing-row scaling of the factorization needs: with a holding R⁻¹·diag(d)
// for a diagonal block R, aᵀ·b = diag(d)·R⁻ᵀ·b.
func mulTransA(n, m, l int, a, b, c []float64) {
	clear(c[:m*l])
	for k := 0; k < n; k++ {
		ak := a[k*m : k*m+m]
		bk := b[k*l : k*l+l]
		for i := 0; i < m; i++ {
			t := ak[i]
			ci := c[i*l : i*l+l]
			for j, bkj := range bk {
				ci[j] += bkj * t
			}
		}
	}
}

// matVecSub computes y ← y − a·x for a dense row-major n×m block.
func matVecSub(n, m int, a, x, y []float64) {
	for i := 0; i < n; i++ {
		ai := a[i*m : i*m+m]
		var s float64
		for j, v := range ai {
			s += v * x[j]
		}
		y[i] -= s
	}
}

// matVecSubTrans computes y ← y − aᵀ·x for a dense row-major n×m block;
// x has length n and y has length m.
func matVecSubTrans(n, m int, a, x, y []float64) {
	for j := 0; j < n; j++ {
		aj := a[j*m : j*m+m]
		t := x[j]
		for i, v := range aj {
			y[i] -= v * t
		}
	}
}

// solveBlockLower solves Rᵀ·y = rhs in place for one diagonal block, where a
// holds the n×n upper triangular R so that its transpose is the lower factor.
// It reports false on a tiny pivot.
func solveBlockLower(n int, a, rhs []float64) bool {
	for i := 0; i < n; i++ {
		if math.Abs(a[i*n+i]) < pivTol {
			return false
		}
		rhs[i] /= a[i*n+i]
		t := rhs[i]
		for j := i + 1; j < n; j++ {
			rhs[j] -= t * a[i*n+j]
		}
	}
	return true
}

// solveBlockUpperDiag solves diag(d)·R·x = rhs in place for one diagonal
// block, where a holds the n×n upper triangular R and d the pivot signs.
// It reports false on a tiny pivot.
func solveBlockUpperDiag(n int, a, d, rhs []float64) bool {
	for i := 0; i < n; i++ {
		rhs[i] *= d[i]
	}
	for i := n - 1; i >= 0; i-- {
		if math.Abs(a[i*n+i]) < pivTol {
			return false
		}
		rhs[i] /= a[i*n+i]
		t := rhs[i]
		for j := 0; j < i; j++ {
			rhs[j] -= t * a[j*n+i]
		}
	}
	return true
}
