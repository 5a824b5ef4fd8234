// Copyright ©2026 The ldlsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ldl

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/sashuIya/ldlsolve/packed"
)

// packSym packs the upper triangle of the dense symmetric matrix given by
// rows.
func packSym(rows [][]float64) []float64 {
	n := len(rows)
	ap := make([]float64, packed.Len(n))
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			ap[packed.Index(i, j, n)] = rows[i][j]
		}
	}
	return ap
}

// randSym returns the packed upper triangle of a random diagonally dominant
// symmetric matrix of order n.
func randSym(rnd *rand.Rand, n int) []float64 {
	ap := make([]float64, packed.Len(n))
	for i := 0; i < n; i++ {
		ap[packed.Index(i, i, n)] = float64(n) + rnd.Float64()
		for j := i + 1; j < n; j++ {
			ap[packed.Index(i, j, n)] = 2*rnd.Float64() - 1
		}
	}
	return ap
}

// reconstruct forms Rᵀ·diag(d)·R from a packed factor, returning a dense
// row-major matrix.
func reconstruct(n int, ap, d []float64) []float64 {
	a := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var s float64
			for k := 0; k <= i; k++ {
				s += ap[packed.Index(k, i, n)] * d[k] * ap[packed.Index(k, j, n)]
			}
			a[i*n+j] = s
			a[j*n+i] = s
		}
	}
	return a
}

func factorize(t *testing.T, ap []float64, n, bs, workers int) (d []float64) {
	t.Helper()
	d = make([]float64, n)
	work := make([]float64, ScratchLen(bs, workers))
	if err := Factorize(n, ap, d, work, bs, workers); err != nil {
		t.Fatalf("n=%d,bs=%d,workers=%d: Factorize: %v", n, bs, workers, err)
	}
	return d
}

func TestFactorizeSPD(t *testing.T) {
	const tol = 1e-12

	// Positive definite with the exact integer factor
	// R = [[2,6,-8],[0,1,5],[0,0,3]]. The classical Cholesky factor is
	// unique, so every block size must reproduce it.
	rows := [][]float64{
		{4, 12, -16},
		{12, 37, -43},
		{-16, -43, 98},
	}
	wantR := []float64{2, 6, -8, 1, 5, 3}

	for _, bs := range []int{1, 2, 3} {
		for _, workers := range []int{1, 2} {
			ap := packSym(rows)
			d := factorize(t, ap, 3, bs, workers)
			for i, s := range d {
				if s != 1 {
					t.Errorf("bs=%d,workers=%d: d[%d] = %v, want 1", bs, workers, i, s)
				}
			}
			for k, want := range wantR {
				if math.Abs(ap[k]-want) > tol {
					t.Errorf("bs=%d,workers=%d: R[%d] = %v, want %v", bs, workers, k, ap[k], want)
				}
			}
		}
	}
}

func TestFactorizeSigns(t *testing.T) {
	// diag(1, -1, 1) factors as the identity with a flipped middle sign.
	rows := [][]float64{
		{1, 0, 0},
		{0, -1, 0},
		{0, 0, 1},
	}
	wantR := []float64{1, 0, 0, 1, 0, 1}
	wantD := []float64{1, -1, 1}

	for _, bs := range []int{1, 2, 3} {
		ap := packSym(rows)
		d := factorize(t, ap, 3, bs, 1)
		for i := range wantD {
			if d[i] != wantD[i] {
				t.Errorf("bs=%d: d[%d] = %v, want %v", bs, i, d[i], wantD[i])
			}
		}
		for k := range wantR {
			if ap[k] != wantR[k] {
				t.Errorf("bs=%d: R[%d] = %v, want %v", bs, k, ap[k], wantR[k])
			}
		}
	}
}

func TestFactorizeReconstruct(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, tc := range []struct {
		n, bs, workers int
	}{
		{n: 1, bs: 1, workers: 1},
		{n: 2, bs: 1, workers: 2},
		{n: 3, bs: 2, workers: 1},
		{n: 5, bs: 2, workers: 2},
		{n: 7, bs: 3, workers: 2},
		{n: 10, bs: 3, workers: 2},
		{n: 11, bs: 4, workers: 3},
		{n: 31, bs: 7, workers: 4},
		{n: 64, bs: 8, workers: 4},
	} {
		name := fmt.Sprintf("n=%d,bs=%d,workers=%d", tc.n, tc.bs, tc.workers)
		tol := 1e-11 * float64(tc.n)

		ap := randSym(rnd, tc.n)
		orig := make([]float64, len(ap))
		copy(orig, ap)

		d := factorize(t, ap, tc.n, tc.bs, tc.workers)

		got := reconstruct(tc.n, ap, d)
		for i := 0; i < tc.n; i++ {
			for j := i; j < tc.n; j++ {
				want := orig[packed.Index(i, j, tc.n)]
				if math.Abs(got[i*tc.n+j]-want) > tol {
					t.Errorf("%s: reconstructed A[%d,%d] = %v, want %v", name, i, j, got[i*tc.n+j], want)
				}
			}
		}
	}
}

// TestFactorizeWorkerInvariance checks that the factor is bitwise identical
// for every worker count: each block sees the same operations in the same
// order no matter which worker computes it.
func TestFactorizeWorkerInvariance(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for _, tc := range []struct {
		n, bs int
	}{
		{n: 16, bs: 4},
		{n: 23, bs: 4},
		{n: 30, bs: 7},
	} {
		base := randSym(rnd, tc.n)

		refAP := make([]float64, len(base))
		copy(refAP, base)
		refD := factorize(t, refAP, tc.n, tc.bs, 1)

		for _, workers := range []int{2, 4, 8} {
			ap := make([]float64, len(base))
			copy(ap, base)
			d := factorize(t, ap, tc.n, tc.bs, workers)

			for k := range ap {
				if ap[k] != refAP[k] {
					t.Fatalf("n=%d,bs=%d: factor differs at %d for %d workers", tc.n, tc.bs, k, workers)
				}
			}
			for i := range d {
				if d[i] != refD[i] {
					t.Fatalf("n=%d,bs=%d: signs differ at %d for %d workers", tc.n, tc.bs, i, workers)
				}
			}
		}
	}
}

func TestFactorizeSingular(t *testing.T) {
	// [[0,1],[1,0]] has a zero leading pivot.
	for _, bs := range []int{1, 2} {
		for _, workers := range []int{1, 2} {
			ap := []float64{0, 1, 0}
			d := make([]float64, 2)
			work := make([]float64, ScratchLen(bs, workers))
			err := Factorize(2, ap, d, work, bs, workers)
			if !errors.Is(err, ErrSingularPivot) {
				t.Errorf("bs=%d,workers=%d: err = %v, want ErrSingularPivot", bs, workers, err)
			}
		}
	}
}

func TestFactorizePanics(t *testing.T) {
	ap := []float64{1, 0, 1}
	d := make([]float64, 2)
	for _, tc := range []struct {
		name string
		fn   func()
	}{
		{name: "block size", fn: func() { _ = Factorize(2, ap, d, make([]float64, 100), 3, 1) }},
		{name: "workers", fn: func() { _ = Factorize(2, ap, d, make([]float64, 100), 1, 0) }},
		{name: "short work", fn: func() { _ = Factorize(2, ap, d, make([]float64, 1), 1, 1) }},
		{name: "short d", fn: func() { _ = Factorize(2, ap, d[:1], make([]float64, 100), 1, 1) }},
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: no panic", tc.name)
				}
			}()
			tc.fn()
		}()
	}
}
