// Copyright ©2026 The ldlsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matgen builds the symmetric test systems consumed by the solver
// command: a synthetic generator, a reader for whitespace-separated matrix
// files, and helpers to form right-hand sides and printable dense views.
package matgen

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/blas"
	bgonum "gonum.org/v1/gonum/blas/gonum"
	"gonum.org/v1/gonum/mat"

	"github.com/sashuIya/ldlsolve/packed"
)

// FillSolution writes the reference solution: 1 at even indices, 0 at odd.
func FillSolution(x []float64) {
	for i := range x {
		if i%2 == 0 {
			x[i] = 1
		} else {
			x[i] = 0
		}
	}
}

// Fill populates ap with the packed upper triangle of the synthetic test
// matrix A[i,j] = |n − max(i,j)| and computes rhs = A·x.
func Fill(n int, ap, x, rhs []float64) {
	for i := 0; i < n; i++ {
		k := packed.Index(i, i, n)
		for j := i; j < n; j++ {
			ap[k+j-i] = math.Abs(float64(n - j))
		}
	}
	MulVec(n, ap, x, rhs)
}

// Read parses a full n×n matrix of whitespace-separated values in row-major
// order from r, stores its upper triangle in ap and computes rhs = A·x.
// Entries below the diagonal are read and discarded; the matrix is assumed
// symmetric.
func Read(n int, ap, x, rhs []float64, r io.Reader) error {
	br := bufio.NewReader(r)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var v float64
			if _, err := fmt.Fscan(br, &v); err != nil {
				return fmt.Errorf("matgen: reading element (%d,%d): %w", i, j, err)
			}
			if j >= i {
				ap[packed.Index(i, j, n)] = v
			}
		}
	}
	MulVec(n, ap, x, rhs)
	return nil
}

// MulVec computes y = A·x for the packed symmetric matrix A. The packed
// layout is BLAS row-major upper-packed storage, so this is a single Dspmv.
func MulVec(n int, ap, x, y []float64) {
	bgonum.Implementation{}.Dspmv(blas.Upper, n, 1, ap, x, 1, 0, y, 1)
}

// Dense expands packed storage into a symmetric matrix for printing.
func Dense(n int, ap []float64) *mat.SymDense {
	a := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			a.SetSym(i, j, ap[packed.Index(i, j, n)])
		}
	}
	return a
}

// Upper expands the packed upper triangular factor into a triangular matrix
// for printing.
func Upper(n int, ap []float64) *mat.TriDense {
	r := mat.NewTriDense(n, mat.Upper, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			r.SetTri(i, j, ap[packed.Index(i, j, n)])
		}
	}
	return r
}
