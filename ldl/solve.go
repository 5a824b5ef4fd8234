// Copyright ©2026 The ldlsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ldl

import "github.com/sashuIya/ldlsolve/packed"

// SolveForward solves Rᵀ·y = b in place, where ap holds the packed upper
// triangular factor produced by Factorize and rhs holds b on entry and y on
// return. work must have at least bs² values.
func SolveForward(n int, ap, rhs, work []float64, bs int) error {
	checkSolve(n, ap, rhs, work, bs)

	ma := work[:bs*bs]
	for i := 0; i < n; i += bs {
		ni := min(bs, n-i)
		packed.GatherDiag(ap, i, n, ni, ma)
		if !solveBlockLower(ni, ma, rhs[i:]) {
			return ErrSingularPivot
		}
		for j := i + bs; j < n; j += bs {
			mj := min(bs, n-j)
			packed.GatherBlock(ap, i, j, n, ni, mj, ma)
			matVecSubTrans(ni, mj, ma, rhs[i:], rhs[j:])
		}
	}
	return nil
}

// SolveBackward solves diag(d)·R·x = y in place, where ap and d hold the
// factor and pivot signs produced by Factorize and rhs holds y on entry and
// the solution x on return. work must have at least bs² values.
func SolveBackward(n int, ap, d, rhs, work []float64, bs int) error {
	checkSolve(n, ap, rhs, work, bs)
	if len(d) < n {
		panic(shortD)
	}

	ma := work[:bs*bs]
	residue := n - n%bs
	if residue == n {
		residue -= bs
	}
	for i := residue; i >= 0; i -= bs {
		ni := min(bs, n-i)
		for j := residue; j > i; j -= bs {
			mj := min(bs, n-j)
			packed.GatherBlock(ap, i, j, n, ni, mj, ma)
			matVecSub(ni, mj, ma, rhs[j:], rhs[i:])
		}
		packed.GatherDiag(ap, i, n, ni, ma)
		if !solveBlockUpperDiag(ni, ma, d[i:], rhs[i:]) {
			return ErrSingularPivot
		}
	}
	return nil
}

func checkSolve(n int, ap, rhs, work []float64, bs int) {
	switch {
	case n < 0:
		panic(nLT0)
	case bs < 1 || bs > n:
		panic(badBlock)
	case len(ap) < packed.Len(n):
		panic(shortAP)
	case len(rhs) < n:
		panic(shortRHS)
	case len(work) < bs*bs:
		panic(shortWork)
	}
}
