// Copyright ©2026 The ldlsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ldl factors a dense symmetric matrix held in packed upper-triangular
// storage as A = Rᵀ·diag(d)·R, where R is upper triangular and d holds pivot
// signs in {-1, +1}, and solves linear systems with the resulting factor.
//
// The factorization is a sign-aware variant of the blocked Cholesky
// decomposition: a negative pivot flips the corresponding sign instead of
// aborting, so symmetric indefinite matrices are accepted as long as no pivot
// vanishes. Work is split across a fixed set of workers that proceed through
// barrier-synchronized phases; the two triangular solves run on a single
// goroutine.
//
// A solve of A·x = b is the sequence
//
//	Factorize(n, ap, d, work, bs, workers)  // ap ← R, d ← signs
//	SolveForward(n, ap, b, work, bs)        // b ← y with Rᵀ·y = b
//	SolveBackward(n, ap, d, b, work, bs)    // b ← x with diag(d)·R·x = y
//
// No allocation happens inside the package; callers provide the packed matrix,
// the sign vector and a scratch workspace of at least ScratchLen values.
package ldl
