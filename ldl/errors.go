// Copyright ©2026 The ldlsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ldl

import "errors"

// ErrSingularPivot is returned when a diagonal pivot with magnitude below the
// working tolerance is encountered during factorization or a triangular solve.
// The matrix and sign vector are left in an unspecified state.
var ErrSingularPivot = errors.New("ldl: pivot magnitude below tolerance")

const (
	nLT0       = "ldl: n < 0"
	badBlock   = "ldl: block size out of range"
	badWorkers = "ldl: worker count out of range"
	shortAP    = "ldl: insufficient length of ap"
	shortD     = "ldl: insufficient length of d"
	shortRHS   = "ldl: insufficient length of rhs"
	shortWork  = "ldl: insufficient length of work"
)
