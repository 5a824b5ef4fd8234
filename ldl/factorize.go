// Copyright ©2026 The ldlsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ldl

import (
	"golang.org/x/sync/errgroup"

	"github.com/sashuIya/ldlsolve/packed"
)

// MaxWorkers is the largest worker count Factorize accepts.
const MaxWorkers = 128

// Factorization failure stages recorded in the shared status field.
const (
	statusFactor = 1
	statusInvert = 2
)

// Factorize overwrites the packed upper triangle ap of a symmetric n×n matrix
// with its upper triangular factor R and fills d with the pivot signs, so that
// the original matrix equals Rᵀ·diag(d)·R. The factorization proceeds over
// bs×bs blocks, with the block columns of each outer step striped round-robin
// over the given number of workers. Worker 0 runs on the calling goroutine.
//
// work must have at least ScratchLen(bs, workers) values and must not be read
// or written by anyone else until Factorize returns.
//
// Factorize returns ErrSingularPivot when a pivot magnitude falls below the
// working tolerance; ap and d are then left in an unspecified state.
func Factorize(n int, ap, d, work []float64, bs, workers int) error {
	switch {
	case n < 0:
		panic(nLT0)
	case bs < 1 || bs > n:
		panic(badBlock)
	case workers < 1 || workers > MaxWorkers:
		panic(badWorkers)
	case len(ap) < packed.Len(n):
		panic(shortAP)
	case len(d) < n:
		panic(shortD)
	case len(work) < ScratchLen(bs, workers):
		panic(shortWork)
	}

	f := &factorizer{
		n:       n,
		bs:      bs,
		workers: workers,
		ap:      ap,
		d:       d,
		work:    work,
		bar:     newBarrier(workers),
	}

	var g errgroup.Group
	for t := 1; t < workers; t++ {
		t := t
		g.Go(func() error {
			return f.run(t)
		})
	}
	err := f.run(0)
	if werr := g.Wait(); err == nil {
		err = werr
	}
	return err
}

type factorizer struct {
	n, bs, workers int
	ap, d, work    []float64
	bar            *barrier

	// status is written only by worker 0 between two barrier waits and read
	// by every worker immediately after the second, so the barrier provides
	// the ordering; once set it is never cleared.
	status int
}

// run executes the barrier-synchronized phase loop for one worker. All
// workers traverse the same outer iterations and hit the same three barrier
// waits per iteration, whether or not they own any block column in it.
func (f *factorizer) run(id int) error {
	n, bs := f.n, f.bs
	stride := f.workers * bs
	s := carveScratch(f.work, bs, id)

	for i := 0; i < n; i += bs {
		ni := min(bs, n-i)

		// Phase 1: fold the factored block rows above i into this worker's
		// stripe of block columns, diagonal block included.
		for j := i + id*bs; j < n; j += stride {
			mj := min(bs, n-j)
			if j == i {
				packed.GatherDiag(f.ap, i, n, ni, s.mc)
			} else {
				packed.GatherBlock(f.ap, i, j, n, ni, mj, s.mc)
			}
			for k := 0; k < i; k += bs {
				packed.GatherBlock(f.ap, k, i, n, bs, ni, s.ma)
				packed.GatherBlock(f.ap, k, j, n, bs, mj, s.mb)
				schurSub(bs, ni, mj, s.ma, s.mb, f.d[k:], s.mc)
			}
			if j == i {
				packed.ScatterDiag(f.ap, i, n, ni, s.mc)
			} else {
				packed.ScatterBlock(f.ap, i, j, n, ni, mj, s.mc)
			}
		}
		f.bar.wait()

		// Phase 2: worker 0 factors the diagonal block and inverts it into
		// the shared block for the trailing scaling.
		if id == 0 {
			packed.GatherDiag(f.ap, i, n, ni, s.mb)
			switch {
			case !choleskyBlock(ni, s.mb, f.d[i:]):
				f.status = statusFactor
			default:
				packed.ScatterDiag(f.ap, i, n, ni, s.mb)
				if !invUpperDiag(ni, s.mb, f.d[i:], s.me) {
					f.status = statusInvert
				}
			}
		}
		f.bar.wait()
		if f.status != 0 {
			return ErrSingularPivot
		}

		// Phase 3: copy the inverted diagonal block into private scratch and
		// rescale this worker's stripe of the trailing block row.
		copy(s.md[:ni*ni], s.me[:ni*ni])
		for j := i + bs + id*bs; j < n; j += stride {
			mj := min(bs, n-j)
			packed.GatherBlock(f.ap, i, j, n, ni, mj, s.mb)
			mulTransA(ni, ni, mj, s.md, s.mb, s.mc)
			packed.ScatterBlock(f.ap, i, j, n, ni, mj, s.mc)
		}
		f.bar.wait()
	}
	return nil
}
