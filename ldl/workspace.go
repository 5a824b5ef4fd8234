// Copyright ©2026 The ldlsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ldl

// ScratchLen returns the workspace length Factorize requires for the given
// block size and worker count: one shared block plus four private blocks per
// worker. SolveForward and SolveBackward use the first bs² values of the same
// region; they never run concurrently with Factorize.
func ScratchLen(bs, workers int) int {
	return bs * bs * (1 + 4*workers)
}

// scratch is one worker's view of the shared workspace. The regions of
// distinct workers are disjoint except for me, which only worker 0 writes,
// strictly between two barrier waits.
type scratch struct {
	me []float64 // inverted diagonal block of the current outer step
	ma []float64
	mb []float64
	mc []float64
	md []float64
}

func carveScratch(work []float64, bs, id int) scratch {
	sq := bs * bs
	off := sq + id*4*sq
	return scratch{
		me: work[:sq],
		ma: work[off : off+sq],
		mb: work[off+sq : off+2*sq],
		mc: work[off+2*sq : off+3*sq],
		md: work[off+3*sq : off+4*sq],
	}
}
