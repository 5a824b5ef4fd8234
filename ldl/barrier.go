// Copyright ©2026 The ldlsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ldl

import "sync"

// barrier is a reusable synchronization point for a fixed set of workers.
// wait blocks until all workers of the current generation have arrived and
// then releases them together. Arrival and release go through the same mutex,
// so every write made before a wait is visible to every worker after it.
type barrier struct {
	mu   sync.Mutex
	cond *sync.Cond

	size  int
	count int
	gen   int
}

func newBarrier(size int) *barrier {
	b := &barrier{size: size}
	b.cond = sync.NewCond(&b.mu)
	return b
}

func (b *barrier) wait() {
	b.mu.Lock()
	gen := b.gen
	b.count++
	if b.count == b.size {
		b.count = 0
		b.gen++
		b.cond.Broadcast()
		b.mu.Unlock()
		return
	}
	for gen == b.gen {
		b.cond.Wait()
	}
	b.mu.Unlock()
}
