// Copyright ©2026 The ldlsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stopwatch measures per-stage CPU and wall-clock time for the solver
// command.
package stopwatch

import "time"

// Stopwatch tracks process CPU time and wall-clock time from a fixed start,
// handing out per-stage deltas.
type Stopwatch struct {
	startWall time.Time
	startCPU  time.Duration
	lastWall  time.Time
	lastCPU   time.Duration
}

// New starts a stopwatch.
func New() *Stopwatch {
	now := time.Now()
	cpu := processCPU()
	return &Stopwatch{startWall: now, startCPU: cpu, lastWall: now, lastCPU: cpu}
}

// Stage returns the CPU and wall-clock time spent since the previous call to
// Stage, or since New for the first call.
func (s *Stopwatch) Stage() (cpu, wall time.Duration) {
	now := time.Now()
	c := processCPU()
	cpu = c - s.lastCPU
	wall = now.Sub(s.lastWall)
	s.lastCPU, s.lastWall = c, now
	return cpu, wall
}

// Total returns the CPU and wall-clock time since New.
func (s *Stopwatch) Total() (cpu, wall time.Duration) {
	return processCPU() - s.startCPU, time.Since(s.startWall)
}
