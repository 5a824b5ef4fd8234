// Copyright ©2026 The ldlsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux && !darwin

package stopwatch

import "time"

// processCPU is not available on this platform; stages report zero CPU time.
func processCPU() time.Duration {
	return 0
}
