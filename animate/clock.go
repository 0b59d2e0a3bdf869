// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package animate

import "time"

// Clock is the scene clock read by the [Animator]. Elapsed must never
// decrease. The animator never advances the clock itself.
type Clock interface {
	Elapsed() time.Duration
}

// WallClock is a [Clock] measuring wall time since it was started.
type WallClock struct {
	start time.Time
}

// NewWallClock returns a [WallClock] started now.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

func (wc *WallClock) Elapsed() time.Duration {
	return time.Since(wc.start)
}

// ManualClock is a [Clock] that only moves when it is advanced,
// for example by the frame delta of a render loop.
type ManualClock struct {
	elapsed time.Duration
}

func (mc *ManualClock) Elapsed() time.Duration {
	return mc.elapsed
}

// Advance moves the clock forward by d. Negative durations are ignored
// so that the clock stays monotonic.
func (mc *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		mc.elapsed += d
	}
}
