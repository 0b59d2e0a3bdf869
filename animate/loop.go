// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package animate

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// Loop is a frame loop for running an [Animator] without a window.
// Each frame advances its [ManualClock] by one frame interval and then
// calls [Animator.Update], so orbital positions follow frame time
// rather than wall time.
type Loop struct {

	// Animator is the animator to update every frame.
	Animator *Animator

	// Clock is the clock read by the animator, advanced by the loop.
	Clock *ManualClock

	// FPS is the target number of frames per second.
	FPS float64

	// Frames is the number of frames to run; 0 runs until the
	// context is done.
	Frames int

	// OnFrame, if set, is called after every frame.
	OnFrame func(frame int)
}

// NewLoop returns a [Loop] driving the given animator at the given frame
// rate. The animator's clock is replaced by the loop's [ManualClock].
func NewLoop(an *Animator, fps float64, frames int) *Loop {
	lp := &Loop{Animator: an, Clock: &ManualClock{}, FPS: fps, Frames: frames}
	an.Clock = lp.Clock
	return lp
}

// Interval returns the clock time of one frame.
func (lp *Loop) Interval() time.Duration {
	return time.Duration(float64(time.Second) / lp.FPS)
}

// Run runs frames, paced to at most FPS per second, until Frames have
// run or ctx is done. Stopping because ctx is done is not an error.
func (lp *Loop) Run(ctx context.Context) error {
	if lp.FPS <= 0 {
		return fmt.Errorf("animate: frame rate must be positive, got %g", lp.FPS)
	}
	lim := rate.NewLimiter(rate.Limit(lp.FPS), 1)
	dt := lp.Interval()
	for n := 0; lp.Frames <= 0 || n < lp.Frames; n++ {
		if err := lim.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		lp.Clock.Advance(dt)
		lp.Animator.Update()
		if lp.OnFrame != nil {
			lp.OnFrame(n)
		}
	}
	return nil
}
