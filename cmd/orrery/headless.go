// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/orrery/animate"
	"cogentcore.org/orrery/bodies"
	"cogentcore.org/orrery/config"
	"cogentcore.org/orrery/metrics"
)

// Headless runs the animation without a window for the configured
// number of frames, or until interrupted, and prints the final poses.
// If MetricsAddr is set, metrics are served there only while the
// animation runs; the server shuts down when it ends.
func Headless(c *config.Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return headless(ctx, c, os.Stdout)
}

func headless(ctx context.Context, c *config.Config, w io.Writer) error {
	cat := bodies.New()
	errors.Log(cat.Validate())

	an := animate.New(cat, nil)
	an.Params = c.Animation
	for _, b := range cat.All() {
		if err := an.Bind(b.ID, &animate.Pose{}); err != nil {
			return err
		}
	}

	if c.MetricsAddr != "" {
		mc := metrics.NewCollector()
		an.Recorder = mc
		go func() {
			errors.Log(mc.Serve(ctx, c.MetricsAddr))
		}()
	}

	lp := animate.NewLoop(an, c.FPS, c.Frames)
	logx.PrintlnInfo("running", c.Frames, "frames at", c.FPS, "fps")
	st := time.Now()
	if err := lp.Run(ctx); err != nil {
		return err
	}
	logx.PrintlnInfo("ran", an.Frames(), "frames in", time.Since(st))
	return writePoses(w, cat, an, lp.Clock.Elapsed())
}

// writePoses writes a table of the current pose of every body.
func writePoses(w io.Writer, cat *bodies.Catalog, an *animate.Animator, elapsed time.Duration) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "frame %d, clock %v\n", an.Frames(), elapsed)
	fmt.Fprintln(tw, "body\tx\ty\tz\trotation")
	for _, b := range cat.All() {
		nd := an.Node(b.ID)
		if nd == nil {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\n", b.ID)
			continue
		}
		p := nd.Position()
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.4f\t%.4f\n", b.ID, p.X, p.Y, p.Z, nd.RotationY())
	}
	return tw.Flush()
}
