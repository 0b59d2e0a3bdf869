// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/xyz/xyzcore"
	"cogentcore.org/orrery/animate"
	"cogentcore.org/orrery/bodies"
	"cogentcore.org/orrery/config"
	"cogentcore.org/orrery/scene"
)

// Run opens a window with the animated solar system. The camera
// can be orbited, panned and zoomed with the mouse and keyboard.
func Run(c *config.Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	cat := bodies.New()
	errors.Log(cat.Validate())

	b := core.NewBody(c.Title)
	core.NewText(b).SetText(c.Title).SetType(core.TextHeadlineSmall)

	se := xyzcore.NewSceneEditor(b)
	se.UpdateWidget()
	sw := se.SceneWidget()
	vw := scene.Build(se.SceneXYZ(), cat, c.TexturesFS())

	// the clock only moves with the paint ticks of the window
	clock := &animate.ManualClock{}
	an := animate.New(cat, clock)
	an.Params = c.Animation
	if err := vw.Bind(an); err != nil {
		return err
	}

	sw.Animate(func(a *core.Animation) {
		clock.Advance(a.Delta)
		an.Update()
		vw.Update()
		sw.NeedsRender()
	})
	b.RunMainWindow()
	return nil
}
