// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package animate moves the bodies of a [bodies.Catalog] every frame:
// planets along their circular orbits, and every body about its own axis.
// It writes the results into [Node] handles owned by the rendering layer.
package animate

import (
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/orrery/bodies"
	"cogentcore.org/orrery/orbit"
)

// Params are the fixed rates that drive the animation.
type Params struct {

	// TimeScale is the number of clock seconds per simulated day.
	// The orbital phase advances one radian every OrbitalPeriod * TimeScale
	// seconds, so a planet completes one orbit every 2π times that.
	TimeScale float64 `default:"0.001"`

	// SpinRate is divided by a body's rotation period (in days) to get the
	// rotation added every frame, in radians.
	SpinRate float32 `default:"0.1"`

	// SunSpin is the rotation added to the sun every frame, in radians.
	SunSpin float32 `default:"0.01"`
}

// Defaults sets the reference values.
func (p *Params) Defaults() {
	p.TimeScale = 0.001
	p.SpinRate = 0.1
	p.SunSpin = 0.01
}

// Recorder receives per-frame statistics from an [Animator].
type Recorder interface {

	// Frame is called after every update with the time it took.
	Frame(d time.Duration)

	// Skipped is called for every body skipped in a frame
	// because it had no node.
	Skipped(id string)
}

// Animator updates the pose of every body once per frame.
// It is not safe for concurrent use: all calls must come from the
// render loop that owns the nodes.
//
// Spin is added per frame, not per unit time, so bodies spin faster
// at higher frame rates. Orbital positions only depend on the clock.
type Animator struct {

	// Params are the animation rates.
	Params Params

	// Clock is the scene clock, which is only read.
	Clock Clock

	// Recorder, if set, receives frame statistics.
	Recorder Recorder

	sun     bodies.Body
	planets []bodies.Body

	// nodes are the bound nodes, keyed by body id.
	nodes *ordmap.Map[string, Node]

	frames int
}

// New returns a new [Animator] for the bodies in the given catalog,
// reading the given clock, with default [Params] and no nodes bound.
// A nil clock is replaced by a [WallClock] starting now.
func New(cat *bodies.Catalog, clock Clock) *Animator {
	if clock == nil {
		clock = NewWallClock()
	}
	an := &Animator{
		Clock:   clock,
		sun:     cat.Sun(),
		planets: cat.Planets(),
		nodes:   ordmap.New[string, Node](),
	}
	an.Params.Defaults()
	return an
}

// Bind attaches the node for the body with the given id, replacing
// any previous one. A nil node leaves the body unbound.
func (an *Animator) Bind(id string, node Node) error {
	if !an.hasBody(id) {
		return fmt.Errorf("animate: no body with id %q", id)
	}
	if node == nil {
		an.nodes.DeleteKey(id)
		return nil
	}
	an.nodes.Add(id, node)
	return nil
}

// Unbind detaches the node of the body with the given id, if any.
func (an *Animator) Unbind(id string) {
	an.nodes.DeleteKey(id)
}

// Node returns the node bound to the body with the given id, or nil.
func (an *Animator) Node(id string) Node {
	nd, _ := an.nodes.ValueByKeyTry(id)
	return nd
}

// NumBound returns the number of bodies with a bound node.
func (an *Animator) NumBound() int {
	return an.nodes.Len()
}

// Frames returns the number of frames updated so far.
func (an *Animator) Frames() int {
	return an.frames
}

func (an *Animator) hasBody(id string) bool {
	if id == an.sun.ID {
		return true
	}
	for i := range an.planets {
		if an.planets[i].ID == id {
			return true
		}
	}
	return false
}

// Update is the per-frame update. It reads the clock once, sets the
// absolute orbital position of every planet, and adds one frame of spin
// to every body. Bodies with no node are skipped for this frame.
func (an *Animator) Update() {
	st := time.Now()
	elapsed := an.Clock.Elapsed()

	if sn := an.Node(an.sun.ID); sn != nil {
		sn.RotateY(an.Params.SunSpin)
	} else {
		an.skip(an.sun.ID)
	}

	for i := range an.planets {
		b := &an.planets[i]
		nd := an.Node(b.ID)
		if nd == nil {
			an.skip(b.ID)
			continue
		}
		nd.SetPosition(orbit.Position(b.OrbitDistance, b.OrbitalPeriod, elapsed, an.Params.TimeScale))
		nd.RotateY(an.Params.SpinRate / b.RotationPeriod)
	}

	an.frames++
	if an.Recorder != nil {
		an.Recorder.Frame(time.Since(st))
	}
}

func (an *Animator) skip(id string) {
	slog.Debug("animate: body has no node, skipping frame", "body", id, "frame", an.frames)
	if an.Recorder != nil {
		an.Recorder.Skipped(id)
	}
}
