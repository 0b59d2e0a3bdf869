// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package animate

import (
	"context"
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/orrery/bodies"
	"cogentcore.org/orrery/orbit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecorder struct {
	frames  int
	skipped map[string]int
}

func (tr *testRecorder) Frame(d time.Duration) { tr.frames++ }

func (tr *testRecorder) Skipped(id string) {
	if tr.skipped == nil {
		tr.skipped = map[string]int{}
	}
	tr.skipped[id]++
}

// bindAll binds a new [Pose] to every body except those in skip.
func bindAll(t *testing.T, an *Animator, cat *bodies.Catalog, skip ...string) map[string]*Pose {
	poses := map[string]*Pose{}
outer:
	for _, b := range cat.All() {
		for _, s := range skip {
			if b.ID == s {
				continue outer
			}
		}
		ps := &Pose{}
		require.NoError(t, an.Bind(b.ID, ps))
		poses[b.ID] = ps
	}
	return poses
}

func TestUpdateOrbit(t *testing.T) {
	cat := bodies.New()
	clk := &ManualClock{}
	an := New(cat, clk)
	poses := bindAll(t, an, cat)
	assert.Equal(t, cat.Len(), an.NumBound())

	for _, step := range []time.Duration{0, 16 * time.Millisecond, time.Second, 90 * time.Second} {
		clk.Advance(step)
		an.Update()
		for _, b := range cat.Planets() {
			p := poses[b.ID].Pos
			want := orbit.Position(b.OrbitDistance, b.OrbitalPeriod, clk.Elapsed(), an.Params.TimeScale)
			assert.Equal(t, want, p, b.ID)
			assert.Equal(t, float32(0), p.Y)
			assertOnOrbit(t, b.OrbitDistance, p, b.ID)
		}
		assert.Equal(t, math32.Vector3{}, poses[bodies.SunID].Pos)
	}
	assert.Equal(t, 4, an.Frames())
}

func TestUpdateOverwritesPosition(t *testing.T) {
	cat := bodies.New()
	an := New(cat, &ManualClock{})
	ps := &Pose{Pos: math32.Vec3(100, 100, 100)}
	require.NoError(t, an.Bind("earth", ps))
	an.Update()
	earth, _ := cat.ByID("earth")
	assert.Equal(t, math32.Vec3(0, 0, earth.OrbitDistance), ps.Pos)
	an.Update()
	assert.Equal(t, math32.Vec3(0, 0, earth.OrbitDistance), ps.Pos)
}

func TestRotationDirection(t *testing.T) {
	cat := bodies.New()
	clk := &ManualClock{}
	an := New(cat, clk)
	poses := bindAll(t, an, cat)

	prev := map[string]float32{}
	for range 100 {
		clk.Advance(16 * time.Millisecond)
		an.Update()
		for _, b := range cat.All() {
			ang := poses[b.ID].RotationY()
			if b.RotationPeriod > 0 {
				assert.GreaterOrEqual(t, ang, prev[b.ID], b.ID)
			} else {
				assert.LessOrEqual(t, ang, prev[b.ID], b.ID)
			}
			prev[b.ID] = ang
		}
	}
	assert.InDelta(t, 1.0, poses[bodies.SunID].Angle, 1e-4)
	assert.InDelta(t, 10.0, poses["earth"].Angle, 1e-3)
	assert.Less(t, poses["uranus"].Angle, float32(0))
	assert.InDelta(t, -poses["neptune"].Angle, poses["uranus"].Angle, 1e-3)
}

func TestSpinPerFrame(t *testing.T) {
	cat := bodies.New()
	slow := &ManualClock{}
	fast := &ManualClock{}
	as := New(cat, slow)
	af := New(cat, fast)
	ps := &Pose{}
	pf := &Pose{}
	require.NoError(t, as.Bind("mars", ps))
	require.NoError(t, af.Bind("mars", pf))
	for range 30 {
		slow.Advance(time.Millisecond)
		fast.Advance(time.Second)
		as.Update()
		af.Update()
	}
	// same number of frames gives the same spin, whatever the elapsed time
	assert.Equal(t, ps.Angle, pf.Angle)
	assert.NotEqual(t, ps.Pos, pf.Pos)
}

func TestMissingNode(t *testing.T) {
	cat := bodies.New()
	clk := &ManualClock{}
	an := New(cat, clk)
	rec := &testRecorder{}
	an.Recorder = rec
	poses := bindAll(t, an, cat, "mars", bodies.SunID)

	clk.Advance(time.Second)
	assert.NotPanics(t, an.Update)
	assert.Equal(t, 1, rec.frames)
	assert.Equal(t, 1, rec.skipped["mars"])
	assert.Equal(t, 1, rec.skipped[bodies.SunID])
	assert.Len(t, rec.skipped, 2)

	for id, ps := range poses {
		b, _ := cat.ByID(id)
		want := orbit.Position(b.OrbitDistance, b.OrbitalPeriod, time.Second, an.Params.TimeScale)
		assert.Equal(t, want, ps.Pos, id)
		assert.NotZero(t, ps.Angle, id)
	}

	// binding later picks the body up on the next frame
	mars := &Pose{}
	require.NoError(t, an.Bind("mars", mars))
	an.Update()
	assert.NotZero(t, mars.Angle)
	assert.Equal(t, 1, rec.skipped["mars"])

	an.Unbind("mars")
	assert.Nil(t, an.Node("mars"))
	an.Update()
	assert.Equal(t, 2, rec.skipped["mars"])
}

func TestBind(t *testing.T) {
	an := New(bodies.New(), &ManualClock{})
	assert.Error(t, an.Bind("pluto", &Pose{}))

	a, b := &Pose{}, &Pose{}
	require.NoError(t, an.Bind("venus", a))
	require.NoError(t, an.Bind("venus", b))
	assert.Same(t, b, an.Node("venus"))
	assert.Equal(t, 1, an.NumBound())

	require.NoError(t, an.Bind("venus", nil))
	assert.Nil(t, an.Node("venus"))
	assert.Equal(t, 0, an.NumBound())
}

func TestManualClock(t *testing.T) {
	clk := &ManualClock{}
	clk.Advance(time.Second)
	clk.Advance(-time.Hour)
	assert.Equal(t, time.Second, clk.Elapsed())

	wc := NewWallClock()
	e1 := wc.Elapsed()
	e2 := wc.Elapsed()
	assert.GreaterOrEqual(t, e2, e1)
}

func TestNilClock(t *testing.T) {
	cat := bodies.New()
	an := New(cat, nil)
	require.NotNil(t, an.Clock)
	assert.IsType(t, &WallClock{}, an.Clock)

	ps := &Pose{}
	require.NoError(t, an.Bind("mars", ps))
	assert.NotPanics(t, an.Update)
	assert.Equal(t, 1, an.Frames())
	mars, _ := cat.ByID("mars")
	assertOnOrbit(t, mars.OrbitDistance, ps.Pos, "mars")
}

func TestLoop(t *testing.T) {
	cat := bodies.New()
	an := New(cat, nil)
	poses := bindAll(t, an, cat)
	lp := NewLoop(an, 1000, 5)
	var seen []int
	lp.OnFrame = func(frame int) { seen = append(seen, frame) }

	require.NoError(t, lp.Run(context.Background()))
	assert.Equal(t, 5, an.Frames())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, seen)
	assert.Equal(t, 5*lp.Interval(), lp.Clock.Elapsed())

	earth, _ := cat.ByID("earth")
	want := orbit.Position(earth.OrbitDistance, earth.OrbitalPeriod, lp.Clock.Elapsed(), an.Params.TimeScale)
	assert.Equal(t, want, poses["earth"].Pos)
}

func TestLoopCancel(t *testing.T) {
	an := New(bodies.New(), nil)
	lp := NewLoop(an, 1000, 0)
	ctx, cancel := context.WithCancel(context.Background())
	lp.OnFrame = func(frame int) {
		if frame == 9 {
			cancel()
		}
	}
	require.NoError(t, lp.Run(ctx))
	assert.Equal(t, 10, an.Frames())
}

func TestLoopFPS(t *testing.T) {
	lp := NewLoop(New(bodies.New(), nil), 0, 1)
	assert.Error(t, lp.Run(context.Background()))
}

// assertOnOrbit checks that p lies on the circle of radius d, with a
// tolerance relative to d² since distances span two orders of magnitude.
func assertOnOrbit(t *testing.T, d float32, p math32.Vector3, id string) {
	t.Helper()
	d2 := float64(d) * float64(d)
	r2 := float64(p.X)*float64(p.X) + float64(p.Z)*float64(p.Z)
	assert.InDelta(t, d2, r2, 1e-6*max(1, d2), id)
}
