// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orbit provides the pure functions for circular orbits:
// the position of a body along its orbit at a given time, and
// the closed polyline used to draw the orbit path.
package orbit

import (
	"math"
	"time"

	"cogentcore.org/core/math32"
)

// PathSegments is the number of segments in an orbit [Path].
const PathSegments = 64

// Phase returns the orbital phase angle, in radians, of a body with the given
// orbital period in days after the given elapsed time. The phase advances one
// radian every period * timeScale seconds of elapsed time, so one revolution
// takes 2π * period * timeScale seconds.
func Phase(period float32, elapsed time.Duration, timeScale float64) float64 {
	return elapsed.Seconds() / (float64(period) * timeScale)
}

// Position returns the position on a circular orbit of the given distance
// in the XZ plane after the given elapsed time. Y is always 0.
// At elapsed time 0 the body is on the +Z axis.
func Position(distance, period float32, elapsed time.Duration, timeScale float64) math32.Vector3 {
	t := Phase(period, elapsed, timeScale)
	d := float64(distance)
	return math32.Vec3(float32(d*math.Sin(t)), 0, float32(d*math.Cos(t)))
}

// Path returns the closed polyline of an orbit with the given radii
// along X and Z: [PathSegments] evenly spaced points starting on the +X axis,
// followed by a copy of the first point, so that the line closes.
func Path(xRadius, zRadius float32) []math32.Vector3 {
	pts := make([]math32.Vector3, PathSegments+1)
	for i := range PathSegments {
		ang := float64(i) / PathSegments * 2 * math.Pi
		pts[i] = math32.Vec3(xRadius*float32(math.Cos(ang)), 0, zRadius*float32(math.Sin(ang)))
	}
	pts[PathSegments] = pts[0]
	return pts
}
