// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package animate

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Node is a renderable node owned by the rendering layer, onto which
// the [Animator] writes the pose of one body every frame. The animator
// only borrows nodes; it never creates or destroys them.
type Node interface {

	// Position returns the current position of the node.
	Position() math32.Vector3

	// SetPosition sets the absolute position of the node.
	SetPosition(pos math32.Vector3)

	// RotationY returns the accumulated rotation angle of the node
	// about its own vertical axis, in radians.
	RotationY() float32

	// RotateY adds delta radians to the rotation about the vertical axis.
	RotateY(delta float32)
}

// Pose is a [Node] that only stores the pose values, with no rendering.
// It is used for headless runs.
type Pose struct {
	Pos   math32.Vector3
	Angle float32
}

func (ps *Pose) Position() math32.Vector3 { return ps.Pos }

func (ps *Pose) SetPosition(pos math32.Vector3) { ps.Pos = pos }

func (ps *Pose) RotationY() float32 { return ps.Angle }

func (ps *Pose) RotateY(delta float32) { ps.Angle += delta }

func (ps *Pose) String() string {
	return fmt.Sprintf("pos: (%.4f, %.4f, %.4f) rot: %.4f", ps.Pos.X, ps.Pos.Y, ps.Pos.Z, ps.Angle)
}
