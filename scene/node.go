// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
)

// SolidNode is an animate.Node backed by an [xyz.Solid] owned by the scene.
// The rotation angle is kept here and written to the solid as a rotation
// about its Y axis. All methods do nothing if the solid is nil.
type SolidNode struct {

	// ID is the id of the body the solid renders.
	ID string

	// Solid is the borrowed solid.
	Solid *xyz.Solid

	angle float32
}

func (sn *SolidNode) Position() math32.Vector3 {
	if sn.Solid == nil {
		return math32.Vector3{}
	}
	return sn.Solid.Pose.Pos
}

func (sn *SolidNode) SetPosition(pos math32.Vector3) {
	if sn.Solid == nil {
		return
	}
	sn.Solid.Pose.Pos = pos
}

func (sn *SolidNode) RotationY() float32 {
	return sn.angle
}

func (sn *SolidNode) RotateY(delta float32) {
	if sn.Solid == nil {
		return
	}
	sn.angle += delta
	sn.Solid.Pose.Quat.SetFromAxisAngle(math32.Vec3(0, 1, 0), sn.angle)
}
