// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene builds the 3D solar system as an [xyz.Scene] from a
// [bodies.Catalog], and exposes its solids as [animate.Node]s.
package scene

import (
	"io/fs"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/orrery/animate"
	"cogentcore.org/orrery/bodies"
	"cogentcore.org/orrery/orbit"
)

const (
	// SphereSegments is the number of segments of body spheres.
	SphereSegments = 32

	// StarsRadius is the radius of the starfield sphere around the scene.
	StarsRadius = 500

	// StarsSegments is the number of segments of the starfield sphere.
	StarsSegments = 64

	// StarsTexture is the texture file of the starfield.
	StarsTexture = "stars.jpg"

	// OrbitWidth is the width of the orbit lines, in scene units.
	OrbitWidth = 0.02

	// CameraFOV is the vertical field of view of the camera, in degrees.
	CameraFOV = 45
)

var (
	// CameraPos is the initial position of the camera, looking at the sun.
	CameraPos = math32.Vec3(0, 20, 25)

	// OrbitColor is the color of the orbit lines.
	OrbitColor = colors.FromRGB(0xbf, 0xbb, 0xda)
)

// View is the xyz rendering of a catalog: one solid per body, the orbit
// of every planet, the starfield and the lights. The scene owns all
// the solids; the view only keeps references to them.
type View struct {

	// Scene is the scene the view is built in.
	Scene *xyz.Scene

	// Nodes are the body solids, in catalog order with the sun first.
	Nodes []*SolidNode

	// Orbits are the orbit line solids, in planet order.
	Orbits []*xyz.Solid

	// Stars is the starfield solid.
	Stars *xyz.Solid

	// Textures is the file system textures are read from. It may be nil,
	// in which case all bodies use their plain color.
	Textures fs.FS
}

// Build adds the solar system for the given catalog to the given scene,
// reading textures by name from the given file system, and configures
// the lights and the default camera.
func Build(sc *xyz.Scene, cat *bodies.Catalog, textures fs.FS) *View {
	vw := &View{Scene: sc, Textures: textures}
	sc.Background = colors.Uniform(colors.Black)

	xyz.NewAmbient(sc, "ambient", 0.3, xyz.DirectSun)
	sun := xyz.NewPoint(sc, "sunlight", 1, xyz.DirectSun)
	sun.Pos.Set(0, 0, 0)

	vw.Stars = xyz.NewSolid(sc)
	vw.Stars.SetName("stars")
	vw.Stars.SetMesh(xyz.NewSphere(sc, "stars", StarsRadius, StarsSegments)).SetColor(colors.White)
	vw.Stars.Material.CullBack = false
	vw.Stars.Material.CullFront = true
	vw.setTexture(vw.Stars, "stars", StarsTexture)

	for _, b := range cat.All() {
		vw.Nodes = append(vw.Nodes, vw.addBody(b))
		if b.IsSun() {
			continue
		}
		vw.Orbits = append(vw.Orbits, vw.addOrbit(b))
	}

	sc.Camera.FOV = CameraFOV
	sc.Camera.Pose.Pos = CameraPos
	sc.Camera.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
	sc.SaveCamera("default")
	return vw
}

// addBody adds the sphere of the given body.
func (vw *View) addBody(b bodies.Body) *SolidNode {
	sc := vw.Scene
	ms := xyz.NewSphere(sc, b.ID, b.Radius, SphereSegments)
	sld := xyz.NewSolid(sc)
	sld.SetName(b.ID)
	sld.SetMesh(ms).SetColor(b.Color)
	if b.IsSun() {
		sld.SetEmissive(b.Color)
	}
	vw.setTexture(sld, b.ID, b.Texture)
	sld.SetPos(0, 0, b.OrbitDistance) // orbit start
	return &SolidNode{ID: b.ID, Solid: sld}
}

// addOrbit adds the orbit line of the given planet.
func (vw *View) addOrbit(b bodies.Body) *xyz.Solid {
	sc := vw.Scene
	nm := b.ID + "-orbit"
	lns := xyz.NewLines(sc, nm, orbit.Path(b.OrbitDistance, b.OrbitDistance), math32.Vec2(OrbitWidth, OrbitWidth), xyz.OpenLines)
	sld := xyz.NewSolid(sc)
	sld.SetName(nm)
	sld.SetMesh(lns).SetColor(OrbitColor)
	return sld
}

// setTexture sets the texture of the solid from the given file, if it
// exists in the texture file system. Otherwise the solid keeps its color.
func (vw *View) setTexture(sld *xyz.Solid, name, file string) {
	if vw.Textures == nil || file == "" {
		return
	}
	if _, err := fs.Stat(vw.Textures, file); err != nil {
		slog.Warn("texture not found, using plain color", "body", name, "file", file, "err", err)
		return
	}
	sld.SetTexture(xyz.NewTextureFileFS(vw.Textures, vw.Scene, name, file))
}

// Node returns the node of the body with the given id, or nil.
func (vw *View) Node(id string) *SolidNode {
	for _, nd := range vw.Nodes {
		if nd.ID == id {
			return nd
		}
	}
	return nil
}

// Bind binds every body solid of the view to the given animator.
func (vw *View) Bind(an *animate.Animator) error {
	var errs []error
	for _, nd := range vw.Nodes {
		errs = append(errs, an.Bind(nd.ID, nd))
	}
	return errors.Join(errs...)
}

// Update marks the scene as needing an update after the
// nodes have been moved.
func (vw *View) Update() {
	vw.Scene.SetNeedsUpdate()
}
