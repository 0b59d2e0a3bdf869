// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bodies provides the fixed catalog of celestial bodies
// (the sun and eight planets) rendered by the orrery, with their
// real-world figures scaled into scene units.
package bodies

import (
	"fmt"
	"image/color"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
)

// Scale factors mapping real-world kilometers into scene units.
// These are visual compromises, not physical ratios.
const (
	// DistanceUnit converts a mean orbital distance in km to scene units.
	DistanceUnit = 0.0000001

	// RadiusUnit converts a radius in km to scene units for the
	// terrestrial planets, Saturn, and the ice giants.
	RadiusUnit = 0.0001

	// GiantRadiusUnit converts Jupiter's radius in km to scene units.
	GiantRadiusUnit = 0.000003

	// SaturnDamping is applied on top of [RadiusUnit] to Saturn's radius.
	SaturnDamping = 0.5

	// DaysPerYear converts orbital periods in years to days.
	DaysPerYear = 365

	// SunRadius is the rendered radius of the sun, in scene units.
	SunRadius = 4
)

// Body is a celestial body in the catalog. It is a value record
// and is never modified once the catalog is built.
type Body struct {

	// ID is the lowercase identifier of the body, e.g. "mercury".
	ID string `yaml:"id" toml:"id"`

	// Name is the display name of the body.
	Name string `yaml:"name" toml:"name"`

	// OrbitDistance is the distance from the origin in scene units.
	// It is 0 for the sun.
	OrbitDistance float32 `yaml:"orbit_distance" toml:"orbit_distance"`

	// Radius is the rendered sphere radius in scene units.
	Radius float32 `yaml:"radius" toml:"radius"`

	// Texture is the file name of the surface texture. It is an opaque
	// reference that is only resolved by the rendering layer.
	Texture string `yaml:"texture" toml:"texture"`

	// OrbitalPeriod is the time for one full revolution, in days.
	// It is 0 for the sun, which does not orbit.
	OrbitalPeriod float32 `yaml:"orbital_period" toml:"orbital_period"`

	// RotationPeriod is the time for one full spin about the body's own axis,
	// in days. A negative value means retrograde rotation.
	RotationPeriod float32 `yaml:"rotation_period" toml:"rotation_period"`

	// Color is the surface color used when the texture is unavailable.
	Color color.RGBA `yaml:"-" toml:"-"`
}

// IsSun returns whether the body is the sun.
func (b *Body) IsSun() bool {
	return b.ID == SunID
}

// IsRetrograde returns whether the body spins opposite to the others.
func (b *Body) IsRetrograde() bool {
	return b.RotationPeriod < 0
}

func (b Body) String() string {
	return fmt.Sprintf("%s: dist %g radius %g period %gd spin %gd", b.ID, b.OrbitDistance, b.Radius, b.OrbitalPeriod, b.RotationPeriod)
}

// Validate returns an error if the body violates any of the catalog
// invariants.
func (b *Body) Validate() error {
	var errs []error
	if b.OrbitDistance < 0 {
		errs = append(errs, fmt.Errorf("%s: negative orbit distance %g", b.ID, b.OrbitDistance))
	}
	if b.Radius <= 0 {
		errs = append(errs, fmt.Errorf("%s: radius %g must be positive", b.ID, b.Radius))
	}
	if b.RotationPeriod == 0 {
		errs = append(errs, fmt.Errorf("%s: rotation period must not be zero", b.ID))
	}
	if !b.IsSun() && b.OrbitalPeriod <= 0 {
		errs = append(errs, fmt.Errorf("%s: orbital period %g must be positive", b.ID, b.OrbitalPeriod))
	}
	return errors.Join(errs...)
}

// SunID is the [Body.ID] of the sun.
const SunID = "sun"

// NumPlanets is the number of planets in the catalog.
const NumPlanets = 8

// raw holds the real-world figures a planet is scaled from.
type raw struct {
	id, name string

	// equatorial diameter in km
	diameter float64

	// mean orbital distance in km
	distance float64

	// orbital period in years
	years float64

	// rotation period in days
	rotation float64

	// radius unit used for this planet
	unit float64

	// extra radius factor
	damping float64

	color color.RGBA
}

// planets is the fixed table of planets, innermost first.
// Jupiter's diameter figure is paired with [GiantRadiusUnit] and
// is kept as is.
var planets = []raw{
	{"mercury", "Mercury", 4878, 579e5, 0.24, 58.65, RadiusUnit, 1, colors.FromRGB(181, 181, 181)},
	{"venus", "Venus", 12104, 1082e5, 0.62, 243, RadiusUnit, 1, colors.FromRGB(232, 205, 162)},
	{"earth", "Earth", 12756, 1496e5, 1, 1, RadiusUnit, 1, colors.FromRGB(46, 134, 171)},
	{"mars", "Mars", 6787, 2279e5, 1.88, 1.03, RadiusUnit, 1, colors.FromRGB(193, 68, 14)},
	{"jupiter", "Jupiter", 1427960, 7783e5, 11.86, 0.41, GiantRadiusUnit, 1, colors.FromRGB(200, 139, 58)},
	{"saturn", "Saturn", 120660, 1427e6, 29.46, 0.44, RadiusUnit, SaturnDamping, colors.FromRGB(227, 193, 111)},
	{"uranus", "Uranus", 51118, 2871e6, 84.01, -0.72, RadiusUnit, 1, colors.FromRGB(125, 226, 232)},
	{"neptune", "Neptune", 48600, 44971e5, 164.8, 0.72, RadiusUnit, 1, colors.FromRGB(64, 98, 187)},
}

// sunRotation is the sidereal rotation period of the sun in days.
// The animator spins the sun at a fixed rate, so it is informational.
const sunRotation = 25.38

func (r *raw) body() Body {
	return Body{
		ID:             r.id,
		Name:           r.name,
		OrbitDistance:  float32(r.distance * DistanceUnit),
		Radius:         float32(r.diameter / 2 * r.unit * r.damping),
		Texture:        r.id + ".jpg",
		OrbitalPeriod:  float32(r.years * DaysPerYear),
		RotationPeriod: float32(r.rotation),
		Color:          r.color,
	}
}

// Catalog is the immutable table of bodies. It is built once with [New]
// and only exposes read accessors.
type Catalog struct {
	sun     Body
	planets []Body
}

// New returns the catalog of the sun and the eight planets.
func New() *Catalog {
	c := &Catalog{
		sun: Body{
			ID:             SunID,
			Name:           "Sun",
			Radius:         SunRadius,
			Texture:        "sun.jpg",
			RotationPeriod: sunRotation,
			Color:          colors.FromRGB(253, 184, 19),
		},
		planets: make([]Body, len(planets)),
	}
	for i := range planets {
		c.planets[i] = planets[i].body()
	}
	return c
}

// Sun returns the sun.
func (c *Catalog) Sun() Body {
	return c.sun
}

// Planets returns a copy of the planets, innermost first.
func (c *Catalog) Planets() []Body {
	return slices.Clone(c.planets)
}

// All returns a copy of all bodies, with the sun first.
func (c *Catalog) All() []Body {
	return append([]Body{c.sun}, c.planets...)
}

// Len returns the total number of bodies, including the sun.
func (c *Catalog) Len() int {
	return len(c.planets) + 1
}

// ByID returns the body with the given id, and whether it exists.
func (c *Catalog) ByID(id string) (Body, bool) {
	if id == SunID {
		return c.sun, true
	}
	i := slices.IndexFunc(c.planets, func(b Body) bool { return b.ID == id })
	if i < 0 {
		return Body{}, false
	}
	return c.planets[i], true
}

// Validate checks every body, and the fixed size of the catalog.
func (c *Catalog) Validate() error {
	var errs []error
	if len(c.planets) != NumPlanets {
		errs = append(errs, fmt.Errorf("catalog has %d planets, want %d", len(c.planets), NumPlanets))
	}
	if c.sun.OrbitDistance != 0 {
		errs = append(errs, fmt.Errorf("sun must be at the origin"))
	}
	for _, b := range c.All() {
		errs = append(errs, b.Validate())
	}
	return errors.Join(errs...)
}
