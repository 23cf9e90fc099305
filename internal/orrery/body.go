// Package orrery implements the animated solar-system scene: the body
// arena, orbital motion, scene construction, and export.
package orrery

import (
	"math"

	"github.com/litescript/ls-orrery/internal/astro"
)

// BodyKind categorizes celestial bodies for rendering.
type BodyKind int

const (
	BodySun BodyKind = iota
	BodyPlanet
	BodyMoon
	BodyStar
)

// String returns the body kind name.
func (k BodyKind) String() string {
	switch k {
	case BodySun:
		return "sun"
	case BodyPlanet:
		return "planet"
	case BodyMoon:
		return "moon"
	case BodyStar:
		return "star"
	default:
		return "unknown"
	}
}

// BodyIndex addresses a body inside a Scene arena. Orbit references are
// indices rather than pointers, so a reference can neither keep a body
// alive nor dangle.
type BodyIndex int

// NoBody marks an empty body reference.
const NoBody BodyIndex = -1

// AngularStepBase is the per-frame phase increment of a body with unit
// normalized period at speed multiplier 1: one degree, in radians.
const AngularStepBase = 2 * math.Pi / 360

// Body is one renderable object in the scene. It is plain data; motion
// lives in the optional OrbitMotion component.
type Body struct {
	Name     string
	Kind     BodyKind
	Class    astro.SizeClass
	RadiusKm float64 // real radius, zero for generated stars
	Radius   float64 // display radius
	Color    string  // hex RGB
	Pos      astro.Vec3

	EmitsLight bool
	StarLike   bool // point-light falloff class, not distance attenuated
	Visible    bool
	Wireframe  bool

	// Mag is the apparent brightness of generated stars, lower is
	// brighter. Unused for other kinds.
	Mag float64

	Orbit OrbitMotion
}

// OrbitMotion is the orbital component of a body. The zero value means
// the body does not orbit.
type OrbitMotion struct {
	Present bool

	Ref         BodyIndex // body the orbit is centered on
	OrbitRadius float64   // display units
	NormPeriod  float64   // own period / innermost planetary period
	Phase       float64   // accumulated angle in radians
	PeriodDays  float64   // real sidereal period, informational
	IsMoon      bool      // selects the moon speed multiplier
}

// PhaseDeg returns the current phase normalized to [0, 360) degrees.
func (o OrbitMotion) PhaseDeg() float64 {
	return astro.RadToDeg(o.Phase)
}
