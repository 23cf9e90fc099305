package orrery

import (
	"math"
	"math/rand/v2"
)

// Motion carries the per-frame animation inputs read from the control
// state: the movement gate and the two speed multipliers. Advance does
// not clamp the multipliers; range enforcement belongs to the widgets
// that produce them.
type Motion struct {
	Enabled     bool
	PlanetSpeed float64
	MoonSpeed   float64
}

// Scene owns every body in one arena slice. Insertion order is
// construction order: the Sun first, then each planet immediately
// followed by its moons, then the starfield. Advance walks the arena in
// order, so a parent always moves before its satellites and a moon reads
// the parent position of the current frame.
//
// Stars always occupy the arena tail; regenerating the starfield never
// shifts the index of an orbiting body.
type Scene struct {
	bodies []Body
	rng    *rand.Rand

	seed         uint64
	frames       uint64
	starsVisible bool
	firstStar    int // arena index of the first star, len(bodies) if none
}

// Len returns the number of bodies in the arena.
func (s *Scene) Len() int {
	return len(s.bodies)
}

// Body returns a pointer into the arena. The pointer stays valid until
// the starfield is regenerated.
func (s *Scene) Body(i BodyIndex) *Body {
	return &s.bodies[i]
}

// Bodies returns the arena in insertion order. The slice is shared with
// the scene; callers must not grow it.
func (s *Scene) Bodies() []Body {
	return s.bodies
}

// Seed returns the seed the scene was built from.
func (s *Scene) Seed() uint64 {
	return s.seed
}

// FrameCount returns how many frames have actually advanced the scene.
// Frames gated off by Motion.Enabled do not count.
func (s *Scene) FrameCount() uint64 {
	return s.frames
}

// Sun returns the arena index of the Sun.
func (s *Scene) Sun() BodyIndex {
	return 0
}

// Advance steps every orbiting body by one frame: the phase accumulates
// the base angular step divided by the normalized period and scaled by
// the kind's speed multiplier, then X and Z are rebuilt from the
// reference body's current position. Y never changes after construction.
func (s *Scene) Advance(m Motion) {
	if !m.Enabled {
		return
	}

	for i := range s.bodies {
		o := &s.bodies[i].Orbit
		if !o.Present {
			continue
		}

		mult := m.PlanetSpeed
		if o.IsMoon {
			mult = m.MoonSpeed
		}
		o.Phase += AngularStepBase / o.NormPeriod * mult

		ref := s.bodies[o.Ref].Pos
		s.bodies[i].Pos.X = ref.X + o.OrbitRadius*math.Cos(o.Phase)
		s.bodies[i].Pos.Z = ref.Z + o.OrbitRadius*math.Sin(o.Phase)
	}

	s.frames++
}

// Planets returns the arena indices of all planets, in orbital order.
func (s *Scene) Planets() []BodyIndex {
	return s.indicesOf(BodyPlanet)
}

// Moons returns the arena indices of all moons.
func (s *Scene) Moons() []BodyIndex {
	return s.indicesOf(BodyMoon)
}

// Stars returns the arena indices of all stars.
func (s *Scene) Stars() []BodyIndex {
	return s.indicesOf(BodyStar)
}

func (s *Scene) indicesOf(kind BodyKind) []BodyIndex {
	var out []BodyIndex
	for i := range s.bodies {
		if s.bodies[i].Kind == kind {
			out = append(out, BodyIndex(i))
		}
	}
	return out
}

// MoonsOf returns the indices of the moons orbiting the given body.
func (s *Scene) MoonsOf(planet BodyIndex) []BodyIndex {
	var out []BodyIndex
	for i := range s.bodies {
		if s.bodies[i].Kind == BodyMoon && s.bodies[i].Orbit.Ref == planet {
			out = append(out, BodyIndex(i))
		}
	}
	return out
}

// Find returns the index of the named body, or NoBody.
func (s *Scene) Find(name string) BodyIndex {
	for i := range s.bodies {
		if s.bodies[i].Name == name {
			return BodyIndex(i)
		}
	}
	return NoBody
}

// SetBodyVisible sets a body's visibility. For a planet the flag
// cascades to its moons in the same call, so a planet and its satellites
// toggle as a group.
func (s *Scene) SetBodyVisible(i BodyIndex, visible bool) {
	s.bodies[i].Visible = visible
	if s.bodies[i].Kind != BodyPlanet {
		return
	}
	for _, m := range s.MoonsOf(i) {
		s.bodies[m].Visible = visible
	}
}

// StarsVisible reports whether the starfield is shown.
func (s *Scene) StarsVisible() bool {
	return s.starsVisible
}

// SetStarsVisible toggles every star as one group.
func (s *Scene) SetStarsVisible(visible bool) {
	s.starsVisible = visible
	for i := s.firstStar; i < len(s.bodies); i++ {
		s.bodies[i].Visible = visible
	}
}

// SetWireframe sets the wireframe material flag on every body in the
// scene, stars included.
func (s *Scene) SetWireframe(on bool) {
	for i := range s.bodies {
		s.bodies[i].Wireframe = on
	}
}

// Wireframe reports whether the scene renders as wireframes. The flag is
// uniform across bodies, so the Sun's value stands for all.
func (s *Scene) Wireframe() bool {
	if len(s.bodies) == 0 {
		return false
	}
	return s.bodies[0].Wireframe
}

// StarCount returns the number of stars currently in the scene.
func (s *Scene) StarCount() int {
	return len(s.bodies) - s.firstStar
}

// SetStarCount replaces the starfield with n freshly scattered stars,
// clamped to [0, MaxStarCount]. Orbiting bodies keep their indices.
func (s *Scene) SetStarCount(n int) {
	if n < 0 {
		n = 0
	}
	if n > MaxStarCount {
		n = MaxStarCount
	}

	s.bodies = s.bodies[:s.firstStar]
	s.bodies = append(s.bodies, generateStars(n, s.rng, s.starsVisible, s.Wireframe())...)
}
