package orrery

import (
	"math"
	"math/rand/v2"

	"github.com/litescript/ls-orrery/internal/astro"
)

// Config holds scene construction parameters.
type Config struct {
	StarCount int
	Seed      uint64
}

const (
	// DefaultStarCount is the starting starfield size.
	DefaultStarCount = 40

	// MaxStarCount bounds the starfield; the control panel steps up to
	// this value.
	MaxStarCount = 500
)

// DefaultConfig returns sensible construction defaults.
func DefaultConfig() Config {
	return Config{
		StarCount: DefaultStarCount,
	}
}

// Moon jitter ranges. Every moon gets a small random orbit-radius
// perturbation, a random nonzero height off the orbital plane, and a
// randomized normalized period, so no two runs look alike while the
// planet layout stays fixed.
const (
	moonOrbitJitter = 0.75 // +/- display units

	moonHeightMin = 0.35
	moonHeightMax = 1.1

	moonPeriodMin = 0.75
	moonPeriodMax = 1.75
)

// NewRand returns the deterministic PRNG used for scene construction.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Build assembles the standard scene: the Sun at the origin, the nine
// planets in catalog order each starting at phase zero on the +X axis,
// their catalog moons at randomized phases, and the starfield. The same
// seed always produces the same scene.
func Build(cfg Config) *Scene {
	rng := NewRand(cfg.Seed)

	s := &Scene{
		rng:          rng,
		seed:         cfg.Seed,
		starsVisible: true,
	}

	s.bodies = append(s.bodies, Body{
		Name:       SunName,
		Kind:       BodySun,
		Class:      astro.SizeSun,
		RadiusKm:   SunRadiusKm,
		Radius:     astro.DisplayRadius(SunRadiusKm, astro.SizeSun),
		Color:      SunColor,
		EmitsLight: true,
		StarLike:   true,
		Visible:    true,
	})

	for _, p := range Planets {
		pi := s.addPlanet(p)
		for _, m := range MoonsOf(p.Name) {
			s.addMoon(m, pi)
		}
	}

	s.firstStar = len(s.bodies)

	n := cfg.StarCount
	if n < 0 {
		n = 0
	}
	if n > MaxStarCount {
		n = MaxStarCount
	}
	s.bodies = append(s.bodies, generateStars(n, rng, true, false)...)

	return s
}

// addPlanet appends a planet orbiting the Sun, starting on the +X axis.
func (s *Scene) addPlanet(p PlanetSpec) BodyIndex {
	orbitR := astro.DisplayOrbit(p.DistanceKm, astro.PlanetOrbitCorrection)

	body := Body{
		Name:     p.Name,
		Kind:     BodyPlanet,
		Class:    p.Class,
		RadiusKm: p.RadiusKm,
		Radius:   astro.DisplayRadius(p.RadiusKm, p.Class),
		Color:    p.Color,
		Pos:      astro.Vec3{X: orbitR},
		Visible:  true,
		Orbit: OrbitMotion{
			Present:     true,
			Ref:         s.Sun(),
			OrbitRadius: orbitR,
			NormPeriod:  p.PeriodDays / MercuryPeriodDays,
			PeriodDays:  p.PeriodDays,
		},
	}

	s.bodies = append(s.bodies, body)
	return BodyIndex(len(s.bodies) - 1)
}

// addMoon appends a moon of the given planet with randomized phase,
// orbit radius, height, and period.
func (s *Scene) addMoon(m MoonSpec, parent BodyIndex) BodyIndex {
	p := s.bodies[parent]

	base := p.Radius + astro.DisplayOrbit(m.DistanceKm, moonOrbitCorrections[m.Parent])
	orbitR := base + (s.rng.Float64()*2-1)*moonOrbitJitter

	phase := (s.rng.Float64()*2 - 1) * 2 * math.Pi

	height := moonHeightMin + s.rng.Float64()*(moonHeightMax-moonHeightMin)
	if s.rng.IntN(2) == 0 {
		height = -height
	}

	body := Body{
		Name:     m.Name,
		Kind:     BodyMoon,
		Class:    astro.SizeMoon,
		RadiusKm: m.RadiusKm,
		Radius:   astro.DisplayRadius(m.RadiusKm, astro.SizeMoon),
		Color:    m.Color,
		Pos: astro.Vec3{
			X: p.Pos.X + orbitR*math.Cos(phase),
			Y: height,
			Z: p.Pos.Z + orbitR*math.Sin(phase),
		},
		Visible: true,
		Orbit: OrbitMotion{
			Present:     true,
			Ref:         parent,
			OrbitRadius: orbitR,
			NormPeriod:  moonPeriodMin + s.rng.Float64()*(moonPeriodMax-moonPeriodMin),
			Phase:       phase,
			PeriodDays:  m.PeriodDays,
			IsMoon:      true,
		},
	}

	s.bodies = append(s.bodies, body)
	return BodyIndex(len(s.bodies) - 1)
}
