package orrery

import (
	"math"
	"testing"
)

func testMotion(planet, moon float64) Motion {
	return Motion{Enabled: true, PlanetSpeed: planet, MoonSpeed: moon}
}

func TestAdvanceKeepsOrbitDistance(t *testing.T) {
	// After any number of frames at any speed, each orbiting body must
	// sit exactly its orbit radius from its reference body in the
	// orbital plane.
	s := Build(Config{StarCount: 10, Seed: 42})

	speeds := []Motion{
		testMotion(1, 1),
		testMotion(25, 10),
		testMotion(7.3, 2.6),
		testMotion(-4, -9), // widgets clamp, the kernel must not
	}

	for _, m := range speeds {
		for frame := 0; frame < 50; frame++ {
			s.Advance(m)
		}
	}

	for _, b := range s.Bodies() {
		if !b.Orbit.Present {
			continue
		}
		ref := s.Body(b.Orbit.Ref)
		got := b.Pos.DistanceXZ(ref.Pos)
		if math.Abs(got-b.Orbit.OrbitRadius) > 1e-9 {
			t.Errorf("%s: orbit distance = %v, want %v", b.Name, got, b.Orbit.OrbitRadius)
		}
	}
}

func TestAdvanceReversal(t *testing.T) {
	// N frames at speed s followed by one frame at speed -N*s must
	// restore every phase and position.
	s := Build(Config{StarCount: 0, Seed: 7})

	type pose struct {
		phase float64
		x, z  float64
	}
	before := make(map[string]pose)
	for _, b := range s.Bodies() {
		if b.Orbit.Present {
			before[b.Name] = pose{b.Orbit.Phase, b.Pos.X, b.Pos.Z}
		}
	}

	const n = 10
	const speed = 3.5
	for i := 0; i < n; i++ {
		s.Advance(testMotion(speed, speed))
	}
	s.Advance(testMotion(-n*speed, -n*speed))

	for _, b := range s.Bodies() {
		if !b.Orbit.Present {
			continue
		}
		want := before[b.Name]
		if math.Abs(b.Orbit.Phase-want.phase) > 1e-9 {
			t.Errorf("%s: phase = %v, want %v after reversal", b.Name, b.Orbit.Phase, want.phase)
		}
		if math.Abs(b.Pos.X-want.x) > 1e-9 || math.Abs(b.Pos.Z-want.z) > 1e-9 {
			t.Errorf("%s: pos = (%v, %v), want (%v, %v) after reversal",
				b.Name, b.Pos.X, b.Pos.Z, want.x, want.z)
		}
	}
}

func TestAdvanceMovementDisabled(t *testing.T) {
	s := Build(Config{StarCount: 5, Seed: 1})

	positions := make(map[string][3]float64)
	phases := make(map[string]float64)
	for _, b := range s.Bodies() {
		positions[b.Name+b.Kind.String()] = [3]float64{b.Pos.X, b.Pos.Y, b.Pos.Z}
		phases[b.Name+b.Kind.String()] = b.Orbit.Phase
	}

	for i := 0; i < 100; i++ {
		s.Advance(Motion{Enabled: false, PlanetSpeed: 25, MoonSpeed: 10})
	}

	for _, b := range s.Bodies() {
		key := b.Name + b.Kind.String()
		want := positions[key]
		if b.Pos.X != want[0] || b.Pos.Y != want[1] || b.Pos.Z != want[2] {
			t.Errorf("%s moved while movement disabled", b.Name)
		}
		if b.Orbit.Phase != phases[key] {
			t.Errorf("%s phase changed while movement disabled", b.Name)
		}
	}

	if s.FrameCount() != 0 {
		t.Errorf("FrameCount() = %d, want 0 for gated frames", s.FrameCount())
	}
}

func TestAdvanceSpeedLinearity(t *testing.T) {
	// Raising the planet multiplier from 5 to 25 must scale the
	// per-frame phase delta by exactly 5.
	s5 := Build(Config{StarCount: 0, Seed: 99})
	s25 := Build(Config{StarCount: 0, Seed: 99})

	earth5 := s5.Find("Earth")
	earth25 := s25.Find("Earth")
	p5 := s5.Body(earth5).Orbit.Phase
	p25 := s25.Body(earth25).Orbit.Phase

	s5.Advance(testMotion(5, 1))
	s25.Advance(testMotion(25, 1))

	d5 := s5.Body(earth5).Orbit.Phase - p5
	d25 := s25.Body(earth25).Orbit.Phase - p25

	if math.Abs(d25-5*d5) > 1e-12 {
		t.Errorf("phase delta at 25x = %v, want exactly 5x the delta at 5x (%v)", d25, 5*d5)
	}
}

func TestAdvanceMoonTracksParent(t *testing.T) {
	// A moon orbits its parent's position of the current frame, not the
	// previous one: the orbit-distance invariant must hold immediately
	// after a step that moved the parent.
	s := Build(Config{StarCount: 0, Seed: 3})

	s.Advance(testMotion(25, 10))

	luna := s.Body(s.Find("Luna"))
	earth := s.Body(s.Find("Earth"))
	got := luna.Pos.DistanceXZ(earth.Pos)
	if math.Abs(got-luna.Orbit.OrbitRadius) > 1e-9 {
		t.Errorf("Luna distance from Earth = %v, want %v", got, luna.Orbit.OrbitRadius)
	}
}

func TestAdvanceMoonHeightFixed(t *testing.T) {
	s := Build(Config{StarCount: 0, Seed: 11})

	heights := make(map[string]float64)
	for _, i := range s.Moons() {
		heights[s.Body(i).Name] = s.Body(i).Pos.Y
	}

	for i := 0; i < 200; i++ {
		s.Advance(testMotion(13, 8))
	}

	for _, i := range s.Moons() {
		b := s.Body(i)
		if b.Pos.Y != heights[b.Name] {
			t.Errorf("%s: Y drifted from %v to %v", b.Name, heights[b.Name], b.Pos.Y)
		}
	}
}

func TestSetBodyVisibleCascades(t *testing.T) {
	s := Build(Config{StarCount: 0, Seed: 5})

	jupiter := s.Find("Jupiter")
	moons := s.MoonsOf(jupiter)
	if len(moons) != 5 {
		t.Fatalf("Jupiter moons = %d, want 5", len(moons))
	}

	s.SetBodyVisible(jupiter, false)

	if s.Body(jupiter).Visible {
		t.Error("Jupiter still visible after toggle off")
	}
	for _, m := range moons {
		if s.Body(m).Visible {
			t.Errorf("%s still visible after Jupiter toggled off", s.Body(m).Name)
		}
	}

	// Everything else stays visible
	for _, b := range s.Bodies() {
		if b.Name == "Jupiter" || b.Orbit.Ref == jupiter && b.Kind == BodyMoon {
			continue
		}
		if !b.Visible {
			t.Errorf("%s hidden by an unrelated toggle", b.Name)
		}
	}

	s.SetBodyVisible(jupiter, true)
	if !s.Body(jupiter).Visible {
		t.Error("Jupiter not restored")
	}
	for _, m := range moons {
		if !s.Body(m).Visible {
			t.Errorf("%s not restored with Jupiter", s.Body(m).Name)
		}
	}
}

func TestHiddenBodiesKeepMoving(t *testing.T) {
	// Visibility is a render flag; motion continues while hidden, so
	// toggling a planet back on shows it where it would have been.
	s := Build(Config{StarCount: 0, Seed: 21})

	saturn := s.Find("Saturn")
	s.SetBodyVisible(saturn, false)
	before := s.Body(saturn).Orbit.Phase

	s.Advance(testMotion(10, 1))

	if s.Body(saturn).Orbit.Phase == before {
		t.Error("hidden Saturn did not advance")
	}
}

func TestSetStarsVisible(t *testing.T) {
	s := Build(Config{StarCount: 30, Seed: 8})

	s.SetStarsVisible(false)
	for _, i := range s.Stars() {
		if s.Body(i).Visible {
			t.Fatal("star visible after SetStarsVisible(false)")
		}
	}
	if s.StarsVisible() {
		t.Error("StarsVisible() = true, want false")
	}

	// Regenerated stars inherit the hidden state
	s.SetStarCount(10)
	for _, i := range s.Stars() {
		if s.Body(i).Visible {
			t.Fatal("regenerated star ignored hidden starfield state")
		}
	}

	s.SetStarsVisible(true)
	for _, i := range s.Stars() {
		if !s.Body(i).Visible {
			t.Fatal("star hidden after SetStarsVisible(true)")
		}
	}
}

func TestSetWireframe(t *testing.T) {
	s := Build(Config{StarCount: 12, Seed: 2})

	s.SetWireframe(true)
	for _, b := range s.Bodies() {
		if !b.Wireframe {
			t.Fatalf("%s not wireframe after SetWireframe(true)", b.Name)
		}
	}
	if !s.Wireframe() {
		t.Error("Wireframe() = false, want true")
	}

	// New stars pick up the scene-wide material flag
	s.SetStarCount(20)
	for _, i := range s.Stars() {
		if !s.Body(i).Wireframe {
			t.Fatal("regenerated star lost wireframe flag")
		}
	}

	s.SetWireframe(false)
	for _, b := range s.Bodies() {
		if b.Wireframe {
			t.Fatalf("%s still wireframe after SetWireframe(false)", b.Name)
		}
	}
}

func TestSetStarCount(t *testing.T) {
	s := Build(Config{StarCount: 20, Seed: 17})

	tests := []struct {
		name string
		n    int
		want int
	}{
		{"exact", 50, 50},
		{"zero", 0, 0},
		{"negative clamps", -5, 0},
		{"beyond max clamps", MaxStarCount + 100, MaxStarCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.SetStarCount(tt.n)
			if got := s.StarCount(); got != tt.want {
				t.Errorf("StarCount() = %d, want %d", got, tt.want)
			}
			for _, i := range s.Stars() {
				b := s.Body(i)
				if !InStarField(b.Pos) {
					t.Errorf("star at %v outside the starfield box", b.Pos)
				}
				if !b.EmitsLight {
					t.Error("star without a light source")
				}
			}
		})
	}
}

func TestSetStarCountKeepsIndices(t *testing.T) {
	s := Build(Config{StarCount: 40, Seed: 13})

	earth := s.Find("Earth")
	luna := s.Find("Luna")

	s.SetStarCount(200)
	s.SetStarCount(3)

	if got := s.Find("Earth"); got != earth {
		t.Errorf("Earth index moved from %d to %d", earth, got)
	}
	if got := s.Find("Luna"); got != luna {
		t.Errorf("Luna index moved from %d to %d", luna, got)
	}
	if ref := s.Body(luna).Orbit.Ref; ref != earth {
		t.Errorf("Luna orbit ref = %d, want Earth at %d", ref, earth)
	}
}

func TestSceneQueries(t *testing.T) {
	s := Build(Config{StarCount: 6, Seed: 4})

	if got := len(s.Planets()); got != 9 {
		t.Errorf("Planets() = %d, want 9", got)
	}
	if got := len(s.Moons()); got != 9 {
		t.Errorf("Moons() = %d, want 9", got)
	}
	if got := len(s.Stars()); got != 6 {
		t.Errorf("Stars() = %d, want 6", got)
	}
	if s.Body(s.Sun()).Kind != BodySun {
		t.Error("Sun() does not address the sun")
	}
	if s.Find("Vulcan") != NoBody {
		t.Error("Find() invented a body")
	}

	moonCounts := map[string]int{}
	for _, m := range s.Moons() {
		moonCounts[s.Body(s.Body(m).Orbit.Ref).Name]++
	}
	want := map[string]int{"Earth": 1, "Jupiter": 5, "Saturn": 3}
	for planet, n := range want {
		if moonCounts[planet] != n {
			t.Errorf("%s has %d moons, want %d", planet, moonCounts[planet], n)
		}
	}
}
