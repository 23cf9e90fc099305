package astro

import (
	"math"
	"testing"
)

func TestDefaultCamera(t *testing.T) {
	cam := DefaultCamera()

	if cam.FOVDeg != 50 {
		t.Errorf("FOVDeg = %v, want 50", cam.FOVDeg)
	}
	if cam.Near != 0.01 {
		t.Errorf("Near = %v, want 0.01", cam.Near)
	}
	if cam.Far != 2000 {
		t.Errorf("Far = %v, want 2000", cam.Far)
	}
	if cam.LookAt != (Vec3{}) {
		t.Errorf("LookAt = %v, want origin", cam.LookAt)
	}
}

func TestCameraVisibleRange(t *testing.T) {
	cam := Camera{
		Position: Vec3{0, 100, 0},
		LookAt:   Vec3{},
		FOVDeg:   90,
		Near:     0.01,
		Far:      2000,
	}

	// At 90 degrees the half-extent equals the camera distance.
	got := cam.VisibleRange()
	if math.Abs(got-100) > 1e-9 {
		t.Errorf("VisibleRange() = %v, want 100", got)
	}
}

func TestCameraCulled(t *testing.T) {
	cam := DefaultCamera()

	tests := []struct {
		name string
		v    Vec3
		want bool
	}{
		{"origin in range", Vec3{}, false},
		{"pluto orbit in range", Vec3{1020, 0, 0}, false},
		{"beyond far clip", Vec3{3000, 0, 0}, true},
		{"at camera position", cam.Position, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cam.Culled(tt.v); got != tt.want {
				t.Errorf("Culled(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestProjectTopDown(t *testing.T) {
	cfg := DefaultProjectionConfig()

	tests := []struct {
		name      string
		v         Vec3
		wantAngle float64 // expected angle in degrees
		wantR     float64 // expected true distance
	}{
		{
			name:      "10 units along +X",
			v:         Vec3{10, 0, 0},
			wantAngle: 0,
			wantR:     10,
		},
		{
			name:      "10 units along +Z",
			v:         Vec3{0, 0, 10},
			wantAngle: 90,
			wantR:     10,
		},
		{
			name:      "10 units along -X",
			v:         Vec3{-10, 0, 0},
			wantAngle: 180,
			wantR:     10,
		},
		{
			name:      "10 units along -Z",
			v:         Vec3{0, 0, -10},
			wantAngle: -90,
			wantR:     10,
		},
		{
			name:      "45 degrees in plane",
			v:         Vec3{5 / math.Sqrt(2), 0, 5 / math.Sqrt(2)},
			wantAngle: 45,
			wantR:     5,
		},
		{
			name:      "height does not rotate",
			v:         Vec3{10, 2, 0},
			wantAngle: 0,
			wantR:     math.Sqrt(104),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProjectTopDown(tt.v, cfg)

			gotAngle := math.Atan2(got.Y, got.X) * 180 / math.Pi
			angleDiff := math.Abs(gotAngle - tt.wantAngle)
			// Handle wrap-around at ±180
			if angleDiff > 180 {
				angleDiff = 360 - angleDiff
			}
			if angleDiff > 0.1 {
				t.Errorf("angle = %.2f°, want %.2f°", gotAngle, tt.wantAngle)
			}

			if math.Abs(got.R-tt.wantR) > 0.01 {
				t.Errorf("R = %.4f, want %.4f", got.R, tt.wantR)
			}
		})
	}
}

func TestProjectTopDownHeight(t *testing.T) {
	got := ProjectTopDown(Vec3{3, 1.25, 4}, DefaultProjectionConfig())
	if math.Abs(got.H-1.25) > 1e-10 {
		t.Errorf("H = %v, want 1.25", got.H)
	}
}

func TestScaleModes(t *testing.T) {
	tests := []struct {
		name string
		mode ScaleMode
		r    float64
	}{
		{"log mercury", ScaleLogR, 10},
		{"log jupiter", ScaleLogR, 134},
		{"log pluto", ScaleLogR, 1020},
		{"inner mercury", ScaleInner, 10},
		{"inner mars", ScaleInner, 39},
		{"inner jupiter", ScaleInner, 134}, // should clamp
		{"outer mercury", ScaleOuter, 10},
		{"outer edge", ScaleOuter, 45},
		{"outer pluto", ScaleOuter, 1020},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ProjectionConfig{Scale: 1.0, Mode: tt.mode}
			v := Vec3{tt.r, 0, 0}
			got := ProjectTopDown(v, cfg)

			// Projection must preserve direction
			if got.X < 0 {
				t.Errorf("X should be positive for +X input, got %v", got.X)
			}
			if math.Abs(got.Y) > 1e-10 {
				t.Errorf("Y should be ~0 for X-axis input, got %v", got.Y)
			}

			// Inner mode clamps at the inner-system edge
			rDisplay := math.Sqrt(got.X*got.X + got.Y*got.Y)
			if tt.mode == ScaleInner && tt.r > innerSystemEdge && rDisplay > innerSystemEdge+0.01 {
				t.Errorf("ScaleInner should clamp at %v, got %v for r=%v", innerSystemEdge, rDisplay, tt.r)
			}
		})
	}
}

func TestScaleModeMonotonic(t *testing.T) {
	// Each mode must preserve radial ordering so orbit rings never cross.
	radii := []float64{0, 10, 18.7, 25.8, 39.4, 134, 248, 496, 776, 1020}

	for _, mode := range []ScaleMode{ScaleLogR, ScaleInner, ScaleOuter} {
		cfg := ProjectionConfig{Scale: 1.0, Mode: mode}
		prev := -1.0
		for _, r := range radii {
			d := scaleRadius(r, cfg)
			if d < prev-1e-12 {
				t.Errorf("mode %v: scaleRadius(%v) = %v decreased below %v", mode, r, d, prev)
			}
			prev = d
		}
	}
}

func TestScaleModeString(t *testing.T) {
	tests := []struct {
		mode ScaleMode
		want string
	}{
		{ScaleLogR, "log"},
		{ScaleInner, "inner"},
		{ScaleOuter, "outer"},
		{ScaleMode(42), "log"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("ScaleMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
