package astro

import (
	"math"
)

// Camera describes the fixed viewpoint above the orbital plane. The
// renderer only consumes the derived quantities (visible range, clip
// culling); the descriptor itself stays close to what a perspective
// rasterizer would be handed.
type Camera struct {
	Position Vec3
	LookAt   Vec3
	FOVDeg   float64
	Near     float64
	Far      float64
}

// DefaultCamera returns the stock viewpoint: high above the Sun looking
// at the origin, with clip planes wide enough for the whole scene.
func DefaultCamera() Camera {
	return Camera{
		Position: Vec3{X: 0, Y: 180, Z: 140},
		LookAt:   Vec3{},
		FOVDeg:   50,
		Near:     0.01,
		Far:      2000,
	}
}

// VisibleRange returns the half-extent of the scene visible at the
// look-at plane, in display units at unit zoom.
func (c Camera) VisibleRange() float64 {
	d := c.Position.Sub(c.LookAt).Norm()
	return d * math.Tan(degToRad(c.FOVDeg)/2)
}

// Culled reports whether a point lies outside the near/far clip range.
func (c Camera) Culled(v Vec3) bool {
	d := v.Sub(c.Position).Norm()
	return d < c.Near || d > c.Far
}

// ScaleMode defines how orbital distances are compressed onto the canvas.
type ScaleMode int

const (
	// ScaleLogR uses logarithmic compression: r_display = log10(r + 1).
	// Shows the inner and outer system at once.
	ScaleLogR ScaleMode = iota

	// ScaleInner uses linear scaling clamped past the inner system.
	ScaleInner

	// ScaleOuter gives the inner system half the radius and compresses
	// everything beyond it logarithmically.
	ScaleOuter
)

// String returns the HUD label for the mode.
func (m ScaleMode) String() string {
	switch m {
	case ScaleLogR:
		return "log"
	case ScaleInner:
		return "inner"
	case ScaleOuter:
		return "outer"
	default:
		return "log"
	}
}

// innerSystemEdge sits just beyond the Mars orbit in display units.
const innerSystemEdge = 45.0

// ProjectionConfig configures the top-down projection.
type ProjectionConfig struct {
	Scale float64   // Base scale factor
	Mode  ScaleMode // Scaling mode
}

// DefaultProjectionConfig returns a reasonable default configuration.
func DefaultProjectionConfig() ProjectionConfig {
	return ProjectionConfig{
		Scale: 1.0,
		Mode:  ScaleLogR,
	}
}

// ProjectedPoint represents a 2D projected position with metadata.
type ProjectedPoint struct {
	X float64 // Screen X coordinate (scaled)
	Y float64 // Screen Y coordinate (scaled)
	R float64 // True 3D distance from the origin
	H float64 // Height above the orbital plane
}

// ProjectTopDown maps scene coordinates to screen coordinates, looking
// down the +Y axis: screen X follows world X and screen Y follows world Z.
func ProjectTopDown(v Vec3, cfg ProjectionConfig) ProjectedPoint {
	// Radial distance in the orbital plane
	r := math.Sqrt(v.X*v.X + v.Z*v.Z)

	rDisplay := scaleRadius(r, cfg)

	angle := math.Atan2(v.Z, v.X)

	return ProjectedPoint{
		X: rDisplay * math.Cos(angle) * cfg.Scale,
		Y: rDisplay * math.Sin(angle) * cfg.Scale,
		R: v.Norm(),
		H: v.Y,
	}
}

// scaleRadius applies the configured scaling mode to a radial distance.
func scaleRadius(r float64, cfg ProjectionConfig) float64 {
	switch cfg.Mode {
	case ScaleLogR:
		return math.Log10(r + 1)

	case ScaleInner:
		// Linear through the inner system, clamp the rest to the edge
		if r > innerSystemEdge {
			return innerSystemEdge
		}
		return r

	case ScaleOuter:
		// Piece-wise: inner system gets half the radius, outer is log
		if r <= innerSystemEdge {
			return r / innerSystemEdge * 0.5
		}
		return 0.5 + math.Log10(r/innerSystemEdge+1)*0.5

	default:
		return math.Log10(r + 1)
	}
}
