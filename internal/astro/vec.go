// Package astro provides the vector math, display scaling, and camera
// model for the orrery scene.
package astro

import (
	"math"
)

// AU is the Astronomical Unit in kilometers.
const AU = 149597870.7

// Vec3 represents a 3D vector in scene space. Orbits lie in the XZ plane;
// Y points up out of the orbital plane.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns a unit vector in the same direction.
func (v Vec3) Normalized() Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{}
	}
	return Vec3{X: v.X / n, Y: v.Y / n, Z: v.Z / n}
}

// Scale returns the vector scaled by a factor.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// DistanceXZ returns the separation of two points projected onto the
// orbital plane. Height above the plane does not contribute.
func (v Vec3) DistanceXZ(u Vec3) float64 {
	dx := v.X - u.X
	dz := v.Z - u.Z
	return math.Sqrt(dx*dx + dz*dz)
}

// KmToAU converts kilometers to Astronomical Units.
func KmToAU(km float64) float64 {
	return km / AU
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// RadToDeg converts radians to degrees, normalized to [0, 360).
func RadToDeg(rad float64) float64 {
	deg := math.Mod(radToDeg(rad), 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
