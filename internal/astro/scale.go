package astro

// Baselines for converting real dimensions to display units. Every radius
// is expressed as a fraction of the Sun's, every orbital distance as a
// fraction of Mercury's, before its class correction is applied.
const (
	// SolarRadiusKm is the Sun's volumetric mean radius.
	SolarRadiusKm = 695700.0

	// MercuryDistanceKm is Mercury's semi-major axis, the innermost
	// planetary orbit and the shared distance baseline.
	MercuryDistanceKm = 57.9e6
)

// SizeClass buckets bodies by how aggressively their true radius must be
// exaggerated to stay visible. At true scale everything but the Sun would
// render subpixel.
type SizeClass int

const (
	SizeSun SizeClass = iota
	SizeSmall
	SizeMedium
	SizeBig
	SizeDwarf
	SizeMoon
)

// String returns a short class label.
func (s SizeClass) String() string {
	switch s {
	case SizeSun:
		return "sun"
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeBig:
		return "big"
	case SizeDwarf:
		return "dwarf"
	case SizeMoon:
		return "moon"
	default:
		return "unknown"
	}
}

// Hand-tuned radius corrections per size class. Tuned by eye so the Sun
// dominates, the giants read larger than the ice planets, and Pluto stays
// a visible speck.
const (
	sunCorrection    = 5.0
	smallCorrection  = 150.0
	mediumCorrection = 50.0
	bigCorrection    = 30.0
	dwarfCorrection  = 260.0
	moonCorrection   = 120.0
)

// PlanetOrbitCorrection spreads planetary orbits so Mercury lands at 10
// display units and Pluto stays inside the camera's far clip.
const PlanetOrbitCorrection = 10.0

// minDisplayRadius keeps the smallest moons from vanishing entirely.
const minDisplayRadius = 0.16

func (s SizeClass) correction() float64 {
	switch s {
	case SizeSun:
		return sunCorrection
	case SizeSmall:
		return smallCorrection
	case SizeMedium:
		return mediumCorrection
	case SizeBig:
		return bigCorrection
	case SizeDwarf:
		return dwarfCorrection
	case SizeMoon:
		return moonCorrection
	default:
		return 1
	}
}

// DisplayRadius converts a true radius in kilometers to display units:
// the solar-radius fraction times the class correction, floored so tiny
// bodies remain visible.
func DisplayRadius(radiusKm float64, class SizeClass) float64 {
	r := radiusKm / SolarRadiusKm * class.correction()
	if r < minDisplayRadius {
		r = minDisplayRadius
	}
	return r
}

// DisplayOrbit converts a true orbital distance in kilometers to display
// units: the Mercury-distance fraction times a correction chosen per
// orbital system.
func DisplayOrbit(distanceKm, correction float64) float64 {
	return distanceKm / MercuryDistanceKm * correction
}
