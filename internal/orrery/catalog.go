package orrery

import (
	"github.com/litescript/ls-orrery/internal/astro"
)

// The catalog carries real figures (volumetric mean radius, semi-major
// axis, sidereal period) and hands them to the scale layer for display
// conversion. Radii and periods from the NASA planetary fact sheets.

// Sun constants.
const (
	SunName     = "Sun"
	SunRadiusKm = astro.SolarRadiusKm
	SunColor    = "#FDB813"
)

// MercuryPeriodDays is the innermost planetary period, the shared
// denominator for every normalized period in the scene.
const MercuryPeriodDays = 88.0

// PlanetSpec describes one planet in catalog order.
type PlanetSpec struct {
	Name       string
	RadiusKm   float64 // volumetric mean radius
	DistanceKm float64 // semi-major axis
	PeriodDays float64 // sidereal orbital period
	Class      astro.SizeClass
	Color      string
}

// Planets is the fixed build order: Mercury outward, Pluto included.
var Planets = []PlanetSpec{
	{Name: "Mercury", RadiusKm: 2439.7, DistanceKm: 57.9e6, PeriodDays: 88.0, Class: astro.SizeSmall, Color: "#B5B5B5"},
	{Name: "Venus", RadiusKm: 6051.8, DistanceKm: 108.2e6, PeriodDays: 224.7, Class: astro.SizeSmall, Color: "#E8CDA2"},
	{Name: "Earth", RadiusKm: 6371.0, DistanceKm: 149.6e6, PeriodDays: 365.2, Class: astro.SizeSmall, Color: "#2E86AB"},
	{Name: "Mars", RadiusKm: 3389.5, DistanceKm: 227.9e6, PeriodDays: 687.0, Class: astro.SizeSmall, Color: "#C1440E"},
	{Name: "Jupiter", RadiusKm: 69911.0, DistanceKm: 778.5e6, PeriodDays: 4331.0, Class: astro.SizeBig, Color: "#C88B3A"},
	{Name: "Saturn", RadiusKm: 58232.0, DistanceKm: 1433.5e6, PeriodDays: 10747.0, Class: astro.SizeBig, Color: "#E4D191"},
	{Name: "Uranus", RadiusKm: 25362.0, DistanceKm: 2872.5e6, PeriodDays: 30589.0, Class: astro.SizeMedium, Color: "#7DE8E8"},
	{Name: "Neptune", RadiusKm: 24622.0, DistanceKm: 4495.1e6, PeriodDays: 59800.0, Class: astro.SizeMedium, Color: "#3F54BA"},
	{Name: "Pluto", RadiusKm: 1188.3, DistanceKm: 5906.4e6, PeriodDays: 90560.0, Class: astro.SizeDwarf, Color: "#C9B29B"},
}

// MoonSpec describes one moon. DistanceKm is measured from the parent
// planet's center.
type MoonSpec struct {
	Name       string
	Parent     string
	RadiusKm   float64
	DistanceKm float64
	PeriodDays float64
	Color      string
}

// Moons lists the satellites the scene carries: Earth's moon, the five
// innermost notable moons of Jupiter, and three of Saturn's.
var Moons = []MoonSpec{
	{Name: "Luna", Parent: "Earth", RadiusKm: 1737.4, DistanceKm: 384400, PeriodDays: 27.32, Color: "#C0C0C0"},

	{Name: "Amalthea", Parent: "Jupiter", RadiusKm: 83.5, DistanceKm: 181400, PeriodDays: 0.498, Color: "#8E6E53"},
	{Name: "Io", Parent: "Jupiter", RadiusKm: 1821.6, DistanceKm: 421800, PeriodDays: 1.769, Color: "#FFFC99"},
	{Name: "Europa", Parent: "Jupiter", RadiusKm: 1560.8, DistanceKm: 671100, PeriodDays: 3.551, Color: "#D8C9B8"},
	{Name: "Ganymede", Parent: "Jupiter", RadiusKm: 2634.1, DistanceKm: 1070400, PeriodDays: 7.155, Color: "#9C8E7E"},
	{Name: "Callisto", Parent: "Jupiter", RadiusKm: 2410.3, DistanceKm: 1882700, PeriodDays: 16.689, Color: "#7E7265"},

	{Name: "Rhea", Parent: "Saturn", RadiusKm: 763.8, DistanceKm: 527108, PeriodDays: 4.518, Color: "#BDB7AD"},
	{Name: "Titan", Parent: "Saturn", RadiusKm: 2574.7, DistanceKm: 1221870, PeriodDays: 15.945, Color: "#E8A33D"},
	{Name: "Iapetus", Parent: "Saturn", RadiusKm: 734.5, DistanceKm: 3560820, PeriodDays: 79.32, Color: "#A89F91"},
}

// moonOrbitCorrections spreads each moon system so its orbits clear the
// parent's exaggerated display radius. Hand-tuned per system.
var moonOrbitCorrections = map[string]float64{
	"Earth":   450.0,
	"Jupiter": 260.0,
	"Saturn":  90.0,
}

// MoonsOf returns the catalog moons of the named planet, in catalog order.
func MoonsOf(planet string) []MoonSpec {
	var out []MoonSpec
	for _, m := range Moons {
		if m.Parent == planet {
			out = append(out, m)
		}
	}
	return out
}
