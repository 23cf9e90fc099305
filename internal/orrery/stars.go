package orrery

import (
	"math/rand/v2"

	"github.com/litescript/ls-orrery/internal/astro"
)

// Starfield geometry. Stars scatter uniformly inside a cube around the
// Sun, outside a clearance radius so none land inside the planet orbits'
// crowded center, and inside the camera's far clip.
const (
	StarFieldExtent = 1200.0
	starClearRadius = 50.0

	starDisplayRadius = 0.25
)

// starColors approximates the visible stellar temperature range, hottest
// first. A generated star keeps one of these for its point light.
var starColors = []string{
	"#C8D7FF", // blue-white
	"#D4FBFF", // white
	"#FFFFFF", // white
	"#FFF4EA", // yellow-white
	"#FFE9C4", // yellow-orange
}

// starNames is a pool of IAU bright-star names used to label generated
// stars. Duplicates across a large field are acceptable; the names are
// decorative.
var starNames = []string{
	"Sirius", "Canopus", "Arcturus", "Vega", "Capella", "Rigel",
	"Procyon", "Achernar", "Betelgeuse", "Hadar", "Altair", "Acrux",
	"Aldebaran", "Antares", "Spica", "Pollux", "Fomalhaut", "Deneb",
	"Mimosa", "Regulus", "Adhara", "Castor", "Gacrux", "Shaula",
	"Bellatrix", "Elnath", "Miaplacidus", "Alnilam", "Alnair", "Alnitak",
	"Alioth", "Dubhe", "Mirfak", "Wezen", "Sargas", "Avior",
	"Alkaid", "Menkalinan", "Atria", "Alhena", "Peacock", "Alsephina",
	"Mirzam", "Polaris", "Alphard", "Hamal", "Diphda", "Nunki",
	"Menkent", "Mirach", "Alpheratz", "Rasalhague", "Kochab", "Saiph",
	"Denebola", "Algol", "Tiaki", "Muhlifain", "Aspidiske", "Suhail",
}

// generateStars scatters n stars in the starfield cube. Each star is a
// light-emitting body with a random brightness magnitude and a color
// drawn from the temperature palette.
func generateStars(n int, rng *rand.Rand, visible, wireframe bool) []Body {
	stars := make([]Body, 0, n)

	for len(stars) < n {
		pos := astro.Vec3{
			X: (rng.Float64()*2 - 1) * StarFieldExtent,
			Y: (rng.Float64()*2 - 1) * StarFieldExtent,
			Z: (rng.Float64()*2 - 1) * StarFieldExtent,
		}
		if pos.Norm() < starClearRadius {
			continue
		}

		stars = append(stars, Body{
			Name:       starNames[rng.IntN(len(starNames))],
			Kind:       BodyStar,
			Radius:     starDisplayRadius,
			Color:      starColors[rng.IntN(len(starColors))],
			Pos:        pos,
			EmitsLight: true,
			StarLike:   true,
			Visible:    visible,
			Wireframe:  wireframe,
			Mag:        rng.Float64()*5 - 1, // -1 (brilliant) to 4 (faint)
		})
	}

	return stars
}

// InStarField reports whether a position lies inside the starfield
// bounding cube.
func InStarField(pos astro.Vec3) bool {
	return pos.X >= -StarFieldExtent && pos.X <= StarFieldExtent &&
		pos.Y >= -StarFieldExtent && pos.Y <= StarFieldExtent &&
		pos.Z >= -StarFieldExtent && pos.Z <= StarFieldExtent
}
