package orrery

import (
	"fmt"

	"github.com/litescript/ls-orrery/internal/astro"
)

// FormatKm returns a human-readable distance for HUD and table display.
func FormatKm(km float64) string {
	switch {
	case km <= 0:
		return "N/A"
	case km < 1e6:
		return formatWithUnit(km, "km")
	case km < 1e9:
		return formatWithUnit(km/1e6, "M km")
	default:
		// Very large distances read better in AU
		return formatWithUnit(astro.KmToAU(km), "AU")
	}
}

// FormatPeriod returns a human-readable orbital period from days.
func FormatPeriod(days float64) string {
	switch {
	case days <= 0:
		return "N/A"
	case days < 1:
		return formatWithUnit(days*24, "h")
	case days < 1000:
		return formatWithUnit(days, "d")
	default:
		return formatWithUnit(days/365.25, "yr")
	}
}

// FormatAngle returns a degree string for a phase angle in radians.
func FormatAngle(rad float64) string {
	return fmt.Sprintf("%.1f°", astro.RadToDeg(rad))
}

func formatWithUnit(value float64, unit string) string {
	if value < 10 {
		return fmt.Sprintf("%.2f %s", value, unit)
	} else if value < 100 {
		return fmt.Sprintf("%.1f %s", value, unit)
	}
	return fmt.Sprintf("%.0f %s", value, unit)
}
