package orrery

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SnapshotExport is the JSON-serializable capture of a scene.
type SnapshotExport struct {
	CaptureID  string           `json:"capture_id"`
	CapturedAt time.Time        `json:"captured_at"`
	Seed       uint64           `json:"seed"`
	Frames     uint64           `json:"frames"`
	Properties PropertiesExport `json:"properties"`
	Bodies     []BodyExport     `json:"bodies"`
}

// PropertiesExport mirrors the control state at capture time.
type PropertiesExport struct {
	MovementEnabled bool    `json:"movement_enabled"`
	PlanetSpeed     float64 `json:"planet_speed"`
	MoonSpeed       float64 `json:"moon_speed"`
	StarCount       int     `json:"star_count"`
}

// BodyExport is a JSON-friendly body representation.
type BodyExport struct {
	Name       string  `json:"name"`
	Kind       string  `json:"kind"`
	Class      string  `json:"class,omitempty"`
	RadiusKm   float64 `json:"radius_km,omitempty"`
	Radius     float64 `json:"radius"`
	Color      string  `json:"color"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	EmitsLight bool    `json:"emits_light"`
	Visible    bool    `json:"visible"`
	Wireframe  bool    `json:"wireframe"`

	Parent      string  `json:"parent,omitempty"`
	OrbitRadius float64 `json:"orbit_radius,omitempty"`
	NormPeriod  float64 `json:"normalized_period,omitempty"`
	// Phase 0 is a legitimate value at frame 0, so no omitempty here:
	// readers tell orbiting bodies apart by the parent field.
	PhaseDeg   float64 `json:"phase_deg"`
	PeriodDays float64 `json:"period_days,omitempty"`
}

// ExportScene converts a scene to its exportable form. Each call mints a
// fresh capture id.
func ExportScene(s *Scene, props PropertiesExport, capturedAt time.Time) *SnapshotExport {
	export := &SnapshotExport{
		CaptureID:  uuid.NewString(),
		CapturedAt: capturedAt,
		Seed:       s.Seed(),
		Frames:     s.FrameCount(),
		Properties: props,
	}

	for i := range s.bodies {
		b := &s.bodies[i]
		be := BodyExport{
			Name:       b.Name,
			Kind:       b.Kind.String(),
			RadiusKm:   b.RadiusKm,
			Radius:     b.Radius,
			Color:      b.Color,
			X:          b.Pos.X,
			Y:          b.Pos.Y,
			Z:          b.Pos.Z,
			EmitsLight: b.EmitsLight,
			Visible:    b.Visible,
			Wireframe:  b.Wireframe,
		}
		if b.Kind != BodyStar {
			be.Class = b.Class.String()
		}
		if b.Orbit.Present {
			be.Parent = s.bodies[b.Orbit.Ref].Name
			be.OrbitRadius = b.Orbit.OrbitRadius
			be.NormPeriod = b.Orbit.NormPeriod
			be.PhaseDeg = b.Orbit.PhaseDeg()
			be.PeriodDays = b.Orbit.PeriodDays
		}
		export.Bodies = append(export.Bodies, be)
	}

	return export
}

// WriteJSON writes the snapshot as indented JSON to the given writer.
func (s *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// SummaryRow represents one row in the summary table.
type SummaryRow struct {
	Name    string
	Kind    string
	Radius  string
	Orbit   string
	Period  string
	Phase   string
	X, Z    float64
	Visible bool
}

// GenerateSummaryRows creates table rows for the Sun, planets, and
// moons. Stars are summarized by count, not listed.
func GenerateSummaryRows(s *Scene) []SummaryRow {
	var rows []SummaryRow
	for i := range s.bodies {
		b := &s.bodies[i]
		if b.Kind == BodyStar {
			continue
		}

		row := SummaryRow{
			Name:    b.Name,
			Kind:    b.Kind.String(),
			Radius:  FormatKm(b.RadiusKm),
			Orbit:   "-",
			Period:  "-",
			Phase:   "-",
			X:       b.Pos.X,
			Z:       b.Pos.Z,
			Visible: b.Visible,
		}
		if b.Orbit.Present {
			row.Orbit = fmt.Sprintf("%.2f", b.Orbit.OrbitRadius)
			row.Period = FormatPeriod(b.Orbit.PeriodDays)
			row.Phase = FormatAngle(b.Orbit.Phase)
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteSummaryTable writes a text table of the scene to the given writer.
func WriteSummaryTable(w io.Writer, s *Scene, timestamp time.Time) {
	rows := GenerateSummaryRows(s)

	fmt.Fprintf(w, "Orrery @ %s (seed %d, %d frames)\n", timestamp.Format(time.RFC3339), s.Seed(), s.FrameCount())
	fmt.Fprintln(w, strings.Repeat("─", 86))

	// Header
	fmt.Fprintf(w, "%-10s %-7s %-11s %-8s %-8s %-8s %10s %10s %-4s\n",
		"Body", "Kind", "Radius", "Orbit", "Period", "Phase", "X", "Z", "Vis")
	fmt.Fprintln(w, strings.Repeat("─", 86))

	// Rows
	for _, r := range rows {
		vis := "yes"
		if !r.Visible {
			vis = "no"
		}
		fmt.Fprintf(w, "%-10s %-7s %-11s %-8s %-8s %-8s %10.2f %10.2f %-4s\n",
			truncateStr(r.Name, 10),
			r.Kind,
			r.Radius,
			r.Orbit,
			r.Period,
			r.Phase,
			r.X,
			r.Z,
			vis,
		)
	}

	fmt.Fprintf(w, "\nTotal: %d bodies, %d stars\n", len(rows), s.StarCount())
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
