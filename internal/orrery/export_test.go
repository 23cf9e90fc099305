package orrery

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func testProps() PropertiesExport {
	return PropertiesExport{
		MovementEnabled: true,
		PlanetSpeed:     5,
		MoonSpeed:       2,
		StarCount:       10,
	}
}

func TestExportScene(t *testing.T) {
	s := Build(Config{StarCount: 10, Seed: 42})
	for i := 0; i < 3; i++ {
		s.Advance(testMotion(5, 2))
	}

	export := ExportScene(s, testProps(), time.Now())

	if export.CaptureID == "" {
		t.Error("missing capture id")
	}
	if export.Seed != 42 {
		t.Errorf("Seed = %d, want 42", export.Seed)
	}
	if export.Frames != 3 {
		t.Errorf("Frames = %d, want 3", export.Frames)
	}
	if len(export.Bodies) != s.Len() {
		t.Errorf("exported %d bodies, want %d", len(export.Bodies), s.Len())
	}

	// Each export gets its own capture id
	again := ExportScene(s, testProps(), time.Now())
	if again.CaptureID == export.CaptureID {
		t.Error("capture ids must be unique per export")
	}
}

func TestExportBodyFields(t *testing.T) {
	s := Build(Config{StarCount: 0, Seed: 8})
	export := ExportScene(s, testProps(), time.Now())

	byName := make(map[string]BodyExport)
	for _, b := range export.Bodies {
		byName[b.Name] = b
	}

	sun, ok := byName["Sun"]
	if !ok {
		t.Fatal("Sun missing from export")
	}
	if sun.Kind != "sun" || !sun.EmitsLight || sun.Parent != "" {
		t.Errorf("Sun export wrong: %+v", sun)
	}

	earth, ok := byName["Earth"]
	if !ok {
		t.Fatal("Earth missing from export")
	}
	if earth.Parent != "Sun" {
		t.Errorf("Earth parent = %q, want Sun", earth.Parent)
	}
	if earth.OrbitRadius <= 0 || earth.NormPeriod <= 0 {
		t.Errorf("Earth orbit fields missing: %+v", earth)
	}
	if earth.RadiusKm != 6371.0 {
		t.Errorf("Earth radius_km = %v, want 6371", earth.RadiusKm)
	}

	luna, ok := byName["Luna"]
	if !ok {
		t.Fatal("Luna missing from export")
	}
	if luna.Parent != "Earth" {
		t.Errorf("Luna parent = %q, want Earth", luna.Parent)
	}
}

func TestExportPhasePresentAtFrameZero(t *testing.T) {
	// Planets legitimately start at phase 0, so the field must survive
	// serialization even before the first frame.
	s := Build(Config{StarCount: 0, Seed: 7})
	export := ExportScene(s, testProps(), time.Now())

	var buf bytes.Buffer
	if err := export.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	var decoded struct {
		Bodies []map[string]json.RawMessage `json:"bodies"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	for _, b := range decoded.Bodies {
		name := string(b["name"])
		if _, ok := b["parent"]; !ok {
			continue
		}
		if _, ok := b["phase_deg"]; !ok {
			t.Errorf("orbiting body %s exported without phase_deg", name)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	s := Build(Config{StarCount: 4, Seed: 3})
	export := ExportScene(s, testProps(), time.Now())

	var buf bytes.Buffer
	if err := export.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	var decoded SnapshotExport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.CaptureID != export.CaptureID {
		t.Errorf("capture id lost in encoding: %q vs %q", decoded.CaptureID, export.CaptureID)
	}
	if len(decoded.Bodies) != len(export.Bodies) {
		t.Errorf("decoded %d bodies, want %d", len(decoded.Bodies), len(export.Bodies))
	}
	if !decoded.Properties.MovementEnabled || decoded.Properties.PlanetSpeed != 5 {
		t.Errorf("properties lost in encoding: %+v", decoded.Properties)
	}
}

func TestWriteSummaryTable(t *testing.T) {
	s := Build(Config{StarCount: 15, Seed: 1})

	var buf bytes.Buffer
	WriteSummaryTable(&buf, s, time.Now())
	out := buf.String()

	for _, name := range []string{"Sun", "Mercury", "Pluto", "Luna", "Titan"} {
		if !strings.Contains(out, name) {
			t.Errorf("summary missing %s", name)
		}
	}
	if !strings.Contains(out, "15 stars") {
		t.Error("summary missing the star count")
	}
	if strings.Contains(out, "Sirius") {
		t.Error("summary should not list individual stars")
	}
}

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		s      string
		maxLen int
		want   string
	}{
		{"Earth", 10, "Earth"},
		{"Ganymede", 8, "Ganymede"},
		{"Ganymede", 6, "Gany.."},
		{"abc", 2, "ab"},
	}

	for _, tt := range tests {
		if got := truncateStr(tt.s, tt.maxLen); got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.s, tt.maxLen, got, tt.want)
		}
	}
}
