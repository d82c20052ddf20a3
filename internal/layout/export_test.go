package layout

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/litescript/ls-exosky/internal/catalog"
)

func TestExportSystemRoundTrip(t *testing.T) {
	star := sunLike("Kepler-22")
	planets := []catalog.Planet{
		{Name: "Kepler-22 b", RadiusEarth: fp(2.38), SemiMajorAU: fp(0.849), OrbitPeriodDays: fp(289.86)},
	}
	bodies := Generate(star, planets, nil)
	ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	export := ExportSystem("Kepler-22", bodies, ts)
	if export.Host != "Kepler-22" {
		t.Errorf("host = %q", export.Host)
	}
	if len(export.Bodies) != len(bodies) {
		t.Fatalf("exported %d bodies, want %d", len(export.Bodies), len(bodies))
	}
	if export.Bodies[0].Kind != "star" {
		t.Errorf("first body kind = %q, want star", export.Bodies[0].Kind)
	}

	var buf bytes.Buffer
	if err := export.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var decoded SystemExport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !decoded.GeneratedAt.Equal(ts) {
		t.Errorf("generated_at = %v, want %v", decoded.GeneratedAt, ts)
	}
	if decoded.Bodies[1].ID != "Kepler-22 b" {
		t.Errorf("planet id = %q", decoded.Bodies[1].ID)
	}
	if decoded.Bodies[1].Kind != "planet" {
		t.Errorf("planet kind = %q", decoded.Bodies[1].Kind)
	}
	if decoded.Bodies[1].OrbitRadius <= 0 {
		t.Error("planet orbit radius must be positive")
	}
}

func TestExportSystemEmpty(t *testing.T) {
	export := ExportSystem("Empty", nil, time.Now())
	if len(export.Bodies) != 0 {
		t.Errorf("exported %d bodies, want 0", len(export.Bodies))
	}
	var buf bytes.Buffer
	if err := export.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
}
