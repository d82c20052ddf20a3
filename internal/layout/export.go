package layout

import (
	"encoding/json"
	"io"
	"time"
)

// SystemExport is the JSON-serializable representation of a generated
// system layout.
type SystemExport struct {
	Host        string       `json:"host"`
	GeneratedAt time.Time    `json:"generated_at"`
	Bodies      []BodyExport `json:"bodies"`
}

// BodyExport is a JSON-friendly body representation.
type BodyExport struct {
	ID    string  `json:"id"`
	Kind  string  `json:"kind"`
	Type  string  `json:"type"`
	Color string  `json:"color"`
	TempK float64 `json:"temp_k"`

	Diameter float64 `json:"diameter"`

	OrbitRadius       float64 `json:"orbit_radius"`
	OrbitPeriod       float64 `json:"orbit_period"`
	OrbitTiltDeg      float64 `json:"orbit_tilt_deg"`
	OrbitEccentricity float64 `json:"orbit_eccentricity"`
	ArgPeriastronDeg  float64 `json:"arg_periastron_deg"`

	HasRings         bool    `json:"has_rings"`
	AtmosphereHeight float64 `json:"atmosphere_height"`

	RotationSpeed float64 `json:"rotation_speed"`
	AxialTiltDeg  float64 `json:"axial_tilt_deg"`
	TidallyLocked bool    `json:"tidally_locked"`

	PrimaryStar   bool `json:"primary_star,omitempty"`
	CompanionStar bool `json:"companion_star,omitempty"`
}

// ExportSystem converts generated bodies to an exportable format.
func ExportSystem(host string, bodies []Body, generatedAt time.Time) *SystemExport {
	export := &SystemExport{
		Host:        host,
		GeneratedAt: generatedAt,
		Bodies:      make([]BodyExport, 0, len(bodies)),
	}
	for _, b := range bodies {
		export.Bodies = append(export.Bodies, BodyExport{
			ID:                b.ID,
			Kind:              b.Kind.String(),
			Type:              b.Type,
			Color:             b.Color,
			TempK:             b.TempK,
			Diameter:          b.Diameter,
			OrbitRadius:       b.OrbitRadius,
			OrbitPeriod:       b.OrbitPeriod,
			OrbitTiltDeg:      b.OrbitTiltDeg,
			OrbitEccentricity: b.OrbitEccentricity,
			ArgPeriastronDeg:  b.ArgPeriastronDeg,
			HasRings:          b.HasRings,
			AtmosphereHeight:  b.AtmosphereHeight,
			RotationSpeed:     b.RotationSpeed,
			AxialTiltDeg:      b.AxialTiltDeg,
			TidallyLocked:     b.TidallyLocked,
			PrimaryStar:       b.PrimaryStar,
			CompanionStar:     b.CompanionStar,
		})
	}
	return export
}

// WriteJSON writes the export as indented JSON.
func (e *SystemExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}
