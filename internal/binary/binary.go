// Package binary loads the binary-star companion document set: detailed
// two-star records keyed by host name, fetched once and read many times.
package binary

import (
	"encoding/json"
	"fmt"
	"os"
)

// Component describes one star of a binary pair.
type Component struct {
	MassSun   float64 `json:"mass"`
	RadiusSun float64 `json:"radius"`
	TempK     float64 `json:"temperature"`
	LumSun    float64 `json:"luminosity"`
}

// Orbit is the shared orbit of the pair about its barycenter.
type Orbit struct {
	SemiMajorAU      float64 `json:"semiMajorAxis"`
	PeriodDays       float64 `json:"period"`
	Eccentricity     float64 `json:"eccentricity"`
	InclinationDeg   float64 `json:"inclination"`
	ArgPeriastronDeg float64 `json:"argOfPeriastron"`
}

// Entry is one binary-system record.
type Entry struct {
	Primary   Component `json:"primary"`
	Companion Component `json:"companion"`
	Orbit     Orbit     `json:"orbit"`
}

// Document is the full keyed document: host name -> entry.
type Document map[string]Entry

// ParseDocument decodes the JSON document format.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse binary document: %w", err)
	}
	return doc, nil
}

// LoadFile reads a binary-system document from a local file.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read binary document: %w", err)
	}
	return ParseDocument(data)
}
