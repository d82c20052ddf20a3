// Package scale provides the monotonic normalization functions that keep
// rendered sizes and distances inside bounded visual ranges.
package scale

import "math"

// Base sizes for the visual mappings, in scene units.
const (
	PlanetBase = 1.0
	StarBase   = 4.0
	OrbitBase  = 10.0

	// StarVisualMax caps the visual diameter of giant stars so corona
	// effects stay bounded.
	StarVisualMax = 30.0
)

// PlanetRadius maps a planet radius in Earth radii to a visual radius.
// Strictly increasing; PlanetRadius(0) = PlanetBase/2.
func PlanetRadius(rEarth float64) float64 {
	return PlanetBase*math.Log10(rEarth+1) + PlanetBase*0.5
}

// StarRadius maps a stellar radius in solar radii to a visual radius.
//
// Known quirk, preserved for compatibility: for inputs below 0.1 solar radii
// the log term goes below -0.5 and the result is non-positive. Callers that
// feed this into geometry must clamp.
func StarRadius(rSun float64) float64 {
	return StarBase * (0.5 + math.Log10(rSun+0.1))
}

// OrbitalDistance compresses an orbital distance in AU into a visual radius
// with a square-root scale.
func OrbitalDistance(au float64) float64 {
	return OrbitBase * math.Sqrt(au)
}

// NormalizeDistance maps a distance into [0, targetRange] relative to the
// largest distance in the data set, on a log scale.
func NormalizeDistance(d, dMax, targetRange float64) float64 {
	if dMax <= 0 {
		return 0
	}
	return targetRange * math.Log10(d+1) / math.Log10(dMax+1)
}

// StarVisualDiameter maps a stellar radius in solar radii to a bounded
// visual diameter: linear up to 5 solar radii, log-compressed beyond, and
// hard-clamped at StarVisualMax.
func StarVisualDiameter(rSun float64) float64 {
	if rSun <= 0 {
		rSun = 1
	}

	var d float64
	if rSun <= 5 {
		d = StarBase * rSun
	} else {
		d = StarBase * (5 + 4*math.Log10(rSun/5+1))
	}

	return math.Min(d, StarVisualMax)
}
