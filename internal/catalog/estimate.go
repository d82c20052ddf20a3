package catalog

import "math"

// PlanetType classifies planets by radius, following the NASA scheme.
type PlanetType string

const (
	TypeUnknown     PlanetType = "Unknown"
	TypeSubEarth    PlanetType = "Sub-Earth"
	TypeEarthSized  PlanetType = "Earth-sized"
	TypeSuperEarth  PlanetType = "Super-Earth"
	TypeSubNeptune  PlanetType = "Sub-Neptune"
	TypeNeptuneLike PlanetType = "Neptune-like"
	TypeGasGiant    PlanetType = "Gas Giant"
)

// TypeFromRadius classifies a planet by radius in Earth radii.
func TypeFromRadius(rEarth float64) PlanetType {
	switch {
	case rEarth <= 0:
		return TypeUnknown
	case rEarth < 1.0:
		return TypeSubEarth
	case rEarth < 1.25:
		return TypeEarthSized
	case rEarth < 2.0:
		return TypeSuperEarth
	case rEarth < 4.0:
		return TypeSubNeptune
	case rEarth < 10.0:
		return TypeNeptuneLike
	default:
		return TypeGasGiant
	}
}

// Type returns the planet's classification, preferring the measured radius
// in Earth radii and falling back to the Jupiter-radii column.
func (p Planet) Type() PlanetType {
	if has(p.RadiusEarth) {
		return TypeFromRadius(*p.RadiusEarth)
	}
	if has(p.RadiusJup) {
		return TypeFromRadius(*p.RadiusJup * jupiterRadiusEarth)
	}
	return TypeUnknown
}

const jupiterRadiusEarth = 11.209

// EstRadiusEarth returns the planet radius in Earth radii, converting from
// Jupiter radii when only that column is present. Zero means unknown.
func EstRadiusEarth(p Planet) float64 {
	if has(p.RadiusEarth) {
		return *p.RadiusEarth
	}
	if has(p.RadiusJup) {
		return *p.RadiusJup * jupiterRadiusEarth
	}
	return 0
}

// EstMassEarth returns the planet mass in Earth masses, estimating from
// radius with a Chen & Kipping style piecewise power law when the catalog
// lacks a measurement.
//
// The segments join continuously at the breakpoints:
//
//	r < 1.23           M = r^3.7        (rocky)
//	1.23 <= r < 4      M ∝ r^1.7        (super-Earth transition)
//	4 <= r < 10        M ∝ r^1.3        (Neptune-like)
//	r >= 10            M ∝ r^0.7        (Jovian, degenerate interiors)
func EstMassEarth(p Planet) float64 {
	if has(p.MassEarth) {
		return *p.MassEarth
	}
	if has(p.MassJup) {
		return *p.MassJup * 317.8
	}

	r := EstRadiusEarth(p)
	if r <= 0 {
		return 1 // no radius either; assume an Earth analogue
	}

	const (
		rockyExp   = 3.7
		transExp   = 1.7
		neptuneExp = 1.3
		jovianExp  = 0.7
	)
	// Continuity coefficients at r = 1.23, 4 and 10.
	c1 := math.Pow(1.23, rockyExp-transExp)
	c2 := c1 * math.Pow(4, transExp-neptuneExp)
	c3 := c2 * math.Pow(10, neptuneExp-jovianExp)

	switch {
	case r < 1.23:
		return math.Pow(r, rockyExp)
	case r < 4:
		return c1 * math.Pow(r, transExp)
	case r < 10:
		return c2 * math.Pow(r, neptuneExp)
	default:
		return c3 * math.Pow(r, jovianExp)
	}
}

// EstDensity returns the bulk density in g/cm^3, falling back to a
// type-keyed constant when the catalog lacks a measurement.
func EstDensity(p Planet) float64 {
	if has(p.Density) && *p.Density > 0 {
		return *p.Density
	}
	switch p.Type() {
	case TypeGasGiant:
		return 1.3
	case TypeNeptuneLike:
		return 1.6
	default:
		return 5.5 // rocky default
	}
}

// EstEqTempK returns the equilibrium temperature in Kelvin. When no measured
// value exists it is estimated from insolation (255 K at one Earth flux) and
// defaults to 300 K with no data at all.
func EstEqTempK(p Planet) float64 {
	if has(p.EqTempK) && *p.EqTempK > 0 {
		return *p.EqTempK
	}
	if has(p.Insolation) && *p.Insolation > 0 {
		return 255 * math.Pow(*p.Insolation, 0.25)
	}
	return 300
}

// EstStarMassSun returns the host star mass in solar masses, defaulting to
// one solar mass when absent.
func EstStarMassSun(s Star) float64 {
	if v := floatOr(s.MassSun, 0); v > 0 {
		return v
	}
	return 1
}

// SpectralClassFromTemp derives a spectral class letter from an effective
// temperature using fixed blackbody breakpoints.
func SpectralClassFromTemp(tempK float64) string {
	switch {
	case tempK >= 30000:
		return "O"
	case tempK >= 10000:
		return "B"
	case tempK >= 7500:
		return "A"
	case tempK >= 6000:
		return "F"
	case tempK >= 5200:
		return "G"
	case tempK >= 3700:
		return "K"
	default:
		return "M"
	}
}

// ColorForTemp returns a display color (hex) for a stellar effective
// temperature, matching the SpectralClassFromTemp breakpoints.
func ColorForTemp(tempK float64) string {
	switch {
	case tempK >= 30000:
		return "#9bb0ff"
	case tempK >= 10000:
		return "#aabfff"
	case tempK >= 7500:
		return "#cad7ff"
	case tempK >= 6000:
		return "#f8f7ff"
	case tempK >= 5200:
		return "#fff4ea"
	case tempK >= 3700:
		return "#ffd2a1"
	default:
		return "#ffcc6f"
	}
}

// ColorForType returns a display color (hex) for a planet classification.
func ColorForType(t PlanetType) string {
	switch t {
	case TypeGasGiant:
		return "#d8ca9d"
	case TypeNeptuneLike:
		return "#5b8fc9"
	case TypeSubNeptune:
		return "#7fb2d9"
	case TypeSuperEarth:
		return "#8c6d4f"
	case TypeEarthSized:
		return "#2e86ab"
	case TypeSubEarth:
		return "#b5b5b5"
	default:
		return "#9a9a9a"
	}
}
