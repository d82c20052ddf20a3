// Package astro provides astronomical coordinate transformations and sky math.
package astro

import (
	"math"
	"time"
)

// Equatorial represents catalog sky coordinates (J2000).
type Equatorial struct {
	RADeg  float64 // Right Ascension in degrees (0-360)
	DecDeg float64 // Declination in degrees (-90 to +90)
}

// Horizontal represents observer-relative sky coordinates.
type Horizontal struct {
	AltDeg float64 // Altitude in degrees (0=horizon, 90=zenith)
	AzDeg  float64 // Azimuth in degrees (0=N, 90=E, 180=S, 270=W)
}

// Observer represents a ground-based observer location.
type Observer struct {
	LatDeg float64 // Latitude in degrees (north positive)
	LonDeg float64 // Longitude in degrees (east positive)
	Name   string  // Optional name for the site
}

const (
	// unixEpochJD is the Julian Date of the Unix epoch (1970-01-01 00:00 UTC).
	unixEpochJD = 2440587.5

	msPerDay = 86400000.0

	// j2000 is the Julian Date of the J2000.0 epoch (2000-01-01 12:00).
	j2000 = 2451545.0
)

// JulianDate converts a time to a Julian Date via the Unix-epoch offset.
func JulianDate(t time.Time) float64 {
	ms := float64(t.UnixMilli())
	return ms/msPerDay + unixEpochJD
}

// GMST calculates Greenwich Mean Sidereal Time in degrees for a given UTC time.
// Uses the IAU 1982 polynomial based on Julian Date.
func GMST(t time.Time) float64 {
	jd := JulianDate(t)

	// Julian centuries since J2000.0
	T := (jd - j2000) / 36525.0

	gmst := 280.46061837 +
		360.98564736629*(jd-j2000) +
		0.000387933*T*T -
		T*T*T/38710000.0

	return normalize360(gmst)
}

// LST calculates the Local Sidereal Time in degrees for a given UTC time
// and observer longitude (east positive).
func LST(t time.Time, lonDeg float64) float64 {
	return normalize360(GMST(t) + lonDeg)
}

// EquatorialToHorizontal converts equatorial coordinates (RA/Dec) to horizontal
// coordinates (Alt/Az) for a given observer and time.
//
// Conventions:
//   - Azimuth: 0° = North, 90° = East, 180° = South, 270° = West
//   - Altitude: 0° = horizon, 90° = zenith
func EquatorialToHorizontal(eq Equatorial, obs Observer, t time.Time) Horizontal {
	lat := degToRad(obs.LatDeg)
	dec := degToRad(eq.DecDeg)

	// Hour angle = LST - RA, normalized into (-180, 180]
	ha := degToRad(normalize180(LST(t, obs.LonDeg) - eq.RADeg))

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	alt := math.Asin(clamp(sinAlt, -1, 1))

	// Azimuth from the spherical triangle. Near the poles cos(alt)*cos(lat)
	// vanishes and the quotient is undefined; fall back to the numerator sign.
	num := math.Sin(dec) - math.Sin(alt)*math.Sin(lat)
	den := math.Cos(alt) * math.Cos(lat)

	var az float64
	if math.Abs(den) < 1e-9 {
		if num >= 0 {
			az = 0
		} else {
			az = math.Pi
		}
	} else {
		// Clamp to [-1, 1] to absorb floating point overshoot
		az = math.Acos(clamp(num/den, -1, 1))
	}

	// Resolve the east/west ambiguity: positive hour angle means the object
	// is west of the meridian.
	if math.Sin(ha) > 0 {
		az = 2*math.Pi - az
	}

	return Horizontal{
		AltDeg: radToDeg(alt),
		AzDeg:  normalize360(radToDeg(az)),
	}
}

// ElevationTier categorizes altitude for UI display.
type ElevationTier int

const (
	ElevationNone   ElevationTier = iota // Below horizon
	ElevationLow                         // 0-15 degrees
	ElevationMedium                      // 15-45 degrees
	ElevationHigh                        // 45+ degrees
)

// GetElevationTier returns the tier for a given altitude.
func GetElevationTier(altDeg float64) ElevationTier {
	switch {
	case altDeg <= 0:
		return ElevationNone
	case altDeg < 15:
		return ElevationLow
	case altDeg < 45:
		return ElevationMedium
	default:
		return ElevationHigh
	}
}

// normalize360 wraps an angle in degrees into [0, 360).
func normalize360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// normalize180 wraps an angle in degrees into (-180, 180].
func normalize180(deg float64) float64 {
	deg = normalize360(deg)
	if deg > 180 {
		deg -= 360
	}
	return deg
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
