// Package orbit places bodies on elliptical orbits by solving Kepler's
// equation.
package orbit

import (
	"math"

	"github.com/litescript/ls-exosky/internal/astro"
	"github.com/litescript/ls-exosky/internal/catalog"
)

// MaxEccentricity is the upper bound applied to eccentricity before any
// geometric computation. The fixed-iteration solver is accurate below this
// bound; behavior at e >= 1 is undefined and must be rejected by callers.
const MaxEccentricity = 0.99

// Elements holds the orbital elements needed to sample an ellipse.
type Elements struct {
	SemiMajorAU      float64 // > 0
	Eccentricity     float64 // [0, MaxEccentricity]
	InclinationDeg   float64
	PeriodDays       float64 // > 0
	ArgPeriastronDeg float64 // optional; zero when the catalog lacks it
}

// FromPlanet derives orbital elements from a catalog record. The second
// return value is false when the record lacks a semi-major axis or period:
// "no elements" is a distinct state from a circular zero-inclination orbit,
// and callers must skip orbit rendering entirely in that case.
func FromPlanet(p catalog.Planet) (Elements, bool) {
	if p.SemiMajorAU == nil || *p.SemiMajorAU <= 0 {
		return Elements{}, false
	}
	if p.OrbitPeriodDays == nil || *p.OrbitPeriodDays <= 0 {
		return Elements{}, false
	}

	el := Elements{
		SemiMajorAU: *p.SemiMajorAU,
		PeriodDays:  *p.OrbitPeriodDays,
	}
	if p.Eccentricity != nil {
		el.Eccentricity = clamp(*p.Eccentricity, 0, MaxEccentricity)
	}
	if p.InclinationDeg != nil {
		el.InclinationDeg = *p.InclinationDeg
	}
	return el, true
}

// SolveKepler solves Kepler's equation M = E - e*sin(E) for the eccentric
// anomaly using Newton-Raphson with a fixed 10 iterations. The fixed count
// keeps the result deterministic across platforms. The start value depends
// on eccentricity: E0 = M converges quickly for moderate orbits, but near
// the parabolic limit 1 - e*cos(M) is tiny at small mean anomalies and the
// first step overshoots by orders of magnitude; E0 = pi keeps every step
// inside the bracket there. The caller must not pass e >= 1.
func SolveKepler(meanAnomaly, eccentricity float64) float64 {
	E := meanAnomaly
	if eccentricity > 0.8 {
		E = math.Pi
	}
	for i := 0; i < 10; i++ {
		E -= (E - eccentricity*math.Sin(E) - meanAnomaly) /
			(1 - eccentricity*math.Cos(E))
	}
	return E
}

// Position samples the orbit at time t (days since periastron). The orbit
// plane starts in XY with periastron on +X; inclination is applied as a
// rotation about the X axis.
func Position(el Elements, tDays float64) astro.Vec3 {
	e := clamp(el.Eccentricity, 0, MaxEccentricity)

	M := math.Mod(2*math.Pi*tDays/el.PeriodDays, 2*math.Pi)
	E := SolveKepler(M, e)

	// True anomaly via the half-angle form, stable near e*cos(E) = ±1.
	nu := 2 * math.Atan2(
		math.Sqrt(1+e)*math.Sin(E/2),
		math.Sqrt(1-e)*math.Cos(E/2),
	)

	r := el.SemiMajorAU * (1 - e*math.Cos(E))

	w := el.ArgPeriastronDeg * math.Pi / 180
	x := r * math.Cos(nu+w)
	y := r * math.Sin(nu+w)

	inc := el.InclinationDeg * math.Pi / 180
	return astro.Vec3{
		X: x,
		Y: y * math.Cos(inc),
		Z: y * math.Sin(inc),
	}
}

// Path samples one full orbit as segments+1 points; the first and last
// points coincide so the polyline closes.
func Path(el Elements, segments int) []astro.Vec3 {
	if segments < 1 {
		segments = 1
	}
	pts := make([]astro.Vec3, segments+1)
	for i := 0; i < segments; i++ {
		t := el.PeriodDays * float64(i) / float64(segments)
		pts[i] = Position(el, t)
	}
	pts[segments] = pts[0]
	return pts
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
