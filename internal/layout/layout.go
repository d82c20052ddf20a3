// Package layout turns a catalog star system into renderable body
// descriptors: scaled sizes, compressed orbits, rotation, axial tilt and
// ring assignment. Generation runs once per system selection and is fully
// deterministic: all pseudo-randomness derives from catalog names.
package layout

import (
	"math"
	"sort"

	"github.com/litescript/ls-exosky/internal/binary"
	"github.com/litescript/ls-exosky/internal/catalog"
	"github.com/litescript/ls-exosky/internal/namehash"
	"github.com/litescript/ls-exosky/internal/rings"
	"github.com/litescript/ls-exosky/internal/scale"
)

// Kind categorizes generated bodies.
type Kind int

const (
	KindStar Kind = iota
	KindPlanet
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindStar:
		return "star"
	case KindPlanet:
		return "planet"
	default:
		return "unknown"
	}
}

// Body is one renderable body of a generated system. Regenerated wholesale
// on system selection; never mutated afterward.
type Body struct {
	ID    string
	Kind  Kind
	Type  string // spectral class for stars, classification for planets
	Color string
	TempK float64

	Diameter float64 // scene units, always positive and bounded

	// Orbit about the system barycenter, in scene units. OrbitRadius 0
	// means the body sits at the center.
	OrbitRadius       float64
	OrbitPeriod       float64 // animation period, scene time units
	OrbitTiltDeg      float64
	OrbitEccentricity float64 // clamped to [0, 0.99]
	ArgPeriastronDeg  float64

	HasRings         bool
	AtmosphereHeight float64

	RotationSpeed float64 // exactly 0 when tidally locked
	AxialTiltDeg  float64
	TidallyLocked bool

	PrimaryStar   bool
	CompanionStar bool
}

// Visual tuning constants.
const (
	// sunTempK is the fallback effective temperature.
	sunTempK = 5778.0

	// starBuffer is the extra clearance between binary star disks.
	starBuffer = 2.0

	// planetSpacing is the minimum gap between successive orbit radii so
	// compressed orbits never stack.
	planetSpacing = 4.0

	// planetClearance is the gap between the star system and the first
	// planet orbit.
	planetClearance = 3.0

	minPlanetDiameter = 0.2
	maxPlanetDiameter = 2.5

	// earthAxialTilt is the Earth-like axial tilt baseline in degrees.
	earthAxialTilt = 23.4
	maxAxialTilt   = 45.0

	// tidalLockAU is the semi-major axis inside which a low-eccentricity
	// orbit is treated as tidally locked.
	tidalLockAU = 0.1
)

// Generate produces the renderable bodies for a star system. bin may be
// nil; companion properties are then estimated from the primary when the
// catalog reports more than one star.
func Generate(star catalog.Star, planets []catalog.Planet, bin *binary.Entry) []Body {
	bodies, clearance := placeStars(star, bin)

	sorted := make([]catalog.Planet, len(planets))
	copy(sorted, planets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return planetSortKey(sorted[i]) < planetSortKey(sorted[j])
	})

	prevRadius := clearance
	for _, p := range sorted {
		b := placePlanet(p, star, prevRadius)
		prevRadius = b.OrbitRadius
		bodies = append(bodies, b)
	}
	return bodies
}

// planetSortKey orders planets by semi-major axis; records without one sort
// to the end in stable catalog order.
func planetSortKey(p catalog.Planet) float64 {
	if p.SemiMajorAU == nil {
		return math.Inf(1)
	}
	return *p.SemiMajorAU
}

// starDiameter returns the scaled visual diameter for a stellar radius,
// clamped positive (the scale-layer star mapping can go non-positive for
// sub-dwarfs).
func starDiameter(radiusSun float64) float64 {
	d := scale.StarVisualDiameter(radiusSun)
	if d < 1 {
		d = 1
	}
	return d
}

// placeStars produces the star bodies and returns the radial clearance that
// planet orbits must stay outside of.
func placeStars(star catalog.Star, bin *binary.Entry) ([]Body, float64) {
	host := star.HostName
	primaryTemp := orFloat(star.TempK, sunTempK)
	primaryDiam := starDiameter(orFloat(star.RadiusSun, 1))

	primary := Body{
		ID:          host + " A",
		Kind:        KindStar,
		Type:        spectralClass(star, primaryTemp),
		Color:       catalog.ColorForTemp(primaryTemp),
		TempK:       primaryTemp,
		Diameter:    primaryDiam,
		PrimaryStar: true,
	}

	multiple := bin != nil || orInt(star.StarCount, 1) >= 2
	if !multiple {
		primary.ID = host
		return []Body{primary}, primaryDiam/2 + planetClearance
	}

	var (
		companionDiam float64
		companionTemp float64
		massPrimary   = catalog.EstStarMassSun(star)
		massCompanion float64
		orb           binary.Orbit
	)

	if bin != nil {
		primary.TempK = orPositive(bin.Primary.TempK, primaryTemp)
		primary.Color = catalog.ColorForTemp(primary.TempK)
		primary.Type = catalog.SpectralClassFromTemp(primary.TempK)
		primary.Diameter = starDiameter(orPositive(bin.Primary.RadiusSun, 1))

		massPrimary = orPositive(bin.Primary.MassSun, massPrimary)
		massCompanion = orPositive(bin.Companion.MassSun, 0.5*massPrimary)
		companionTemp = orPositive(bin.Companion.TempK, 0.85*primary.TempK)
		companionDiam = starDiameter(orPositive(bin.Companion.RadiusSun, 0.7))
		orb = bin.Orbit
	} else {
		// No detailed record: estimate the companion from the primary.
		massCompanion = 0.5 * massPrimary
		companionTemp = 0.85 * primary.TempK
		companionDiam = 0.7 * primary.Diameter
		orb = binary.Orbit{SemiMajorAU: 0.5, PeriodDays: 3650}
	}

	ecc := clamp(orb.Eccentricity, 0, 0.99)

	// Separation between the stars: the scaled true separation, pushed out
	// until neither disk can overlap the other at closest approach. The
	// constraint is solved from the scaled diameters rather than hardcoded
	// so it tracks any change to the diameter scaling.
	separation := scale.OrbitalDistance(orb.SemiMajorAU)
	minSeparation := (primary.Diameter/2 + companionDiam/2 + starBuffer) / (1 - ecc)
	if separation < minSeparation {
		separation = minSeparation
	}

	// Per-star barycentric radii, inversely proportional to mass.
	total := massPrimary + massCompanion
	primary.OrbitRadius = separation * massCompanion / total
	primary.OrbitPeriod = compressPeriod(orb.PeriodDays)
	primary.OrbitEccentricity = ecc
	primary.OrbitTiltDeg = orb.InclinationDeg
	primary.ArgPeriastronDeg = orb.ArgPeriastronDeg

	companion := Body{
		ID:                host + " B",
		Kind:              KindStar,
		Type:              catalog.SpectralClassFromTemp(companionTemp),
		Color:             catalog.ColorForTemp(companionTemp),
		TempK:             companionTemp,
		Diameter:          companionDiam,
		OrbitRadius:       separation * massPrimary / total,
		OrbitPeriod:       compressPeriod(orb.PeriodDays),
		OrbitEccentricity: ecc,
		OrbitTiltDeg:      orb.InclinationDeg,
		// Opposite side of the barycenter.
		ArgPeriastronDeg: orb.ArgPeriastronDeg + 180,
		CompanionStar:    true,
	}

	outermost := math.Max(
		primary.OrbitRadius*(1+ecc)+primary.Diameter/2,
		companion.OrbitRadius*(1+ecc)+companionDiam/2,
	)
	return []Body{primary, companion}, outermost + planetClearance
}

// compressPeriod maps a true orbital period in days to an animation period
// on a log scale, so millennia-long binary orbits still visibly move.
func compressPeriod(periodDays float64) float64 {
	if periodDays <= 0 {
		periodDays = 365.25
	}
	return 120 * math.Log10(periodDays+10)
}

func placePlanet(p catalog.Planet, star catalog.Star, prevRadius float64) Body {
	ptype := p.Type()
	teq := catalog.EstEqTempK(p)

	// Compressed orbit radius, floored one spacing step outside the
	// previous orbit (or the star clearance, for the innermost planet) so
	// radii are strictly increasing in output order even when a record
	// with no semi-major axis follows a wide scaled orbit.
	radius := prevRadius + planetSpacing
	if p.SemiMajorAU != nil && *p.SemiMajorAU > 0 {
		if r := scale.OrbitalDistance(*p.SemiMajorAU); r > radius {
			radius = r
		}
	}

	periodDays := estimatePeriodDays(p, star)
	locked := tidallyLocked(p)

	ecc := 0.0
	if p.Eccentricity != nil {
		ecc = clamp(*p.Eccentricity, 0, 0.99)
	}

	inclination := 0.0
	if p.InclinationDeg != nil {
		inclination = *p.InclinationDeg
	}

	return Body{
		ID:                p.Name,
		Kind:              KindPlanet,
		Type:              string(ptype),
		Color:             catalog.ColorForType(ptype),
		TempK:             teq,
		Diameter:          planetDiameter(p),
		OrbitRadius:       radius,
		OrbitPeriod:       200 + 5*math.Sqrt(periodDays),
		OrbitTiltDeg:      inclination,
		OrbitEccentricity: ecc,
		HasRings:          rings.HasRings(p, star),
		AtmosphereHeight:  atmosphereFor(ptype),
		RotationSpeed:     rotationSpeed(p, ptype, locked),
		AxialTiltDeg:      axialTilt(p, ptype, teq, ecc, locked),
		TidallyLocked:     locked,
	}
}

// planetDiameter maps the planet radius in Jupiter radii to a visual
// diameter, clamped to [minPlanetDiameter, maxPlanetDiameter].
func planetDiameter(p catalog.Planet) float64 {
	rJup := 0.0
	if p.RadiusJup != nil {
		rJup = *p.RadiusJup
	} else if r := catalog.EstRadiusEarth(p); r > 0 {
		rJup = r / 11.209
	}
	return clamp(rJup, minPlanetDiameter, maxPlanetDiameter)
}

// estimatePeriodDays returns the orbital period, deriving it from Kepler's
// third law when only the semi-major axis is known.
func estimatePeriodDays(p catalog.Planet, star catalog.Star) float64 {
	if p.OrbitPeriodDays != nil && *p.OrbitPeriodDays > 0 {
		return *p.OrbitPeriodDays
	}
	if p.SemiMajorAU != nil && *p.SemiMajorAU > 0 {
		a := *p.SemiMajorAU
		return 365.25 * math.Sqrt(a*a*a/catalog.EstStarMassSun(star))
	}
	return 365.25
}

// tidallyLocked reports whether a planet is treated as tidally locked:
// close enough in that tides have circularized and synchronized the orbit.
func tidallyLocked(p catalog.Planet) bool {
	if p.SemiMajorAU == nil || *p.SemiMajorAU <= 0 {
		return false
	}
	if *p.SemiMajorAU > tidalLockAU {
		return false
	}
	// A strongly eccentric close orbit is not yet synchronized.
	return p.Eccentricity == nil || *p.Eccentricity < 0.3
}

// rotationBase is the per-type rotation speed table, in scene degrees per
// time unit. Gas giants spin fastest, small rocky worlds slowest.
var rotationBase = map[catalog.PlanetType]float64{
	catalog.TypeGasGiant:    2.4,
	catalog.TypeNeptuneLike: 1.8,
	catalog.TypeSubNeptune:  1.4,
	catalog.TypeSuperEarth:  1.1,
	catalog.TypeEarthSized:  1.0,
	catalog.TypeSubEarth:    0.6,
	catalog.TypeUnknown:     1.0,
}

// rotationSpeed derives the animation rotation speed: the type base
// perturbed ±15% by the name hash, and exactly 0 when tidally locked.
func rotationSpeed(p catalog.Planet, ptype catalog.PlanetType, locked bool) float64 {
	if locked {
		return 0
	}
	base := rotationBase[ptype]
	return base * (1 + 0.15*namehash.Jitter(p.Name))
}

// atmosphereFor is the fixed type -> atmosphere shell thickness table, as a
// fraction of the body diameter.
func atmosphereFor(t catalog.PlanetType) float64 {
	switch t {
	case catalog.TypeGasGiant:
		return 0.35
	case catalog.TypeNeptuneLike:
		return 0.30
	case catalog.TypeSubNeptune:
		return 0.20
	case catalog.TypeSuperEarth:
		return 0.12
	case catalog.TypeEarthSized:
		return 0.10
	case catalog.TypeSubEarth:
		return 0.02
	default:
		return 0.05
	}
}

// axialTilt derives the axial tilt from an Earth-like 23.4 degree baseline:
// damped toward 0 for tidally locked, close-in, hot or gas-giant planets,
// widened for eccentric orbits, perturbed ±30% by the name hash, and
// clamped to [0, maxAxialTilt].
func axialTilt(p catalog.Planet, ptype catalog.PlanetType, teq, ecc float64, locked bool) float64 {
	tilt := earthAxialTilt

	switch {
	case locked:
		tilt *= 0.05
	case p.SemiMajorAU != nil && *p.SemiMajorAU < 0.3:
		tilt *= 0.4
	case teq > 800:
		tilt *= 0.4
	case ptype == catalog.TypeGasGiant:
		tilt *= 0.6
	}

	if ecc > 0.3 {
		tilt *= 1.5
	}

	tilt *= 1 + 0.3*namehash.Jitter(p.Name)
	return clamp(tilt, 0, maxAxialTilt)
}

// spectralClass returns the cataloged spectral type when present, else one
// derived from the effective temperature.
func spectralClass(s catalog.Star, tempK float64) string {
	if s.SpectralType != nil && *s.SpectralType != "" {
		return *s.SpectralType
	}
	return catalog.SpectralClassFromTemp(tempK)
}

func orFloat(p *float64, def float64) float64 {
	if p == nil || *p <= 0 {
		return def
	}
	return *p
}

func orPositive(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}

func orInt(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
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
