// Package rings scores how plausible a ring system is for a planet, from
// Hill-sphere room, tidal disruption distance, temperature and system age.
package rings

import (
	"math"

	"github.com/litescript/ls-exosky/internal/catalog"
	"github.com/litescript/ls-exosky/internal/namehash"
)

const (
	auKm         = 149597870.7
	earthRadKm   = 6371.0
	sunMassEarth = 333000.0

	// ringParticleDensity is the reference density of icy ring particles
	// in g/cm^3, used in the Roche limit.
	ringParticleDensity = 0.9

	// rocheCoeff is the fluid-body Roche coefficient.
	rocheCoeff = 2.456
)

// Sub-score weights. Giantness dominates: rings are overwhelmingly a
// giant-planet phenomenon.
const (
	weightGiantness = 0.50
	weightHillRoche = 0.35
	weightTemp      = 0.10
	weightYouth     = 0.05
)

// HillRadiusKm returns the Hill radius a*(Mp/(3*Mstar))^(1/3) in km.
// Returns 0 when the orbit or masses are unknown.
func HillRadiusKm(semiMajorAU, planetMassEarth, starMassSun float64) float64 {
	if semiMajorAU <= 0 || planetMassEarth <= 0 || starMassSun <= 0 {
		return 0
	}
	ratio := planetMassEarth / (3 * starMassSun * sunMassEarth)
	return semiMajorAU * auKm * math.Cbrt(ratio)
}

// RocheLimitKm returns the fluid Roche limit 2.456*Rp*(rho_p/rho_ring)^(1/3)
// in km, against the icy reference particle density.
func RocheLimitKm(planetRadiusEarth, planetDensity float64) float64 {
	if planetRadiusEarth <= 0 || planetDensity <= 0 {
		return 0
	}
	return rocheCoeff * planetRadiusEarth * earthRadKm *
		math.Cbrt(planetDensity/ringParticleDensity)
}

// hillRocheRatio returns Hill radius over Roche limit: how much room exists
// between where ring material survives and where the star strips it away.
func hillRocheRatio(p catalog.Planet, s catalog.Star) float64 {
	hill := HillRadiusKm(
		valueOr(p.SemiMajorAU, 0),
		catalog.EstMassEarth(p),
		catalog.EstStarMassSun(s),
	)
	roche := RocheLimitKm(catalog.EstRadiusEarth(p), catalog.EstDensity(p))
	if hill <= 0 || roche <= 0 {
		return 0
	}
	return hill / roche
}

// Probability returns the ring probability in [0, 1] for a planet.
//
// Hard cutoffs come first: below 2 Earth radii the probability is exactly 0.
// The sub-Neptune band [2, 4) only passes with a wide Hill/Roche margin and
// a cold or young system, and even then stays at 0.02. From 4 Earth radii
// upward four weighted sub-scores combine: giantness, Hill/Roche
// availability, temperature and system youth.
func Probability(p catalog.Planet, s catalog.Star) float64 {
	radius := catalog.EstRadiusEarth(p)
	if radius < 2 {
		return 0
	}

	ratio := hillRocheRatio(p, s)
	teq := catalog.EstEqTempK(p)
	age, hasAge := optFloat(s.AgeGyr)

	if radius < 4 {
		// Sub-Neptune band: almost never ringed.
		cold := teq < 200
		young := hasAge && age < 0.5
		if ratio > 8 && (cold || young) {
			return 0.02
		}
		return 0
	}

	var giantness float64
	switch {
	case radius > 8:
		giantness = 1.0
	case radius > 6:
		giantness = 0.5
	default:
		giantness = 0.25
	}

	var availability float64
	switch {
	case ratio > 10:
		availability = 1.0
	case ratio > 5:
		availability = 0.8
	case ratio > 2:
		availability = 0.4
	default:
		availability = 0.05
	}

	var temp float64
	switch {
	case teq < 200:
		temp = 1.0 // cold enough for icy rings
	case teq < 500:
		temp = 0.2
	default:
		temp = 0.05
	}

	youth := 0.2
	if hasAge {
		switch {
		case age < 0.3:
			youth = 1.0
		case age < 1:
			youth = 0.6
		case age < 3:
			youth = 0.4
		}
	}

	score := giantness*weightGiantness +
		availability*weightHillRoche +
		temp*weightTemp +
		youth*weightYouth

	return clamp01(score)
}

// HasRings deterministically decides ring presence for a planet. The draw is
// a stable hash of the planet name, compared against Probability: a
// threshold test, not a coin flip, so the same record always yields the
// same answer.
func HasRings(p catalog.Planet, s catalog.Star) bool {
	return namehash.Unit(p.Name+"-rings") < Probability(p, s)
}

func valueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func optFloat(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
