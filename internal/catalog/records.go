// Package catalog models NASA Exoplanet Archive records and the fallback
// estimators for their optional fields.
//
// Catalog records are wide and sparse: any numeric field may be absent, so
// every optional column is a pointer. Records are read-only inputs; nothing
// in the engine mutates them. Estimation formulas for missing fields live in
// estimate.go so each fallback exists in exactly one place.
package catalog

// Star holds the stellar columns of a pscomppars row (one host star).
type Star struct {
	HostName      string   `json:"hostname"`
	SpectralType  *string  `json:"st_spectype"`
	RadiusSun     *float64 `json:"st_rad"`
	MassSun       *float64 `json:"st_mass"`
	Luminosity    *float64 `json:"st_lum"` // log10(L/Lsun)
	TempK         *float64 `json:"st_teff"`
	AgeGyr        *float64 `json:"st_age"`
	Metallicity   *float64 `json:"st_met"`
	RotPeriodDays *float64 `json:"st_rotp"`
	StarCount     *int     `json:"sy_snum"`
	DistancePc    *float64 `json:"sy_dist"`
	RADeg         *float64 `json:"ra"`
	DecDeg        *float64 `json:"dec"`
}

// Planet holds the planetary columns of a pscomppars row.
type Planet struct {
	Name            string   `json:"pl_name"`
	Letter          *string  `json:"pl_letter"`
	RadiusEarth     *float64 `json:"pl_rade"`
	RadiusJup       *float64 `json:"pl_radj"`
	MassEarth       *float64 `json:"pl_bmasse"`
	MassJup         *float64 `json:"pl_bmassj"`
	Density         *float64 `json:"pl_dens"` // g/cm^3
	EqTempK         *float64 `json:"pl_eqt"`
	Insolation      *float64 `json:"pl_insol"` // Earth flux
	OrbitPeriodDays *float64 `json:"pl_orbper"`
	SemiMajorAU     *float64 `json:"pl_orbsmax"`
	Eccentricity    *float64 `json:"pl_orbeccen"`
	InclinationDeg  *float64 `json:"pl_orbincl"`
	DiscYear        *int     `json:"disc_year"`
	DiscMethod      *string  `json:"discoverymethod"`
}

// Record is one pscomppars row: planet columns plus the host-star columns
// repeated on every row.
type Record struct {
	Planet
	Star
}

// System groups the planets of one host star.
type System struct {
	Star    Star
	Planets []Planet
}

// floatOr returns the pointed-to value, or def when the field is absent.
func floatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// has reports whether an optional field is present.
func has(p *float64) bool {
	return p != nil
}
