package layout

import (
	"math"
	"reflect"
	"testing"

	"github.com/litescript/ls-exosky/internal/binary"
	"github.com/litescript/ls-exosky/internal/catalog"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }
func sp(v string) *string   { return &v }

func sunLike(host string) catalog.Star {
	return catalog.Star{
		HostName:  host,
		RadiusSun: fp(1),
		MassSun:   fp(1),
		TempK:     fp(5778),
		StarCount: ip(1),
	}
}

func TestGenerate_EarthAnalogue(t *testing.T) {
	star := sunLike("Sol-like")
	earth := catalog.Planet{
		Name:            "Sol-like b",
		RadiusEarth:     fp(1),
		SemiMajorAU:     fp(1),
		OrbitPeriodDays: fp(365.25),
		Eccentricity:    fp(0.017),
	}

	bodies := Generate(star, []catalog.Planet{earth}, nil)
	if len(bodies) != 2 {
		t.Fatalf("got %d bodies, want 2", len(bodies))
	}

	p := bodies[1]
	if p.Kind != KindPlanet {
		t.Fatalf("second body is %v, want planet", p.Kind)
	}
	if p.OrbitEccentricity != 0.017 {
		t.Errorf("eccentricity = %v, want 0.017", p.OrbitEccentricity)
	}
	if p.OrbitRadius <= 0 {
		t.Errorf("orbit radius = %v, want > 0", p.OrbitRadius)
	}
	if p.TidallyLocked {
		t.Error("planet at 1 AU must not be tidally locked")
	}
	if p.RotationSpeed == 0 {
		t.Error("unlocked planet should rotate")
	}
}

func TestGenerate_CloseInPlanet(t *testing.T) {
	star := sunLike("Hot host")
	lava := catalog.Planet{
		Name:            "Hot host b",
		RadiusEarth:     fp(1.4),
		SemiMajorAU:     fp(0.02),
		OrbitPeriodDays: fp(1.1),
	}

	bodies := Generate(star, []catalog.Planet{lava}, nil)
	p := bodies[1]

	if !p.TidallyLocked {
		t.Error("planet at 0.02 AU should be tidally locked")
	}
	if p.RotationSpeed != 0 {
		t.Errorf("tidally locked planet rotation = %v, want exactly 0", p.RotationSpeed)
	}
	if p.AxialTiltDeg >= 23.4 {
		t.Errorf("close-in planet axial tilt = %v, want < 23.4", p.AxialTiltDeg)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	star := sunLike("Twice")
	star.StarCount = ip(2)
	planets := []catalog.Planet{
		{Name: "Twice b", RadiusEarth: fp(2.2), SemiMajorAU: fp(0.08), OrbitPeriodDays: fp(9)},
		{Name: "Twice c", RadiusEarth: fp(11), SemiMajorAU: fp(3.4), OrbitPeriodDays: fp(2100), Eccentricity: fp(0.21)},
	}

	first := Generate(star, planets, nil)
	second := Generate(star, planets, nil)
	if !reflect.DeepEqual(first, second) {
		t.Error("Generate is not deterministic for identical input")
	}
}

func TestGenerate_SingleStarAtCenter(t *testing.T) {
	bodies := Generate(sunLike("Lone"), nil, nil)
	if len(bodies) != 1 {
		t.Fatalf("got %d bodies, want 1", len(bodies))
	}
	s := bodies[0]
	if s.OrbitRadius != 0 {
		t.Errorf("single star orbit radius = %v, want 0", s.OrbitRadius)
	}
	if !s.PrimaryStar || s.CompanionStar {
		t.Error("single star must be the primary")
	}
	if s.Diameter <= 0 {
		t.Errorf("star diameter = %v, want > 0", s.Diameter)
	}
}

func TestGenerate_BinaryFromRecord(t *testing.T) {
	star := sunLike("Alpha Pair")
	bin := &binary.Entry{
		Primary:   binary.Component{MassSun: 1.1, RadiusSun: 1.2, TempK: 5900, LumSun: 1.5},
		Companion: binary.Component{MassSun: 0.9, RadiusSun: 0.85, TempK: 5200, LumSun: 0.5},
		Orbit: binary.Orbit{
			SemiMajorAU:  23.4,
			PeriodDays:   29200,
			Eccentricity: 0.52,
		},
	}

	bodies := Generate(star, nil, bin)
	if len(bodies) != 2 {
		t.Fatalf("got %d bodies, want 2", len(bodies))
	}

	a, b := bodies[0], bodies[1]
	if !a.PrimaryStar || !b.CompanionStar {
		t.Fatal("expected primary then companion")
	}

	// The heavier star sits closer to the barycenter.
	if a.OrbitRadius >= b.OrbitRadius {
		t.Errorf("primary radius %v should be smaller than companion radius %v",
			a.OrbitRadius, b.OrbitRadius)
	}

	// Barycentric radii are inversely proportional to mass.
	wantRatio := bin.Companion.MassSun / bin.Primary.MassSun
	gotRatio := a.OrbitRadius / b.OrbitRadius
	if math.Abs(gotRatio-wantRatio) > 1e-9 {
		t.Errorf("radius ratio = %v, want %v", gotRatio, wantRatio)
	}

	// At closest approach the disks must not overlap.
	closest := (a.OrbitRadius + b.OrbitRadius) * (1 - a.OrbitEccentricity)
	if closest < a.Diameter/2+b.Diameter/2 {
		t.Errorf("stars overlap at periastron: separation %v, disks %v",
			closest, a.Diameter/2+b.Diameter/2)
	}

	// Companion is phased to the opposite side of the barycenter.
	if math.Abs(b.ArgPeriastronDeg-a.ArgPeriastronDeg-180) > 1e-9 {
		t.Errorf("companion phase offset = %v, want 180", b.ArgPeriastronDeg-a.ArgPeriastronDeg)
	}
}

func TestGenerate_BinaryOverlapConstraint(t *testing.T) {
	// A tight true orbit would render the disks inside each other; the
	// separation must be pushed out to the computed minimum instead.
	star := sunLike("Tight Pair")
	bin := &binary.Entry{
		Primary:   binary.Component{MassSun: 1, RadiusSun: 3, TempK: 6000},
		Companion: binary.Component{MassSun: 1, RadiusSun: 3, TempK: 5500},
		Orbit:     binary.Orbit{SemiMajorAU: 0.01, PeriodDays: 3, Eccentricity: 0.4},
	}

	bodies := Generate(star, nil, bin)
	a, b := bodies[0], bodies[1]
	closest := (a.OrbitRadius + b.OrbitRadius) * (1 - a.OrbitEccentricity)
	if closest < a.Diameter/2+b.Diameter/2 {
		t.Errorf("tight binary still overlaps: separation %v, disks %v",
			closest, a.Diameter/2+b.Diameter/2)
	}
}

func TestGenerate_EstimatedCompanion(t *testing.T) {
	star := sunLike("Double")
	star.StarCount = ip(2)

	bodies := Generate(star, nil, nil)
	if len(bodies) != 2 {
		t.Fatalf("got %d bodies, want 2", len(bodies))
	}

	a, b := bodies[0], bodies[1]
	if math.Abs(b.Diameter-0.7*a.Diameter) > 1e-9 {
		t.Errorf("estimated companion diameter = %v, want 0.7 of %v", b.Diameter, a.Diameter)
	}
	if math.Abs(b.TempK-0.85*a.TempK) > 1e-9 {
		t.Errorf("estimated companion temp = %v, want 0.85 of %v", b.TempK, a.TempK)
	}
	// Spectral class re-derived from the cooler temperature.
	if b.Type != catalog.SpectralClassFromTemp(b.TempK) {
		t.Errorf("companion class = %q, want %q", b.Type, catalog.SpectralClassFromTemp(b.TempK))
	}
}

func TestGenerate_PlanetsSortedAndSpaced(t *testing.T) {
	star := sunLike("Crowded")
	planets := []catalog.Planet{
		{Name: "Crowded d", RadiusEarth: fp(1.1), SemiMajorAU: fp(0.3), OrbitPeriodDays: fp(60)},
		{Name: "Crowded b", RadiusEarth: fp(1.4), SemiMajorAU: fp(0.01), OrbitPeriodDays: fp(1)},
		{Name: "Crowded c", RadiusEarth: fp(2.0), SemiMajorAU: fp(0.011), OrbitPeriodDays: fp(1.2)},
		{Name: "Crowded e", RadiusEarth: fp(9)},
	}

	bodies := Generate(star, planets, nil)
	got := bodies[1:]
	wantOrder := []string{"Crowded b", "Crowded c", "Crowded d", "Crowded e"}
	prev := 0.0
	for i, b := range got {
		if b.ID != wantOrder[i] {
			t.Errorf("planet %d = %q, want %q", i, b.ID, wantOrder[i])
		}
		if b.OrbitRadius <= prev {
			t.Errorf("orbit radius %v at index %d does not clear previous %v",
				b.OrbitRadius, i, prev)
		}
		prev = b.OrbitRadius
	}
}

func TestGenerate_UnknownOrbitClearsWideNeighbor(t *testing.T) {
	// A planet with no semi-major axis sorts last and must still land
	// outside the widest scaled orbit, not on the bare star clearance.
	star := sunLike("Spread")
	planets := []catalog.Planet{
		{Name: "Spread b", RadiusEarth: fp(11), SemiMajorAU: fp(30), OrbitPeriodDays: fp(60000)},
		{Name: "Spread c", RadiusEarth: fp(1.8)},
	}

	bodies := Generate(star, planets, nil)
	inner, outer := bodies[1], bodies[2]
	if inner.ID != "Spread b" || outer.ID != "Spread c" {
		t.Fatalf("order = %q, %q", inner.ID, outer.ID)
	}
	if outer.OrbitRadius < inner.OrbitRadius+planetSpacing {
		t.Errorf("outer radius %v does not clear inner radius %v",
			outer.OrbitRadius, inner.OrbitRadius)
	}
}

func TestGenerate_DiameterClamped(t *testing.T) {
	star := sunLike("Extremes")
	planets := []catalog.Planet{
		{Name: "Extremes b", RadiusEarth: fp(0.3), SemiMajorAU: fp(0.5), OrbitPeriodDays: fp(100)},
		{Name: "Extremes c", RadiusJup: fp(9.9), SemiMajorAU: fp(2), OrbitPeriodDays: fp(900)},
	}

	bodies := Generate(star, planets, nil)
	for _, b := range bodies[1:] {
		if b.Diameter < minPlanetDiameter || b.Diameter > maxPlanetDiameter {
			t.Errorf("%s diameter = %v, outside [%v, %v]",
				b.ID, b.Diameter, minPlanetDiameter, maxPlanetDiameter)
		}
	}
}

func TestGenerate_AnimationPeriod(t *testing.T) {
	star := sunLike("Timed")
	p := catalog.Planet{
		Name:            "Timed b",
		RadiusEarth:     fp(1),
		SemiMajorAU:     fp(1),
		OrbitPeriodDays: fp(365.25),
	}

	bodies := Generate(star, []catalog.Planet{p}, nil)
	want := 200 + 5*math.Sqrt(365.25)
	if math.Abs(bodies[1].OrbitPeriod-want) > 1e-9 {
		t.Errorf("animation period = %v, want %v", bodies[1].OrbitPeriod, want)
	}
}

func TestGenerate_AxialTiltBounds(t *testing.T) {
	star := sunLike("Tilted")
	planets := []catalog.Planet{
		{Name: "Tilted b", RadiusEarth: fp(1), SemiMajorAU: fp(1.2), OrbitPeriodDays: fp(500), Eccentricity: fp(0.6)},
		{Name: "Tilted c", RadiusEarth: fp(12), SemiMajorAU: fp(0.04), OrbitPeriodDays: fp(3)},
		{Name: "Tilted d", RadiusEarth: fp(13), SemiMajorAU: fp(5), OrbitPeriodDays: fp(4000)},
	}

	bodies := Generate(star, planets, nil)
	for _, b := range bodies[1:] {
		if b.AxialTiltDeg < 0 || b.AxialTiltDeg > maxAxialTilt {
			t.Errorf("%s axial tilt = %v, outside [0, %v]", b.ID, b.AxialTiltDeg, maxAxialTilt)
		}
	}
}

func TestGenerate_MissingFieldsStillRenderable(t *testing.T) {
	// A record with nothing but a name must still produce a bounded,
	// positive body: missing fields degrade, they never error.
	star := catalog.Star{HostName: "Bare"}
	planets := []catalog.Planet{{Name: "Bare b"}}

	bodies := Generate(star, planets, nil)
	if len(bodies) != 2 {
		t.Fatalf("got %d bodies, want 2", len(bodies))
	}
	for _, b := range bodies {
		if b.Diameter <= 0 {
			t.Errorf("%s diameter = %v, want > 0", b.ID, b.Diameter)
		}
		if b.OrbitRadius < 0 {
			t.Errorf("%s orbit radius = %v, want >= 0", b.ID, b.OrbitRadius)
		}
		if math.IsNaN(b.AxialTiltDeg) || math.IsNaN(b.RotationSpeed) {
			t.Errorf("%s has NaN derived values", b.ID)
		}
	}
}

func TestSpectralClassPrefersCatalog(t *testing.T) {
	star := sunLike("Typed")
	star.SpectralType = sp("G2 V")
	bodies := Generate(star, nil, nil)
	if bodies[0].Type != "G2 V" {
		t.Errorf("star type = %q, want catalog spectral type", bodies[0].Type)
	}
}
