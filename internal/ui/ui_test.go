package ui

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-exosky/internal/astro"
	"github.com/litescript/ls-exosky/internal/catalog"
	"github.com/litescript/ls-exosky/internal/layout"
)

func fp(v float64) *float64 { return &v }

func testObserver() astro.Observer {
	return astro.Observer{LatDeg: 51.48, LonDeg: 0, Name: "Greenwich"}
}

func testSystems() []catalog.System {
	return []catalog.System{
		{
			Star: catalog.Star{
				HostName: "Kepler-22",
				RADeg:    fp(290.82), DecDeg: fp(47.88),
				TempK: fp(5518), RadiusSun: fp(0.979), MassSun: fp(0.97),
			},
			Planets: []catalog.Planet{
				{Name: "Kepler-22 b", RadiusEarth: fp(2.38), SemiMajorAU: fp(0.849), OrbitPeriodDays: fp(289.86)},
			},
		},
		{
			Star: catalog.Star{
				HostName: "TRAPPIST-1",
				RADeg:    fp(346.62), DecDeg: fp(-5.04),
				TempK: fp(2566), RadiusSun: fp(0.119), MassSun: fp(0.089),
			},
			Planets: []catalog.Planet{
				{Name: "TRAPPIST-1 b", RadiusEarth: fp(1.116), SemiMajorAU: fp(0.0115), OrbitPeriodDays: fp(1.51)},
			},
		},
	}
}

func TestSkyViewFocusCycling(t *testing.T) {
	m := NewSkyViewModel(testObserver(), testSystems())
	m.clock = func() time.Time { return time.Date(2026, 3, 1, 22, 0, 0, 0, time.UTC) }

	if got := m.FocusedHost(); got != "Kepler-22" {
		t.Fatalf("initial focus = %q, want Kepler-22", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if got := m.FocusedHost(); got != "TRAPPIST-1" {
		t.Errorf("after j: focus = %q, want TRAPPIST-1", got)
	}

	// Wrap around.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if got := m.FocusedHost(); got != "Kepler-22" {
		t.Errorf("after wrap: focus = %q, want Kepler-22", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if got := m.FocusedHost(); got != "TRAPPIST-1" {
		t.Errorf("after k: focus = %q, want TRAPPIST-1", got)
	}
}

func TestSkyViewSkipsHostsWithoutCoordinates(t *testing.T) {
	systems := []catalog.System{
		{Star: catalog.Star{HostName: "NoCoords"}},
	}
	m := NewSkyViewModel(testObserver(), systems)
	if got := m.FocusedHost(); got != "" {
		t.Errorf("FocusedHost() = %q, want empty", got)
	}
}

func TestSkyViewRenders(t *testing.T) {
	m := NewSkyViewModel(testObserver(), testSystems())
	m.clock = func() time.Time { return time.Date(2026, 3, 1, 22, 0, 0, 0, time.UTC) }
	m = m.SetSize(80, 24)

	out := m.View()
	if out == "" {
		t.Fatal("View() returned empty output")
	}
	if !strings.Contains(out, "─") {
		t.Error("View() should draw the horizon line")
	}
}

func TestSkyViewTooSmall(t *testing.T) {
	m := NewSkyViewModel(testObserver(), testSystems())
	m = m.SetSize(10, 4)
	if !strings.Contains(m.View(), "larger terminal") {
		t.Error("small viewport should produce a size hint")
	}
}

func TestBodyPositionAtCenter(t *testing.T) {
	b := layout.Body{OrbitRadius: 0}
	x, y := bodyPosition(b, 42)
	if x != 0 || y != 0 {
		t.Errorf("unorbiting body at (%v, %v), want origin", x, y)
	}
}

func TestBodyPositionCircular(t *testing.T) {
	b := layout.Body{OrbitRadius: 10, OrbitPeriod: 100}

	x, y := bodyPosition(b, 0)
	if math.Abs(x-10) > 1e-9 || math.Abs(y) > 1e-9 {
		t.Errorf("t=0 position = (%v, %v), want (10, 0)", x, y)
	}

	// Quarter period later the body is a quarter turn around.
	x, y = bodyPosition(b, 25)
	if math.Abs(x) > 1e-9 || math.Abs(y-10) > 1e-9 {
		t.Errorf("t=P/4 position = (%v, %v), want (0, 10)", x, y)
	}

	// Radius stays constant on a circular orbit.
	for _, tt := range []float64{0, 13, 37, 61, 99} {
		x, y = bodyPosition(b, tt)
		r := math.Hypot(x, y)
		if math.Abs(r-10) > 1e-9 {
			t.Errorf("t=%v radius = %v, want 10", tt, r)
		}
	}
}

func TestBodyPositionBinaryOpposition(t *testing.T) {
	// Barycentric pair: same period and eccentricity, periastron arguments
	// 180 degrees apart. They must stay on opposite sides of the center.
	primary := layout.Body{OrbitRadius: 4, OrbitPeriod: 200, OrbitEccentricity: 0.5, ArgPeriastronDeg: 30}
	companion := layout.Body{OrbitRadius: 6, OrbitPeriod: 200, OrbitEccentricity: 0.5, ArgPeriastronDeg: 210}

	for _, tt := range []float64{0, 17, 50, 123, 199} {
		px, py := bodyPosition(primary, tt)
		cx, cy := bodyPosition(companion, tt)

		dot := px*cx + py*cy
		if dot >= 0 {
			t.Errorf("t=%v: bodies on the same side of barycenter (dot=%v)", tt, dot)
		}
		// Anti-parallel: cross product vanishes.
		cross := px*cy - py*cx
		if math.Abs(cross) > 1e-9 {
			t.Errorf("t=%v: positions not collinear with barycenter (cross=%v)", tt, cross)
		}
	}
}

func TestBodyPositionEccentricBounds(t *testing.T) {
	b := layout.Body{OrbitRadius: 10, OrbitPeriod: 100, OrbitEccentricity: 0.6}
	for tt := 0.0; tt < 100; tt += 7 {
		x, y := bodyPosition(b, tt)
		r := math.Hypot(x, y)
		if r < 10*(1-0.6)-1e-9 || r > 10*(1+0.6)+1e-9 {
			t.Errorf("t=%v radius %v outside [4, 16]", tt, r)
		}
	}
}

func TestSystemViewZoomBounds(t *testing.T) {
	m := NewSystemViewModel()
	for i := 0; i < 20; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	}
	if m.zoomLevel != len(zoomLevels)-1 {
		t.Errorf("zoomLevel = %d after max zoom in, want %d", m.zoomLevel, len(zoomLevels)-1)
	}
	for i := 0; i < 20; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	}
	if m.zoomLevel != 0 {
		t.Errorf("zoomLevel = %d after max zoom out, want 0", m.zoomLevel)
	}
}

func TestSystemViewFocusWrap(t *testing.T) {
	sys := testSystems()[0]
	bodies := layout.Generate(sys.Star, sys.Planets, nil)

	m := NewSystemViewModel().SetSystem("Kepler-22", bodies)
	if m.focusIdx != -1 {
		t.Fatalf("fresh system focus = %d, want -1", m.focusIdx)
	}

	for i := 0; i < len(bodies); i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
		if m.focusIdx != i {
			t.Fatalf("after %d presses focus = %d", i+1, m.focusIdx)
		}
	}
	// One more wraps back to the whole system.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if m.focusIdx != -1 {
		t.Errorf("focus after wrap = %d, want -1", m.focusIdx)
	}
}

func TestSystemViewRenders(t *testing.T) {
	sys := testSystems()[0]
	bodies := layout.Generate(sys.Star, sys.Planets, nil)

	m := NewSystemViewModel().SetSystem("Kepler-22", bodies).SetSize(80, 24)
	out := m.View()
	if out == "" {
		t.Fatal("View() returned empty output")
	}
	if !strings.Contains(out, "Kepler-22") {
		t.Error("HUD should name the host")
	}
	if !strings.Contains(out, "☉") {
		t.Error("canvas should draw the host star glyph")
	}
}

func TestSystemViewEmptyPrompt(t *testing.T) {
	m := NewSystemViewModel().SetSize(80, 24)
	if !strings.Contains(m.View(), "No system selected") {
		t.Error("empty system view should prompt for a selection")
	}
}

func TestSystemViewAdvance(t *testing.T) {
	m := NewSystemViewModel()
	m = m.Advance(1).Advance(1).Advance(0.5)
	if m.t != 2.5 {
		t.Errorf("t = %v after advances, want 2.5", m.t)
	}
}

func TestRootModelViewSwitching(t *testing.T) {
	m := New(testObserver(), testSystems(), nil)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m = updated.(Model)
	if !m.ready {
		t.Fatal("model not ready after WindowSizeMsg")
	}

	if m.viewMode != ViewSky {
		t.Fatalf("initial view = %v, want ViewSky", m.viewMode)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	if m.viewMode != ViewSystem {
		t.Errorf("view after tab = %v, want ViewSystem", m.viewMode)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	if m.viewMode != ViewSky {
		t.Errorf("view after second tab = %v, want ViewSky", m.viewMode)
	}
}

func TestRootModelOpensSystemOnEnter(t *testing.T) {
	m := New(testObserver(), testSystems(), nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m = updated.(Model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.viewMode != ViewSystem {
		t.Fatalf("view after enter = %v, want ViewSystem", m.viewMode)
	}
	if m.systemView.host != "Kepler-22" {
		t.Errorf("opened host = %q, want Kepler-22", m.systemView.host)
	}
	if len(m.systemView.bodies) != 2 {
		t.Errorf("generated %d bodies, want 2 (star + planet)", len(m.systemView.bodies))
	}
}

func TestRootModelQuit(t *testing.T) {
	m := New(testObserver(), testSystems(), nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("q produced %T, want tea.QuitMsg", msg)
	}
}
