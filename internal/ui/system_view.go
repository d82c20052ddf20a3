package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-exosky/internal/layout"
	"github.com/litescript/ls-exosky/internal/orbit"
)

// cellAspect corrects for terminal cells being roughly twice as tall as
// they are wide.
const cellAspect = 2.0

// Discrete zoom levels for clean stepping.
var zoomLevels = []float64{0.25, 0.5, 0.75, 1.0, 1.5, 2.0, 3.0, 5.0}

// SystemViewModel renders a top-down animated view of a generated system.
type SystemViewModel struct {
	width  int
	height int

	host   string
	bodies []layout.Body

	t          float64 // scene time, advanced by animation ticks
	zoomLevel  int
	focusIdx   int // index into bodies; -1 = whole system
	labelMode  LabelMode
	showOrbits bool
}

// NewSystemViewModel creates an empty system view.
func NewSystemViewModel() SystemViewModel {
	return SystemViewModel{
		focusIdx:   -1,
		zoomLevel:  3, // 1.0x
		labelMode:  LabelFocused,
		showOrbits: true,
	}
}

// SetSize updates the viewport size.
func (m SystemViewModel) SetSize(width, height int) SystemViewModel {
	m.width = width
	m.height = height
	return m
}

// SetSystem installs a freshly generated system and resets view state.
func (m SystemViewModel) SetSystem(host string, bodies []layout.Body) SystemViewModel {
	m.host = host
	m.bodies = bodies
	m.focusIdx = -1
	m.t = 0
	return m
}

// Advance moves scene time forward by dt animation ticks.
func (m SystemViewModel) Advance(dt float64) SystemViewModel {
	m.t += dt
	return m
}

func (m SystemViewModel) zoom() float64 {
	if m.zoomLevel < 0 || m.zoomLevel >= len(zoomLevels) {
		return 1.0
	}
	return zoomLevels[m.zoomLevel]
}

// Update handles input messages.
func (m SystemViewModel) Update(msg tea.Msg) (SystemViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "down", "j":
			if len(m.bodies) > 0 {
				m.focusIdx++
				if m.focusIdx >= len(m.bodies) {
					m.focusIdx = -1
				}
			}
		case "up", "k":
			if len(m.bodies) > 0 {
				m.focusIdx--
				if m.focusIdx < -1 {
					m.focusIdx = len(m.bodies) - 1
				}
			}
		case "+", "=":
			if m.zoomLevel < len(zoomLevels)-1 {
				m.zoomLevel++
			}
		case "-":
			if m.zoomLevel > 0 {
				m.zoomLevel--
			}
		case "0":
			m.zoomLevel = 3
		case "p":
			m.showOrbits = !m.showOrbits
		case "l":
			m.labelMode = (m.labelMode + 1) % 3
		}
	}
	return m, nil
}

// bodyElements maps a body's compressed orbit onto orbital elements. The
// geometry is unit-agnostic, so scene units and the animation period slot
// straight in.
func bodyElements(b layout.Body) orbit.Elements {
	return orbit.Elements{
		SemiMajorAU:      b.OrbitRadius,
		Eccentricity:     b.OrbitEccentricity,
		InclinationDeg:   b.OrbitTiltDeg,
		PeriodDays:       b.OrbitPeriod,
		ArgPeriastronDeg: b.ArgPeriastronDeg,
	}
}

// bodyPosition returns the scene-plane position of a body at scene time t.
// Bodies with no orbit sit at the barycenter. The top-down projection keeps
// X and the inclination-foreshortened Y.
func bodyPosition(b layout.Body, t float64) (float64, float64) {
	if b.OrbitRadius <= 0 || b.OrbitPeriod <= 0 {
		return 0, 0
	}
	pos := orbit.Position(bodyElements(b), t)
	return pos.X, pos.Y
}

// View renders the system view.
func (m SystemViewModel) View() string {
	if m.width < 40 || m.height < 8 {
		return "System view requires a larger terminal"
	}
	if len(m.bodies) == 0 {
		dim := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
		return dim.Render("  No system selected. Pick a host in the Sky view and press enter.")
	}

	viewHeight := m.height - 3

	var b strings.Builder
	b.WriteString(m.renderHUD())
	b.WriteString("\n")
	b.WriteString(m.renderCanvas(m.width, viewHeight))
	return b.String()
}

func (m SystemViewModel) renderHUD() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))

	head := titleStyle.Render(m.host) + dimStyle.Render(fmt.Sprintf("  %.2gx", m.zoom()))

	if m.focusIdx < 0 || m.focusIdx >= len(m.bodies) {
		return "  " + head
	}

	body := m.bodies[m.focusIdx]
	info := fmt.Sprintf(">>> %s | %s | %.0fK", body.ID, body.Type, body.TempK)
	if body.Kind == layout.KindPlanet {
		if body.HasRings {
			info += " | rings"
		}
		if body.TidallyLocked {
			info += " | tidally locked"
		} else {
			info += fmt.Sprintf(" | tilt %.1f°", body.AxialTiltDeg)
		}
	}
	return "  " + head + "  " + accentStyle.Render(info)
}

func (m SystemViewModel) renderCanvas(width, height int) string {
	canvas := make([][]rune, height)
	colors := make([][]lipgloss.Color, height)
	for y := 0; y < height; y++ {
		canvas[y] = make([]rune, width)
		colors[y] = make([]lipgloss.Color, width)
		for x := 0; x < width; x++ {
			canvas[y][x] = ' '
			colors[y][x] = "236"
		}
	}

	// Fit the outermost orbit into the viewport at 1.0x zoom.
	maxR := 1.0
	for _, body := range m.bodies {
		if r := body.OrbitRadius * (1 + body.OrbitEccentricity); r > maxR {
			maxR = r
		}
	}
	unit := m.zoom() * math.Min(float64(width)/(2*maxR*cellAspect), float64(height)/(2*maxR)) * 0.92

	toScreen := func(px, py float64) (int, int) {
		x := width/2 + int(math.Round(px*unit*cellAspect))
		y := height/2 + int(math.Round(py*unit))
		return x, y
	}

	plot := func(x, y int, r rune, c lipgloss.Color) {
		if x >= 0 && x < width && y >= 0 && y < height {
			canvas[y][x] = r
			colors[y][x] = c
		}
	}

	// Orbit paths under everything else.
	if m.showOrbits {
		for _, body := range m.bodies {
			if body.OrbitRadius <= 0 {
				continue
			}
			steps := 96
			for s := 0; s < steps; s++ {
				frac := body.OrbitPeriod * float64(s) / float64(steps)
				px, py := bodyPosition(body, frac)
				x, y := toScreen(px, py)
				if x >= 0 && x < width && y >= 0 && y < height && canvas[y][x] == ' ' {
					plot(x, y, '·', "238")
				}
			}
		}
	}

	type bodyAt struct {
		x, y    int
		id      string
		focused bool
	}
	var positions []bodyAt

	for i, body := range m.bodies {
		px, py := bodyPosition(body, m.t)
		x, y := toScreen(px, py)
		focused := i == m.focusIdx

		glyph := bodyGlyph(body)
		color := lipgloss.Color(body.Color)
		if focused {
			color = colorHostFocused
		}

		if body.HasRings {
			plot(x-1, y, '(', color)
			plot(x+1, y, ')', color)
		}
		plot(x, y, glyph, color)
		positions = append(positions, bodyAt{x: x, y: y, id: body.ID, focused: focused})
	}

	for _, pos := range positions {
		show := m.labelMode == LabelAll || (m.labelMode == LabelFocused && pos.focused)
		if !show {
			continue
		}
		color := lipgloss.Color(colorHost)
		label := pos.id
		if pos.focused {
			label = "◄ " + label
			color = colorHostFocused
		}
		for i, r := range []rune(label) {
			x := pos.x + 2 + i
			if x >= 0 && x < width && pos.y >= 0 && pos.y < height {
				canvas[pos.y][x] = r
				colors[pos.y][x] = color
			}
		}
	}

	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			style := lipgloss.NewStyle().Foreground(colors[y][x])
			b.WriteString(style.Render(string(canvas[y][x])))
		}
		if y < height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// bodyGlyph picks a glyph by kind and visual size.
func bodyGlyph(b layout.Body) rune {
	if b.Kind == layout.KindStar {
		return '☉'
	}
	switch {
	case b.Diameter < 0.5:
		return '·'
	case b.Diameter < 1.2:
		return 'o'
	default:
		return 'O'
	}
}
