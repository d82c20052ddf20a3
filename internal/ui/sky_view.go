package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-exosky/internal/astro"
	"github.com/litescript/ls-exosky/internal/catalog"
)

const (
	// Field of view in degrees
	fovAz  = 120.0
	fovAlt = 60.0

	glyphHost        = '✦'
	glyphHostFocused = '◆'

	colorHost        = "#d0c8ff"
	colorHostFocused = "229" // bright gold

	// Background star glyphs by magnitude
	glyphStarBright = '✶'
	glyphStarMedium = '✸'
	glyphStarDim    = '·'
)

// LabelMode controls how host star labels are displayed.
type LabelMode int

const (
	LabelNone LabelMode = iota
	LabelFocused
	LabelAll
)

// hostStar is an exoplanet host with catalog sky coordinates.
type hostStar struct {
	name  string
	eq    astro.Equatorial
	color string
}

// SkyViewModel renders the observer's sky with exoplanet hosts over a
// bright-star background.
type SkyViewModel struct {
	width  int
	height int

	observer astro.Observer
	clock    func() time.Time

	// Camera position (center of view)
	camAz  float64
	camAlt float64

	hosts      []hostStar
	focusIdx   int
	labelMode  LabelMode
	background []astro.BackgroundStar
}

// NewSkyViewModel creates a sky view over the hosts that carry catalog
// coordinates.
func NewSkyViewModel(observer astro.Observer, systems []catalog.System) SkyViewModel {
	var hosts []hostStar
	for _, sys := range systems {
		if sys.Star.RADeg == nil || sys.Star.DecDeg == nil {
			continue
		}
		temp := 5778.0
		if sys.Star.TempK != nil && *sys.Star.TempK > 0 {
			temp = *sys.Star.TempK
		}
		hosts = append(hosts, hostStar{
			name:  sys.Star.HostName,
			eq:    astro.Equatorial{RADeg: *sys.Star.RADeg, DecDeg: *sys.Star.DecDeg},
			color: catalog.ColorForTemp(temp),
		})
	}

	m := SkyViewModel{
		observer:   observer,
		clock:      time.Now,
		camAz:      180,
		camAlt:     45,
		hosts:      hosts,
		labelMode:  LabelFocused,
		background: astro.BrightStars(),
	}
	m.snapToFocus()
	return m
}

// SetSize updates the viewport size.
func (m SkyViewModel) SetSize(width, height int) SkyViewModel {
	m.width = width
	m.height = height
	return m
}

// FocusedHost returns the name of the focused host star, or "" with no hosts.
func (m SkyViewModel) FocusedHost() string {
	if len(m.hosts) == 0 || m.focusIdx >= len(m.hosts) {
		return ""
	}
	return m.hosts[m.focusIdx].name
}

// Update handles messages.
func (m SkyViewModel) Update(msg tea.Msg) (SkyViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "down", "j":
			if len(m.hosts) > 0 {
				m.focusIdx = (m.focusIdx + 1) % len(m.hosts)
				m.snapToFocus()
			}
		case "up", "k":
			if len(m.hosts) > 0 {
				m.focusIdx--
				if m.focusIdx < 0 {
					m.focusIdx = len(m.hosts) - 1
				}
				m.snapToFocus()
			}
		case "l":
			m.labelMode = (m.labelMode + 1) % 3
		}
	}
	return m, nil
}

// snapToFocus centers the camera on the focused host's current position.
func (m *SkyViewModel) snapToFocus() {
	if len(m.hosts) == 0 || m.focusIdx >= len(m.hosts) {
		return
	}
	h := astro.EquatorialToHorizontal(m.hosts[m.focusIdx].eq, m.observer, m.clock())
	m.camAz = h.AzDeg
	m.camAlt = h.AltDeg
	if m.camAlt < 10 {
		m.camAlt = 10
	}
}

// View renders the sky view.
func (m SkyViewModel) View() string {
	if m.width < 20 || m.height < 8 {
		return "Sky view requires a larger terminal"
	}

	viewHeight := m.height - 3

	var b strings.Builder
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderCanvas(m.width, viewHeight))
	return b.String()
}

func (m SkyViewModel) renderStatus() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorHostFocused))

	if len(m.hosts) == 0 {
		return dimStyle.Render("  No hosts with sky coordinates in catalog")
	}

	host := m.hosts[m.focusIdx]
	h := astro.EquatorialToHorizontal(host.eq, m.observer, m.clock())

	visibility := "below horizon"
	switch astro.GetElevationTier(h.AltDeg) {
	case astro.ElevationLow:
		visibility = "low"
	case astro.ElevationMedium:
		visibility = "mid-sky"
	case astro.ElevationHigh:
		visibility = "high"
	}

	line := fmt.Sprintf(">>> %s | Az:%.0f° Alt:%.0f° (%s) | from %s",
		host.name, h.AzDeg, h.AltDeg, visibility, m.observer.Name)
	return "  " + accentStyle.Render(line)
}

func (m SkyViewModel) renderCanvas(width, height int) string {
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

	horizonY := height - 2
	now := m.clock()

	// Background stars first, so hosts draw over them.
	for _, star := range m.background {
		h := astro.EquatorialToHorizontal(
			astro.Equatorial{RADeg: star.RADeg, DecDeg: star.DecDeg}, m.observer, now)
		if h.AltDeg <= 0 {
			continue
		}
		x, y, visible := m.projectToScreen(h.AzDeg, h.AltDeg, width, height)
		if !visible || x < 0 || x >= width || y < 0 || y >= horizonY {
			continue
		}
		glyph, color := starGlyph(star.Mag)
		canvas[y][x] = glyph
		colors[y][x] = color
	}

	// Horizon line and cardinal points.
	for x := 0; x < width; x++ {
		canvas[horizonY][x] = '─'
		colors[horizonY][x] = "60"
	}
	m.drawCardinal(canvas, colors, width, height, 'N', 0)
	m.drawCardinal(canvas, colors, width, height, 'E', 90)
	m.drawCardinal(canvas, colors, width, height, 'S', 180)
	m.drawCardinal(canvas, colors, width, height, 'W', 270)

	// Host stars with labels.
	type hostPos struct {
		x, y    int
		name    string
		focused bool
	}
	var positions []hostPos

	for i, host := range m.hosts {
		h := astro.EquatorialToHorizontal(host.eq, m.observer, now)
		if h.AltDeg <= 0 {
			continue
		}
		x, y, visible := m.projectToScreen(h.AzDeg, h.AltDeg, width, height)
		if !visible || x < 0 || x >= width || y < 0 || y >= horizonY {
			continue
		}

		focused := i == m.focusIdx
		if focused {
			canvas[y][x] = glyphHostFocused
			colors[y][x] = colorHostFocused
		} else {
			canvas[y][x] = glyphHost
			colors[y][x] = lipgloss.Color(host.color)
		}
		positions = append(positions, hostPos{x: x, y: y, name: host.name, focused: focused})
	}

	for _, pos := range positions {
		show := m.labelMode == LabelAll || (m.labelMode == LabelFocused && pos.focused)
		if !show {
			continue
		}
		label := pos.name
		color := lipgloss.Color(colorHost)
		if pos.focused {
			label = "◄ " + label
			color = colorHostFocused
		}
		for i, r := range []rune(label) {
			x := pos.x + 2 + i
			if x < 0 || x >= width || pos.y < 0 || pos.y >= horizonY {
				continue
			}
			canvas[pos.y][x] = r
			colors[pos.y][x] = color
		}
	}

	// Observer marker at bottom center.
	if width > 0 {
		canvas[height-1][width/2] = '▲'
		colors[height-1][width/2] = "46"
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

// starGlyph returns the glyph and color for a background star magnitude.
func starGlyph(mag float64) (rune, lipgloss.Color) {
	switch {
	case mag < 0.5:
		return glyphStarBright, "255"
	case mag < 1.5:
		return glyphStarMedium, "250"
	default:
		return glyphStarDim, "244"
	}
}

func (m SkyViewModel) drawCardinal(canvas [][]rune, colors [][]lipgloss.Color, width, height int, label rune, az float64) {
	x, _, visible := m.projectToScreen(az, 0, width, height)
	if !visible {
		return
	}
	y := height - 2
	if x >= 0 && x < width {
		canvas[y][x] = label
		colors[y][x] = "252"
	}
}

// projectToScreen converts az/alt to screen coordinates relative to the
// camera. The horizon line sits two rows above the bottom.
func (m SkyViewModel) projectToScreen(az, alt float64, width, height int) (int, int, bool) {
	dAz := normalizeAngle(az - m.camAz)
	dAlt := alt - m.camAlt

	if dAz < -fovAz/2 || dAz > fovAz/2 || dAlt < -fovAlt/2 || dAlt > fovAlt/2 {
		return 0, 0, false
	}

	horizonY := height - 2
	x := int((dAz + fovAz/2) / fovAz * float64(width))
	y := int((fovAlt/2 - dAlt) / fovAlt * float64(horizonY))
	return x, y, true
}

// normalizeAngle wraps an angle to the -180..+180 range.
func normalizeAngle(a float64) float64 {
	for a > 180 {
		a -= 360
	}
	for a < -180 {
		a += 360
	}
	return a
}
