// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-exosky/internal/astro"
	"github.com/litescript/ls-exosky/internal/binary"
	"github.com/litescript/ls-exosky/internal/catalog"
	"github.com/litescript/ls-exosky/internal/layout"
	"github.com/litescript/ls-exosky/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewSky ViewMode = iota
	ViewSystem
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic sky re-projection.
	TickMsg time.Time

	// AnimTickMsg drives orbit animation frames.
	AnimTickMsg time.Time

	// BinaryLoadedMsg signals the binary-star document finished loading.
	BinaryLoadedMsg struct {
		Err error
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	observer astro.Observer
	systems  []catalog.System
	binaries *binary.Cache

	viewMode  ViewMode
	width     int
	height    int
	ready     bool
	animTick  int
	statusMsg string

	skyView    SkyViewModel
	systemView SystemViewModel
}

// New creates the root UI model. binaries may be nil when no binary-star
// document is configured.
func New(observer astro.Observer, systems []catalog.System, binaries *binary.Cache) Model {
	return Model{
		observer:   observer,
		systems:    systems,
		binaries:   binaries,
		viewMode:   ViewSky,
		skyView:    NewSkyViewModel(observer, systems),
		systemView: NewSystemViewModel(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), animTickCmd(), LoadBinaries(m.binaries))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "s":
			m.viewMode = ViewSky
		case "2", "o":
			m.viewMode = ViewSystem

		case "tab":
			m.viewMode = (m.viewMode + 1) % 2

		case "enter":
			if m.viewMode == ViewSky {
				m = m.openFocusedSystem()
			} else {
				cmds = append(cmds, m.updateActiveView(msg))
			}

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Header takes 4 lines, footer 2.
		contentHeight := msg.Height - 6
		m.skyView = m.skyView.SetSize(msg.Width, contentHeight)
		m.systemView = m.systemView.SetSize(msg.Width, contentHeight)

	case TickMsg:
		cmds = append(cmds, tickCmd())

	case AnimTickMsg:
		cmds = append(cmds, animTickCmd())
		m.animTick++
		m.systemView = m.systemView.Advance(1)

	case BinaryLoadedMsg:
		if msg.Err != nil {
			m.statusMsg = fmt.Sprintf("binary catalog unavailable: %v", msg.Err)
		}

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

// openFocusedSystem generates the layout for the sky view's focused host
// and switches to the system view.
func (m Model) openFocusedSystem() Model {
	return m.OpenSystem(m.skyView.FocusedHost())
}

// OpenSystem generates the layout for a host by name and switches to the
// system view. Unknown hosts leave the model unchanged.
func (m Model) OpenSystem(host string) Model {
	if host == "" {
		return m
	}
	sys, ok := catalog.FindSystem(m.systems, host)
	if !ok {
		return m
	}

	var bin *binary.Entry
	if m.binaries != nil {
		if entry, found := m.binaries.Get(host); found {
			bin = &entry
		}
	}

	bodies := layout.Generate(sys.Star, sys.Planets, bin)
	m.systemView = m.systemView.SetSystem(host, bodies)
	m.viewMode = ViewSystem
	return m
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewSky:
		m.skyView, cmd = m.skyView.Update(msg)
	case ViewSystem:
		m.systemView, cmd = m.systemView.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewSky:
		content = m.skyView.View()
	case ViewSystem:
		content = m.systemView.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render("ls-exosky"))
	b.WriteString(muted.Render(fmt.Sprintf("  Exoplanet Sky Atlas | v%s", version.Version)))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Sky", "[2] System"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var help string
	switch m.viewMode {
	case ViewSky:
		help = dimStyle.Render("j/k: host | enter: open system | l: labels | tab: switch view | q: quit")
	case ViewSystem:
		help = dimStyle.Render("j/k: focus | +/-: zoom | p: orbits | l: labels | tab: switch view | q: quit")
	}

	footer := "  " + help
	if m.statusMsg != "" {
		footer += "\n  " + dimStyle.Render(m.statusMsg)
	}
	return footer
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func animTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}

// LoadBinaries returns a command that warms the binary-star cache in the
// background; the UI stays usable while it runs.
func LoadBinaries(cache *binary.Cache) tea.Cmd {
	if cache == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return BinaryLoadedMsg{Err: cache.EnsureLoaded(ctx)}
	}
}
