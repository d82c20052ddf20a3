package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/litescript/ls-exosky/internal/astro"
	"github.com/litescript/ls-exosky/internal/catalog"
	"github.com/litescript/ls-exosky/internal/ui"
)

func newSkyCmd(opts *options) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "sky",
		Short: "Interactive sky view over the exoplanet catalog",
		Long:  "Projects every cataloged host star onto the observer's sky. Without --list this opens the full-screen interactive view.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			systems, err := loadSystems(cfg)
			if err != nil {
				return err
			}
			logger.Debug("catalog loaded", "systems", len(systems))

			observer := observerFromConfig(cfg)
			if list {
				return writeSkyList(os.Stdout, observer, systems, time.Now())
			}

			model := ui.New(observer, systems, newBinaryCache(cfg))
			p := tea.NewProgram(model, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "print visible hosts instead of opening the TUI")
	return cmd
}

// writeSkyList prints the hosts above the horizon, highest first.
func writeSkyList(w io.Writer, observer astro.Observer, systems []catalog.System, now time.Time) error {
	type visibleHost struct {
		name    string
		planets int
		pos     astro.Horizontal
	}

	var visible []visibleHost
	for _, sys := range systems {
		if sys.Star.RADeg == nil || sys.Star.DecDeg == nil {
			continue
		}
		h := astro.EquatorialToHorizontal(
			astro.Equatorial{RADeg: *sys.Star.RADeg, DecDeg: *sys.Star.DecDeg},
			observer, now)
		if h.AltDeg <= 0 {
			continue
		}
		visible = append(visible, visibleHost{
			name:    sys.Star.HostName,
			planets: len(sys.Planets),
			pos:     h,
		})
	}
	sort.Slice(visible, func(i, j int) bool {
		return visible[i].pos.AltDeg > visible[j].pos.AltDeg
	})

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	highlight := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))

	fmt.Fprintf(w, "Visible hosts from %s at %s (%d above horizon)\n\n",
		observer.Name, now.UTC().Format("2006-01-02 15:04 UTC"), len(visible))
	fmt.Fprintf(w, "%-24s %8s %8s %8s %8s\n", "HOST", "ALT", "AZ", "TIER", "PLANETS")

	for _, v := range visible {
		tier := tierLabel(astro.GetElevationTier(v.pos.AltDeg))
		name := v.name
		if isTTY && astro.GetElevationTier(v.pos.AltDeg) == astro.ElevationHigh {
			name = highlight.Render(name)
		}
		fmt.Fprintf(w, "%-24s %7.1f° %7.1f° %8s %8d\n", name, v.pos.AltDeg, v.pos.AzDeg, tier, v.planets)
	}
	return nil
}

func tierLabel(t astro.ElevationTier) string {
	switch t {
	case astro.ElevationLow:
		return "low"
	case astro.ElevationMedium:
		return "mid"
	case astro.ElevationHigh:
		return "high"
	default:
		return "-"
	}
}
