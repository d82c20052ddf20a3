package cli

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/litescript/ls-exosky/internal/catalog"
	"github.com/litescript/ls-exosky/internal/rings"
)

func newRingsCmd(opts *options) *cobra.Command {
	var (
		host    string
		minProb float64
	)

	cmd := &cobra.Command{
		Use:   "rings",
		Short: "Print the ring feasibility table",
		Long:  "Scores every planet's chance of carrying a visible ring system, from size, Hill/Roche geometry, temperature and system age.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			systems, err := loadSystems(cfg)
			if err != nil {
				return err
			}

			if host != "" {
				sys, ok := catalog.FindSystem(systems, host)
				if !ok {
					return unknownHostError(host)
				}
				systems = []catalog.System{sys}
			}

			return writeRingsTable(os.Stdout, systems, minProb)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "limit to one host star")
	cmd.Flags().Float64Var(&minProb, "min", 0, "only show planets at or above this probability")
	return cmd
}

// writeRingsTable prints ring probabilities, most promising first.
func writeRingsTable(w io.Writer, systems []catalog.System, minProb float64) error {
	type row struct {
		planet string
		ptype  catalog.PlanetType
		prob   float64
		ringed bool
	}

	var rows []row
	for _, sys := range systems {
		for _, p := range sys.Planets {
			prob := rings.Probability(p, sys.Star)
			if prob < minProb {
				continue
			}
			rows = append(rows, row{
				planet: p.Name,
				ptype:  p.Type(),
				prob:   prob,
				ringed: rings.HasRings(p, sys.Star),
			})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].prob > rows[j].prob })

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	strong := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))

	fmt.Fprintf(w, "%-28s %-14s %6s %7s\n", "PLANET", "TYPE", "PROB", "RINGS")
	for _, r := range rows {
		mark := ""
		if r.ringed {
			mark = "yes"
		}
		line := fmt.Sprintf("%-28s %-14s %5.0f%% %7s", r.planet, r.ptype, r.prob*100, mark)
		if isTTY && r.prob >= 0.7 {
			line = strong.Render(line)
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "\n%d planets scored\n", len(rows))
	return nil
}
