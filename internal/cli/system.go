package cli

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/litescript/ls-exosky/internal/catalog"
	"github.com/litescript/ls-exosky/internal/ui"
)

func newSystemCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "system <host>",
		Short: "Open the animated view of one star system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			host := args[0]

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			systems, err := loadSystems(cfg)
			if err != nil {
				return err
			}
			if _, ok := catalog.FindSystem(systems, host); !ok {
				return unknownHostError(host)
			}

			// Load binary data up front so the opened system already has
			// its companion; a failed load degrades to the estimated one.
			cache := newBinaryCache(cfg)
			if cache != nil {
				ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
				if err := cache.EnsureLoaded(ctx); err != nil {
					logger.Warn("binary catalog unavailable", "err", err)
				}
				cancel()
			}

			model := ui.New(observerFromConfig(cfg), systems, cache).OpenSystem(host)
			p := tea.NewProgram(model, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
	return cmd
}
