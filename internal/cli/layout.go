package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-exosky/internal/binary"
	"github.com/litescript/ls-exosky/internal/catalog"
	"github.com/litescript/ls-exosky/internal/layout"
)

func newLayoutCmd(opts *options) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "layout <host>",
		Short: "Export a generated system layout as JSON",
		Long:  "Runs the deterministic layout generator for one host star and writes the renderable body list as JSON.",
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
			sys, ok := catalog.FindSystem(systems, host)
			if !ok {
				return unknownHostError(host)
			}

			var bin *binary.Entry
			if cache := newBinaryCache(cfg); cache != nil {
				ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
				if err := cache.EnsureLoaded(ctx); err != nil {
					logger.Warn("binary catalog unavailable", "err", err)
				}
				cancel()
				if entry, found := cache.Get(host); found {
					bin = &entry
				}
			}

			bodies := layout.Generate(sys.Star, sys.Planets, bin)
			export := layout.ExportSystem(host, bodies, time.Now())

			if outPath == "" || outPath == "-" {
				return export.WriteJSON(os.Stdout)
			}
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create layout file: %w", err)
			}
			defer f.Close()
			return export.WriteJSON(f)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "-", "output file (- for stdout)")
	return cmd
}

func unknownHostError(host string) error {
	return fmt.Errorf("host %q not in catalog", host)
}
