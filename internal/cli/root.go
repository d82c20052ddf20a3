// Package cli implements the ls-exosky command-line interface.
//
// The main commands are:
//   - sky: interactive sky view over the exoplanet catalog
//   - system: open the animated view of one star system
//   - rings: print the ring feasibility table
//   - layout: export a generated system layout as JSON
//
// All commands support --verbose (-v) for debug-level logging and --config
// for a YAML configuration file.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/litescript/ls-exosky/internal/astro"
	"github.com/litescript/ls-exosky/internal/binary"
	"github.com/litescript/ls-exosky/internal/catalog"
	"github.com/litescript/ls-exosky/internal/config"
	"github.com/litescript/ls-exosky/internal/logging"
	"github.com/litescript/ls-exosky/internal/version"
)

// ctxKey is the type for context keys used in this package.
type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *charmlog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, defaulting when absent so
// commands always have a valid logger.
func loggerFromContext(ctx context.Context) *charmlog.Logger {
	if l, ok := ctx.Value(loggerKey).(*charmlog.Logger); ok {
		return l
	}
	return charmlog.Default()
}

// Execute runs the ls-exosky CLI and returns an error if any command fails.
func Execute() error {
	var verbose bool
	opts := &options{}

	root := &cobra.Command{
		Use:          "ls-exosky",
		Short:        "ls-exosky visualizes exoplanet systems in the terminal",
		Long:         `ls-exosky projects the NASA Exoplanet Archive onto your local sky and turns each star system into an animated orbital layout.`,
		Version:      version.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), logging.New(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to YAML config file")
	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "path to pscomppars JSON catalog (overrides config)")
	root.PersistentFlags().Float64Var(&opts.lat, "lat", 0, "observer latitude override, degrees north")
	root.PersistentFlags().Float64Var(&opts.lon, "lon", 0, "observer longitude override, degrees east")
	root.PersistentFlags().StringVar(&opts.binaries, "binaries", "", "binary-star document path or URL (overrides config)")
	opts.root = root

	root.AddCommand(newSkyCmd(opts))
	root.AddCommand(newSystemCmd(opts))
	root.AddCommand(newRingsCmd(opts))
	root.AddCommand(newLayoutCmd(opts))

	return root.ExecuteContext(context.Background())
}

// options carries the shared persistent flag values into subcommands.
type options struct {
	root *cobra.Command

	configPath  string
	catalogPath string
	lat         float64
	lon         float64
	binaries    string
}

// loadConfig resolves the effective configuration. Precedence is defaults,
// then the config file, then explicit flags.
func (o *options) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if o.catalogPath != "" {
		cfg.CatalogPath = o.catalogPath
	}
	if o.root != nil {
		flags := o.root.PersistentFlags()
		if flags.Changed("lat") {
			cfg.Observer.Latitude = o.lat
		}
		if flags.Changed("lon") {
			cfg.Observer.Longitude = o.lon
		}
	}
	if o.binaries != "" {
		if strings.HasPrefix(o.binaries, "http://") || strings.HasPrefix(o.binaries, "https://") {
			cfg.BinaryURL = o.binaries
			cfg.BinaryPath = ""
		} else {
			cfg.BinaryPath = o.binaries
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadSystems loads and groups the catalog named by the configuration.
func loadSystems(cfg *config.Config) ([]catalog.System, error) {
	if cfg.CatalogPath == "" {
		return nil, fmt.Errorf("no catalog configured: pass --catalog or set catalog_path")
	}
	records, err := catalog.LoadRecords(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	return catalog.Systems(records), nil
}

// newBinaryCache builds the binary-star cache from the configuration.
// Returns nil when no source is configured.
func newBinaryCache(cfg *config.Config) *binary.Cache {
	if cfg.BinaryPath != "" {
		path := cfg.BinaryPath
		return binary.NewCache(func(ctx context.Context) (binary.Document, error) {
			return binary.LoadFile(path)
		})
	}
	if cfg.BinaryURL != "" {
		fetcher := binary.NewFetcher(binary.WithURL(cfg.BinaryURL))
		return binary.NewCache(fetcher.Fetch)
	}
	return nil
}

func observerFromConfig(cfg *config.Config) astro.Observer {
	return astro.Observer{
		LatDeg: cfg.Observer.Latitude,
		LonDeg: cfg.Observer.Longitude,
		Name:   cfg.Observer.Name,
	}
}
