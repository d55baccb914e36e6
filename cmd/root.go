// Package cmd implements the stoki CLI commands.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/theirongolddev/stoki/internal/config"
	"github.com/theirongolddev/stoki/internal/dataset"
	"github.com/theirongolddev/stoki/internal/logging"
	"github.com/theirongolddev/stoki/internal/view"

	"github.com/spf13/cobra"
)

var (
	flagFocus string
	flagTheme string
	flagQuiet bool

	logger   = slog.New(slog.NewJSONHandler(io.Discard, nil))
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "stoki",
	Short: "Stoki market entry strategy dashboard",
	Long:  "Explore the market entry strategy for Stoki, an SMME finance app for South Africa:\nmarket sizing, competition, segments, positioning, launch results and the go-to-market plan.",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		setupLogging()
		return nil
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return closeLog()
	},
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFocus, "focus", "f", "", "Analysis focus (e.g. market-overview, positioning)")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// setupLogging opens the configured log file. Failure leaves logging
// discarded; the dashboard still runs.
func setupLogging() {
	cfg := loadConfig()
	l, closeFn, err := logging.Setup(config.LogPath(cfg), cfg.Log.Level)
	logger, closeLog = l, closeFn
	if err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Logging disabled: %v\n", err)
	}
}

// loadConfig returns the config, falling back to defaults when it is corrupt.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
		}
		return config.DefaultConfig()
	}
	return cfg
}

// resolveFocus picks the focus from --focus, then config, then the default.
func resolveFocus(cfg config.Config) (view.Focus, error) {
	if flagFocus != "" {
		return view.ParseFocus(flagFocus)
	}
	if cfg.General.DefaultFocus != "" {
		if f, err := view.ParseFocus(cfg.General.DefaultFocus); err == nil {
			return f, nil
		}
		logger.Warn("ignoring configured default focus", "focus", cfg.General.DefaultFocus)
	}
	return view.MarketOverview, nil
}

// loadTables builds the dashboard tables.
func loadTables() dataset.Tables {
	t := dataset.Generate()
	logger.Debug("tables generated",
		"competitors", len(t.Competitors),
		"features", len(t.Features.Rows),
		"results", len(t.Results))
	return t
}
