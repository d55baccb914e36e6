package cmd

import (
	"fmt"

	"github.com/theirongolddev/stoki/internal/config"
	"github.com/theirongolddev/stoki/internal/tui"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Choose the color theme and default focus",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	vals := tui.SetupValuesFrom(cfg)

	if err := tui.NewSetupForm(&vals).Run(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	vals.Apply(&cfg)

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	logger.Info("config saved", "path", config.ConfigPath(), "theme", cfg.Appearance.Theme, "focus", cfg.General.DefaultFocus)

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `stoki setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
