package cmd

import (
	"fmt"

	"github.com/theirongolddev/stoki/internal/config"
	"github.com/theirongolddev/stoki/internal/tui"
	"github.com/theirongolddev/stoki/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	themeName := cfg.Appearance.Theme
	if flagTheme != "" {
		themeName = flagTheme
	}
	theme.SetActive(themeName)

	focus, err := resolveFocus(cfg)
	if err != nil {
		return err
	}

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(loadTables(), focus, logger)
	if !config.Exists() && flagFocus == "" && flagTheme == "" {
		app = app.WithFirstRunSetup()
	}

	logger.Info("dashboard started", "focus", focus.Slug(), "theme", theme.Active.Name)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
