package tui

import (
	"github.com/theirongolddev/stoki/internal/config"
	"github.com/theirongolddev/stoki/internal/tui/theme"
	"github.com/theirongolddev/stoki/internal/view"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// SetupValues holds the choices made in the setup form.
type SetupValues struct {
	Theme string
	Focus string
}

// SetupValuesFrom seeds the form with the current configuration.
func SetupValuesFrom(cfg config.Config) SetupValues {
	focus := view.MarketOverview
	if f, err := view.ParseFocus(cfg.General.DefaultFocus); err == nil {
		focus = f
	}
	return SetupValues{
		Theme: theme.ByName(cfg.Appearance.Theme).Name,
		Focus: focus.Slug(),
	}
}

// Apply copies the choices into cfg.
func (v SetupValues) Apply(cfg *config.Config) {
	cfg.Appearance.Theme = v.Theme
	cfg.General.DefaultFocus = v.Focus
}

// NewSetupForm builds the theme and default-focus form bound to vals.
func NewSetupForm(vals *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	focusOpts := make([]huh.Option[string], 0, len(view.All()))
	for _, f := range view.All() {
		focusOpts = append(focusOpts, huh.NewOption(f.String(), f.Slug()))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to stoki").
				Description("Market entry strategy dashboard.\nPick a theme and the view to open on."),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
			huh.NewSelect[string]().
				Title("Default focus").
				Options(focusOpts...).
				Value(&vals.Focus),
		),
	).WithShowHelp(true)
}

// WithFirstRunSetup makes the app open on the setup form. Completing it
// saves the config and applies the choices.
func (a App) WithFirstRunSetup() App {
	vals := SetupValuesFrom(loadConfigOrDefault())
	a.setupVals = &vals
	a.setupForm = NewSetupForm(a.setupVals)
	a.needSetup = true
	return a
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.saveSetupConfig()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a *App) saveSetupConfig() {
	cfg := loadConfigOrDefault()
	a.setupVals.Apply(&cfg)

	theme.SetActive(cfg.Appearance.Theme)
	if f, err := view.ParseFocus(cfg.General.DefaultFocus); err == nil {
		a.focus = f
		a.page = view.Render(f, a.tables)
	}
	a.relayout()
	a.body.GotoTop()

	if err := config.Save(cfg); err != nil {
		a.logger.Warn("saving config failed", "error", err)
		return
	}
	a.logger.Info("setup saved", "theme", cfg.Appearance.Theme, "focus", cfg.General.DefaultFocus)
}
