package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"texplore/internal/config"
)

func formTheme() *huh.Theme {
	green := lipgloss.Color("#4d9375")
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Blurred.Title = theme.Blurred.Title.Width(18).Foreground(lipgloss.Color("7"))
	theme.Focused.Title = theme.Focused.Title.Width(18).Foreground(green).Bold(true)
	theme.Blurred.SelectedOption = theme.Blurred.SelectedOption.Foreground(lipgloss.Color("243"))
	theme.Focused.SelectedOption = lipgloss.NewStyle().Foreground(green)
	theme.Focused.Base.BorderForeground(green)
	return theme
}

func validateDuration(s string) error {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	if d <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

// configFields binds editable copies of c; apply writes them back.
type configFields struct {
	pager, trash, refresh, doubleClick, icons string
	watch                                     bool
}

func newConfigFields(c config.Config) *configFields {
	return &configFields{
		pager:       c.Pager.Command,
		trash:       c.Trash.Command,
		refresh:     c.RefreshInterval.String(),
		doubleClick: c.DoubleClick.String(),
		icons:       c.Icons,
		watch:       c.Watch,
	}
}

func (f *configFields) apply(c *config.Config) error {
	refresh, err := time.ParseDuration(strings.TrimSpace(f.refresh))
	if err != nil {
		return fmt.Errorf("refresh interval: %w", err)
	}
	dc, err := time.ParseDuration(strings.TrimSpace(f.doubleClick))
	if err != nil {
		return fmt.Errorf("double click: %w", err)
	}
	c.Pager.Command = strings.TrimSpace(f.pager)
	c.Trash.Command = strings.TrimSpace(f.trash)
	c.RefreshInterval = refresh
	c.DoubleClick = dc
	c.Icons = f.icons
	c.Watch = f.watch
	return nil
}

func (f *configFields) form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("texplore").Description("Settings are written to config.yaml"),
			huh.NewInput().Title("Pager").Description("bat-compatible pretty-printer").Value(&f.pager),
			huh.NewInput().Title("Trash command").Description("empty auto-detects trash, trash-put or gio trash").Value(&f.trash),
			huh.NewSelect[string]().
				Title("Icons").
				Options(huh.NewOption("Nerd Font", config.IconsNerd), huh.NewOption("ASCII", config.IconsASCII)).
				Value(&f.icons),
		),
		huh.NewGroup(
			huh.NewInput().Title("Refresh interval").Validate(validateDuration).Value(&f.refresh),
			huh.NewInput().Title("Double click").Validate(validateDuration).Value(&f.doubleClick),
			huh.NewConfirm().Title("Watch files").Description("resync as soon as files change").Value(&f.watch),
		),
	).WithTheme(formTheme()).WithWidth(60)
}

// runConfigForm edits c in place; canceling leaves it untouched.
func runConfigForm(c *config.Config) error {
	f := newConfigFields(*c)
	if err := f.form().Run(); err != nil {
		return err
	}
	return f.apply(c)
}
