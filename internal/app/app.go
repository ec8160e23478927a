package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-isatty"

	"texplore/internal/config"
	"texplore/internal/preview"
	"texplore/internal/system"
	"texplore/internal/trash"
	"texplore/internal/tree"
	"texplore/internal/ui"
)

// ErrNotTerminal is returned when stdin or stdout is not a terminal.
var ErrNotTerminal = errors.New("texplore needs an interactive terminal")

// Options assembles the UI collaborators from a resolved config.
func Options(cfg config.Config) ui.Options {
	return ui.Options{
		Previewer:       preview.New(cfg.Pager.Command, cfg.Pager.Args),
		Trasher:         trash.Detect(cfg.Trash.Command),
		RefreshInterval: cfg.RefreshInterval,
		DoubleClick:     cfg.DoubleClick,
		NerdIcons:       cfg.Icons == config.IconsNerd,
		Watch:           cfg.Watch,
	}
}

// Start explores root until the user quits.
func Start(root string, cfg config.Config) error {
	if !isTerminal(os.Stdin.Fd()) || !isTerminal(os.Stdout.Fd()) {
		return ErrNotTerminal
	}
	closeLog, err := system.SetupLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	t, err := tree.New(context.Background(), root, nil)
	if err != nil {
		return fmt.Errorf("open %s: %w", root, err)
	}
	system.Logger.Info("starting", "root", t.RootPath)

	opts := Options(cfg)
	opts.Zones = zone.New()
	defer opts.Zones.Close()

	p := tea.NewProgram(ui.New(t, opts), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
