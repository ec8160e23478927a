// Package trash moves files to the desktop trash through an external utility
// so deletions stay recoverable.
package trash

import (
	"context"
	"errors"
	"strings"
	"time"

	"texplore/internal/system"
)

// ErrNoTrashTool is returned when no trash utility could be found.
var ErrNoTrashTool = errors.New("no trash utility found (install trash-cli or set trash.command)")

// Trasher moves a path to a recoverable holding area.
type Trasher interface {
	Trash(ctx context.Context, path string) error
}

// Command runs Argv with the path appended.
type Command struct {
	Argv []string
}

const trashTimeout = 30 * time.Second

func (c Command) Trash(ctx context.Context, path string) error {
	if len(c.Argv) == 0 {
		return ErrNoTrashTool
	}
	args := append(append([]string{}, c.Argv[1:]...), path)
	_, err := system.Run(ctx, trashTimeout, "", c.Argv[0], args...)
	return err
}

// candidates in preference order
var candidates = [][]string{
	{"trash"},
	{"trash-put"},
	{"gio", "trash"},
}

// Detect returns a Command for the configured command line, or for the first
// utility found on PATH. Without one, every Trash call fails with
// ErrNoTrashTool.
func Detect(configured string) Command {
	if argv := strings.Fields(configured); len(argv) > 0 {
		return Command{Argv: argv}
	}
	for _, c := range candidates {
		if system.Available(c[0]) {
			return Command{Argv: c}
		}
	}
	system.Logger.Warn("no trash utility on PATH")
	return Command{}
}
