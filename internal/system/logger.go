package system

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger.
// Subcommands print to stderr; the explorer redirects it with SetupLogger
// because the TUI owns the terminal while it runs.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
	Prefix:          "texplore",
})

// SetupLogger points Logger at path, or discards output when path is empty.
// The returned func closes the log file.
func SetupLogger(path string) (func() error, error) {
	if path == "" {
		Logger.SetOutput(io.Discard)
		return func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	Logger.SetOutput(f)
	Logger.SetLevel(clog.DebugLevel)
	return f.Close, nil
}
