// Package preview turns a file into colorized text for the viewer.
package preview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/glamour"

	"texplore/internal/system"
)

var (
	// ErrDirectory is returned for directories.
	ErrDirectory = errors.New("cannot open a directory")
	// ErrBinary is returned by the built-in renderer for binary content.
	ErrBinary = errors.New("binary file not shown")
)

// Previewer renders path for a terminal width. The output may contain SGR
// escape sequences.
type Previewer interface {
	Preview(ctx context.Context, path string, width int) (string, error)
}

// Pager runs an external pretty-printer with bat-compatible flags.
type Pager struct {
	Command string
	// Args are appended after the built-in flags.
	Args []string
}

func (p Pager) Preview(ctx context.Context, path string, width int) (string, error) {
	args := []string{
		"--paging=never",
		"--color=always",
		"--decorations=always",
		"--style=full",
		fmt.Sprintf("--terminal-width=%d", width),
	}
	args = append(args, p.Args...)
	args = append(args, path)
	out, err := system.Run(ctx, 0, "", p.Command, args...)
	if err != nil {
		return "", fmt.Errorf("%s failed: %w", filepath.Base(p.Command), err)
	}
	return string(out), nil
}

// maxBuiltinBytes caps how much of a file the built-in renderer reads.
const maxBuiltinBytes = 1 << 20

// Builtin renders without external tools: glamour for markdown, chroma for
// everything else.
type Builtin struct {
	// Style is a chroma style name.
	Style string
}

func (b Builtin) Preview(_ context.Context, path string, width int) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if fi.IsDir() {
		return "", ErrDirectory
	}
	src, err := readHead(path)
	if err != nil {
		return "", err
	}
	if bytes.IndexByte(src, 0) >= 0 {
		return "", ErrBinary
	}
	if isMarkdown(path) {
		if out, err := renderMarkdown(string(src), width); err == nil {
			return out, nil
		}
	}
	return b.highlight(path, string(src))
}

func readHead(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxBuiltinBytes))
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdx":
		return true
	}
	return false
}

func renderMarkdown(src string, width int) (string, error) {
	// glamour's document margin eats two columns
	wrap := width - 2
	if wrap < 20 {
		wrap = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return "", err
	}
	return r.Render(src)
}

func (b Builtin) highlight(path, src string) (string, error) {
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		lexer = lexers.Analyse(src)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)
	style := styles.Get(b.Style)
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}
	it, err := lexer.Tokenise(nil, src)
	if err != nil {
		return "", fmt.Errorf("highlight %s: %w", filepath.Base(path), err)
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, it); err != nil {
		return "", fmt.Errorf("highlight %s: %w", filepath.Base(path), err)
	}
	return buf.String(), nil
}

// Auto prefers the pager and falls back to the built-in renderer when the
// pager is not installed.
type Auto struct {
	Pager    Pager
	Fallback Builtin
}

// New returns the default previewer for a pager command.
func New(command string, args []string) Auto {
	return Auto{Pager: Pager{Command: command, Args: args}, Fallback: Builtin{Style: "monokai"}}
}

func (a Auto) Preview(ctx context.Context, path string, width int) (string, error) {
	if a.Pager.Command != "" && system.Available(a.Pager.Command) {
		return a.Pager.Preview(ctx, path, width)
	}
	system.Logger.Debug("pager unavailable, using built-in preview", "pager", a.Pager.Command)
	return a.Fallback.Preview(ctx, path, width)
}
