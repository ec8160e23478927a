package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"texplore/internal/ansi"
	"texplore/internal/tree"
)

// clip keeps at most n characters of s. Counts runes, never bytes.
func clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// rowWriter appends styled segments while tracking the characters left.
type rowWriter struct {
	b    strings.Builder
	left int
}

func (w *rowWriter) write(text string, st lipgloss.Style) {
	if w.left <= 0 || text == "" {
		return
	}
	t := clip(text, w.left)
	w.left -= utf8.RuneCountInString(t)
	w.b.WriteString(st.Render(t))
}

type part struct {
	text string
	st   lipgloss.Style
}

// renderTreeRow draws one tree entry: prefix, icon, name and, when it fits
// without touching the name, a right-aligned status cluster.
func renderTreeRow(e tree.VisibleEntry, width int, focused, color, nerd bool) string {
	base := lipgloss.NewStyle()
	if focused {
		base = base.Reverse(true)
	}
	// the highlight replaces per-kind colors
	tint := color && !focused

	w := &rowWriter{left: width}
	if e.Prefix != "" {
		w.write(e.Prefix+" ", base.Faint(true))
	}
	iconSt := base
	nameSt := base
	if tint {
		iconSt = iconSt.Foreground(kindColor(e.Kind))
		nameSt = nameSt.Foreground(kindColor(e.Kind))
	}
	if e.Ignored {
		nameSt = nameSt.Faint(true)
	}
	w.write(iconFor(e.Kind, e.Expanded, nerd)+" ", iconSt)
	w.write(e.Name, nameSt)

	if width > 10 {
		cluster := statusCluster(e, base, tint)
		printed := width - w.left
		if n := clusterLen(cluster); n > 0 && printed+1+n <= width {
			w.b.WriteString(base.Render(strings.Repeat(" ", width-printed-n)))
			for i, p := range cluster {
				if i > 0 {
					w.b.WriteString(base.Render("  "))
				}
				w.b.WriteString(p.st.Render(p.text))
			}
		}
	}
	return w.b.String()
}

func statusCluster(e tree.VisibleEntry, base lipgloss.Style, tint bool) []part {
	faint := base.Faint(true)
	var parts []part
	if strings.TrimSpace(e.Status) != "" {
		st := base
		if tint {
			st = st.Foreground(statusColor(e.Status))
		}
		parts = append(parts, part{e.Status, st})
	}
	if e.Modified != "" {
		parts = append(parts, part{e.Modified, faint})
	}
	if e.IsDir && e.Changes > 0 {
		st := base
		if tint {
			st = st.Foreground(Vitesse.Yellow)
		}
		parts = append(parts, part{fmt.Sprintf("Δ%d", e.Changes), st})
	}
	if e.Metrics != "" {
		parts = append(parts, part{e.Metrics, faint})
	}
	return parts
}

func clusterLen(parts []part) int {
	n := 0
	for i, p := range parts {
		if i > 0 {
			n += 2
		}
		n += utf8.RuneCountInString(p.text)
	}
	return n
}

// renderStyledLine re-renders parsed spans clipped to width characters.
func renderStyledLine(l ansi.Line, width int, color bool) string {
	w := &rowWriter{left: width}
	for _, s := range l {
		if w.left <= 0 {
			break
		}
		t := clip(s.Text, w.left)
		w.left -= utf8.RuneCountInString(t)
		w.b.WriteString(s.Style.Render(t, color))
	}
	return w.b.String()
}

// padRow fills a rendered row with spaces up to width display cells.
func padRow(s string, width int) string {
	if n := width - xansi.StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// renderTopBar draws the dimmed title line.
func renderTopBar(title string, width int) string {
	return dim().Render(runewidth.Truncate(title, width, "…"))
}

// renderStatusBar draws a single-line status bar at the given width
// with left/right-aligned content.
func renderStatusBar(width int, left, right string, color bool) string {
	w := width
	if w <= 0 {
		w = 100
	}
	rw := xansi.StringWidth(right)
	if rw >= w {
		right, rw = "", 0
	}
	maxL := w - rw
	if rw > 0 {
		maxL--
	}
	if xansi.StringWidth(left) > maxL {
		left = xansi.Truncate(left, maxL, "…")
	}
	pad := w - xansi.StringWidth(left) - rw
	if pad < 0 {
		pad = 0
	}
	return StatusBarBase(color).Render(left + strings.Repeat(" ", pad) + right)
}
