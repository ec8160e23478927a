// Package ansi decodes SGR-colored text (as produced by pagers such as bat)
// into styled spans that can be clipped and re-rendered with lipgloss.
package ansi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColorKind tells how a Color is addressed.
type ColorKind uint8

const (
	// ColorNamed is one of the 16 basic terminal colors (0-7 normal, 8-15 bright).
	ColorNamed ColorKind = iota
	// ColorIndexed is a 256-color palette entry.
	ColorIndexed
	// ColorRGB is a truecolor value.
	ColorRGB
)

// Color is a terminal color.
type Color struct {
	Kind    ColorKind
	Index   uint8
	R, G, B uint8
}

func Named(i uint8) *Color     { return &Color{Kind: ColorNamed, Index: i} }
func Indexed(i uint8) *Color   { return &Color{Kind: ColorIndexed, Index: i} }
func RGB(r, g, b uint8) *Color { return &Color{Kind: ColorRGB, R: r, G: g, B: b} }

// Lipgloss converts the color for rendering.
func (c Color) Lipgloss() lipgloss.Color {
	if c.Kind == ColorRGB {
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
	}
	return lipgloss.Color(strconv.Itoa(int(c.Index)))
}

// Style is the running SGR state. Nil colors mean the terminal default.
type Style struct {
	Fg, Bg    *Color
	Bold      bool
	Dim       bool
	Italic    bool
	Underline bool
}

// Render draws text in this style. With color off only emphasis survives.
func (s Style) Render(text string, color bool) string {
	st := lipgloss.NewStyle().Bold(s.Bold).Faint(s.Dim).Italic(s.Italic).Underline(s.Underline)
	if color && s.Fg != nil {
		st = st.Foreground(s.Fg.Lipgloss())
	}
	if color && s.Bg != nil {
		st = st.Background(s.Bg.Lipgloss())
	}
	return st.Render(text)
}

// Span is a run of text sharing one style.
type Span struct {
	Text  string
	Style Style
}

// Line is one source line. Style never carries over between lines.
type Line []Span

// Text returns the line without styling.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// ParseLines splits s on newlines and parses each line on its own.
// A trailing newline does not produce an extra empty line.
func ParseLines(s string) []Line {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	raw := strings.Split(s, "\n")
	out := make([]Line, len(raw))
	for i, l := range raw {
		out[i] = ParseLine(l)
	}
	return out
}

const esc = 0x1b

// ParseLine decodes a single line. Pending text is flushed with the style in
// effect before each SGR sequence is applied. Other CSI and OSC sequences are
// dropped, as are carriage returns and stray escapes.
func ParseLine(s string) Line {
	var (
		line  Line
		style Style
		buf   strings.Builder
	)
	flush := func() {
		if buf.Len() > 0 {
			line = append(line, Span{Text: buf.String(), Style: style})
			buf.Reset()
		}
	}
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == esc && i+1 < len(s) && s[i+1] == '[':
			j := i + 2
			for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
				j++
			}
			if j >= len(s) {
				i = len(s)
				continue
			}
			if s[j] == 'm' {
				flush()
				style = applySGR(style, s[i+2:j])
			}
			i = j + 1
		case c == esc && i+1 < len(s) && s[i+1] == ']':
			i = skipOSC(s, i+2)
		case c == esc, c == '\r':
			i++
		default:
			buf.WriteByte(c)
			i++
		}
	}
	flush()
	return line
}

// skipOSC returns the index after the BEL or ESC \ that ends an OSC string.
func skipOSC(s string, i int) int {
	for i < len(s) {
		if s[i] == 0x07 {
			return i + 1
		}
		if s[i] == esc && i+1 < len(s) && s[i+1] == '\\' {
			return i + 2
		}
		i++
	}
	return i
}

func applySGR(st Style, params string) Style {
	if params == "" {
		return Style{}
	}
	codes := make([]int, 0, 8)
	for _, p := range strings.Split(params, ";") {
		// an omitted parameter defaults to 0
		if p == "" {
			codes = append(codes, 0)
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			continue
		}
		codes = append(codes, n)
	}
	for i := 0; i < len(codes); i++ {
		switch c := codes[i]; {
		case c == 0:
			st = Style{}
		case c == 1:
			st.Bold = true
		case c == 2:
			st.Dim = true
		case c == 3:
			st.Italic = true
		case c == 4:
			st.Underline = true
		case c == 22:
			st.Bold, st.Dim = false, false
		case c == 23:
			st.Italic = false
		case c == 24:
			st.Underline = false
		case c == 39:
			st.Fg = nil
		case c == 49:
			st.Bg = nil
		case c == 38 || c == 48:
			col, used := extended(codes[i+1:])
			if col != nil {
				if c == 38 {
					st.Fg = col
				} else {
					st.Bg = col
				}
			}
			i += used
		default:
			if col := named(c); col != nil {
				st.Fg = col
			} else if col := named(c - 10); col != nil && (c >= 40 && c <= 47 || c >= 100 && c <= 107) {
				st.Bg = col
			}
		}
	}
	return st
}

// named maps 30-37 and 90-97 to the 16 basic colors.
func named(c int) *Color {
	switch {
	case c >= 30 && c <= 37:
		return Named(uint8(c - 30))
	case c >= 90 && c <= 97:
		return Named(uint8(c - 90 + 8))
	}
	return nil
}

// extended decodes the arguments after 38/48 and reports how many it used.
func extended(rest []int) (*Color, int) {
	if len(rest) == 0 {
		return nil, 0
	}
	switch rest[0] {
	case 5:
		if len(rest) < 2 {
			return nil, len(rest)
		}
		if v, ok := byteOf(rest[1]); ok {
			return Indexed(v), 2
		}
		return nil, 2
	case 2:
		if len(rest) < 4 {
			return nil, len(rest)
		}
		r, okR := byteOf(rest[1])
		g, okG := byteOf(rest[2])
		b, okB := byteOf(rest[3])
		if okR && okG && okB {
			return RGB(r, g, b), 4
		}
		return nil, 4
	}
	return nil, 0
}

func byteOf(n int) (uint8, bool) {
	if n < 0 || n > 255 {
		return 0, false
	}
	return uint8(n), true
}
