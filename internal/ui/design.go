package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"texplore/internal/tree"
)

// Design centralizes the explorer palette.
//
// Palette is based on Vitesse Dark Soft:
// https://github.com/antfu/vscode-theme-vitesse/blob/main/themes/vitesse-dark-soft.json
type designTheme struct {
	// Core semantic colors
	Primary lipgloss.Color // #4d9375
	Blue    lipgloss.Color // #6394bf
	Yellow  lipgloss.Color // #e6cc77
	Amber   lipgloss.Color // #c99076
	Magenta lipgloss.Color // #d9739f
	Cyan    lipgloss.Color // #5eaab5
	Red     lipgloss.Color // #cb7676

	// Text colors
	Text  lipgloss.Color // #dbd7caee
	Muted lipgloss.Color // #758575

	// Status bar colors
	BarFG lipgloss.AdaptiveColor // light/dark
	BarBG lipgloss.AdaptiveColor // light/dark
}

// Vitesse defines the global design theme.
var Vitesse = designTheme{
	Primary: lipgloss.Color("#4d9375"),
	Blue:    lipgloss.Color("#6394bf"),
	Yellow:  lipgloss.Color("#e6cc77"),
	Amber:   lipgloss.Color("#c99076"),
	Magenta: lipgloss.Color("#d9739f"),
	Cyan:    lipgloss.Color("#5eaab5"),
	Red:     lipgloss.Color("#cb7676"),

	Text:  lipgloss.Color("#dbd7caee"),
	Muted: lipgloss.Color("#758575"),

	BarFG: lipgloss.AdaptiveColor{Light: "#343433", Dark: "#bfbaaa"},
	BarBG: lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#222"},
}

// kindColor picks the icon/name color for a classification.
func kindColor(k tree.Kind) lipgloss.Color {
	switch k {
	case tree.KindDirectory:
		return Vitesse.Blue
	case tree.KindSymlink:
		return Vitesse.Cyan
	case tree.KindExecutable:
		return Vitesse.Primary
	case tree.KindAudio, tree.KindVideo:
		return Vitesse.Magenta
	case tree.KindImage, tree.KindDocument, tree.KindMarkdown:
		return Vitesse.Yellow
	case tree.KindJSON, tree.KindYAML, tree.KindTOML, tree.KindSettings:
		return Vitesse.Amber
	case tree.KindGo, tree.KindRust, tree.KindPython, tree.KindJavaScript, tree.KindTypeScript,
		tree.KindReact, tree.KindC, tree.KindCPP, tree.KindJava, tree.KindKotlin, tree.KindCSharp,
		tree.KindRuby, tree.KindPHP, tree.KindSwift, tree.KindLua, tree.KindHaskell, tree.KindElixir,
		tree.KindScala, tree.KindDart, tree.KindZig, tree.KindNix, tree.KindVue, tree.KindSvelte:
		return Vitesse.Primary
	case tree.KindGitLab, tree.KindVCS:
		return Vitesse.Red
	case tree.KindLock, tree.KindLog:
		return Vitesse.Muted
	}
	return Vitesse.Text
}

// statusColor colors a porcelain code by its first non-blank letter.
func statusColor(code string) lipgloss.Color {
	switch strings.TrimSpace(code) {
	case "":
		return Vitesse.Muted
	}
	switch strings.TrimSpace(code)[0] {
	case '?':
		return Vitesse.Yellow
	case 'D':
		return Vitesse.Red
	case 'A':
		return Vitesse.Primary
	case 'M':
		return Vitesse.Blue
	}
	return Vitesse.Muted
}

// StatusBarBase returns the base style for the status bar.
func StatusBarBase(color bool) lipgloss.Style {
	if !color {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(Vitesse.BarFG).Background(Vitesse.BarBG)
}

// dim is the faint style used for chrome and tree prefixes.
func dim() lipgloss.Style { return lipgloss.NewStyle().Faint(true) }
