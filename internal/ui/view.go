package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	zone "github.com/lrstanley/bubblezone"
)

const appTitle = "texplore"

func (m model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	color := m.colorOn()
	vh := m.viewHeight()

	title := appTitle + " · " + filepath.Base(m.tree.RootPath)
	var body []string
	right := ""
	switch {
	case m.viewer != nil:
		body = m.viewerRows(vh, color)
		if n := len(m.viewer.lines); n > 0 {
			right = fmt.Sprintf("%d/%d", min(m.viewer.scroll+vh, n), n)
		}
	case m.showHelp:
		m.help.ShowAll = true
		body = strings.Split(m.help.View(m.keys), "\n")
	default:
		body = m.treeRows(vh, color)
		if len(m.visible) > 0 {
			right = fmt.Sprintf("%d/%d", m.focus+1, len(m.visible))
		}
	}
	for len(body) < vh {
		body = append(body, "")
	}
	if len(body) > vh {
		body = body[:vh]
	}
	for i := range body {
		body[i] = padRow(body[i], m.width)
	}
	bodyStr := strings.Join(body, "\n")
	if m.opts.Zones != nil && m.viewer == nil && !m.showHelp {
		bodyStr = m.opts.Zones.Mark(zoneTree, bodyStr)
	}

	status := m.status
	if m.jumping {
		status = m.jump.View()
	}
	parts := []string{renderTopBar(title, m.width)}
	if vh > 0 {
		parts = append(parts, bodyStr)
	}
	parts = append(parts, renderStatusBar(m.width, status, right, color))
	out := strings.Join(parts, "\n")
	if m.opts.Zones != nil {
		out = m.opts.Zones.Scan(out)
	}
	return out
}

func (m model) treeRows(vh int, color bool) []string {
	rows := make([]string, 0, vh)
	for i := m.scroll; i < len(m.visible) && len(rows) < vh; i++ {
		rows = append(rows, renderTreeRow(m.visible[i], m.width, i == m.focus, color, m.opts.NerdIcons))
	}
	return rows
}

func (m model) viewerRows(vh int, color bool) []string {
	v := m.viewer
	rows := make([]string, 0, vh)
	for i := v.scroll; i < len(v.lines) && len(rows) < vh; i++ {
		rows = append(rows, renderStyledLine(v.lines[i], m.width, color))
	}
	return rows
}

// zoneInfo returns the tree body zone once bubblezone has recorded it.
func (m model) zoneInfo() *zone.ZoneInfo {
	if m.opts.Zones == nil {
		return nil
	}
	z := m.opts.Zones.Get(zoneTree)
	if z == nil || z.IsZero() {
		return nil
	}
	return z
}
