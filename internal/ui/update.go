package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"texplore/internal/ansi"
	"texplore/internal/system"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.viewer != nil {
			m.viewer.scrollBy(0, m.viewHeight())
		}
		m.ensureVisible()
		return m, nil
	case tea.FocusMsg:
		m.hasFocus = true
		m.resync()
		m.syncWatches()
		return m, nil
	case tea.BlurMsg:
		m.hasFocus = false
		return m, nil
	case resyncTickMsg:
		now := m.opts.Now()
		if elapsed := now.Sub(m.lastRefresh); elapsed < m.opts.RefreshInterval {
			return m, resyncTickCmd(m.opts.RefreshInterval - elapsed)
		}
		m.resync()
		m.syncWatches()
		return m, resyncTickCmd(m.opts.RefreshInterval)
	case watchStartedMsg:
		m.watcher = msg.w
		m.watchCh = msg.ch
		m.watched = msg.watched
		m.syncWatches()
		return m, watchSubscribeCmd(m.watchCh)
	case fileChangedMsg:
		if m.watcher == nil {
			return m, nil
		}
		m.resync()
		m.syncWatches()
		return m, watchSubscribeCmd(m.watchCh)
	case tea.MouseMsg:
		if !m.hasFocus {
			return m, nil
		}
		if m.viewer != nil {
			m.viewerMouse(msg)
			return m, nil
		}
		m.browseMouse(msg)
		return m, nil
	case tea.KeyMsg:
		if m.viewer != nil {
			m.viewerKey(msg)
			return m, nil
		}
		if m.jumping {
			return m.jumpKey(msg)
		}
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		return m.browseKey(msg)
	}
	return m, nil
}

func (m model) browseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.closeWatcher()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Top):
		m.focus = 0
		m.ensureVisible()
	case key.Matches(msg, m.keys.Bottom):
		m.focus = len(m.visible) - 1
		m.ensureVisible()
	case key.Matches(msg, m.keys.Collapse):
		m.collapse()
	case key.Matches(msg, m.keys.Expand):
		m.expand()
	case key.Matches(msg, m.keys.Enter):
		m.toggleOrOpen()
	case key.Matches(msg, m.keys.Open):
		m.open()
	case key.Matches(msg, m.keys.Delete):
		m.armDelete()
	case key.Matches(msg, m.keys.Confirm):
		m.confirmDelete()
	case key.Matches(msg, m.keys.Cancel):
		if m.pendingDelete != nil {
			m.clearPending()
			m.status = "delete canceled"
		}
	case key.Matches(msg, m.keys.Refresh):
		m.resync()
		m.syncWatches()
		m.status = "resynced"
	case key.Matches(msg, m.keys.Jump):
		m.jumping = true
		m.jump.SetValue("")
		return m, m.jump.Focus()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	}
	return m, nil
}

func (m *model) moveFocus(delta int) {
	m.focus += delta
	if m.focus >= len(m.visible) {
		m.focus = len(m.visible) - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
	m.ensureVisible()
}

func (m *model) collapse() {
	e, ok := m.current()
	if !ok || !e.IsDir || !e.Expanded {
		return
	}
	m.tree.Collapse(e.Index)
	m.refreshVisible()
	m.syncWatches()
	m.status = "collapsed " + e.Name
}

func (m *model) expand() {
	e, ok := m.current()
	if !ok || !e.IsDir || e.Expanded {
		return
	}
	if err := m.tree.Expand(e.Index); err != nil {
		m.status = "error: " + err.Error()
		return
	}
	m.refreshVisible()
	m.syncWatches()
}

func (m *model) toggleOrOpen() {
	e, ok := m.current()
	if !ok {
		return
	}
	if !e.IsDir {
		m.open()
		return
	}
	if e.Expanded {
		m.collapse()
		return
	}
	m.expand()
}

// open runs the previewer synchronously and shows the result in the viewer.
// Failures only change the status line.
func (m *model) open() {
	e, ok := m.current()
	if !ok {
		return
	}
	if e.IsDir {
		m.status = "cannot open a directory"
		return
	}
	width := m.width
	if width < 20 {
		width = 80
	}
	out, err := m.opts.Previewer.Preview(context.Background(), e.Path, width)
	if err != nil {
		system.Logger.Warn("preview failed", "path", e.Path, "err", err)
		m.status = err.Error()
		return
	}
	m.viewer = &viewer{title: e.Path, lines: ansi.ParseLines(out)}
	m.lastClick = nil
	m.status = e.Path + " | " + viewerStatus
}

func (m *model) armDelete() {
	e, ok := m.current()
	if !ok {
		return
	}
	if e.IsRoot() {
		m.status = "cannot delete root"
		return
	}
	idx := m.focus
	m.pendingDelete = &idx
	m.pendingPath = e.Path
	m.status = fmt.Sprintf("Delete %s? y to confirm, Esc to cancel", e.Name)
}

// confirmDelete trashes the armed entry and detaches it from the tree.
func (m *model) confirmDelete() {
	if m.pendingDelete == nil {
		return
	}
	idx, path := *m.pendingDelete, m.pendingPath
	m.clearPending()
	if idx < 0 || idx >= len(m.visible) {
		return
	}
	e := m.visible[idx]
	if e.Path != path {
		m.status = "delete canceled"
		return
	}
	if err := m.opts.Trasher.Trash(context.Background(), e.Path); err != nil {
		system.Logger.Warn("delete failed", "path", e.Path, "err", err)
		m.status = "delete failed: " + err.Error()
		return
	}
	if _, err := m.tree.Remove(e.Index); err != nil {
		m.status = "error: " + err.Error()
		return
	}
	m.refreshVisible()
	m.status = "deleted " + e.Name
}

func (m *model) viewerKey(msg tea.KeyMsg) {
	v := m.viewer
	vh := m.viewHeight()
	if msg.String() == "g" {
		if v.pendingG {
			v.top()
			v.pendingG = false
		} else {
			v.pendingG = true
		}
		return
	}
	v.pendingG = false
	switch {
	case key.Matches(msg, m.viewerKeys.Close):
		m.viewer = nil
		m.status = defaultStatus
	case key.Matches(msg, m.viewerKeys.Down):
		v.scrollBy(1, vh)
	case key.Matches(msg, m.viewerKeys.Up):
		v.scrollBy(-1, vh)
	case key.Matches(msg, m.viewerKeys.PageDown):
		v.scrollBy(vh, vh)
	case key.Matches(msg, m.viewerKeys.PageUp):
		v.scrollBy(-vh, vh)
	case key.Matches(msg, m.viewerKeys.Bottom):
		v.bottom(vh)
	}
}

func (m *model) viewerMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelDown:
		m.viewer.pendingG = false
		m.viewer.scrollBy(1, m.viewHeight())
	case tea.MouseButtonWheelUp:
		m.viewer.pendingG = false
		m.viewer.scrollBy(-1, m.viewHeight())
	}
}

func (m *model) browseMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonWheelDown:
		m.lastClick = nil
		m.moveFocus(1)
	case msg.Button == tea.MouseButtonWheelUp:
		m.lastClick = nil
		m.moveFocus(-1)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		m.leftClick(msg)
	}
}

// rowAt maps a mouse event to an index into visible.
func (m model) rowAt(msg tea.MouseMsg) (int, bool) {
	if z := m.zoneInfo(); z != nil {
		if !z.InBounds(msg) {
			return 0, false
		}
		_, y := z.Pos(msg)
		return m.scroll + y, true
	}
	// row 0 is the top bar
	if msg.Y < 1 || msg.Y > m.viewHeight() {
		return 0, false
	}
	return m.scroll + msg.Y - 1, true
}

func (m *model) leftClick(msg tea.MouseMsg) {
	idx, ok := m.rowAt(msg)
	if !ok || idx >= len(m.visible) {
		m.lastClick = nil
		return
	}
	m.focus = idx
	m.ensureVisible()
	e := m.visible[idx]
	if e.IsDir {
		m.lastClick = nil
		m.toggleOrOpen()
		return
	}
	now := m.opts.Now()
	if lc := m.lastClick; lc != nil && lc.idx == idx && now.Sub(lc.at) <= m.opts.DoubleClick {
		m.lastClick = nil
		m.open()
		return
	}
	m.lastClick = &click{at: now, idx: idx}
}

// jumpKey feeds the fuzzy jump prompt and moves focus to the best match.
func (m model) jumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.jumping = false
		m.jump.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	q := strings.TrimSpace(m.jump.Value())
	if q == "" {
		return m, cmd
	}
	names := make([]string, len(m.visible))
	for i, e := range m.visible {
		names[i] = e.Name
	}
	if matches := fuzzy.Find(q, names); len(matches) > 0 {
		m.focus = matches[0].Index
		m.ensureVisible()
	}
	return m, cmd
}

func (m *model) closeWatcher() {
	if m.watcher != nil {
		_ = m.watcher.Close()
		m.watcher = nil
		m.watched = nil
	}
}
