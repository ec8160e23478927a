package ui

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	zone "github.com/lrstanley/bubblezone"

	"texplore/internal/config"
	"texplore/internal/preview"
	"texplore/internal/system"
	"texplore/internal/trash"
	"texplore/internal/tree"
)

const (
	defaultStatus = "q: quit  j/k: move  h/l/Enter: collapse/expand  d: delete  y: confirm  o: open  ?: help"
	viewerStatus  = "VIEW: q close  j/k scroll  gg/G top/bottom"
	zoneTree      = "texplore.tree"
)

// Options wires the explorer to its collaborators.
type Options struct {
	Previewer       preview.Previewer
	Trasher         trash.Trasher
	RefreshInterval time.Duration
	DoubleClick     time.Duration
	NerdIcons       bool
	Watch           bool
	// NoColor is sampled on every render.
	NoColor func() bool
	// Now is the clock used for resync and double-click timing.
	Now func() time.Time
	// Zones enables mouse hit testing through bubblezone when set.
	Zones *zone.Manager
}

// envNoColor follows https://no-color.org: presence disables color.
func envNoColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

type click struct {
	at  time.Time
	idx int
}

// Model for TUI
type model struct {
	opts Options
	tree *tree.Tree

	visible []tree.VisibleEntry
	focus   int
	scroll  int
	status  string

	// row armed by d; every re-flatten moves it to pendingPath's row
	pendingDelete *int
	pendingPath   string

	viewer    *viewer
	lastClick *click
	hasFocus  bool

	width  int
	height int

	lastRefresh time.Time

	keys       keyMap
	viewerKeys viewerKeyMap
	help       help.Model
	showHelp   bool

	jump    textinput.Model
	jumping bool

	watcher *fsnotify.Watcher
	watchCh chan struct{}
	watched map[string]bool
}

func newModel(t *tree.Tree, opts Options) model {
	if opts.NoColor == nil {
		opts.NoColor = envNoColor
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = config.DefaultRefreshInterval
	}
	if opts.DoubleClick <= 0 {
		opts.DoubleClick = config.DefaultDoubleClick
	}
	opts.NerdIcons = nfEnabled(opts.NerdIcons)
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "jump to…"
	ti.CharLimit = 256

	m := model{
		opts:        opts,
		tree:        t,
		status:      defaultStatus,
		hasFocus:    true,
		lastRefresh: opts.Now(),
		keys:        defaultKeys(),
		viewerKeys:  defaultViewerKeys(),
		help:        help.New(),
		jump:        ti,
	}
	m.refreshVisible()
	return m
}

// New returns the explorer model for t.
func New(t *tree.Tree, opts Options) tea.Model { return newModel(t, opts) }

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{resyncTickCmd(m.opts.RefreshInterval)}
	if m.opts.Watch {
		cmds = append(cmds, startWatchCmd(m.expandedDirs()))
	}
	return tea.Batch(cmds...)
}

func (m model) colorOn() bool { return !m.opts.NoColor() }

// viewHeight is the number of body rows between the top bar and status bar.
func (m model) viewHeight() int {
	if h := m.height - 2; h > 0 {
		return h
	}
	return 0
}

func (m *model) refreshVisible() {
	m.visible = m.tree.Visible()
	if m.focus >= len(m.visible) {
		m.focus = len(m.visible) - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
	m.relocatePending()
	m.ensureVisible()
}

// relocatePending keeps the delete arm on the path it was armed on. It
// disarms when that path is no longer a visible row.
func (m *model) relocatePending() {
	if m.pendingDelete == nil {
		return
	}
	i := m.indexOf(m.pendingPath)
	if i < 0 {
		m.clearPending()
		m.status = "delete canceled"
		return
	}
	m.pendingDelete = &i
}

func (m *model) ensureVisible() {
	vh := m.viewHeight()
	if vh == 0 {
		return
	}
	if m.focus < m.scroll {
		m.scroll = m.focus
	}
	if m.focus >= m.scroll+vh {
		m.scroll = m.focus - vh + 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m model) current() (tree.VisibleEntry, bool) {
	if m.focus < 0 || m.focus >= len(m.visible) {
		return tree.VisibleEntry{}, false
	}
	return m.visible[m.focus], true
}

func (m model) indexOf(path string) int {
	for i, e := range m.visible {
		if e.Path == path {
			return i
		}
	}
	return -1
}

func (m *model) clearPending() {
	m.pendingDelete = nil
	m.pendingPath = ""
}

// resync rebuilds the tree and keeps focus on the same path when it still
// exists.
func (m *model) resync() {
	focused := ""
	if e, ok := m.current(); ok {
		focused = e.Path
	}
	m.lastRefresh = m.opts.Now()
	if err := m.tree.Resync(context.Background()); err != nil {
		m.status = "error: " + err.Error()
		return
	}
	m.refreshVisible()
	if i := m.indexOf(focused); i >= 0 {
		m.focus = i
	}
	m.ensureVisible()
}

// expandedDirs lists loaded, expanded directories for the watcher.
func (m model) expandedDirs() []string {
	var dirs []string
	for _, e := range m.visible {
		if e.IsDir && e.Expanded {
			dirs = append(dirs, e.Path)
		}
	}
	return dirs
}

// syncWatches makes the watch list equal the expanded directories.
func (m *model) syncWatches() {
	if m.watcher == nil {
		return
	}
	if m.watched == nil {
		m.watched = map[string]bool{}
	}
	want := map[string]bool{}
	for _, d := range m.expandedDirs() {
		want[d] = true
	}
	for d := range m.watched {
		if !want[d] {
			_ = m.watcher.Remove(d)
			delete(m.watched, d)
		}
	}
	for d := range want {
		if m.watched[d] {
			continue
		}
		if err := m.watcher.Add(d); err != nil {
			system.Logger.Debug("cannot watch", "dir", d, "err", err)
			continue
		}
		m.watched[d] = true
	}
}
