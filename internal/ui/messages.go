package ui

import (
	"time"

	"github.com/fsnotify/fsnotify"
)

// Bubble Tea messages

// periodic resync check
type resyncTickMsg time.Time

// fsnotify watcher is ready
type watchStartedMsg struct {
	w       *fsnotify.Watcher
	ch      chan struct{}
	watched map[string]bool
}

// something changed under a watched directory
type fileChangedMsg struct{}
