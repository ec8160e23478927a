package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"texplore/internal/system"
)

// resyncTickCmd fires once after d.
func resyncTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return resyncTickMsg(t) })
}

// startWatchCmd creates a watcher on dirs. Events are coalesced into a
// one-slot channel drained by watchSubscribeCmd; the channel is closed once
// the watcher is.
func startWatchCmd(dirs []string) tea.Cmd {
	return func() tea.Msg {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			system.Logger.Warn("file watching disabled", "err", err)
			return nil
		}
		watched := make(map[string]bool, len(dirs))
		for _, d := range dirs {
			if err := w.Add(d); err != nil {
				system.Logger.Debug("cannot watch", "dir", d, "err", err)
				continue
			}
			watched[d] = true
		}
		ch := make(chan struct{}, 1)
		go func() {
			// closing ch ends the pending watchSubscribeCmd
			defer close(ch)
			for {
				select {
				case _, ok := <-w.Events:
					if !ok {
						return
					}
					select {
					case ch <- struct{}{}:
					default:
					}
				case err, ok := <-w.Errors:
					if !ok {
						return
					}
					system.Logger.Debug("watch error", "err", err)
				}
			}
		}()
		return watchStartedMsg{w: w, ch: ch, watched: watched}
	}
}

// settle lets bursts of writes (editors, git) land before resyncing.
const settle = 250 * time.Millisecond

func watchSubscribeCmd(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if ch == nil {
			return nil
		}
		if _, ok := <-ch; !ok {
			return nil
		}
		time.Sleep(settle)
		select {
		case _, ok := <-ch:
			if !ok {
				return nil
			}
		default:
		}
		return fileChangedMsg{}
	}
}
