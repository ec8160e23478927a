package ui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchReportsChange(t *testing.T) {
	dir := t.TempDir()
	msg := startWatchCmd([]string{dir})()
	started, ok := msg.(watchStartedMsg)
	require.True(t, ok, "got %T", msg)
	defer started.w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "x.txt"), []byte("x"), 0o644))

	done := make(chan any, 1)
	go func() { done <- watchSubscribeCmd(started.ch)() }()
	select {
	case got := <-done:
		assert.IsType(t, fileChangedMsg{}, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatchSubscribeEndsWhenWatcherCloses(t *testing.T) {
	started, ok := startWatchCmd([]string{t.TempDir()})().(watchStartedMsg)
	require.True(t, ok)
	require.NoError(t, started.w.Close())

	done := make(chan any, 1)
	go func() { done <- watchSubscribeCmd(started.ch)() }()
	select {
	case got := <-done:
		assert.Nil(t, got)
	case <-time.After(5 * time.Second):
		t.Fatal("subscriber still blocked after close")
	}
}

func TestWatchSubscribeNilChannel(t *testing.T) {
	assert.Nil(t, watchSubscribeCmd(nil)())
}

func TestResyncTickCmdProducesTick(t *testing.T) {
	msg := resyncTickCmd(time.Millisecond)()
	_, ok := msg.(resyncTickMsg)
	assert.True(t, ok)
}
