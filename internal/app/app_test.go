package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"texplore/internal/config"
	"texplore/internal/trash"
)

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Trash.Command = "mytrash --force"
	cfg.RefreshInterval = 5 * time.Second
	cfg.Icons = config.IconsASCII

	opts := Options(cfg)
	assert.Equal(t, trash.Command{Argv: []string{"mytrash", "--force"}}, opts.Trasher)
	assert.Equal(t, 5*time.Second, opts.RefreshInterval)
	assert.False(t, opts.NerdIcons)
	assert.NotNil(t, opts.Previewer)
}

func TestStartRequiresTerminal(t *testing.T) {
	// go test never hands the binary a tty on stdin
	if isTerminal(0) {
		t.Skip("stdin is a terminal")
	}
	assert.ErrorIs(t, Start(t.TempDir(), config.Default()), ErrNotTerminal)
}
