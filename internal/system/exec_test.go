package system

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReturnsStdout(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	out, err := Run(context.Background(), 0, "", "sh", "-c", "printf hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(out))
}

func TestRunErrorCarriesStderr(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	_, err := Run(context.Background(), 0, "", "sh", "-c", "echo '  boom  ' >&2; exit 3")
	require.Error(t, err)
	var ee *ExecError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, "boom", ee.Stderr)
	assert.Equal(t, "boom", err.Error())
}

func TestRunMissingBinary(t *testing.T) {
	_, err := Run(context.Background(), 0, "", "texplore-definitely-missing-binary")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "texplore-definitely-missing-binary")
}

func TestGitRootOutsideRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))
	_, err := GitRoot(context.Background(), dir)
	assert.Error(t, err)
}

func TestSetupLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texplore.log")
	closeFn, err := SetupLogger(path)
	require.NoError(t, err)
	Logger.Info("hello", "k", "v")
	require.NoError(t, closeFn())
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "hello")
	_, _ = SetupLogger("")
}
