package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeIgnore(t *testing.T, body string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte(body), 0o644))
	return root
}

func TestMissingFileIgnoresNothing(t *testing.T) {
	m := Load(t.TempDir())
	assert.Nil(t, m)
	assert.False(t, m.IsIgnored("/anything", false))
}

func TestMatchesFileAndDirectoryPatterns(t *testing.T) {
	root := writeIgnore(t, "*.log\nbuild/\n")
	m := Load(root)
	require.NotNil(t, m)

	assert.True(t, m.IsIgnored(filepath.Join(root, "debug.log"), false))
	assert.True(t, m.IsIgnored(filepath.Join(root, "build"), true))
	assert.False(t, m.IsIgnored(filepath.Join(root, "main.go"), false))
}

func TestMatchesThroughAncestors(t *testing.T) {
	root := writeIgnore(t, "build/\nvendor\n")
	m := Load(root)
	require.NotNil(t, m)

	assert.True(t, m.IsIgnored(filepath.Join(root, "build", "out", "bin"), false))
	assert.True(t, m.IsIgnored(filepath.Join(root, "vendor", "pkg", "x.go"), false))
	assert.False(t, m.IsIgnored(filepath.Join(root, "src", "x.go"), false))
}

func TestOutsideRootNeverIgnored(t *testing.T) {
	root := writeIgnore(t, "*\n")
	m := Load(root)
	require.NotNil(t, m)
	assert.False(t, m.IsIgnored(root, true))
	assert.False(t, m.IsIgnored(filepath.Dir(root), true))
}
