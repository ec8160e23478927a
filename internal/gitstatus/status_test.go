package gitstatus

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePorcelainZ(t *testing.T) {
	raw := []byte(" M a.txt\x00?? new/\x00R  dst.go\x00src.go\x00A  b/c.txt\x00")
	recs := ParsePorcelainZ(raw)
	require.Len(t, recs, 4)
	assert.Equal(t, " M", recs[0].Code())
	assert.Equal(t, "a.txt", recs[0].Path)
	assert.Equal(t, "??", recs[1].Code())
	assert.Equal(t, "new/", recs[1].Path)
	assert.Equal(t, "R ", recs[2].Code())
	assert.Equal(t, "dst.go", recs[2].Path)
	assert.Equal(t, "src.go", recs[2].Orig)
	assert.Equal(t, "b/c.txt", recs[3].Path)
}

func TestParsePorcelainZTruncated(t *testing.T) {
	assert.Empty(t, ParsePorcelainZ(nil))
	assert.Empty(t, ParsePorcelainZ([]byte("M")))
	recs := ParsePorcelainZ([]byte(" M tail"))
	require.Len(t, recs, 1)
	assert.Equal(t, "tail", recs[0].Path)
}

func TestFromRecordsTallies(t *testing.T) {
	top := filepath.FromSlash("/repo")
	recs := []Record{
		{X: ' ', Y: 'M', Path: "sub/a.go"},
		{X: 'M', Y: 'M', Path: "sub/b.go"},
		{X: '?', Y: '?', Path: "sub/c.go"},
		{X: 'A', Y: ' ', Path: "other/d.go"},
	}
	idx := FromRecords(top, filepath.Join(top, "sub"), recs)
	assert.Len(t, idx.Codes, 3)
	// other/d.go is outside the root but still counts toward the repo tallies
	assert.Equal(t, 2, idx.Staged)
	assert.Equal(t, 2, idx.Unstaged)
	assert.Equal(t, 1, idx.Untracked)
	assert.Equal(t, " M", idx.Code(filepath.Join(top, "sub", "a.go")))
	assert.Equal(t, Clean, idx.Code(filepath.Join(top, "other", "d.go")))
}

func TestParseAheadBehind(t *testing.T) {
	cases := []struct {
		line          string
		ahead, behind int
	}{
		{"## main...origin/main [ahead 2, behind 5]", 2, 5},
		{"## main...origin/main [behind 1]", 0, 1},
		{"## main...origin/main [ahead 3]", 3, 0},
		{"## main", 0, 0},
		{"## main [gone", 0, 0},
	}
	for _, c := range cases {
		a, b := ParseAheadBehind(c.line)
		assert.Equal(t, c.ahead, a, c.line)
		assert.Equal(t, c.behind, b, c.line)
	}
}

func TestMetrics(t *testing.T) {
	assert.Equal(t, "", Index{}.Metrics())
	idx := Index{Ahead: 1, Staged: 2, Untracked: 3}
	assert.Equal(t, "↑1 ↓0 S2 U0 ?3", idx.Metrics())
}

func TestLoadOutsideRepoIsEmpty(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))
	idx := Load(context.Background(), dir)
	assert.Empty(t, idx.Codes)
	assert.Equal(t, "", idx.Metrics())
}

func TestLoadRealRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	git := func(args ...string) {
		cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
		cmd.Env = append(os.Environ(), "GIT_AUTHOR_NAME=t", "GIT_AUTHOR_EMAIL=t@t", "GIT_COMMITTER_NAME=t", "GIT_COMMITTER_EMAIL=t@t")
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, string(out))
	}
	git("init", "-q")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tracked.txt"), []byte("a"), 0o644))
	git("add", "tracked.txt")
	git("commit", "-q", "-m", "init")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tracked.txt"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fresh.txt"), []byte("c"), 0o644))

	idx := Load(context.Background(), dir)
	assert.Equal(t, " M", idx.Code(filepath.Join(dir, "tracked.txt")))
	assert.Equal(t, "??", idx.Code(filepath.Join(dir, "fresh.txt")))
	assert.Equal(t, 1, idx.Unstaged)
	assert.Equal(t, 1, idx.Untracked)
}
