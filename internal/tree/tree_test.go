package tree

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"texplore/internal/gitstatus"
	tu "texplore/internal/testutil"
)

// layout creates files (and their parent directories) under a temp root.
func layout(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	tu.WriteFiles(t, root, files...)
	return root
}

// fakeStatus serves fixed codes keyed by slash paths relative to the root.
func fakeStatus(codes map[string]string) StatusFunc {
	return func(_ context.Context, root string) gitstatus.Index {
		idx := gitstatus.Index{Codes: map[string]string{}}
		for rel, code := range codes {
			idx.Codes[filepath.Join(root, filepath.FromSlash(rel))] = code
		}
		return idx
	}
}

func newTree(t *testing.T, root string, codes map[string]string) *Tree {
	t.Helper()
	tr, err := New(context.Background(), root, fakeStatus(codes))
	require.NoError(t, err)
	return tr
}

func names(entries []VisibleEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func find(t *testing.T, entries []VisibleEntry, name string) VisibleEntry {
	t.Helper()
	for _, e := range entries {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("entry %q not visible in %v", name, names(entries))
	return VisibleEntry{}
}

func TestRootIsExpandedAndSorted(t *testing.T) {
	root := layout(t, "b.txt", "A.txt", "c/x.txt")
	tr := newTree(t, root, nil)
	vis := tr.Visible()
	require.Len(t, vis, 4)
	assert.True(t, vis[0].IsRoot())
	assert.Equal(t, []string{"A.txt", "b.txt", "c/"}, names(vis[1:]))
	assert.False(t, vis[3].Expanded)
}

func TestAggregateCounts(t *testing.T) {
	root := layout(t, "d/clean.txt", "d/mod.txt")
	tr := newTree(t, root, map[string]string{"d/mod.txt": "M "})

	d := tr.NodeAt([]int{0})
	require.NotNil(t, d)
	require.True(t, d.Loaded())
	assert.Equal(t, 1, d.Changes)
	assert.Equal(t, 1, tr.Root.Changes)

	require.NoError(t, os.WriteFile(filepath.Join(root, "d", "new.txt"), nil, 0o644))
	tr.status = fakeStatus(map[string]string{"d/mod.txt": "M ", "d/new.txt": "??"})
	tr.Index = tr.status(context.Background(), tr.RootPath)
	require.NoError(t, tr.LoadChildren([]int{0}))
	assert.Equal(t, 2, tr.NodeAt([]int{0}).Changes)
	assert.Equal(t, 2, tr.Root.Changes)
}

func TestPrefixContinuesAncestorBar(t *testing.T) {
	root := layout(t, "x/g.txt", "y.txt")
	tr := newTree(t, root, nil)
	require.NoError(t, tr.Expand([]int{0}))

	vis := tr.Visible()
	assert.Equal(t, []string{"x/", "g.txt", "y.txt"}, names(vis[1:]))
	assert.Equal(t, "", vis[0].Prefix)
	assert.Equal(t, " ├", find(t, vis, "x/").Prefix)
	assert.Equal(t, " │└", find(t, vis, "g.txt").Prefix)
	assert.Equal(t, " └", find(t, vis, "y.txt").Prefix)
}

func TestFlattenIsDeterministic(t *testing.T) {
	root := layout(t, "a/1", "a/2", "b/3", "c")
	tr := newTree(t, root, map[string]string{"a/2": " M"})
	require.NoError(t, tr.Expand([]int{1}))
	first := tr.Visible()
	second := tr.Visible()
	assert.Equal(t, first, second)
}

func TestAutoExpandReachesNestedChange(t *testing.T) {
	root := layout(t, "a/b/c.txt", "a/other.txt", "z/untouched.txt")
	tr := newTree(t, root, map[string]string{"a/b/c.txt": " M"})

	a := tr.NodeAt([]int{0})
	require.NotNil(t, a)
	assert.True(t, a.Expanded)
	assert.True(t, a.Loaded())
	b := tr.NodeAt([]int{0, 0})
	require.Equal(t, "b/", b.Name)
	assert.True(t, b.Expanded)
	assert.True(t, b.Loaded())
	assert.False(t, tr.NodeAt([]int{1}).Expanded)

	e := find(t, tr.Visible(), "c.txt")
	assert.Equal(t, []int{0, 0, 0}, e.Index)
	assert.Equal(t, 1, tr.Root.Changes)
	assert.Equal(t, 1, a.Changes)
}

func TestAutoExpandStopsOnMissingComponent(t *testing.T) {
	root := layout(t, "a/keep.txt")
	tr := newTree(t, root, map[string]string{"a/gone/deleted.txt": " D"})
	assert.True(t, tr.NodeAt([]int{0}).Expanded)
	assert.Equal(t, []string{"a/", "keep.txt"}, names(tr.Visible()[1:]))
}

func TestRemoveFixesAncestorCounts(t *testing.T) {
	root := layout(t, "a/b/c.txt", "a/b/d.txt", "e.txt")
	tr := newTree(t, root, map[string]string{"a/b/c.txt": " M", "a/b/d.txt": "??", "e.txt": "A "})
	require.Equal(t, 3, tr.Root.Changes)
	require.Equal(t, 2, tr.NodeAt([]int{0}).Changes)

	before := len(tr.Visible())
	removed, err := tr.Remove([]int{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, "c.txt", removed.Name)
	assert.Len(t, tr.Visible(), before-1)
	assert.Equal(t, 1, tr.NodeAt([]int{0, 0}).Changes)
	assert.Equal(t, 1, tr.NodeAt([]int{0}).Changes)
	assert.Equal(t, 2, tr.Root.Changes)
}

func TestRemoveRootRefused(t *testing.T) {
	tr := newTree(t, layout(t, "f"), nil)
	_, err := tr.Remove(nil)
	assert.ErrorIs(t, err, ErrRootRemoval)
}

func TestToggleAndCollapse(t *testing.T) {
	tr := newTree(t, layout(t, "d/f"), nil)
	require.NoError(t, tr.Toggle([]int{0}))
	assert.Len(t, tr.Visible(), 3)
	require.NoError(t, tr.Toggle([]int{0}))
	assert.Len(t, tr.Visible(), 2)
	require.NoError(t, tr.Expand([]int{0}))
	tr.Collapse([]int{0})
	assert.Len(t, tr.Visible(), 2)
	assert.True(t, tr.NodeAt([]int{0}).Loaded())
}

func TestUntrackedDirectoryChildrenInheritCode(t *testing.T) {
	root := layout(t, "fresh/a.txt", "fresh/b.txt")
	tr := newTree(t, root, map[string]string{"fresh/": "??"})
	d := tr.NodeAt([]int{0})
	assert.Equal(t, "??", d.Status)
	require.NoError(t, tr.Expand([]int{0}))
	assert.Equal(t, "??", tr.NodeAt([]int{0, 0}).Status)
	assert.Equal(t, 2, d.Changes)
	assert.Equal(t, 2, tr.Root.Changes)
}

func TestIgnoredEntriesFlagged(t *testing.T) {
	root := layout(t, ".gitignore", "build/out.bin", "main.go")
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("build/\n"), 0o644))
	tr := newTree(t, root, nil)
	vis := tr.Visible()
	assert.True(t, find(t, vis, "build/").Ignored)
	assert.False(t, find(t, vis, "main.go").Ignored)
}

func TestSymlinkIsNotFollowed(t *testing.T) {
	root := layout(t, "real/file.txt")
	if err := os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "link")); err != nil {
		t.Skip("symlinks unsupported:", err)
	}
	tr := newTree(t, root, nil)
	link := find(t, tr.Visible(), "link")
	assert.False(t, link.IsDir)
	assert.Equal(t, KindSymlink, link.Kind)
}
