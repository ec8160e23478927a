package tree

import (
	"path/filepath"
	"strings"

	"texplore/internal/system"
)

// AutoExpand opens every directory between the root and a path with a
// pending change so the change is visible without drilling down. A path
// component that no longer exists ends that walk silently.
func (t *Tree) AutoExpand() {
	for _, p := range t.Index.Paths() {
		rel, err := filepath.Rel(t.RootPath, p)
		if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		t.expandAlong(strings.Split(rel, string(filepath.Separator)))
	}
}

func (t *Tree) expandAlong(parts []string) {
	chain := []*Node{t.Root}
	n := t.Root
	for _, part := range parts {
		if !n.IsDir {
			break
		}
		if err := t.expand(n); err != nil {
			system.Logger.Warn("auto-expand failed", "path", n.Path, "err", err)
			break
		}
		next := childNamed(n, part)
		if next == nil {
			break
		}
		n = next
		chain = append(chain, n)
	}
	recount(chain)
}

func childNamed(n *Node, name string) *Node {
	for _, c := range n.Children {
		if filepath.Base(c.Path) == name {
			return c
		}
	}
	return nil
}
