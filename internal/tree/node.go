// Package tree owns the lazily loaded filesystem tree, its git status
// overlay and the flattened rows drawn by the explorer.
package tree

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"texplore/internal/gitstatus"
	"texplore/internal/ignore"
	"texplore/internal/system"
)

const timeLayout = "2006-01-02 15:04"

// Node is one filesystem entry. Children is nil until the directory is
// loaded; files never have children.
type Node struct {
	Path       string
	Name       string
	IsDir      bool
	Symlink    bool
	Executable bool
	Expanded   bool
	Children   []*Node
	Kind       Kind
	Status     string
	Modified   string
	Changes    int
	Ignored    bool
}

// Loaded reports whether the children have been read.
func (n *Node) Loaded() bool { return n.Children != nil }

// BuildNode stats path without following symlinks and classifies it.
func BuildNode(path string, idx gitstatus.Index, ign *ignore.Matcher) (*Node, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	mode := fi.Mode()
	n := &Node{
		Path:       path,
		IsDir:      mode.IsDir(),
		Symlink:    mode&os.ModeSymlink != 0,
		Executable: mode.IsRegular() && mode&0o111 != 0,
		Kind:       Classify(fi.Name(), mode),
		Status:     idx.Code(path),
		Modified:   fi.ModTime().Local().Format(timeLayout),
	}
	n.Name = filepath.Base(path)
	if n.IsDir {
		n.Name = strings.TrimSuffix(n.Name, string(filepath.Separator)) + string(filepath.Separator)
	}
	n.Ignored = ign.IsIgnored(path, n.IsDir)
	n.Changes = ownChanges(n)
	return n, nil
}

// ownChanges is the count a node contributes before its children are known.
func ownChanges(n *Node) int {
	if gitstatus.IsDirty(n.Status) {
		return 1
	}
	return 0
}

// loadChildren replaces n's children with a fresh directory listing.
// Entries that fail to stat are logged and skipped.
func loadChildren(n *Node, idx gitstatus.Index, ign *ignore.Matcher) error {
	if !n.IsDir {
		return nil
	}
	entries, err := os.ReadDir(n.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", n.Path, err)
	}
	children := make([]*Node, 0, len(entries))
	for _, e := range entries {
		child, err := BuildNode(filepath.Join(n.Path, e.Name()), idx, ign)
		if err != nil {
			system.Logger.Warn("skipping entry", "err", err)
			continue
		}
		// git lists an untracked directory once; its contents share the code
		if child.Status == gitstatus.Clean && inherits(n.Status) {
			child.Status = n.Status
			child.Changes = ownChanges(child)
		}
		children = append(children, child)
	}
	sort.SliceStable(children, func(i, j int) bool {
		return strings.ToLower(filepath.Base(children[i].Path)) < strings.ToLower(filepath.Base(children[j].Path))
	})
	n.Children = children
	n.Changes = sumChanges(n)
	return nil
}

func inherits(code string) bool { return code == "??" || code == "!!" }

func sumChanges(n *Node) int {
	total := 0
	for _, c := range n.Children {
		total += c.Changes
	}
	return total
}
