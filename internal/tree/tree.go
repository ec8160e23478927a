package tree

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"texplore/internal/gitstatus"
	"texplore/internal/ignore"
)

// ErrRootRemoval is returned when asked to remove the tree root.
var ErrRootRemoval = errors.New("cannot delete root")

// StatusFunc produces the status index for a root directory.
type StatusFunc func(ctx context.Context, root string) gitstatus.Index

// Tree is the explorer's single owner of the node hierarchy. Nodes are
// addressed by index paths (child positions from the root) that are only
// valid until the next mutation.
type Tree struct {
	RootPath string
	Root     *Node
	Index    gitstatus.Index
	Ignore   *ignore.Matcher

	status StatusFunc
}

// New builds the tree for root and performs the initial resync.
// A nil status func queries git.
func New(ctx context.Context, root string, status StatusFunc) (*Tree, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", root, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	if status == nil {
		status = gitstatus.Load
	}
	t := &Tree{RootPath: abs, status: status}
	if err := t.Resync(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Resync rebuilds the whole tree from disk with a fresh status index and
// ignore matcher, expands the root and every path with pending changes.
// On failure the previous tree is kept.
func (t *Tree) Resync(ctx context.Context) error {
	idx := t.status(ctx, t.RootPath)
	ign := ignore.Load(t.RootPath)
	root, err := BuildNode(t.RootPath, idx, ign)
	if err != nil {
		return err
	}
	if err := loadChildren(root, idx, ign); err != nil {
		return err
	}
	root.Expanded = true
	t.Root, t.Index, t.Ignore = root, idx, ign
	t.AutoExpand()
	return nil
}

// Visible flattens the current tree.
func (t *Tree) Visible() []VisibleEntry {
	return Flatten(t.Root, t.Index.Metrics())
}

// chain returns the nodes from the root down to index, or nil when the
// path does not resolve.
func (t *Tree) chain(index []int) []*Node {
	if t.Root == nil {
		return nil
	}
	out := make([]*Node, 0, len(index)+1)
	n := t.Root
	out = append(out, n)
	for _, i := range index {
		if i < 0 || i >= len(n.Children) {
			return nil
		}
		n = n.Children[i]
		out = append(out, n)
	}
	return out
}

// NodeAt resolves an index path.
func (t *Tree) NodeAt(index []int) *Node {
	c := t.chain(index)
	if c == nil {
		return nil
	}
	return c[len(c)-1]
}

// recount refreshes aggregate counts bottom-up along a root-to-node chain.
func recount(chain []*Node) {
	for i := len(chain) - 1; i >= 0; i-- {
		if n := chain[i]; n.IsDir && n.Loaded() {
			n.Changes = sumChanges(n)
		}
	}
}

// Expand marks the node at index expanded, loading its children first if
// needed.
func (t *Tree) Expand(index []int) error {
	c := t.chain(index)
	if c == nil {
		return fmt.Errorf("no entry at %v", index)
	}
	if err := t.expand(c[len(c)-1]); err != nil {
		return err
	}
	recount(c)
	return nil
}

func (t *Tree) expand(n *Node) error {
	if !n.IsDir {
		return nil
	}
	if !n.Loaded() {
		if err := loadChildren(n, t.Index, t.Ignore); err != nil {
			return err
		}
	}
	n.Expanded = true
	return nil
}

// Collapse clears the expanded flag; children stay loaded.
func (t *Tree) Collapse(index []int) {
	if n := t.NodeAt(index); n != nil && n.IsDir {
		n.Expanded = false
	}
}

// Toggle flips a directory between expanded and collapsed.
func (t *Tree) Toggle(index []int) error {
	n := t.NodeAt(index)
	if n == nil || !n.IsDir {
		return nil
	}
	if n.Expanded {
		n.Expanded = false
		return nil
	}
	return t.Expand(index)
}

// LoadChildren re-reads the directory at index, replacing its children.
func (t *Tree) LoadChildren(index []int) error {
	c := t.chain(index)
	if c == nil {
		return fmt.Errorf("no entry at %v", index)
	}
	if err := loadChildren(c[len(c)-1], t.Index, t.Ignore); err != nil {
		return err
	}
	recount(c)
	return nil
}

// Remove detaches the node at index from its parent and fixes every
// ancestor's count.
func (t *Tree) Remove(index []int) (*Node, error) {
	if len(index) == 0 {
		return nil, ErrRootRemoval
	}
	c := t.chain(index)
	if c == nil {
		return nil, fmt.Errorf("no entry at %v", index)
	}
	parent := c[len(c)-2]
	pos := index[len(index)-1]
	removed := parent.Children[pos]
	kids := make([]*Node, 0, len(parent.Children)-1)
	kids = append(kids, parent.Children[:pos]...)
	parent.Children = append(kids, parent.Children[pos+1:]...)
	recount(c[:len(c)-1])
	return removed, nil
}
