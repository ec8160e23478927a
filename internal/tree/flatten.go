package tree

import "strings"

// VisibleEntry is a read-only snapshot of one drawable row.
// Index is the child-position path from the root; it is only valid for the
// tree state it was computed from.
type VisibleEntry struct {
	Index    []int
	Prefix   string
	Path     string
	Name     string
	Kind     Kind
	Status   string
	Modified string
	Changes  int
	IsDir    bool
	Expanded bool
	Ignored  bool
	// Metrics is the repository summary, set on the root row only.
	Metrics string
}

// IsRoot reports whether the entry is the tree root.
func (e VisibleEntry) IsRoot() bool { return len(e.Index) == 0 }

// Flatten walks the tree pre-order, descending only into expanded, loaded
// directories.
func Flatten(root *Node, metrics string) []VisibleEntry {
	if root == nil {
		return nil
	}
	out := []VisibleEntry{entryOf(root, nil, "")}
	out[0].Metrics = metrics
	if open(root) {
		// the root has no siblings, so its column is blank
		flattenChildren(root, nil, []bool{false}, &out)
	}
	return out
}

func open(n *Node) bool { return n.IsDir && n.Expanded && n.Loaded() }

// bars[i] is true when the ancestor at depth i still has later siblings.
func flattenChildren(n *Node, index []int, bars []bool, out *[]VisibleEntry) {
	for i, c := range n.Children {
		last := i == len(n.Children)-1
		idx := make([]int, len(index)+1)
		copy(idx, index)
		idx[len(index)] = i
		*out = append(*out, entryOf(c, idx, prefix(bars, last)))
		if open(c) {
			next := make([]bool, len(bars)+1)
			copy(next, bars)
			next[len(bars)] = !last
			flattenChildren(c, idx, next, out)
		}
	}
}

func prefix(bars []bool, last bool) string {
	var b strings.Builder
	for _, bar := range bars {
		if bar {
			b.WriteString("│")
		} else {
			b.WriteString(" ")
		}
	}
	if last {
		b.WriteString("└")
	} else {
		b.WriteString("├")
	}
	return b.String()
}

func entryOf(n *Node, index []int, prefix string) VisibleEntry {
	return VisibleEntry{
		Index:    index,
		Prefix:   prefix,
		Path:     n.Path,
		Name:     n.Name,
		Kind:     n.Kind,
		Status:   n.Status,
		Modified: n.Modified,
		Changes:  n.Changes,
		IsDir:    n.IsDir,
		Expanded: n.Expanded,
		Ignored:  n.Ignored,
	}
}
