// Package gitstatus snapshots `git status` for the explored subtree.
package gitstatus

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"texplore/internal/system"
)

// Clean is the code reported for paths absent from the index.
const Clean = "  "

// Index is an immutable snapshot of per-path status codes and tallies.
// The zero value is the empty index used outside a repository.
type Index struct {
	// Codes maps an absolute, cleaned path to its two-letter porcelain code.
	Codes     map[string]string
	Staged    int
	Unstaged  int
	Untracked int
	Ahead     int
	Behind    int
}

// Record is one porcelain entry.
type Record struct {
	X, Y byte
	Path string
	// Orig is the source path of a rename or copy.
	Orig string
}

// Code returns the two-letter code for the record.
func (r Record) Code() string { return string([]byte{r.X, r.Y}) }

// Load queries git for root's repository. Outside a repository, or when git
// fails, the empty index is returned.
func Load(ctx context.Context, root string) Index {
	top, err := system.GitRoot(ctx, root)
	if err != nil {
		system.Logger.Debug("no git repository", "root", root, "err", err)
		return Index{}
	}
	raw, err := system.GitStatusZ(ctx, top)
	if err != nil {
		system.Logger.Warn("git status failed", "root", top, "err", err)
		return Index{}
	}
	idx := FromRecords(top, root, ParsePorcelainZ(raw))
	if line, err := system.GitBranchLine(ctx, top); err == nil {
		idx.Ahead, idx.Behind = ParseAheadBehind(line)
	}
	return idx
}

// FromRecords builds an index from parsed records relative to top. Tallies
// cover the whole repository; only entries under root enter the code map.
func FromRecords(top, root string, recs []Record) Index {
	idx := Index{Codes: make(map[string]string, len(recs))}
	root = filepath.Clean(root)
	for _, r := range recs {
		switch {
		case r.X == '?' && r.Y == '?':
			idx.Untracked++
		default:
			if r.X != ' ' {
				idx.Staged++
			}
			if r.Y != ' ' {
				idx.Unstaged++
			}
		}
		abs := filepath.Join(top, filepath.FromSlash(r.Path))
		if within(root, abs) {
			idx.Codes[abs] = r.Code()
		}
	}
	return idx
}

func within(root, p string) bool {
	if p == root {
		return true
	}
	rel, err := filepath.Rel(root, p)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// ParsePorcelainZ parses `git status --porcelain -z` output. Rename and copy
// records carry a second NUL-terminated path; the destination is kept as Path.
func ParsePorcelainZ(b []byte) []Record {
	recs := make([]Record, 0, 16)
	i := 0
	readPath := func() string {
		start := i
		for i < len(b) && b[i] != 0x00 {
			i++
		}
		p := string(b[start:i])
		if i < len(b) {
			i++
		}
		return p
	}
	for i+2 <= len(b) {
		r := Record{X: b[i], Y: b[i+1]}
		i += 2
		if i < len(b) && b[i] == ' ' {
			i++
		}
		r.Path = readPath()
		if r.X == 'R' || r.X == 'C' || r.Y == 'R' || r.Y == 'C' {
			// -z prints the destination first, then the source
			r.Orig = readPath()
		}
		if r.Path == "" {
			continue
		}
		recs = append(recs, r)
	}
	return recs
}

// ParseAheadBehind reads the `[ahead N, behind M]` segment of a
// `git status -sb` header line.
func ParseAheadBehind(line string) (ahead, behind int) {
	open := strings.IndexByte(line, '[')
	if open < 0 {
		return 0, 0
	}
	end := strings.IndexByte(line[open:], ']')
	if end < 0 {
		return 0, 0
	}
	for _, part := range strings.Split(line[open+1:open+end], ",") {
		fields := strings.Fields(part)
		if len(fields) != 2 {
			continue
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}
		switch fields[0] {
		case "ahead":
			ahead = n
		case "behind":
			behind = n
		}
	}
	return ahead, behind
}

// Code returns the status code for path, or Clean.
func (idx Index) Code(path string) string {
	if c, ok := idx.Codes[filepath.Clean(path)]; ok {
		return c
	}
	return Clean
}

// Paths lists every indexed path in sorted order.
func (idx Index) Paths() []string {
	out := make([]string, 0, len(idx.Codes))
	for p := range idx.Codes {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Metrics renders the aggregate summary, or "" when everything is zero.
func (idx Index) Metrics() string {
	if idx.Ahead == 0 && idx.Behind == 0 && idx.Staged == 0 && idx.Unstaged == 0 && idx.Untracked == 0 {
		return ""
	}
	return fmt.Sprintf("↑%d ↓%d S%d U%d ?%d", idx.Ahead, idx.Behind, idx.Staged, idx.Unstaged, idx.Untracked)
}

// IsDirty reports whether code marks a change.
func IsDirty(code string) bool { return strings.TrimSpace(code) != "" }
