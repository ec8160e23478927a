// Package ignore answers whether a path under the explored root is excluded
// by the root-level .gitignore.
package ignore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"

	"texplore/internal/system"
)

// Matcher is an immutable compiled predicate. A nil *Matcher ignores nothing.
type Matcher struct {
	root string
	gi   *gitignore.GitIgnore
}

// Load compiles root/.gitignore. A missing or unreadable file yields nil.
func Load(root string) *Matcher {
	path := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			system.Logger.Warn("cannot stat ignore file", "path", path, "err", err)
		}
		return nil
	}
	gi, err := gitignore.CompileIgnoreFile(path)
	if err != nil {
		system.Logger.Warn("cannot compile ignore file", "path", path, "err", err)
		return nil
	}
	return &Matcher{root: filepath.Clean(root), gi: gi}
}

// IsIgnored reports whether path, or any of its ancestors below the root,
// matches a pattern. Paths outside the root are never ignored.
func (m *Matcher) IsIgnored(path string, isDir bool) bool {
	if m == nil || m.gi == nil {
		return false
	}
	rel, err := filepath.Rel(m.root, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	rel = filepath.ToSlash(rel)
	if m.match(rel, isDir) {
		return true
	}
	for dir := parent(rel); dir != ""; dir = parent(dir) {
		if m.match(dir, true) {
			return true
		}
	}
	return false
}

func (m *Matcher) match(rel string, isDir bool) bool {
	if isDir {
		// directory-only patterns ("build/") need the trailing slash
		return m.gi.MatchesPath(rel + "/")
	}
	return m.gi.MatchesPath(rel)
}

func parent(rel string) string {
	i := strings.LastIndexByte(rel, '/')
	if i < 0 {
		return ""
	}
	return rel[:i]
}
