package system

import (
	"bufio"
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"time"
)

// per-call bound so a wedged git never freezes the explorer
const gitTimeout = 2 * time.Second

// GitRoot returns the repository top-level directory for dir, symlinks resolved.
func GitRoot(ctx context.Context, dir string) (string, error) {
	out, err := Run(ctx, gitTimeout, "", "git", "-C", dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	top := strings.TrimSpace(string(out))
	if resolved, err := filepath.EvalSymlinks(top); err == nil {
		top = resolved
	}
	return top, nil
}

// GitStatusZ returns the raw `git status --porcelain -z` output for top.
func GitStatusZ(ctx context.Context, top string) ([]byte, error) {
	return Run(ctx, gitTimeout, "", "git", "-C", top, "status", "--porcelain", "-z")
}

// GitBranchLine returns the `## branch...upstream [ahead N]` header line.
func GitBranchLine(ctx context.Context, top string) (string, error) {
	out, err := Run(ctx, gitTimeout, "", "git", "-C", top, "status", "-sb")
	if err != nil {
		return "", err
	}
	sc := bufio.NewScanner(bytes.NewReader(out))
	if sc.Scan() {
		return sc.Text(), nil
	}
	return "", nil
}
