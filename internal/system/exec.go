package system

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// ExecError carries the trimmed stderr of a failed command.
type ExecError struct {
	Name   string
	Stderr string
	Err    error
}

func (e *ExecError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return e.Name + ": " + e.Err.Error()
}

func (e *ExecError) Unwrap() error { return e.Err }

// Run executes name with args and returns stdout.
// A non-zero timeout bounds the call; dir is the working directory when set.
func Run(ctx context.Context, timeout time.Duration, dir, name string, args ...string) ([]byte, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = ctx.Err()
		}
		return stdout.Bytes(), &ExecError{Name: name, Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}
	return stdout.Bytes(), nil
}

// Available reports whether name resolves on PATH (or is an existing path).
func Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
