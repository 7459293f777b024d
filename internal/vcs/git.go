// Package vcs talks to the git binary on behalf of the pre-commit hook.
package vcs

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes git with args in dir and returns its stdout.
type Runner func(ctx context.Context, dir string, args ...string) ([]byte, error)

// Git runs git commands in a working tree.
type Git struct {
	Dir string
	run Runner
}

// New returns a Git bound to dir using the git binary on PATH.
func New(dir string) *Git {
	return &Git{Dir: dir, run: execGit}
}

// NewWithRunner returns a Git that delegates to run.
func NewWithRunner(dir string, run Runner) *Git {
	return &Git{Dir: dir, run: run}
}

// StagedFiles lists paths staged for commit, relative to the repository
// root. Staged deletions are not listed.
func (g *Git) StagedFiles(ctx context.Context) ([]string, error) {
	out, err := g.run(ctx, g.Dir, "diff", "--cached", "--name-only", "--diff-filter=ACMR")
	if err != nil {
		return nil, fmt.Errorf("list staged files: %w", err)
	}
	var files []string
	for _, line := range strings.Split(string(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}

// Add stages path.
func (g *Git) Add(ctx context.Context, path string) error {
	if _, err := g.run(ctx, g.Dir, "add", "--", path); err != nil {
		return fmt.Errorf("git add %s: %w", path, err)
	}
	return nil
}

// TopLevel returns the root of the working tree containing Dir.
func (g *Git) TopLevel(ctx context.Context) (string, error) {
	out, err := g.run(ctx, g.Dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("find repository root: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

func execGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return out, fmt.Errorf("%w: %s", err, msg)
		}
		return out, err
	}
	return out, nil
}
