// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package gitx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.astrophena.name/copyright-updater/syncx"
)

// ErrNotRepository is returned by [Open] when the directory does not
// belong to a Git working tree.
var ErrNotRepository = errors.New("not a git repository")

// CommandError describes a failed invocation of the git binary.
type CommandError struct {
	// Args are the arguments git was invoked with.
	Args []string
	// ReturnCode is the exit status of git, or 0 when it failed to start.
	ReturnCode int
	// Stderr is the captured standard error output.
	Stderr string
	// Err is the underlying execution error.
	Err error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "git %s failed", strings.Join(e.Args, " "))
	if e.ReturnCode != 0 {
		fmt.Fprintf(&sb, " (exit code %d)", e.ReturnCode)
	}
	if e.Stderr != "" {
		fmt.Fprintf(&sb, ": %s", strings.TrimSpace(e.Stderr))
	}
	return sb.String()
}

// Unwrap returns the underlying execution error.
func (e *CommandError) Unwrap() error { return e.Err }

// gitPath memoizes the location of the git binary.
var gitPath syncx.Lazy[string]

// Repository is a handle to a Git working tree. All paths returned by
// its methods are relative to Root.
type Repository struct {
	// Root is the absolute path of the working tree's top-level directory.
	Root string
}

// Open locates the repository containing dir.
func Open(ctx context.Context, dir string) (*Repository, error) {
	root, err := runGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotRepository, dir)
	}
	return &Repository{Root: root}, nil
}

// run executes a git subcommand in the repository root and returns its
// standard output with a single trailing newline removed.
func (r *Repository) run(ctx context.Context, args ...string) (string, error) {
	return runGit(ctx, r.Root, args...)
}

// fails reports whether a git subcommand exits with a non-zero status.
func (r *Repository) fails(ctx context.Context, args ...string) bool {
	_, err := r.run(ctx, args...)
	return err != nil
}

func runGit(ctx context.Context, dir string, args ...string) (string, error) {
	exe, err := gitPath.GetErr(func() (string, error) {
		return exec.LookPath("git")
	})
	if err != nil {
		return "", fmt.Errorf("gitx: %w", err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, exe, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		cmdErr := &CommandError{
			Args:   args,
			Stderr: stderr.String(),
			Err:    err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr.ReturnCode = exitErr.ExitCode()
		}
		return "", cmdErr
	}
	return strings.TrimSuffix(stdout.String(), "\n"), nil
}

// Commits returns the commit history, newest first. When since is
// non-zero the history is truncated to commits authored at or after it.
// A repository without any commits yields an empty history.
func (r *Repository) Commits(ctx context.Context, since time.Time) ([]Commit, error) {
	if r.fails(ctx, "rev-parse", "HEAD") {
		// No commits yet.
		return nil, nil
	}
	args := []string{"log", "--name-status", "--pretty=format:%aI"}
	if !since.IsZero() {
		args = append(args, "--since", since.Format(time.RFC3339))
	}
	out, err := r.run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return ParseLog(out)
}

// StagedChangeSet returns the change set of the staged (cached) but not
// yet committed changes.
func (r *Repository) StagedChangeSet(ctx context.Context) (ChangeSet, error) {
	out, err := r.run(ctx, "diff", "--name-status", "--cached")
	if err != nil {
		return ChangeSet{}, err
	}
	return ParseChangeSet(out), nil
}

// StagedFiles returns the set of paths present in the index.
func (r *Repository) StagedFiles(ctx context.Context) (map[string]bool, error) {
	out, err := r.run(ctx, "ls-files", "--cached")
	if err != nil {
		return nil, err
	}
	files := make(map[string]bool)
	for line := range strings.Lines(out) {
		line = strings.TrimSuffix(line, "\n")
		if line != "" {
			files[line] = true
		}
	}
	return files, nil
}
