// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package updater checks and fixes the copyright years in file headers,
// deriving the correct year for each file from its Git history instead
// of the wall clock.
package updater

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"go.astrophena.name/copyright-updater/cli"
	"go.astrophena.name/copyright-updater/gitx"
	"go.astrophena.name/copyright-updater/logger"

	"github.com/lmittmann/tint"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Exit status used when at least one file had a wrong or missing
// header; pre-commit frameworks treat any non-zero status as failure,
// this one is distinct from fatal errors (1) and git failures (2).
const outdatedExitCode = 128

var (
	errNoFiles     = errors.New("no files to process")
	errNotExists   = errors.New("file does not exist")
	errNotRegular  = errors.New("file is not a regular file")
	errNotStaged   = errors.New("file is not staged")
	errOutsideRepo = errors.New("outside of the repository")
	errOutdated    = errors.New("some files have outdated copyright headers")
)

// App is the copyright updater command-line application.
type App struct {
	configPath string
	required   bool
	dryRun     bool
	verbose    bool

	// now is the reference timestamp; tests set it, otherwise the
	// current time is used. Must be zone-aware.
	now time.Time
}

// Flags implements the [cli.HasFlags] interface.
func (a *App) Flags(f *flag.FlagSet) {
	f.StringVar(&a.configPath, "config", "", "Path to the configuration `file`.")
	f.BoolVar(&a.required, "required", false, "Treat a missing copyright header as an error.")
	f.BoolVar(&a.dryRun, "dry-run", false, "Report problems without rewriting files.")
	f.BoolVar(&a.verbose, "verbose", false, "Enable verbose logging.")
}

// Run implements the [cli.App] interface.
//
// It checks every file passed as an argument and rewrites files with
// wrong headers unless -dry-run is set. The returned error carries exit
// status 128 when any header was wrong and 2 when a git invocation
// failed.
func (a *App) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if a.verbose {
		ctx = logger.Put(ctx, slog.New(tint.NewHandler(env.Stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
			NoColor:    !stderrIsTerminal(env),
		})))
	}

	now := a.now
	if now.IsZero() {
		now = time.Now()
	}

	if len(env.Args) == 0 {
		return errNoFiles
	}

	repo, err := gitx.Open(ctx, filepath.Dir(env.Args[0]))
	if err != nil {
		return fmt.Errorf("%s: %w", env.Args[0], errOutsideRepo)
	}
	root, err := filepath.EvalSymlinks(repo.Root)
	if err != nil {
		return err
	}
	logger.Debug(ctx, "repository root", slog.String("path", root))

	staged, err := repo.StagedFiles(ctx)
	if err != nil {
		return gitFailed(err)
	}
	files, err := resolveFiles(env.Args, root, staged)
	if err != nil {
		return err
	}

	configPath, err := findConfig(a.configPath, root)
	if err != nil {
		return err
	}
	logger.Debug(ctx, "loading config", slog.String("path", configPath))
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("invalid configuration %s: %w", configPath, err)
	}

	// Scan the commit history and treat staged changes as a synthetic
	// most recent commit.
	commits, err := repo.Commits(ctx, cfg.IgnoreCommitsBefore)
	if err != nil {
		return gitFailed(err)
	}
	stagedChanges, err := repo.StagedChangeSet(ctx)
	if err != nil {
		return gitFailed(err)
	}
	if !stagedChanges.Empty() {
		commits = append([]gitx.Commit{{AuthorDate: now, Changes: stagedChanges}}, commits...)
	}
	if len(commits) == 0 {
		logger.Debug(ctx, "no staged changes and no commits")
		return nil
	}

	lastRepoModification := commits[0].AuthorDate
	lastModified := ComputeLastModified(commits)
	currentYear := strconv.Itoa(now.Year())

	success := true
	for _, rel := range files {
		lastChange, ok := lastModified[rel]
		if rel == cfg.LicenseFile {
			// The license file covers the whole repository, so it is
			// expected to carry the year of the newest commit.
			lastChange, ok = lastRepoModification, true
			logger.Debug(ctx, "license file",
				slog.String("file", rel),
				slog.Time("last_repository_modification", lastChange))
		} else if stagedChanges.ChangedFiles[rel] {
			logger.Debug(ctx, "file has staged changes", slog.String("file", rel))
		} else if ok {
			logger.Debug(ctx, "file was committed",
				slog.String("file", rel),
				slog.Time("at", lastChange))
		}

		// Skip files whose history is unknown or too old to care about.
		if !ok {
			logger.Debug(ctx, "ignoring file, last modification time is unknown", slog.String("file", rel))
			continue
		}
		if !cfg.IgnoreCommitsBefore.IsZero() && lastChange.Before(cfg.IgnoreCommitsBefore) {
			logger.Debug(ctx, "ignoring file, too old", slog.String("file", rel))
			continue
		}

		full := filepath.Join(root, filepath.FromSlash(rel))
		b, err := os.ReadFile(full)
		if err != nil {
			return err
		}
		if !utf8.Valid(b) {
			logger.Debug(ctx, "not a valid utf-8 text file, skipping", slog.String("file", rel))
			continue
		}
		content := string(b)

		diag, newContent, err := Update(content, strconv.Itoa(lastChange.Year()), cfg.Pattern, currentYear, a.required)
		if err != nil {
			return err
		}
		if diag == "" {
			logDiagnosticFree(ctx, cfg, rel, content, lastChange)
			continue
		}

		success = false
		fmt.Fprintf(env.Stdout, "File '%s': %s\n", rel, diag)
		if a.dryRun {
			logger.Debug(ctx, "proposed rewrite",
				slog.String("file", rel),
				slog.String("patch", patchText(content, newContent)))
			continue
		}
		if err := rewrite(full, newContent); err != nil {
			return err
		}
	}

	if !success {
		return &cli.ExitError{Code: outdatedExitCode, Err: errOutdated}
	}
	return nil
}

func logDiagnosticFree(ctx context.Context, cfg *Config, rel, content string, lastChange time.Time) {
	if _, ok := cfg.Pattern.Extract(content); !ok {
		logger.Debug(ctx, "file ok, no header", slog.String("file", rel))
		return
	}
	logger.Debug(ctx, "file ok",
		slog.String("file", rel),
		slog.String("year", strconv.Itoa(lastChange.Year())))
}

// rewrite replaces the file's content, keeping its permission bits.
func rewrite(path, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), info.Mode().Perm())
}

// patchText renders the difference between two versions of a file as a
// patch, for auditing dry runs.
func patchText(before, after string) string {
	dmp := diffmatchpatch.New()
	return dmp.PatchToText(dmp.PatchMake(before, after))
}

// resolveFiles checks that every argument is an existing regular file
// inside the repository and present in the index, and converts it to a
// repository-relative slash-separated path.
func resolveFiles(args []string, root string, staged map[string]bool) ([]string, error) {
	files := make([]string, 0, len(args))
	for _, arg := range args {
		info, err := os.Stat(arg)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", arg, errNotExists)
		}
		if err != nil {
			return nil, err
		}
		if !info.Mode().IsRegular() {
			return nil, fmt.Errorf("%s: %w", arg, errNotRegular)
		}

		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, err
		}
		resolved, err := filepath.EvalSymlinks(abs)
		if err != nil {
			return nil, err
		}
		rel, err := filepath.Rel(root, resolved)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return nil, fmt.Errorf("%s: %w", arg, errOutsideRepo)
		}
		rel = filepath.ToSlash(rel)

		if !staged[rel] {
			return nil, fmt.Errorf("%s: %w", rel, errNotStaged)
		}
		files = append(files, rel)
	}
	return files, nil
}

// gitFailed marks a git invocation failure with its dedicated exit
// status.
func gitFailed(err error) error {
	var ce *gitx.CommandError
	if errors.As(err, &ce) {
		return &cli.ExitError{Code: 2, Err: err}
	}
	return err
}

func stderrIsTerminal(env *cli.Env) bool {
	f, ok := env.Stderr.(*os.File)
	return ok && cli.IsTerminal(int(f.Fd()))
}
