// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package updater

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.astrophena.name/copyright-updater/testutil"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	t.Run("minimal", func(t *testing.T) {
		cfg, err := parseConfig([]byte("pattern: '# (c) {years}, developers'\n"))
		testutil.AssertEqual(t, err, nil)
		testutil.AssertEqual(t, cfg.LicenseFile, "LICENSE")
		testutil.AssertEqual(t, cfg.IgnoreCommitsBefore.IsZero(), true)
		_, ok := cfg.Pattern.Extract("# (c) 2024, developers")
		testutil.AssertEqual(t, ok, true)
	})

	t.Run("full", func(t *testing.T) {
		cfg, err := parseConfig([]byte(strings.Join([]string{
			"pattern: '# (c) {years}, developers'",
			"ignore_commits_before: 2020-01-01T00:00:00Z",
			"license_file: COPYING",
		}, "\n")))
		testutil.AssertEqual(t, err, nil)
		testutil.AssertEqual(t, cfg.LicenseFile, "COPYING")
		testutil.AssertEqual(t, cfg.IgnoreCommitsBefore, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	})

	t.Run("explicit null cutoff", func(t *testing.T) {
		cfg, err := parseConfig([]byte("pattern: '# (c) {years}'\nignore_commits_before: null\n"))
		testutil.AssertEqual(t, err, nil)
		testutil.AssertEqual(t, cfg.IgnoreCommitsBefore.IsZero(), true)
	})

	t.Run("missing pattern", func(t *testing.T) {
		_, err := parseConfig([]byte("license_file: COPYING\n"))
		if err == nil || !strings.Contains(err.Error(), "pattern") {
			t.Fatalf("want a missing pattern error, got %v", err)
		}
	})

	t.Run("pattern without placeholder", func(t *testing.T) {
		_, err := parseConfig([]byte("pattern: '# (c) 2024'\n"))
		if err == nil || !strings.Contains(err.Error(), "{years}") {
			t.Fatalf("want a placeholder error, got %v", err)
		}
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		_, err := parseConfig([]byte("pattern: '# (c) {years}'\nptarent: oops\n"))
		if err == nil {
			t.Fatal("expected an error, got nil")
		}
	})
}

func TestFindConfig(t *testing.T) {
	t.Parallel()

	t.Run("explicit path wins", func(t *testing.T) {
		got, err := findConfig("custom.yaml", t.TempDir())
		testutil.AssertEqual(t, err, nil)
		testutil.AssertEqual(t, got, "custom.yaml")
	})

	t.Run("default names", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, ".copyright-updater.yml")
		if err := os.WriteFile(path, []byte("pattern: '{years}'\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		got, err := findConfig("", root)
		testutil.AssertEqual(t, err, nil)
		testutil.AssertEqual(t, got, path)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := findConfig("", t.TempDir())
		if err == nil || !strings.Contains(err.Error(), "no configuration file found") {
			t.Fatalf("want a no config error, got %v", err)
		}
	})
}
