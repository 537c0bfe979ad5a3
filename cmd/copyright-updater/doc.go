// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Copyright-updater checks and fixes the copyright years in file headers.

It is intended to run as a Git pre-commit hook. Instead of trusting the
wall clock, it derives the correct year for each file from the Git
history: the year of the last commit that changed the file's content,
with staged but uncommitted changes counting as the most recent change.
Renames alone do not move a file's year forward.

Usage:

	copyright-updater [flags] files...

Every file must exist, live inside the repository and be staged. When a
header carries a wrong year, the tool prints a diagnostic, rewrites the
header in place (single years grow into ranges, ranges grow at the top)
and exits with status 128. A run aborts with status 1 on fatal errors
and 2 when invoking git fails.

The tool is configured through a .copyright-updater.yaml (or .yml) file
in the repository root, overridable with the -config flag:

  - pattern: the header template with a {years} placeholder, for
    example "# (c) {years}, developers". Required.
  - ignore_commits_before: an optional timestamp; older history is not
    loaded, and files whose last change predates it are not checked.
  - license_file: the repository's license file (default LICENSE),
    which is expected to carry the year of the newest commit in the
    whole repository.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/copyright-updater/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
