// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package gitx

import (
	"fmt"
	"strings"
	"time"
)

// ParseLog parses the output of
//
//	git log --name-status --pretty=format:%aI
//
// into commits, newest first.
//
// Each block separated by a blank line starts with one or more author
// timestamps followed by the name-status records of the last one. A block
// contains several timestamps when commits without file changes (merge or
// empty commits) precede a regular commit; those produce commits with an
// empty change set.
func ParseLog(out string) ([]Commit, error) {
	var commits []Commit
	for _, block := range strings.Split(out, "\n\n") {
		if block == "" {
			// Possible on empty logs.
			continue
		}
		var lines []string
		for _, line := range strings.Split(block, "\n") {
			if line != "" {
				lines = append(lines, line)
			}
		}
		// Leading lines without a tab are timestamps; all but the last
		// belong to commits that changed no files.
		n := 0
		for n < len(lines) && !strings.Contains(lines[n], "\t") {
			n++
		}
		if n == 0 {
			return nil, fmt.Errorf("gitx: malformed log block %q: no timestamp", block)
		}
		for _, ts := range lines[:n-1] {
			date, err := parseAuthorDate(ts)
			if err != nil {
				return nil, err
			}
			commits = append(commits, Commit{AuthorDate: date, Changes: ParseChangeSet("")})
		}
		date, err := parseAuthorDate(lines[n-1])
		if err != nil {
			return nil, err
		}
		commits = append(commits, Commit{
			AuthorDate: date,
			Changes:    ParseChangeSet(strings.Join(lines[n:], "\n")),
		})
	}
	return commits, nil
}

func parseAuthorDate(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("gitx: bad author date %q: %w", s, err)
	}
	return t, nil
}
