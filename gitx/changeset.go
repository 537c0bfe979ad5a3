// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package gitx models the data this tool consumes from Git: per-commit
// change sets, commit timestamps, and the plumbing that obtains them by
// running the git binary.
package gitx

import (
	"strings"
	"time"
)

// pureRename is the status code Git assigns to a rename whose content
// is byte-identical to the source.
const pureRename = "R100"

// Move records a file rename from Src to Dst.
type Move struct {
	Src, Dst string
}

// ChangeSet describes the file changes of a single commit or of the
// staged snapshot, parsed from `git diff --name-status` style records.
//
// A ChangeSet is constructed once and never modified afterwards.
type ChangeSet struct {
	// ChangedFiles holds paths whose content changed. A pure rename is
	// not a content change; a rename with modification is.
	ChangedFiles map[string]bool
	// MovedFiles lists renames in record order, pure or not.
	MovedFiles []Move
	// TouchedFiles holds every destination path, a superset of
	// ChangedFiles.
	TouchedFiles map[string]bool
}

// ParseChangeSet parses tab-separated name-status records, one per line.
// Each record is a status code, an optional source path (renames and
// copies), and a destination path. Blank lines are ignored.
func ParseChangeSet(out string) ChangeSet {
	cs := ChangeSet{
		ChangedFiles: make(map[string]bool),
		TouchedFiles: make(map[string]bool),
	}
	for line := range strings.Lines(out) {
		line = strings.TrimSuffix(line, "\n")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		code, dst := fields[0], fields[len(fields)-1]
		cs.TouchedFiles[dst] = true
		if strings.HasPrefix(code, "R") && len(fields) > 2 {
			// File moved, possibly with changes.
			if code != pureRename {
				cs.ChangedFiles[dst] = true
			}
			cs.MovedFiles = append(cs.MovedFiles, Move{Src: fields[1], Dst: dst})
			continue
		}
		// File changed, added, copied or deleted.
		cs.ChangedFiles[dst] = true
	}
	return cs
}

// Empty reports whether the change set contains no records at all.
// Every record carries a destination path, so an empty TouchedFiles set
// means no records were parsed.
func (cs ChangeSet) Empty() bool {
	return len(cs.TouchedFiles) == 0
}

// Commit is a single history entry: an author timestamp (always
// zone-aware) and the change set of the commit. The change set may be
// empty, for example for merge commits with no net file changes.
type Commit struct {
	AuthorDate time.Time
	Changes    ChangeSet
}
