// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package updater

import (
	"time"

	"go.astrophena.name/copyright-updater/gitx"
)

// LastModified maps a current repository path to the timestamp of its
// most recent content change. A missing entry means no content-changing
// history was found for the path, which can also happen when the log
// was truncated by a cutoff.
type LastModified map[string]time.Time

// ComputeLastModified replays commits, given newest first, from the
// oldest one forward and tracks the last content change of every path.
//
// Within one commit renames are propagated before changes are applied:
// a pure rename carries the source's previous timestamp over to the
// destination, while a rename with modification ends up with the
// renaming commit's own date because the change overwrites the
// propagated entry. A rename whose source has no entry (truncated
// history) propagates nothing.
func ComputeLastModified(commits []gitx.Commit) LastModified {
	index := make(LastModified)
	for i := len(commits) - 1; i >= 0; i-- {
		commit := commits[i]
		for _, mv := range commit.Changes.MovedFiles {
			if t, ok := index[mv.Src]; ok {
				index[mv.Dst] = t
			}
		}
		for file := range commit.Changes.ChangedFiles {
			index[file] = commit.AuthorDate
		}
	}
	return index
}
