// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package updater

import (
	"fmt"

	"go.astrophena.name/copyright-updater/years"
)

// Diagnostics reported for files with a wrong or missing header.
const (
	diagNoHeader           = "no copyright comment found"
	diagRangeForSingleYear = "range syntax is used for a single year"
)

func diagWrongYear(want, got string) string {
	return fmt.Sprintf("expected year %s, actual is %s", want, got)
}

// Update checks the copyright years in content against the year of the
// file's last change and returns a diagnostic together with the
// corrected content. An empty diagnostic means the header is correct
// (or absent and not required); the content is returned unchanged then.
//
// A correct range is recognized by its upper bound alone, since a range
// only ever grows at the top; a correct single year must equal the
// expected year exactly. A degenerate range (both bounds equal) is
// always reported and normalized. Corrections extend the header to
// currentYear, so re-running Update on the result yields no diagnostic.
func Update(content, lastYear string, pattern *years.Pattern, currentYear string, required bool) (diag, newContent string, err error) {
	got, ok := pattern.Extract(content)
	if !ok {
		if required {
			return diagNoHeader, content, nil
		}
		return "", content, nil
	}

	if got.IsRange() {
		if got.From() == got.To() {
			if got.From() == currentYear {
				newContent, err = pattern.Replace(content, years.Single(currentYear))
			} else {
				newContent, err = pattern.Replace(content, years.Range(got.From(), currentYear))
			}
			return diagRangeForSingleYear, newContent, err
		}
		if got.To() == lastYear {
			return "", content, nil
		}
		newContent, err = pattern.Replace(content, years.Range(got.From(), currentYear))
		return diagWrongYear(lastYear, got.To()), newContent, err
	}

	if got.To() == lastYear {
		return "", content, nil
	}
	newContent, err = pattern.Replace(content, years.Range(got.To(), currentYear))
	return diagWrongYear(lastYear, got.To()), newContent, err
}
