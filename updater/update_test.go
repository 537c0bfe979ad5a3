// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package updater

import (
	"testing"

	"go.astrophena.name/copyright-updater/testutil"
	"go.astrophena.name/copyright-updater/years"
)

func testPattern(t *testing.T) *years.Pattern {
	t.Helper()
	p, err := years.Compile("# Test (c) {years}, developers")
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	// lastYear is 2023, currentYear is 2024 in every case.
	cases := map[string]struct {
		content  string
		want     string
		wantOK   bool
		required bool
	}{
		"no header": {
			content: "abc",
			want:    "abc",
			wantOK:  true,
		},
		"no header but required": {
			content:  "abc",
			want:     "abc",
			wantOK:   false,
			required: true,
		},
		"correct single year": {
			content: "# Test (c) 2023, developers\nabc",
			want:    "# Test (c) 2023, developers\nabc",
			wantOK:  true,
		},
		"outdated single year grows into a range": {
			content: "# Test (c) 2022, developers\nabc",
			want:    "# Test (c) 2022-2024, developers\nabc",
			wantOK:  false,
		},
		"correct range upper bound": {
			content: "# Test (c) 2022-2023, developers\nabc",
			want:    "# Test (c) 2022-2023, developers\nabc",
			wantOK:  true,
		},
		"outdated range grows at the top": {
			content: "# Test (c) 2021-2022, developers\nabc",
			want:    "# Test (c) 2021-2024, developers\nabc",
			wantOK:  false,
		},
		"degenerate current-year range collapses": {
			content: "# Test (c) 2024-2024, developers\nabc",
			want:    "# Test (c) 2024, developers\nabc",
			wantOK:  false,
		},
		"degenerate old range becomes a real range": {
			content: "# Test (c) 2023-2023, developers\nabc",
			want:    "# Test (c) 2023-2024, developers\nabc",
			wantOK:  false,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			diag, got, err := Update(tc.content, "2023", testPattern(t), "2024", tc.required)
			testutil.AssertEqual(t, err, nil)
			testutil.AssertEqual(t, diag == "", tc.wantOK)
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}

func TestUpdateDiagnostics(t *testing.T) {
	t.Parallel()

	p := testPattern(t)

	diag, _, err := Update("abc", "2023", p, "2024", true)
	testutil.AssertEqual(t, err, nil)
	testutil.AssertEqual(t, diag, "no copyright comment found")

	diag, _, err = Update("# Test (c) 2023-2023, developers", "2023", p, "2024", false)
	testutil.AssertEqual(t, err, nil)
	testutil.AssertEqual(t, diag, "range syntax is used for a single year")

	diag, _, err = Update("# Test (c) 2021-2022, developers", "2023", p, "2024", false)
	testutil.AssertEqual(t, err, nil)
	testutil.AssertEqual(t, diag, "expected year 2023, actual is 2022")
}

// A corrected header must be stable: checking it again with the same
// years yields no further diagnostic.
func TestUpdateIdempotent(t *testing.T) {
	t.Parallel()

	p := testPattern(t)

	contents := []string{
		"# Test (c) 2022, developers\nabc",
		"# Test (c) 2021-2022, developers\nabc",
		"# Test (c) 2024-2024, developers\nabc",
		"# Test (c) 2023-2023, developers\nabc",
	}
	for _, content := range contents {
		diag, fixed, err := Update(content, "2024", p, "2024", false)
		testutil.AssertEqual(t, err, nil)
		if diag == "" {
			continue
		}
		diag, again, err := Update(fixed, "2024", p, "2024", false)
		testutil.AssertEqual(t, err, nil)
		testutil.AssertEqual(t, diag, "")
		testutil.AssertEqual(t, again, fixed)
	}
}
