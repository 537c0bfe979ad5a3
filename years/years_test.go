// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package years

import (
	"errors"
	"testing"

	"go.astrophena.name/copyright-updater/testutil"
)

func mustCompile(t *testing.T, template string) *Pattern {
	t.Helper()
	p, err := Compile(template)
	if err != nil {
		t.Fatalf("Compile(%q): %v", template, err)
	}
	return p
}

func TestCompile(t *testing.T) {
	t.Parallel()

	t.Run("missing placeholder", func(t *testing.T) {
		if _, err := Compile("# (c) 2024, developers"); err == nil {
			t.Fatal("expected an error, got nil")
		}
	})

	t.Run("literal text is escaped", func(t *testing.T) {
		p := mustCompile(t, "(c) {years}.")
		// The dot must match literally, not any character.
		if _, ok := p.Extract("(c) 2024x"); ok {
			t.Error("unescaped suffix matched")
		}
		_, ok := p.Extract("(c) 2024.")
		testutil.AssertEqual(t, ok, true)
	})
}

func TestExtract(t *testing.T) {
	t.Parallel()

	p := mustCompile(t, "# Test (c) {years}, developers")

	cases := map[string]struct {
		content string
		want    Years
		ok      bool
	}{
		"no header":        {content: "abc", ok: false},
		"single year":      {content: "# Test (c) 2023, developers\nabc", want: Single("2023"), ok: true},
		"year range":       {content: "# Test (c) 2021-2023, developers", want: Range("2021", "2023"), ok: true},
		"spaces in range":  {content: "# Test (c) 2021 - 2023, developers", want: Range("2021", "2023"), ok: true},
		"padded years":     {content: "# Test (c)  2023 , developers", want: Single("2023"), ok: true},
		"not at the start": {content: "package main\n\n# Test (c) 2020, developers\n", want: Single("2020"), ok: true},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, ok := p.Extract(tc.content)
			testutil.AssertEqual(t, ok, tc.ok)
			if ok {
				testutil.AssertEqual(t, got, tc.want)
			}
		})
	}
}

func TestReplace(t *testing.T) {
	t.Parallel()

	p := mustCompile(t, "# Test (c) {years}, developers")

	cases := map[string]struct {
		content string
		years   Years
		want    string
	}{
		"single to single": {
			content: "# Test (c) 2022, developers\nabc",
			years:   Single("2023"),
			want:    "# Test (c) 2023, developers\nabc",
		},
		"single to range": {
			content: "# Test (c) 2022, developers\nabc",
			years:   Range("2022", "2024"),
			want:    "# Test (c) 2022-2024, developers\nabc",
		},
		"range to range": {
			content: "# Test (c) 2021-2022, developers\nabc",
			years:   Range("2021", "2024"),
			want:    "# Test (c) 2021-2024, developers\nabc",
		},
		"range grows both spans": {
			content: "# Test (c) 99-101, developers",
			years:   Range("1999", "2101"),
			want:    "# Test (c) 1999-2101, developers",
		},
		"range collapses to single": {
			content: "# Test (c) 2024-2024, developers\nabc",
			years:   Single("2024"),
			want:    "# Test (c) 2024, developers\nabc",
		},
		"range with spaces collapses": {
			content: "# Test (c) 2024 - 2024, developers",
			years:   Single("2024"),
			want:    "# Test (c) 2024, developers",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := p.Replace(tc.content, tc.years)
			testutil.AssertEqual(t, err, nil)
			testutil.AssertEqual(t, got, tc.want)
		})
	}

	t.Run("no match is a logic error", func(t *testing.T) {
		_, err := p.Replace("abc", Single("2024"))
		if !errors.Is(err, ErrNoMatch) {
			t.Fatalf("want ErrNoMatch, got %v", err)
		}
	})

	t.Run("round trip is a no-op", func(t *testing.T) {
		const content = "# Test (c) 2023, developers\nabc"
		got, err := p.Replace(content, Single("2023"))
		testutil.AssertEqual(t, err, nil)
		testutil.AssertEqual(t, got, content)
	})
}

func TestYearsString(t *testing.T) {
	t.Parallel()

	testutil.AssertEqual(t, Single("2024").String(), "2024")
	testutil.AssertEqual(t, Range("2021", "2024").String(), "2021-2024")
	testutil.AssertEqual(t, Single("2024").IsRange(), false)
	testutil.AssertEqual(t, Range("2021", "2024").IsRange(), true)
}
