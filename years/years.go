// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package years locates and rewrites copyright years inside free text.
//
// A [Pattern] is compiled from a template like "© {years} Example Corp";
// the {years} placeholder matches either a single year or an inclusive
// dash-separated range, and the surrounding text must match literally.
package years

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Placeholder marks the position of the years inside a pattern template.
const Placeholder = "{years}"

// ErrNoMatch is returned by [Pattern.Replace] when the text contains no
// copyright years. Callers must locate the years with [Pattern.Extract]
// first; hitting this error indicates misuse.
var ErrNoMatch = errors.New("no copyright years in content")

const (
	reSingleYear = `(?P<year>\d+)`
	reYearRange  = `(?P<from>\d+)\s*-\s*(?P<to>\d+)`
	// Range first: a lone \d+ would otherwise match the "from" half of a
	// range and stop.
	reYearOrRange = `\s*(?:` + reYearRange + `|` + reSingleYear + `)\s*`
)

// Years is either a single year or an inclusive year range.
type Years struct {
	from string // empty for a single year
	to   string
}

// Single returns a single-year value.
func Single(year string) Years { return Years{to: year} }

// Range returns an inclusive year range.
func Range(from, to string) Years { return Years{from: from, to: to} }

// IsRange reports whether y is a range rather than a single year.
func (y Years) IsRange() bool { return y.from != "" }

// From returns the lower bound of a range, or the empty string for a
// single year.
func (y Years) From() string { return y.from }

// To returns the upper bound of a range, or the year itself for a
// single year.
func (y Years) To() string { return y.to }

// String implements the [fmt.Stringer] interface.
func (y Years) String() string {
	if y.IsRange() {
		return y.from + "-" + y.to
	}
	return y.to
}

// Pattern is a compiled copyright header template. It is immutable and
// safe to reuse across calls.
type Pattern struct {
	re       *regexp.Regexp
	from, to int // submatch indices
	year     int
}

// Compile builds a Pattern from a template containing the [Placeholder]
// token, for example "# (c) {years}, developers".
func Compile(template string) (*Pattern, error) {
	start := strings.Index(template, Placeholder)
	if start < 0 {
		return nil, fmt.Errorf("pattern must contain %q", Placeholder)
	}
	end := start + len(Placeholder)
	re, err := regexp.Compile(regexp.QuoteMeta(template[:start]) + reYearOrRange + regexp.QuoteMeta(template[end:]))
	if err != nil {
		return nil, err
	}
	return &Pattern{
		re:   re,
		from: re.SubexpIndex("from"),
		to:   re.SubexpIndex("to"),
		year: re.SubexpIndex("year"),
	}, nil
}

// Extract returns the years of the first copyright header found in
// content, or ok=false when there is none.
func (p *Pattern) Extract(content string) (y Years, ok bool) {
	m := p.re.FindStringSubmatchIndex(content)
	if m == nil {
		return Years{}, false
	}
	if p.captured(m, p.from) && p.captured(m, p.to) {
		return Range(p.group(content, m, p.from), p.group(content, m, p.to)), true
	}
	return Single(p.group(content, m, p.year)), true
}

// Replace rewrites the years of the first copyright header in content,
// leaving all surrounding text intact. It returns [ErrNoMatch] when the
// content has no header.
//
// All span boundaries are taken from a single match before any rewrite,
// so replacements of different lengths cannot corrupt adjacent text.
func (p *Pattern) Replace(content string, y Years) (string, error) {
	m := p.re.FindStringSubmatchIndex(content)
	if m == nil {
		return "", ErrNoMatch
	}

	if p.captured(m, p.from) && p.captured(m, p.to) {
		fromStart, fromEnd := span(m, p.from)
		toStart, toEnd := span(m, p.to)
		if y.IsRange() {
			return content[:fromStart] + y.From() + content[fromEnd:toStart] + y.To() + content[toEnd:], nil
		}
		// Collapse the range into a single year.
		return content[:fromStart] + y.To() + content[toEnd:], nil
	}

	start, end := span(m, p.year)
	return content[:start] + y.String() + content[end:], nil
}

func (p *Pattern) captured(m []int, i int) bool {
	return i >= 0 && m[2*i] >= 0
}

func (p *Pattern) group(content string, m []int, i int) string {
	return content[m[2*i]:m[2*i+1]]
}

func span(m []int, i int) (start, end int) {
	return m[2*i], m[2*i+1]
}
