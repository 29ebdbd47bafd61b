// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package dateformat renders times through human-friendly patterns such as
// "yyyy-mm-dd".
//
// Recognized tokens, matched longest first and case-sensitively:
//
//	yyyy  four-digit year        yy  two-digit year
//	mmmm  full month name        mmm abbreviated month name
//	mm    two-digit month        m   month
//	dd    two-digit day          d   day
//	HH    two-digit hour (24h)   nn  two-digit minute
//	ss    two-digit second
//
// Every other character is copied to the output unchanged.
package dateformat

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Default is the pattern used when none is configured.
const Default = "yyyy-mm-dd"

// ErrNoTokens is returned by [Validate] for patterns that would render the
// same text for every time.
var ErrNoTokens = errors.New("date format has no date or time tokens")

type token struct {
	pattern string
	render  func(time.Time) string
}

// Ordered so that longer tokens win over their prefixes.
var tokens = []token{
	{"yyyy", func(t time.Time) string { return pad(t.Year(), 4) }},
	{"yy", func(t time.Time) string { return pad(t.Year()%100, 2) }},
	{"mmmm", func(t time.Time) string { return t.Month().String() }},
	{"mmm", func(t time.Time) string { return t.Month().String()[:3] }},
	{"mm", func(t time.Time) string { return pad(int(t.Month()), 2) }},
	{"m", func(t time.Time) string { return strconv.Itoa(int(t.Month())) }},
	{"dd", func(t time.Time) string { return pad(t.Day(), 2) }},
	{"d", func(t time.Time) string { return strconv.Itoa(t.Day()) }},
	{"HH", func(t time.Time) string { return pad(t.Hour(), 2) }},
	{"nn", func(t time.Time) string { return pad(t.Minute(), 2) }},
	{"ss", func(t time.Time) string { return pad(t.Second(), 2) }},
}

func pad(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}

// Format renders t according to pattern.
func Format(t time.Time, pattern string) string {
	var sb strings.Builder
	for i := 0; i < len(pattern); {
		tok, ok := match(pattern[i:])
		if !ok {
			sb.WriteByte(pattern[i])
			i++
			continue
		}
		sb.WriteString(tok.render(t))
		i += len(tok.pattern)
	}
	return sb.String()
}

// Validate reports whether pattern contains at least one token.
func Validate(pattern string) error {
	for i := range len(pattern) {
		if _, ok := match(pattern[i:]); ok {
			return nil
		}
	}
	return ErrNoTokens
}

func match(s string) (token, bool) {
	for _, tok := range tokens {
		if strings.HasPrefix(s, tok.pattern) {
			return tok, true
		}
	}
	return token{}, false
}
