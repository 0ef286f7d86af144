// Package parser decodes workbook containers into addressable cell grids and
// normalizes noisy cell text.
package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	intRun    = regexp.MustCompile(`\d+`)
	numberRun = regexp.MustCompile(`\d+(?:[.,]\d+)?`)
)

// CleanText trims v and turns non-breaking spaces into regular spaces.
// An all-whitespace value comes back as "".
func CleanText(v string) string {
	return strings.TrimSpace(strings.ReplaceAll(v, "\u00a0", " "))
}

// ParseInt returns the first run of digits in v, so "12 reps" yields 12.
func ParseInt(v string) (int, bool) {
	s := CleanText(v)
	if s == "" {
		return 0, false
	}
	m := intRun.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseNumber returns the first integer or decimal number in v. Both comma
// and dot are accepted as decimal separator ("100 kg", "12,5").
func ParseNumber(v string) (float64, bool) {
	s := CleanText(v)
	if s == "" {
		return 0, false
	}
	m := numberRun.FindString(s)
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.Replace(m, ",", ".", 1), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
