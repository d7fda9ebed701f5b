// Package segment turns a freeform text blob into a list of short items.
// Generated text arrives in unpredictable shapes (comma lists, numbered
// lists, bullet lists, labelled meal slots), so the splitter accepts a set
// of delimiter substrings plus filtering rules instead of a single format.
package segment

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Options control how Split cuts and filters the input.
type Options struct {
	// Delimiters are literal substrings; every occurrence of any of them
	// splits the text.
	Delimiters []string

	// MinLength drops fragments with fewer characters after trimming.
	MinLength int

	// MaxItems truncates the result, preserving original order. Zero means
	// unlimited.
	MaxItems int

	// Exclude drops fragments matching the pattern, e.g. bare numerals left
	// over from numbered-list delimiters.
	Exclude *regexp.Regexp
}

// Split cuts text on every occurrence of any delimiter, trims each fragment
// and applies the filters. An empty result means extraction failed; callers
// decide the fallback. Split itself never fails.
func Split(text string, opts Options) []string {
	parts := []string{text}
	for _, delim := range opts.Delimiters {
		if delim == "" {
			continue
		}
		next := make([]string, 0, len(parts))
		for _, part := range parts {
			next = append(next, strings.Split(part, delim)...)
		}
		parts = next
	}

	items := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if utf8.RuneCountInString(part) < opts.MinLength {
			continue
		}
		if opts.Exclude != nil && opts.Exclude.MatchString(part) {
			continue
		}
		items = append(items, part)
		if opts.MaxItems > 0 && len(items) == opts.MaxItems {
			break
		}
	}
	return items
}
