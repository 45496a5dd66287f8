// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// WordsPerMinute is the single reading rate used everywhere a reading
// time is derived.
const WordsPerMinute = 225

var (
	codeFences   = regexp.MustCompile("(?s)```.*?```")
	inlineCode   = regexp.MustCompile("`[^`]*`")
	mdLinks      = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	mdImages     = regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`)
	headingMarks = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	emphasisMarks = regexp.MustCompile(`[*_]{1,3}`)

	leadingMinutes = regexp.MustCompile(`^\s*(\d+)`)
)

// StripSyntax removes Markdown decoration from source, leaving readable
// prose: code fences and inline code are dropped, links and images keep
// their text, heading and emphasis markers disappear.
func StripSyntax(source string) string {
	out := codeFences.ReplaceAllString(source, " ")
	out = inlineCode.ReplaceAllString(out, " ")
	out = mdImages.ReplaceAllString(out, "$1")
	out = mdLinks.ReplaceAllString(out, "$1")
	out = headingMarks.ReplaceAllString(out, "")
	out = emphasisMarks.ReplaceAllString(out, "")
	return out
}

// ReadingTime estimates how long the given Markdown content takes to read
// at WordsPerMinute, rounding up to whole minutes, and formats the result
// as "<N> min read". Any non-empty content reads for at least one minute;
// empty content reads for zero.
func ReadingTime(content string) string {
	words := len(strings.Fields(StripSyntax(content)))
	if words == 0 {
		return "0 min read"
	}
	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	return fmt.Sprintf("%d min read", minutes)
}

// ParseMinutes extracts the leading integer from a reading-time string of
// the form "<N> min read". Non-parsable values contribute zero, so a sum
// over a series never fails on a malformed post.
func ParseMinutes(readingTime string) int {
	m := leadingMinutes.FindStringSubmatch(readingTime)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
