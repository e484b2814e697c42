package transcript

import (
	"regexp"
	"strings"
)

var (
	annotationPattern = regexp.MustCompile(`\[.*?\]`)
	// Includes Unicode separators such as the no-break space captions often carry.
	whitespacePattern = regexp.MustCompile(`[\s\p{Z}]+`)
)

// Clean removes bracketed annotations such as "[Music]" and collapses whitespace.
func Clean(text string) string {
	text = annotationPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Join concatenates caption segments with single spaces and cleans the result.
func Join(segments []string) string {
	return Clean(strings.Join(segments, " "))
}
