package hashtags

import (
	"regexp"
	"strings"
)

// tagPattern matches a single hashtag token: '#' followed by one or more
// word characters. Matching is case-sensitive; tags are kept as typed.
var tagPattern = regexp.MustCompile(`#[A-Za-z0-9_]+`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Extract scans text for hashtag tokens and returns the cleaned display text
// together with the tags in first-seen order, duplicates preserved.
//
// The cleaned text is the input with every tag removed, runs of whitespace
// collapsed to a single space, and leading/trailing whitespace trimmed.
// Extract never fails; empty input yields an empty result.
func Extract(text string) (string, []string) {
	tags := tagPattern.FindAllString(text, -1)

	clean := tagPattern.ReplaceAllString(text, "")
	clean = whitespaceRun.ReplaceAllString(clean, " ")
	clean = strings.TrimSpace(clean)

	return clean, tags
}

// ContainsTag reports whether text still holds at least one hashtag token.
// Used by compose surfaces to decide whether to show the tag preview.
func ContainsTag(text string) bool {
	return tagPattern.MatchString(text)
}
