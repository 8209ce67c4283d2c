// Package vdf extracts values from Valve KeyValues text such as
// libraryfolders.vdf and appmanifest_*.acf files.
//
// The extractor is deliberately shallow: it scans for a quoted key token
// followed by a quoted value token and ignores nesting entirely. Steam
// writes both files with unique-enough keys ("path", "name") that a
// structural parse buys nothing here.
package vdf

import (
	"strings"
	"unicode"
)

// First returns the value paired with the first well-formed occurrence of
// key. Occurrences where the value token is missing, unterminated, or
// empty are skipped. The boolean reports whether a value was found.
func First(text, key string) (string, bool) {
	value, _, ok := nextPair(text, key, 0)
	return value, ok
}

// All returns every value paired with key, in order of appearance.
// Malformed occurrences are skipped, not returned as empty strings.
func All(text, key string) []string {
	var values []string
	pos := 0
	for {
		value, next, ok := nextPair(text, key, pos)
		if !ok {
			return values
		}
		values = append(values, value)
		pos = next
	}
}

// nextPair locates the next well-formed `"key" "value"` pair at or after
// pos. It returns the value, the offset just past the value's closing
// quote, and whether a pair was found. Keys are matched case-sensitively
// and only whitespace may separate the key token from the value token.
func nextPair(text, key string, pos int) (string, int, bool) {
	token := `"` + key + `"`
	for pos <= len(text) {
		idx := strings.Index(text[pos:], token)
		if idx < 0 {
			return "", 0, false
		}
		cur := pos + idx + len(token)
		// Any later occurrence starts after this key token.
		pos = cur

		for cur < len(text) && unicode.IsSpace(rune(text[cur])) {
			cur++
		}
		if cur >= len(text) || text[cur] != '"' {
			continue
		}
		cur++
		end := strings.IndexByte(text[cur:], '"')
		if end <= 0 {
			// Unterminated or empty value; try the next occurrence.
			continue
		}
		return text[cur : cur+end], cur + end + 1, true
	}
	return "", 0, false
}
