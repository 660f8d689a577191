package parsing

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SegmentSentences splits text after each '.', '!' or '?' that is followed by whitespace.
// The punctuation stays with the preceding sentence and the whitespace is dropped.
// Segments are trimmed; empty segments are omitted.
func SegmentSentences(text string) []string {
	var segments []string
	for _, raw := range splitSegments(text) {
		if s := strings.TrimSpace(raw); s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// splitSegments returns the untrimmed pieces between sentence boundaries.
// Only the first piece can carry leading whitespace, and the last may be empty.
func splitSegments(text string) []string {
	var segments []string

	start := 0
	for i := 0; i < len(text); i++ {
		if !isTerminal(text[i]) {
			continue
		}
		end := i + 1
		next := end
		for next < len(text) {
			r, size := utf8.DecodeRuneInString(text[next:])
			if !unicode.IsSpace(r) {
				break
			}
			next += size
		}
		if next == end {
			continue
		}
		segments = append(segments, text[start:end])
		start = next
		i = next - 1
	}
	return append(segments, text[start:])
}

func isTerminal(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}
