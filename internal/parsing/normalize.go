// Package parsing turns raw input text into a normalized, sentence-segmented document.
package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/polysum/internal/textstat"
	"github.com/jonathan/polysum/internal/types"
)

// minSentenceChars is the length a segment must exceed to count as a sentence
const minSentenceChars = 10

var (
	urlPattern   = regexp.MustCompile(`(?i)https?://\S+`)
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
)

// Normalize cleans text and splits it into sentences.
// It never fails; empty input yields a document with no sentences and a zero word count.
func Normalize(text string) types.NormalizedDocument {
	normalized := CollapseWhitespace(text)
	normalized = urlPattern.ReplaceAllString(normalized, "")
	normalized = emailPattern.ReplaceAllString(normalized, "")

	sentences := make([]string, 0)
	// Length is measured before trimming, so a leading space left by a stripped URL counts
	for _, raw := range splitSegments(normalized) {
		if textstat.CharCount(raw) > minSentenceChars {
			sentences = append(sentences, strings.TrimSpace(raw))
		}
	}

	return types.NormalizedDocument{
		Original:   text,
		Normalized: normalized,
		Sentences:  sentences,
		WordCount:  textstat.WordCount(normalized),
	}
}

// CollapseWhitespace replaces every run of whitespace with a single space and trims both ends
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
