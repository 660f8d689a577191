// Package validation checks an extractive summary against its source text.
package validation

import (
	"strings"

	"github.com/jonathan/polysum/internal/textstat"
	"github.com/jonathan/polysum/internal/types"
)

const (
	// minSignificantChars is the length a word must exceed to be checked
	minSignificantChars = 4
	// verifiedThreshold is the coverage a summary must exceed to count as verified
	verifiedThreshold = 0.7
)

// IssueUnsourcedClaims is reported when coverage does not exceed the verified threshold
const IssueUnsourcedClaims = "Some claims may not be directly from source"

// Verify measures how many significant summary words appear in the normalized source.
func Verify(doc types.NormalizedDocument, reasoning types.ReasoningResult) types.VerificationResult {
	coverage := Coverage(strings.ToLower(doc.Normalized), strings.ToLower(reasoning.Summary))
	verified := coverage > verifiedThreshold

	issues := make([]string, 0, 1)
	if !verified {
		issues = append(issues, IssueUnsourcedClaims)
	}

	return types.VerificationResult{
		Verified:   verified,
		Coverage:   textstat.Percent(coverage),
		Issues:     issues,
		Confidence: coverage,
	}
}

// Coverage returns the fraction of significant words in summary that occur as substrings of source.
// Both arguments are expected to be lower-cased. It returns 0 when summary has no significant words.
func Coverage(source, summary string) float64 {
	significant := SignificantWords(summary)
	if len(significant) == 0 {
		return 0
	}

	matched := 0
	for _, w := range significant {
		if strings.Contains(source, w) {
			matched++
		}
	}
	return float64(matched) / float64(len(significant))
}

// SignificantWords returns the whitespace-delimited tokens of text longer than four characters.
func SignificantWords(text string) []string {
	var words []string
	for _, w := range strings.Fields(text) {
		if textstat.CharCount(w) > minSignificantChars {
			words = append(words, w)
		}
	}
	return words
}
