// Package reviewing assesses the quality of an extractive summary against its source.
package reviewing

import (
	"strings"

	"github.com/jonathan/polysum/internal/textstat"
	"github.com/jonathan/polysum/internal/types"
)

const (
	// critiqueConfidence is the fixed confidence reported by the critique assessor
	critiqueConfidence = 0.7

	overCompressedRatio  = 0.9
	underCompressedRatio = 0.3

	// missingTermsAllowed is how many important terms may be absent before it is reported
	missingTermsAllowed = 3
	// missingTermsShown caps how many absent terms the issue names
	missingTermsShown = 3
)

// Issue messages
const (
	IssueOverCompressed  = "Summary may be over-compressed"
	IssueUnderCompressed = "Summary could be more concise"
	missingPrefix        = "May be missing: "
)

// Critique flags compression problems and important source terms absent from the summary.
func Critique(doc types.NormalizedDocument, reasoning types.ReasoningResult) types.CritiqueResult {
	ratio := CompressionRatio(textstat.WordCount(reasoning.Summary), textstat.WordCount(doc.Normalized))

	issues := make([]string, 0)
	if ratio > overCompressedRatio {
		issues = append(issues, IssueOverCompressed)
	}
	if ratio < underCompressedRatio {
		issues = append(issues, IssueUnderCompressed)
	}

	missing := MissingTerms(ImportantTerms(doc.Normalized), reasoning.Summary)
	if len(missing) > missingTermsAllowed {
		shown := missing[:missingTermsShown]
		issues = append(issues, missingPrefix+strings.Join(shown, ", "))
	}

	return types.CritiqueResult{
		Issues:           issues,
		CompressionRatio: textstat.Percent(ratio),
		Quality:          Quality(len(issues)),
		Confidence:       critiqueConfidence,
	}
}

// CompressionRatio returns 1 - summaryWords/sourceWords, or 0 when the source has no words.
func CompressionRatio(summaryWords, sourceWords int) float64 {
	if sourceWords == 0 {
		return 0
	}
	return 1 - float64(summaryWords)/float64(sourceWords)
}

// MissingTerms returns the terms not found, case-insensitively, anywhere in summary
func MissingTerms(terms []string, summary string) []string {
	lower := strings.ToLower(summary)

	var missing []string
	for _, term := range terms {
		if !strings.Contains(lower, term) {
			missing = append(missing, term)
		}
	}
	return missing
}

// Quality maps an issue count to a quality label
func Quality(issueCount int) string {
	switch issueCount {
	case 0:
		return types.QualityGood
	case 1:
		return types.QualityFair
	default:
		return types.QualityNeedsImprovement
	}
}
