// Package rewriting simplifies summary vocabulary for readability.
package rewriting

import (
	"regexp"
	"strconv"

	"github.com/jonathan/polysum/internal/lexicon"
	"github.com/jonathan/polysum/internal/textstat"
	"github.com/jonathan/polysum/internal/types"
)

// simplificationConfidence is the fixed confidence reported by the simplifier
const simplificationConfidence = 0.8

// replacer is a compiled case-insensitive substitution
type replacer struct {
	pattern *regexp.Regexp
	to      string
}

var replacers = compileReplacers(lexicon.MustLoad().Simplifications)

func compileReplacers(table []lexicon.Replacement) []replacer {
	out := make([]replacer, 0, len(table))
	for _, r := range table {
		out = append(out, replacer{
			pattern: regexp.MustCompile(`(?i)` + regexp.QuoteMeta(r.From)),
			to:      r.To,
		})
	}
	return out
}

// Simplify replaces complex terms in the reasoning summary with simpler ones.
func Simplify(reasoning types.ReasoningResult) types.SimplificationResult {
	simplified := SimplifyText(reasoning.Summary)

	before := textstat.AvgWordLength(reasoning.Summary)
	after := textstat.AvgWordLength(simplified)

	return types.SimplificationResult{
		Summary:             simplified,
		ReadabilityImproved: after < before,
		AvgWordLength:       strconv.FormatFloat(after, 'f', 1, 64),
		Confidence:          simplificationConfidence,
	}
}

// SimplifyText applies every substitution in table order. Matching ignores case
// and also hits occurrences inside longer words.
func SimplifyText(text string) string {
	for _, r := range replacers {
		text = r.pattern.ReplaceAllLiteralString(text, r.to)
	}
	return text
}
