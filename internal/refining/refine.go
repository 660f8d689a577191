// Package refining merges the agent results into the final polished summary.
package refining

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/polysum/internal/parsing"
	"github.com/jonathan/polysum/internal/types"
)

var spaceBeforePunct = regexp.MustCompile(`\s+([.,!?])`)

// Refine produces the final summary. The simplified text is used only when verification
// passed; otherwise the raw extractive summary is kept. The critique is advisory and never
// changes the emitted text.
func Refine(reasoning types.ReasoningResult, verification types.VerificationResult,
	simplification types.SimplificationResult, _ types.CritiqueResult) string {
	base := reasoning.Summary
	if verification.Verified {
		base = simplification.Summary
	}
	return Polish(base)
}

// Polish normalizes whitespace and punctuation spacing, capitalizes the first character,
// and terminates the text with a period when it lacks terminal punctuation.
// Empty input is returned unchanged.
func Polish(text string) string {
	text = parsing.CollapseWhitespace(text)
	text = spaceBeforePunct.ReplaceAllString(text, "$1")
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	text = capitalizeFirst(text)
	if !hasTerminalPunctuation(text) {
		text += "."
	}
	return text
}

func capitalizeFirst(text string) string {
	r, size := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError {
		return text
	}
	return string(unicode.ToUpper(r)) + text[size:]
}

func hasTerminalPunctuation(text string) bool {
	return strings.HasSuffix(text, ".") || strings.HasSuffix(text, "!") || strings.HasSuffix(text, "?")
}
