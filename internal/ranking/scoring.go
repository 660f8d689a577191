// Package ranking scores document sentences and selects an extractive summary.
package ranking

import (
	"strings"

	"github.com/jonathan/polysum/internal/lexicon"
	"github.com/jonathan/polysum/internal/textstat"
	"github.com/jonathan/polysum/internal/types"
)

// Score components
const (
	leadBonus      = 3 // first two sentences
	closingBonus   = 2 // last sentence
	indicatorBonus = 2 // per indicator occurrence
	lengthBonus    = 1 // sentence length within the preferred range

	leadSentences = 2
	minIdealWords = 10
	maxIdealWords = 30
)

// ScoreSentence computes the heuristic score of the sentence at index i of n sentences.
func ScoreSentence(sentence string, i, n int, indicators []string) int {
	score := 0

	if i < leadSentences {
		score += leadBonus
	}
	if i == n-1 {
		score += closingBonus
	}

	lower := strings.ToLower(sentence)
	for _, term := range indicators {
		score += indicatorBonus * strings.Count(lower, term)
	}

	words := textstat.WordCount(sentence)
	if words >= minIdealWords && words <= maxIdealWords {
		score += lengthBonus
	}

	return score
}

// ScoreSentences scores every sentence using the key indicator table.
func ScoreSentences(sentences []string) []types.ScoredSentence {
	indicators := lexicon.MustLoad().KeyIndicators

	scored := make([]types.ScoredSentence, len(sentences))
	for i, s := range sentences {
		scored[i] = types.ScoredSentence{
			Text:  s,
			Score: ScoreSentence(s, i, len(sentences), indicators),
			Index: i,
		}
	}
	return scored
}
