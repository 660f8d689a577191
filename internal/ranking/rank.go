package ranking

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/polysum/internal/types"
)

const (
	// reasoningConfidence is the fixed confidence reported by the extractor
	reasoningConfidence = 0.75
	// minSelected is the floor on the number of sentences selected
	minSelected = 3
	// selectionRatio is the share of the document's sentences selected
	selectionRatio = 0.3
)

// SelectionCount returns how many sentences Extract keeps for a document of n sentences.
func SelectionCount(n int) int {
	if n <= 0 {
		return 0
	}
	target := max(minSelected, int(math.Ceil(float64(n)*selectionRatio)))
	return min(n, target)
}

// Extract selects the highest scoring sentences and joins them in document order.
func Extract(doc types.NormalizedDocument) types.ReasoningResult {
	selected := SelectTop(ScoreSentences(doc.Sentences), SelectionCount(len(doc.Sentences)))

	texts := make([]string, len(selected))
	for i, s := range selected {
		texts[i] = s.Text
	}

	return types.ReasoningResult{
		Summary:    strings.Join(texts, " "),
		Confidence: reasoningConfidence,
		KeyPoints:  len(selected),
	}
}

// SelectTop returns the k best scored sentences, re-ordered by their original index.
// Equal scores are ranked by index ascending.
func SelectTop(scored []types.ScoredSentence, k int) []types.ScoredSentence {
	ranked := make([]types.ScoredSentence, len(scored))
	copy(ranked, scored)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Index < ranked[j].Index
	})

	k = min(k, len(ranked))
	top := ranked[:k]
	sort.Slice(top, func(i, j int) bool {
		return top[i].Index < top[j].Index
	})
	return top
}
