package ranking

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jonathan/polysum/internal/parsing"
	"github.com/jonathan/polysum/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionCount(t *testing.T) {
	tests := []struct {
		n        int
		expected int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 3},
		{5, 3},
		{10, 3},
		{11, 4},
		{20, 6},
		{21, 7},
		{100, 30},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			assert.Equal(t, tt.expected, SelectionCount(tt.n))
		})
	}
}

func TestExtract_Empty(t *testing.T) {
	result := Extract(types.NormalizedDocument{})

	assert.Equal(t, "", result.Summary)
	assert.Equal(t, 0, result.KeyPoints)
	assert.Equal(t, 0.75, result.Confidence)
}

func TestExtract_PreservesDocumentOrder(t *testing.T) {
	doc := types.NormalizedDocument{Sentences: []string{
		"Sentence zero is an opening line.",
		"Sentence one is another opening line.",
		"Sentence two is filler text only.",
		"Sentence three is the key result because it is critical.",
		"Sentence four is filler text only.",
		"Sentence five is filler text only.",
		"Sentence six is filler text only.",
		"Sentence seven is filler text only.",
		"Sentence eight is filler text only.",
		"Sentence nine is filler text only.",
		"Sentence ten is the important main focus.",
		"Sentence eleven closes things out.",
	}}

	result := Extract(doc)

	// 12 sentences -> ceil(3.6) = 4 selected: 3 and 10 (indicators), 0 and 1 (lead)
	assert.Equal(t, 4, result.KeyPoints)
	assert.Equal(t, strings.Join([]string{
		doc.Sentences[0], doc.Sentences[1], doc.Sentences[3], doc.Sentences[10],
	}, " "), result.Summary)
}

func TestExtract_TiesBrokenByIndex(t *testing.T) {
	// Middle sentences all score 0; the lowest index must win the remaining slot
	doc := types.NormalizedDocument{Sentences: []string{
		"Filler sentence number one.",
		"Filler sentence number two.",
		"Filler sentence number three.",
		"Filler sentence number four.",
		"Filler sentence number five.",
		"Filler sentence number six.",
	}}

	result := Extract(doc)

	require.Equal(t, 3, result.KeyPoints)
	// Scores: 3, 3, 0, 0, 0, 2 -> picks 0, 1, 5
	assert.Equal(t, "Filler sentence number one. Filler sentence number two. Filler sentence number six.", result.Summary)
}

func TestExtract_FewerSentencesThanMinimum(t *testing.T) {
	doc := types.NormalizedDocument{Sentences: []string{"Only one sentence in this document."}}

	result := Extract(doc)

	assert.Equal(t, 1, result.KeyPoints)
	assert.Equal(t, "Only one sentence in this document.", result.Summary)
}

func TestExtract_SelectionCountProperty(t *testing.T) {
	for n := 1; n <= 40; n++ {
		sentences := make([]string, n)
		for i := range sentences {
			sentences[i] = fmt.Sprintf("Generated sentence number %d has plain filler words.", i)
		}

		result := Extract(types.NormalizedDocument{Sentences: sentences})
		assert.Equal(t, SelectionCount(n), result.KeyPoints, "n=%d", n)

		// Selected sentences appear in ascending document order
		last := -1
		for _, part := range strings.SplitAfter(result.Summary, "words.") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			var idx int
			_, err := fmt.Sscanf(part, "Generated sentence number %d", &idx)
			require.NoError(t, err)
			assert.Greater(t, idx, last, "n=%d", n)
			last = idx
		}
	}
}

func TestExtract_RepeatedSentenceDocument(t *testing.T) {
	sentence := "The team shipped the new release after many weeks of careful testing work."
	text := strings.TrimSpace(strings.Repeat(sentence+" ", 8))
	require.GreaterOrEqual(t, len(text), 100)

	doc := parsing.Normalize(text)
	require.Len(t, doc.Sentences, 8)

	result := Extract(doc)
	assert.Equal(t, 3, result.KeyPoints)
}

func TestSelectTop_DoesNotMutateInput(t *testing.T) {
	scored := []types.ScoredSentence{
		{Text: "a", Score: 1, Index: 0},
		{Text: "b", Score: 5, Index: 1},
		{Text: "c", Score: 3, Index: 2},
	}

	top := SelectTop(scored, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "b", top[0].Text)
	assert.Equal(t, "c", top[1].Text)
	assert.Equal(t, "a", scored[0].Text)
	assert.Equal(t, "b", scored[1].Text)
}
