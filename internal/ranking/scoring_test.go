package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testIndicators = []string{
	"key", "important", "main", "essential", "critical", "significant",
	"primary", "focus", "because", "therefore", "thus", "result",
}

func TestScoreSentence(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		i, n     int
		expected int
	}{
		{"first sentence short", "Plain words here.", 0, 5, 3},
		{"second sentence short", "Plain words here.", 1, 5, 3},
		{"middle sentence short", "Plain words here.", 2, 5, 0},
		{"last sentence short", "Plain words here.", 4, 5, 2},
		{"single sentence is lead and last", "Plain words here.", 0, 1, 5},
		{"one indicator", "This is important.", 2, 5, 2},
		{"indicator case insensitive", "IMPORTANT stuff.", 2, 5, 2},
		{"each occurrence counts", "Important, important, important.", 2, 5, 6},
		{"substring match", "The keynote was resulting in applause.", 2, 5, 4},
		{"ten words gets length bonus", "one two three four five six seven eight nine ten", 2, 5, 1},
		{"nine words no length bonus", "one two three four five six seven eight nine", 2, 5, 0},
		{"thirty words gets length bonus", repeatWords(30), 2, 5, 1},
		{"thirty one words no length bonus", repeatWords(31), 2, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScoreSentence(tt.sentence, tt.i, tt.n, testIndicators))
		})
	}
}

func TestScoreSentences_UsesLexicon(t *testing.T) {
	scored := ScoreSentences([]string{"Alpha sentence here.", "Beta is the main point.", "Gamma sentence here."})

	require.Len(t, scored, 3)
	assert.Equal(t, 3, scored[0].Score)
	assert.Equal(t, 5, scored[1].Score)
	assert.Equal(t, 2, scored[2].Score)
	for i, s := range scored {
		assert.Equal(t, i, s.Index)
	}
}

func repeatWords(n int) string {
	words := make([]byte, 0, n*2)
	for i := 0; i < n; i++ {
		if i > 0 {
			words = append(words, ' ')
		}
		words = append(words, 'w')
	}
	return string(words)
}
