package rewriting

import (
	"testing"

	"github.com/jonathan/polysum/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestSimplifyText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"no mapped terms", "The cat sat on the mat.", "The cat sat on the mat."},
		{"empty", "", ""},
		{"single term", "We utilize caching.", "We use caching."},
		{"case insensitive", "UTILIZE it. Utilize it.", "use it. use it."},
		{"every occurrence", "facilitate and facilitate", "help and help"},
		{"substring inside longer word", "implemented quickly", "set uped quickly"},
		{"multi word target", "We implement it.", "We set up it."},
		{"significant becomes important", "A significant gain.", "A important gain."},
		{"all terms", "utilize implement facilitate demonstrate significant approximately subsequently consequently nevertheless furthermore",
			"use set up help show important about then so but also"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SimplifyText(tt.text))
		})
	}
}

func TestSimplify_ReadabilityImproved(t *testing.T) {
	result := Simplify(types.ReasoningResult{Summary: "We utilize approximately nine tools."})

	assert.Equal(t, "We use about nine tools.", result.Summary)
	assert.True(t, result.ReadabilityImproved)
	// We(2) use(3) about(5) nine(4) tools.(6) = 20 / 5
	assert.Equal(t, "4.0", result.AvgWordLength)
	assert.Equal(t, 0.8, result.Confidence)
}

func TestSimplify_IdempotentWithoutMappedTerms(t *testing.T) {
	text := "Plain words stay exactly the same here."
	result := Simplify(types.ReasoningResult{Summary: text})

	assert.Equal(t, text, result.Summary)
	assert.False(t, result.ReadabilityImproved)
	assert.Equal(t, Simplify(types.ReasoningResult{Summary: result.Summary}).Summary, result.Summary)
}

func TestSimplify_Empty(t *testing.T) {
	result := Simplify(types.ReasoningResult{})

	assert.Equal(t, "", result.Summary)
	assert.False(t, result.ReadabilityImproved)
	assert.Equal(t, "0.0", result.AvgWordLength)
}

func TestSimplify_AvgWordLengthOneDecimal(t *testing.T) {
	// abc(3) de(2) fghi(4) = 9/3 = 3.0 ; "ab cde" = 5/2 = 2.5
	assert.Equal(t, "3.0", Simplify(types.ReasoningResult{Summary: "abc de fghi"}).AvgWordLength)
	assert.Equal(t, "2.5", Simplify(types.ReasoningResult{Summary: "ab cde"}).AvgWordLength)
	// 10/3 = 3.333...
	assert.Equal(t, "3.3", Simplify(types.ReasoningResult{Summary: "abcd abc abc"}).AvgWordLength)
}
