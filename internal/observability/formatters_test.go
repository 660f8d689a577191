package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/polysum/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintDocument(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := &types.NormalizedDocument{
		Sentences: []string{"one two three four five.", "six seven eight nine ten.", "a", "b", "c", "d", "e"},
		WordCount: 15,
	}

	p.PrintDocument(doc)
	output := buf.String()

	assert.Contains(t, output, "NORMALIZED DOCUMENT")
	assert.Contains(t, output, "Words:     15")
	assert.Contains(t, output, "Sentences: 7")
	assert.Contains(t, output, "1. one two three four five.")
	assert.Contains(t, output, "... and 2 more")
}

func TestPrintDocument_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDocument(nil)

	assert.Empty(t, buf.String())
}

func TestPrintReasoning(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReasoning(&types.ReasoningResult{
		Summary:    "The key finding is simple. It matters.",
		Confidence: 0.75,
		KeyPoints:  2,
	})
	output := buf.String()

	assert.Contains(t, output, "REASONING")
	assert.Contains(t, output, "Key points: 2")
	assert.Contains(t, output, "Confidence: 0.75")
	assert.Contains(t, output, "The key finding is simple. It matters.")
}

func TestPrintVerification(t *testing.T) {
	tests := []struct {
		name     string
		result   types.VerificationResult
		contains []string
	}{
		{
			name:     "verified",
			result:   types.VerificationResult{Verified: true, Coverage: 100, Issues: []string{}},
			contains: []string{"✓ verified", "Coverage: 100%"},
		},
		{
			name:     "not verified",
			result:   types.VerificationResult{Verified: false, Coverage: 40, Issues: []string{"Some claims may not be directly supported by source"}},
			contains: []string{"✗ not verified", "Coverage: 40%", "⚠ Some claims"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewPrinter(&buf).PrintVerification(&tt.result)
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestPrintSimplification(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSimplification(&types.SimplificationResult{
		Summary:             "We use the tool.",
		ReadabilityImproved: true,
		AvgWordLength:       "3.0",
	})
	output := buf.String()

	assert.Contains(t, output, "SIMPLIFICATION")
	assert.Contains(t, output, "Avg word length:      3.0")
	assert.Contains(t, output, "Readability improved: true")
}

func TestPrintCritique(t *testing.T) {
	t.Run("no issues", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).PrintCritique(&types.CritiqueResult{Issues: []string{}, CompressionRatio: 60, Quality: types.QualityGood})
		assert.Contains(t, buf.String(), "Quality:     Good")
		assert.Contains(t, buf.String(), "No issues found")
	})

	t.Run("with issues", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).PrintCritique(&types.CritiqueResult{
			Issues:           []string{"Summary could be more concise"},
			CompressionRatio: 10,
			Quality:          types.QualityFair,
		})
		assert.Contains(t, buf.String(), "1 issues:")
		assert.Contains(t, buf.String(), "• Summary could be more concise")
	})
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStats(&types.Stats{OriginalWords: 120, SummaryWords: 40, CompressionPercent: 67, LatencyMS: 3})
	output := buf.String()

	assert.Contains(t, output, "STATS")
	assert.Contains(t, output, "Original words: 120")
	assert.Contains(t, output, "Compression:    67%")
	assert.Contains(t, output, "Latency:        3ms")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 100))

	assert.Contains(t, buf.String(), "...")
	assert.NotContains(t, buf.String(), strings.Repeat("x", boxWidth))
}

func TestWrap(t *testing.T) {
	lines := wrap("alpha beta gamma delta", 11)
	assert.Equal(t, []string{"alpha beta", "gamma delta"}, lines)
	assert.Empty(t, wrap("", 10))
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	assert.Same(t, &buf, NewPrinter(&buf).Writer())
}
