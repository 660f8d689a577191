package pipeline

import (
	"time"

	"github.com/jonathan/polysum/internal/textstat"
	"github.com/jonathan/polysum/internal/types"
)

// ComputeStats derives the display statistics for a summary of original
func ComputeStats(original, summary string, latency time.Duration) types.Stats {
	originalWords := textstat.WordCount(original)
	summaryWords := textstat.WordCount(summary)

	compression := 0
	if originalWords > 0 {
		compression = textstat.Percent(1 - float64(summaryWords)/float64(originalWords))
	}

	return types.Stats{
		OriginalWords:      originalWords,
		SummaryWords:       summaryWords,
		CompressionPercent: compression,
		LatencyMS:          latency.Milliseconds(),
	}
}

// BuildResponse assembles the response body; agent reports are attached only in debug mode
func BuildResponse(result *Result, stats types.Stats, debug bool) *types.SummarizeResponse {
	resp := &types.SummarizeResponse{
		Summary: result.Summary,
		Stats:   stats,
	}
	if debug {
		resp.Agents = &types.AgentReports{
			Reasoning:      result.Reasoning,
			Verification:   result.Verification,
			Simplification: result.Simplification,
			Critique:       result.Critique,
		}
	}
	return resp
}
