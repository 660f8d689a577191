// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/polysum/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Writer returns the underlying writer
func (p *Printer) Writer() io.Writer {
	return p.out
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens line to at most width runes, marking the cut with "..."
func truncate(line string, width int) string {
	runes := []rune(line)
	if len(runes) <= width {
		return line
	}
	return string(runes[:width-3]) + "..."
}

// wrap breaks text into lines of at most width runes on word boundaries
func wrap(text string, width int) []string {
	var lines []string
	var current strings.Builder
	for _, word := range strings.Fields(text) {
		if current.Len() > 0 && len([]rune(current.String()))+1+len([]rune(word)) > width {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}

// PrintDocument outputs the normalized document and its first sentences.
func (p *Printer) PrintDocument(doc *types.NormalizedDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Words:     %d\n", doc.WordCount))
	sb.WriteString(fmt.Sprintf("Sentences: %d\n", len(doc.Sentences)))

	if len(doc.Sentences) > 0 {
		sb.WriteString("\n")
		count := min(len(doc.Sentences), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, doc.Sentences[i]))
		}
		if len(doc.Sentences) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Sentences)-maxItemsToShow))
		}
	}

	p.printBox("NORMALIZED DOCUMENT", sb.String())
}

// PrintReasoning outputs the extracted summary.
func (p *Printer) PrintReasoning(result *types.ReasoningResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Key points: %d\n", result.KeyPoints))
	sb.WriteString(fmt.Sprintf("Confidence: %.2f\n", result.Confidence))
	sb.WriteString("\n")
	for _, line := range wrap(result.Summary, boxWidth-4) {
		sb.WriteString(line + "\n")
	}

	p.printBox("REASONING", sb.String())
}

// PrintVerification outputs coverage and any issues.
func (p *Printer) PrintVerification(result *types.VerificationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	status := "✗ not verified"
	if result.Verified {
		status = "✓ verified"
	}
	sb.WriteString(fmt.Sprintf("Status:   %s\n", status))
	sb.WriteString(fmt.Sprintf("Coverage: %d%%\n", result.Coverage))
	for _, issue := range result.Issues {
		sb.WriteString(fmt.Sprintf("  ⚠ %s\n", issue))
	}

	p.printBox("VERIFICATION", sb.String())
}

// PrintSimplification outputs the simplified summary.
func (p *Printer) PrintSimplification(result *types.SimplificationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Avg word length:      %s\n", result.AvgWordLength))
	sb.WriteString(fmt.Sprintf("Readability improved: %t\n", result.ReadabilityImproved))
	sb.WriteString("\n")
	for _, line := range wrap(result.Summary, boxWidth-4) {
		sb.WriteString(line + "\n")
	}

	p.printBox("SIMPLIFICATION", sb.String())
}

// PrintCritique outputs quality, compression and issues.
func (p *Printer) PrintCritique(result *types.CritiqueResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Quality:     %s\n", result.Quality))
	sb.WriteString(fmt.Sprintf("Compression: %d%%\n", result.CompressionRatio))

	if len(result.Issues) == 0 {
		sb.WriteString("\n✓ No issues found\n")
	} else {
		sb.WriteString(fmt.Sprintf("\n%d issues:\n", len(result.Issues)))
		for _, issue := range result.Issues {
			sb.WriteString(fmt.Sprintf("  • %s\n", issue))
		}
	}

	p.printBox("CRITIQUE", sb.String())
}

// PrintStats outputs the caller-side statistics for a summary.
func (p *Printer) PrintStats(stats *types.Stats) {
	if stats == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Original words: %d\n", stats.OriginalWords))
	sb.WriteString(fmt.Sprintf("Summary words:  %d\n", stats.SummaryWords))
	sb.WriteString(fmt.Sprintf("Compression:    %d%%\n", stats.CompressionPercent))
	sb.WriteString(fmt.Sprintf("Latency:        %dms\n", stats.LatencyMS))

	p.printBox("STATS", sb.String())
}
