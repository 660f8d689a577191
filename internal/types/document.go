// Package types provides type definitions for structured data used throughout the polysum system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// NormalizedDocument is the cleaned, segmented form of one input text.
// It is built once per request and never mutated afterwards.
type NormalizedDocument struct {
	Original   string   `json:"original"`
	Normalized string   `json:"normalized"`
	Sentences  []string `json:"sentences"`
	WordCount  int      `json:"word_count"`
}

// ScoredSentence is a sentence with its heuristic score and original position
type ScoredSentence struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
	Index int    `json:"index"`
}
