// Package lexicon provides the fixed word tables used by the summarization agents.
// The tables are stored as JSON, embedded at compile time, and parsed once.
package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed lexicon.json
var lexiconJSON []byte

// Replacement maps a complex term to its simpler equivalent
type Replacement struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Lexicon holds the immutable tables. Callers must not modify the returned slices or maps.
type Lexicon struct {
	KeyIndicators   []string      `json:"key_indicators"`
	StopWordList    []string      `json:"stop_words"`
	Simplifications []Replacement `json:"simplifications"`

	stopWords map[string]bool
}

var (
	loaded  *Lexicon
	loadErr error
	once    sync.Once
)

// Load parses the embedded tables on first use and returns the shared Lexicon.
func Load() (*Lexicon, error) {
	once.Do(func() {
		loaded, loadErr = parse(lexiconJSON)
	})
	return loaded, loadErr
}

// MustLoad returns the shared Lexicon, panicking if the embedded tables are malformed.
func MustLoad() *Lexicon {
	lex, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load lexicon: %v", err))
	}
	return lex
}

func parse(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := json.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon: %w", err)
	}
	if len(lex.KeyIndicators) == 0 {
		return nil, fmt.Errorf("lexicon has no key indicators")
	}

	lex.stopWords = make(map[string]bool, len(lex.StopWordList))
	for _, w := range lex.StopWordList {
		lex.stopWords[w] = true
	}
	return &lex, nil
}

// IsStopWord reports whether the lower-cased word is in the stop-word table
func (l *Lexicon) IsStopWord(word string) bool {
	return l.stopWords[word]
}
