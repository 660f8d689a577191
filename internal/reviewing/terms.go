package reviewing

import (
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/polysum/internal/lexicon"
	"github.com/jonathan/polysum/internal/textstat"
)

const (
	// maxImportantTerms caps the number of terms returned by ImportantTerms
	maxImportantTerms = 10
	// minTermFrequency is how often a term must occur to be important
	minTermFrequency = 2
	// minTermChars is the length a term must exceed
	minTermChars = 4
)

type termCount struct {
	term  string
	count int
	first int
}

// ImportantTerms returns up to ten frequent content words of text, most frequent first.
// Words are lower-cased and stripped of everything outside a-z; words of four characters or fewer,
// stop words, and words seen fewer than twice are dropped. Ties keep first-appearance order.
func ImportantTerms(text string) []string {
	lex := lexicon.MustLoad()

	counts := make(map[string]*termCount)
	order := 0
	for _, word := range strings.Fields(lettersOnly(strings.ToLower(text))) {
		if textstat.CharCount(word) <= minTermChars || lex.IsStopWord(word) {
			continue
		}
		tc, ok := counts[word]
		if !ok {
			tc = &termCount{term: word, first: order}
			counts[word] = tc
			order++
		}
		tc.count++
	}

	frequent := make([]*termCount, 0, len(counts))
	for _, tc := range counts {
		if tc.count >= minTermFrequency {
			frequent = append(frequent, tc)
		}
	}
	sort.Slice(frequent, func(i, j int) bool {
		if frequent[i].count != frequent[j].count {
			return frequent[i].count > frequent[j].count
		}
		return frequent[i].first < frequent[j].first
	})

	n := min(len(frequent), maxImportantTerms)
	terms := make([]string, n)
	for i := 0; i < n; i++ {
		terms[i] = frequent[i].term
	}
	return terms
}

// lettersOnly drops every rune that is neither an ASCII lower-case letter nor whitespace.
// s must already be lower-cased.
func lettersOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if ('a' <= r && r <= 'z') || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
}
