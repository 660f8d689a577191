// Package textstat provides the small text measurements shared by the agents and the callers.
package textstat

import (
	"math"
	"strings"
	"unicode/utf8"
)

// WordCount returns the number of whitespace-delimited tokens in s
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// CharCount returns the number of characters (runes) in s
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}

// Round rounds half values toward positive infinity, so Round(-2.5) == -2.
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// Percent converts a fraction to a rounded integer percentage
func Percent(fraction float64) int {
	return Round(fraction * 100)
}

// AvgWordLength returns the mean character length of the non-empty tokens in s, or 0 when there are none.
func AvgWordLength(s string) float64 {
	words := strings.Fields(s)
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		total += CharCount(w)
	}
	return float64(total) / float64(len(words))
}
