package textstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordCount(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"empty", "", 0},
		{"whitespace only", "  \t\n ", 0},
		{"single word", "hello", 1},
		{"mixed whitespace", " one\ttwo\nthree  four ", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WordCount(tt.text))
		})
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 3, Round(2.5))
	assert.Equal(t, -2, Round(-2.5))
	assert.Equal(t, 2, Round(2.49))
	assert.Equal(t, -3, Round(-2.51))
	assert.Equal(t, 0, Round(0))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 70, Percent(0.7))
	assert.Equal(t, 67, Percent(2.0/3.0))
	assert.Equal(t, -50, Percent(-0.5))
	assert.Equal(t, 100, Percent(1))
}

func TestAvgWordLength(t *testing.T) {
	assert.Equal(t, 0.0, AvgWordLength(""))
	assert.Equal(t, 0.0, AvgWordLength("   "))
	assert.Equal(t, 3.0, AvgWordLength("one two six"))
	assert.InDelta(t, 3.0, AvgWordLength("ab cdef"), 1e-9)
	assert.InDelta(t, 3.5, AvgWordLength("abc defg"), 1e-9)
}

func TestCharCount(t *testing.T) {
	assert.Equal(t, 5, CharCount("héllo"))
	assert.Equal(t, 0, CharCount(""))
}
