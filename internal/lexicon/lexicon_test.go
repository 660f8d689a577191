package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedTables(t *testing.T) {
	lex, err := Load()
	require.NoError(t, err)
	require.NotNil(t, lex)

	assert.Equal(t, []string{
		"key", "important", "main", "essential", "critical", "significant",
		"primary", "focus", "because", "therefore", "thus", "result",
	}, lex.KeyIndicators)
	assert.Len(t, lex.Simplifications, 10)
	assert.Equal(t, Replacement{From: "utilize", To: "use"}, lex.Simplifications[0])
	assert.Equal(t, Replacement{From: "furthermore", To: "also"}, lex.Simplifications[9])
}

func TestLoad_ReturnsSameInstance(t *testing.T) {
	a := MustLoad()
	b := MustLoad()
	assert.Same(t, a, b)
}

func TestIsStopWord(t *testing.T) {
	lex := MustLoad()

	assert.True(t, lex.IsStopWord("the"))
	assert.True(t, lex.IsStopWord("which"))
	assert.True(t, lex.IsStopWord("because"))
	assert.False(t, lex.IsStopWord("summary"))
	assert.False(t, lex.IsStopWord("The"), "lookup expects lower-cased input")
}

func TestParse_Invalid(t *testing.T) {
	_, err := parse([]byte(`{ not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse lexicon")

	_, err = parse([]byte(`{"stop_words": ["the"]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no key indicators")
}

func TestSimplifications_TargetsDoNotReintroduceSources(t *testing.T) {
	lex := MustLoad()
	for _, r := range lex.Simplifications {
		for _, other := range lex.Simplifications {
			assert.NotContains(t, r.To, other.From, "%q -> %q would be rewritten again by %q", r.From, r.To, other.From)
		}
	}
}
