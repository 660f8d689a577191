package ingestion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_JSONMarshaling(t *testing.T) {
	metadata := &Metadata{
		Source:     "notes.txt",
		Format:     FormatText,
		Timestamp:  "2024-01-01T00:00:00Z",
		Hash:       "abcd1234",
		Characters: 42,
		Words:      7,
	}

	jsonBytes, err := metadata.ToJSON()
	require.NoError(t, err)

	var unmarshaled Metadata
	require.NoError(t, json.Unmarshal(jsonBytes, &unmarshaled))
	assert.Equal(t, *metadata, unmarshaled)
	assert.Contains(t, string(jsonBytes), `"characters": 42`)
}

func TestComputeHash(t *testing.T) {
	hash1 := computeHash("test content")
	hash2 := computeHash("different content")

	assert.Len(t, hash1, 64)
	assert.Len(t, hash2, 64)
	assert.NotEqual(t, hash1, hash2)
	assert.Equal(t, hash1, computeHash("test content"))
}

func TestNewMetadata(t *testing.T) {
	content := "Ünïcode text here"

	metadata := NewMetadata(content, "input.txt", FormatText)

	assert.Equal(t, "input.txt", metadata.Source)
	assert.Equal(t, FormatText, metadata.Format)
	assert.Equal(t, computeHash(content), metadata.Hash)
	assert.Equal(t, 17, metadata.Characters)
	assert.Equal(t, 3, metadata.Words)

	_, err := time.Parse(time.RFC3339, metadata.Timestamp)
	assert.NoError(t, err)
}

func TestIngestionError(t *testing.T) {
	cause := assert.AnError
	err := &IngestionError{Source: "a.txt", Message: "failed to read input", Cause: cause}

	assert.Equal(t, "ingestion error (a.txt): failed to read input: "+cause.Error(), err.Error())
	assert.ErrorIs(t, err, cause)

	noCause := &IngestionError{Source: "b.txt", Message: "input exceeds 10 MiB"}
	assert.Equal(t, "ingestion error (b.txt): input exceeds 10 MiB", noCause.Error())
}
