package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request SummarizeRequest
		wantErr bool
		errMsg  string
	}{
		{
			name:    "exactly minimum length",
			request: SummarizeRequest{Text: strings.Repeat("a", 100)},
			wantErr: false,
		},
		{
			name:    "exactly maximum length",
			request: SummarizeRequest{Text: strings.Repeat("a", 50000)},
			wantErr: false,
		},
		{
			name:    "missing text",
			request: SummarizeRequest{},
			wantErr: true,
			errMsg:  "text is required",
		},
		{
			name:    "one below minimum",
			request: SummarizeRequest{Text: strings.Repeat("a", 99)},
			wantErr: true,
			errMsg:  "Text must be at least 100 characters long",
		},
		{
			name:    "surrounding whitespace is trimmed",
			request: SummarizeRequest{Text: "   " + strings.Repeat("a", 99) + "\n\n"},
			wantErr: true,
			errMsg:  "Text must be at least 100 characters long",
		},
		{
			name:    "whitespace only",
			request: SummarizeRequest{Text: strings.Repeat(" ", 150)},
			wantErr: true,
			errMsg:  "Text must be at least 100 characters long",
		},
		{
			name:    "one above maximum",
			request: SummarizeRequest{Text: strings.Repeat("a", 50001)},
			wantErr: true,
			errMsg:  "Text exceeds maximum length of 50000 characters",
		},
		{
			name:    "multibyte characters are counted as runes",
			request: SummarizeRequest{Text: strings.Repeat("é", 100)},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				require.Error(t, err)
				var inputErr *InputError
				require.ErrorAs(t, err, &inputErr)
				assert.Equal(t, "text", inputErr.Field)
				assert.Equal(t, tt.errMsg, inputErr.Message)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSummarizeRequest_ValidateLength(t *testing.T) {
	req := SummarizeRequest{Text: "twelve chars"}

	assert.NoError(t, req.ValidateLength(12, 12))
	assert.NoError(t, req.ValidateLength(1, 0), "non-positive max disables the upper bound")

	err := req.ValidateLength(13, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 13")

	err = req.ValidateLength(1, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum length of 5")
}

func TestInputError_Error(t *testing.T) {
	err := &InputError{Field: "text", Message: "text is required"}
	assert.Equal(t, "invalid input: text - text is required", err.Error())
}

func TestSummarizeResponse_OmitsAgentsWhenNil(t *testing.T) {
	resp := SummarizeResponse{
		Summary: "Done.",
		Stats:   Stats{OriginalWords: 10, SummaryWords: 1, CompressionPercent: 90, LatencyMS: 4},
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "agents")
	assert.Contains(t, string(data), `"compression_percent":90`)

	resp.Agents = &AgentReports{}
	data, err = json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"agents"`)
	assert.Contains(t, string(data), `"key_points"`)
}
