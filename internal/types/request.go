package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Default bounds for the caller-side input gate
const (
	DefaultMinChars = 100
	DefaultMaxChars = 50000
)

var validate = validator.New()

// SummarizeRequest represents the request body for /summarize
type SummarizeRequest struct {
	Text  string `json:"text" validate:"required"`
	Debug bool   `json:"debug,omitempty"`
}

// Validate checks the request against the default length bounds.
func (r *SummarizeRequest) Validate() error {
	return r.ValidateLength(DefaultMinChars, DefaultMaxChars)
}

// ValidateLength checks that the trimmed text holds between minChars and maxChars characters.
// A non-positive maxChars disables the upper bound.
func (r *SummarizeRequest) ValidateLength(minChars, maxChars int) error {
	if err := validate.Struct(r); err != nil {
		return &InputError{Field: "text", Message: "text is required"}
	}

	rule := fmt.Sprintf("min=%d", minChars)
	if maxChars > 0 {
		rule += fmt.Sprintf(",max=%d", maxChars)
	}

	err := validate.Var(strings.TrimSpace(r.Text), rule)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "max" {
		return &InputError{
			Field:   "text",
			Message: fmt.Sprintf("Text exceeds maximum length of %d characters", maxChars),
		}
	}
	return &InputError{
		Field:   "text",
		Message: fmt.Sprintf("Text must be at least %d characters long", minChars),
	}
}

// Stats holds display statistics derived by the caller from pipeline output
type Stats struct {
	OriginalWords      int   `json:"original_words"`
	SummaryWords       int   `json:"summary_words"`
	CompressionPercent int   `json:"compression_percent"`
	LatencyMS          int64 `json:"latency_ms"`
}

// AgentReports carries the raw agent results, exposed only in debug mode
type AgentReports struct {
	Reasoning      ReasoningResult      `json:"reasoning"`
	Verification   VerificationResult   `json:"verification"`
	Simplification SimplificationResult `json:"simplification"`
	Critique       CritiqueResult       `json:"critique"`
}

// SummarizeResponse represents the response body for /summarize
type SummarizeResponse struct {
	Summary string        `json:"summary"`
	Stats   Stats         `json:"stats"`
	Agents  *AgentReports `json:"agents,omitempty"`
}
