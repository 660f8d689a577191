package types

// Quality labels assigned by the critique assessor
const (
	QualityGood             = "Good"
	QualityFair             = "Fair"
	QualityNeedsImprovement = "Needs improvement"
)

// ReasoningResult is the extractive summary chosen by the reasoning extractor
type ReasoningResult struct {
	Summary    string  `json:"summary"`
	Confidence float64 `json:"confidence"`
	KeyPoints  int     `json:"key_points"`
}

// VerificationResult reports how much of the summary's vocabulary is found in the source
type VerificationResult struct {
	Verified   bool     `json:"verified"`
	Coverage   int      `json:"coverage"` // integer percent 0-100
	Issues     []string `json:"issues"`
	Confidence float64  `json:"confidence"` // raw coverage fraction
}

// SimplificationResult is the lexically simplified summary
type SimplificationResult struct {
	Summary             string  `json:"summary"`
	ReadabilityImproved bool    `json:"readability_improved"`
	AvgWordLength       string  `json:"avg_word_length"` // one decimal place, e.g. "5.3"
	Confidence          float64 `json:"confidence"`
}

// CritiqueResult flags compression and term coverage problems in the summary
type CritiqueResult struct {
	Issues           []string `json:"issues"`
	CompressionRatio int      `json:"compression_ratio"` // integer percent, may be negative
	Quality          string   `json:"quality"`
	Confidence       float64  `json:"confidence"`
}
