package ingestion

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Input formats
const (
	FormatText = "text"
	FormatHTML = "html"
)

// maxInputBytes caps how much is read from a single source
const maxInputBytes = 10 << 20

var (
	innerSpacePattern  = regexp.MustCompile(`[ \t]+`)
	excessBlankPattern = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes line endings and spacing while keeping paragraph breaks
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := strings.Join(lines, "\n")
	result = excessBlankPattern.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine collapses runs of spaces and tabs and trims the line
func cleanLine(line string) string {
	return strings.TrimSpace(innerSpacePattern.ReplaceAllString(line, " "))
}

// IngestFromFile reads a text or HTML file and returns cleaned text with metadata
func IngestFromFile(path string) (string, *Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil, &IngestionError{Source: path, Message: "file not found", Cause: err}
		}
		return "", nil, &IngestionError{Source: path, Message: "failed to open file", Cause: err}
	}
	defer func() { _ = f.Close() }()

	return IngestFromReader(f, path)
}

// IngestFromReader reads all of r and returns cleaned text with metadata.
// name is recorded as the source and its extension is used to detect HTML.
func IngestFromReader(r io.Reader, name string) (string, *Metadata, error) {
	raw, err := io.ReadAll(io.LimitReader(r, maxInputBytes+1))
	if err != nil {
		return "", nil, &IngestionError{Source: name, Message: "failed to read input", Cause: err}
	}
	if len(raw) > maxInputBytes {
		return "", nil, &IngestionError{Source: name, Message: "input exceeds 10 MiB"}
	}

	content := string(raw)
	format := DetectFormat(name, content)
	if format == FormatHTML {
		content, err = HTMLToText(content)
		if err != nil {
			return "", nil, &IngestionError{Source: name, Message: "failed to convert HTML", Cause: err}
		}
	}

	cleaned := CleanText(content)
	return cleaned, NewMetadata(cleaned, name, format), nil
}

// DetectFormat reports FormatHTML for .html/.htm names or content that opens with an html tag
func DetectFormat(name, content string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return FormatHTML
	}

	head := strings.ToLower(strings.TrimSpace(content))
	if strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html") {
		return FormatHTML
	}
	return FormatText
}
