package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelector matches elements whose text never belongs in a summary
const noiseSelector = "script, style, noscript, template, iframe, svg"

// blockSelector matches elements that end a paragraph of text
const blockSelector = "p, div, section, article, li, h1, h2, h3, h4, h5, h6, blockquote, pre, tr"

// HTMLToText parses html and returns the readable body text.
// Block elements are separated by blank lines so sentences in adjacent paragraphs do not run together.
func HTMLToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(noiseSelector).Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n\n")
	})

	return doc.Find("body").Text(), nil
}
