// Package readability implements yardstick.Extractor with go-readability,
// a port of Mozilla's Readability scoring algorithm.
package readability

import (
	"strings"

	"github.com/fwojciec/yardstick"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements yardstick.Extractor at compile time.
var _ yardstick.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article title and body text.
func (e *Extractor) Extract(rawHTML string) (*yardstick.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, yardstick.Errorf(yardstick.ENOTFOUND, "Could not find article content")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, yardstick.Errorf(yardstick.ENOTFOUND, "Could not find article content: %v", err)
	}

	content := strings.Join(strings.Fields(article.TextContent), " ")
	if content == "" {
		return nil, yardstick.Errorf(yardstick.ENOTFOUND, "Could not find article content")
	}

	title := strings.Join(strings.Fields(article.Title), " ")
	if title == "" {
		title = yardstick.DefaultTitle
	}

	return &yardstick.ExtractResult{
		Title:       title,
		Content:     content,
		ContentHTML: article.Content,
	}, nil
}
