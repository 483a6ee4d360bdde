// Package trafilatura implements yardstick.Extractor with go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/yardstick"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements yardstick.Extractor at compile time.
var _ yardstick.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, yardstick.Errorf(yardstick.ENOTFOUND, "Could not find article content: %v", err)
	}

	content := strings.Join(strings.Fields(result.ContentText), " ")
	if content == "" {
		return nil, yardstick.Errorf(yardstick.ENOTFOUND, "Could not find article content")
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	title := strings.Join(strings.Fields(result.Metadata.Title), " ")
	if title == "" {
		title = yardstick.DefaultTitle
	}

	return &yardstick.ExtractResult{
		Title:       title,
		Content:     content,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
