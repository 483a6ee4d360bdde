// Package goquery implements yardstick.Extractor with an ordered list of
// CSS selectors evaluated over a goquery document.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/yardstick"
	"golang.org/x/net/html"
)

// Ensure Extractor implements yardstick.Extractor at compile time.
var _ yardstick.Extractor = (*Extractor)(nil)

// Extractor finds the article container and headline using selector
// sequences tried in priority order.
type Extractor struct {
	removed  []string
	content  []Matcher
	fallback []Matcher
	title    []Matcher
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithContentSelectors replaces ContentSelectors.
func WithContentSelectors(m []Matcher) Option {
	return func(e *Extractor) {
		e.content = m
	}
}

// WithFallbackSelectors replaces FallbackSelectors.
func WithFallbackSelectors(m []Matcher) Option {
	return func(e *Extractor) {
		e.fallback = m
	}
}

// WithTitleSelectors replaces TitleSelectors.
func WithTitleSelectors(m []Matcher) Option {
	return func(e *Extractor) {
		e.title = m
	}
}

// WithRemovedElements replaces RemovedElements.
func WithRemovedElements(tags []string) Option {
	return func(e *Extractor) {
		e.removed = tags
	}
}

// NewExtractor creates a new Extractor using the package selector lists.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		removed:  RemovedElements,
		content:  ContentSelectors,
		fallback: FallbackSelectors,
		title:    TitleSelectors,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the article title and body text.
func (e *Extractor) Extract(rawHTML string) (*yardstick.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, yardstick.Errorf(yardstick.ENOTFOUND, "Could not find article content")
	}

	// Scripting off so <noscript> children parse as elements, not raw text.
	node, err := html.ParseWithOptions(strings.NewReader(rawHTML), html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, yardstick.Errorf(yardstick.EINVALID, "failed to parse HTML: %v", err)
	}
	doc := goquery.NewDocumentFromNode(node)

	if len(e.removed) > 0 {
		doc.Find(strings.Join(e.removed, ", ")).Remove()
	}

	container, ok := e.container(doc.Selection)
	if !ok {
		return nil, yardstick.Errorf(yardstick.ENOTFOUND, "Could not find article content")
	}

	content := Text(container)
	if content == "" {
		return nil, yardstick.Errorf(yardstick.ENOTFOUND, "Could not find article content")
	}

	contentHTML, err := goquery.OuterHtml(container)
	if err != nil {
		return nil, err
	}

	return &yardstick.ExtractResult{
		Title:       e.headline(doc.Selection),
		Content:     content,
		ContentHTML: contentHTML,
	}, nil
}

func (e *Extractor) container(root *goquery.Selection) (*goquery.Selection, bool) {
	if sel, _, ok := FirstMatch(root, e.content); ok {
		return sel, true
	}
	sel, _, ok := FirstMatch(root, e.fallback)
	return sel, ok
}

// headline returns the text of the first matching title candidate. An empty
// match falls through to the document <title>, then yardstick.DefaultTitle.
func (e *Extractor) headline(root *goquery.Selection) string {
	if sel, _, ok := FirstMatch(root, e.title); ok {
		if title := CleanText(sel.Text()); title != "" {
			return title
		}
	}
	if title := CleanText(root.Find("title").First().Text()); title != "" {
		return title
	}
	return yardstick.DefaultTitle
}

// Text returns the text of every node under sel. Each text node is trimmed,
// empty ones are dropped and the rest are joined with a blank line before
// CleanText collapses all whitespace. Paragraph breaks therefore do not
// survive; use the container HTML when structure matters.
func Text(sel *goquery.Selection) string {
	var parts []string
	for _, n := range sel.Nodes {
		collectText(n, &parts)
	}
	return CleanText(strings.Join(parts, "\n\n"))
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if s := strings.TrimSpace(n.Data); s != "" {
			*parts = append(*parts, s)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// CleanText collapses every whitespace run to a single space and trims the
// result.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
