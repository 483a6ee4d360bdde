package goquery

import "github.com/PuerkitoBio/goquery"

// Matcher locates a candidate element in a document.
type Matcher struct {
	// Name identifies the matcher in logs and tests, usually the CSS selector.
	Name string

	// Match returns the first matching element under root, or an empty
	// selection when nothing matches.
	Match func(root *goquery.Selection) *goquery.Selection
}

// CSS returns a Matcher that selects the first element matching the
// CSS selector in document order.
func CSS(selector string) Matcher {
	return Matcher{
		Name: selector,
		Match: func(root *goquery.Selection) *goquery.Selection {
			return root.Find(selector).First()
		},
	}
}

// RemovedElements are stripped from the document, at any depth, before any
// text is read. "advertisement" is a custom element some publishers use.
var RemovedElements = []string{
	"script",
	"style",
	"nav",
	"header",
	"footer",
	"aside",
	"advertisement",
}

// ContentSelectors encode common publishing-platform markup for the article
// body, highest priority first. The first match is authoritative; no
// candidate scoring is done.
var ContentSelectors = []Matcher{
	CSS("article"),
	CSS(`[role="article"]`),
	CSS(".article-body"),
	CSS(".article-content"),
	CSS(".post-content"),
	CSS(".entry-content"),
	CSS(".story-body"),
	CSS(".content-body"),
	CSS(".article-text"),
	CSS("#article-body"),
	CSS("#article-content"),
	CSS("main article"),
}

// FallbackSelectors are coarser containers tried when no content selector
// matches.
var FallbackSelectors = []Matcher{
	CSS("main"),
	CSS("article"),
	CSS("body"),
}

// TitleSelectors locate the headline independently of the body container.
var TitleSelectors = []Matcher{
	CSS("h1"),
	CSS(".article-title"),
	CSS(".headline"),
	CSS("title"),
}

// FirstMatch evaluates matchers in order and returns the first non-empty
// selection together with the matcher that produced it.
func FirstMatch(root *goquery.Selection, matchers []Matcher) (*goquery.Selection, Matcher, bool) {
	for _, m := range matchers {
		if sel := m.Match(root); sel != nil && sel.Length() > 0 {
			return sel, m, true
		}
	}
	return nil, Matcher{}, false
}
