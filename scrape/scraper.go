// Package scrape orchestrates fetching a page and extracting its article.
package scrape

import (
	"context"
	"sort"

	"github.com/fwojciec/yardstick"
)

// DefaultExtractor names the selector-heuristic extractor.
const DefaultExtractor = "selector"

// Ensure Scraper implements yardstick.Scraper at compile time.
var _ yardstick.Scraper = (*Scraper)(nil)

// Scraper fetches a URL and runs one of its registered extractors on the
// result. Each call is independent; failures are reported, never retried.
type Scraper struct {
	// Fetcher retrieves raw HTML.
	Fetcher yardstick.Fetcher

	// RenderFetcher, if set, serves requests with Render enabled.
	RenderFetcher yardstick.Fetcher

	// Converter renders the article container for FormatMarkdown.
	Converter yardstick.Converter

	extractors map[string]yardstick.Extractor
}

// NewScraper creates a Scraper that fetches with fetcher and extracts with
// the default extractor. Additional extractors are added with Register.
func NewScraper(fetcher yardstick.Fetcher, extractor yardstick.Extractor) *Scraper {
	return &Scraper{
		Fetcher: fetcher,
		extractors: map[string]yardstick.Extractor{
			DefaultExtractor: extractor,
		},
	}
}

// Register adds an extractor under name.
// If an extractor is already registered under name, it is replaced.
func (s *Scraper) Register(name string, extractor yardstick.Extractor) {
	if s.extractors == nil {
		s.extractors = make(map[string]yardstick.Extractor)
	}
	s.extractors[name] = extractor
}

// Extractors returns the registered extractor names in sorted order.
func (s *Scraper) Extractors() []string {
	names := make([]string, 0, len(s.extractors))
	for name := range s.extractors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Scrape fetches req.URL and returns the extracted article.
func (s *Scraper) Scrape(ctx context.Context, req yardstick.ScrapeRequest) (*yardstick.Article, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	name := req.Extractor
	if name == "" {
		name = DefaultExtractor
	}
	extractor, ok := s.extractors[name]
	if !ok {
		return nil, yardstick.Errorf(yardstick.EINVALID, "unknown extractor %q", name)
	}

	fetcher := s.Fetcher
	if req.Render {
		if s.RenderFetcher == nil {
			return nil, yardstick.Errorf(yardstick.EINVALID, "browser rendering is not enabled")
		}
		fetcher = s.RenderFetcher
	}

	url := yardstick.NormalizeURL(req.URL)

	html, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, yardstick.Errorf(yardstick.EFETCH, "Failed to fetch URL: %s", errorText(err))
	}

	result, err := extractor.Extract(html)
	if err != nil {
		return nil, wrap(err)
	}

	content := result.Content
	if req.Format == yardstick.FormatMarkdown {
		if s.Converter == nil {
			return nil, yardstick.Errorf(yardstick.EINVALID, "markdown output is not enabled")
		}
		content, err = s.Converter.Convert(result.ContentHTML, url)
		if err != nil {
			return nil, wrap(err)
		}
	}

	return &yardstick.Article{
		Title:   result.Title,
		Content: content,
		URL:     url,
	}, nil
}

// errorText returns the message of a domain error or the full text of any
// other error.
func errorText(err error) string {
	if yardstick.ErrorCode(err) == yardstick.EINTERNAL {
		return err.Error()
	}
	return yardstick.ErrorMessage(err)
}

// wrap passes domain errors through and reports anything else as an
// internal scraping error.
func wrap(err error) error {
	if yardstick.ErrorCode(err) != yardstick.EINTERNAL {
		return err
	}
	return yardstick.Errorf(yardstick.EINTERNAL, "Error scraping article: %v", err)
}
