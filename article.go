package yardstick

import (
	"context"
	"strings"
)

// Article is the result of scraping a single URL.
type Article struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

// Format selects how article content is rendered.
type Format string

// Format constants for ScrapeRequest.
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

// ScrapeRequest describes a single scrape.
type ScrapeRequest struct {
	URL string `json:"url"`

	// Format defaults to FormatText.
	Format Format `json:"format,omitempty"`

	// Extractor names the extraction strategy. Empty selects the default.
	Extractor string `json:"extractor,omitempty"`

	// Render fetches the page through a headless browser when available.
	Render bool `json:"render,omitempty"`
}

// Validate returns an error if the request contains invalid fields.
func (r *ScrapeRequest) Validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return Errorf(EINVALID, "URL is required")
	}
	switch r.Format {
	case "", FormatText, FormatMarkdown:
	default:
		return Errorf(EINVALID, "unsupported format %q", r.Format)
	}
	return nil
}

// Scraper fetches a URL and extracts the article it contains.
type Scraper interface {
	// Scrape returns the article at the request URL.
	// Returns EINVALID for a bad request, EFETCH if the page cannot be
	// retrieved and ENOTFOUND if no article content is found.
	Scrape(ctx context.Context, req ScrapeRequest) (*Article, error)
}

// NormalizeURL trims the URL and prefixes https:// when it has no
// http or https scheme.
func NormalizeURL(rawURL string) string {
	u := strings.TrimSpace(rawURL)
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return "https://" + u
}
