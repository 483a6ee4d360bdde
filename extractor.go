package yardstick

// DefaultTitle is the title used when a page has no usable title element.
const DefaultTitle = "Untitled Article"

// ExtractResult holds the content extracted from an HTML page.
type ExtractResult struct {
	// Title is the article headline.
	Title string

	// Content is the article body as whitespace-collapsed plain text.
	Content string

	// ContentHTML is the HTML of the chosen article container.
	ContentHTML string
}

// Extractor locates the article in an HTML page.
type Extractor interface {
	// Extract processes raw HTML and returns the article title and body.
	// Returns ENOTFOUND if no article container can be located.
	Extract(html string) (*ExtractResult, error)
}
