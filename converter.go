package yardstick

// Converter renders an article container as Markdown.
type Converter interface {
	// Convert transforms the container HTML into Markdown. Relative links
	// and images are resolved against baseURL when it is not empty.
	Convert(html, baseURL string) (string, error)
}
