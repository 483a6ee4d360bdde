package yardstick

import "context"

// UserAgent is the desktop-browser identity sent with every fetch.
// Many publishers serve reduced or blocked pages to unknown clients.
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch performs a GET for the URL and returns the response body.
	// Non-2xx responses and transport failures return EFETCH.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
