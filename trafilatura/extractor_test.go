package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/yardstick"
	"github.com/fwojciec/yardstick/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
		assert.Equal(t, yardstick.ENOTFOUND, yardstick.ErrorCode(err))
		assert.Equal(t, "Could not find article content", yardstick.ErrorMessage(err))
	})

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Record Heatwave - Daily News</title>
<meta property="og:title" content="Record Heatwave Hits the Coast">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Record Heatwave Hits the Coast</h1>
<p>Temperatures reached 41 degrees Celsius on Tuesday, the highest reading since records began in the region more than a century ago.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
		assert.NotEqual(t, yardstick.DefaultTitle, result.Title)
	})

	t.Run("extracts main content as text and HTML", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/">Home</a><a href="/world">World</a></nav>
<article>
<h1>Bridge Opens</h1>
<p>The new suspension bridge spans 1,200 meters and carries six lanes of traffic across the bay.</p>
<p>Engineers say the deck can flex by up to two meters in high winds without any damage.</p>
</article>
<aside>Sidebar content</aside>
<footer>Copyright 2024</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.Content, "spans 1,200 meters")
		assert.NotContains(t, result.Content, "\n")
		assert.NotContains(t, result.Content, "Copyright 2024")
		assert.Contains(t, result.ContentHTML, "1,200 meters")
	})
}
