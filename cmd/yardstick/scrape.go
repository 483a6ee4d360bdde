package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/yardstick"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	article, err := deps.Scraper.Scrape(deps.Ctx, yardstick.ScrapeRequest{
		URL:       c.URL,
		Format:    yardstick.Format(c.Format),
		Extractor: c.Extractor,
		Render:    c.Render,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", yardstick.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(article)
	}

	fmt.Fprintf(deps.Stdout, "%s\n%s\n\n%s\n", article.Title, article.URL, article.Content)
	return nil
}
