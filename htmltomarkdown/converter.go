// Package htmltomarkdown implements yardstick.Converter with
// JohannesKaufmann/html-to-markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/yardstick"
)

// DroppedTags are elements with no readable article content. They are
// removed before rendering.
var DroppedTags = []string{"iframe", "form", "button", "svg", "noscript"}

// Ensure Converter implements yardstick.Converter at compile time.
var _ yardstick.Converter = (*Converter)(nil)

// Converter renders article containers as CommonMark with tables.
type Converter struct {
	conv    *converter.Converter
	dropped []string
	images  bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithDroppedTags replaces DroppedTags.
func WithDroppedTags(tags []string) Option {
	return func(c *Converter) {
		c.dropped = tags
	}
}

// WithoutImages removes images and figures from the output.
func WithoutImages() Option {
	return func(c *Converter) {
		c.images = false
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		dropped: DroppedTags,
		images:  true,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.conv = converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)

	dropped := c.dropped
	if !c.images {
		dropped = append(dropped[:len(dropped):len(dropped)], "img", "picture", "figure")
	}
	for _, tag := range dropped {
		c.conv.Register.TagType(tag, converter.TagTypeRemove, converter.PriorityStandard)
	}
	return c
}

// Convert renders html as Markdown, resolving relative URLs against baseURL.
func (c *Converter) Convert(html, baseURL string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", yardstick.Errorf(yardstick.EINVALID, "empty HTML input")
	}

	var opts []converter.ConvertOptionFunc
	if baseURL != "" {
		opts = append(opts, converter.WithDomain(baseURL))
	}

	result, err := c.conv.ConvertString(html, opts...)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}
