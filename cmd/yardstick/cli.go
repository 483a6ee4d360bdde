package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/yardstick"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Scraper yardstick.Scraper
	Amender yardstick.Amender
}

// providerGemini selects the Gemini amender; any other provider is OpenAI.
const providerGemini = "gemini"

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Provider     string        `default:"openai" enum:"openai,gemini" env:"YARDSTICK_PROVIDER" help:"Language model provider (${enum})"`
	OpenAIAPIKey string        `name:"openai-api-key" env:"OPENAI_API_KEY" help:"OpenAI API key"`
	GeminiAPIKey string        `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	Model        string        `help:"Model name (defaults to the provider's default)"`
	FetchTimeout time.Duration `default:"10s" help:"Timeout for fetching a page"`
	Browser      bool          `help:"Enable headless browser rendering for requests that ask for it"`
	Debug        bool          `help:"Enable debug logging"`

	Serve  ServeCmd  `cmd:"" help:"Run the web server"`
	Scrape ScrapeCmd `cmd:"" help:"Scrape a news article and print it"`
	Amend  AmendCmd  `cmd:"" help:"Rewrite the measurements in article text"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Host string `default:"0.0.0.0" help:"Interface to bind"`
	Port int    `default:"5000" env:"PORT" help:"Port to listen on"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL       string `arg:"" help:"Article URL (https:// is assumed when no scheme is given)"`
	Format    string `default:"text" enum:"text,markdown" help:"Content format (${enum})"`
	Extractor string `default:"selector" enum:"selector,readability,trafilatura" help:"Extraction strategy (${enum})"`
	Render    bool   `help:"Fetch through the headless browser (requires --browser)"`
	JSON      bool   `name:"json" help:"Print the article as JSON"`
}

// AmendCmd is the "amend" subcommand.
type AmendCmd struct {
	Text string `arg:"" optional:"" help:"Article text, or - to read standard input (default)"`
}
