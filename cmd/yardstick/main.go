package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/yardstick"
	"github.com/fwojciec/yardstick/gemini"
	"github.com/fwojciec/yardstick/goquery"
	"github.com/fwojciec/yardstick/htmltomarkdown"
	ydhttp "github.com/fwojciec/yardstick/http"
	ydopenai "github.com/fwojciec/yardstick/openai"
	"github.com/fwojciec/yardstick/readability"
	"github.com/fwojciec/yardstick/rod"
	"github.com/fwojciec/yardstick/scrape"
	ydslog "github.com/fwojciec/yardstick/slog"
	"github.com/fwojciec/yardstick/trafilatura"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read by the amend command when no text argument is given.
	Stdin io.Reader

	// Services for end-to-end testing. When nil, Run builds them from flags.
	Scraper yardstick.Scraper
	Amender yardstick.Amender

	closers []io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Close releases resources opened by Run.
func (m *Main) Close() error {
	var firstErr error
	for _, c := range m.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.closers = nil
	return firstErr
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("yardstick"),
		kong.Description("Scrape news articles and restate their measurements in familiar terms"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'yardstick --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Debug, kongCtx.Command() == "serve")

	if m.Scraper == nil {
		m.Scraper, err = m.newScraper(cli, deps.Logger)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer m.Close()
	}
	if m.Amender == nil {
		m.Amender, err = newAmender(ctx, cli, deps.Logger)
		if err != nil {
			return fmt.Errorf("failed to create %s client: %w", cli.Provider, err)
		}
	}
	deps.Scraper = m.Scraper
	deps.Amender = m.Amender

	return kongCtx.Run(deps)
}

// newLogger returns a text logger writing to w. The server logs at info
// level; one-shot commands only report warnings unless debug is set.
func newLogger(w io.Writer, debug, server bool) *slog.Logger {
	level := slog.LevelWarn
	if server {
		level = slog.LevelInfo
	}
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newScraper wires the fetchers, extractors and converter.
func (m *Main) newScraper(cli *CLI, logger *slog.Logger) (yardstick.Scraper, error) {
	fetcher := ydslog.NewLoggingFetcher(ydhttp.NewFetcher(ydhttp.WithTimeout(cli.FetchTimeout)), logger)

	s := scrape.NewScraper(fetcher, goquery.NewExtractor())
	s.Register("readability", readability.NewExtractor())
	s.Register("trafilatura", trafilatura.NewExtractor())
	s.Converter = htmltomarkdown.NewConverter()

	if cli.Browser {
		browser, err := rod.NewFetcher(rod.WithFetchTimeout(cli.FetchTimeout))
		if err != nil {
			return nil, err
		}
		m.closers = append(m.closers, browser)
		s.RenderFetcher = ydslog.NewLoggingFetcher(browser, logger)
	}

	return ydslog.NewLoggingScraper(s, logger), nil
}

// Environment variables holding model credentials.
const (
	openAIKeyEnv = "OPENAI_API_KEY"
	geminiKeyEnv = "GEMINI_API_KEY"
)

// newAmender returns the Amender for the configured provider. A missing
// credential yields an Amender that reports the misconfiguration on use.
func newAmender(ctx context.Context, cli *CLI, logger *slog.Logger) (yardstick.Amender, error) {
	var amender yardstick.Amender
	switch cli.Provider {
	case providerGemini:
		if cli.GeminiAPIKey == "" {
			amender = &yardstick.UnconfiguredAmender{EnvVar: geminiKeyEnv}
			break
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cli.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, err
		}
		amender = gemini.NewAmender(client, cli.Model)
	default:
		if cli.OpenAIAPIKey == "" {
			amender = &yardstick.UnconfiguredAmender{EnvVar: openAIKeyEnv}
			break
		}
		client := openai.NewClient(
			option.WithAPIKey(cli.OpenAIAPIKey),
			option.WithMaxRetries(0),
		)
		amender = ydopenai.NewAmender(client, cli.Model)
	}
	return ydslog.NewLoggingAmender(amender, logger), nil
}
