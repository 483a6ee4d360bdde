package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/yardstick"
)

// Ensure LoggingAmender implements yardstick.Amender.
var _ yardstick.Amender = (*LoggingAmender)(nil)

// LoggingAmender wraps an Amender and logs each call. Article text is
// never logged, only its length.
type LoggingAmender struct {
	next   yardstick.Amender
	logger *slog.Logger
}

// NewLoggingAmender creates a new LoggingAmender.
func NewLoggingAmender(next yardstick.Amender, logger *slog.Logger) *LoggingAmender {
	return &LoggingAmender{next: next, logger: logger}
}

// Amend delegates to the wrapped amender and logs the outcome.
func (a *LoggingAmender) Amend(ctx context.Context, text string) (amended string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"input_chars", len(text),
			"output_chars", len(amended),
			"duration", time.Since(begin),
		}
		if err != nil {
			attrs = append(attrs, "error_type", string(yardstick.AmendErrorTypeOf(err)), "err", err)
			a.logger.Warn("amend", attrs...)
			return
		}
		a.logger.Info("amend", attrs...)
	}(time.Now())
	return a.next.Amend(ctx, text)
}
