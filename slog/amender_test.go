package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/yardstick"
	"github.com/fwojciec/yardstick/mock"
	ydslog "github.com/fwojciec/yardstick/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingAmender_Amend(t *testing.T) {
	t.Parallel()

	t.Run("logs sizes without text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Amender{
			AmendFn: func(context.Context, string) (string, error) {
				return "as tall as a giraffe", nil
			},
		}

		amender := ydslog.NewLoggingAmender(inner, logger)
		got, err := amender.Amend(context.Background(), "5 meters tall")

		require.NoError(t, err)
		assert.Equal(t, "as tall as a giraffe", got)
		output := buf.String()
		assert.Contains(t, output, "msg=amend")
		assert.Contains(t, output, "input_chars=13")
		assert.Contains(t, output, "output_chars=20")
		assert.NotContains(t, output, "giraffe")
	})

	t.Run("logs error type on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Amender{
			AmendFn: func(context.Context, string) (string, error) {
				return "", yardstick.Errorf(yardstick.EQUOTA, "quota exceeded")
			},
		}

		amender := ydslog.NewLoggingAmender(inner, logger)
		_, err := amender.Amend(context.Background(), "text")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "error_type=quota_exceeded")
	})
}
