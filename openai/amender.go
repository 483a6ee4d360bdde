// Package openai implements yardstick.Amender with OpenAI chat completions.
package openai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/fwojciec/yardstick"
	"github.com/openai/openai-go/v3"
)

// DefaultModel is the chat model used when none is configured.
const DefaultModel = openai.ChatModelGPT4oMini

// Ensure Amender implements yardstick.Amender at compile time.
var _ yardstick.Amender = (*Amender)(nil)

// Amender rewrites article measurements using an OpenAI chat model.
type Amender struct {
	client openai.Client
	model  string
}

// NewAmender creates a new Amender. An empty model selects DefaultModel.
func NewAmender(client openai.Client, model string) *Amender {
	if model == "" {
		model = DefaultModel
	}
	return &Amender{client: client, model: model}
}

// Amend sends text to the model as a single-turn chat and returns the
// trimmed reply.
func (a *Amender) Amend(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", yardstick.Errorf(yardstick.EINVALID, "Article text is required")
	}

	resp, err := a.client.Chat.Completions.New(ctx, BuildParams(a.model, text))
	if err != nil {
		return "", ClassifyError(err)
	}
	if len(resp.Choices) == 0 {
		return "", yardstick.Errorf(yardstick.EUPSTREAM, "Error processing article: model returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// BuildParams returns the chat completion request for text.
func BuildParams(model, text string) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model: model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(yardstick.AmendSystemPrompt),
			openai.UserMessage(yardstick.BuildAmendPrompt(text)),
		},
		Temperature: openai.Float(yardstick.AmendTemperature),
		MaxTokens:   openai.Int(yardstick.AmendMaxOutputTokens),
	}
}

// ClassifyError maps an OpenAI client error to a yardstick error.
// Status codes and error codes on *openai.Error are checked first; the
// message substrings "insufficient_quota"/"429" and "invalid_api_key"/"401"
// are the fallback for errors that carry no structure.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusTooManyRequests, apiErr.Code == "insufficient_quota":
			return quotaError()
		case apiErr.StatusCode == http.StatusUnauthorized, apiErr.Code == "invalid_api_key":
			return invalidKeyError()
		}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "insufficient_quota"), strings.Contains(msg, "429"):
		return quotaError()
	case strings.Contains(msg, "invalid_api_key"), strings.Contains(msg, "401"):
		return invalidKeyError()
	}
	return yardstick.Errorf(yardstick.EUPSTREAM, "Error processing article: %s", msg)
}

func quotaError() error {
	return yardstick.Errorf(yardstick.EQUOTA, "OpenAI API quota exceeded. Please check your OpenAI account billing and usage limits.")
}

func invalidKeyError() error {
	return yardstick.Errorf(yardstick.EUNAUTHORIZED, "Invalid OpenAI API key. Please check your OPENAI_API_KEY environment variable.")
}
