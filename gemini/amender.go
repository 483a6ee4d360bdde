// Package gemini implements yardstick.Amender with Google Gemini.
package gemini

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/fwojciec/yardstick"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Amender implements yardstick.Amender at compile time.
var _ yardstick.Amender = (*Amender)(nil)

// Amender implements yardstick.Amender using Google Gemini.
type Amender struct {
	client *genai.Client
	model  string
}

// NewAmender creates a new Amender. An empty model selects DefaultModel.
func NewAmender(client *genai.Client, model string) *Amender {
	if model == "" {
		model = DefaultModel
	}
	return &Amender{client: client, model: model}
}

// Amend asks the model to rewrite the measurements in text.
func (a *Amender) Amend(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", yardstick.Errorf(yardstick.EINVALID, "Article text is required")
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: yardstick.BuildAmendPrompt(text)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", ClassifyError(err)
	}
	if result == nil {
		return "", yardstick.Errorf(yardstick.EUPSTREAM, "Error processing article: gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for amend calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(yardstick.AmendTemperature)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: yardstick.AmendSystemPrompt}},
		},
		Temperature:     &temp,
		MaxOutputTokens: yardstick.AmendMaxOutputTokens,
	}
}

// ClassifyError maps a Gemini client error to a yardstick error.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests, apiErr.Status == "RESOURCE_EXHAUSTED":
			return quotaError()
		case apiErr.Code == http.StatusUnauthorized, apiErr.Code == http.StatusForbidden,
			strings.Contains(apiErr.Message, "API key not valid"):
			return invalidKeyError()
		}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "RESOURCE_EXHAUSTED"), strings.Contains(msg, "429"):
		return quotaError()
	case strings.Contains(msg, "API_KEY_INVALID"), strings.Contains(msg, "401"):
		return invalidKeyError()
	}
	return yardstick.Errorf(yardstick.EUPSTREAM, "Error processing article: %s", msg)
}

func quotaError() error {
	return yardstick.Errorf(yardstick.EQUOTA, "Gemini API quota exceeded. Please check your Google AI account billing and usage limits.")
}

func invalidKeyError() error {
	return yardstick.Errorf(yardstick.EUNAUTHORIZED, "Invalid Gemini API key. Please check your GEMINI_API_KEY environment variable.")
}
