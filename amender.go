package yardstick

import (
	"context"
	"strings"
)

// Amender rewrites the measurements in article text as whimsical comparisons.
type Amender interface {
	// Amend returns the model's rewrite of text, trimmed of surrounding
	// whitespace and otherwise verbatim.
	// Returns EINVALID if text is empty, EUNCONFIGURED if no credential is
	// configured, EQUOTA or EUNAUTHORIZED for the matching upstream
	// failures and EUPSTREAM for any other model error.
	Amend(ctx context.Context, text string) (string, error)
}

// Amendment is the success payload of an amend request.
type Amendment struct {
	AmendedText string `json:"amended_text"`
	Success     bool   `json:"success"`
}

// AmendErrorType classifies amend failures for API clients.
type AmendErrorType string

// AmendErrorType constants.
const (
	AmendErrorConfiguration  AmendErrorType = "configuration_error"
	AmendErrorInvalidRequest AmendErrorType = "invalid_request"
	AmendErrorQuota          AmendErrorType = "quota_exceeded"
	AmendErrorInvalidKey     AmendErrorType = "invalid_key"
	AmendErrorGeneral        AmendErrorType = "general_error"
)

// AmendErrorTypeOf maps an error returned by an Amender to its error type.
func AmendErrorTypeOf(err error) AmendErrorType {
	switch ErrorCode(err) {
	case EUNCONFIGURED:
		return AmendErrorConfiguration
	case EINVALID:
		return AmendErrorInvalidRequest
	case EQUOTA:
		return AmendErrorQuota
	case EUNAUTHORIZED:
		return AmendErrorInvalidKey
	default:
		return AmendErrorGeneral
	}
}

// Sampling parameters shared by every Amender implementation.
const (
	AmendTemperature     = 0.7
	AmendMaxOutputTokens = 4000
)

// AmendSystemPrompt is the fixed persona sent with every amend request.
const AmendSystemPrompt = "You are a helpful assistant that adds quirky measurements to news articles. " +
	"Relate the measurements in the article to different entities that share that attribute."

// BuildAmendPrompt builds the user prompt embedding text verbatim.
func BuildAmendPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString("Replace all measurements in the following text. ")
	sb.WriteString("For every measurement (distance, weight, size, speed, temperature, or population), ")
	sb.WriteString("replace it with a comparison to a different real-world entity that shares that attribute, ")
	sb.WriteString("and restructure the sentence to make the change read naturally.\n\n")
	sb.WriteString("For example:\n")
	sb.WriteString("- \"2 meters\" could become \"the length of 7 and a half submarine sandwiches\"\n")
	sb.WriteString("- \"50 kilograms\" could become \"roughly the weight of 3 corgis\"\n")
	sb.WriteString("- \"100 km/h\" could become \"more than 3 times the top speed of your average electric bicycle\"\n")
	sb.WriteString("- \"5 feet tall\" could become \"1 Danny DeVito\"\n")
	sb.WriteString("- \"10,000 people\" could become \"the population of Montpellier, France\"\n\n")
	sb.WriteString("Keep the tone professional but engaging. ")
	sb.WriteString("Preserve all other content exactly as is, only modifying sentences that contain measurements.\n\n")
	sb.WriteString("Article text:\n")
	sb.WriteString(text)
	sb.WriteString("\n\nAmended article:")
	return sb.String()
}

// Ensure UnconfiguredAmender implements Amender at compile time.
var _ Amender = (*UnconfiguredAmender)(nil)

// UnconfiguredAmender is the Amender used when no model credential is set.
// Every call fails with EUNCONFIGURED without touching the network.
type UnconfiguredAmender struct {
	// EnvVar names the variable that supplies the missing credential.
	EnvVar string
}

// Amend always returns an EUNCONFIGURED error.
func (a *UnconfiguredAmender) Amend(ctx context.Context, text string) (string, error) {
	if a.EnvVar == "" {
		return "", Errorf(EUNCONFIGURED, "Language model API key not configured.")
	}
	return "", Errorf(EUNCONFIGURED, "Language model API key not configured. Please set the %s environment variable.", a.EnvVar)
}
