package yardstick_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/yardstick"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnconfiguredAmender_Amend(t *testing.T) {
	t.Parallel()

	t.Run("fails regardless of input", func(t *testing.T) {
		t.Parallel()

		amender := &yardstick.UnconfiguredAmender{EnvVar: "OPENAI_API_KEY"}

		for _, text := range []string{"", "The bridge is 2 meters wide."} {
			_, err := amender.Amend(context.Background(), text)

			require.Error(t, err)
			assert.Equal(t, yardstick.EUNCONFIGURED, yardstick.ErrorCode(err))
			assert.Contains(t, yardstick.ErrorMessage(err), "OPENAI_API_KEY")
		}
	})
}

func TestAmendErrorTypeOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, yardstick.AmendErrorConfiguration, yardstick.AmendErrorTypeOf(yardstick.Errorf(yardstick.EUNCONFIGURED, "x")))
	assert.Equal(t, yardstick.AmendErrorInvalidRequest, yardstick.AmendErrorTypeOf(yardstick.Errorf(yardstick.EINVALID, "x")))
	assert.Equal(t, yardstick.AmendErrorQuota, yardstick.AmendErrorTypeOf(yardstick.Errorf(yardstick.EQUOTA, "x")))
	assert.Equal(t, yardstick.AmendErrorInvalidKey, yardstick.AmendErrorTypeOf(yardstick.Errorf(yardstick.EUNAUTHORIZED, "x")))
	assert.Equal(t, yardstick.AmendErrorGeneral, yardstick.AmendErrorTypeOf(yardstick.Errorf(yardstick.EUPSTREAM, "x")))
	assert.Equal(t, yardstick.AmendErrorGeneral, yardstick.AmendErrorTypeOf(errors.New("boom")))
}

func TestBuildAmendPrompt_EmbedsTextVerbatim(t *testing.T) {
	t.Parallel()

	text := "The bridge is 2 meters wide.\n\n  It weighs 50 kg.  "

	prompt := yardstick.BuildAmendPrompt(text)

	assert.Contains(t, prompt, "Article text:\n"+text+"\n\nAmended article:")
}

func TestBuildAmendPrompt_NamesMeasurementKinds(t *testing.T) {
	t.Parallel()

	prompt := yardstick.BuildAmendPrompt("x")

	for _, kind := range []string{"distance", "weight", "size", "speed", "temperature", "population"} {
		assert.Contains(t, prompt, kind)
	}
	assert.Contains(t, prompt, "Preserve all other content exactly as is")
}

func TestBuildAmendPrompt_DoesNotContainSystemPrompt(t *testing.T) {
	t.Parallel()

	prompt := yardstick.BuildAmendPrompt("x")

	assert.NotContains(t, prompt, yardstick.AmendSystemPrompt)
}
