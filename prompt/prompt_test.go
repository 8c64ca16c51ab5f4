package prompt

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/flifloo/roboquote/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func continueModel() model.Descriptor {
	return model.Descriptor{
		Name:       "openai-community/gpt2",
		API:        model.APIHuggingFace,
		PromptType: model.PromptTypeContinue,
	}
}

func chatModel() model.Descriptor {
	return model.Descriptor{
		Name:        "mistralai/Mistral-7B-Instruct-v0.2",
		API:         model.APIHuggingFace,
		PromptType:  model.PromptTypeChat,
		PromptStart: "[INST] ",
		PromptEnd:   " [/INST]",
	}
}

func TestBuildContinueContainsThemeOnce(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))

		p, err := Build(rng, "desert", continueModel())
		require.NoError(t, err)

		assert.NotEmpty(t, p)
		assert.Equal(t, 1, strings.Count(p, "desert"))
	}
}

func TestBuildChatWrappedWithPromptTokens(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))

		p, err := Build(rng, "sea", chatModel())
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(p, "[INST] "), "prompt should start with the wrapper token: %q", p)
		assert.True(t, strings.HasSuffix(p, " [/INST]"), "prompt should end with the wrapper token: %q", p)
		assert.Equal(t, 1, strings.Count(p, "sea"))
	}
}

func TestBuildDeterministicForSeed(t *testing.T) {
	first, err := Build(rand.New(rand.NewSource(42)), "forest", chatModel())
	require.NoError(t, err)

	second, err := Build(rand.New(rand.NewSource(42)), "forest", chatModel())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildSubstitutesPhotography(t *testing.T) {
	sawPicture := false
	sawPhotography := false

	for seed := int64(0); seed < 100; seed++ {
		rng := rand.New(rand.NewSource(seed))

		p, err := Build(rng, "mountain", continueModel())
		require.NoError(t, err)

		switch {
		case strings.Contains(p, "photography"):
			sawPhotography = true
			assert.NotContains(t, p, "picture")
		case strings.Contains(p, "picture"):
			sawPicture = true
		default:
			t.Fatalf("prompt mentions neither picture nor photography: %q", p)
		}
	}

	assert.True(t, sawPicture, "expected some prompts to keep the word picture")
	assert.True(t, sawPhotography, "expected some prompts to substitute photography")
}

func TestBuildUnsupportedPromptType(t *testing.T) {
	m := continueModel()
	m.PromptType = "haiku"

	_, err := Build(rand.New(rand.NewSource(1)), "sea", m)
	assert.ErrorIs(t, err, ErrUnsupportedPromptType)
}
