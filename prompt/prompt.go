// Package prompt builds the natural-language prompt sent to a language model.
package prompt

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/flifloo/roboquote/model"
)

// ErrUnsupportedPromptType is returned when a descriptor carries a prompt
// type no template family exists for.
var ErrUnsupportedPromptType = errors.New("unsupported prompt type")

// Rand supplies the randomness for template choice and word substitution.
// *math/rand.Rand satisfies it, which lets tests pin a seed.
type Rand interface {
	Intn(n int) int
}

// defaultRand delegates to math/rand's shared source, which is safe for
// concurrent use.
type defaultRand struct{}

func (defaultRand) Intn(n int) int { return rand.Intn(n) }

// DefaultRand returns the process-wide random source.
func DefaultRand() Rand { return defaultRand{} }

// continueTemplates suit raw text-generation models: they set up a scene and
// leave the quote itself for the model to complete.
var continueTemplates = []string{
	"On a %s themed picture, there was a fitting inspirational quote: ",
	"On a %s themed inspirational picture, there was a fitting inspirational short quote: ",
	"On a %s themed inspirational picture, there was a fitting short quote: ",
}

// chatTemplates suit instruction-tuned models that answer a direct request.
var chatTemplates = []string{
	"Give me an inspirational quote that fits on a %s themed picture, " +
		"similar to old Tumblr pictures. You must return the quote text directly. " +
		"Do not return lists. The quote must be in english. " +
		"The quote must be exactly one sentence.",
}

// Build returns a randomized prompt asking for a quote matching the theme,
// using the template family and wrapper tokens the model expects.
func Build(rng Rand, theme string, m model.Descriptor) (string, error) {
	p, err := basePrompt(rng, theme, m)
	if err != nil {
		return "", err
	}

	// Half the time, swap "picture" for "photography" to vary the prompts.
	if rng.Intn(2) == 0 {
		p = strings.NewReplacer(
			"picture ", "photography ",
			"picture,", "photography,",
			"picture.", "photography.",
		).Replace(p)
	}

	return p, nil
}

func basePrompt(rng Rand, theme string, m model.Descriptor) (string, error) {
	switch m.PromptType {
	case model.PromptTypeContinue:
		t := continueTemplates[rng.Intn(len(continueTemplates))]
		return fmt.Sprintf(t, theme), nil
	case model.PromptTypeChat:
		t := chatTemplates[rng.Intn(len(chatTemplates))]
		return m.PromptStart + fmt.Sprintf(t, theme) + m.PromptEnd, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedPromptType, m.PromptType)
	}
}
