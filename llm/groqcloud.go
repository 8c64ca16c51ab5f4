package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/flifloo/roboquote/logger"
	openai "github.com/sashabaranov/go-openai"
)

const groqCloudBaseURL = "https://api.groq.com/openai/v1"

// GroqCloud implements Client against GroqCloud's OpenAI-compatible chat
// completions API. Chat replies do not echo the prompt, so the content comes
// back as-is.
type GroqCloud struct {
	client     *openai.Client
	modelName  string
	apiTimeout time.Duration
}

// NewGroqCloud creates a client for a chat model hosted on GroqCloud.
func NewGroqCloud(modelName, apiKey string, opts ...Option) *GroqCloud {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = groqCloudBaseURL

	g := &GroqCloud{
		modelName:  modelName,
		apiTimeout: defaultAPITimeout,
	}

	for _, opt := range opts {
		switch opt.Type {
		case APITimeoutOption:
			if timeout, ok := opt.Value.(time.Duration); ok {
				g.apiTimeout = timeout
			}
		case BaseURLOption:
			if baseURL, ok := opt.Value.(string); ok {
				cfg.BaseURL = baseURL
			}
		case HTTPClientOption:
			if client, ok := opt.Value.(*http.Client); ok {
				cfg.HTTPClient = client
			}
		}
	}

	g.client = openai.NewClientWithConfig(cfg)
	return g
}

// Generate sends the prompt as a single user turn and returns the assistant
// reply.
func (g *GroqCloud) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.apiTimeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: GroqCloud API", ErrGenerationTimeout)
		}
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%w: %v", ErrGenerationFailed, apiErr.Message)
		}
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: GroqCloud response contained no choices", ErrGenerationFailed)
	}
	logger.Debugf("GroqCloud reply for model %s: %q", g.modelName, resp.Choices[0].Message.Content)

	return resp.Choices[0].Message.Content, nil
}
