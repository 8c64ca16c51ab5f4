// Package quote generates a short inspirational quote for a theme by
// prompting a configured language model and extracting a usable sentence from
// its reply.
package quote

import (
	"context"
	"fmt"

	"github.com/flifloo/roboquote/llm"
	"github.com/flifloo/roboquote/logger"
	"github.com/flifloo/roboquote/model"
	"github.com/flifloo/roboquote/prompt"
)

// ClientFactory returns the backend client for a descriptor. It exists so
// tests can substitute a stub backend for the real ones.
type ClientFactory func(m model.Descriptor) (llm.Client, error)

// Service generates quotes. Instances are safe for concurrent use: every
// invocation is independent and holds no cross-call state.
type Service struct {
	newClient ClientFactory
	rng       prompt.Rand
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithClientFactory overrides how backend clients are built.
func WithClientFactory(f ClientFactory) ServiceOption {
	return func(s *Service) { s.newClient = f }
}

// WithRand overrides the random source used for prompt variation.
func WithRand(rng prompt.Rand) ServiceOption {
	return func(s *Service) { s.rng = rng }
}

// NewService creates a quote generation service backed by the real provider
// clients.
func NewService(opts ...ServiceOption) *Service {
	s := &Service{
		newClient: func(m model.Descriptor) (llm.Client, error) {
			return llm.NewClient(m)
		},
		rng: prompt.DefaultRand(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetRandomQuote builds a randomized themed prompt, runs it through the
// model, and returns the cleaned quote. Prompt and backend failures are
// propagated unchanged; no retries happen at this layer, since a retry
// against a sampling model is a legitimately new attempt the caller should
// decide on.
func (s *Service) GetRandomQuote(ctx context.Context, theme string, m model.Descriptor) (string, error) {
	p, err := prompt.Build(s.rng, theme, m)
	if err != nil {
		return "", err
	}
	logger.Debugf("Prompt for %s: %q", m.Name, p)

	client, err := s.newClient(m)
	if err != nil {
		return "", err
	}

	raw, err := client.Generate(ctx, p)
	if err != nil {
		return "", err
	}

	logger.Debugf("Cleaning up quote: %q", raw)
	cleaned := Clean(raw)
	logger.Debugf("Cleaned quote: %q", cleaned)

	// An empty extraction means the model produced nothing usable; callers
	// must never composite an empty quote.
	if cleaned == "" {
		return "", fmt.Errorf("%w: model returned an empty quote", llm.ErrGenerationFailed)
	}
	return cleaned, nil
}
