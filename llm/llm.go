// Package llm sends prompts to hosted language-model backends and returns the
// raw generated text.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/flifloo/roboquote/config"
	"github.com/flifloo/roboquote/model"
)

// defaultAPITimeout bounds the single network round trip of Generate.
const defaultAPITimeout = 15 * time.Second

// Client sends one prompt to a language-model backend and returns the raw
// generated text. Implementations perform a single network round trip and
// never retry: with sampling enabled a retry is a fresh generation, so the
// decision to try again belongs to the caller.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// OptionType defines the type of option
type OptionType string

// Available option types
const (
	APITimeoutOption OptionType = "api_timeout"
	BaseURLOption    OptionType = "base_url"
	HTTPClientOption OptionType = "http_client"
)

// Option represents a generic configuration option for any backend client
type Option struct {
	Type  OptionType
	Value any
}

// WithAPITimeout creates an option to bound the network call
func WithAPITimeout(timeout time.Duration) Option {
	return Option{
		Type:  APITimeoutOption,
		Value: timeout,
	}
}

// WithBaseURL creates an option to override the provider endpoint
func WithBaseURL(baseURL string) Option {
	return Option{
		Type:  BaseURLOption,
		Value: baseURL,
	}
}

// WithHTTPClient creates an option to override the HTTP client
func WithHTTPClient(client *http.Client) Option {
	return Option{
		Type:  HTTPClientOption,
		Value: client,
	}
}

// NewClient returns the client for the backend named by m.API, with the
// bearer token read from process configuration.
func NewClient(m model.Descriptor, opts ...Option) (Client, error) {
	switch m.API {
	case model.APIHuggingFace:
		return NewHuggingFace(m.Name, config.HuggingFaceToken(), opts...), nil
	case model.APIGroqCloud:
		return NewGroqCloud(m.Name, config.GroqCloudAPIKey(), opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, m.API)
	}
}
