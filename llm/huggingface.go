package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/flifloo/roboquote/logger"
)

const huggingFaceBaseURL = "https://api-inference.huggingface.co"

// HuggingFace implements Client against the Hugging Face inference API. The
// hosted models run in continuation mode and echo the prompt back, so the
// prompt is stripped from the front of the generated text.
type HuggingFace struct {
	modelName  string
	token      string
	baseURL    string
	client     *http.Client
	apiTimeout time.Duration
}

// NewHuggingFace creates a client for a model hosted on the Hugging Face
// inference API.
func NewHuggingFace(modelName, token string, opts ...Option) *HuggingFace {
	h := &HuggingFace{
		modelName:  modelName,
		token:      token,
		baseURL:    huggingFaceBaseURL,
		client:     http.DefaultClient,
		apiTimeout: defaultAPITimeout,
	}

	for _, opt := range opts {
		switch opt.Type {
		case APITimeoutOption:
			if timeout, ok := opt.Value.(time.Duration); ok {
				h.apiTimeout = timeout
			}
		case BaseURLOption:
			if baseURL, ok := opt.Value.(string); ok {
				h.baseURL = baseURL
			}
		case HTTPClientOption:
			if client, ok := opt.Value.(*http.Client); ok {
				h.client = client
			}
		}
	}

	return h
}

type huggingFaceRequest struct {
	Inputs     string                `json:"inputs"`
	Parameters huggingFaceParameters `json:"parameters"`
	Options    huggingFaceOptions    `json:"options"`
}

type huggingFaceParameters struct {
	MaxNewTokens int  `json:"max_new_tokens"`
	DoSample     bool `json:"do_sample"`
}

type huggingFaceOptions struct {
	UseCache bool `json:"use_cache"`
}

type huggingFaceResult struct {
	GeneratedText string `json:"generated_text"`
}

// Generate runs one text-generation request and returns the continuation the
// model produced after the prompt.
func (h *HuggingFace) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(huggingFaceRequest{
		Inputs: prompt,
		Parameters: huggingFaceParameters{
			MaxNewTokens: 50,
			DoSample:     true,
		},
		Options: huggingFaceOptions{
			UseCache: false,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	ctx, cancel := context.WithTimeout(ctx, h.apiTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		h.baseURL+"/models/"+h.modelName, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+h.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: Hugging Face API", ErrGenerationTimeout)
		}
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: Hugging Face API", ErrGenerationTimeout)
		}
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: %s", ErrGenerationFailed, providerError(body, resp.Status))
	}

	var results []huggingFaceResult
	if err := json.Unmarshal(body, &results); err != nil || len(results) == 0 {
		return "", fmt.Errorf("%w: unexpected Hugging Face response body", ErrGenerationFailed)
	}
	logger.Debugf("Hugging Face response %d: %s", resp.StatusCode, body)

	return strings.TrimPrefix(results[0].GeneratedText, prompt), nil
}

// providerError extracts the error message reported by the provider from a
// failure body, falling back to the HTTP status line.
func providerError(body []byte, status string) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return status
}
