package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroqCloudGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama-3.1-8b-instant", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, testPrompt, req.Messages[0].Content)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "llama-3.1-8b-instant",
			"choices": [
				{"index": 0, "message": {"role": "assistant", "content": "\"Stay wild.\""}, "finish_reason": "stop"}
			]
		}`)
	}))
	defer srv.Close()

	client := NewGroqCloud("llama-3.1-8b-instant", "test-key", WithBaseURL(srv.URL))

	text, err := client.Generate(context.Background(), testPrompt)
	require.NoError(t, err)
	assert.Equal(t, `"Stay wild."`, text)
}

func TestGroqCloudGenerateProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error": {"message": "rate limit exceeded", "type": "requests"}}`)
	}))
	defer srv.Close()

	client := NewGroqCloud("llama-3.1-8b-instant", "test-key", WithBaseURL(srv.URL))

	_, err := client.Generate(context.Background(), testPrompt)
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.ErrorContains(t, err, "rate limit exceeded")
}

func TestGroqCloudGenerateNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id": "chatcmpl-1", "object": "chat.completion", "choices": []}`)
	}))
	defer srv.Close()

	client := NewGroqCloud("llama-3.1-8b-instant", "test-key", WithBaseURL(srv.URL))

	_, err := client.Generate(context.Background(), testPrompt)
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestGroqCloudGenerateTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewGroqCloud("llama-3.1-8b-instant", "test-key",
		WithBaseURL(srv.URL), WithAPITimeout(20*time.Millisecond))

	_, err := client.Generate(context.Background(), testPrompt)
	assert.ErrorIs(t, err, ErrGenerationTimeout)
}
