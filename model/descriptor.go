// Package model describes the language models roboquote can call.
package model

// API identifies which backend integration serves a model.
type API string

// Supported backend integrations
const (
	APIHuggingFace API = "hugging_face"
	APIGroqCloud   API = "groq_cloud"
)

// PromptType selects which prompt template family a model expects.
type PromptType string

const (
	// PromptTypeContinue is for raw text-generation models that complete
	// whatever text they are given.
	PromptTypeContinue PromptType = "continue"
	// PromptTypeChat is for instruction-tuned models that answer a direct
	// user request.
	PromptTypeChat PromptType = "chat"
)

// Descriptor identifies a language model backend and the prompt convention it
// expects. Descriptors come from configuration and are never mutated.
type Descriptor struct {
	// Name is the provider-specific model identifier,
	// e.g. "mistralai/Mistral-7B-Instruct-v0.2"
	Name string `yaml:"name"`
	// API selects the backend integration used to reach the model
	API API `yaml:"api"`
	// PromptType selects the prompt template family
	PromptType PromptType `yaml:"prompt_type"`
	// PromptStart and PromptEnd wrap chat prompts with the
	// instruction-formatting tokens some models require, e.g. "[INST]"
	PromptStart string `yaml:"prompt_start,omitempty"`
	PromptEnd   string `yaml:"prompt_end,omitempty"`
}
