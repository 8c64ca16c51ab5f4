// Package config loads the model catalog and provider credentials.
package config

import (
	"math/rand"
	"os"

	"github.com/flifloo/roboquote/logger"
	"github.com/flifloo/roboquote/model"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables holding the provider bearer tokens
const (
	HuggingFaceTokenEnv = "HUGGING_FACE_ACCESS_TOKEN"
	GroqCloudAPIKeyEnv  = "GROQ_CLOUD_API_KEY"
)

// Settings holds the models available for quote generation.
type Settings struct {
	Models []model.Descriptor `yaml:"models"`
}

// WithDefaultSettings returns the built-in model catalog.
func WithDefaultSettings() Settings {
	return Settings{
		Models: []model.Descriptor{
			{
				Name:        "mistralai/Mistral-7B-Instruct-v0.2",
				API:         model.APIHuggingFace,
				PromptType:  model.PromptTypeChat,
				PromptStart: "[INST] ",
				PromptEnd:   " [/INST]",
			},
			{
				Name:       "openai-community/gpt2",
				API:        model.APIHuggingFace,
				PromptType: model.PromptTypeContinue,
			},
			{
				Name:       "llama-3.1-8b-instant",
				API:        model.APIGroqCloud,
				PromptType: model.PromptTypeChat,
			},
		},
	}
}

// WithYamlFile returns the settings from roboquote.yml in the working
// directory, falling back to the defaults when no file is found.
func WithYamlFile() Settings {
	settings := WithDefaultSettings()

	var filePath string
	for _, name := range []string{"roboquote.yml", "roboquote.yaml"} {
		if _, err := os.Stat(name); err == nil {
			filePath = name
			break
		}
	}

	if filePath == "" {
		logger.Debugf("No YAML file found in the current directory. Using default models.")
		return settings
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.Infof("Failed to read YAML file %s: %v", filePath, err)
		return settings
	}

	parsed := Settings{}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		logger.Infof("Failed to parse YAML file %s: %v", filePath, err)
		return settings
	}

	if len(parsed.Models) > 0 {
		settings.Models = parsed.Models
		logger.Infof("Using models from YAML file: %s", filePath)
	}
	return settings
}

// FindModel returns the configured descriptor with the given name.
func (s Settings) FindModel(name string) (model.Descriptor, bool) {
	for _, m := range s.Models {
		if m.Name == name {
			return m, true
		}
	}
	return model.Descriptor{}, false
}

// RandomModel returns a random configured descriptor.
func (s Settings) RandomModel() (model.Descriptor, bool) {
	if len(s.Models) == 0 {
		return model.Descriptor{}, false
	}
	return s.Models[rand.Intn(len(s.Models))], true
}

// LoadEnv loads a .env file from the working directory if one exists, so
// provider tokens can be supplied without exporting them manually.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logger.Debugf("No .env file loaded: %v", err)
	}
}

// HuggingFaceToken returns the Hugging Face bearer token.
func HuggingFaceToken() string {
	return os.Getenv(HuggingFaceTokenEnv)
}

// GroqCloudAPIKey returns the GroqCloud bearer token.
func GroqCloudAPIKey() string {
	return os.Getenv(GroqCloudAPIKeyEnv)
}
