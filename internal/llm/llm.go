// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

// Package llm provides a provider-agnostic text-generation interface and
// implementations for the hosted model APIs hashira can drive.
package llm

import (
	"context"
	"fmt"
	"os"
	"sort"
)

// Provider abstracts a model API behind a single synchronous completion method.
type Provider interface {
	// Complete sends a prompt to the model and returns the response.
	// Implementations must respect context cancellation and deadlines.
	Complete(ctx context.Context, req Request) (*Response, error)
}

// Request describes a single completion request.
type Request struct {
	// Prompt is the user message (or raw text-generation input) to send.
	Prompt string

	// Model overrides the provider's default model. If empty, the provider
	// uses its configured default.
	Model string

	// MaxTokens limits the number of new tokens. If zero, the provider uses
	// its own default.
	MaxTokens int

	// Temperature controls randomness. Nil or zero means greedy decoding.
	Temperature *float64

	// TopP is the nucleus sampling threshold. Ignored for greedy decoding.
	TopP *float64

	// RepetitionPenalty discourages repeated tokens. Providers without an
	// equivalent parameter ignore it.
	RepetitionPenalty *float64

	// SystemPrompt sets the system instruction for chat-style providers.
	SystemPrompt string
}

// Sampling reports whether the request asks for sampled (non-greedy) decoding.
func (r Request) Sampling() bool {
	return r.Temperature != nil && *r.Temperature > 0
}

// Response holds the result of a completion call.
type Response struct {
	// Content is the text returned by the model. Text-generation endpoints
	// may echo the prompt in front of the continuation.
	Content string

	// Model is the model that actually served the request.
	Model string

	// Usage reports token consumption when the provider returns it.
	Usage Usage
}

// Usage tracks input and output token counts for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Shared provider defaults. Generation callers normally set MaxTokens
// themselves; the fallback only matters for direct use.
const (
	defaultMaxTokens  = 4096
	defaultMaxRetries = 3
)

// credential returns explicit if set, else the first non-empty variable
// among vars.
func credential(explicit string, vars ...string) string {
	if explicit != "" {
		return explicit
	}
	for _, v := range vars {
		if val := os.Getenv(v); val != "" {
			return val
		}
	}
	return ""
}

// Provider names accepted by New.
const (
	ProviderHuggingFace = "huggingface"
	ProviderAnthropic   = "anthropic"
	ProviderOpenAI      = "openai"
)

// Config holds the settings New passes to a provider constructor. Empty
// fields fall back to each provider's defaults and environment variables.
type Config struct {
	APIKey     string
	BaseURL    string
	MaxRetries *int
}

// Providers returns the provider names New accepts, sorted.
func Providers() []string {
	names := []string{ProviderHuggingFace, ProviderAnthropic, ProviderOpenAI}
	sort.Strings(names)
	return names
}

// New constructs the named provider.
func New(name string, cfg Config) (Provider, error) {
	switch name {
	case ProviderHuggingFace:
		opts := []HuggingFaceOption{}
		if cfg.APIKey != "" {
			opts = append(opts, WithHFToken(cfg.APIKey))
		}
		if cfg.BaseURL != "" {
			opts = append(opts, WithHFBaseURL(cfg.BaseURL))
		}
		if cfg.MaxRetries != nil {
			opts = append(opts, WithHFMaxRetries(*cfg.MaxRetries))
		}
		return NewHuggingFaceProvider(opts...)
	case ProviderAnthropic:
		opts := []AnthropicOption{}
		if cfg.APIKey != "" {
			opts = append(opts, WithAPIKey(cfg.APIKey))
		}
		if cfg.BaseURL != "" {
			opts = append(opts, WithBaseURL(cfg.BaseURL))
		}
		if cfg.MaxRetries != nil {
			opts = append(opts, WithMaxRetries(*cfg.MaxRetries))
		}
		return NewAnthropicProvider(opts...)
	case ProviderOpenAI:
		opts := []OpenAIOption{}
		if cfg.APIKey != "" {
			opts = append(opts, WithOpenAIKey(cfg.APIKey))
		}
		if cfg.BaseURL != "" {
			opts = append(opts, WithOpenAIBaseURL(cfg.BaseURL))
		}
		if cfg.MaxRetries != nil {
			opts = append(opts, WithOpenAIMaxRetries(*cfg.MaxRetries))
		}
		return NewOpenAIProvider(opts...)
	default:
		return nil, fmt.Errorf("llm: unsupported provider %q", name)
	}
}
