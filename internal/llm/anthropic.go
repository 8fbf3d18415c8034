// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultAnthropicModel = "claude-sonnet-4-5-20250929"

// AnthropicProvider sends the generation prompt as a single user message to
// the Messages API. The reply never contains the prompt, so StripPrompt is
// a no-op on its output.
type AnthropicProvider struct {
	client     anthropic.Client
	model      string
	maxRetries int
}

var _ Provider = (*AnthropicProvider)(nil)

// AnthropicOption configures an AnthropicProvider.
type AnthropicOption func(*anthropicConfig)

type anthropicConfig struct {
	apiKey     string
	baseURL    string
	model      string
	maxRetries int
}

// WithAPIKey sets the key; ANTHROPIC_API_KEY is used otherwise.
func WithAPIKey(key string) AnthropicOption {
	return func(c *anthropicConfig) { c.apiKey = key }
}

// WithBaseURL sends requests to a proxy or compatible gateway.
func WithBaseURL(url string) AnthropicOption {
	return func(c *anthropicConfig) { c.baseURL = url }
}

// WithModel sets the model used when a Request names none.
func WithModel(model string) AnthropicOption {
	return func(c *anthropicConfig) { c.model = model }
}

// WithMaxRetries is passed through to the SDK client.
func WithMaxRetries(n int) AnthropicOption {
	return func(c *anthropicConfig) { c.maxRetries = n }
}

// NewAnthropicProvider fails when no key is configured, so the candidate is
// skipped before any request is made.
func NewAnthropicProvider(opts ...AnthropicOption) (*AnthropicProvider, error) {
	cfg := anthropicConfig{model: defaultAnthropicModel, maxRetries: defaultMaxRetries}
	for _, o := range opts {
		o(&cfg)
	}

	key := credential(cfg.apiKey, "ANTHROPIC_API_KEY")
	if key == "" {
		return nil, errors.New("llm: ANTHROPIC_API_KEY not set and no API key provided")
	}

	reqOpts := []option.RequestOption{option.WithAPIKey(key), option.WithMaxRetries(cfg.maxRetries)}
	if cfg.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.baseURL))
	}
	return &AnthropicProvider{
		client:     anthropic.NewClient(reqOpts...),
		model:      cfg.model,
		maxRetries: cfg.maxRetries,
	}, nil
}

// messageParams maps a Request onto the Messages API. top_p is only sent for
// sampled decoding; greedy requests carry temperature alone.
func (p *AnthropicProvider) messageParams(req Request) anthropic.MessageNewParams {
	model := req.Model
	if model == "" {
		model = p.model
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(maxTokens),
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt))},
	}
	if req.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.SystemPrompt}}
	}
	if req.Temperature != nil {
		params.Temperature = anthropic.Float(*req.Temperature)
	}
	if req.Sampling() && req.TopP != nil {
		params.TopP = anthropic.Float(*req.TopP)
	}
	return params
}

// Complete returns the concatenated text blocks of the reply.
func (p *AnthropicProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	msg, err := p.client.Messages.New(ctx, p.messageParams(req))
	if err != nil {
		return nil, fmt.Errorf("anthropic: completion failed: %w", err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			text.WriteString(tb.Text)
		}
	}
	return &Response{
		Content: text.String(),
		Model:   string(msg.Model),
		Usage:   Usage{InputTokens: int(msg.Usage.InputTokens), OutputTokens: int(msg.Usage.OutputTokens)},
	}, nil
}

// Model is the default model.
func (p *AnthropicProvider) Model() string { return p.model }

// MaxRetries is the SDK retry count.
func (p *AnthropicProvider) MaxRetries() int { return p.maxRetries }
