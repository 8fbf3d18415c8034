// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
)

const (
	// defaultHFBaseURL is the serverless Hugging Face Inference API.
	defaultHFBaseURL = "https://api-inference.huggingface.co"

	// defaultHFModel matches the first model of the default candidate chain.
	defaultHFModel = "bigcode/starcoderbase"

	defaultHFMaxNewTokens = 1024
	defaultHFTimeout      = 5 * time.Minute
)

// HuggingFaceProvider implements Provider against the Hugging Face
// text-generation task (the Inference API and text-generation-inference
// servers share the request shape). The returned text includes the prompt
// unless the server is configured otherwise.
type HuggingFaceProvider struct {
	client     *resty.Client
	model      string
	maxRetries int
}

var _ Provider = (*HuggingFaceProvider)(nil)

// HuggingFaceOption configures a HuggingFaceProvider.
type HuggingFaceOption func(*hfConfig)

type hfConfig struct {
	token      string
	baseURL    string
	model      string
	maxRetries int
	timeout    time.Duration
}

// WithHFToken sets the access token. If not provided, the provider reads
// HF_TOKEN, then HUGGINGFACE_API_KEY. Public models work without a token.
func WithHFToken(token string) HuggingFaceOption {
	return func(c *hfConfig) { c.token = token }
}

// WithHFBaseURL points the provider at a different endpoint, e.g. a local
// text-generation-inference server.
func WithHFBaseURL(url string) HuggingFaceOption {
	return func(c *hfConfig) { c.baseURL = url }
}

// WithHFModel overrides the default model.
func WithHFModel(model string) HuggingFaceOption {
	return func(c *hfConfig) { c.model = model }
}

// WithHFMaxRetries sets the retry count for 429 and 5xx responses.
func WithHFMaxRetries(n int) HuggingFaceOption {
	return func(c *hfConfig) { c.maxRetries = n }
}

// WithHFTimeout bounds each HTTP request.
func WithHFTimeout(d time.Duration) HuggingFaceOption {
	return func(c *hfConfig) { c.timeout = d }
}

// NewHuggingFaceProvider creates a Hugging Face text-generation provider.
func NewHuggingFaceProvider(opts ...HuggingFaceOption) (*HuggingFaceProvider, error) {
	cfg := hfConfig{
		baseURL:    defaultHFBaseURL,
		model:      defaultHFModel,
		maxRetries: defaultMaxRetries,
		timeout:    defaultHFTimeout,
	}
	for _, o := range opts {
		o(&cfg)
	}

	token := credential(cfg.token, "HF_TOKEN", "HUGGINGFACE_API_KEY")

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.baseURL, "/")).
		SetTimeout(cfg.timeout).
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal).
		SetHeader("Accept", "application/json").
		SetRetryCount(cfg.maxRetries).
		SetRetryWaitTime(500 * time.Millisecond).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= 500
		})
	if token != "" {
		client.SetAuthToken(token)
	}

	return &HuggingFaceProvider{
		client:     client,
		model:      cfg.model,
		maxRetries: cfg.maxRetries,
	}, nil
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
	Options    hfOptions    `json:"options"`
}

type hfParameters struct {
	MaxNewTokens      int      `json:"max_new_tokens"`
	DoSample          bool     `json:"do_sample"`
	Temperature       *float64 `json:"temperature,omitempty"`
	TopP              *float64 `json:"top_p,omitempty"`
	RepetitionPenalty *float64 `json:"repetition_penalty,omitempty"`
}

type hfOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
}

type hfError struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time,omitempty"`
}

// Complete runs the text-generation task for req.Model (or the default).
func (p *HuggingFaceProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	model := p.model
	if req.Model != "" {
		model = req.Model
	}

	params := hfParameters{
		MaxNewTokens: defaultHFMaxNewTokens,
		DoSample:     req.Sampling(),
	}
	if req.MaxTokens > 0 {
		params.MaxNewTokens = req.MaxTokens
	}
	// The API rejects temperature 0, so greedy requests send no sampling knobs.
	if params.DoSample {
		params.Temperature = req.Temperature
		params.TopP = req.TopP
	}
	params.RepetitionPenalty = req.RepetitionPenalty

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(hfRequest{
			Inputs:     req.Prompt,
			Parameters: params,
			Options:    hfOptions{WaitForModel: true},
		}).
		Post("/models/" + model)
	if err != nil {
		return nil, fmt.Errorf("huggingface: request for %s failed: %w", model, err)
	}
	if resp.IsError() {
		var apiErr hfError
		if jerr := sonic.Unmarshal(resp.Body(), &apiErr); jerr == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("huggingface: %s: status %d: %s", model, resp.StatusCode(), apiErr.Error)
		}
		return nil, fmt.Errorf("huggingface: %s: status %d: %s", model, resp.StatusCode(), strings.TrimSpace(resp.String()))
	}

	text, err := decodeGeneration(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("huggingface: %s: %w", model, err)
	}

	return &Response{Content: text, Model: model}, nil
}

// decodeGeneration accepts both the Inference API list shape and the
// single-object shape returned by text-generation-inference.
func decodeGeneration(body []byte) (string, error) {
	var list []hfGeneration
	if err := sonic.Unmarshal(body, &list); err == nil {
		if len(list) == 0 {
			return "", errors.New("empty generation list")
		}
		return list[0].GeneratedText, nil
	}

	var single hfGeneration
	if err := sonic.Unmarshal(body, &single); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return single.GeneratedText, nil
}

// Model returns the default model configured for this provider.
func (p *HuggingFaceProvider) Model() string {
	return p.model
}

// MaxRetries returns the configured max retry count.
func (p *HuggingFaceProvider) MaxRetries() int {
	return p.maxRetries
}
