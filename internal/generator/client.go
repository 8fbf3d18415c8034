// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

// Package generator drives a text-generation model to turn an API
// description into Java source. It owns model selection with ordered
// fallback, decoding parameters and post-processing of the raw output.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/teralad/hashira/internal/llm"
	"github.com/teralad/hashira/internal/prompt"
)

// probePrompt is sent with a one-token budget to check that a model answers.
const probePrompt = "public class"

// ProviderFactory constructs the provider with the given name.
type ProviderFactory func(name string) (llm.Provider, error)

// Handle is a loaded model: the candidate that answered and its provider.
type Handle struct {
	Candidate Candidate
	Provider  llm.Provider
}

// Request is one generation job.
type Request struct {
	Description string
	Archetype   string
}

// Result is the outcome of Generate. Either Text is meaningful or Err is
// non-nil, never both.
type Result struct {
	Prompt string
	Text   string
	Model  string
	Err    error
}

// OK reports whether generation produced text.
func (r Result) OK() bool { return r.Err == nil }

// Client generates code with the first candidate model that loads. The
// loaded handle is shared by every caller for the life of the client.
type Client struct {
	candidates []Candidate
	params     Params
	factory    ProviderFactory

	// gate is a one-slot semaphore held while loading; handle is guarded by it.
	gate   chan struct{}
	handle *Handle
}

// Option configures a Client.
type Option func(*Client)

// WithCandidates sets the ordered fallback chain.
func WithCandidates(c ...Candidate) Option {
	return func(cl *Client) {
		if len(c) > 0 {
			cl.candidates = append([]Candidate(nil), c...)
		}
	}
}

// WithParams sets the generation parameters.
func WithParams(p Params) Option {
	return func(cl *Client) { cl.params = p }
}

// WithProviderFactory replaces the provider constructor.
func WithProviderFactory(f ProviderFactory) Option {
	return func(cl *Client) { cl.factory = f }
}

// WithProvider uses p for every candidate regardless of provider name.
func WithProvider(p llm.Provider) Option {
	return WithProviderFactory(func(string) (llm.Provider, error) { return p, nil })
}

// NewClient returns a client with DefaultCandidates and DefaultParams unless
// overridden. No model is contacted until the first Handle or Generate call.
func NewClient(opts ...Option) *Client {
	c := &Client{
		candidates: DefaultCandidates(),
		params:     DefaultParams(),
		factory:    func(name string) (llm.Provider, error) { return llm.New(name, llm.Config{}) },
		gate:       make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Candidates returns the configured fallback chain.
func (c *Client) Candidates() []Candidate {
	return append([]Candidate(nil), c.candidates...)
}

// Params returns the configured generation parameters.
func (c *Client) Params() Params { return c.params }

// Handle returns the loaded model, loading it on first use. Concurrent
// callers wait for a single load and observe the same handle. Success is
// kept for the life of the client; if every candidate fails the error is
// returned and the next call tries again. A caller waiting on another
// caller's load returns ctx.Err() if ctx ends first.
func (c *Client) Handle(ctx context.Context) (*Handle, error) {
	select {
	case c.gate <- struct{}{}:
	default:
		select {
		case c.gate <- struct{}{}:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	defer func() { <-c.gate }()

	if c.handle != nil {
		return c.handle, nil
	}

	h, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	c.handle = h
	return h, nil
}

func (c *Client) load(ctx context.Context) (*Handle, error) {
	if len(c.candidates) == 0 {
		return nil, &Error{Kind: ModelUnavailable, Reason: "no candidate models configured"}
	}

	providers := make(map[string]llm.Provider)
	var reasons []string
	var errs []error

	for _, cand := range c.candidates {
		if err := ctx.Err(); err != nil {
			reasons = append(reasons, err.Error())
			errs = append(errs, err)
			break
		}

		p, ok := providers[cand.Provider]
		if !ok {
			var err error
			p, err = c.factory(cand.Provider)
			if err != nil {
				slog.WarnContext(ctx, "model unavailable", "model", cand.String(), "error", err)
				reasons = append(reasons, fmt.Sprintf("%s: %v", cand, err))
				errs = append(errs, err)
				continue
			}
			providers[cand.Provider] = p
		}

		_, err := p.Complete(ctx, llm.Request{Prompt: probePrompt, Model: cand.Model, MaxTokens: 1})
		if err != nil {
			slog.WarnContext(ctx, "model unavailable", "model", cand.String(), "error", err)
			reasons = append(reasons, fmt.Sprintf("%s: %v", cand, err))
			errs = append(errs, err)
			continue
		}

		slog.InfoContext(ctx, "model loaded", "model", cand.String())
		return &Handle{Candidate: cand, Provider: p}, nil
	}

	return nil, &Error{
		Kind:   ModelUnavailable,
		Reason: "no model could be loaded: " + strings.Join(reasons, "; "),
		Err:    errors.Join(errs...),
	}
}

// Generate builds the prompt, runs the loaded model and strips the echoed
// prompt from its output. Failures are reported in Result.Err as *Error,
// never as a panic or a separate return value.
func (c *Client) Generate(ctx context.Context, req Request) Result {
	p := prompt.Build(req.Description, req.Archetype)
	res := Result{Prompt: p}

	h, err := c.Handle(ctx)
	if err != nil {
		var ge *Error
		if !errors.As(err, &ge) {
			ge = &Error{Kind: ModelUnavailable, Reason: err.Error(), Err: err}
		}
		res.Err = ge
		return res
	}
	res.Model = h.Candidate.String()

	if c.params.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.params.Timeout)
		defer cancel()
	}

	llmReq := c.params.request(p, h.Candidate.Model)
	llmReq.SystemPrompt = prompt.SystemPrompt

	slog.DebugContext(ctx, "generating", "model", res.Model, "prompt_bytes", len(p), "max_new_tokens", llmReq.MaxTokens)
	resp, err := h.Provider.Complete(ctx, llmReq)
	if err != nil {
		res.Err = &Error{Kind: InvocationFailed, Reason: err.Error(), Err: err}
		return res
	}

	res.Text = StripPrompt(resp.Content, p)
	return res
}
