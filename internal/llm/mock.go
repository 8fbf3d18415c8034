// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"strings"
	"sync"
)

// MockResponse is one scripted reply: text, or an error.
type MockResponse struct {
	Content string
	Err     error
}

// MockProvider replays scripted replies in order and repeats the last one
// once the script runs out. Models registered with FailModel always fail,
// which is how tests walk the candidate fallback chain. With Echo set, the
// prompt is returned in front of the reply the way text-generation
// endpoints do.
type MockProvider struct {
	mu       sync.Mutex
	script   []MockResponse
	next     int
	failing  map[string]error
	echo     bool
	requests []Request
}

var _ Provider = (*MockProvider)(nil)

// NewMockProvider scripts the given replies. With none, every call returns
// empty text.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{script: responses, failing: make(map[string]error)}
}

// FailModel makes every request for model fail with err.
func (m *MockProvider) FailModel(model string, err error) *MockProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failing[model] = err
	return m
}

// Echo makes replies start with the request prompt.
func (m *MockProvider) Echo() *MockProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.echo = true
	return m
}

// Complete records req and plays the next scripted reply. A cancelled ctx
// fails before anything is recorded.
func (m *MockProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)

	if err, ok := m.failing[req.Model]; ok {
		return nil, err
	}

	var reply MockResponse
	if len(m.script) > 0 {
		reply = m.script[m.next]
		if m.next < len(m.script)-1 {
			m.next++
		}
	}
	if reply.Err != nil {
		return nil, reply.Err
	}

	model := req.Model
	if model == "" {
		model = "mock"
	}
	text := reply.Content
	if m.echo {
		text = req.Prompt + text
	}
	return &Response{
		Content: text,
		Model:   model,
		Usage:   Usage{InputTokens: len(strings.Fields(req.Prompt)), OutputTokens: len(strings.Fields(reply.Content))},
	}, nil
}

// Calls returns the requests received so far, oldest first.
func (m *MockProvider) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.requests...)
}
