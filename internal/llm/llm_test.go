// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package llm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teralad/hashira/internal/llm"
)

func TestNew_KnownProviders(t *testing.T) {
	retries := 0
	cfg := llm.Config{APIKey: "test-key", BaseURL: "http://127.0.0.1:1", MaxRetries: &retries}

	for _, name := range llm.Providers() {
		t.Run(name, func(t *testing.T) {
			p, err := llm.New(name, cfg)
			require.NoError(t, err)
			assert.NotNil(t, p)
		})
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := llm.New("transformers", llm.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported provider "transformers"`)
}

func TestProviders_Sorted(t *testing.T) {
	assert.Equal(t, []string{"anthropic", "huggingface", "openai"}, llm.Providers())
}

func TestRequest_Sampling(t *testing.T) {
	zero, warm := 0.0, 0.2
	assert.False(t, llm.Request{}.Sampling())
	assert.False(t, llm.Request{Temperature: &zero}.Sampling())
	assert.True(t, llm.Request{Temperature: &warm}.Sampling())
}
