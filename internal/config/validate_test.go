// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Models:        []string{"huggingface:bigcode/starcoderbase", "openai:gpt-4o", "anthropic:claude-haiku-4-5"},
		Decoding:      "sampling",
		MaxNewTokens:  1024,
		Timeout:       "2m",
		ArchetypeExt:  ".java",
		HFBaseURL:     "https://api-inference.huggingface.co",
		OpenAIBaseURL: "http://localhost:11434/v1",
		Web:           WebConfig{Addr: ":8501", MaxConcurrent: 2},
	}
	require.NoError(t, Validate(cfg))
	require.NoError(t, Validate(&Config{}))
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{"model without provider", Config{Models: []string{"distilgpt2"}}, []string{"models[0]", "provider:model"}},
		{"unknown provider", Config{Models: []string{"transformers:gpt2"}}, []string{"unknown provider", "transformers"}},
		{"bad decoding", Config{Decoding: "beam"}, []string{"decoding", "beam"}},
		{"negative tokens", Config{MaxNewTokens: -1}, []string{"max_new_tokens"}},
		{"bad timeout", Config{Timeout: "forever"}, []string{"timeout"}},
		{"negative timeout", Config{Timeout: "-1s"}, []string{"timeout", "non-negative"}},
		{"ext without dot", Config{ArchetypeExt: "java"}, []string{"archetype_ext"}},
		{"relative url", Config{HFBaseURL: "localhost:8080"}, []string{"hf_base_url"}},
		{"negative concurrency", Config{Web: WebConfig{MaxConcurrent: -2}}, []string{"web.max_concurrent"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.cfg)
			require.Error(t, err)
			for _, w := range tt.want {
				assert.Contains(t, err.Error(), w)
			}
		})
	}
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	err := Validate(&Config{Decoding: "beam", MaxNewTokens: -5, ArchetypeExt: "kt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding")
	assert.Contains(t, err.Error(), "max_new_tokens")
	assert.Contains(t, err.Error(), "archetype_ext")
}
