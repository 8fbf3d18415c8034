// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCandidate(t *testing.T) {
	tests := []struct {
		in   string
		want Candidate
	}{
		{"huggingface:bigcode/starcoderbase", Candidate{"huggingface", "bigcode/starcoderbase"}},
		{"openai:qwen2.5-coder:7b", Candidate{"openai", "qwen2.5-coder:7b"}},
		{" distilgpt2 ", Candidate{"huggingface", "distilgpt2"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCandidate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", ":model", "openai:"} {
		_, err := ParseCandidate(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseCandidates_KeepsOrder(t *testing.T) {
	got, err := ParseCandidates([]string{"anthropic:claude-haiku-4-5", "distilgpt2"})
	require.NoError(t, err)
	assert.Equal(t, "anthropic:claude-haiku-4-5", got[0].String())
	assert.Equal(t, "huggingface:distilgpt2", got[1].String())

	_, err = ParseCandidates([]string{"ok", ""})
	assert.Error(t, err)
}

func TestDefaultCandidates(t *testing.T) {
	var names []string
	for _, c := range DefaultCandidates() {
		names = append(names, c.String())
	}
	assert.Equal(t, []string{
		"huggingface:bigcode/starcoderbase",
		"huggingface:Salesforce/codegen-350M-mono",
		"huggingface:distilgpt2",
	}, names)
}

func TestParseDecoding(t *testing.T) {
	d, err := ParseDecoding("")
	require.NoError(t, err)
	assert.Equal(t, DecodingGreedy, d)

	d, err = ParseDecoding("sampling")
	require.NoError(t, err)
	assert.Equal(t, DecodingSampling, d)

	_, err = ParseDecoding("beam")
	assert.Error(t, err)
}

func TestParams_RequestDefaults(t *testing.T) {
	req := Params{}.request("p", "m")
	assert.Equal(t, DefaultMaxNewTokens, req.MaxTokens)
	assert.False(t, req.Sampling())
}
