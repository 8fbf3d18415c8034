// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package llm_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teralad/hashira/internal/llm"
)

func newTestHF(t *testing.T, url string) *llm.HuggingFaceProvider {
	t.Helper()
	p, err := llm.NewHuggingFaceProvider(
		llm.WithHFToken("hf_test"),
		llm.WithHFBaseURL(url),
		llm.WithHFMaxRetries(0),
	)
	require.NoError(t, err)
	return p
}

func TestHuggingFaceComplete_ListResponse(t *testing.T) {
	var captured map[string]any
	srv := newJSONServer(t, []map[string]string{{"generated_text": "PROMPT public class A {}"}}, http.StatusOK, &captured)

	resp, err := newTestHF(t, srv.URL).Complete(context.Background(), llm.Request{
		Prompt:    "PROMPT",
		Model:     "Salesforce/codegen-350M-mono",
		MaxTokens: 1024,
	})
	require.NoError(t, err)
	assert.Equal(t, "PROMPT public class A {}", resp.Content)
	assert.Equal(t, "Salesforce/codegen-350M-mono", resp.Model)

	assert.Equal(t, "PROMPT", captured["inputs"])
	params := captured["parameters"].(map[string]any)
	assert.Equal(t, float64(1024), params["max_new_tokens"])
	assert.Equal(t, false, params["do_sample"])
	assert.NotContains(t, params, "temperature")
	assert.NotContains(t, params, "top_p")
	options := captured["options"].(map[string]any)
	assert.Equal(t, true, options["wait_for_model"])
}

func TestHuggingFaceComplete_ObjectResponse(t *testing.T) {
	srv := newJSONServer(t, map[string]string{"generated_text": "class B {}"}, http.StatusOK, nil)

	resp, err := newTestHF(t, srv.URL).Complete(context.Background(), llm.Request{Prompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, "class B {}", resp.Content)
	assert.Equal(t, "bigcode/starcoderbase", resp.Model)
}

func TestHuggingFaceComplete_SamplingParameters(t *testing.T) {
	var captured map[string]any
	srv := newJSONServer(t, []map[string]string{{"generated_text": "ok"}}, http.StatusOK, &captured)

	temp, topP, rep := 0.2, 0.95, 1.1
	_, err := newTestHF(t, srv.URL).Complete(context.Background(), llm.Request{
		Prompt:            "x",
		Temperature:       &temp,
		TopP:              &topP,
		RepetitionPenalty: &rep,
	})
	require.NoError(t, err)

	params := captured["parameters"].(map[string]any)
	assert.Equal(t, true, params["do_sample"])
	assert.Equal(t, 0.2, params["temperature"])
	assert.Equal(t, 0.95, params["top_p"])
	assert.Equal(t, 1.1, params["repetition_penalty"])
}

func TestHuggingFaceComplete_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   any
		want   string
	}{
		{"model loading", http.StatusServiceUnavailable, map[string]any{"error": "Model bigcode/starcoderbase is currently loading", "estimated_time": 20.0}, "currently loading"},
		{"not found", http.StatusNotFound, map[string]any{"error": "Model not found"}, "status 404"},
		{"empty list", http.StatusOK, []map[string]string{}, "empty generation list"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newJSONServer(t, tt.body, tt.status, nil)
			_, err := newTestHF(t, srv.URL).Complete(context.Background(), llm.Request{Prompt: "x"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), "huggingface")
		})
	}
}

func TestHuggingFaceProvider_TokenFromEnv(t *testing.T) {
	t.Setenv("HF_TOKEN", "hf_env")
	p, err := llm.NewHuggingFaceProvider(llm.WithHFModel("distilgpt2"))
	require.NoError(t, err)
	assert.Equal(t, "distilgpt2", p.Model())
	assert.Equal(t, 3, p.MaxRetries())
}
