// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package generator

import (
	"fmt"
	"strings"

	"github.com/teralad/hashira/internal/llm"
)

// Candidate names one model to try, on one provider.
type Candidate struct {
	Provider string
	Model    string
}

// String renders the candidate as provider:model.
func (c Candidate) String() string {
	return c.Provider + ":" + c.Model
}

// DefaultCandidates returns the fallback chain tried when nothing is
// configured: a code model, a smaller code model, then a tiny general model.
func DefaultCandidates() []Candidate {
	return []Candidate{
		{Provider: llm.ProviderHuggingFace, Model: "bigcode/starcoderbase"},
		{Provider: llm.ProviderHuggingFace, Model: "Salesforce/codegen-350M-mono"},
		{Provider: llm.ProviderHuggingFace, Model: "distilgpt2"},
	}
}

// ParseCandidate parses "provider:model". A bare model name is taken as a
// Hugging Face model id.
func ParseCandidate(s string) (Candidate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Candidate{}, fmt.Errorf("empty model")
	}
	provider, model, ok := strings.Cut(s, ":")
	if !ok {
		return Candidate{Provider: llm.ProviderHuggingFace, Model: s}, nil
	}
	if provider == "" || model == "" {
		return Candidate{}, fmt.Errorf("model %q: want provider:model", s)
	}
	return Candidate{Provider: provider, Model: model}, nil
}

// ParseCandidates parses each entry with ParseCandidate, keeping order.
func ParseCandidates(specs []string) ([]Candidate, error) {
	out := make([]Candidate, 0, len(specs))
	for _, s := range specs {
		c, err := ParseCandidate(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
