// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package generator

import (
	"fmt"
	"time"

	"github.com/teralad/hashira/internal/llm"
)

// Decoding selects how tokens are chosen.
type Decoding string

// Decoding policies.
const (
	DecodingGreedy   Decoding = "greedy"
	DecodingSampling Decoding = "sampling"
)

// DefaultMaxNewTokens bounds the continuation length of one generation.
const DefaultMaxNewTokens = 1024

// Sampling defaults.
const (
	DefaultTemperature       = 0.2
	DefaultTopP              = 0.95
	DefaultRepetitionPenalty = 1.1
)

// Params are the process-wide generation settings.
type Params struct {
	MaxNewTokens int
	Decoding     Decoding

	// Sampling-only knobs. Zero selects the default.
	Temperature       float64
	TopP              float64
	RepetitionPenalty float64

	// Timeout bounds a single generation call. Zero means no limit.
	Timeout time.Duration
}

// DefaultParams returns greedy decoding with DefaultMaxNewTokens.
func DefaultParams() Params {
	return Params{MaxNewTokens: DefaultMaxNewTokens, Decoding: DecodingGreedy}
}

// ParseDecoding accepts "", "greedy" and "sampling".
func ParseDecoding(s string) (Decoding, error) {
	switch Decoding(s) {
	case "", DecodingGreedy:
		return DecodingGreedy, nil
	case DecodingSampling:
		return DecodingSampling, nil
	default:
		return "", fmt.Errorf("unknown decoding policy %q", s)
	}
}

func (p Params) request(prompt, model string) llm.Request {
	req := llm.Request{
		Prompt:    prompt,
		Model:     model,
		MaxTokens: p.MaxNewTokens,
	}
	if req.MaxTokens <= 0 {
		req.MaxTokens = DefaultMaxNewTokens
	}

	if p.Decoding != DecodingSampling {
		zero := 0.0
		req.Temperature = &zero
		return req
	}

	temp := orDefault(p.Temperature, DefaultTemperature)
	topP := orDefault(p.TopP, DefaultTopP)
	rep := orDefault(p.RepetitionPenalty, DefaultRepetitionPenalty)
	req.Temperature = &temp
	req.TopP = &topP
	req.RepetitionPenalty = &rep
	return req
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
