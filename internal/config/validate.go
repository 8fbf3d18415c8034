// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/teralad/hashira/internal/llm"
)

// Decoding policies accepted by the decoding key.
const (
	DecodingGreedy   = "greedy"
	DecodingSampling = "sampling"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	for i, m := range cfg.Models {
		provider, model, ok := strings.Cut(m, ":")
		switch {
		case !ok || provider == "" || model == "":
			errs = append(errs, fmt.Sprintf("models[%d]: %q must have the form provider:model", i, m))
		case !slices.Contains(llm.Providers(), provider):
			errs = append(errs, fmt.Sprintf("models[%d]: unknown provider %q (must be one of %s)", i, provider, strings.Join(llm.Providers(), ", ")))
		}
	}

	switch cfg.Decoding {
	case "", DecodingGreedy, DecodingSampling:
	default:
		errs = append(errs, fmt.Sprintf("decoding: invalid value %q (must be greedy or sampling)", cfg.Decoding))
	}

	if cfg.MaxNewTokens < 0 {
		errs = append(errs, fmt.Sprintf("max_new_tokens: must be non-negative, got %d", cfg.MaxNewTokens))
	}

	if cfg.Timeout != "" {
		if d, err := time.ParseDuration(cfg.Timeout); err != nil {
			errs = append(errs, fmt.Sprintf("timeout: %v", err))
		} else if d < 0 {
			errs = append(errs, fmt.Sprintf("timeout: must be non-negative, got %s", cfg.Timeout))
		}
	}

	if cfg.ArchetypeExt != "" && !strings.HasPrefix(cfg.ArchetypeExt, ".") {
		errs = append(errs, fmt.Sprintf("archetype_ext: must start with a dot, got %q", cfg.ArchetypeExt))
	}

	for key, raw := range map[string]string{"hf_base_url": cfg.HFBaseURL, "openai_base_url": cfg.OpenAIBaseURL} {
		if raw == "" {
			continue
		}
		if u, err := url.Parse(raw); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Sprintf("%s: not an absolute URL: %q", key, raw))
		}
	}

	if cfg.Web.MaxConcurrent < 0 {
		errs = append(errs, fmt.Sprintf("web.max_concurrent: must be non-negative, got %d", cfg.Web.MaxConcurrent))
	}

	if len(errs) > 0 {
		slices.Sort(errs)
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
