// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package config

// Merge layers over on top of base and returns a new Config. Set fields in
// over win; zero-value fields fall through to base. Neither input is modified.
func Merge(base, over *Config) *Config {
	result := &Config{}
	if base != nil {
		*result = *base
		result.Models = append([]string(nil), base.Models...)
	}
	if over == nil {
		return result
	}

	if len(over.Models) > 0 {
		result.Models = append([]string(nil), over.Models...)
	}
	if over.Decoding != "" {
		result.Decoding = over.Decoding
	}
	if over.MaxNewTokens > 0 {
		result.MaxNewTokens = over.MaxNewTokens
	}
	if over.Timeout != "" {
		result.Timeout = over.Timeout
	}
	if over.ArchetypeExt != "" {
		result.ArchetypeExt = over.ArchetypeExt
	}
	if over.HFBaseURL != "" {
		result.HFBaseURL = over.HFBaseURL
	}
	if over.OpenAIBaseURL != "" {
		result.OpenAIBaseURL = over.OpenAIBaseURL
	}
	if over.Web.Addr != "" {
		result.Web.Addr = over.Web.Addr
	}
	if over.Web.MaxConcurrent > 0 {
		result.Web.MaxConcurrent = over.Web.MaxConcurrent
	}
	return result
}
