// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

// Package config handles .hashira.yaml and .hashira.toml configuration files.
package config

import "time"

// Config represents the contents of a hashira config file. Zero values mean
// "not set" so that Merge can layer files and flags.
type Config struct {
	Models        []string  `yaml:"models,omitempty" toml:"models,omitempty"`
	Decoding      string    `yaml:"decoding,omitempty" toml:"decoding,omitempty"`
	MaxNewTokens  int       `yaml:"max_new_tokens,omitempty" toml:"max_new_tokens,omitempty"`
	Timeout       string    `yaml:"timeout,omitempty" toml:"timeout,omitempty"`
	ArchetypeExt  string    `yaml:"archetype_ext,omitempty" toml:"archetype_ext,omitempty"`
	HFBaseURL     string    `yaml:"hf_base_url,omitempty" toml:"hf_base_url,omitempty"`
	OpenAIBaseURL string    `yaml:"openai_base_url,omitempty" toml:"openai_base_url,omitempty"`
	Web           WebConfig `yaml:"web,omitempty" toml:"web,omitempty"`
}

// WebConfig holds settings for the web UI.
type WebConfig struct {
	Addr          string `yaml:"addr,omitempty" toml:"addr,omitempty"`
	MaxConcurrent int    `yaml:"max_concurrent,omitempty" toml:"max_concurrent,omitempty"`
}

// Config file names looked up in the working directory, in order.
const (
	FileName     = ".hashira.yaml"
	TOMLFileName = ".hashira.toml"
)

// Defaults applied by the accessors below when a key is unset.
const (
	DefaultArchetypeExt  = ".java"
	DefaultWebAddr       = ":8501"
	DefaultMaxConcurrent = 1
)

// ArchetypeExtension returns the archetype file extension, defaulting to .java.
func (c *Config) ArchetypeExtension() string {
	if c.ArchetypeExt == "" {
		return DefaultArchetypeExt
	}
	return c.ArchetypeExt
}

// WebAddr returns the web UI listen address.
func (c *Config) WebAddr() string {
	if c.Web.Addr == "" {
		return DefaultWebAddr
	}
	return c.Web.Addr
}

// WebMaxConcurrent returns the number of generations the web UI runs at once.
func (c *Config) WebMaxConcurrent() int {
	if c.Web.MaxConcurrent <= 0 {
		return DefaultMaxConcurrent
	}
	return c.Web.MaxConcurrent
}

// TimeoutDuration returns the per-generation timeout, or 0 for none.
// Invalid durations are rejected by Validate and read as 0 here.
func (c *Config) TimeoutDuration() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return d
}
