// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

// Package redact strips model-provider credentials from strings before they
// reach logs, MCP responses, or the web UI.
package redact

import (
	"os"
	"sort"
	"strings"
	"sync"
)

// sensitiveEnvVars lists environment variables holding provider credentials.
var sensitiveEnvVars = []string{
	"HF_TOKEN",
	"HUGGINGFACE_API_KEY",
	"ANTHROPIC_API_KEY",
	"OPENAI_API_KEY",
}

const placeholder = "[REDACTED]"

var (
	mu      sync.Mutex
	secrets []string
	loaded  bool
)

func load() []string {
	mu.Lock()
	defer mu.Unlock()
	if !loaded {
		for _, name := range sensitiveEnvVars {
			if v := os.Getenv(name); len(v) >= 4 {
				secrets = append(secrets, v)
			}
		}
		// Longest first so a secret that contains another is replaced whole.
		sort.Slice(secrets, func(i, j int) bool { return len(secrets[i]) > len(secrets[j]) })
		loaded = true
	}
	return secrets
}

// ResetForTest drops the cached secrets so tests can change env vars with
// t.Setenv between calls.
func ResetForTest() {
	mu.Lock()
	secrets, loaded = nil, false
	mu.Unlock()
}

// Names returns the environment variables whose values are redacted.
func Names() []string {
	return append([]string(nil), sensitiveEnvVars...)
}

// String replaces every occurrence of a known credential with "[REDACTED]".
// Values are read from the environment on first use and cached.
func String(s string) string {
	for _, secret := range load() {
		s = strings.ReplaceAll(s, secret, placeholder)
	}
	return s
}

// Error returns err's message with credentials redacted, or "" for nil.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
