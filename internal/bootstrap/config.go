// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/teralad/hashira/internal/config"
	"github.com/teralad/hashira/internal/generator"
	"github.com/teralad/hashira/internal/redact"
)

// GenerateConfig writes a commented .hashira.yaml with the default settings.
// An existing file is left alone unless force is set.
func GenerateConfig(dir string, force bool) (Action, error) {
	path := filepath.Join(dir, config.FileName)

	_, err := FS.Stat(path)
	exists := err == nil
	if err != nil && !os.IsNotExist(err) {
		return Action{}, fmt.Errorf("checking %s: %w", config.FileName, err)
	}
	if exists && !force {
		return Action{
			File:        config.FileName,
			Operation:   OpSkipped,
			Description: "already exists (use --force to overwrite)",
		}, nil
	}

	if err := FS.WriteFile(path, []byte(DefaultConfig()), 0o644); err != nil { //nolint:gosec // config is meant to be committed
		return Action{}, fmt.Errorf("writing %s: %w", config.FileName, err)
	}

	op, desc := OpCreated, "default models and decoding settings"
	if exists {
		op, desc = OpUpdated, "overwritten with defaults"
	}
	return Action{File: config.FileName, Operation: op, Description: desc}, nil
}

// DefaultConfig renders the starter config file.
func DefaultConfig() string {
	params := generator.DefaultParams()

	var b strings.Builder
	b.WriteString("# hashira configuration\n")
	b.WriteString("# Flags override this file; this file overrides ~/.config/hashira/config.yaml.\n\n")
	b.WriteString("# Models tried in order until one loads (provider:model).\n")
	b.WriteString("# Providers: anthropic, huggingface, openai.\n")
	fmt.Fprintf(&b, "# Credentials come from %s (a .env file works too).\n", strings.Join(redact.Names(), ", "))
	b.WriteString("models:\n")
	for _, c := range generator.DefaultCandidates() {
		fmt.Fprintf(&b, "  - %s\n", c)
	}
	b.WriteString("\n# greedy or sampling\n")
	fmt.Fprintf(&b, "decoding: %s\n", params.Decoding)
	fmt.Fprintf(&b, "max_new_tokens: %d\n", params.MaxNewTokens)
	b.WriteString("# timeout: 5m\n\n")
	fmt.Fprintf(&b, "archetype_ext: %s\n\n", config.DefaultArchetypeExt)
	b.WriteString("# hf_base_url: https://api-inference.huggingface.co\n")
	b.WriteString("# openai_base_url: http://localhost:11434/v1\n\n")
	b.WriteString("web:\n")
	fmt.Fprintf(&b, "  addr: %q\n", config.DefaultWebAddr)
	fmt.Fprintf(&b, "  max_concurrent: %d\n", config.DefaultMaxConcurrent)
	return b.String()
}
