// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/teralad/hashira/internal/archetype"
	"github.com/teralad/hashira/internal/config"
	"github.com/teralad/hashira/internal/generator"
	"github.com/teralad/hashira/internal/llm"
	"github.com/teralad/hashira/internal/pipeline"
)

// newProvider builds an LLM provider by name. Tests replace it with one
// returning an llm.MockProvider.
var newProvider = llm.New

// resolveConfig layers the global file, the repo (or --config) file and
// flags, in increasing precedence, then validates the result.
func resolveConfig(flags *config.Config) (*config.Config, error) {
	global, err := config.LoadGlobal()
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "hashira: %v", err)
	}

	var repo *config.Config
	if configPath != "" {
		repo, err = config.LoadFile(configPath)
	} else {
		repo, err = config.Load(".")
	}
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "hashira: %v", err)
	}

	cfg := config.Merge(config.Merge(global, repo), flags)
	if err := config.Validate(cfg); err != nil {
		return nil, exitError(ExitInvalidArgs, "hashira: %v", err)
	}
	slog.Debug("resolved config", "models", cfg.Models, "decoding", cfg.Decoding,
		"max_new_tokens", cfg.MaxNewTokens, "timeout", cfg.Timeout)
	return cfg, nil
}

// newClient builds the generation client described by cfg. cfg must have
// passed config.Validate.
func newClient(cfg *config.Config) (*generator.Client, error) {
	var opts []generator.Option

	if len(cfg.Models) > 0 {
		cands, err := generator.ParseCandidates(cfg.Models)
		if err != nil {
			return nil, fmt.Errorf("models: %w", err)
		}
		opts = append(opts, generator.WithCandidates(cands...))
	}

	params := generator.DefaultParams()
	if cfg.Decoding != "" {
		d, err := generator.ParseDecoding(cfg.Decoding)
		if err != nil {
			return nil, err
		}
		params.Decoding = d
	}
	if cfg.MaxNewTokens > 0 {
		params.MaxNewTokens = cfg.MaxNewTokens
	}
	params.Timeout = cfg.TimeoutDuration()
	opts = append(opts, generator.WithParams(params))

	opts = append(opts, generator.WithProviderFactory(func(name string) (llm.Provider, error) {
		return newProvider(name, llm.Config{BaseURL: baseURLFor(cfg, name)})
	}))
	return generator.NewClient(opts...), nil
}

func baseURLFor(cfg *config.Config, provider string) string {
	switch provider {
	case llm.ProviderHuggingFace:
		return cfg.HFBaseURL
	case llm.ProviderOpenAI:
		return cfg.OpenAIBaseURL
	default:
		return ""
	}
}

// newPipeline wires the client and an archetype loader into a pipeline
// that reads and writes through cmdFS.
func newPipeline(cfg *config.Config) (*pipeline.Pipeline, error) {
	client, err := newClient(cfg)
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "hashira: %v", err)
	}
	return pipeline.New(client,
		pipeline.WithFileSystem(cmdFS),
		pipeline.WithLoader(archetypeLoader(cfg)),
	), nil
}

func archetypeLoader(cfg *config.Config) *archetype.Loader {
	loader := archetype.NewLoader(cfg.ArchetypeExtension())
	loader.FS = cmdFS
	return loader
}
