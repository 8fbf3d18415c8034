// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teralad/hashira/internal/bundle"
	"github.com/teralad/hashira/internal/config"
	"github.com/teralad/hashira/internal/output"
	"github.com/teralad/hashira/internal/pipeline"
)

// Generate-specific flag values.
var (
	genInput             string
	genOutput            string
	genArchetype         string
	genZip               string
	genStrict            bool
	genModels            []string
	genDecoding          string
	genMaxNewTokens      int
	genTimeout           string
	genFailOnPlaceholder bool
	genFormat            string
)

// generateCmd runs the full pipeline on one specification.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Java classes from an API specification",
	Long: `Parse an OpenAPI (.yaml, .yml, .json) or Word (.docx) specification,
generate Java code with the first model that loads, and write one file per
public class into the output directory.

If no model can be loaded, a placeholder class GeneratedAPI is written that
records the API description and the reason.

Examples:
  hashira generate --input api.yaml --output out
  hashira generate --input api.docx --output out --archetype ./examples
  hashira generate --input api.yaml --output out --archetype https://github.com/acme/templates.git#main
  hashira generate --input api.yaml --output out --model anthropic:claude-sonnet-4-5 --zip out.zip`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genInput, "input", "i", "", "OpenAPI (.yaml/.yml/.json) or Word (.docx) specification")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "directory for generated files")
	generateCmd.Flags().StringVarP(&genArchetype, "archetype", "a", "", "example code: directory, file or git URL (append #ref for a branch)")
	generateCmd.Flags().StringVar(&genZip, "zip", "", "also write the generated files to this zip archive")
	generateCmd.Flags().BoolVar(&genStrict, "strict", false, "validate OpenAPI documents before parsing")
	generateCmd.Flags().StringSliceVarP(&genModels, "model", "m", nil, "candidate models in fallback order (provider:model, repeatable)")
	generateCmd.Flags().StringVar(&genDecoding, "decoding", "", "decoding policy (greedy, sampling)")
	generateCmd.Flags().IntVar(&genMaxNewTokens, "max-new-tokens", 0, "maximum tokens to generate")
	generateCmd.Flags().StringVar(&genTimeout, "timeout", "", "per-generation timeout (e.g. 5m)")
	generateCmd.Flags().StringVarP(&genFormat, "format", "f", "text", "summary format ("+strings.Join(output.Names(), ", ")+")")
	generateCmd.Flags().BoolVar(&genFailOnPlaceholder, "fail-on-placeholder", false, "exit 3 when the model fails and a placeholder is written")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if genInput == "" || genOutput == "" {
		return exitError(ExitInvalidArgs, "hashira: --input and --output are required")
	}

	formatter, err := output.GetFormatter(genFormat)
	if err != nil {
		return exitError(ExitInvalidArgs, "hashira: %v", err)
	}

	cfg, err := resolveConfig(&config.Config{
		Models:       genModels,
		Decoding:     genDecoding,
		MaxNewTokens: genMaxNewTokens,
		Timeout:      genTimeout,
	})
	if err != nil {
		return err
	}
	pipe, err := newPipeline(cfg)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	res, err := pipe.Run(cmd.Context(), pipeline.Input{
		SpecPath:        genInput,
		OutputDir:       genOutput,
		ArchetypeSource: genArchetype,
		Strict:          genStrict,
	})
	if res == nil {
		// Unsupported format, parse error or unreadable archetype.
		return exitError(ExitInvalidArgs, "hashira: %v", err)
	}
	if err != nil {
		// Keep the generated code so nothing is lost.
		_, _ = fmt.Fprintln(w, res.Generated)
		return exitError(ExitWriteFailure, "hashira: %v", err)
	}

	if genZip != "" {
		if err := writeZip(genZip, res.Files); err != nil {
			return exitError(ExitWriteFailure, "hashira: %v", err)
		}
	}

	report := output.FromResult(genInput, res)
	report.Zip = genZip
	if err := formatter.Format(report, w); err != nil {
		return exitError(ExitWriteFailure, "hashira: %v", err)
	}

	if res.Placeholder && genFailOnPlaceholder {
		return exitError(ExitPlaceholder, "hashira: %s", report.Reason)
	}
	return nil
}

// writeZip packs the written files. Repeated paths (a class generated
// twice) are archived once with their final content.
func writeZip(path string, written []string) error {
	seen := make(map[string]bool, len(written))
	var files []bundle.File
	for _, p := range written {
		if seen[p] {
			continue
		}
		seen[p] = true
		data, err := cmdFS.ReadFile(p)
		if err != nil {
			return fmt.Errorf("zip: %w", err)
		}
		files = append(files, bundle.File{Name: filepath.Base(p), Content: data})
	}
	return bundle.WriteFile(cmdFS, path, files)
}
