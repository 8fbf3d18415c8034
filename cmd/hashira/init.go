// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/teralad/hashira/internal/bootstrap"
)

// Init-specific flag values.
var initForce bool

// initCmd writes a starter configuration.
var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Bootstrap hashira in a project",
	Long: `Write a starter .hashira.yaml with the default model chain, register the
hashira MCP server in .mcp.json, and add .env to .gitignore so API tokens
stay out of version control.

This command is non-destructive by default: it skips files that already
exist. Use --force to regenerate .hashira.yaml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing .hashira.yaml")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return exitError(ExitInvalidArgs, "hashira: cannot resolve path %q (%v)", dir, err)
	}
	info, err := cmdFS.Stat(absPath)
	if err != nil {
		return exitError(ExitInvalidArgs, "hashira: path %q does not exist", dir)
	}
	if !info.IsDir() {
		return exitError(ExitInvalidArgs, "hashira: %q is not a directory", dir)
	}

	slog.Info("initializing hashira", "path", absPath)

	bootstrap.FS = cmdFS
	result, err := bootstrap.Run(bootstrap.InitConfig{Dir: absPath, Force: initForce})
	if err != nil {
		return fmt.Errorf("hashira: init failed (%v)", err)
	}

	w := cmd.OutOrStdout()
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	dim := color.New(color.Faint)

	_, _ = fmt.Fprintln(w)
	_, _ = bold.Fprintln(w, "hashira init complete")
	_, _ = fmt.Fprintln(w)

	for _, a := range result.Actions {
		var prefix string
		switch a.Operation {
		case bootstrap.OpCreated:
			prefix = green.Sprint("  + ")
		case bootstrap.OpUpdated:
			prefix = yellow.Sprint("  ~ ")
		default:
			prefix = dim.Sprint("  - ")
		}
		_, _ = fmt.Fprintf(w, "%s%-14s %s\n", prefix, a.File, dim.Sprintf("(%s)", a.Description))
	}

	if result.Changed() {
		_, _ = fmt.Fprintln(w)
		_, _ = bold.Fprintln(w, "Next steps:")
		_, _ = fmt.Fprintln(w, "  1. Put HF_TOKEN (or ANTHROPIC_API_KEY / OPENAI_API_KEY) in .env")
		_, _ = fmt.Fprintln(w, "  2. Review the models in .hashira.yaml")
		_, _ = fmt.Fprintln(w, "  3. Run: hashira generate --input api.yaml --output generated")
	}
	_, _ = fmt.Fprintln(w)
	return nil
}
