// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	hashiralog "github.com/teralad/hashira/internal/log"
)

// Global flag values.
var (
	verbose    bool
	quiet      bool
	noColor    bool
	configPath string
)

// rootCmd is the base command for hashira.
var rootCmd = &cobra.Command{
	Use:   "hashira",
	Short: "Generate Java code from API specifications",
	Long: `Hashira reads an API specification (OpenAPI YAML/JSON or a Word .docx),
asks a code model to implement it, and writes one .java file per generated
class. Example code can be supplied as an archetype to steer naming and
layout.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		hashiralog.Setup(verbose, quiet)
		loadDotEnv(".env")
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: .hashira.yaml or .hashira.toml in the working directory)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}
