// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/teralad/hashira/internal/apidoc"
)

var parseValidate bool

// parseCmd prints the API description extracted from a specification.
var parseCmd = &cobra.Command{
	Use:   "parse <spec>",
	Short: "Print the API description extracted from a specification",
	Long: `Parse an OpenAPI (.yaml, .yml, .json) or Word (.docx) specification and
print the text that would be sent to the model.

With --validate, OpenAPI documents are checked against the OpenAPI schema
first (Swagger 2.0 documents are converted before validation).`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseValidate, "validate", false, "validate OpenAPI documents before parsing")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := apidoc.DetectFormat(path)
	if err != nil {
		return exitError(ExitInvalidArgs, "hashira: %v", err)
	}
	if parseValidate && format.IsOpenAPI() {
		if err := apidoc.Validate(cmd.Context(), path); err != nil {
			return exitError(ExitInvalidArgs, "hashira: %v", err)
		}
		_, _ = color.New(color.FgGreen).Fprintln(cmd.ErrOrStderr(), "valid OpenAPI document")
	}

	desc, err := apidoc.Parse(path)
	if err != nil {
		return exitError(ExitInvalidArgs, "hashira: %v", err)
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), desc)
	return nil
}
