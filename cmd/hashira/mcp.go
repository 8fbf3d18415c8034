// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/teralad/hashira/internal/mcpserver"
)

// mcpCmd is the parent command for MCP-related subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server commands",
	Long:  "Commands for running hashira as an MCP server, exposing parse and generate tools to AI assistants.",
}

// mcpServeCmd runs the MCP server over stdio.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Start an MCP server on stdin/stdout, exposing hashira's tools:
  - parse_openapi_spec:      Extract endpoints from an OpenAPI file
  - parse_word_api_doc:      Extract text from a Word document
  - generate_java_code:      Generate Java from an API description
  - generate_code_from_file: Parse, generate and optionally save in one call

The model is loaded on the first generate call and reused for the rest of
the session.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := resolveConfig(nil)
		if err != nil {
			return err
		}
		pipe, err := newPipeline(cfg)
		if err != nil {
			return err
		}
		return mcpserver.Run(cmd.Context(), Version, pipe, &mcp.StdioTransport{},
			mcpserver.WithLoader(archetypeLoader(cfg)))
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
}
