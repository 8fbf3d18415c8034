// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes hashira's parse and generate operations as tools.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/teralad/hashira/internal/archetype"
	"github.com/teralad/hashira/internal/pipeline"
)

// Server holds the collaborators the tool handlers share.
type Server struct {
	pipe   *pipeline.Pipeline
	loader *archetype.Loader
}

// Option configures a Server.
type Option func(*Server)

// WithLoader sets the archetype loader used by generate_code_from_file.
func WithLoader(l *archetype.Loader) Option {
	return func(s *Server) { s.loader = l }
}

// New creates an MCP server with hashira's tools registered. All generation
// goes through pipe, so the model is loaded once per process.
func New(version string, pipe *pipeline.Pipeline, opts ...Option) *mcp.Server {
	s := &Server{pipe: pipe, loader: archetype.NewLoader("")}
	for _, opt := range opts {
		opt(s)
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "hashira",
		Title:   "Hashira: API spec to Java code",
		Version: version,
	}, nil)

	s.registerTools(server)
	return server
}

// Run creates an MCP server and runs it on the given transport.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version string, pipe *pipeline.Pipeline, transport mcp.Transport, opts ...Option) error {
	return New(version, pipe, opts...).Run(ctx, transport)
}
