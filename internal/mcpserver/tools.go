// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/teralad/hashira/internal/apidoc"
	"github.com/teralad/hashira/internal/pipeline"
	"github.com/teralad/hashira/internal/redact"
)

// ParseFileInput is the input schema for the two parse tools.
type ParseFileInput struct {
	FilePath string `json:"file_path" jsonschema:"Absolute path to the specification file"`
}

// GenerateInput is the input schema for generate_java_code.
type GenerateInput struct {
	APIDescription string `json:"api_description" jsonschema:"Text description of the API to implement (output of parse_openapi_spec or parse_word_api_doc)"`
	ArchetypeCode  string `json:"archetype_code,omitempty" jsonschema:"Optional reference Java code that guides style and patterns"`
}

// GenerateFromFileInput is the input schema for generate_code_from_file.
type GenerateFromFileInput struct {
	InputFile          string `json:"input_file" jsonschema:"Absolute path to the input file (.yaml, .yml, .json or .docx)"`
	OutputDirectory    string `json:"output_directory,omitempty" jsonschema:"Optional directory to save one .java file per class into. If empty the code is only returned."`
	ArchetypeDirectory string `json:"archetype_directory,omitempty" jsonschema:"Optional directory of example .java files used as archetypes"`
}

func boolPtr(b bool) *bool { return &b }

func (s *Server) registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse_openapi_spec",
		Description: "Parse an OpenAPI specification file (YAML/JSON) and return one line per endpoint: method, path and summary.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, s.handleParseOpenAPI)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse_word_api_doc",
		Description: "Parse a Word document (.docx) describing an API and return its paragraph text.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, s.handleParseWord)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_java_code",
		Description: "Generate Java classes from an API description with a code model, trying fallback models in order. Optionally takes archetype code as a style reference.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(true),
		},
	}, s.handleGenerate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_code_from_file",
		Description: "End to end: parse an OpenAPI or Word file, generate Java code, and optionally save one file per class to a directory.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    false,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(true),
		},
	}, s.handleGenerateFromFile)
}

// textResult wraps text as a tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: text}}}
}

// errorResult reports a tool-level failure as text starting with "Error".
// Credentials are scrubbed from the message.
func errorResult(format string, args ...any) *mcp.CallToolResult {
	res := textResult(redact.String(fmt.Sprintf(format, args...)))
	res.IsError = true
	return res
}

func (s *Server) handleParseOpenAPI(_ context.Context, _ *mcp.CallToolRequest, input ParseFileInput) (*mcp.CallToolResult, any, error) {
	path, err := ResolveFile(input.FilePath)
	if err != nil {
		return errorResult("Error: %v", err), nil, nil
	}
	format, err := apidoc.DetectFormat(path)
	if err != nil || !format.IsOpenAPI() {
		return errorResult("Error: Unsupported file type. Expected .yaml, .yml, or .json"), nil, nil
	}
	desc, err := apidoc.ParseOpenAPI(path)
	if err != nil {
		return errorResult("Error parsing OpenAPI spec: %v", err), nil, nil
	}
	return textResult(desc), nil, nil
}

func (s *Server) handleParseWord(_ context.Context, _ *mcp.CallToolRequest, input ParseFileInput) (*mcp.CallToolResult, any, error) {
	path, err := ResolveFile(input.FilePath)
	if err != nil {
		return errorResult("Error: %v", err), nil, nil
	}
	if format, err := apidoc.DetectFormat(path); err != nil || format != apidoc.FormatWord {
		return errorResult("Error: Expected .docx file"), nil, nil
	}
	text, err := apidoc.ParseWord(path)
	if err != nil {
		return errorResult("Error parsing Word document: %v", err), nil, nil
	}
	return textResult(text), nil, nil
}

func (s *Server) handleGenerate(ctx context.Context, _ *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, any, error) {
	if strings.TrimSpace(input.APIDescription) == "" {
		return errorResult("Error: api_description is required"), nil, nil
	}
	res := s.pipe.Generate(ctx, input.APIDescription, input.ArchetypeCode)
	return textResult(res.Generated), nil, nil
}

func (s *Server) handleGenerateFromFile(ctx context.Context, _ *mcp.CallToolRequest, input GenerateFromFileInput) (*mcp.CallToolResult, any, error) {
	path, err := ResolveFile(input.InputFile)
	if err != nil {
		return errorResult("Error: Input file not found: %s", input.InputFile), nil, nil
	}

	in := pipeline.Input{SpecPath: path}
	if input.ArchetypeDirectory != "" {
		// A missing archetype directory is skipped, not an error.
		if dirExists(input.ArchetypeDirectory) {
			arch, err := s.loader.LoadDir(input.ArchetypeDirectory)
			if err != nil {
				return errorResult("Error loading archetypes: %v", err), nil, nil
			}
			in.Archetype = arch
		} else {
			slog.WarnContext(ctx, "archetype directory not found, continuing without", "dir", input.ArchetypeDirectory)
		}
	}

	var outDir string
	if input.OutputDirectory != "" {
		outDir, err = filepath.Abs(input.OutputDirectory)
		if err != nil {
			return errorResult("Error: %v", err), nil, nil
		}
		in.OutputDir = outDir
	}

	res, err := s.pipe.Run(ctx, in)
	switch {
	case err == nil:
	case apidoc.IsUnsupported(err):
		return errorResult("Error: Unsupported file type. Use .yaml, .yml, .json, or .docx"), nil, nil
	case res != nil && res.WriteErr != nil:
		return errorResult("Error saving files: %v\n\nGenerated code:\n%s", res.WriteErr, res.Generated), nil, nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, nil, err
	default:
		return errorResult("Error parsing input file: %v", err), nil, nil
	}

	if outDir == "" {
		return textResult(res.Generated), nil, nil
	}
	return textResult(fmt.Sprintf("Code generated successfully!\n\nOutput saved to: %s\nFiles: %d\n\n%s",
		outDir, len(res.Files), res.Generated)), nil, nil
}
