// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

// Package apidoc turns API specification documents (OpenAPI YAML/JSON and
// Word .docx files) into the plain-text API description fed to the model.
package apidoc

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies the kind of specification document.
type Format int

const (
	FormatUnknown Format = iota
	FormatOpenAPIYAML
	FormatOpenAPIJSON
	FormatWord
)

func (f Format) String() string {
	switch f {
	case FormatOpenAPIYAML:
		return "openapi-yaml"
	case FormatOpenAPIJSON:
		return "openapi-json"
	case FormatWord:
		return "word"
	default:
		return "unknown"
	}
}

// IsOpenAPI reports whether the format is one of the OpenAPI encodings.
func (f Format) IsOpenAPI() bool {
	return f == FormatOpenAPIYAML || f == FormatOpenAPIJSON
}

// SupportedExtensions lists the accepted file extensions in display order.
var SupportedExtensions = []string{".yaml", ".yml", ".json", ".docx"}

// OpenAPIExtensions lists the extensions accepted for OpenAPI documents.
var OpenAPIExtensions = []string{".yaml", ".yml", ".json"}

// DetectFormat infers the document format from the file extension.
// Matching is case-insensitive.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatOpenAPIYAML, nil
	case ".json":
		return FormatOpenAPIJSON, nil
	case ".docx":
		return FormatWord, nil
	}
	return FormatUnknown, &Error{
		Code:    UnsupportedFormat,
		Path:    path,
		Message: fmt.Sprintf("unsupported file type %q (use %s)", filepath.Ext(path), strings.Join(SupportedExtensions, ", ")),
	}
}

// Parse detects the format of path and dispatches to the matching parser.
func Parse(path string) (string, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return "", err
	}
	if format == FormatWord {
		return ParseWord(path)
	}
	return ParseOpenAPI(path)
}
