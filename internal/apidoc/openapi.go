// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package apidoc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// openAPIHeader is the first line of every OpenAPI description.
const openAPIHeader = "OpenAPI Spec:\n"

// httpMethods are the path item keys that describe operations. Other keys
// (parameters, servers, summary, $ref, x-*) are not endpoints.
var httpMethods = map[string]bool{
	"get":     true,
	"put":     true,
	"post":    true,
	"delete":  true,
	"options": true,
	"head":    true,
	"patch":   true,
	"trace":   true,
}

// ParseOpenAPI reads an OpenAPI document and returns one line per
// (method, path) pair in document order. A ".json" extension selects JSON
// decoding; anything else is treated as YAML.
func ParseOpenAPI(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided spec path
	if err != nil {
		return "", parseErr(path, err, "read spec: %v", err)
	}

	format := FormatOpenAPIYAML
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = FormatOpenAPIJSON
	}

	desc, err := ParseOpenAPIBytes(data, format)
	if err != nil {
		var e *Error
		if errors.As(err, &e) && e.Path == "" {
			e.Path = path
		}
		return "", err
	}
	return desc, nil
}

// ParseOpenAPIBytes is ParseOpenAPI for in-memory documents.
func ParseOpenAPIBytes(data []byte, format Format) (string, error) {
	var root *yaml.Node
	if format == FormatOpenAPIJSON {
		n, err := decodeJSONNode(data)
		if err != nil {
			return "", parseErr("", err, "invalid JSON: %v", err)
		}
		root = n
	} else {
		var n yaml.Node
		if err := yaml.Unmarshal(data, &n); err != nil {
			return "", parseErr("", err, "invalid YAML: %v", err)
		}
		root = &n
	}

	doc := resolve(root)
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return "", parseErr("", nil, "document is empty")
		}
		doc = resolve(doc.Content[0])
	}
	if doc.Kind != yaml.MappingNode {
		return "", parseErr("", nil, "document root is not a mapping")
	}

	var b strings.Builder
	b.WriteString(openAPIHeader)

	paths := lookup(doc, "paths")
	if paths == nil || isNull(paths) {
		return b.String(), nil
	}
	if paths.Kind != yaml.MappingNode {
		return "", parseErr("", nil, "paths is not a mapping (line %d)", paths.Line)
	}

	for i := 0; i+1 < len(paths.Content); i += 2 {
		route := paths.Content[i].Value
		item := resolve(paths.Content[i+1])
		if item.Kind != yaml.MappingNode {
			continue
		}
		for j := 0; j+1 < len(item.Content); j += 2 {
			method := item.Content[j].Value
			if !httpMethods[strings.ToLower(method)] {
				continue
			}
			fmt.Fprintf(&b, "- %s %s: %s\n", strings.ToUpper(method), route, summaryOf(resolve(item.Content[j+1])))
		}
	}
	return b.String(), nil
}

// summaryOf returns the operation's summary scalar, or "" when absent.
func summaryOf(op *yaml.Node) string {
	if op.Kind != yaml.MappingNode {
		return ""
	}
	s := lookup(op, "summary")
	if s == nil || s.Kind != yaml.ScalarNode || isNull(s) {
		return ""
	}
	return s.Value
}

// lookup returns the value node stored under key in a mapping node.
func lookup(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return resolve(m.Content[i+1])
		}
	}
	return nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}
