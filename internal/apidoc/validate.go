// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package apidoc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

// Validate loads an OpenAPI 3.x or Swagger 2.0 document with kin-openapi and
// runs its structural validation. It is stricter than ParseOpenAPI, which
// only needs a "paths" mapping, and is used when the caller asks for strict
// input checking. Swagger 2.0 documents are converted to 3.x first.
func Validate(ctx context.Context, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided spec path
	if err != nil {
		return parseErr(path, err, "read spec: %v", err)
	}
	if err := ValidateBytes(ctx, data); err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.Path = path
		}
		return err
	}
	return nil
}

// ValidateBytes is Validate for in-memory documents.
func ValidateBytes(ctx context.Context, data []byte) error {
	version, err := detectSpecVersion(data)
	if err != nil {
		return parseErr("", err, "%v", err)
	}

	var doc *openapi3.T
	switch version {
	case 3:
		loader := openapi3.NewLoader()
		doc, err = loader.LoadFromData(data)
		if err != nil {
			return parseErr("", err, "load OpenAPI 3 document: %v", err)
		}
	case 2:
		doc, err = convertV2ToV3(data)
		if err != nil {
			return parseErr("", err, "convert Swagger 2.0 document: %v", err)
		}
	}

	if err := doc.Validate(ctx); err != nil {
		return parseErr("", err, "invalid OpenAPI document: %v", err)
	}
	return nil
}

// detectSpecVersion returns 3 for OpenAPI v3, 2 for Swagger v2, else error.
func detectSpecVersion(data []byte) (int, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return 0, fmt.Errorf("parse spec: %w", err)
	}
	if s, _ := root["openapi"].(string); strings.HasPrefix(strings.TrimSpace(s), "3.") {
		return 3, nil
	}
	if s, _ := root["swagger"].(string); strings.HasPrefix(strings.TrimSpace(s), "2.") {
		return 2, nil
	}
	return 0, fmt.Errorf("missing or unknown version (expected 'openapi: 3.x' or 'swagger: 2.0')")
}

// convertV2ToV3 round-trips the document through JSON so the openapi2 json
// tags apply, then converts it.
func convertV2ToV3(data []byte) (*openapi3.T, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	js, err := json.Marshal(stringKeys(raw))
	if err != nil {
		return nil, err
	}
	var v2 openapi2.T
	if err := json.Unmarshal(js, &v2); err != nil {
		return nil, err
	}
	return openapi2conv.ToV3(&v2)
}

// stringKeys rewrites map[any]any values produced by yaml.v3 for mappings
// with non-string keys (unquoted status codes) so encoding/json accepts them.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = stringKeys(val)
		}
		return m
	case map[string]any:
		for k, val := range t {
			t[k] = stringKeys(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = stringKeys(val)
		}
		return t
	}
	return v
}
