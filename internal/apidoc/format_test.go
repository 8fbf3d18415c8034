// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package apidoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"api.yaml", FormatOpenAPIYAML},
		{"api.yml", FormatOpenAPIYAML},
		{"API.YML", FormatOpenAPIYAML},
		{"dir/api.json", FormatOpenAPIJSON},
		{"spec.docx", FormatWord},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat_Unsupported(t *testing.T) {
	for _, path := range []string{"api.txt", "spec.doc", "noext", "archive.yaml.gz"} {
		t.Run(path, func(t *testing.T) {
			_, err := DetectFormat(path)
			require.Error(t, err)
			assert.True(t, IsUnsupported(err))
			assert.False(t, IsParseError(err))
		})
	}
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "openapi-yaml", FormatOpenAPIYAML.String())
	assert.Equal(t, "word", FormatWord.String())
	assert.Equal(t, "unknown", FormatUnknown.String())
	assert.True(t, FormatOpenAPIJSON.IsOpenAPI())
	assert.False(t, FormatWord.IsOpenAPI())
}

func TestParse_Dispatch(t *testing.T) {
	path := writeSpec(t, "api.yml", "paths:\n  /x:\n    get: {summary: X}\n")
	desc, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, "OpenAPI Spec:\n- GET /x: X\n", desc)

	_, err = Parse(writeSpec(t, "api.txt", "hello"))
	assert.True(t, IsUnsupported(err))
}
