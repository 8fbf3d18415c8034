// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package apidoc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_OpenAPI3(t *testing.T) {
	spec := `openapi: 3.0.0
info:
  title: Petstore
  version: "1.0"
paths:
  /pets:
    get:
      summary: List pets
      responses:
        "200":
          description: ok
`
	require.NoError(t, Validate(context.Background(), writeSpec(t, "ok.yaml", spec)))
}

func TestValidate_Swagger2(t *testing.T) {
	spec := `swagger: "2.0"
info:
  title: Legacy
  version: "1.0"
paths:
  /things:
    get:
      summary: List things
      responses:
        200:
          description: ok
`
	require.NoError(t, Validate(context.Background(), writeSpec(t, "legacy.yaml", spec)))
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{"no version", "paths: {}\n"},
		{"missing info", "openapi: 3.0.0\npaths: {}\n"},
		{"malformed", "openapi: [3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSpec(t, "bad.yaml", tt.spec)
			err := Validate(context.Background(), path)
			require.Error(t, err)
			assert.True(t, IsParseError(err))
			assert.Contains(t, err.Error(), path)
		})
	}
}
