// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teralad/hashira/internal/apidoc"
	"github.com/teralad/hashira/internal/archetype"
	"github.com/teralad/hashira/internal/generator"
	"github.com/teralad/hashira/internal/llm"
	"github.com/teralad/hashira/internal/redact"
	"github.com/teralad/hashira/internal/splitter"
	"github.com/teralad/hashira/internal/testable"
)

const petstore = `openapi: 3.0.0
info:
  title: Petstore
  version: 1.0.0
paths:
  /pets:
    get:
      summary: List pets
      responses:
        "200":
          description: ok
    post:
      summary: Create pet
      responses:
        "201":
          description: created
`

const twoClasses = "public class PetController {\n    void list() {}\n}\n\npublic class Pet {\n    String name;\n}\n"

// stubGenerator returns a fixed result and records requests.
type stubGenerator struct {
	result   generator.Result
	requests []generator.Request
}

func (s *stubGenerator) Generate(_ context.Context, req generator.Request) generator.Result {
	s.requests = append(s.requests, req)
	return s.result
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	spec := writeFile(t, dir, "petstore.yaml", petstore)
	out := filepath.Join(dir, "out")
	gen := &stubGenerator{result: generator.Result{Prompt: "p", Text: twoClasses, Model: "huggingface:distilgpt2"}}

	res, err := New(gen).Run(context.Background(), Input{SpecPath: spec, OutputDir: out})
	require.NoError(t, err)

	assert.Equal(t, apidoc.FormatOpenAPIYAML, res.Format)
	assert.Equal(t, "OpenAPI Spec:\n- GET /pets: List pets\n- POST /pets: Create pet\n", res.Description)
	assert.Equal(t, twoClasses, res.Generated)
	assert.Equal(t, "huggingface:distilgpt2", res.Model)
	assert.False(t, res.Placeholder)
	assert.Len(t, res.Split.Units, 2)
	assert.Equal(t, []string{filepath.Join(out, "PetController.java"), filepath.Join(out, "Pet.java")}, res.Files)

	require.Len(t, gen.requests, 1)
	assert.Equal(t, res.Description, gen.requests[0].Description)
	assert.Empty(t, gen.requests[0].Archetype)

	data, err := os.ReadFile(filepath.Join(out, "Pet.java"))
	require.NoError(t, err)
	assert.Equal(t, "public class Pet {\n    String name;\n}", string(data))
}

func TestRun_WithRealClientAndMockProvider(t *testing.T) {
	dir := t.TempDir()
	spec := writeFile(t, dir, "petstore.yaml", petstore)
	client := generator.NewClient(generator.WithProvider(llm.NewMockProvider(llm.MockResponse{Content: twoClasses})))

	res, err := New(client).Run(context.Background(), Input{SpecPath: spec, OutputDir: filepath.Join(dir, "out")})
	require.NoError(t, err)
	assert.False(t, res.Placeholder)
	assert.Contains(t, res.Prompt, res.Description)
	assert.Len(t, res.Files, 2)
}

func TestRun_ArchetypeSources(t *testing.T) {
	dir := t.TempDir()
	spec := writeFile(t, dir, "api.json", `{"paths":{"/a":{"get":{"summary":"A"}}}}`)
	writeFile(t, dir, "arch/Base.java", "class Base {}")

	t.Run("from source", func(t *testing.T) {
		gen := &stubGenerator{result: generator.Result{Text: "x"}}
		_, err := New(gen).Run(context.Background(), Input{SpecPath: spec, ArchetypeSource: filepath.Join(dir, "arch")})
		require.NoError(t, err)
		assert.Equal(t, "\n// FILE: Base.java\nclass Base {}", gen.requests[0].Archetype)
	})

	t.Run("pre-supplied wins", func(t *testing.T) {
		gen := &stubGenerator{result: generator.Result{Text: "x"}}
		_, err := New(gen).Run(context.Background(), Input{
			SpecPath:        spec,
			ArchetypeSource: filepath.Join(dir, "missing"),
			Archetype:       archetype.FromFiles([]archetype.File{{Name: "U.java", Content: "u"}}),
		})
		require.NoError(t, err)
		assert.Equal(t, "\n// FILE: U.java\nu", gen.requests[0].Archetype)
	})

	t.Run("missing source", func(t *testing.T) {
		gen := &stubGenerator{}
		_, err := New(gen).Run(context.Background(), Input{SpecPath: spec, ArchetypeSource: filepath.Join(dir, "missing")})
		assert.ErrorIs(t, err, archetype.ErrNotFound)
		assert.Empty(t, gen.requests)
	})
}

func TestRun_PlaceholderOnModelFailure(t *testing.T) {
	dir := t.TempDir()
	spec := writeFile(t, dir, "petstore.yml", petstore)
	out := filepath.Join(dir, "out")
	gen := &stubGenerator{result: generator.Result{Err: &generator.Error{
		Kind:   generator.ModelUnavailable,
		Reason: "no model could be loaded: huggingface:distilgpt2: connection refused",
	}}}

	res, err := New(gen).Run(context.Background(), Input{SpecPath: spec, OutputDir: out})
	require.NoError(t, err)

	assert.True(t, res.Placeholder)
	assert.True(t, generator.IsKind(res.GenErr, generator.ModelUnavailable))
	assert.Contains(t, res.Generated, "connection refused")
	assert.Contains(t, res.Generated, res.Description)
	assert.Equal(t, []string{filepath.Join(out, "GeneratedAPI.java")}, res.Files)
}

func TestGenerate_PlaceholderRedactsCredentials(t *testing.T) {
	t.Setenv("HF_TOKEN", "hf_leakytoken")
	redact.ResetForTest()
	t.Cleanup(redact.ResetForTest)

	gen := &stubGenerator{result: generator.Result{Err: &generator.Error{
		Kind: generator.InvocationFailed, Reason: "401: bad token hf_leakytoken",
	}}}

	res := New(gen).Generate(context.Background(), "desc", "")
	assert.True(t, res.Placeholder)
	assert.NotContains(t, res.Generated, "hf_leakytoken")
	assert.Contains(t, res.Generated, "401: bad token")
}

func TestRun_InputErrors(t *testing.T) {
	dir := t.TempDir()
	gen := &stubGenerator{}

	_, err := New(gen).Run(context.Background(), Input{SpecPath: writeFile(t, dir, "notes.txt", "x")})
	assert.True(t, apidoc.IsUnsupported(err))

	_, err = New(gen).Run(context.Background(), Input{SpecPath: writeFile(t, dir, "bad.yaml", "paths: [unclosed")})
	assert.True(t, apidoc.IsParseError(err))

	_, err = New(gen).Run(context.Background(), Input{SpecPath: filepath.Join(dir, "missing.yaml")})
	assert.True(t, apidoc.IsParseError(err))

	assert.Empty(t, gen.requests, "the model is never called for bad input")
}

func TestRun_StrictValidation(t *testing.T) {
	dir := t.TempDir()
	gen := &stubGenerator{result: generator.Result{Text: "x"}}
	// Parses fine, but is not a valid OpenAPI document.
	spec := writeFile(t, dir, "loose.yaml", "paths:\n  /a:\n    get:\n      summary: A\n")

	_, err := New(gen).Run(context.Background(), Input{SpecPath: spec})
	require.NoError(t, err)

	_, err = New(gen).Run(context.Background(), Input{SpecPath: spec, Strict: true})
	assert.True(t, apidoc.IsParseError(err))
}

func TestRun_WordDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "api.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		`<w:p><w:r><w:t>Users API</w:t></w:r></w:p><w:p/><w:p><w:r><w:t>GET /users lists users</w:t></w:r></w:p>` +
		`</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	gen := &stubGenerator{result: generator.Result{Text: "x"}}
	res, err := New(gen).Run(context.Background(), Input{SpecPath: path, Strict: true})
	require.NoError(t, err)
	assert.Equal(t, apidoc.FormatWord, res.Format)
	assert.Equal(t, "Users API\nGET /users lists users", res.Description)
}

func TestRun_WriteFailureKeepsGeneratedText(t *testing.T) {
	dir := t.TempDir()
	spec := writeFile(t, dir, "petstore.yaml", petstore)
	denied := errors.New("read-only file system")
	fsys := &testable.MockFileSystem{
		MkdirAllFn: func(string, os.FileMode) error { return denied },
	}
	gen := &stubGenerator{result: generator.Result{Text: twoClasses}}

	res, err := New(gen, WithFileSystem(fsys)).Run(context.Background(), Input{SpecPath: spec, OutputDir: "/ro/out"})
	require.Error(t, err)
	assert.ErrorIs(t, err, splitter.ErrWrite)
	assert.ErrorIs(t, err, denied)

	require.NotNil(t, res)
	assert.Equal(t, twoClasses, res.Generated)
	assert.NotEmpty(t, res.Description)
	assert.ErrorIs(t, res.WriteErr, splitter.ErrWrite)
	assert.Empty(t, res.Files)
}

func TestRun_NoOutputDirSkipsWrite(t *testing.T) {
	dir := t.TempDir()
	spec := writeFile(t, dir, "petstore.yaml", petstore)
	gen := &stubGenerator{result: generator.Result{Text: twoClasses}}

	res, err := New(gen).Run(context.Background(), Input{SpecPath: spec})
	require.NoError(t, err)
	assert.Empty(t, res.Files)
	assert.Empty(t, res.Split.Units)
	assert.True(t, strings.HasPrefix(res.Generated, "public class PetController"))
}

func TestWrite_CustomExtension(t *testing.T) {
	dir := t.TempDir()
	p := New(&stubGenerator{}, WithExtension(".txt"))
	res := &Result{Generated: "public class A {}"}

	require.NoError(t, p.Write(res, dir))
	assert.Equal(t, []string{filepath.Join(dir, "A.txt")}, res.Files)
}
