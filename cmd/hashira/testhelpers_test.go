// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/teralad/hashira/internal/llm"
	"github.com/teralad/hashira/internal/redact"
	"github.com/teralad/hashira/internal/testable"
)

const petstoreYAML = `openapi: 3.0.0
info:
  title: Pets
  version: "1"
paths:
  /pets:
    get:
      summary: List pets
    post:
      summary: Create pet
`

const twoClasses = `public class Pet {
    String name;
}

public class PetService {
    void list() {}
}
`

// resetFlags resets every package-level flag to its default so tests do
// not leak state into each other through the shared rootCmd.
func resetFlags() {
	for _, fs := range []*pflag.FlagSet{
		rootCmd.PersistentFlags(),
		generateCmd.Flags(),
		parseCmd.Flags(),
		serveCmd.Flags(),
		initCmd.Flags(),
	} {
		fs.VisitAll(func(f *pflag.Flag) {
			f.Changed = false
			_ = f.Value.Set(f.DefValue)
		})
	}
	// StringSlice.Set("[]") appends rather than clears.
	genModels = nil
}

// newTestCmd redirects rootCmd's output to buffers.
func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd, stdout, stderr
}

// isolate runs the test in an empty working directory with no global
// config, so only the files the test writes are picked up.
func isolate(t *testing.T) string {
	t.Helper()
	resetFlags()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Chdir(dir)
	redact.ResetForTest()
	return dir
}

// providerRecorder replaces newProvider with one that hands out mock and
// records which provider names and configs were requested.
type providerRecorder struct {
	mu      sync.Mutex
	names   []string
	configs []llm.Config
}

func withMockProvider(t *testing.T, mock *llm.MockProvider) *providerRecorder {
	t.Helper()
	rec := &providerRecorder{}
	orig := newProvider
	newProvider = func(name string, cfg llm.Config) (llm.Provider, error) {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		rec.names = append(rec.names, name)
		rec.configs = append(rec.configs, cfg)
		return mock, nil
	}
	t.Cleanup(func() { newProvider = orig })
	return rec
}

// withMockFS swaps cmdFS with the given mock and restores it on test cleanup.
func withMockFS(t *testing.T, mock *testable.MockFileSystem) {
	t.Helper()
	orig := cmdFS
	cmdFS = mock
	t.Cleanup(func() { cmdFS = orig })
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
