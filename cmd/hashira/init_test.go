// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_CreatesFiles(t *testing.T) {
	dir := isolate(t)

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"init", dir})
	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(dir, ".hashira.yaml"))
	assert.FileExists(t, filepath.Join(dir, ".mcp.json"))
	assert.FileExists(t, filepath.Join(dir, ".gitignore"))
	assert.Contains(t, stdout.String(), "hashira init complete")
	assert.Contains(t, stdout.String(), "Next steps:")

	// The generated config is accepted by generate's config resolution.
	_, err := resolveConfig(nil)
	require.NoError(t, err)
}

func TestInit_SecondRunSkips(t *testing.T) {
	dir := isolate(t)
	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"init", dir})
	require.NoError(t, cmd.Execute())

	resetFlags()
	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"init", dir})
	require.NoError(t, cmd.Execute())
	assert.NotContains(t, stdout.String(), "Next steps:")
}

func TestInit_BadPath(t *testing.T) {
	dir := isolate(t)
	file := writeTestFile(t, dir, "file.txt", "x")

	for _, path := range []string{filepath.Join(dir, "missing"), file} {
		resetFlags()
		cmd, _, _ := newTestCmd()
		cmd.SetArgs([]string{"init", path})
		requireExitCode(t, cmd.Execute(), ExitInvalidArgs)
	}
}
