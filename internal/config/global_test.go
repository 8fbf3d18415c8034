// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalConfigDir_Default(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	home, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(home, ".config", "hashira"), GlobalConfigDir())
}

func TestGlobalConfigPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/hashira", GlobalConfigDir())
	assert.Equal(t, "/custom/config/hashira/config.yaml", GlobalConfigPath())
}

func TestLoadGlobal_Missing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := LoadGlobal()
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadGlobal_Valid(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	writeFile(t, filepath.Join(dir, "hashira", "config.yaml"), "decoding: sampling\nmax_new_tokens: 256\n")

	cfg, err := LoadGlobal()
	require.NoError(t, err)
	assert.Equal(t, "sampling", cfg.Decoding)
	assert.Equal(t, 256, cfg.MaxNewTokens)
}

func TestLoadGlobal_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	writeFile(t, filepath.Join(dir, "hashira", "config.yaml"), "{{invalid yaml")

	_, err := LoadGlobal()
	assert.Error(t, err)
}
