// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveFile returns the absolute, symlink-resolved form of path. It fails
// if the path does not exist or is a directory.
func ResolveFile(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("file path is required")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("cannot resolve path %q: %w", path, err)
	}

	absPath, err = filepath.EvalSymlinks(absPath)
	if err != nil {
		return "", fmt.Errorf("file not found: %s", path)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("file not found: %s", path)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}
	return absPath, nil
}

// dirExists reports whether path names an existing directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
