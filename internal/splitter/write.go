// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package splitter

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/teralad/hashira/internal/testable"
)

// ErrWrite is wrapped by every error Write returns.
var ErrWrite = errors.New("write output")

// DefaultExt is the file extension used when Write is given none.
const DefaultExt = ".java"

// Write creates dir if needed and writes each unit to <Name><ext>, replacing
// any existing file. A later unit with the same name replaces the earlier
// one. It returns the paths written, in first-write order.
func Write(fsys testable.FileSystem, dir string, units []Unit, ext string) ([]string, error) {
	if fsys == nil {
		fsys = testable.DefaultFS
	}
	if ext == "" {
		ext = DefaultExt
	}
	if err := fsys.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("%w: create %s: %w", ErrWrite, dir, err)
	}

	var paths []string
	seen := make(map[string]bool, len(units))
	for _, u := range units {
		path := filepath.Join(dir, u.Name+ext)
		if seen[path] {
			slog.Warn("duplicate class name, overwriting earlier file", "class", u.Name, "path", path)
		}
		if err := fsys.WriteFile(path, []byte(u.Source), 0o644); err != nil { //nolint:gosec // generated sources are meant to be readable
			return paths, fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
		}
		if !seen[path] {
			seen[path] = true
			paths = append(paths, path)
		}
	}
	slog.Debug("wrote class files", "dir", dir, "files", len(paths))
	return paths, nil
}
