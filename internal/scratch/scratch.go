// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

// Package scratch manages per-invocation temporary directories.
package scratch

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/teralad/hashira/internal/testable"
)

// Dir is a temporary directory owned by one invocation. Close removes it.
type Dir struct {
	// ID is a random identifier, also usable as a lookup key for results
	// produced in this directory.
	ID   string
	Path string

	fsys testable.FileSystem
	once sync.Once
	err  error
}

// New creates a directory under the system temp dir named after prefix
// and a fresh UUID.
func New(fsys testable.FileSystem, prefix string) (*Dir, error) {
	if fsys == nil {
		fsys = testable.DefaultFS
	}
	id := uuid.NewString()
	path, err := fsys.MkdirTemp("", fmt.Sprintf("%s-%s-", prefix, id))
	if err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	return &Dir{ID: id, Path: path, fsys: fsys}, nil
}

// Close removes the directory and everything in it. It is safe to call more
// than once; later calls return the first result.
func (d *Dir) Close() error {
	d.once.Do(func() {
		d.err = d.fsys.RemoveAll(d.Path)
		if d.err != nil {
			slog.Warn("failed to remove scratch dir", "path", d.Path, "error", d.err)
		}
	})
	return d.err
}
