// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

// Package testable holds the seams hashira uses to reach the disk and git
// remotes, so tests can swap them out.
package testable

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// FileSystem is every file operation hashira performs: reading specs and
// archetypes, writing generated sources and archives, and managing scratch
// directories.
type FileSystem interface {
	// Inputs.
	Stat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WalkDir(root string, fn fs.WalkDirFunc) error

	// Outputs.
	MkdirAll(path string, perm os.FileMode) error
	WriteFile(name string, data []byte, perm os.FileMode) error
	Create(name string) (io.WriteCloser, error)

	// Scratch space.
	MkdirTemp(dir, pattern string) (string, error)
	RemoveAll(path string) error
}

// OsFileSystem is the FileSystem backed by the os package.
type OsFileSystem struct{}

func (OsFileSystem) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }

func (OsFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) //nolint:gosec // paths come from the user
}

func (OsFileSystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

func (OsFileSystem) MkdirAll(path string, perm os.FileMode) error { return os.MkdirAll(path, perm) }

func (OsFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm) //nolint:gosec // paths come from the user
}

// Create truncates or creates name for writing.
func (OsFileSystem) Create(name string) (io.WriteCloser, error) {
	return os.Create(name) //nolint:gosec // paths come from the user
}

func (OsFileSystem) MkdirTemp(dir, pattern string) (string, error) {
	return os.MkdirTemp(dir, pattern)
}

func (OsFileSystem) RemoveAll(path string) error { return os.RemoveAll(path) }

// DefaultFS is used wherever no FileSystem is injected.
var DefaultFS FileSystem = OsFileSystem{}
