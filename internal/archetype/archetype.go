// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

// Package archetype collects reference source files into a single snippet
// set that is embedded in the generation prompt as a style guide.
package archetype

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/teralad/hashira/internal/scratch"
	"github.com/teralad/hashira/internal/testable"
)

// DefaultExt is the extension of files picked up from a directory.
const DefaultExt = ".java"

// ErrNotFound is returned when a local archetype source does not exist.
var ErrNotFound = errors.New("archetype source not found")

// File is one reference file, e.g. from an upload.
type File struct {
	Name    string
	Content string
}

// Marker returns the separator written before each file's content.
func Marker(name string) string {
	return "\n// FILE: " + name + "\n"
}

// FromFiles concatenates files in the given order, each preceded by its
// marker. No files yields "".
func FromFiles(files []File) string {
	var b strings.Builder
	for _, f := range files {
		b.WriteString(Marker(f.Name))
		b.WriteString(f.Content)
	}
	return b.String()
}

// Loader reads archetypes from local paths and git remotes.
type Loader struct {
	FS  testable.FileSystem
	Git testable.GitCloner

	// Ext selects which files in a directory are used. Empty means DefaultExt.
	Ext string
}

// NewLoader returns a Loader on the real file system and git.
func NewLoader(ext string) *Loader {
	return &Loader{FS: testable.DefaultFS, Git: testable.DefaultGitCloner, Ext: ext}
}

func (l *Loader) fs() testable.FileSystem {
	if l.FS == nil {
		return testable.DefaultFS
	}
	return l.FS
}

func (l *Loader) ext() string {
	if l.Ext == "" {
		return DefaultExt
	}
	return l.Ext
}

// LoadDir walks root in lexical order and concatenates every file whose
// extension matches, case-insensitively. Hidden directories are skipped.
func (l *Loader) LoadDir(root string) (string, error) {
	fsys := l.fs()
	info, err := fsys.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, root)
		}
		return "", fmt.Errorf("archetype: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("archetype: %s is not a directory", root)
	}

	var files []File
	err = fsys.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), l.ext()) {
			return nil
		}
		data, err := fsys.ReadFile(path)
		if err != nil {
			return err
		}
		files = append(files, File{Name: d.Name(), Content: string(data)})
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("archetype: walk %s: %w", root, err)
	}

	slog.Debug("loaded archetype", "root", root, "files", len(files))
	return FromFiles(files), nil
}

// Load resolves source as a git URL, a directory, or a single file. An empty
// source yields "". Git remotes are shallow-cloned into a scratch directory
// that is removed before Load returns. A "#ref" suffix on a git URL selects
// a branch.
func (l *Loader) Load(ctx context.Context, source string) (string, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return "", nil
	}
	if IsGitURL(source) {
		return l.loadGit(ctx, source)
	}

	info, err := l.fs().Stat(source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, source)
		}
		return "", fmt.Errorf("archetype: %w", err)
	}
	if info.IsDir() {
		return l.LoadDir(source)
	}

	data, err := l.fs().ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("archetype: %w", err)
	}
	return FromFiles([]File{{Name: filepath.Base(source), Content: string(data)}}), nil
}

func (l *Loader) loadGit(ctx context.Context, source string) (string, error) {
	url, ref, _ := strings.Cut(source, "#")

	dir, err := scratch.New(l.fs(), "hashira-archetype")
	if err != nil {
		return "", err
	}
	defer dir.Close() //nolint:errcheck // logged by Close

	git := l.Git
	if git == nil {
		git = testable.DefaultGitCloner
	}
	slog.InfoContext(ctx, "cloning archetype repository", "url", url, "ref", ref)
	if err := git.ShallowClone(ctx, dir.Path, url, ref); err != nil {
		return "", fmt.Errorf("archetype: clone %s: %w", url, err)
	}
	return l.LoadDir(dir.Path)
}

// IsGitURL reports whether source names a git remote rather than a path.
func IsGitURL(source string) bool {
	s := strings.ToLower(source)
	switch {
	case strings.HasPrefix(s, "https://"), strings.HasPrefix(s, "http://"),
		strings.HasPrefix(s, "ssh://"), strings.HasPrefix(s, "git://"),
		strings.HasPrefix(s, "git@"):
		return true
	}
	base, _, _ := strings.Cut(s, "#")
	return strings.HasSuffix(base, ".git") && strings.Contains(base, ":")
}

// Load resolves source with a default Loader.
func Load(ctx context.Context, source, ext string) (string, error) {
	return NewLoader(ext).Load(ctx, source)
}
