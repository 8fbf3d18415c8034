// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

// Package bundle packs generated source files into a zip archive.
package bundle

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"

	"github.com/teralad/hashira/internal/testable"
)

// File is one archive entry. Name is flat, without directories.
type File struct {
	Name    string
	Content []byte
}

// fixedTime keeps archives byte-identical across runs.
var fixedTime = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// Zip writes files to w as a deflate-compressed zip, sorted by name.
func Zip(w io.Writer, files []File) error {
	sorted := append([]File(nil), files...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	zw := zip.NewWriter(w)
	for _, f := range sorted {
		name := filepath.Base(f.Name)
		if name == "." || name == string(filepath.Separator) {
			return fmt.Errorf("bundle: invalid file name %q", f.Name)
		}
		hdr := &zip.FileHeader{Name: name, Method: zip.Deflate, Modified: fixedTime}
		hdr.SetMode(0o644)
		fw, err := zw.CreateHeader(hdr)
		if err != nil {
			return fmt.Errorf("bundle: %s: %w", name, err)
		}
		if _, err := fw.Write(f.Content); err != nil {
			return fmt.Errorf("bundle: %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("bundle: %w", err)
	}
	return nil
}

// ReadDir collects the files in dir (not recursive) whose extension matches
// ext. An empty ext matches every file.
func ReadDir(fsys testable.FileSystem, dir, ext string) ([]File, error) {
	if fsys == nil {
		fsys = testable.DefaultFS
	}
	var files []File
	err := fsys.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if ext != "" && !strings.EqualFold(filepath.Ext(path), ext) {
			return nil
		}
		data, err := fsys.ReadFile(path)
		if err != nil {
			return err
		}
		files = append(files, File{Name: d.Name(), Content: data})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("bundle: read %s: %w", dir, err)
	}
	return files, nil
}

// ZipDir is ReadDir followed by Zip.
func ZipDir(w io.Writer, fsys testable.FileSystem, dir, ext string) error {
	files, err := ReadDir(fsys, dir, ext)
	if err != nil {
		return err
	}
	return Zip(w, files)
}

// ErrEmpty is returned by WriteFile when there is nothing to archive.
var ErrEmpty = errors.New("bundle: no files to archive")

// WriteFile writes the zip of files to path.
func WriteFile(fsys testable.FileSystem, path string, files []File) (err error) {
	if len(files) == 0 {
		return ErrEmpty
	}
	if fsys == nil {
		fsys = testable.DefaultFS
	}
	f, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("bundle: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("bundle: %w", cerr)
		}
	}()
	return Zip(f, files)
}
