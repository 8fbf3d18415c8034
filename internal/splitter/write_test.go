// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package splitter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teralad/hashira/internal/testable"
)

func TestWrite_OneFilePerUnit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "java")
	res := Split(classA + "\n" + classB)

	paths, err := Write(nil, dir, res.Units, "")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "A.java"), filepath.Join(dir, "B.java")}, paths)

	a, err := os.ReadFile(filepath.Join(dir, "A.java"))
	require.NoError(t, err)
	assert.Equal(t, classA, string(a))
	b, err := os.ReadFile(filepath.Join(dir, "B.java"))
	require.NoError(t, err)
	assert.Equal(t, classB, string(b))
}

func TestWrite_DuplicateNameOverwrites(t *testing.T) {
	dir := t.TempDir()
	units := []Unit{
		{Name: "A", Source: "public class A { int first; }"},
		{Name: "A", Source: "public class A { int second; }"},
	}

	paths, err := Write(testable.DefaultFS, dir, units, ".java")
	require.NoError(t, err)
	assert.Len(t, paths, 1)

	data, err := os.ReadFile(filepath.Join(dir, "A.java"))
	require.NoError(t, err)
	assert.Equal(t, "public class A { int second; }", string(data))
}

func TestWrite_OverwritesExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "A.java"), []byte("old"), 0o600))

	_, err := Write(nil, dir, []Unit{{Name: "A", Source: "new"}}, ".java")
	require.NoError(t, err)
	data, _ := os.ReadFile(filepath.Join(dir, "A.java"))
	assert.Equal(t, "new", string(data))
}

func TestWrite_CustomExtension(t *testing.T) {
	dir := t.TempDir()
	paths, err := Write(nil, dir, []Unit{{Name: "A", Source: "x"}}, ".txt")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "A.txt")}, paths)
}

func TestWrite_Errors(t *testing.T) {
	denied := errors.New("permission denied")

	t.Run("mkdir", func(t *testing.T) {
		fsys := &testable.MockFileSystem{
			MkdirAllFn: func(string, os.FileMode) error { return denied },
		}
		_, err := Write(fsys, "/readonly/out", []Unit{{Name: "A", Source: "x"}}, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrWrite)
		assert.ErrorIs(t, err, denied)
		assert.Contains(t, err.Error(), "/readonly/out")
	})

	t.Run("file", func(t *testing.T) {
		fsys := &testable.MockFileSystem{
			MkdirAllFn: func(string, os.FileMode) error { return nil },
			WriteFileFn: func(name string, _ []byte, _ os.FileMode) error {
				if filepath.Base(name) == "B.java" {
					return denied
				}
				return nil
			},
		}
		paths, err := Write(fsys, "out", []Unit{{Name: "A", Source: "a"}, {Name: "B", Source: "b"}}, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrWrite)
		assert.Equal(t, []string{filepath.Join("out", "A.java")}, paths)
	})
}
