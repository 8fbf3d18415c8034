// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package bundle

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readZip(t *testing.T, data []byte) ([]string, map[string]string) {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	var names []string
	contents := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		names = append(names, f.Name)
		contents[f.Name] = string(b)
	}
	return names, contents
}

func TestZip_SortedFlatEntries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Zip(&buf, []File{
		{Name: "b/UserService.java", Content: []byte("class UserService {}")},
		{Name: "Controller.java", Content: []byte("class Controller {}")},
	}))

	names, got := readZip(t, buf.Bytes())
	assert.Equal(t, []string{"Controller.java", "UserService.java"}, names)
	assert.Equal(t, "class Controller {}", got["Controller.java"])
	assert.Equal(t, "class UserService {}", got["UserService.java"])
}

func TestZip_Deterministic(t *testing.T) {
	files := []File{{Name: "A.java", Content: []byte("a")}, {Name: "B.java", Content: []byte("b")}}
	var first, second bytes.Buffer
	require.NoError(t, Zip(&first, files))
	require.NoError(t, Zip(&second, files))
	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestZip_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Zip(&buf, nil))
	names, _ := readZip(t, buf.Bytes())
	assert.Empty(t, names)
}

func TestZipDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "A.java"), []byte("a"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("n"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "B.java"), []byte("b"), 0o600))

	var buf bytes.Buffer
	require.NoError(t, ZipDir(&buf, nil, dir, ".java"))
	names, _ := readZip(t, buf.Bytes())
	assert.Equal(t, []string{"A.java"}, names)

	_, err := ReadDir(nil, filepath.Join(dir, "missing"), "")
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generated.zip")
	require.NoError(t, WriteFile(nil, path, []File{{Name: "A.java", Content: []byte("a")}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	_, got := readZip(t, data)
	assert.Equal(t, "a", got["A.java"])

	assert.ErrorIs(t, WriteFile(nil, path, nil), ErrEmpty)
}
