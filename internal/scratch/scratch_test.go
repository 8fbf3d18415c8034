// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package scratch

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teralad/hashira/internal/testable"
)

func TestNew_CreatesAndRemoves(t *testing.T) {
	d, err := New(nil, "hashira-test")
	require.NoError(t, err)

	_, err = uuid.Parse(d.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(d.Path), "hashira-test-"+d.ID))

	require.NoError(t, os.WriteFile(filepath.Join(d.Path, "A.java"), []byte("x"), 0o600))

	require.NoError(t, d.Close())
	_, err = os.Stat(d.Path)
	assert.True(t, os.IsNotExist(err))

	// Idempotent.
	assert.NoError(t, d.Close())
}

func TestNew_UniqueIDs(t *testing.T) {
	a, err := New(nil, "x")
	require.NoError(t, err)
	defer a.Close() //nolint:errcheck // test cleanup
	b, err := New(nil, "x")
	require.NoError(t, err)
	defer b.Close() //nolint:errcheck // test cleanup

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.Path, b.Path)
}

func TestNew_MkdirError(t *testing.T) {
	fsys := &testable.MockFileSystem{
		MkdirTempFn: func(string, string) (string, error) { return "", errors.New("no space") },
	}
	_, err := New(fsys, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no space")
}

func TestClose_ReportsRemoveErrorOnce(t *testing.T) {
	calls := 0
	fsys := &testable.MockFileSystem{
		MkdirTempFn: func(string, string) (string, error) { return "/tmp/fake", nil },
		RemoveAllFn: func(string) error {
			calls++
			return errors.New("busy")
		},
	}
	d, err := New(fsys, "x")
	require.NoError(t, err)

	assert.Error(t, d.Close())
	assert.Error(t, d.Close())
	assert.Equal(t, 1, calls)
}
