// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package testable

import (
	"context"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// GitCloner abstracts cloning a remote repository into a local directory.
// Production code uses RealGitCloner; tests inject MockGitCloner to avoid
// network access.
type GitCloner interface {
	// ShallowClone clones url at depth 1 into dir. ref may be empty to use
	// the remote's default branch.
	ShallowClone(ctx context.Context, dir, url, ref string) error
}

// RealGitCloner is the production implementation of GitCloner.
type RealGitCloner struct{}

// ShallowClone delegates to git.PlainCloneContext.
func (RealGitCloner) ShallowClone(ctx context.Context, dir, url, ref string) error {
	opts := &git.CloneOptions{
		URL:          url,
		Depth:        1,
		SingleBranch: true,
		Tags:         git.NoTags,
	}
	if ref != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(ref)
	}
	_, err := git.PlainCloneContext(ctx, dir, false, opts)
	return err
}

// MockGitCloner is a test double for GitCloner.
type MockGitCloner struct {
	ShallowCloneFn func(ctx context.Context, dir, url, ref string) error
}

// ShallowClone calls ShallowCloneFn if set, otherwise succeeds without
// touching dir.
func (m *MockGitCloner) ShallowClone(ctx context.Context, dir, url, ref string) error {
	if m.ShallowCloneFn != nil {
		return m.ShallowCloneFn(ctx, dir, url, ref)
	}
	return nil
}

// DefaultGitCloner is the GitCloner used when no custom one is injected.
var DefaultGitCloner GitCloner = RealGitCloner{}
