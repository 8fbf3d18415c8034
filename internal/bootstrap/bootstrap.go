// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

// Package bootstrap implements the `hashira init` command, which writes a
// starter configuration into a project directory.
package bootstrap

import (
	"github.com/teralad/hashira/internal/testable"
)

// FS is the file system implementation used by this package.
// Override in tests with a testable.MockFileSystem.
var FS testable.FileSystem = testable.DefaultFS

// InitConfig holds the inputs for the init command.
type InitConfig struct {
	Dir   string
	Force bool
}

// Operations recorded in an Action.
const (
	OpCreated = "created"
	OpUpdated = "updated"
	OpSkipped = "skipped"
)

// Action records a single file operation performed during init.
type Action struct {
	File        string // e.g. ".hashira.yaml", ".mcp.json"
	Operation   string // OpCreated, OpUpdated or OpSkipped
	Description string // human-readable detail
}

// InitResult holds the outcome of an init run.
type InitResult struct {
	Actions []Action
}

// Changed reports whether any file was created or updated.
func (r *InitResult) Changed() bool {
	for _, a := range r.Actions {
		if a.Operation != OpSkipped {
			return true
		}
	}
	return false
}

// Run writes .hashira.yaml, registers the MCP server in .mcp.json and keeps
// .env out of git.
func Run(cfg InitConfig) (*InitResult, error) {
	result := &InitResult{}

	steps := []func() (Action, error){
		func() (Action, error) { return GenerateConfig(cfg.Dir, cfg.Force) },
		func() (Action, error) { return GenerateMCPConfig(cfg.Dir) },
		func() (Action, error) { return IgnoreEnvFile(cfg.Dir) },
	}
	for _, step := range steps {
		a, err := step()
		if err != nil {
			return nil, err
		}
		result.Actions = append(result.Actions, a)
	}
	return result, nil
}
