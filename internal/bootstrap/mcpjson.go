// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package bootstrap

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// MCPFileName is the project-level MCP client configuration.
const MCPFileName = ".mcp.json"

// mcpConfig represents the structure of a .mcp.json file. Other keys and
// other servers are preserved through json.RawMessage.
type mcpConfig struct {
	MCPServers map[string]json.RawMessage `json:"mcpServers"`
}

// mcpServerEntry is the hashira MCP server configuration.
type mcpServerEntry struct {
	Command string   `json:"command"`
	Args    []string `json:"args"`
}

// GenerateMCPConfig creates .mcp.json or adds a hashira entry to it.
func GenerateMCPConfig(dir string) (Action, error) {
	path := filepath.Join(dir, MCPFileName)

	existing, err := FS.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return Action{}, fmt.Errorf("reading %s: %w", MCPFileName, err)
	}

	cfg := mcpConfig{MCPServers: map[string]json.RawMessage{}}
	op, desc := OpCreated, "created with hashira MCP server entry"
	if err == nil {
		if jsonErr := json.Unmarshal(existing, &cfg); jsonErr != nil {
			return Action{}, fmt.Errorf("parsing %s: %w", MCPFileName, jsonErr)
		}
		if _, ok := cfg.MCPServers["hashira"]; ok {
			return Action{
				File:        MCPFileName,
				Operation:   OpSkipped,
				Description: "hashira MCP server already configured",
			}, nil
		}
		if cfg.MCPServers == nil {
			cfg.MCPServers = map[string]json.RawMessage{}
		}
		op, desc = OpUpdated, "added hashira MCP server entry"
	}

	entry, err := json.Marshal(mcpServerEntry{Command: "hashira", Args: []string{"mcp", "serve"}})
	if err != nil {
		return Action{}, fmt.Errorf("marshaling MCP server entry: %w", err)
	}
	cfg.MCPServers["hashira"] = entry

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return Action{}, fmt.Errorf("marshaling %s: %w", MCPFileName, err)
	}
	data = append(data, '\n')

	if err := FS.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // shared project config
		return Action{}, fmt.Errorf("writing %s: %w", MCPFileName, err)
	}
	return Action{File: MCPFileName, Operation: op, Description: desc}, nil
}
