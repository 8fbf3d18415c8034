// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// envEntry is the .gitignore line that keeps API tokens out of git.
const envEntry = ".env"

// IgnoreEnvFile appends .env to .gitignore unless an equivalent line is
// already present.
func IgnoreEnvFile(dir string) (Action, error) {
	path := filepath.Join(dir, ".gitignore")

	existing, err := FS.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return Action{}, fmt.Errorf("reading .gitignore: %w", err)
	}

	for _, line := range strings.Split(string(existing), "\n") {
		switch strings.TrimSpace(line) {
		case envEntry, "/" + envEntry:
			return Action{File: ".gitignore", Operation: OpSkipped, Description: ".env already ignored"}, nil
		}
	}

	content := string(existing)
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += "# hashira: API tokens\n" + envEntry + "\n"

	if err := FS.WriteFile(path, []byte(content), 0o644); err != nil { //nolint:gosec // .gitignore is committed
		return Action{}, fmt.Errorf("writing .gitignore: %w", err)
	}

	op := OpUpdated
	if len(existing) == 0 {
		op = OpCreated
	}
	return Action{File: ".gitignore", Operation: op, Description: "ignore .env"}, nil
}
