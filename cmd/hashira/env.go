// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
)

// loadDotEnv reads credentials from path into the environment. Variables
// already set are left alone. A missing file is not an error.
func loadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return
		}
		slog.Warn("could not load env file", "path", path, "error", err)
		return
	}
	slog.Debug("loaded env file", "path", path)
}
