// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package main

import "fmt"

// Exit codes for hashira CLI.
const (
	ExitOK           = 0 // Success.
	ExitInvalidArgs  = 1 // Invalid arguments, unsupported format or parse error.
	ExitWriteFailure = 2 // Output not writable; generated code printed to stdout.
	ExitPlaceholder  = 3 // Model failed and --fail-on-placeholder was set.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitWriteFailure:
			msg = "hashira: could not write output files"
		case ExitPlaceholder:
			msg = "hashira: model failed, placeholder generated"
		default:
			msg = "hashira: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
