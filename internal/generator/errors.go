// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package generator

import "errors"

// Kind classifies a generation failure.
type Kind int

// Failure kinds.
const (
	// ModelUnavailable means no candidate model could be loaded.
	ModelUnavailable Kind = iota + 1
	// InvocationFailed means a loaded model failed while generating.
	InvocationFailed
)

func (k Kind) String() string {
	switch k {
	case ModelUnavailable:
		return "model unavailable"
	case InvocationFailed:
		return "generation failed"
	default:
		return "unknown"
	}
}

// Error reports why no text was generated. Reason is the underlying
// failure message, kept verbatim for the placeholder.
type Error struct {
	Kind   Kind
	Reason string
	Err    error
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Reason
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, k Kind) bool {
	var ge *Error
	return errors.As(err, &ge) && ge.Kind == k
}
