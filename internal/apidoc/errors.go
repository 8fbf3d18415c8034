// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package apidoc

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes parser errors so front-ends can word them.
type ErrorCode string

const (
	// ParseError means the document could not be read or decoded.
	ParseError ErrorCode = "ParseError"
	// UnsupportedFormat means the file extension is not one hashira accepts.
	UnsupportedFormat ErrorCode = "UnsupportedFormat"
)

// Error is a structured parser error carrying the offending path.
type Error struct {
	Code    ErrorCode
	Path    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Path == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", e.Path, msg)
}

func (e *Error) Unwrap() error { return e.Err }

// IsCode reports whether err is an *Error with the given code.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// IsParseError reports whether err is a ParseError.
func IsParseError(err error) bool { return IsCode(err, ParseError) }

// IsUnsupported reports whether err is an UnsupportedFormat error.
func IsUnsupported(err error) bool { return IsCode(err, UnsupportedFormat) }

func parseErr(path string, err error, format string, args ...any) *Error {
	return &Error{Code: ParseError, Path: path, Message: fmt.Sprintf(format, args...), Err: err}
}
