// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jmin

import (
	"errors"
	"fmt"

	"github.com/creachadair/jmin/internal/escape"
)

// Error kinds reported by the scanner and the tree parser. Every error
// returned by this module wraps one of these values, so callers can
// classify failures with errors.Is.
var (
	// ErrSyntax is reported for an unexpected character, a malformed
	// constant, an unmatched or misnested bracket, or a number literal
	// (numbers are not supported).
	ErrSyntax = errors.New("invalid syntax")

	// ErrInvalidEscape is reported for a malformed escape sequence inside
	// a string.
	ErrInvalidEscape = escape.ErrInvalidEscape

	// ErrControlChar is reported for an unescaped control byte inside a
	// string.
	ErrControlChar = escape.ErrControlChar

	// ErrTrailingData is reported when input remains after a complete
	// top-level value.
	ErrTrailingData = errors.New("trailing data after value")

	// ErrTooDeep is reported when the input nests more deeply than the
	// scanner's depth limit.
	ErrTooDeep = errors.New("nesting too deep")
)

// SyntaxError is the concrete type of errors reported by the scanner and
// the tree parser.
type SyntaxError struct {
	Offset  int    // byte offset in the input where the error was detected
	Message string // human-readable description
	Err     error  // the error kind, e.g. ErrSyntax
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at offset %d: %s", e.Offset, e.Message)
}

// Unwrap supports error wrapping.
func (e *SyntaxError) Unwrap() error { return e.Err }

func newSyntaxError(pos int, kind error, msg string, args ...any) *SyntaxError {
	return &SyntaxError{Offset: pos, Message: fmt.Sprintf(msg, args...), Err: kind}
}
