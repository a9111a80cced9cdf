// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jmin implements a minimal JSON reader over a byte buffer.
//
// # Scanning
//
// The Scanner type implements an incremental lexer for JSON. Construct a
// scanner from a byte buffer and call its Next method to iterate over the
// structural tokens of the input. Next advances to the next token and
// returns nil, or reports an error:
//
//	s := jmin.NewScanner(buf)
//	for s.Next() == nil {
//	   log.Printf("Next token: %v", s.Token())
//	}
//
// Next returns io.EOF when the buffer has been fully consumed. A zero
// Depth at that point means the input ended cleanly; a nonzero Depth means
// brackets were left open and more input was expected. Any other error
// wraps one of the package's error kinds (ErrSyntax, ErrInvalidEscape,
// ErrControlChar, ErrTooDeep).
//
// The scanner decodes string escapes in place, overwriting the original
// quoted bytes, so the caller must not alias or concurrently read the
// buffer while scanning.
//
// # Parsing
//
// The ast subpackage builds complete value trees. Its Parse function
// consumes exactly one top-level value from a buffer and fails with
// ErrTrailingData if anything but whitespace follows:
//
//	v, err := ast.Parse(buf)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//	defer ast.Release(v)
//
// # Limitations
//
// The reader targets UTF-8 input but does not validate string encoding.
// Escapes for surrogate code points are decoded as standalone three-byte
// UTF-8 sequences; surrogate pairs are not combined. Number literals are
// not supported: the Number token and ast.Number node are declared for
// completeness of the data model, but any input byte that would begin a
// number is reported as a syntax error.
package jmin
