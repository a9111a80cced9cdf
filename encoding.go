// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jmin

import (
	"errors"

	"github.com/creachadair/jmin/internal/escape"
)

// Unquote decodes a JSON string value.  Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
//
// Unquote reports an error for a malformed or incomplete escape sequence
// and for an unescaped control byte in the string body. The input is not
// modified; the result is a fresh slice.
func Unquote(src []byte) ([]byte, error) {
	if len(src) < 2 || src[0] != '"' || src[len(src)-1] != '"' {
		return nil, errors.New("missing quotations")
	}
	buf := append([]byte(nil), src[1:len(src)-1]...)
	n, err := escape.Decode(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}
