// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package escape handles decoding of JSON string escape sequences.
package escape

import (
	"errors"
	"fmt"
)

// Error kinds reported by Decode. The jmin package re-exports these values.
var (
	ErrInvalidEscape = errors.New("invalid escape sequence")
	ErrControlChar   = errors.New("unescaped control character")
)

// Decode rewrites buf in place, replacing JSON escape sequences with the
// bytes they denote, and returns the length of the decoded prefix. The
// input must be the body of a quoted string with the enclosing quotation
// marks already removed. Decoded text never exceeds the input length, so
// the rewrite cannot overrun the text still to be read.
//
// A \uXXXX escape requires exactly four hexadecimal digits and is encoded
// as UTF-8 without surrogate-pair combination: a code point in the range
// U+D800 through U+DFFF becomes a standalone three-byte sequence. This is
// a documented limitation of the format, not an error. The encoding of
// unescaped bytes is not validated.
func Decode(buf []byte) (int, error) {
	var w int
	for r := 0; r < len(buf); {
		b := buf[r]
		if b != '\\' {
			if b < 0x20 {
				return 0, fmt.Errorf("%w 0x%02x", ErrControlChar, b)
			}
			buf[w] = b
			w++
			r++
			continue
		}
		r++
		if r == len(buf) {
			return 0, fmt.Errorf("%w: truncated", ErrInvalidEscape)
		}
		switch c := buf[r]; c {
		case '"', '\\', '/':
			buf[w] = c
			w++
			r++
		case 'b':
			buf[w] = '\b'
			w++
			r++
		case 'f':
			buf[w] = '\f'
			w++
			r++
		case 'n':
			buf[w] = '\n'
			w++
			r++
		case 'r':
			buf[w] = '\r'
			w++
			r++
		case 't':
			buf[w] = '\t'
			w++
			r++
		case 'u':
			if len(buf)-r < 5 {
				return 0, fmt.Errorf("%w: incomplete Unicode escape", ErrInvalidEscape)
			}
			cp, err := parseHex(buf[r+1 : r+5])
			if err != nil {
				return 0, err
			}
			r += 5
			w += encodeRune(buf[w:], cp)
		default:
			return 0, fmt.Errorf("%w \\%c", ErrInvalidEscape, c)
		}
	}
	return w, nil
}

// parseHex decodes exactly four case-insensitive hexadecimal digits.
func parseHex(data []byte) (uint32, error) {
	var v uint32
	for _, b := range data {
		v <<= 4
		if '0' <= b && b <= '9' {
			v += uint32(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += uint32(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += uint32(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("%w: not a hex digit: %q", ErrInvalidEscape, b)
		}
	}
	return v, nil
}

// encodeRune writes the UTF-8 encoding of cp to dst and reports the number
// of bytes written. Unlike utf8.EncodeRune it does not substitute the
// replacement rune for surrogate code points; they are encoded as ordinary
// three-byte sequences. Escapes denote at most U+FFFF, so at most three
// bytes are written.
func encodeRune(dst []byte, cp uint32) int {
	switch {
	case cp <= 0x7F:
		dst[0] = byte(cp)
		return 1
	case cp <= 0x7FF:
		dst[0] = 0xC0 | byte(cp>>6)
		dst[1] = 0x80 | byte(cp&0x3F)
		return 2
	default:
		dst[0] = 0xE0 | byte(cp>>12)
		dst[1] = 0x80 | byte((cp>>6)&0x3F)
		dst[2] = 0x80 | byte(cp&0x3F)
		return 3
	}
}
