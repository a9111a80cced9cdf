// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jmin

import (
	"io"

	"github.com/creachadair/jmin/internal/escape"

	"go4.org/mem"
)

// Token is the type of a structural token in the JSON grammar.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid     Token = iota // invalid token
	Null                     // constant: null
	True                     // constant: true
	False                    // constant: false
	String                   // quoted string
	Number                   // number (reserved; the scanner does not produce it)
	ObjectStart              // left brace "{"
	ObjectEnd                // right brace "}"
	ArrayStart               // left square bracket "["
	ArrayEnd                 // right square bracket "]"
)

var tokenStr = [...]string{
	Invalid:     "invalid token",
	Null:        "null",
	True:        "true",
	False:       "false",
	String:      "string",
	Number:      "number",
	ObjectStart: `"{"`,
	ObjectEnd:   `"}"`,
	ArrayStart:  `"["`,
	ArrayEnd:    `"]"`,
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

// DefaultMaxDepth is the maximum nesting depth a Scanner permits unless
// overridden by SetMaxDepth.
const DefaultMaxDepth = 4096

// objState records what a scanner inside an object expects next.
type objState byte

const (
	wantNameOrClose objState = iota // a member name or "}"
	wantColon                       // the ":" after a member name
	wantValue                       // a value (the initial state)
)

// A Scanner reads structural tokens from a byte buffer. Each call to Next
// advances the scanner to the next token, or reports an error.
//
// The buffer is tokenized in place: decoding a string rewrites its escape
// sequences over the original quoted bytes. The caller must not read or
// alias the buffer from another goroutine while a scan is in progress.
type Scanner struct {
	buf []byte
	r   int    // read cursor
	stk []byte // open brackets, innermost last

	maxDepth int
	needEnd  bool // a complete value was just emitted; a bare value cannot follow
	ostate   objState

	tok  Token
	text []byte // decoded text of a String token, aliasing buf
	pos  int    // offset of the first byte of the current token
	err  error
}

// NewScanner constructs a new lexical scanner that consumes tokens from buf.
// The scanner retains buf and mutates it during scanning.
func NewScanner(buf []byte) *Scanner {
	return &Scanner{buf: buf, ostate: wantValue, maxDepth: DefaultMaxDepth}
}

// SetMaxDepth sets the maximum bracket nesting depth the scanner will
// accept. Tokens nested more than n levels deep fail with ErrTooDeep.
// If n <= 0 the default is restored.
func (s *Scanner) SetMaxDepth(n int) {
	if n <= 0 {
		n = DefaultMaxDepth
	}
	s.maxDepth = n
}

// Next advances s to the next token of the input, or reports an error.  At
// the end of the buffer, Next returns io.EOF; call Depth to check whether
// the input ended with brackets still open.
func (s *Scanner) Next() error {
	s.tok = Invalid
	s.text = nil
	s.err = nil

	for s.r < len(s.buf) {
		s.pos = s.r
		ch := s.buf[s.r]
		s.r++

		switch ch {
		case ' ', '\t', '\r', '\n':
			continue

		case '{':
			if s.needEnd || s.ostate != wantValue {
				return s.failf(s.pos, ErrSyntax, "unexpected %q", ch)
			}
			if err := s.push('{'); err != nil {
				return err
			}
			s.ostate = wantNameOrClose
			s.tok = ObjectStart
			return nil

		case '}':
			// Valid immediately after "{" or "," (awaiting a name), or after a
			// complete member value.
			if s.ostate == wantColon || (s.ostate == wantValue && !s.needEnd) {
				return s.failf(s.pos, ErrSyntax, "unexpected %q", ch)
			}
			if len(s.stk) == 0 || s.stk[len(s.stk)-1] != '{' {
				return s.failf(s.pos, ErrSyntax, "unmatched %q", ch)
			}
			s.stk = s.stk[:len(s.stk)-1]
			s.ostate = wantValue
			s.needEnd = true
			s.tok = ObjectEnd
			return nil

		case '[':
			if s.needEnd || s.ostate != wantValue {
				return s.failf(s.pos, ErrSyntax, "unexpected %q", ch)
			}
			if err := s.push('['); err != nil {
				return err
			}
			s.tok = ArrayStart
			return nil

		case ']':
			if len(s.stk) == 0 || s.stk[len(s.stk)-1] != '[' {
				return s.failf(s.pos, ErrSyntax, "unmatched %q", ch)
			}
			s.stk = s.stk[:len(s.stk)-1]
			s.ostate = wantValue
			s.needEnd = true
			s.tok = ArrayEnd
			return nil

		case '"':
			if s.needEnd || s.ostate == wantColon {
				return s.failf(s.pos, ErrSyntax, "unexpected %q", ch)
			}
			return s.scanString()

		case 'n', 't', 'f':
			if s.needEnd || s.ostate != wantValue {
				return s.failf(s.pos, ErrSyntax, "unexpected %q", ch)
			}
			return s.scanConstant(ch)

		case ',':
			if s.ostate != wantValue {
				return s.failf(s.pos, ErrSyntax, "unexpected %q", ch)
			}
			if n := len(s.stk); n != 0 && s.stk[n-1] == '{' {
				s.ostate = wantNameOrClose
			}
			s.needEnd = false

		case ':':
			if s.ostate != wantColon {
				return s.failf(s.pos, ErrSyntax, "unexpected %q", ch)
			}
			s.ostate = wantValue
			s.needEnd = false

		default:
			if ch == '-' || (ch >= '0' && ch <= '9') {
				// Number literals are not supported; see the package documentation.
				return s.failf(s.pos, ErrSyntax, "number literals are not supported")
			}
			return s.failf(s.pos, ErrSyntax, "unexpected %q", ch)
		}
	}
	return s.setErr(io.EOF)
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the last error reported by Next.
func (s *Scanner) Err() error { return s.err }

// Text returns the decoded text of the current token. For a String token
// this is the fully unescaped string body; for other tokens it is nil.
// The returned slice aliases the input buffer and is only valid until the
// buffer is reused.
func (s *Scanner) Text() []byte { return s.text }

// Copy returns a copy of the decoded text of the current token.
func (s *Scanner) Copy() []byte { return append([]byte(nil), s.text...) }

// Span returns the location span of the current token.
func (s *Scanner) Span() Span { return Span{Pos: s.pos, End: s.r} }

// Offset returns the current read offset in the buffer.
func (s *Scanner) Offset() int { return s.r }

// Depth returns the number of currently open brackets. When Next has
// returned io.EOF, a zero depth means the input ended cleanly; a nonzero
// depth means more input was expected.
func (s *Scanner) Depth() int { return len(s.stk) }

func (s *Scanner) push(b byte) error {
	if len(s.stk) >= s.maxDepth {
		return s.failf(s.pos, ErrTooDeep, "nesting exceeds %d levels", s.maxDepth)
	}
	s.stk = append(s.stk, b)
	return nil
}

// scanString consumes a quoted string whose opening quote has already been
// read, decoding its escapes in place over the raw bytes.
func (s *Scanner) scanString() error {
	start := s.r // first byte of the string body
	var esc bool
	for s.r < len(s.buf) {
		b := s.buf[s.r]
		if esc {
			esc = false
		} else if b == '\\' {
			esc = true
		} else if b == '"' {
			body := s.buf[start:s.r]
			s.r++
			n, err := escape.Decode(body)
			if err != nil {
				return s.failf(s.pos, err, "invalid string: %v", err)
			}
			s.text = body[:n]
			s.tok = String
			s.needEnd = true
			if s.ostate == wantNameOrClose {
				s.ostate = wantColon
			}
			return nil
		}
		s.r++
	}
	return s.failf(s.pos, ErrSyntax, "unterminated string")
}

// scanConstant consumes one of the literal constants null, true, or false,
// whose first byte has already been read.
func (s *Scanner) scanConstant(first byte) error {
	var want mem.RO
	var tok Token
	switch first {
	case 'n':
		want, tok = mem.S("null"), Null
	case 't':
		want, tok = mem.S("true"), True
	case 'f':
		want, tok = mem.S("false"), False
	}
	end := s.pos + want.Len()
	if end > len(s.buf) || !mem.B(s.buf[s.pos:end]).Equal(want) {
		return s.failf(s.pos, ErrSyntax, "malformed constant")
	}
	s.r = end
	s.tok = tok
	s.needEnd = true
	return nil
}

func (s *Scanner) setErr(err error) error {
	s.err = err
	return err
}

func (s *Scanner) failf(pos int, kind error, msg string, args ...any) error {
	return s.setErr(newSyntaxError(pos, kind, msg, args...))
}
