// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"io"

	"github.com/creachadair/jmin"
)

// A Parser constructs value trees from byte buffers. The zero value is
// ready for use. A Parser may be reused, but not concurrently.
type Parser struct {
	// Arena, if non-nil, supplies and accounts for the storage behind the
	// values the parser builds. If it is nil, each call to Parse uses a
	// fresh arena.
	Arena *Arena

	// MaxDepth, if positive, overrides the scanner's default limit on
	// bracket nesting depth.
	MaxDepth int
}

// Parse parses buf, which must contain exactly one top-level JSON value;
// anything but whitespace after the value fails with ErrTrailingData.
//
// The buffer is modified in place during parsing and must not be read or
// aliased concurrently. On success the caller owns the returned value and
// must release it with Release; on failure every partially constructed
// value has already been released, at any depth.
func (p *Parser) Parse(buf []byte) (Value, error) {
	a := p.Arena
	if a == nil {
		a = new(Arena)
	}
	sc := jmin.NewScanner(buf)
	if p.MaxDepth > 0 {
		sc.SetMaxDepth(p.MaxDepth)
	}

	v, _, err := build(sc, a)
	if err != nil {
		return nil, err
	}

	// Exactly one value is permitted per buffer: the next scan must report
	// a clean end of input.
	if err := sc.Next(); err != io.EOF {
		Release(v)
		msg := "unexpected data after value"
		if err != nil {
			msg = fmt.Sprintf("%s: %v", msg, err)
		}
		return nil, &jmin.SyntaxError{
			Offset:  sc.Span().Pos,
			Message: msg,
			Err:     jmin.ErrTrailingData,
		}
	}
	return v, nil
}

// Parse parses buf using a zero Parser. See [Parser.Parse].
func Parse(buf []byte) (Value, error) {
	var p Parser
	return p.Parse(buf)
}

// MustParse parses buf and panics if parsing fails. It is intended for
// static inputs in tests and program initialization.
func MustParse(buf []byte) Value {
	v, err := Parse(buf)
	if err != nil {
		panic(fmt.Sprintf("ast: %v", err))
	}
	return v
}

// build consumes one complete value from sc. For a closing bracket it
// returns a nil Value along with the closing token, so that the enclosing
// container can finish. On error, every value built beneath this call has
// already been released.
func build(sc *jmin.Scanner, a *Arena) (Value, jmin.Token, error) {
	if err := sc.Next(); err == io.EOF {
		return nil, jmin.Invalid, unexpectedEOF(sc)
	} else if err != nil {
		return nil, jmin.Invalid, err
	}

	span := sc.Span()
	switch tok := sc.Token(); tok {
	case jmin.Null:
		n, err := a.take(span.Pos, span.End)
		if err != nil {
			return nil, tok, err
		}
		return &Null{node: n}, tok, nil

	case jmin.True, jmin.False:
		n, err := a.take(span.Pos, span.End)
		if err != nil {
			return nil, tok, err
		}
		return &Bool{node: n, value: tok == jmin.True}, tok, nil

	case jmin.String:
		n, err := a.take(span.Pos, span.End)
		if err != nil {
			return nil, tok, err
		}
		return &String{node: n, text: a.intern(sc.Text())}, tok, nil

	case jmin.ObjectEnd, jmin.ArrayEnd:
		return nil, tok, nil

	case jmin.ObjectStart:
		return buildObject(sc, a, span.Pos)

	case jmin.ArrayStart:
		return buildArray(sc, a, span.Pos)

	default:
		return nil, tok, fmt.Errorf("unknown token %v", tok)
	}
}

// buildArray consumes array elements up to and including the closing
// bracket. The opening bracket has already been scanned.
func buildArray(sc *jmin.Scanner, a *Arena, pos int) (Value, jmin.Token, error) {
	n, err := a.take(pos, 0)
	if err != nil {
		return nil, jmin.ArrayStart, err
	}
	arr := &Array{node: n}
	for {
		v, tok, err := build(sc, a)
		if err != nil {
			arr.release()
			return nil, tok, err
		}
		if v == nil { // closing bracket; the scanner has matched it for us
			arr.end = sc.Span().End
			return arr, jmin.ArrayStart, nil
		}
		arr.Values = append(arr.Values, v)
	}
}

// buildObject consumes object members up to and including the closing
// brace. The opening brace has already been scanned. Members are built as
// explicit key-value pairs: a name is read directly from the scanner, then
// the member's value is built recursively.
func buildObject(sc *jmin.Scanner, a *Arena, pos int) (Value, jmin.Token, error) {
	n, err := a.take(pos, 0)
	if err != nil {
		return nil, jmin.ObjectStart, err
	}
	obj := &Object{node: n}
	for {
		if err := sc.Next(); err == io.EOF {
			obj.release()
			return nil, jmin.Invalid, unexpectedEOF(sc)
		} else if err != nil {
			obj.release()
			return nil, jmin.Invalid, err
		}

		mspan := sc.Span()
		switch tok := sc.Token(); tok {
		case jmin.ObjectEnd:
			obj.end = mspan.End
			return obj, jmin.ObjectStart, nil
		case jmin.String:
			// fall through to build the member
		default:
			// Unreachable: the scanner admits only a name or "}" here.
			obj.release()
			return nil, tok, newSyntax(mspan.Pos, "unexpected %v in object", tok)
		}

		mn, err := a.take(mspan.Pos, 0)
		if err != nil {
			obj.release()
			return nil, jmin.String, err
		}
		m := &Member{node: mn, Key: string(sc.Text())}

		// Add the member to the object eagerly, so that a failure while its
		// value is being built releases the member with the rest of obj.
		obj.Members = append(obj.Members, m)

		v, tok, err := build(sc, a)
		if err != nil {
			obj.release()
			return nil, tok, err
		}
		if v == nil {
			// Unreachable: the scanner rejects a closer between ":" and a value.
			obj.release()
			return nil, tok, newSyntax(sc.Span().Pos, "unexpected %v in member", tok)
		}
		m.Value = v
		m.end = v.Span().End
	}
}

func unexpectedEOF(sc *jmin.Scanner) error {
	return newSyntax(sc.Offset(), "unexpected end of input")
}

func newSyntax(pos int, msg string, args ...any) error {
	return &jmin.SyntaxError{
		Offset:  pos,
		Message: fmt.Sprintf(msg, args...),
		Err:     jmin.ErrSyntax,
	}
}
