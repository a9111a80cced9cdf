// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a value tree for JSON values, and a parser that
// constructs value trees from a byte buffer.
package ast

import "github.com/creachadair/jmin"

// A Value is a single JSON value. A value returned by Parse exclusively
// owns its children and must be released exactly once, either explicitly
// with Release or implicitly by the parser when construction fails.
type Value interface {
	Span() jmin.Span

	release() // sealed: only types in this package can be values
}

// Release frees v and every value it owns, returning its bookkeeping to
// the arena that produced it. Release panics if any value in the tree has
// already been released. Releasing a nil Value is a no-op.
func Release(v Value) {
	if v != nil {
		v.release()
	}
}

// node carries the bookkeeping common to every value in a tree.
type node struct {
	pos, end int
	arena    *Arena
	dead     bool
}

// Span satisfies the Value interface.
func (n node) Span() jmin.Span { return jmin.Span{Pos: n.pos, End: n.end} }

func (n *node) free() {
	if n.dead {
		panic("ast: value released twice")
	}
	n.dead = true
	n.arena.drop()
}

// Null represents the null constant.
type Null struct{ node }

func (v *Null) release() { v.free() }

// A Bool is a Boolean constant, true or false.
type Bool struct {
	node
	value bool
}

func (b *Bool) Value() bool { return b.value }

func (b *Bool) release() { b.free() }

// A String is a string value. Its text is fully decoded, with escape
// sequences replaced, and is owned by the value: it remains valid after
// the input buffer is reused, and is invalidated by Release.
type String struct {
	node
	text []byte
}

// Text returns the decoded text of s. The caller must not modify the
// returned slice.
func (s *String) Text() []byte { return s.text }

// Len reports the length in bytes of the decoded text of s.
func (s *String) Len() int { return len(s.text) }

// String returns a copy of the decoded text of s.
func (s *String) String() string { return string(s.text) }

func (s *String) release() { s.text = nil; s.free() }

// A Number is a numeric value. The scanner does not accept number
// literals, so the parser never constructs a Number; the type is retained
// for completeness of the data model.
type Number struct {
	node
	text []byte
}

// Text returns the literal text of n.
func (n *Number) Text() []byte { return n.text }

func (n *Number) release() { n.text = nil; n.free() }

// An Array is an ordered sequence of values.
type Array struct {
	node
	Values []Value
}

// Len reports the number of elements in a.
func (a *Array) Len() int { return len(a.Values) }

func (a *Array) release() {
	for _, v := range a.Values {
		v.release()
	}
	a.Values = nil
	a.free()
}

// An Object is a collection of key-value members. Members keep the order
// they had in the input, and duplicate keys are retained as separate
// members rather than merged.
type Object struct {
	node
	Members []*Member
}

// Len reports the number of members in o.
func (o *Object) Len() int { return len(o.Members) }

// Find returns the first member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

func (o *Object) release() {
	for _, m := range o.Members {
		m.release()
	}
	o.Members = nil
	o.free()
}

// A Member is a single key-value pair belonging to an Object. The key is
// fully decoded.
type Member struct {
	node

	Key   string
	Value Value
}

func (m *Member) release() {
	if m.Value != nil {
		m.Value.release()
		m.Value = nil
	}
	m.free()
}
