// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/creachadair/jmin"
	"github.com/creachadair/jmin/ast"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "list": [
    {"x": true},
    {"x": false}
  ],
  "y": {
    "hello": "there"
  },
  "o": ["hi", "yourself"],
  "o": null
}`

func TestValues(t *testing.T) {
	v := ast.MustParse([]byte(testJSON))
	defer ast.Release(v)

	root, ok := v.(*ast.Object)
	if !ok {
		t.Fatalf("Root is %T, not object", v)
	}
	if root.Len() != 4 {
		t.Errorf("Root: got %d members, want 4", root.Len())
	}

	t.Run("Find", func(t *testing.T) {
		m := root.Find("y")
		if m == nil {
			t.Fatal(`Key "y" not found`)
		}
		obj, ok := m.Value.(*ast.Object)
		if !ok {
			t.Fatalf("Member value is %T, not object", m.Value)
		}
		hello := obj.Find("hello")
		if hello == nil {
			t.Fatal(`Key "hello" not found`)
		}
		if got := hello.Value.(*ast.String).String(); got != "there" {
			t.Errorf("Value: got %q, want %q", got, "there")
		}

		if m := root.Find("nonesuch"); m != nil {
			t.Errorf("Find(nonesuch): got %+v, want nil", m)
		}
	})

	t.Run("FindDuplicate", func(t *testing.T) {
		// Find reports the first of the duplicate members; both survive.
		m := root.Find("o")
		if m == nil {
			t.Fatal(`Key "o" not found`)
		}
		lst, ok := m.Value.(*ast.Array)
		if !ok {
			t.Fatalf("First duplicate is %T, not array", m.Value)
		}
		if lst.Len() != 2 {
			t.Errorf("Array: got %d elements, want 2", lst.Len())
		}
		if _, ok := root.Members[3].Value.(*ast.Null); !ok {
			t.Errorf("Second duplicate is %T, not null", root.Members[3].Value)
		}
	})

	t.Run("Elements", func(t *testing.T) {
		lst := root.Find("list").Value.(*ast.Array)
		if lst.Len() != 2 {
			t.Fatalf("Array: got %d elements, want 2", lst.Len())
		}
		first := lst.Values[0].(*ast.Object)
		if got := first.Find("x").Value.(*ast.Bool).Value(); !got {
			t.Error("list[0].x: got false, want true")
		}
		second := lst.Values[1].(*ast.Object)
		if got := second.Find("x").Value.(*ast.Bool).Value(); got {
			t.Error("list[1].x: got true, want false")
		}
	})
}

func TestSpans(t *testing.T) {
	//                      0123456789012345678
	v := ast.MustParse([]byte(`{"a": ["xs", null]}`))
	defer ast.Release(v)

	root := v.(*ast.Object)
	if diff := cmp.Diff(jmin.Span{Pos: 0, End: 19}, root.Span()); diff != "" {
		t.Errorf("Root span: (-want, +got)\n%s", diff)
	}

	m := root.Find("a")
	if diff := cmp.Diff(jmin.Span{Pos: 1, End: 18}, m.Span()); diff != "" {
		t.Errorf("Member span: (-want, +got)\n%s", diff)
	}

	lst := m.Value.(*ast.Array)
	if diff := cmp.Diff(jmin.Span{Pos: 6, End: 18}, lst.Span()); diff != "" {
		t.Errorf("Array span: (-want, +got)\n%s", diff)
	}
	if diff := cmp.Diff(jmin.Span{Pos: 7, End: 11}, lst.Values[0].Span()); diff != "" {
		t.Errorf("String span: (-want, +got)\n%s", diff)
	}
	if diff := cmp.Diff(jmin.Span{Pos: 13, End: 17}, lst.Values[1].Span()); diff != "" {
		t.Errorf("Null span: (-want, +got)\n%s", diff)
	}
}

func TestString_ownership(t *testing.T) {
	buf := []byte(`["copy me"]`)
	v := ast.MustParse(buf)
	defer ast.Release(v)

	// The tree owns its string data: clobbering the input buffer after the
	// parse must not affect the tree.
	for i := range buf {
		buf[i] = '?'
	}
	s := v.(*ast.Array).Values[0].(*ast.String)
	if got := s.String(); got != "copy me" {
		t.Errorf("Text: got %#q, want %#q", got, "copy me")
	}
	if s.Len() != 7 {
		t.Errorf("Len: got %d, want 7", s.Len())
	}
}
