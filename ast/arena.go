// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"
)

// ErrAllocation is reported when an arena cannot supply storage for a
// value because its allocation limit has been reached.
var ErrAllocation = errors.New("allocation failed")

// An Arena supplies and accounts for the storage behind the values built
// during a parse. The zero value is ready for use and imposes no limit.
//
// Every value in a tree is charged to the arena that built it and credited
// back when the value is released, so a caller can verify that no value
// leaks: after every tree obtained from the arena has been released, Live
// reports zero. The parser uses the same accounting internally to unwind
// partially built trees on failure.
//
// An Arena is not safe for concurrent use.
type Arena struct {
	live  int
	limit int
	tbuf  [][]byte
}

// Live reports the number of values currently allocated from a.
func (a *Arena) Live() int { return a.live }

// SetLimit bounds the number of values that may be live at once. Once the
// limit is reached, further allocations fail with ErrAllocation. A limit
// n <= 0 means no limit.
func (a *Arena) SetLimit(n int) { a.limit = n }

// take charges one value with the given span to the arena.
func (a *Arena) take(pos, end int) (node, error) {
	if a.limit > 0 && a.live >= a.limit {
		return node{}, fmt.Errorf("%w: %d values live", ErrAllocation, a.live)
	}
	a.live++
	return node{pos: pos, end: end, arena: a}, nil
}

func (a *Arena) drop() { a.live-- }

// intern stores a copy of text in the arena and returns a slice of the
// copy. Allocations are batched to reduce allocation overhead.
func (a *Arena) intern(text []byte) []byte {
	const bufBlockBytes = 8192

	if len(text) >= bufBlockBytes {
		return append([]byte(nil), text...)
	}

	i := 0
	for i < len(a.tbuf) {
		if len(a.tbuf[i])+len(text) < cap(a.tbuf[i]) {
			break
		}
		i++
	}
	if i == len(a.tbuf) {
		a.tbuf = append(a.tbuf, make([]byte, 0, bufBlockBytes))
	}
	s := len(a.tbuf[i])
	a.tbuf[i] = append(a.tbuf[i], text...)
	return a.tbuf[i][s : s+len(text)]
}
