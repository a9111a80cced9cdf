// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jmin

// A Span describes a contiguous span of a source buffer.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}
