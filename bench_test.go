// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jmin_test

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/creachadair/jmin"
	"github.com/creachadair/jmin/ast"
)

// benchInput builds a synthetic document of nested objects and arrays.
// It contains no number literals, which this package does not support.
func benchInput() []byte {
	var sb strings.Builder
	sb.WriteString(`{"records": [`)
	for i := 0; i < 200; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(`{"name": "item é\t\"quoted\"", "ok": true, ` +
			`"tags": ["alpha", "beta", null], "meta": {"archived": false}}`)
	}
	sb.WriteString(`]}`)
	return []byte(sb.String())
}

func BenchmarkScanner(b *testing.B) {
	input := benchInput()
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Decoder", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			dec := json.NewDecoder(bytes.NewReader(input))
			for {
				_, err := dec.Token()
				if err == io.EOF {
					break
				} else if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}
			}
		}
	})

	// The scanner decodes in place, so each iteration needs a fresh copy of
	// the input.
	b.Run("Scanner", func(b *testing.B) {
		buf := make([]byte, len(input))
		for i := 0; i < b.N; i++ {
			copy(buf, input)
			s := jmin.NewScanner(buf)
			for {
				err := s.Next()
				if err == io.EOF {
					break
				} else if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}
			}
		}
	})
}

func BenchmarkParse(b *testing.B) {
	input := benchInput()
	buf := make([]byte, len(input))
	for i := 0; i < b.N; i++ {
		copy(buf, input)
		v, err := ast.Parse(buf)
		if err != nil {
			b.Fatalf("Parse failed: %v", err)
		}
		ast.Release(v)
	}
}
