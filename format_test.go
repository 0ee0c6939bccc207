// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"bytes"
	"errors"
	"testing"

	"github.com/kr/pretty"
)

func TestHeader(t *testing.T) {
	tests := []Header{
		newHeader(0),
		newHeader(10000),
		newHeader(1<<32 - 1),
	}
	for _, h := range tests {
		var buf bytes.Buffer
		if err := writeHeader(&buf, h); err != nil {
			t.Fatalf("writeHeader error %s", err)
		}
		if buf.Len() != HeaderLen {
			t.Fatalf("writeHeader wrote %d bytes; want %d",
				buf.Len(), HeaderLen)
		}
		g, err := ReadHeader(&buf)
		if err != nil {
			t.Fatalf("ReadHeader error %s", err)
		}
		if g != h {
			t.Errorf("ReadHeader returned %v; want %v; diff %v",
				g, h, pretty.Diff(g, h))
		}
	}
}

func TestHeaderLayout(t *testing.T) {
	h := newHeader(0x04030201)
	want := []byte{'L', 'Z', 'W', 0, 0, 0x40, 1, 2, 3, 4}
	if p := h.marshalBinary(); !bytes.Equal(p, want) {
		t.Fatalf("marshalBinary() = % x; want % x", p, want)
	}
	if h.BigEndian() || h.VarWidth() || h.CodeBits() != 12 {
		t.Fatalf("flags %#02x decoded as bigEndian %t, varWidth %t,"+
			" codeBits %d", h.Flags, h.BigEndian(), h.VarWidth(),
			h.CodeBits())
	}
}

func TestReadHeaderErrors(t *testing.T) {
	valid := newHeader(42).marshalBinary()
	corrupt := func(i int, b byte) []byte {
		p := append([]byte(nil), valid...)
		p[i] = b
		return p
	}
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short", valid[:9]},
		{"magic", corrupt(0, 'l')},
		{"terminator", corrupt(3, '!')},
		{"version", corrupt(4, 1)},
		{"big-endian", corrupt(5, 0x41)},
		{"var-width", corrupt(5, 0x42)},
		{"code-width", corrupt(5, 0x50)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadHeader(bytes.NewReader(tc.data))
			var fe FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("ReadHeader returned %v; want FormatError",
					err)
			}
			if ValidHeader(tc.data) {
				t.Fatalf("ValidHeader(% x) returned true", tc.data)
			}
		})
	}
	if !ValidHeader(valid) {
		t.Fatalf("ValidHeader(% x) returned false", valid)
	}
}
