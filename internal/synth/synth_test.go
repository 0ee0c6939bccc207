// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synth

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func TestSequenceNames(t *testing.T) {
	for _, s := range []Sequence{Constant, Increasing, Random, Text} {
		g, err := ParseSequence(s.String())
		if err != nil {
			t.Fatalf("ParseSequence(%q) error %s", s, err)
		}
		if g != s {
			t.Errorf("ParseSequence(%q) returned %d; want %d", s, g, s)
		}
	}
	if _, err := ParseSequence("zeros"); err == nil {
		t.Fatalf("ParseSequence(%q) returned no error", "zeros")
	}
}

func TestBytes(t *testing.T) {
	p := Bytes(Increasing, 3*BlockSize+5, nil)
	for i, c := range p {
		if c != byte(i) {
			t.Fatalf("byte %d is %d; want %d", i, c, byte(i))
		}
	}
	q := Bytes(Constant, 10, nil)
	if !bytes.Equal(q, bytes.Repeat([]byte{0x0a}, 10)) {
		t.Fatalf("constant sequence % x", q)
	}
}

func TestRandomRepeats(t *testing.T) {
	p := Bytes(Random, 2*BlockSize, rand.NewSource(13))
	if !bytes.Equal(p[:BlockSize], p[BlockSize:]) {
		t.Fatalf("random block is not repeated")
	}
	q := Bytes(Random, BlockSize, rand.NewSource(13))
	if !bytes.Equal(p[:BlockSize], q) {
		t.Fatalf("same seed produced different blocks")
	}
}

func TestText(t *testing.T) {
	p := Bytes(Text, BlockSize, rand.NewSource(1))
	for i, c := range p {
		if !(c == ' ' || c == '\n' || 'a' <= c && c <= 'h') {
			t.Fatalf("byte %d is %q", i, c)
		}
	}
	t.Logf("%s", p[:96])
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "synth.bin")
	const n = 256*1024 + 3
	if err := WriteFile(path, Constant, n, nil); err != nil {
		t.Fatalf("WriteFile error %s", err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("os.Stat error %s", err)
	}
	if fi.Size() != n {
		t.Fatalf("file has size %d; want %d", fi.Size(), n)
	}
}
