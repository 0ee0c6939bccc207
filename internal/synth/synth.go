// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package synth generates synthetic input data for tests and the
// synthetic mode of the lzwgo command. The data consists of a 1 KiB block
// that is repeated until the requested size is reached.
package synth

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
)

// BlockSize is the size of the repeated block.
const BlockSize = 1024

// Sequence selects the content of the block.
type Sequence int

// Supported sequences.
const (
	// Constant fills the block with the byte 0x0a.
	Constant Sequence = iota
	// Increasing fills the block with the byte values 0, 1, ..., 255, 0, ...
	Increasing
	// Random fills the block with random bytes.
	Random
	// Text fills the block with random lowercase words and lines.
	Text
)

var sequenceNames = []string{"constant", "increasing", "random", "text"}

// String returns the name of the sequence.
func (s Sequence) String() string {
	if 0 <= s && int(s) < len(sequenceNames) {
		return sequenceNames[s]
	}
	return fmt.Sprintf("Sequence(%d)", int(s))
}

// ParseSequence converts a name returned by String back into the
// sequence.
func ParseSequence(name string) (s Sequence, err error) {
	for i, n := range sequenceNames {
		if n == name {
			return Sequence(i), nil
		}
	}
	return 0, fmt.Errorf("synth: unknown sequence %q", name)
}

// Block creates the block for the sequence. The source is only used for
// the random and text sequences.
func Block(s Sequence, src rand.Source) []byte {
	p := make([]byte, BlockSize)
	switch s {
	case Constant:
		for i := range p {
			p[i] = 0x0a
		}
	case Increasing:
		for i := range p {
			p[i] = byte(i)
		}
	case Random:
		rnd := rand.New(src)
		rnd.Read(p)
	case Text:
		rnd := rand.New(src)
		for i := range p {
			switch {
			case i%48 == 47:
				p[i] = '\n'
			case i%6 == 5:
				p[i] = ' '
			default:
				p[i] = 'a' + byte(rnd.Intn(8))
			}
		}
	default:
		panic(fmt.Errorf("synth: unsupported sequence %d", s))
	}
	return p
}

// repeatReader returns the block repeatedly.
type repeatReader struct {
	block []byte
	off   int
}

func (r *repeatReader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		k := copy(p[n:], r.block[r.off:])
		n += k
		r.off = (r.off + k) % len(r.block)
	}
	return n, nil
}

// NewReader returns a reader providing n bytes of the sequence.
func NewReader(s Sequence, n int64, src rand.Source) io.Reader {
	return io.LimitReader(&repeatReader{block: Block(s, src)}, n)
}

// Bytes returns n bytes of the sequence.
func Bytes(s Sequence, n int, src rand.Source) []byte {
	p := make([]byte, n)
	if _, err := io.ReadFull(NewReader(s, int64(n), src), p); err != nil {
		panic(err)
	}
	return p
}

// WriteFile writes n bytes of the sequence into the file at path.
func WriteFile(path string, s Sequence, n int64, src rand.Source) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if _, err = io.Copy(bw, NewReader(s, n, src)); err != nil {
		f.Close()
		return err
	}
	if err = bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
