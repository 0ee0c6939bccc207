// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"fmt"
	"io"
)

// noCode indicates that there is no previous code.
const noCode = -1

// decoder converts a code stream back into the original bytes.
type decoder struct {
	u        *unpacker
	chain    *chain
	stack    stack
	w        io.Writer
	buf      []byte
	nextCode uint16
	old      int
	// bytes produced
	n int64
	// expected number of bytes
	size   int64
	clears int
}

// newDecoder creates a decoder reading codes from r and writing size
// bytes to w.
func newDecoder(w io.Writer, r io.Reader, size int64) *decoder {
	return &decoder{
		u:        newUnpacker(r),
		chain:    newChain(),
		w:        w,
		buf:      make([]byte, maxCodes+1),
		nextCode: firstCode,
		old:      noCode,
		size:     size,
	}
}

// decode reads codes until the EOF code and writes the decoded bytes. It
// returns an error if the number of bytes doesn't match the expected
// size.
func (d *decoder) decode() (n int64, err error) {
	for {
		c, err := d.u.readCode()
		if err != nil {
			return d.n, err
		}
		switch c {
		case eofCode:
			if d.n != d.size {
				return d.n, newError(fmt.Sprintf(
					"decoded %d bytes; header declares %d",
					d.n, d.size))
			}
			return d.n, nil
		case clearCode:
			d.chain.reset()
			d.nextCode = firstCode
			d.old = noCode
			d.clears++
			continue
		}
		if err = d.decodeCode(c); err != nil {
			return d.n, err
		}
	}
}

// decodeCode writes the string for code c and registers the next chain
// entry.
func (d *decoder) decodeCode(c uint16) error {
	var (
		p     []byte
		first byte
	)
	if c < firstCode {
		first = byte(c)
		d.buf[0] = first
		p = d.buf[:1]
	} else {
		if !d.chain.assigned(c) && (d.old == noCode || c != d.nextCode) {
			return newError(fmt.Sprintf("invalid code %d", c))
		}
		var err error
		first, err = d.chain.expand(&d.stack, c, uint16(d.old))
		if err != nil {
			return err
		}
		p = d.buf[:d.stack.popAll(d.buf)]
	}

	// A string must not cross a chunk boundary.
	off := d.n % chunkSize
	if off+int64(len(p)) > chunkSize {
		return newError("string crosses chunk boundary")
	}
	if d.n+int64(len(p)) > d.size {
		return newError(fmt.Sprintf(
			"decoded data exceeds size %d declared in header",
			d.size))
	}
	if _, err := d.w.Write(p); err != nil {
		return err
	}
	d.n += int64(len(p))

	if d.old != noCode {
		if d.nextCode > lastCode {
			return newError("code table overflow")
		}
		d.chain.add(d.nextCode, uint16(d.old), first)
		d.nextCode++
	}
	d.old = int(c)
	if d.n%chunkSize == 0 {
		// the encoder restarts its match at every chunk
		d.old = noCode
	}
	return nil
}
