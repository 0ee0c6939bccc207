// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"bufio"
	"errors"
	"io"
)

// putPair packs the codes c1 and c2 into the three bytes of p.
func putPair(p []byte, c1, c2 uint16) {
	_ = p[2]
	p[0] = byte(c1)
	p[1] = byte(c1>>8)&0x0f | byte(c2<<4)
	p[2] = byte(c2 >> 4)
}

// lowCode returns the first code of a pair stored in the 16-bit
// little-endian cell p[0:2].
func lowCode(p []byte) uint16 {
	_ = p[1]
	return (uint16(p[0]) | uint16(p[1])<<8) & 0x0fff
}

// highCode returns the second code of a pair stored in the 16-bit
// little-endian cell p[0:2].
func highCode(p []byte) uint16 {
	_ = p[1]
	return (uint16(p[0]) | uint16(p[1])<<8) >> 4
}

// packer writes 12-bit codes to an underlying writer. Two codes are
// packed into three bytes.
type packer struct {
	w   io.Writer
	buf []byte
	// number of complete bytes in buf
	n int
	// first code of an incomplete pair
	pending uint16
	half    bool
	// bytes written to w
	written int64
}

// newPacker creates a packer writing to w.
func newPacker(w io.Writer) *packer {
	return &packer{w: w, buf: make([]byte, packBufLen)}
}

// writeCode adds the code to the packer. The buffer is flushed when it
// is full. The EOF code flushes the buffer including an incomplete pair,
// which is written as two bytes.
func (pk *packer) writeCode(c uint16) error {
	if !pk.half {
		if c == eofCode {
			pk.buf[pk.n] = byte(c)
			pk.buf[pk.n+1] = byte(c>>8) & 0x0f
			pk.n += 2
			return pk.flush()
		}
		pk.pending = c
		pk.half = true
		return nil
	}
	putPair(pk.buf[pk.n:], pk.pending, c)
	pk.n += 3
	pk.half = false
	if pk.n == len(pk.buf) || c == eofCode {
		return pk.flush()
	}
	return nil
}

// errShortWrite is returned if the writer didn't accept all bytes
// without reporting an error.
var errShortWrite = errors.New("lzw: short write")

// flush writes the complete bytes of the buffer.
func (pk *packer) flush() error {
	k, err := pk.w.Write(pk.buf[:pk.n])
	pk.written += int64(k)
	if err != nil {
		return err
	}
	if k != pk.n {
		return errShortWrite
	}
	pk.n = 0
	return nil
}

// unpacker reads 12-bit codes from a byte stream produced by the packer.
type unpacker struct {
	br *bufio.Reader
	// set if the next code is the second code of a pair
	odd bool
}

// newUnpacker creates an unpacker reading from r.
func newUnpacker(r io.Reader) *unpacker {
	return &unpacker{br: bufio.NewReaderSize(r, packBufLen)}
}

// readCode reads the next code. Both codes of a pair are taken from a
// 16-bit cell at the read position. The position advances by one byte
// after the first code and by two bytes after the second code.
func (u *unpacker) readCode() (c uint16, err error) {
	p, err := u.br.Peek(2)
	if err != nil {
		if err == io.EOF {
			return 0, newError("code stream truncated")
		}
		return 0, err
	}
	if u.odd {
		c = highCode(p)
		_, err = u.br.Discard(2)
	} else {
		c = lowCode(p)
		_, err = u.br.Discard(1)
	}
	u.odd = !u.odd
	return c, err
}
