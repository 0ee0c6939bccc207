// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import "io"

// encoder converts a byte stream into a stream of 12-bit codes.
type encoder struct {
	dict     *dict
	pk       *packer
	nextCode uint32
	buf      []byte
	// number of clear codes written
	clears int
}

// newEncoder creates an encoder writing the packed codes to w.
func newEncoder(w io.Writer) *encoder {
	return &encoder{
		dict:     newDict(),
		pk:       newPacker(w),
		nextCode: firstCode,
		buf:      make([]byte, chunkSize),
	}
}

// encode reads r until EOF, writes the codes for its bytes and
// terminates the code stream with the EOF code. It returns the number of
// bytes read.
func (e *encoder) encode(r io.Reader) (n int64, err error) {
	for {
		k, err := io.ReadFull(r, e.buf)
		if k > 0 {
			n += int64(k)
			if err := e.encodeChunk(e.buf[:k]); err != nil {
				return n, err
			}
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return n, err
		}
	}
	return n, e.pk.writeCode(eofCode)
}

// encodeChunk encodes the chunk p. The match is started with the first
// byte of the chunk and the code for the last match is written at the
// end of the chunk.
func (e *encoder) encodeChunk(p []byte) error {
	cur := uint32(p[0])
	for _, c := range p[1:] {
		key := dictKey(cur, c)
		if code, ok := e.dict.lookup(key); ok {
			cur = code
			continue
		}
		if err := e.pk.writeCode(uint16(cur)); err != nil {
			return err
		}
		cur = uint32(c)
		if e.nextCode == clearCode {
			e.dict.clear()
			e.nextCode = firstCode
			if err := e.pk.writeCode(clearCode); err != nil {
				return err
			}
			e.clears++
			continue
		}
		e.dict.insert(key, e.nextCode)
		e.nextCode++
	}
	return e.pk.writeCode(uint16(cur))
}
