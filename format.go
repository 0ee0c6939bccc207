// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"bytes"
	"fmt"
	"io"
)

// HeaderLen is the length of the file header in bytes.
const HeaderLen = 10

// magic identifies the file format. The zero byte terminates the label.
var magic = []byte{'L', 'Z', 'W', 0}

// Version is the format version written by Compress.
const Version = 0

// Bits of the flag byte.
const (
	flagBigEndian = 1 << 0
	flagVarWidth  = 1 << 1
	// bits 4-7 store the code width minus 8
	widthShift = 4
)

// hostFlags is the only flag byte supported: little-endian source,
// fixed width, 12-bit codes.
const hostFlags = (codeBits - 8) << widthShift

// Header describes the header of a compressed file.
type Header struct {
	Version byte
	Flags   byte
	// size of the original file in bytes
	Size uint32
}

// newHeader returns the header for an input of the given size.
func newHeader(size uint32) Header {
	return Header{Version: Version, Flags: hostFlags, Size: size}
}

// BigEndian reports whether the source host had big-endian byte order.
func (h Header) BigEndian() bool { return h.Flags&flagBigEndian != 0 }

// VarWidth reports whether the code width is variable.
func (h Header) VarWidth() bool { return h.Flags&flagVarWidth != 0 }

// CodeBits returns the width of the codes in bits.
func (h Header) CodeBits() int { return int(h.Flags>>widthShift) + 8 }

// putLE32 writes x into p using little-endian encoding. The slice p must
// have at least length 4.
func putLE32(p []byte, x uint32) {
	_ = p[3]
	p[0] = byte(x)
	p[1] = byte(x >> 8)
	p[2] = byte(x >> 16)
	p[3] = byte(x >> 24)
}

// getLE32 reads a little-endian uint32 value from p. The slice p must
// have at least length 4.
func getLE32(p []byte) uint32 {
	_ = p[3]
	x := uint32(p[0])
	x |= uint32(p[1]) << 8
	x |= uint32(p[2]) << 16
	x |= uint32(p[3]) << 24
	return x
}

// marshalBinary encodes the header.
func (h Header) marshalBinary() []byte {
	p := make([]byte, HeaderLen)
	copy(p, magic)
	p[4] = h.Version
	p[5] = h.Flags
	putLE32(p[6:], h.Size)
	return p
}

// unmarshalBinary decodes the header without validating version and
// flags.
func (h *Header) unmarshalBinary(p []byte) error {
	if len(p) != HeaderLen {
		return newError("header has wrong length")
	}
	if !bytes.Equal(p[:4], magic) {
		return newError("not an LZW file")
	}
	h.Version = p[4]
	h.Flags = p[5]
	h.Size = getLE32(p[6:])
	return nil
}

// validate checks that the header can be decoded by this package.
func (h Header) validate() error {
	if h.Version != Version {
		return newError(fmt.Sprintf("version %d not supported",
			h.Version))
	}
	if h.Flags != hostFlags {
		return newError(fmt.Sprintf("encoding flags %#02x mismatch",
			h.Flags))
	}
	return nil
}

// writeHeader writes the header for the given input size.
func writeHeader(w io.Writer, h Header) error {
	_, err := w.Write(h.marshalBinary())
	return err
}

// ReadHeader reads a file header from r. The magic, version and flags
// must match the values written by Compress exactly.
func ReadHeader(r io.Reader) (h Header, err error) {
	p := make([]byte, HeaderLen)
	if _, err = io.ReadFull(r, p); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Header{}, newError("not an LZW file")
		}
		return Header{}, err
	}
	if err = h.unmarshalBinary(p); err != nil {
		return Header{}, err
	}
	if err = h.validate(); err != nil {
		return Header{}, err
	}
	return h, nil
}

// ValidHeader checks whether data is a header supported by this package.
func ValidHeader(data []byte) bool {
	var h Header
	if err := h.unmarshalBinary(data); err != nil {
		return false
	}
	return h.validate() == nil
}
