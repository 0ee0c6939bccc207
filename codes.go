// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

// Code space of the 12-bit code stream. Codes below firstCode are
// literal bytes; codes from firstCode up to lastCode are assigned by the
// dictionary.
const (
	codeBits  = 12
	firstCode = 256
	lastCode  = clearCode - 1
	clearCode = 4094
	eofCode   = 4095
	maxCodes  = 1 << codeBits
)

// chunkSize is the size of the input blocks processed by the encoder.
// A match never extends over a chunk boundary, and the decoder relies on
// that to keep its chain table in step with the encoder.
const chunkSize = 16384

// packBufLen is the capacity of the packer output buffer. It must be a
// multiple of three, so that a flush never splits a pair of codes.
const packBufLen = 3078
