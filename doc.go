// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lzw compresses and decompresses files using LZW with fixed 12-bit
codes. The dictionary is cleared completely when all codes have been
assigned.

A compressed file starts with a 10-byte header:

	offset 0  magic "LZW\x00"
	offset 4  version (0)
	offset 5  flags: bit 0 big-endian source, bit 1 variable width,
	          bits 4-7 code width minus 8
	offset 6  size of the original file, uint32 little-endian
	offset 10 code stream

Codes 0 to 255 represent literal bytes, codes 256 to 4093 strings from the
dictionary. The code 4094 clears the dictionary and 4095 terminates the
stream. Two codes are packed into three bytes.

The input is processed in chunks of 16 KiB; matches never extend over a
chunk boundary. The dictionary is kept across chunks.

The package refuses to run on big-endian hosts.
*/
package lzw
