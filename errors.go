// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import "errors"

// FormatError reports a compressed file that cannot be decoded: a wrong
// header, a corrupt code stream or a size mismatch.
type FormatError struct {
	Msg string
}

// Error returns the error message with the prefix "lzw: ".
func (e FormatError) Error() string {
	return "lzw: " + e.Msg
}

// newError creates a new format error with the given message.
func newError(msg string) error {
	return FormatError{msg}
}

var (
	// ErrExists is returned by Decompress if the output file exists and
	// the Overwrite flag is not set.
	ErrExists = errors.New("lzw: output file exists")
	// ErrTooLarge indicates an input file whose size cannot be stored in
	// the 32-bit size field of the header.
	ErrTooLarge = errors.New("lzw: input file too large")
	// ErrBigEndian is returned on hosts with big-endian byte order.
	ErrBigEndian = errors.New("lzw: big-endian hosts are not supported")
)
