// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xio provides tools for the file handling of the lzw package. It
// contains the [WriteCloserStack] type, which combines a file with the
// buffers writing into it, and the helpers for existence checks and the
// removal of incomplete output files.
package xio

import (
	"bufio"
	"errors"
	"io"
)

// WriteCloserStack allows to handle multiple WriteClosers as a single
// WriteCloser. Writes go to the top of the stack, Close closes the
// WriteClosers from the top down.
type WriteCloserStack struct {
	Stack []io.WriteCloser
}

// NewWriteCloserStack creates a new WriteCloserStack with the given
// WriteClosers pushed in order.
func NewWriteCloserStack(wcs ...io.WriteCloser) *WriteCloserStack {
	w := &WriteCloserStack{}
	for _, wc := range wcs {
		w.Push(wc)
	}
	return w
}

// errClosed is returned by Write if the stack has been closed.
var errClosed = errors.New("xio: write to closed stack")

// Write writes data to the top WriteCloser of the stack. A stack that
// has been closed or never had a WriteCloser rejects the write.
func (w *WriteCloserStack) Write(p []byte) (n int, err error) {
	k := len(w.Stack)
	if k == 0 {
		return 0, errClosed
	}
	return w.Stack[k-1].Write(p)
}

// Close closes all writers on the stack and combines the errors. A
// failing writer doesn't prevent the writers below it from being closed.
// The stack is empty afterwards.
func (w *WriteCloserStack) Close() error {
	var errs []error
	for k := len(w.Stack) - 1; k >= 0; k-- {
		if err := w.Stack[k].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	w.Stack = nil
	return errors.Join(errs...)
}

// Push adds a new WriteCloser to the top of the stack. It panics if the
// WriteCloser is nil.
func (w *WriteCloserStack) Push(wc io.WriteCloser) {
	if wc == nil {
		panic("cannot push nil WriteCloser onto stack")
	}
	w.Stack = append(w.Stack, wc)
}

// flushCloser adds a Close method to a bufio.Writer.
type flushCloser struct {
	*bufio.Writer
}

// Close flushes the buffer.
func (f flushCloser) Close() error { return f.Flush() }

// BufferWriter creates a buffered writer of the given size on top of w.
// Closing the returned writer flushes the buffer but doesn't close w.
func BufferWriter(w io.Writer, size int) io.WriteCloser {
	return flushCloser{bufio.NewWriterSize(w, size)}
}
