// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xio

import (
	"errors"
	"io/fs"
	"os"
)

// Exists checks whether a file or directory entry exists for path. A
// dangling symbolic link counts as existing.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// Cleanup removes the file at path unless keep is set. A missing file is
// not an error.
func Cleanup(path string, keep bool) error {
	if keep {
		return nil
	}
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// UserPathError represents a path error presentable to a user. In
// difference to os.PathError it doesn't contain the operation that
// failed.
type UserPathError struct {
	Path string
	Err  error
}

// Error provides the error string for the path error.
func (e *UserPathError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *UserPathError) Unwrap() error { return e.Err }

// UserError converts a path error into an error message that is
// acceptable for users of a command. Lstat reports for instance that
// lstat failed, which means nothing to the user. Other errors are
// returned unchanged.
func UserError(err error) error {
	var pe *fs.PathError
	if !errors.As(err, &pe) {
		return err
	}
	return &UserPathError{Path: pe.Path, Err: pe.Err}
}
