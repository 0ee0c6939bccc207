// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package xlog provides a Logger interface and supporting functions to
control the output of the lzw package and its commands.

The Logger interface is supported by the log.Logger type. The functions
Print, Printf and Println don't do anything if the Logger is nil, so a
nil Logger switches the output off without the formatting cost of writing
to io.Discard.

The commands use the package-level functions Info, Warn and Fatal, which
write to standard error using the standard log package. Their output can
be suppressed or extended with SetFlags.
*/
package xlog

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// Logger is the interface a type must support to receive log output. The
// log.Logger type supports this interface.
type Logger interface {
	Output(calldepth int, s string) error
}

// Print outputs the arguments using the logger. If the logger is nil
// nothing will be printed.
func Print(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprint(v...))
	}
}

// Printf prints the arguments using the format string. If the logger
// argument is nil nothing will be printed.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Println prints the arguments and adds a newline. If the logger argument
// is nil nothing will be printed.
func Println(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintln(v...))
	}
}

// Flags control the output of the package-level functions.
const (
	// Lquiet suppresses warnings and informational messages.
	Lquiet = 1 << iota
	// Lverbose enables informational messages.
	Lverbose
)

var (
	mu    sync.Mutex
	flags int
	std   = log.New(os.Stderr, "", 0)
)

// SetFlags sets the output flags for the package-level functions.
func SetFlags(f int) {
	mu.Lock()
	flags = f
	mu.Unlock()
}

// Flags returns the current output flags.
func Flags() int {
	mu.Lock()
	defer mu.Unlock()
	return flags
}

// SetPrefix sets the prefix of the messages, usually the command name
// followed by a colon.
func SetPrefix(prefix string) {
	std.SetPrefix(prefix)
}

// Default returns the logger used by the package-level functions.
func Default() *log.Logger { return std }

func enabled(f int) bool {
	g := Flags()
	if g&Lquiet != 0 {
		return false
	}
	return f == 0 || g&f != 0
}

// Info prints an informational message if Lverbose is set.
func Info(v ...interface{}) {
	if enabled(Lverbose) {
		std.Output(2, fmt.Sprint(v...))
	}
}

// Infof prints a formatted informational message if Lverbose is set.
func Infof(format string, v ...interface{}) {
	if enabled(Lverbose) {
		std.Output(2, fmt.Sprintf(format, v...))
	}
}

// Warn prints a warning unless Lquiet is set.
func Warn(v ...interface{}) {
	if enabled(0) {
		std.Output(2, fmt.Sprint(v...))
	}
}

// Warnf prints a formatted warning unless Lquiet is set.
func Warnf(format string, v ...interface{}) {
	if enabled(0) {
		std.Output(2, fmt.Sprintf(format, v...))
	}
}

// Fatal prints the message and exits with status 1. The message is
// printed even if Lquiet is set.
func Fatal(v ...interface{}) {
	std.Output(2, fmt.Sprint(v...))
	os.Exit(1)
}

// Fatalf prints the formatted message and exits with status 1.
func Fatalf(format string, v ...interface{}) {
	std.Output(2, fmt.Sprintf(format, v...))
	os.Exit(1)
}
