// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"golang.org/x/sys/cpu"

	"github.com/ulikunitz/lzw/xio"
	"github.com/ulikunitz/lzw/xlog"
)

// Flags control Compress and Decompress.
type Flags int

const (
	// KeepOnError keeps a partially written output file after a failure.
	KeepOnError Flags = 1 << iota
	// Verbose enables the output of sizes and the compression ratio.
	Verbose
	// Overwrite allows Decompress to replace an existing output file.
	Overwrite
)

// Config provides the flags and the logger for Compress and Decompress.
type Config struct {
	Flags Flags
	// Logger receives the verbose output. If Verbose is set and Logger
	// is nil the standard logger of the log package is used.
	Logger xlog.Logger
}

// Stats reports the sizes of a Compress or Decompress call.
type Stats struct {
	// size of the uncompressed data
	InputSize int64
	// size of the compressed file including the header
	OutputSize int64
	// number of dictionary resets
	Clears int
}

// Ratio returns the size of the compressed file as percentage of the
// uncompressed size. The ratio for an empty input is zero.
func (s Stats) Ratio() float64 {
	if s.InputSize == 0 {
		return 0
	}
	return 100 * float64(s.OutputSize) / float64(s.InputSize)
}

// bigEndian probes the byte order of the host.
var bigEndian = func() bool { return cpu.IsBigEndian }

func (c Config) logger() xlog.Logger {
	if c.Flags&Verbose == 0 {
		return nil
	}
	if c.Logger != nil {
		return c.Logger
	}
	return log.Default()
}

// Compress compresses the file inputPath into the file outputPath. An
// existing output file is replaced. The output file is removed after a
// failure unless KeepOnError is set.
func Compress(inputPath, outputPath string, flags Flags) error {
	_, err := Config{Flags: flags}.Compress(inputPath, outputPath)
	return err
}

// Decompress decompresses the file inputPath into the file outputPath.
// If outputPath exists Decompress fails with ErrExists unless Overwrite
// is set. The output file is removed after a failure unless KeepOnError
// is set.
func Decompress(inputPath, outputPath string, flags Flags) error {
	_, err := Config{Flags: flags}.Decompress(inputPath, outputPath)
	return err
}

// Compress compresses the file inputPath into the file outputPath using
// the configuration c.
func (c Config) Compress(inputPath, outputPath string) (s Stats, err error) {
	if bigEndian() {
		return s, ErrBigEndian
	}
	in, err := os.Open(inputPath)
	if err != nil {
		return s, err
	}
	defer in.Close()
	fi, err := in.Stat()
	if err != nil {
		return s, err
	}
	size := fi.Size()
	if size > math.MaxUint32 {
		return s, fmt.Errorf("%s: %w", inputPath, ErrTooLarge)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return s, err
	}
	w := xio.NewWriteCloserStack(out)
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			xio.Cleanup(outputPath, c.Flags&KeepOnError != 0)
		}
	}()

	if err = writeHeader(w, newHeader(uint32(size))); err != nil {
		return s, err
	}
	e := newEncoder(w)
	s.InputSize, err = e.encode(io.LimitReader(in, size))
	s.OutputSize = HeaderLen + e.pk.written
	s.Clears = e.clears
	if err != nil {
		return s, err
	}
	if s.InputSize != size {
		return s, fmt.Errorf("lzw: %s: read %d bytes; expected %d",
			inputPath, s.InputSize, size)
	}
	l := c.logger()
	xlog.Printf(l, "%s: %d bytes compressed to %d bytes, %d clear codes",
		inputPath, s.InputSize, s.OutputSize, s.Clears)
	xlog.Printf(l, "compression ratio %.2f%%", s.Ratio())
	return s, nil
}

// Decompress decompresses the file inputPath into the file outputPath
// using the configuration c. The header is checked before the output
// file is created.
func (c Config) Decompress(inputPath, outputPath string) (s Stats, err error) {
	if bigEndian() {
		return s, ErrBigEndian
	}
	if c.Flags&Overwrite == 0 && xio.Exists(outputPath) {
		return s, fmt.Errorf("%s: %w", outputPath, ErrExists)
	}
	in, err := os.Open(inputPath)
	if err != nil {
		return s, err
	}
	defer in.Close()
	fi, err := in.Stat()
	if err != nil {
		return s, err
	}
	s.InputSize = fi.Size()
	h, err := ReadHeader(in)
	if err != nil {
		return s, err
	}
	l := c.logger()
	xlog.Printf(l, "expected output size: %d", h.Size)

	out, err := os.Create(outputPath)
	if err != nil {
		return s, err
	}
	w := xio.NewWriteCloserStack(out, xio.BufferWriter(out, chunkSize))
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			xio.Cleanup(outputPath, c.Flags&KeepOnError != 0)
		}
	}()

	d := newDecoder(w, in, int64(h.Size))
	s.OutputSize, err = d.decode()
	s.Clears = d.clears
	if err != nil {
		return s, err
	}
	xlog.Printf(l, "%s: %d bytes decompressed to %d bytes",
		inputPath, s.InputSize, s.OutputSize)
	return s, nil
}
