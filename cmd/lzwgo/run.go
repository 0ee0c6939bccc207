// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/dchest/siphash"
	"github.com/google/uuid"
	"github.com/kr/pretty"

	"github.com/ulikunitz/lzw"
	"github.com/ulikunitz/lzw/internal/synth"
	"github.com/ulikunitz/lzw/xio"
	"github.com/ulikunitz/lzw/xlog"
)

// fingerprintKey is the siphash key for the file fingerprints of the
// test modes.
var fingerprintKey = []byte("lzwgo fingerprnt")

func packFile(cfg lzw.Config, in, out string) error {
	quit := signalHandler(cfg.Flags&lzw.KeepOnError != 0, out)
	defer close(quit)
	s, err := cfg.Compress(in, out)
	if err != nil {
		xlog.Warn(xio.UserError(err))
		fmt.Println("Compression failed.")
		return err
	}
	fmt.Println("Compression successful.")
	if cfg.Flags&lzw.Verbose != 0 {
		fmt.Printf("Compression ratio %.2f%%\n", s.Ratio())
	}
	return nil
}

func unpackFile(cfg lzw.Config, in, out string) error {
	quit := signalHandler(cfg.Flags&lzw.KeepOnError != 0, out)
	defer close(quit)
	if _, err := cfg.Decompress(in, out); err != nil {
		xlog.Warn(xio.UserError(err))
		fmt.Println("Decompression failed.")
		return err
	}
	fmt.Println("Decompression successful.")
	return nil
}

// tempPath returns a unique path in the temporary directory.
func tempPath(ext string) string {
	return filepath.Join(os.TempDir(), "lzwgo-"+uuid.NewString()+ext)
}

// testFile compresses in, decompresses the result and compares the
// fingerprints of the input and the decompressed file. The temporary
// files are removed.
func testFile(cfg lzw.Config, in string) error {
	packed, out := tempPath(".lzw"), tempPath(".out")
	quit := signalHandler(false, packed, out)
	defer close(quit)
	defer os.Remove(out)
	defer os.Remove(packed)

	cfg.Flags &^= lzw.KeepOnError
	s, err := cfg.Compress(in, packed)
	if err != nil {
		xlog.Warn(xio.UserError(err))
		fmt.Println("Compression failed.")
		return err
	}
	fmt.Println("Compression successful.")
	cfg.Flags |= lzw.Overwrite
	if _, err = cfg.Decompress(packed, out); err != nil {
		xlog.Warn(xio.UserError(err))
		fmt.Println("Decompression failed.")
		return err
	}
	fmt.Println("Decompression successful.")
	fmt.Printf("Compression ratio %.2f%%\n", s.Ratio())
	return compareFiles(os.Stdout, in, out)
}

// syntheticTest runs the round trip for n * 256 KiB of the synthetic
// sequence seq.
func syntheticTest(cfg lzw.Config, n int, seq synth.Sequence) error {
	in := tempPath(".bin")
	quit := signalHandler(false, in)
	defer close(quit)
	defer os.Remove(in)

	size := int64(n) * 256 * synth.BlockSize
	xlog.Infof("%s: %d bytes of %s data", in, size, seq)
	if err := synth.WriteFile(in, seq, size, rand.NewSource(1)); err != nil {
		xlog.Warn(xio.UserError(err))
		return err
	}
	cfg.Flags |= lzw.Verbose
	return testFile(cfg, in)
}

// fingerprint computes the siphash of the file at path.
func fingerprint(path string) (sum uint64, size int64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	h := siphash.New(fingerprintKey)
	if size, err = io.Copy(h, f); err != nil {
		return 0, 0, err
	}
	return h.Sum64(), size, nil
}

var errMismatch = errors.New("decompressed file differs from input")

// compareFiles prints the fingerprints of both files and reports an
// error if they differ.
func compareFiles(w io.Writer, a, b string) error {
	var sums [2]uint64
	var sizes [2]int64
	for i, path := range []string{a, b} {
		var err error
		sums[i], sizes[i], err = fingerprint(path)
		if err != nil {
			xlog.Warn(xio.UserError(err))
			return err
		}
		fmt.Fprintf(w, "%016x %d %s\n", sums[i], sizes[i], path)
	}
	if sums[0] != sums[1] || sizes[0] != sizes[1] {
		xlog.Warnf("%s: %s", a, errMismatch)
		return errMismatch
	}
	return nil
}

// printInfo prints the headers of the given compressed files.
func printInfo(w io.Writer, paths []string) error {
	var lastErr error
	for _, path := range paths {
		h, err := readHeader(path)
		if err != nil {
			xlog.Warn(xio.UserError(err))
			lastErr = err
			continue
		}
		var buf bytes.Buffer
		fmt.Fprintf(&buf, "%s: %d-bit codes, %d bytes uncompressed\n",
			path, h.CodeBits(), h.Size)
		pretty.Fprintf(&buf, "%# v\n", h)
		if _, err = w.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return lastErr
}

func readHeader(path string) (h lzw.Header, err error) {
	f, err := os.Open(path)
	if err != nil {
		return h, err
	}
	defer f.Close()
	h, err = lzw.ReadHeader(f)
	if err != nil {
		return h, fmt.Errorf("%s: %w", path, err)
	}
	return h, nil
}
