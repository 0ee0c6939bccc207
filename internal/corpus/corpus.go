// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package corpus loads test corpora and measures the compressed sizes of
// their files for LZW and a number of reference compressors.
package corpus

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"github.com/ulikunitz/lzw"
)

// File is a single file of a corpus.
type File struct {
	Name string
	Data []byte
}

// Files reads all regular files of the corpus.
func Files(corpus fs.FS) (files []File, err error) {
	err = fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			files = append(files, File{Name: path, Data: data})
			return nil
		})
	return files, err
}

// Size returns the total size of the files.
func Size(files []File) int64 {
	n := int64(0)
	for _, f := range files {
		n += int64(len(f.Data))
	}
	return n
}

type countWriter struct {
	n int64
}

func (w *countWriter) Write(p []byte) (n int, err error) {
	n = len(p)
	w.n += int64(n)
	return n, nil
}

// Codec computes the compressed size of a single file.
type Codec interface {
	Name() string
	CompressedSize(f File) (n int64, err error)
}

// CompressedSize returns the sum of the compressed sizes of all files.
func CompressedSize(c Codec, files []File) (n int64, err error) {
	for _, f := range files {
		k, err := c.CompressedSize(f)
		if err != nil {
			return n, fmt.Errorf("%s: %s: %w", c.Name(), f.Name, err)
		}
		n += k
	}
	return n, nil
}

// LZW compresses files with the lzw package. The lzw package works on
// files, so the data is written into the directory Dir first.
type LZW struct {
	Dir string
}

func (c LZW) Name() string { return "lzw" }

func (c LZW) CompressedSize(f File) (n int64, err error) {
	in := filepath.Join(c.Dir, "corpus.bin")
	if err = os.WriteFile(in, f.Data, 0o644); err != nil {
		return 0, err
	}
	defer os.Remove(in)
	out := in + ".lzw"
	defer os.Remove(out)
	s, err := lzw.Config{}.Compress(in, out)
	if err != nil {
		return 0, err
	}
	return s.OutputSize, nil
}

// XZ compresses files with the xz package in its default configuration.
type XZ struct{}

func (c XZ) Name() string { return "xz" }

func (c XZ) CompressedSize(f File) (n int64, err error) {
	cw := &countWriter{}
	w, err := xz.NewWriter(cw)
	if err != nil {
		return 0, err
	}
	if _, err = io.Copy(w, bytes.NewReader(f.Data)); err != nil {
		return 0, err
	}
	if err = w.Close(); err != nil {
		return 0, err
	}
	return cw.n, nil
}

// Zstd compresses files with the zstd encoder at the given level.
type Zstd struct {
	Level zstd.EncoderLevel
}

func (c Zstd) Name() string { return "zstd-" + c.Level.String() }

func (c Zstd) CompressedSize(f File) (n int64, err error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(c.Level),
		zstd.WithEncoderConcurrency(1))
	if err != nil {
		return 0, err
	}
	defer enc.Close()
	return int64(len(enc.EncodeAll(f.Data, nil))), nil
}

// S2 compresses files with the s2 block format.
type S2 struct {
	Better bool
}

func (c S2) Name() string {
	if c.Better {
		return "s2-better"
	}
	return "s2"
}

func (c S2) CompressedSize(f File) (n int64, err error) {
	var p []byte
	if c.Better {
		p = s2.EncodeBetter(nil, f.Data)
	} else {
		p = s2.Encode(nil, f.Data)
	}
	return int64(len(p)), nil
}
