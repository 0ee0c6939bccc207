// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ratio compares the compression ratio and the speed of LZW with
// xz, zstd and s2 on the Silesia corpus.
package main

import (
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/kr/pretty"
	"github.com/ogier/pflag"
	"github.com/ulikunitz/zdata"
	"golang.org/x/exp/slices"

	"github.com/ulikunitz/lzw/internal/corpus"
)

type result struct {
	Codec   string
	Ratio   float64
	MBPerS  float64
	NsPerOp int64
}

// mbPerSec returns the Megabytes (1 000 000 bytes) per seconds that are
// processed.
func mbPerSec(r testing.BenchmarkResult) float64 {
	if r.Bytes <= 0 || r.T <= 0 || r.N <= 0 {
		return 0
	}
	return (float64(r.Bytes) * float64(r.N) / 1e6) / r.T.Seconds()
}

func compressBenchmark(c corpus.Codec, files []corpus.File) func(b *testing.B) {
	return func(b *testing.B) {
		size := corpus.Size(files)
		b.SetBytes(size)
		var (
			err            error
			compressedSize int64
		)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			compressedSize, err = corpus.CompressedSize(c, files)
			if err != nil {
				b.Fatalf("CompressedSize error %s", err)
			}
		}
		b.StopTimer()
		b.ReportMetric(float64(compressedSize)/float64(size), "c/u")
	}
}

func main() {
	log.SetPrefix("ratio: ")
	log.SetFlags(0)
	testing.Init()
	verbose := pflag.BoolP("verbose", "v", false, "print the results as Go values")
	pflag.Parse()

	files, err := corpus.Files(zdata.Silesia)
	if err != nil {
		log.Fatalf("corpus.Files(zdata.Silesia) error %s", err)
	}
	dir, err := os.MkdirTemp("", "ratio")
	if err != nil {
		log.Fatalf("os.MkdirTemp error %s", err)
	}
	defer os.RemoveAll(dir)

	codecs := []corpus.Codec{
		corpus.LZW{Dir: dir},
		corpus.XZ{},
		corpus.Zstd{Level: zstd.SpeedFastest},
		corpus.Zstd{Level: zstd.SpeedDefault},
		corpus.S2{},
		corpus.S2{Better: true},
	}
	fmt.Printf("%d files, %d bytes\n", len(files), corpus.Size(files))

	results := make([]result, 0, len(codecs))
	for _, c := range codecs {
		r := testing.Benchmark(compressBenchmark(c, files))
		fmt.Printf("%s\t%s\n", c.Name(), r)
		results = append(results, result{
			Codec:   c.Name(),
			Ratio:   r.Extra["c/u"],
			MBPerS:  mbPerSec(r),
			NsPerOp: r.NsPerOp(),
		})
	}

	slices.SortFunc(results, func(a, b result) bool {
		return a.Ratio < b.Ratio
	})

	fmt.Printf("\n\n### Result ###\n\n")
	for _, r := range results {
		fmt.Printf("%-12s\t%.3f c/u\t%.2f MB/s\n", r.Codec, r.Ratio,
			r.MBPerS)
	}
	if *verbose {
		pretty.Println(results)
	}
}
