// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lzwgo compresses and decompresses files in the LZW format of
// the lzw package.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ogier/pflag"

	"github.com/ulikunitz/lzw"
	"github.com/ulikunitz/lzw/internal/synth"
	"github.com/ulikunitz/lzw/xlog"
)

const usageStr = `Usage: lzwgo -p|-u [OPTION]... INPUT OUTPUT
  or:  lzwgo -t [OPTION]... INPUT
  or:  lzwgo -i FILE...
  or:  lzwgo --synthetic N [--sequence SEQ]
Compress or decompress files using LZW with 12-bit codes.

  -p, --pack        compress INPUT into OUTPUT
  -u, --unpack      decompress INPUT into OUTPUT
  -t, --test        compress and decompress INPUT and compare the results
  -i, --info        print the header of compressed files
  -v, --verbose     verbose mode
  -f, --force       overwrite an existing OUTPUT; applies to -u only
  -k, --keep        keep an incomplete OUTPUT after a failure
  -h, --help        give this help
  -n, --synthetic N test with N * 256 KiB of synthetic data (default 32)
  -q, --sequence S  synthetic sequence: constant, increasing, random or
                    text (default constant)

Flags can be combined, for instance -uvf.
`

// defaultSynthetic is the default size of the synthetic test in units of
// 256 KiB.
const defaultSynthetic = 32

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

type mode int

const (
	modeNone mode = iota
	modePack
	modeUnpack
	modeTest
	modeInfo
	modeSynthetic
)

// selectMode returns the single mode requested by the flags. Conflicting
// modes are reported as error.
func selectMode(pack, unpack, test, info, synthetic bool) (m mode, err error) {
	k := 0
	for _, f := range []struct {
		set bool
		m   mode
	}{
		{pack, modePack},
		{unpack, modeUnpack},
		{test, modeTest},
		{info, modeInfo},
		{synthetic, modeSynthetic},
	} {
		if f.set {
			m = f.m
			k++
		}
	}
	switch k {
	case 0:
		return modeNone, fmt.Errorf(
			"no pack, unpack, test, info or synthetic flag given")
	case 1:
		return m, nil
	}
	return modeNone, fmt.Errorf(
		"cannot combine the pack, unpack, test, info and synthetic flags")
}

func main() {
	// setup logger
	cmdName := filepath.Base(os.Args[0])
	prefix := fmt.Sprintf("%s: ", cmdName)
	log.SetPrefix(prefix)
	log.SetFlags(0)
	xlog.SetPrefix(prefix)

	// initialize flags
	pflag.CommandLine = pflag.NewFlagSet(cmdName, pflag.ExitOnError)
	pflag.SetInterspersed(true)
	pflag.Usage = func() { usage(os.Stderr); os.Exit(1) }
	var (
		help      = pflag.BoolP("help", "h", false, "")
		pack      = pflag.BoolP("pack", "p", false, "")
		unpack    = pflag.BoolP("unpack", "u", false, "")
		test      = pflag.BoolP("test", "t", false, "")
		info      = pflag.BoolP("info", "i", false, "")
		verbose   = pflag.BoolP("verbose", "v", false, "")
		force     = pflag.BoolP("force", "f", false, "")
		keep      = pflag.BoolP("keep", "k", false, "")
		synthetic = pflag.IntP("synthetic", "n", -1, "")
		sequence  = pflag.StringP("sequence", "q", "constant", "")
	)
	pflag.Parse()

	if *help {
		usage(os.Stdout)
		os.Exit(0)
	}
	m, err := selectMode(*pack, *unpack, *test, *info, *synthetic >= 0)
	if err != nil {
		log.Print(err)
		usage(os.Stderr)
		os.Exit(1)
	}

	if *verbose {
		xlog.SetFlags(xlog.Lverbose)
	}
	cfg := lzw.Config{Logger: xlog.Default()}
	if *verbose {
		cfg.Flags |= lzw.Verbose
	}
	if *keep {
		cfg.Flags |= lzw.KeepOnError
	}
	if *force {
		cfg.Flags |= lzw.Overwrite
	}

	args := pflag.Args()
	switch m {
	case modePack, modeUnpack:
		if len(args) != 2 {
			log.Fatal("INPUT and OUTPUT required; for help, type lzwgo -h")
		}
		if m == modePack {
			err = packFile(cfg, args[0], args[1])
		} else {
			err = unpackFile(cfg, args[0], args[1])
		}
	case modeTest:
		if len(args) != 1 {
			log.Fatal("INPUT required; for help, type lzwgo -h")
		}
		err = testFile(cfg, args[0])
	case modeInfo:
		if len(args) == 0 {
			log.Fatal("FILE required; for help, type lzwgo -h")
		}
		err = printInfo(os.Stdout, args)
	case modeSynthetic:
		var seq synth.Sequence
		if seq, err = synth.ParseSequence(*sequence); err != nil {
			log.Fatal(err)
		}
		n := *synthetic
		if n == 0 {
			n = defaultSynthetic
		}
		err = syntheticTest(cfg, n, seq)
	}
	if err != nil {
		os.Exit(1)
	}
}
