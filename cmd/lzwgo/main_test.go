// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulikunitz/lzw"
	"github.com/ulikunitz/lzw/xlog"
)

func init() {
	xlog.SetFlags(xlog.Lquiet)
}

func TestSelectMode(t *testing.T) {
	tests := []struct {
		flags [5]bool
		m     mode
		fail  bool
	}{
		{flags: [5]bool{true}, m: modePack},
		{flags: [5]bool{false, true}, m: modeUnpack},
		{flags: [5]bool{false, false, true}, m: modeTest},
		{flags: [5]bool{false, false, false, true}, m: modeInfo},
		{flags: [5]bool{false, false, false, false, true},
			m: modeSynthetic},
		{fail: true},
		{flags: [5]bool{true, true}, fail: true},
		{flags: [5]bool{true, false, true}, fail: true},
	}
	for _, tc := range tests {
		f := tc.flags
		m, err := selectMode(f[0], f[1], f[2], f[3], f[4])
		if tc.fail {
			if err == nil {
				t.Errorf("selectMode%v returned no error", f)
			}
			continue
		}
		if err != nil {
			t.Errorf("selectMode%v error %s", f, err)
			continue
		}
		if m != tc.m {
			t.Errorf("selectMode%v returned %d; want %d", f, m, tc.m)
		}
	}
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("os.WriteFile error %s", err)
	}
}

func TestCompareFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	c := filepath.Join(dir, "c")
	writeFile(t, a, []byte("fingerprint"))
	writeFile(t, b, []byte("fingerprint"))
	writeFile(t, c, []byte("fingerprinT"))

	var buf bytes.Buffer
	if err := compareFiles(&buf, a, b); err != nil {
		t.Fatalf("compareFiles(a, b) error %s", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("compareFiles printed %d lines; want 2", len(lines))
	}
	if strings.Fields(lines[0])[0] != strings.Fields(lines[1])[0] {
		t.Fatalf("fingerprints differ for equal files:\n%s", buf.String())
	}

	buf.Reset()
	if err := compareFiles(&buf, a, c); !errors.Is(err, errMismatch) {
		t.Fatalf("compareFiles(a, c) returned %v; want %v", err,
			errMismatch)
	}
}

func TestTestFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	writeFile(t, in, bytes.Repeat([]byte("round trip "), 3000))
	if err := testFile(lzw.Config{}, in); err != nil {
		t.Fatalf("testFile error %s", err)
	}
}

func TestPrintInfo(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	writeFile(t, in, []byte("0123456789"))
	if err := lzw.Compress(in, in+".lzw", 0); err != nil {
		t.Fatalf("lzw.Compress error %s", err)
	}
	var buf bytes.Buffer
	if err := printInfo(&buf, []string{in + ".lzw"}); err != nil {
		t.Fatalf("printInfo error %s", err)
	}
	s := buf.String()
	if !strings.Contains(s, "12-bit codes, 10 bytes uncompressed") {
		t.Fatalf("printInfo output %q misses header summary", s)
	}
	if !strings.Contains(s, "Size:") {
		t.Fatalf("printInfo output %q misses header dump", s)
	}

	if err := printInfo(&buf, []string{in}); err == nil {
		t.Fatalf("printInfo of uncompressed file returned no error")
	}
}
