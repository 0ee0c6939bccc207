// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xlog

import (
	"bytes"
	"log"
	"os"
	"testing"
)

func TestNilLogger(t *testing.T) {
	var l Logger
	Print(l, "nothing")
	Printf(l, "nothing %d", 1)
	Println(l, "nothing")
}

func TestPrintf(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&buf, "", 0)
	Printf(l, "ratio %.2f%%", 12.5)
	if got, want := buf.String(), "ratio 12.50%\n"; got != want {
		t.Fatalf("Printf wrote %q; want %q", got, want)
	}
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	std.SetOutput(&buf)
	defer std.SetOutput(os.Stderr)
	defer SetFlags(0)

	tests := []struct {
		flags int
		want  string
	}{
		{0, "warn\n"},
		{Lverbose, "info\nwarn\n"},
		{Lquiet, ""},
		{Lquiet | Lverbose, ""},
	}
	for _, tc := range tests {
		buf.Reset()
		SetFlags(tc.flags)
		Info("info")
		Warnf("%s", "warn")
		if got := buf.String(); got != tc.want {
			t.Errorf("flags %d: output %q; want %q", tc.flags, got,
				tc.want)
		}
	}
}
