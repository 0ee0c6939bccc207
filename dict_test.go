// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import "testing"

func TestDictInsertLookup(t *testing.T) {
	d := newDict()
	tests := []struct {
		prev uint32
		c    byte
		code uint32
	}{
		{'a', 'b', 256},
		{'b', 'a', 257},
		{256, 'a', 258},
		{lastCode, 0xff, lastCode},
	}
	for _, tc := range tests {
		key := dictKey(tc.prev, tc.c)
		if _, ok := d.lookup(key); ok {
			t.Fatalf("lookup(%#x) found key before insert", key)
		}
		d.insert(key, tc.code)
	}
	for _, tc := range tests {
		key := dictKey(tc.prev, tc.c)
		code, ok := d.lookup(key)
		if !ok {
			t.Fatalf("lookup(%#x) didn't find key", key)
		}
		if code != tc.code {
			t.Errorf("lookup(%#x) returned %d; want %d",
				key, code, tc.code)
		}
	}
	d.clear()
	for _, tc := range tests {
		key := dictKey(tc.prev, tc.c)
		if _, ok := d.lookup(key); ok {
			t.Errorf("lookup(%#x) found key after clear", key)
		}
	}
}

func TestDictCollisions(t *testing.T) {
	d := newDict()
	// collect keys starting their probe sequence at the same slot
	var keys []uint32
	h0 := hashKey(dictKey(300, 7))
	for prev := uint32(firstCode); prev <= lastCode; prev++ {
		for c := 0; c < 256; c++ {
			key := dictKey(prev, byte(c))
			if hashKey(key) == h0 {
				keys = append(keys, key)
			}
		}
	}
	if len(keys) < 3 {
		t.Fatalf("found only %d colliding keys", len(keys))
	}
	if len(keys) > 100 {
		keys = keys[:100]
	}
	for i, key := range keys {
		d.insert(key, uint32(firstCode+i))
	}
	for i, key := range keys {
		code, ok := d.lookup(key)
		if !ok || code != uint32(firstCode+i) {
			t.Fatalf("lookup(%#x) returned %d, %t; want %d, true",
				key, code, ok, firstCode+i)
		}
	}
}

func TestDictFull(t *testing.T) {
	d := newDict()
	code := uint32(firstCode)
	for prev := uint32(0); code <= lastCode; prev++ {
		for c := 0; c < 256 && code <= lastCode; c += 17 {
			d.insert(dictKey(prev, byte(c)), code)
			code++
		}
	}
	// all probe sequences must still end at an empty slot
	if _, ok := d.lookup(dictKey(lastCode, 1)); ok {
		t.Fatalf("lookup found key that was never inserted")
	}
	code, ok := d.lookup(dictKey(0, 17))
	if !ok || code != firstCode+1 {
		t.Fatalf("lookup returned %d, %t; want %d, true",
			code, ok, firstCode+1)
	}
}
