// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

/* The encoder must find out whether the dictionary contains the string
 * of the current match extended by the next byte. The string is
 * identified by the code of the match and the byte, which gives a 20-bit
 * key. The keys are kept in an open addressing hash table with linear
 * probing.
 */

// Parameters of the hash table. There are never more than
// lastCode-firstCode+1 live entries, so the load factor stays below one
// half and every probe sequence reaches an empty slot.
const (
	dictSize = 8192
	dictMask = dictSize - 1
)

// emptySlot marks an unused slot. Its key part, 0xfffff, cannot be
// produced by dictKey because match codes never exceed lastCode.
const emptySlot = ^uint32(0)

// dict is the hash table of the encoder. Every slot stores the key in the
// upper 20 bits and the code in the lower 12 bits.
type dict struct {
	slots [dictSize]uint32
}

// newDict creates an empty dictionary.
func newDict() *dict {
	d := new(dict)
	d.clear()
	return d
}

// dictKey combines the code of a match and the next byte into a key.
func dictKey(code uint32, c byte) uint32 {
	return code<<8 | uint32(c)
}

// hashKey computes the start slot for the key.
func hashKey(key uint32) int {
	return int((key>>12)^key) & dictMask
}

// clear marks all slots of the table as empty.
func (d *dict) clear() {
	for i := range d.slots {
		d.slots[i] = emptySlot
	}
}

// lookup returns the code stored for the key. The ok return value is
// false if the key is not in the table.
func (d *dict) lookup(key uint32) (code uint32, ok bool) {
	for h := hashKey(key); ; h = (h + 1) & dictMask {
		s := d.slots[h]
		if s == emptySlot {
			return 0, false
		}
		if s>>codeBits == key {
			return s & (maxCodes - 1), true
		}
	}
}

// insert stores the key with the given code. The caller must ensure that
// the key is not already present.
func (d *dict) insert(key, code uint32) {
	h := hashKey(key)
	for d.slots[h] != emptySlot {
		h = (h + 1) & dictMask
	}
	d.slots[h] = key<<codeBits | code&(maxCodes-1)
}
