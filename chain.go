// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

// unassigned marks a code without chain entry.
const unassigned = 0xffff

// chain stores the strings of the dictionary codes for the decoder. The
// string of a code is the string of its prefix code followed by its
// suffix byte. Entries are registered in the same order the encoder
// inserts them into its dictionary, so no hash table is needed.
type chain struct {
	prefix [maxCodes]uint16
	suffix [maxCodes]byte
}

// newChain creates a chain table without any assigned codes.
func newChain() *chain {
	t := new(chain)
	t.reset()
	return t
}

// reset marks all codes as unassigned.
func (t *chain) reset() {
	for i := range t.prefix {
		t.prefix[i] = unassigned
	}
}

// assigned reports whether the code has a chain entry or is a literal.
func (t *chain) assigned(code uint16) bool {
	return code < firstCode || t.prefix[code] != unassigned
}

// add registers the string of prefix code followed by byte c under code.
func (t *chain) add(code, prefix uint16, c byte) {
	t.prefix[code] = prefix
	t.suffix[code] = c
}

// first returns the first byte of the string for code.
func (t *chain) first(code uint16) byte {
	for code >= firstCode {
		code = t.prefix[code]
	}
	return byte(code)
}

// stack collects the bytes of a string in reverse order.
type stack struct {
	data [maxCodes + 1]byte
	n    int
}

// push puts c on top of the stack. The ok value is false if the stack is
// full.
func (s *stack) push(c byte) (ok bool) {
	if s.n == len(s.data) {
		return false
	}
	s.data[s.n] = c
	s.n++
	return true
}

// popAll writes the bytes of the stack into p starting with the top of
// the stack. The slice p must have space for all bytes. The stack is
// empty afterwards. It returns the number of bytes written.
func (s *stack) popAll(p []byte) int {
	n := s.n
	for i := 0; i < n; i++ {
		p[i] = s.data[n-1-i]
	}
	s.n = 0
	return n
}

// expand puts the string for code on the stack; the last byte first. A
// code that is not assigned yet must be the next code to be registered;
// its string is the string of old followed by the first byte of that
// string. The first byte of the string is returned.
func (t *chain) expand(s *stack, code, old uint16) (first byte, err error) {
	root := code
	if !t.assigned(code) {
		c := t.first(old)
		s.push(c)
		root = old
	}
	for root >= firstCode {
		if !s.push(t.suffix[root]) {
			return 0, newError("string exceeds stack")
		}
		root = t.prefix[root]
	}
	if !s.push(byte(root)) {
		return 0, newError("string exceeds stack")
	}
	return byte(root), nil
}
