// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

// Package zeroize scrubs buffers that transited a private scalar, a
// shared secret, or deterministic-signature randomness. spec.md §5 and §9
// require this to survive compiler optimization, so Bytes is written to
// defeat dead-store elimination rather than to read cleanly.
package zeroize

import "runtime"

// Bytes overwrites every byte of b with zero. The per-byte volatile-style
// write plus the trailing runtime.KeepAlive prevent the compiler from
// proving the store is dead and eliding it, which a plain `for i := range
// b { b[i] = 0 }` loop is not guaranteed to survive under escape analysis
// and inlining.
func Bytes(b []byte) {
	if len(b) == 0 {
		return
	}
	for i := range b {
		b[i] = 0
		runtime.KeepAlive(b)
	}
}

// Many zeroizes every slice in bs, in order. Used where a parameter block
// or reply buffer carries several secret-bearing slots.
func Many(bs ...[]byte) {
	for _, b := range bs {
		Bytes(b)
	}
}
