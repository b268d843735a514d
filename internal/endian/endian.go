// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

// Package endian holds the handful of in-place byte-reversal helpers the
// Montgomery and Edwards paths need to flip between the wire's
// little-endian convention and the CPU instruction's big-endian one.
package endian

// Reverse flips b in place. Callers pass exactly the slice width they need
// reversed (32, 57 or 64 bytes in zecc); Reverse itself is width-agnostic.
func Reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// Reversed returns a reversed copy of b, leaving b untouched.
func Reversed(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
