// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

// Package eckey implements the EC key record of spec.md §3: a
// (curve, D, X, Y) triple whose buffers are always exactly privlen(curve)
// bytes, zero-padded, and whose lifetime is owned by the enclosing
// operation.
package eckey

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/mainframe-crypto/zecc/curve"
	"github.com/mainframe-crypto/zecc/internal/zeroize"
)

// Key is the in-memory EC key record. D may be all-zero to mean "absent"
// (pure-public key); X, Y likewise for "not yet materialized".
type Key struct {
	Curve curve.ID
	D     []byte
	X     []byte
	Y     []byte
}

// New allocates a zeroed key record of the correct width for id.
func New(id curve.ID) *Key {
	n := curve.PrivLen(id)
	return &Key{
		Curve: id,
		D:     make([]byte, n),
		X:     make([]byte, n),
		Y:     make([]byte, n),
	}
}

// HasD reports whether the private scalar is present (non-zero).
func (k *Key) HasD() bool { return !isZero(k.D) }

// HasPublic reports whether (X, Y) are present (non-zero X).
func (k *Key) HasPublic() bool { return !isZero(k.X) }

func isZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// Validate checks that every buffer is exactly privlen(Curve) bytes, per
// the "coordinate buffers are always padded... to exactly privlen bytes"
// invariant, and, for curves whose order fits in 256 bits, that a
// present D lies in the valid scalar range. Wider curves (P-384, P-521,
// Ed448, X448) get no range check here, since ScalarInRange has no room
// to grow past uint256 without eckey taking on a bignum dependency this
// record type otherwise has no use for; zecc.scalarInRange checks
// P-384/P-521 scalars where the CPU key-generation tier draws them.
func (k *Key) Validate() error {
	info, ok := curve.Lookup(k.Curve)
	if !ok {
		return fmt.Errorf("eckey: unknown curve %v", k.Curve)
	}
	n := info.PrivLen
	if len(k.D) != n || len(k.X) != n || len(k.Y) != n {
		return fmt.Errorf("eckey: buffers for %v must be %d bytes, got D=%d X=%d Y=%d",
			k.Curve, n, len(k.D), len(k.X), len(k.Y))
	}
	if k.HasD() && n <= 32 {
		inRange, err := ScalarInRange(k.D, info.Order)
		if err != nil {
			return err
		}
		if !inRange {
			return fmt.Errorf("eckey: D for %v is out of range [1, order)", k.Curve)
		}
	}
	return nil
}

// PadLeft copies src into a new privlen-byte big-endian buffer, right
// aligned with leading zero padding. It is the library-wide implementation
// of "coordinates ... always occupy exactly privlen bytes with leading
// zeros" (spec.md §8).
func PadLeft(src []byte, privlen int) ([]byte, error) {
	if len(src) > privlen {
		return nil, fmt.Errorf("eckey: value is %d bytes, exceeds privlen %d", len(src), privlen)
	}
	out := make([]byte, privlen)
	copy(out[privlen-len(src):], src)
	return out, nil
}

// Scrub zeroizes the private scalar. Callers that are done with a key
// record but still need the public coordinates call this instead of
// discarding the whole record.
func (k *Key) Scrub() {
	zeroize.Bytes(k.D)
}

// ScalarInRange reports whether D interpreted as a big-endian unsigned
// integer satisfies 0 < D < order, using the fixed-width uint256
// comparator for curves whose scalars fit in 256 bits (P-256, Ed25519,
// X25519) and falling back to the caller for wider curves (see
// zecc.scalarInRange, which uses saferith for P-384/P-521).
func ScalarInRange(d []byte, order []byte) (bool, error) {
	if len(d) > 32 || len(order) > 32 {
		return false, fmt.Errorf("eckey: ScalarInRange only supports curves with <=256-bit scalars")
	}
	dv := new(uint256.Int).SetBytes(d)
	ov := new(uint256.Int).SetBytes(order)
	return !dv.IsZero() && dv.Lt(ov), nil
}
