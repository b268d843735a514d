// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package zecc

import (
	"crypto/rand"
	"io"

	"github.com/cronokirby/saferith"
	"github.com/holiman/uint256"

	"github.com/mainframe-crypto/zecc/curve"
)

// scalarInRange reports whether 0 < d < order, dispatching to
// holiman/uint256 for the curves whose order fits in 256 bits and to
// cronokirby/saferith for the wider ones (P-384, P-521). Neither path
// does constant-time secret-dependent branching beyond what the
// underlying library already provides; this check runs once per
// generated key, not per bit of a secret operation.
func scalarInRange(d, order []byte) bool {
	if len(d) <= 32 && len(order) <= 32 {
		n := new(uint256.Int).SetBytes(d)
		o := new(uint256.Int).SetBytes(order)
		return !n.IsZero() && n.Lt(o)
	}
	n := new(saferith.Nat).SetBytes(d)
	o := new(saferith.Nat).SetBytes(order)
	if n.EqZero() == 1 {
		return false
	}
	_, _, lt := n.Cmp(o)
	return lt == 1
}

// drawWeierstrassScalar draws a uniformly random PrivLen-byte scalar in
// [1, order) from rng (crypto/rand if nil), retrying on an out-of-range
// draw exactly as spec.md §4.6's software keygen path requires.
func drawWeierstrassScalar(info curve.Info, rng io.Reader) ([]byte, error) {
	if rng == nil {
		rng = rand.Reader
	}
	buf := make([]byte, info.PrivLen)
	for {
		if _, err := io.ReadFull(rng, buf); err != nil {
			return nil, err
		}
		if scalarInRange(buf, info.Order) {
			return append([]byte(nil), buf...), nil
		}
	}
}
