// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package zecc

import (
	"crypto/sha512"
	"syscall"

	"golang.org/x/crypto/sha3"

	"github.com/mainframe-crypto/zecc/curve"
	"github.com/mainframe-crypto/zecc/cpuinst"
	"github.com/mainframe-crypto/zecc/internal/endian"
	"github.com/mainframe-crypto/zecc/internal/swfallback"
)

// edwardsScalarAndPrefix hashes a seed down to the clamped scalar PCC
// expects, per spec.md §4.5: SHA-512 for Ed25519, SHAKE-256 for Ed448.
func edwardsScalarAndPrefix(id curve.ID, seed []byte) (scalar []byte, err error) {
	switch id {
	case curve.Ed25519:
		h := sha512.Sum512(seed)
		a := append([]byte(nil), h[:32]...)
		a[0] &= 248
		a[31] = (a[31] & 127) | 64
		return a, nil
	case curve.Ed448:
		h := make([]byte, 114)
		sha3.ShakeSum256(h, seed)
		a := append([]byte(nil), h[:57]...)
		a[0] &= 252
		a[55] |= 128
		a[56] = 0
		return a, nil
	default:
		return nil, syscall.EINVAL
	}
}

// encodePoint compresses an Edwards point into the RFC 8032 wire format:
// the Y coordinate little-endian, with the X coordinate's parity folded
// into the top bit of the final byte.
func encodePoint(x, y []byte) []byte {
	out := append([]byte(nil), y...)
	endian.Reverse(out)
	if x[len(x)-1]&1 == 1 {
		out[len(out)-1] |= 0x80
	} else {
		out[len(out)-1] &= 0x7f
	}
	return out
}

// EdwardsDerivePub derives an Ed25519/Ed448 public key from a seed,
// escalating CPU instruction (clamp, PCC base-point multiply, compress)
// to software (cloudflare/circl). There is no coprocessor tier: the key
// token layout has no Edwards curve_type.
func EdwardsDerivePub(id curve.ID, seed []byte) ([]byte, error) {
	info, err := lookupCurve(id)
	if err != nil {
		return nil, err
	}
	if info.Family != curve.FamilyEdwards {
		return nil, syscall.EINVAL
	}

	var pub []byte
	cpuFn := func() error {
		scalar, e := edwardsScalarAndPrefix(id, seed)
		if e != nil {
			return e
		}
		// edwardsScalarAndPrefix returns the clamped scalar little-endian
		// (RFC 8032 convention); cpuinst.ScalarMult's Weierstrass/Edwards
		// variant expects big-endian input with no flip of its own, unlike
		// the Montgomery variant. Pad into a zero-filled MaxSlot buffer
		// with the meaningful bytes at the low end, then reverse in place
		// (spec.md §4.5 step 3).
		beScalar := make([]byte, info.MaxSlot)
		copy(beScalar, scalar)
		endian.Reverse(beScalar)
		x, y, e := cpuinst.ScalarMult(id, info.BaseX, info.BaseY, beScalar, true)
		if e != nil {
			return e
		}
		pub = encodePoint(x, y)
		return nil
	}
	swFn := func() error {
		p, e := swfallback.EdwardsDerivePub(id, seed)
		if e != nil {
			return e
		}
		pub = p
		return nil
	}
	if err := dispatchNoCoproc(GetCapabilities(), cpuFn, swFn); err != nil {
		return nil, err
	}
	return pub, nil
}

// EdwardsSign signs message with an Ed25519/Ed448 seed. There is no
// CPU-instruction or coprocessor EdDSA path (KDSA only exposes ECDSA
// function codes); this always runs in software.
func EdwardsSign(id curve.ID, seed, message []byte) ([]byte, error) {
	info, err := lookupCurve(id)
	if err != nil {
		return nil, err
	}
	if info.Family != curve.FamilyEdwards {
		return nil, syscall.EINVAL
	}
	return swfallback.EdwardsSign(id, seed, message)
}

// EdwardsVerify checks an Ed25519/Ed448 signature. Always software, for
// the same reason as EdwardsSign.
func EdwardsVerify(id curve.ID, pub, message, sig []byte) error {
	info, err := lookupCurve(id)
	if err != nil {
		return err
	}
	if info.Family != curve.FamilyEdwards {
		return syscall.EINVAL
	}
	return swfallback.EdwardsVerify(id, pub, message, sig)
}
