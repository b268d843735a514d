// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package zecc

import (
	"syscall"

	"github.com/mainframe-crypto/zecc/curve"
	"github.com/mainframe-crypto/zecc/cpuinst"
	"github.com/mainframe-crypto/zecc/internal/swfallback"
)

// montgomeryBaseU returns the little-endian base-point u-coordinate RFC
// 7748 defines: 9 for X25519, 5 for X448. curve.Info stores base points
// big-endian for the Weierstrass/Edwards tables, so Montgomery needs its
// own tiny literal here rather than reusing info.BaseX.
func montgomeryBaseU(id curve.ID, privLen int) []byte {
	u := make([]byte, privLen)
	switch id {
	case curve.X25519:
		u[0] = 9
	case curve.X448:
		u[0] = 5
	}
	return u
}

// MontgomeryDerivePub derives an X25519/X448 public u-coordinate from a
// clamped or unclamped scalar (clamping happens inside the scalar-mult
// call itself, per spec.md §4.1), escalating CPU instruction to
// software. There is no coprocessor tier.
func MontgomeryDerivePub(id curve.ID, scalar []byte) ([]byte, error) {
	info, err := lookupCurve(id)
	if err != nil {
		return nil, err
	}
	if info.Family != curve.FamilyMontgomery {
		return nil, syscall.EINVAL
	}
	base := montgomeryBaseU(id, info.PrivLen)

	var pub []byte
	cpuFn := func() error {
		u, e := cpuinst.MontgomeryScalarMult(id, base, scalar)
		if e != nil {
			return e
		}
		pub = u
		return nil
	}
	swFn := func() error {
		u, e := swfallback.MontgomeryScalarMult(id, base, scalar)
		if e != nil {
			return e
		}
		pub = u
		return nil
	}
	if err := dispatchNoCoproc(GetCapabilities(), cpuFn, swFn); err != nil {
		return nil, err
	}
	return pub, nil
}
