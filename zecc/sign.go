// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package zecc

import (
	"io"
	"syscall"

	"github.com/mainframe-crypto/zecc/coproc"
	"github.com/mainframe-crypto/zecc/curve"
	"github.com/mainframe-crypto/zecc/cpuinst"
	"github.com/mainframe-crypto/zecc/internal/swfallback"
)

// ECDSASign signs an already-hashed digest on a Weierstrass curve,
// escalating CPU instruction -> coprocessor -> software. rng nil
// requests ordinary (instruction- or library-internal) randomness; a
// caller-supplied rng requests deterministic signing (spec.md §4.2/§9).
// The coprocessor backend has no deterministic mode, so a non-nil rng
// skips straight from the CPU tier to software if the CPU tier declines.
func ECDSASign(id curve.ID, priv, x, y, hash []byte, rng io.Reader) (r, s []byte, err error) {
	info, err := lookupCurve(id)
	if err != nil {
		return nil, nil, err
	}
	if !info.ECDSACapable {
		return nil, nil, syscall.EINVAL
	}
	caps := GetCapabilities()

	var resR, resS []byte
	cpuFn := func() error {
		rr, ss, e := cpuinst.Sign(id, priv, hash, rng)
		if e != nil {
			return e
		}
		resR, resS = rr, ss
		return nil
	}
	var coprocFn func() error
	if rng == nil {
		coprocFn = func() error {
			rr, ss, e := coproc.Sign(info, hash, priv, x, y)
			if e != nil {
				return e
			}
			resR, resS = rr, ss
			return nil
		}
	}
	swFn := func() error {
		rr, ss, e := swfallback.Sign(id, info, priv, hash, rng)
		if e != nil {
			return e
		}
		resR, resS = rr, ss
		return nil
	}
	if err := dispatch(false, caps, cpuFn, coprocFn, swFn); err != nil {
		return nil, nil, err
	}
	return resR, resS, nil
}

// ECDSAVerify checks a signature over an already-hashed digest on a
// Weierstrass curve.
func ECDSAVerify(id curve.ID, pubX, pubY, hash, r, s []byte) error {
	info, err := lookupCurve(id)
	if err != nil {
		return err
	}
	if !info.ECDSACapable {
		return syscall.EINVAL
	}

	cpuFn := func() error { return cpuinst.Verify(id, pubX, pubY, hash, r, s) }
	coprocFn := func() error {
		if e := coproc.Verify(info, hash, r, s, pubX, pubY); e != nil {
			if e == coproc.ErrSignatureInvalid {
				return syscall.EFAULT
			}
			return e
		}
		return nil
	}
	swFn := func() error { return swfallback.Verify(id, pubX, pubY, hash, r, s) }
	return dispatch(false, GetCapabilities(), cpuFn, coprocFn, swFn)
}
