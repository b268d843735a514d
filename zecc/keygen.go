// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package zecc

import (
	"io"
	"syscall"

	"github.com/mainframe-crypto/zecc/coproc"
	"github.com/mainframe-crypto/zecc/curve"
	"github.com/mainframe-crypto/zecc/cpuinst"
	"github.com/mainframe-crypto/zecc/eckey"
	"github.com/mainframe-crypto/zecc/internal/swfallback"
)

// ECKeyGen generates a fresh private/public key pair on a Weierstrass
// curve. The CPU-instruction tier draws the scalar in Go (PCC has no key
// generation mode of its own) and uses a PCC base-point multiplication
// to derive the public point; the coprocessor tier uses the hardware's
// own RNG end to end; software is the stdlib elliptic.GenerateKey path.
func ECKeyGen(id curve.ID, rng io.Reader) (d, x, y []byte, err error) {
	info, err := lookupCurve(id)
	if err != nil {
		return nil, nil, nil, err
	}
	if info.Family != curve.FamilyWeierstrass {
		return nil, nil, nil, syscall.EINVAL
	}

	var resD, resX, resY []byte
	cpuFn := func() error {
		scalar, e := drawWeierstrassScalar(info, rng)
		if e != nil {
			return e
		}
		px, py, e := cpuinst.ScalarMult(id, info.BaseX, info.BaseY, scalar, true)
		if e != nil {
			return e
		}
		resD, resX, resY = scalar, px, py
		return nil
	}
	coprocFn := func() error {
		tok, e := coproc.Keygen(info)
		if e != nil {
			return e
		}
		resD, resX, resY = tok.D, tok.X, tok.Y
		return nil
	}
	swFn := func() error {
		dd, xx, yy, e := swfallback.KeyGen(id, info, rng)
		if e != nil {
			return e
		}
		resD, resX, resY = dd, xx, yy
		return nil
	}

	var coprocDispatch func() error
	if rng == nil {
		coprocDispatch = coprocFn
	}
	if err := dispatch(true, GetCapabilities(), cpuFn, coprocDispatch, swFn); err != nil {
		return nil, nil, nil, err
	}

	rec := &eckey.Key{Curve: id, D: resD, X: resX, Y: resY}
	if err := rec.Validate(); err != nil {
		rec.Scrub()
		return nil, nil, nil, err
	}
	return resD, resX, resY, nil
}
