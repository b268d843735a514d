// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package zecc

import (
	"syscall"

	"github.com/mainframe-crypto/zecc/coproc"
	"github.com/mainframe-crypto/zecc/curve"
	"github.com/mainframe-crypto/zecc/cpuinst"
	"github.com/mainframe-crypto/zecc/internal/swfallback"
)

// ECDH computes a shared secret on a Weierstrass or Montgomery curve,
// escalating CPU instruction -> coprocessor -> software per spec.md
// §4.4. privD/privX/privY are the caller's own key pair; peerX/peerY
// (peerX only, for Montgomery curves) are the other party's public
// point. The caller's own public coordinates are only consulted on the
// coprocessor tier, to build the private-key token spec.md §4.3 says
// must carry "(D, X, Y) of party A" — distinct from the public-key
// token carrying "(X, Y) of party B" built from peerX/peerY. Edwards
// curves (Ed25519/Ed448) have no ECDH operation; use
// EdwardsSign/EdwardsVerify on those instead.
func ECDH(id curve.ID, privD, privX, privY, peerX, peerY []byte) (secret []byte, err error) {
	info, err := lookupCurve(id)
	if err != nil {
		return nil, err
	}
	caps := GetCapabilities()

	switch info.Family {
	case curve.FamilyWeierstrass:
		var result []byte
		cpuFn := func() error {
			x, _, e := cpuinst.ScalarMult(id, peerX, peerY, privD, false)
			if e != nil {
				return e
			}
			result = x
			return nil
		}
		coprocFn := func() error {
			privA := &coproc.ParsedPrivateToken{D: privD, X: privX, Y: privY}
			s, e := coproc.ECDH(info, privA, peerX, peerY)
			if e != nil {
				return e
			}
			result = s
			return nil
		}
		swFn := func() error {
			s, e := swfallback.ECDH(id, info, privD, peerX, peerY)
			if e != nil {
				return e
			}
			result = s
			return nil
		}
		if err := dispatch(false, caps, cpuFn, coprocFn, swFn); err != nil {
			return nil, err
		}
		return result, nil

	case curve.FamilyMontgomery:
		var result []byte
		cpuFn := func() error {
			u, e := cpuinst.MontgomeryScalarMult(id, peerX, privD)
			if e != nil {
				return e
			}
			result = u
			return nil
		}
		swFn := func() error {
			u, e := swfallback.MontgomeryScalarMult(id, peerX, privD)
			if e != nil {
				return e
			}
			result = u
			return nil
		}
		// The coprocessor key-token layout has no Montgomery curve_type,
		// so there is no coprocessor tier for this family to gate, and
		// no own-public-key token to build.
		if err := dispatchNoCoproc(caps, cpuFn, swFn); err != nil {
			return nil, err
		}
		return result, nil

	default:
		return nil, syscall.EINVAL
	}
}
