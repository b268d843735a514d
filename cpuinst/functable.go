// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

// Package cpuinst is the CPU-instruction dispatcher: it packs per-curve
// parameter blocks, drives the PCC (scalar multiplication) and KDSA
// (ECDSA sign/verify) instructions, unpacks results, and zeroizes every
// secret-bearing slot before returning. Everything here is pure packing
// and unpacking logic; the one genuinely hardware-specific seam — issuing
// the instruction itself — lives behind a build tag in pcc_s390x.go /
// pcc_generic.go and kdsa_s390x.go / kdsa_generic.go, mirroring the
// teacher's own CPU/no-CPU split for accelerated code paths.
package cpuinst

import (
	"syscall"

	"github.com/mainframe-crypto/zecc/curve"
)

// deterministicBit is OR'd into a KDSA function code to request
// deterministic (caller-seeded) signing instead of instruction-internal
// randomness.
const deterministicBit = 0x80

// s390PCCWeierstrassEdwards indexes by curve.Info.FuncIndex for the
// Weierstrass curves (P-256, P-384, P-521); the Edwards curves share the
// same scalar-multiplication slot layout but take their function codes
// from s390PCCEdwards.
var s390PCCWeierstrassEdwards = []byte{
	0x40, // P-256   SCALAR_MULTIPLY_P256
	0x41, // P-384   SCALAR_MULTIPLY_P384
	0x42, // P-521   SCALAR_MULTIPLY_P521
}

var s390PCCEdwards = []byte{
	0x48, // Ed25519 SCALAR_MULTIPLY_ED25519
	0x49, // Ed448   SCALAR_MULTIPLY_ED448
}

// s390PCCMontgomery indexes by curve.Info.FuncIndex for X25519/X448.
var s390PCCMontgomery = []byte{
	0x50, // X25519  SCALAR_MULTIPLY_X25519
	0x51, // X448    SCALAR_MULTIPLY_X448
}

// s390KDSASign/Verify index by curve.Info.FuncIndex, Weierstrass curves
// only (spec.md §4.2: "Ed25519/Ed448 ECDSA is NOT supported on the CPU
// path here").
var s390KDSASign = []byte{
	0x20, // ECDSA_SIGN_P256
	0x21, // ECDSA_SIGN_P384
	0x22, // ECDSA_SIGN_P521
}

var s390KDSAVerify = []byte{
	0x28, // ECDSA_VERIFY_P256
	0x29, // ECDSA_VERIFY_P384
	0x2A, // ECDSA_VERIFY_P521
}

func pccFuncCode(info curve.Info) (byte, error) {
	switch info.Family {
	case curve.FamilyWeierstrass:
		if info.FuncIndex < 0 || info.FuncIndex >= len(s390PCCWeierstrassEdwards) {
			return 0, syscall.EINVAL
		}
		return s390PCCWeierstrassEdwards[info.FuncIndex], nil
	case curve.FamilyEdwards:
		if info.FuncIndex < 0 || info.FuncIndex >= len(s390PCCEdwards) {
			return 0, syscall.EINVAL
		}
		return s390PCCEdwards[info.FuncIndex], nil
	case curve.FamilyMontgomery:
		if info.FuncIndex < 0 || info.FuncIndex >= len(s390PCCMontgomery) {
			return 0, syscall.EINVAL
		}
		return s390PCCMontgomery[info.FuncIndex], nil
	default:
		return 0, syscall.EINVAL
	}
}

func kdsaFuncCode(info curve.Info, verify bool) (byte, error) {
	if !info.ECDSACapable {
		return 0, syscall.EINVAL
	}
	tbl := s390KDSASign
	if verify {
		tbl = s390KDSAVerify
	}
	if info.FuncIndex < 0 || info.FuncIndex >= len(tbl) {
		return 0, syscall.EINVAL
	}
	return tbl[info.FuncIndex], nil
}
