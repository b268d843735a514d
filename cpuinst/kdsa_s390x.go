//go:build s390x

// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package cpuinst

// kdsaInvoke issues the KDSA (Compute Digital Signature Authentication)
// instruction. The asm trampoline lives in kdsa_s390x.s.
//
//go:noescape
func kdsaAsm(funcCode byte, block *byte) int32

func kdsaInvoke(funcCode byte, block []byte) int32 {
	if len(block) == 0 {
		return int32(1)
	}
	return kdsaAsm(funcCode, &block[0])
}
