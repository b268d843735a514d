//go:build !s390x

// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package cpuinst

// kdsaInvoke is unreachable on this build; see pcc_generic.go.
func kdsaInvoke(funcCode byte, block []byte) int32 {
	return 1
}
