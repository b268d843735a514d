//go:build !s390x

// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package cpuinst

// pccInvoke is unreachable on this build: every exported function checks
// Available() first. It exists so the package's packing/unpacking logic
// still compiles and its own tests can be written against this file.
func pccInvoke(funcCode byte, block []byte) int32 {
	return 1
}
