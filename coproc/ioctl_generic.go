// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build !linux

package coproc

import "syscall"

// DevicePath exists on every platform for API parity; it has no effect
// off Linux, where there is no zcrypt device to open.
var DevicePath = "/dev/z90crypt"

// sendCPRB always fails off Linux: the zcrypt ioctl transport is a Linux
// (s390 zcrypt driver) concept. Callers reach this only if a capability
// flag was misconfigured to claim coprocessor availability on a platform
// that cannot possibly have one, which is itself an EIO-worthy condition.
func sendCPRB(rb *RequestBuffer) error {
	return syscall.EIO
}
