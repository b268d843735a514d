// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build linux

package coproc

import (
	"os"
	"sync"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// DevicePath is the crypto coprocessor char device this library talks to.
// Overridable for tests.
var DevicePath = "/dev/z90crypt"

// zsecsendcprbIoctl is the ZSECSENDCPRB ioctl request code, as defined by
// the s390 zcrypt driver's userspace ABI.
const zsecsendcprbIoctl = 0xC0105A06

// icaXCRB mirrors the zcrypt ica_xcRB descriptor handed to the
// ZSECSENDCPRB ioctl: lengths and pointers to the request and reply
// CPRBX buffers. Pointer fields are plain uint64 rather than
// unsafe.Pointer so the struct has a fixed, explicit, non-GC-visible
// layout; the backing buffers are kept alive by the caller for the
// duration of the syscall.
type icaXCRB struct {
	AgentID            uint16
	UserDefined        uint32
	Reserved1          uint16
	RequestLen         uint32
	RequestAddr        uint64
	Reserved2          uint32
	RequestControlLen  uint32
	Reserved3          uint32
	ReplyLen           uint32
	ReplyAddr          uint64
	Reserved4          uint32
	ReplyControlLen    uint32
	Reserved5          uint32
	Status             uint32
}

const (
	agentIDCA     = 0x4341 // "CA"
	userDefinedAS = 0xFFFF // AUTOSELECT
)

var (
	fdOnce sync.Once
	fd     int
	fdErr  error
)

func openDevice() (int, error) {
	fdOnce.Do(func() {
		f, err := os.OpenFile(DevicePath, os.O_RDWR, 0)
		if err != nil {
			fdErr = err
			return
		}
		fd = int(f.Fd())
	})
	return fd, fdErr
}

// sendCPRB drives the ioctl transport described in spec.md §4.3/§4.4: open
// the coprocessor device, build the ica_xcRB descriptor, issue
// ZSECSENDCPRB. ENODEV is reserved for the dispatcher's own
// ecc_via_online_card policy check (spec.md §4.4 step 2) and is never
// returned from here; a device node that is missing despite the policy
// wanting the coprocessor is the "adapter not loaded" case (§4.4 step 3)
// and surfaces as EIO, same as any other open or ioctl failure.
// Permission failures are EACCES.
func sendCPRB(rb *RequestBuffer) error {
	f, err := openDevice()
	if err != nil {
		if os.IsPermission(err) {
			return syscall.EACCES
		}
		return syscall.EIO
	}

	req := rb.ReqCPRB()
	reqParm := rb.ReqParm()
	rpl := rb.RplCPRB()
	rplParm := rb.RplParm()

	desc := icaXCRB{
		AgentID:           agentIDCA,
		UserDefined:       userDefinedAS,
		RequestLen:        uint32(len(req) + len(reqParm)),
		RequestAddr:       uint64(uintptr(unsafe.Pointer(&req[0]))),
		RequestControlLen: uint32(len(req)),
		ReplyLen:          uint32(len(rpl) + len(rplParm)),
		ReplyAddr:         uint64(uintptr(unsafe.Pointer(&rpl[0]))),
		ReplyControlLen:   uint32(len(rpl)),
	}

	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(f), uintptr(zsecsendcprbIoctl), uintptr(unsafe.Pointer(&desc)))
	if errno != 0 {
		return syscall.EIO
	}
	return nil
}
