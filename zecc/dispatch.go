// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package zecc

import (
	"errors"
	"syscall"

	"github.com/mainframe-crypto/zecc/curve"
)

// tryBackend runs fn, records its call/error stats, and reports whether
// the caller should escalate to the next backend. Escalation happens
// exactly on syscall.EINVAL (spec.md §4.4's sentinel: "unsupported here,
// try the next tier"); any other error is terminal and is returned
// as-is.
func tryBackend(b Backend, fn func() error) (escalate bool, err error) {
	recordCall(b)
	err = fn()
	if err == nil {
		return false, nil
	}
	recordError(b)
	if errors.Is(err, syscall.EINVAL) {
		getLogger().Debug("ecc: backend declined operation, escalating")
		return true, err
	}
	return false, err
}

// dispatch implements spec.md §4.4's escalation for the operations that
// have a coprocessor tier (ECDH, ECDSA sign/verify, ECKeyGen):
//
//  1. The CPU-instruction path is tried when MSA9Switch is set AND
//     either ICAOffloadEnabled is NOT set, or this is a keygen (keygen
//     always tries CPU first regardless of the offload-forcing flag).
//     Any non-EINVAL outcome returns immediately.
//  2. ECCViaOnlineCard's ENODEV gate (spec.md §4.4 step 2) is a hard
//     policy stop only once MSA9Switch has put the CPU tier in play:
//     on real mainframe hardware, a false ECCViaOnlineCard is a
//     deliberate "deny the coprocessor" decision that must not be
//     silently masked by falling through to software. When MSA9Switch
//     itself is unset there is no mainframe hardware path being
//     withheld in the first place, so control proceeds to whichever
//     of coprocessor/software is actually available — this is what
//     lets the library run its own test suite, and any embedder,
//     off s390x.
//  3/4. Otherwise the coprocessor tier runs; its own failures
//     (including adapter-not-loaded) surface as whatever it returns.
//
// coprocFn is nil for curve families the coprocessor key-token layout
// cannot represent (Montgomery, Edwards); in that case the coprocessor
// tier is skipped and control always reaches software.
func dispatch(isKeygen bool, caps Capabilities, cpu, coprocFn, sw func() error) error {
	if caps.FIPSRequired {
		return syscall.EACCES
	}

	tryCPU := caps.MSA9Switch && (!caps.ICAOffloadEnabled || isKeygen)
	if tryCPU && cpu != nil {
		if esc, err := tryBackend(BackendCPU, cpu); !esc {
			return err
		}
	}

	if tryCPU && !caps.ECCViaOnlineCard {
		return syscall.ENODEV
	}
	if caps.ECCViaOnlineCard && coprocFn != nil {
		if esc, err := tryBackend(BackendCoprocessor, coprocFn); !esc {
			return err
		}
	}

	if sw == nil {
		return syscall.EINVAL
	}
	_, err := tryBackend(BackendSoftware, sw)
	return err
}

// dispatchNoCoproc is for the operations spec.md §4.4 never names
// (Edwards/Montgomery public-key derivation): CPU instruction straight
// to software, no policy-driven ENODEV step, because there is no
// coprocessor tier for these families to gate.
func dispatchNoCoproc(caps Capabilities, cpu, sw func() error) error {
	if caps.FIPSRequired {
		return syscall.EACCES
	}
	if caps.MSA9Switch && cpu != nil {
		if esc, err := tryBackend(BackendCPU, cpu); !esc {
			return err
		}
	}
	if sw == nil {
		return syscall.EINVAL
	}
	_, err := tryBackend(BackendSoftware, sw)
	return err
}

func lookupCurve(id curve.ID) (curve.Info, error) {
	info, ok := curve.Lookup(id)
	if !ok {
		return curve.Info{}, syscall.EINVAL
	}
	return info, nil
}
