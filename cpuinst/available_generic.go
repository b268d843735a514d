//go:build !s390x

// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package cpuinst

// Available is always false off s390x: there is no PCC/KDSA to issue, so
// every exported entry point in this package returns EINVAL immediately,
// which is exactly the sentinel spec.md §4.1/§4.4 defines for "this
// backend cannot handle it" and lets the dispatcher escalate to the
// coprocessor or software path without special-casing platform at all.
func Available() bool { return false }
