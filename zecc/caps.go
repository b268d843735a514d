// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

// Package zecc is the top-level dispatcher of the mainframe EC crypto
// stack: it escalates every operation across the CPU-instruction,
// coprocessor, and software-fallback backends per spec.md §4.4, and
// exposes the curve-level operations (ECDH, ECDSA sign/verify, key
// generation, Edwards/Montgomery public-key derivation) embedders call.
package zecc

import "sync/atomic"

// Capabilities gates which backends the dispatcher is allowed to try,
// set once at process start by the embedder (spec.md §4.4/§7). A zero
// value disables every hardware path and forces pure software.
type Capabilities struct {
	// MSA9Switch mirrors the embedder's msa9_switch policy knob: whether
	// the CPU-instruction (PCC/KDSA) path may be tried at all.
	MSA9Switch bool
	// ECCViaOnlineCard mirrors ecc_via_online_card: whether the
	// coprocessor (ioctl) path may be tried. When false and MSA9Switch
	// put the CPU tier in play (spec.md §4.4 step 2), the operation
	// fails with ENODEV rather than falling back further; with
	// MSA9Switch also false there is no hardware tier being withheld,
	// so the coprocessor tier is simply skipped in favor of software.
	ECCViaOnlineCard bool
	// ICAOffloadEnabled mirrors ica_offload_enabled: force the
	// coprocessor tier even when the CPU instruction could serve the
	// request (spec.md §2). Key generation is exempt and always tries
	// CPU first, since PCC has no on-card RNG-backed keygen mode to
	// prefer it over.
	ICAOffloadEnabled bool
	// FIPSRequired is the embedder's FIPS-mode gate: when set, every
	// hardware and software backend is denied and the operation fails
	// with EACCES before any backend runs (spec.md §7: policy-denied).
	FIPSRequired bool
}

var current atomic.Value

func init() {
	current.Store(Capabilities{MSA9Switch: true, ECCViaOnlineCard: true, ICAOffloadEnabled: false})
}

// SetCapabilities installs the process-wide capability flags. Safe to
// call concurrently with in-flight operations; takes effect for
// operations started after the call returns.
func SetCapabilities(c Capabilities) { current.Store(c) }

// GetCapabilities returns the currently installed capability flags.
func GetCapabilities() Capabilities { return current.Load().(Capabilities) }
