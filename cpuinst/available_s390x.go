//go:build s390x

// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package cpuinst

// Available reports whether this binary was built for a platform that can
// issue PCC/KDSA at all. It does not check MSA 9 facility bits at
// runtime — that is the embedder's job via the msa9_switch capability
// flag (spec.md §2) — it only distinguishes "built for s390x" from
// "built for anything else", which is the axis this package's own build
// tags control.
func Available() bool { return true }
