// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package cpuinst

import (
	"bytes"
	"crypto/sha256"
	"syscall"
	"testing"

	"github.com/mainframe-crypto/zecc/curve"
)

func TestSignVerifyEscalate(t *testing.T) {
	if Available() {
		t.Skip("running on s390x; generic-stub escalation path not exercised")
	}
	hash := sha256.Sum256([]byte("sample"))
	priv := make([]byte, 32)
	priv[31] = 1
	if _, _, err := Sign(curve.P256, priv, hash[:], nil); err != syscall.EINVAL {
		t.Errorf("Sign: got %v, want EINVAL", err)
	}
	if err := Verify(curve.P256, priv, priv, hash[:], priv, priv); err != syscall.EINVAL {
		t.Errorf("Verify: got %v, want EINVAL", err)
	}
}

func TestSignEscalatesForEdwards(t *testing.T) {
	if Available() {
		t.Skip("running on s390x")
	}
	// Ed25519 scalar multiplication is CPU-capable but EdDSA signing is
	// not exposed through this path at all, regardless of platform.
	priv := make([]byte, 32)
	if _, _, err := Sign(curve.Ed25519, priv, priv, nil); err != syscall.EINVAL {
		t.Errorf("got %v, want EINVAL", err)
	}
}

func TestPackHashTruncation(t *testing.T) {
	slot := make([]byte, 32)
	hash := bytes.Repeat([]byte{0xAB}, 48)
	packHash(slot, hash)
	want := hash[:32]
	if !bytes.Equal(slot, want) {
		t.Errorf("packHash long = % x, want % x", slot, want)
	}

	slot2 := make([]byte, 32)
	short := bytes.Repeat([]byte{0xCD}, 20)
	packHash(slot2, short)
	if !bytes.Equal(slot2[:12], make([]byte, 12)) {
		t.Errorf("packHash short: leading bytes not zero: % x", slot2[:12])
	}
	if !bytes.Equal(slot2[12:], short) {
		t.Errorf("packHash short tail = % x, want % x", slot2[12:], short)
	}
}
