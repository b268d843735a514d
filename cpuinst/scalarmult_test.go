// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package cpuinst

import (
	"bytes"
	"syscall"
	"testing"

	"github.com/mainframe-crypto/zecc/curve"
)

// TestScalarMultEscalates exercises spec.md §4.1's EINVAL sentinel: off
// s390x there is no PCC to issue, so every curve must escalate rather
// than report a hardware failure.
func TestScalarMultEscalates(t *testing.T) {
	if Available() {
		t.Skip("running on s390x; generic-stub escalation path not exercised")
	}
	for _, id := range []curve.ID{curve.P256, curve.P384, curve.P521, curve.Ed25519, curve.Ed448} {
		info := curve.MustLookup(id)
		x := make([]byte, info.PrivLen)
		y := make([]byte, info.PrivLen)
		d := make([]byte, info.PrivLen)
		d[len(d)-1] = 1
		_, _, err := ScalarMult(id, x, y, d, true)
		if err != syscall.EINVAL {
			t.Errorf("%v: got err %v, want EINVAL", id, err)
		}
	}
}

func TestMontgomeryScalarMultEscalates(t *testing.T) {
	if Available() {
		t.Skip("running on s390x; generic-stub escalation path not exercised")
	}
	for _, id := range []curve.ID{curve.X25519, curve.X448} {
		info := curve.MustLookup(id)
		u := make([]byte, info.PrivLen)
		d := make([]byte, info.PrivLen)
		_, err := MontgomeryScalarMult(id, u, d)
		if err != syscall.EINVAL {
			t.Errorf("%v: got err %v, want EINVAL", id, err)
		}
	}
}

func TestRightAlignPadding(t *testing.T) {
	dst := make([]byte, 8)
	src := []byte{0x01, 0x02, 0x03}
	rightAlign(dst, src)
	want := []byte{0, 0, 0, 0, 0, 0x01, 0x02, 0x03}
	if !bytes.Equal(dst, want) {
		t.Errorf("rightAlign = % x, want % x", dst, want)
	}
}

func TestClampX25519(t *testing.T) {
	scalar := bytes.Repeat([]byte{0xff}, 32)
	u := bytes.Repeat([]byte{0xff}, 32)
	clampX25519(scalar, u)
	if scalar[0]&^248 != 0 {
		t.Errorf("scalar[0] = %#x, low 3 bits must be clear", scalar[0])
	}
	if scalar[31]&0xc0 != 0x40 {
		t.Errorf("scalar[31] = %#x, want top two bits 01", scalar[31])
	}
	if u[31]&0x80 != 0 {
		t.Errorf("u[31] = %#x, high bit must be masked", u[31])
	}
}

func TestClampX448(t *testing.T) {
	scalar := bytes.Repeat([]byte{0xff}, 56)
	clampX448(scalar)
	if scalar[0]&^252 != 0 {
		t.Errorf("scalar[0] = %#x, low 2 bits must be clear", scalar[0])
	}
	if scalar[55]&0x80 == 0 {
		t.Errorf("scalar[55] = %#x, top bit must be set", scalar[55])
	}
}
