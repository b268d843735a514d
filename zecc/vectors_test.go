// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package zecc

import (
	"bytes"
	"crypto/elliptic"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"math/big"
	"syscall"
	"testing"

	"github.com/mainframe-crypto/zecc/coproc"
	"github.com/mainframe-crypto/zecc/curve"
)

func mustHexBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex literal %q: %v", s, err)
	}
	return b
}

// scenario 1: X25519 RFC 7748 test vector.
func TestVectorX25519RFC7748(t *testing.T) {
	softwareOnly(t)
	scalar := mustHexBytes(t, "a546e36bf0527c9d3b16154b82465edd62144c0ac1fc5a18506a2244ba449ac4")
	u := mustHexBytes(t, "e6db6867583030db3594c1a424b15f7c726624ec26b3353b10a903a6d0ab1c4c")
	want := mustHexBytes(t, "c3da55379de9c6908e94ea4df28d084f32eccf03491c71f754b4075577a28552")

	got, err := ECDH(curve.X25519, scalar, nil, nil, u, nil)
	if err != nil {
		t.Fatalf("ECDH: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("ECDH output = %x, want %x", got, want)
	}
}

// scenario 2: Ed25519 public-key derivation.
func TestVectorEd25519DerivePub(t *testing.T) {
	softwareOnly(t)
	seed := mustHexBytes(t, "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60")
	want := mustHexBytes(t, "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a")

	got, err := EdwardsDerivePub(curve.Ed25519, seed)
	if err != nil {
		t.Fatalf("EdwardsDerivePub: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("EdwardsDerivePub output = %x, want %x", got, want)
	}
}

// scenario 3: P-256 ECDSA determinism, verify, and bit-flip detection.
// spec.md §8 names the private key and the message but identifies the
// expected signature only by reference to "the RFC 6979 vector" without
// giving its literal bytes, so this checks the properties spec.md
// actually specifies in terms of bytes: signing twice with the same
// deterministic randomness stream yields byte-identical (r, s), the
// result verifies, and flipping a bit of r makes verification fail with
// EFAULT.
func TestVectorP256DeterministicSignVerify(t *testing.T) {
	softwareOnly(t)
	d := mustHexBytes(t, "C9AFA9D845BA75166B5C215767B1D6934E50C3DB36E89B127B8A622B120F6721")
	hash := sha256.Sum256([]byte("sample"))

	c := elliptic.P256()
	px, py := c.ScalarBaseMult(d)
	x := padBig(px, 32)
	y := padBig(py, 32)

	seed := bytes.Repeat([]byte{0x42}, 64)
	r1, s1, err := ECDSASign(curve.P256, d, x, y, hash[:], bytes.NewReader(seed))
	if err != nil {
		t.Fatalf("ECDSASign (1st): %v", err)
	}
	r2, s2, err := ECDSASign(curve.P256, d, x, y, hash[:], bytes.NewReader(seed))
	if err != nil {
		t.Fatalf("ECDSASign (2nd): %v", err)
	}
	if !bytes.Equal(r1, r2) || !bytes.Equal(s1, s2) {
		t.Fatalf("deterministic signatures differ: (%x,%x) vs (%x,%x)", r1, s1, r2, s2)
	}

	if err := ECDSAVerify(curve.P256, x, y, hash[:], r1, s1); err != nil {
		t.Fatalf("ECDSAVerify: %v", err)
	}

	flipped := append([]byte(nil), r1...)
	flipped[0] ^= 1 << 3
	err = ECDSAVerify(curve.P256, x, y, hash[:], flipped, s1)
	if !errors.Is(err, syscall.EFAULT) {
		t.Errorf("ECDSAVerify with flipped bit = %v, want EFAULT", err)
	}
}

func padBig(v *big.Int, n int) []byte {
	b := v.Bytes()
	if len(b) == n {
		return b
	}
	out := make([]byte, n)
	copy(out[n-len(b):], b)
	return out
}

// scenario 4: P-521 base-point padding. Scalar-multiplying the base
// point by 1 must return the base point itself, and the catalog's stored
// base-point coordinates must be exactly 66 bytes with the leading
// 0x00 byte preserved.
func TestVectorP521BasePointScalarOne(t *testing.T) {
	info := curve.MustLookup(curve.P521)
	scalar := make([]byte, info.PrivLen)
	scalar[len(scalar)-1] = 1

	c := elliptic.P521()
	x, y := c.ScalarBaseMult(scalar)
	gotX := padBig(x, info.PrivLen)
	gotY := padBig(y, info.PrivLen)

	if !bytes.Equal(gotX, info.BaseX) {
		t.Errorf("scalar-mult by 1 X = %x, want base point X %x", gotX, info.BaseX)
	}
	if !bytes.Equal(gotY, info.BaseY) {
		t.Errorf("scalar-mult by 1 Y = %x, want base point Y %x", gotY, info.BaseY)
	}
	if len(info.BaseX) != 66 || info.BaseX[0] != 0x00 {
		t.Errorf("P-521 BaseX is not a 66-byte buffer with a preserved leading zero: %x", info.BaseX)
	}
	if len(info.BaseY) != 66 {
		t.Errorf("P-521 BaseY length = %d, want 66", len(info.BaseY))
	}
}

// scenario 5: coprocessor reply length mismatch surfaces as EIO.
func TestVectorCoprocessorSignReplyLengthMismatch(t *testing.T) {
	info := curve.MustLookup(curve.P256)
	// vud_len - 8 must equal 2*privlen (64); claim only 63 bytes of
	// signature follow, which is a wrong vud_len and one byte short of a
	// 64-byte signature, so the mismatch is caught before any out-of-
	// bounds read.
	rplParm := make([]byte, 8+63)
	badVudLen := uint32(8 + 63)
	rplParm[0] = byte(badVudLen >> 24)
	rplParm[1] = byte(badVudLen >> 16)
	rplParm[2] = byte(badVudLen >> 8)
	rplParm[3] = byte(badVudLen)

	_, _, err := coproc.ParseSignReply(info, rplParm)
	if !errors.Is(err, syscall.EIO) {
		t.Errorf("ParseSignReply on length mismatch = %v, want EIO", err)
	}
}

// scenario 6: dispatcher escalation then policy-driven ENODEV.
func TestVectorDispatcherEscalationThenENODEV(t *testing.T) {
	coprocCalled := false
	cpu := func() error { return syscall.EINVAL } // curve unsupported on CPU path
	coprocFn := func() error { coprocCalled = true; return syscall.EIO }

	caps := Capabilities{MSA9Switch: true, ECCViaOnlineCard: true, ICAOffloadEnabled: false}
	if err := dispatch(false, caps, cpu, coprocFn, nil); err != syscall.EIO {
		t.Fatalf("dispatch with coprocessor available = %v, want EIO", err)
	}
	if !coprocCalled {
		t.Error("coprocessor path was not attempted after CPU declined with EINVAL")
	}

	coprocCalled = false
	caps.ECCViaOnlineCard = false
	if err := dispatch(false, caps, cpu, coprocFn, nil); err != syscall.ENODEV {
		t.Fatalf("dispatch with ecc_via_online_card disabled = %v, want ENODEV", err)
	}
	if coprocCalled {
		t.Error("coprocessor path must not run once ecc_via_online_card is disabled")
	}
}
