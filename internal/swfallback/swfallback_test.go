// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package swfallback

import (
	"crypto/rand"
	"crypto/sha256"
	"testing"

	"github.com/mainframe-crypto/zecc/curve"
)

func TestWeierstrassSignVerifyRoundtrip(t *testing.T) {
	info := curve.MustLookup(curve.P256)
	d, x, y, err := KeyGen(curve.P256, info, rand.Reader)
	if err != nil {
		t.Fatalf("KeyGen: %v", err)
	}
	hash := sha256.Sum256([]byte("hello"))
	r, s, err := Sign(curve.P256, info, d, hash[:], nil)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if err := Verify(curve.P256, x, y, hash[:], r, s); err != nil {
		t.Errorf("Verify: %v", err)
	}
}

func TestWeierstrassECDHRoundtrip(t *testing.T) {
	info := curve.MustLookup(curve.P256)
	dA, xA, yA, err := KeyGen(curve.P256, info, rand.Reader)
	if err != nil {
		t.Fatalf("KeyGen A: %v", err)
	}
	dB, xB, yB, err := KeyGen(curve.P256, info, rand.Reader)
	if err != nil {
		t.Fatalf("KeyGen B: %v", err)
	}
	secretA, err := ECDH(curve.P256, info, dA, xB, yB)
	if err != nil {
		t.Fatalf("ECDH A: %v", err)
	}
	secretB, err := ECDH(curve.P256, info, dB, xA, yA)
	if err != nil {
		t.Fatalf("ECDH B: %v", err)
	}
	if string(secretA) != string(secretB) {
		t.Error("shared secrets disagree")
	}
}

func TestEdwardsSignVerifyRoundtrip(t *testing.T) {
	seed, pub, err := EdwardsKeyGen(curve.Ed25519, rand.Reader)
	if err != nil {
		t.Fatalf("EdwardsKeyGen: %v", err)
	}
	msg := []byte("message")
	sig, err := EdwardsSign(curve.Ed25519, seed, msg)
	if err != nil {
		t.Fatalf("EdwardsSign: %v", err)
	}
	if err := EdwardsVerify(curve.Ed25519, pub, msg, sig); err != nil {
		t.Errorf("EdwardsVerify: %v", err)
	}
}

func TestMontgomeryScalarMultX25519(t *testing.T) {
	privA, pubA, err := MontgomeryKeyGen(curve.X25519, rand.Reader)
	if err != nil {
		t.Fatalf("MontgomeryKeyGen A: %v", err)
	}
	privB, pubB, err := MontgomeryKeyGen(curve.X25519, rand.Reader)
	if err != nil {
		t.Fatalf("MontgomeryKeyGen B: %v", err)
	}
	secretA, err := MontgomeryScalarMult(curve.X25519, pubB, privA)
	if err != nil {
		t.Fatalf("MontgomeryScalarMult A: %v", err)
	}
	secretB, err := MontgomeryScalarMult(curve.X25519, pubA, privB)
	if err != nil {
		t.Fatalf("MontgomeryScalarMult B: %v", err)
	}
	if string(secretA) != string(secretB) {
		t.Error("X25519 shared secrets disagree")
	}
}
