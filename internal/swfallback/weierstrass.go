// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

// Package swfallback is the last-resort backend of spec.md §4.4's
// dispatch chain: when neither the CPU instruction nor the coprocessor
// path is available, these adapters do the same operations in pure Go
// using the standard library and cloudflare/circl.
package swfallback

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"syscall"

	"github.com/mainframe-crypto/zecc/curve"
)

func weierstrassCurve(id curve.ID) (elliptic.Curve, error) {
	switch id {
	case curve.P256:
		return elliptic.P256(), nil
	case curve.P384:
		return elliptic.P384(), nil
	case curve.P521:
		return elliptic.P521(), nil
	default:
		return nil, fmt.Errorf("swfallback: %s is not a Weierstrass curve", id)
	}
}

func ecdhCurve(id curve.ID) (ecdh.Curve, error) {
	switch id {
	case curve.P256:
		return ecdh.P256(), nil
	case curve.P384:
		return ecdh.P384(), nil
	case curve.P521:
		return ecdh.P521(), nil
	default:
		return nil, fmt.Errorf("swfallback: %s is not a Weierstrass curve", id)
	}
}

// ECDH performs shared-secret derivation on a NIST prime curve.
func ECDH(id curve.ID, info curve.Info, priv, pubX, pubY []byte) ([]byte, error) {
	c, err := ecdhCurve(id)
	if err != nil {
		return nil, err
	}
	privKey, err := c.NewPrivateKey(padOrTrim(priv, info.PrivLen))
	if err != nil {
		return nil, err
	}
	pubBytes := append([]byte{0x04}, append(append([]byte(nil), pubX...), pubY...)...)
	pubKey, err := c.NewPublicKey(pubBytes)
	if err != nil {
		return nil, err
	}
	return privKey.ECDH(pubKey)
}

// Sign produces an ECDSA signature over an already-hashed digest. rng
// nil means crypto/rand; callers needing deterministic signatures (a
// caller-supplied rng) get a seeded reader handed straight through, as
// crypto/ecdsa.Sign draws all its randomness from the single io.Reader
// argument.
func Sign(id curve.ID, info curve.Info, priv, hash []byte, rng io.Reader) (r, s []byte, err error) {
	c, err := weierstrassCurve(id)
	if err != nil {
		return nil, nil, err
	}
	if rng == nil {
		rng = rand.Reader
	}
	d := new(big.Int).SetBytes(priv)
	pk := &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{Curve: c},
		D:         d,
	}
	pk.PublicKey.X, pk.PublicKey.Y = c.ScalarBaseMult(priv)

	rr, ss, err := ecdsa.Sign(rng, pk, hash)
	if err != nil {
		return nil, nil, err
	}
	return padOrTrim(rr.Bytes(), info.PrivLen), padOrTrim(ss.Bytes(), info.PrivLen), nil
}

// Verify checks an ECDSA signature over an already-hashed digest.
func Verify(id curve.ID, pubX, pubY, hash, r, s []byte) error {
	c, err := weierstrassCurve(id)
	if err != nil {
		return err
	}
	pub := &ecdsa.PublicKey{
		Curve: c,
		X:     new(big.Int).SetBytes(pubX),
		Y:     new(big.Int).SetBytes(pubY),
	}
	rr := new(big.Int).SetBytes(r)
	ss := new(big.Int).SetBytes(s)
	if !ecdsa.Verify(pub, hash, rr, ss) {
		return syscall.EFAULT
	}
	return nil
}

// KeyGen draws a fresh private/public key pair on a NIST prime curve.
func KeyGen(id curve.ID, info curve.Info, rng io.Reader) (d, x, y []byte, err error) {
	c, err := weierstrassCurve(id)
	if err != nil {
		return nil, nil, nil, err
	}
	if rng == nil {
		rng = rand.Reader
	}
	priv, pubX, pubY, err := elliptic.GenerateKey(c, rng)
	if err != nil {
		return nil, nil, nil, err
	}
	return padOrTrim(priv, info.PrivLen), padOrTrim(pubX.Bytes(), info.PrivLen), padOrTrim(pubY.Bytes(), info.PrivLen), nil
}

func padOrTrim(b []byte, n int) []byte {
	if len(b) == n {
		return b
	}
	out := make([]byte, n)
	if len(b) > n {
		copy(out, b[len(b)-n:])
		return out
	}
	copy(out[n-len(b):], b)
	return out
}
