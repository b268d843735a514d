// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package swfallback

import (
	"crypto/ed25519"
	"fmt"
	"io"
	"syscall"

	circlEd448 "github.com/cloudflare/circl/sign/ed448"

	"github.com/mainframe-crypto/zecc/curve"
)

// EdwardsSign produces a pure-EdDSA signature (not a hash-prehash
// variant) over message, using the standard library for Ed25519 and
// circl for Ed448 (the standard library has no Ed448 support).
func EdwardsSign(id curve.ID, priv, message []byte) ([]byte, error) {
	switch id {
	case curve.Ed25519:
		if len(priv) != ed25519.SeedSize {
			return nil, fmt.Errorf("swfallback: Ed25519 seed must be %d bytes", ed25519.SeedSize)
		}
		key := ed25519.NewKeyFromSeed(priv)
		return ed25519.Sign(key, message), nil
	case curve.Ed448:
		key := circlEd448.NewKeyFromSeed(priv)
		return circlEd448.Sign(key, message, ""), nil
	default:
		return nil, fmt.Errorf("swfallback: %s is not an Edwards curve", id)
	}
}

// EdwardsVerify checks a pure-EdDSA signature.
func EdwardsVerify(id curve.ID, pub, message, sig []byte) error {
	switch id {
	case curve.Ed25519:
		if !ed25519.Verify(ed25519.PublicKey(pub), message, sig) {
			return syscall.EFAULT
		}
		return nil
	case curve.Ed448:
		if !circlEd448.Verify(circlEd448.PublicKey(pub), message, sig, "") {
			return syscall.EFAULT
		}
		return nil
	default:
		return fmt.Errorf("swfallback: %s is not an Edwards curve", id)
	}
}

// EdwardsKeyGen draws a fresh Edwards seed/public-key pair.
func EdwardsKeyGen(id curve.ID, rng io.Reader) (seed, pub []byte, err error) {
	switch id {
	case curve.Ed25519:
		p, s, err := ed25519.GenerateKey(rng)
		if err != nil {
			return nil, nil, err
		}
		return s.Seed(), p, nil
	case curve.Ed448:
		p, s, err := circlEd448.GenerateKey(rng)
		if err != nil {
			return nil, nil, err
		}
		return s.Seed(), []byte(p), nil
	default:
		return nil, nil, fmt.Errorf("swfallback: %s is not an Edwards curve", id)
	}
}

// EdwardsDerivePub recomputes the public key from a seed, for the
// derive-only path (spec.md §4.5) that never touches a signature.
func EdwardsDerivePub(id curve.ID, seed []byte) ([]byte, error) {
	switch id {
	case curve.Ed25519:
		key := ed25519.NewKeyFromSeed(seed)
		return []byte(key.Public().(ed25519.PublicKey)), nil
	case curve.Ed448:
		key := circlEd448.NewKeyFromSeed(seed)
		return []byte(key.Public().(circlEd448.PublicKey)), nil
	default:
		return nil, fmt.Errorf("swfallback: %s is not an Edwards curve", id)
	}
}
