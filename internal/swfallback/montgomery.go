// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package swfallback

import (
	"crypto/ecdh"
	"fmt"
	"io"

	circlX448 "github.com/cloudflare/circl/dh/x448"

	"github.com/mainframe-crypto/zecc/curve"
)

// MontgomeryScalarMult performs the X25519/X448 scalar multiplication.
// X25519 goes through the standard library; X448 has no standard-library
// support, so it goes through circl.
func MontgomeryScalarMult(id curve.ID, u, scalar []byte) ([]byte, error) {
	switch id {
	case curve.X25519:
		priv, err := ecdh.X25519().NewPrivateKey(scalar)
		if err != nil {
			return nil, err
		}
		pub, err := ecdh.X25519().NewPublicKey(u)
		if err != nil {
			return nil, err
		}
		return priv.ECDH(pub)
	case curve.X448:
		var k, uu, out circlX448.Key
		copy(k[:], scalar)
		copy(uu[:], u)
		ok := circlX448.Shared(&out, &k, &uu)
		if !ok {
			return nil, fmt.Errorf("swfallback: X448 produced a low-order point")
		}
		return out[:], nil
	default:
		return nil, fmt.Errorf("swfallback: %s is not a Montgomery curve", id)
	}
}

// MontgomeryKeyGen draws a fresh Montgomery scalar/public-point pair.
func MontgomeryKeyGen(id curve.ID, rng io.Reader) (priv, pub []byte, err error) {
	switch id {
	case curve.X25519:
		k, err := ecdh.X25519().GenerateKey(rng)
		if err != nil {
			return nil, nil, err
		}
		return k.Bytes(), k.PublicKey().Bytes(), nil
	case curve.X448:
		var k, pk circlX448.Key
		if _, err := io.ReadFull(rng, k[:]); err != nil {
			return nil, nil, err
		}
		circlX448.KeyGen(&pk, &k)
		return k[:], pk[:], nil
	default:
		return nil, nil, fmt.Errorf("swfallback: %s is not a Montgomery curve", id)
	}
}
