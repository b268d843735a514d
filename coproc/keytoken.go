// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package coproc

import (
	"encoding/binary"
	"fmt"

	"github.com/mainframe-crypto/zecc/curve"
)

// Key token section tags (spec.md §4.3/§GLOSSARY).
const (
	tagTokenHdr = 0x1E
	tagPrivSec  = 0x20
	tagPubSec   = 0x21
)

// Key-usage and format bytes of the private-key section.
const (
	keyUsageECDH   = 0xC0
	keyUsageECDSA  = 0x80
	keyFormatPlain = 0x40
)

// curveType values carried in the private-key section. The coprocessor
// firmware this library targets only ever speaks Weierstrass prime
// curves (spec.md §4.3 never names an Edwards or Montgomery field in the
// key token layout); Ed25519/Ed448/X25519/X448 stay on the CPU-instruction
// or software-fallback paths and never reach this package.
const curveTypeWeierstrass = 0x01

// compressFlagUncompressed marks an uncompressed public point.
const compressFlagUncompressed = 0x04

// NullKeyToken is the 2-byte null-key sentinel used to pad ECDH requests
// (spec.md §4.3: "00 44").
var NullKeyToken = []byte{0x00, 0x44}

// ECCNullToken is the 5-byte empty-ECC-key-section sentinel used to
// terminate an ECC-keygen request (spec.md §4.3: "00 05 | 00 10 | 00").
var ECCNullToken = []byte{0x00, 0x05, 0x00, 0x10, 0x00}

const (
	tokenHdrLen = 4 // tag(1) + len(2) + version(1)
	// privSec: tag(1) + seclen(2) + key_usage(1) + key_format(1) +
	// curve_type(1) + priv_p_bitlen(2) + adata_len(2) + adata_usage(1) +
	// privlen_field(2)
	privSecFixedLen = 13
	// pubSec: tag(1) + seclen(2) + compress_flag(1) + pub_q_bytelen(2)
	pubSecFixedLen = 6
)

// BuildPrivateToken serializes the private-key token of spec.md §4.3: a
// token header, a private-key section carrying D with its mirrored
// associated-data usage flag (Open Question (c): privsec.key_usage and
// adata.usage_flag always agree), and a public-key section carrying
// (X, Y).
func BuildPrivateToken(info curve.Info, ecdsa bool, d, x, y []byte) ([]byte, error) {
	if info.Family != curve.FamilyWeierstrass {
		return nil, fmt.Errorf("coproc: curve %s has no coprocessor key token", info.ID)
	}
	if len(d) != info.PrivLen || len(x) != info.PrivLen || len(y) != info.PrivLen {
		return nil, fmt.Errorf("coproc: private token field length mismatch for %s", info.ID)
	}
	usage := byte(keyUsageECDH)
	if ecdsa {
		usage = keyUsageECDSA
	}

	privSecLen := privSecFixedLen + len(d)
	pubSecLen := pubSecFixedLen + 2*info.PrivLen
	total := tokenHdrLen + privSecLen + pubSecLen

	buf := make([]byte, total)
	off := writeTokenHdr(buf, total)

	off = writeUint8(buf, off, tagPrivSec)
	off = writeUint16(buf, off, uint16(privSecLen))
	off = writeUint8(buf, off, usage)
	off = writeUint8(buf, off, keyFormatPlain)
	off = writeUint8(buf, off, curveTypeWeierstrass)
	off = writeUint16(buf, off, uint16(info.BitLen))
	off = writeUint16(buf, off, 3) // adata section length: usage byte only
	off = writeUint8(buf, off, usage)
	off = writeUint16(buf, off, uint16(len(d)))
	off += copy(buf[off:], d)

	off = writeUint8(buf, off, tagPubSec)
	off = writeUint16(buf, off, uint16(pubSecLen))
	off = writeUint8(buf, off, compressFlagUncompressed)
	off = writeUint16(buf, off, uint16(2*info.PrivLen+1))
	off += copy(buf[off:], x)
	off += copy(buf[off:], y)

	return buf, nil
}

// BuildPublicToken serializes a public-key-only token of spec.md §4.3,
// used as party B's key in ECDH requests and as the verification key in
// ECDSA-verify requests.
func BuildPublicToken(info curve.Info, x, y []byte) ([]byte, error) {
	if info.Family != curve.FamilyWeierstrass {
		return nil, fmt.Errorf("coproc: curve %s has no coprocessor key token", info.ID)
	}
	if len(x) != info.PrivLen || len(y) != info.PrivLen {
		return nil, fmt.Errorf("coproc: public token field length mismatch for %s", info.ID)
	}
	pubSecLen := pubSecFixedLen + 2*info.PrivLen
	total := tokenHdrLen + pubSecLen

	buf := make([]byte, total)
	off := writeTokenHdr(buf, total)
	off = writeUint8(buf, off, tagPubSec)
	off = writeUint16(buf, off, uint16(pubSecLen))
	off = writeUint8(buf, off, compressFlagUncompressed)
	off = writeUint16(buf, off, uint16(2*info.PrivLen+1))
	off += copy(buf[off:], x)
	off += copy(buf[off:], y)
	return buf, nil
}

// BuildSkeletonToken serializes the empty private-key token spec.md §4.3
// sends as the ECC-keygen request's key block: header plus a private-key
// section naming the curve and bit length but carrying no scalar.
func BuildSkeletonToken(info curve.Info) ([]byte, error) {
	if info.Family != curve.FamilyWeierstrass {
		return nil, fmt.Errorf("coproc: curve %s has no coprocessor key token", info.ID)
	}
	privSecLen := privSecFixedLen
	total := tokenHdrLen + privSecLen

	buf := make([]byte, total)
	off := writeTokenHdr(buf, total)
	off = writeUint8(buf, off, tagPrivSec)
	off = writeUint16(buf, off, uint16(privSecLen))
	off = writeUint8(buf, off, keyUsageECDH|keyUsageECDSA)
	off = writeUint8(buf, off, keyFormatPlain)
	off = writeUint8(buf, off, curveTypeWeierstrass)
	off = writeUint16(buf, off, uint16(info.BitLen))
	off = writeUint16(buf, off, 3)
	off = writeUint8(buf, off, keyUsageECDH|keyUsageECDSA)
	off = writeUint16(buf, off, 0)
	_ = off
	return buf, nil
}

func writeTokenHdr(buf []byte, total int) int {
	off := writeUint8(buf, 0, tagTokenHdr)
	off = writeUint16(buf, off, uint16(total))
	off = writeUint8(buf, off, 0x00) // version
	return off
}

func writeUint8(buf []byte, off int, v byte) int {
	buf[off] = v
	return off + 1
}

func writeUint16(buf []byte, off int, v uint16) int {
	binary.BigEndian.PutUint16(buf[off:off+2], v)
	return off + 2
}

// ParsedPrivateToken is a decoded private-key token's payload.
type ParsedPrivateToken struct {
	D, X, Y []byte
}

// ParsePrivateToken decodes a token built by BuildPrivateToken, used when
// reading an ECC-keygen reply (spec.md §4.3).
func ParsePrivateToken(b []byte, info curve.Info) (*ParsedPrivateToken, error) {
	if len(b) < tokenHdrLen+privSecFixedLen {
		return nil, fmt.Errorf("coproc: reply key token too short (%d bytes)", len(b))
	}
	if b[0] != tagTokenHdr {
		return nil, fmt.Errorf("coproc: reply key token missing header tag")
	}
	privOff := tokenHdrLen
	if b[privOff] != tagPrivSec {
		return nil, fmt.Errorf("coproc: reply key token missing private section")
	}
	privSecLen := int(binary.BigEndian.Uint16(b[privOff+1 : privOff+3]))
	dLenOff := privOff + 11
	if dLenOff+2 > len(b) {
		return nil, fmt.Errorf("coproc: reply private section truncated")
	}
	dLen := int(binary.BigEndian.Uint16(b[dLenOff : dLenOff+2]))
	if dLen != info.PrivLen {
		return nil, fmt.Errorf("coproc: reply private scalar length %d, want %d", dLen, info.PrivLen)
	}
	dOff := dLenOff + 2
	if dOff+dLen > len(b) {
		return nil, fmt.Errorf("coproc: reply private scalar truncated")
	}
	d := append([]byte(nil), b[dOff:dOff+dLen]...)

	pubOff := privOff + privSecLen
	if pubOff+pubSecFixedLen > len(b) {
		return nil, fmt.Errorf("coproc: reply missing public section")
	}
	if b[pubOff] != tagPubSec {
		return nil, fmt.Errorf("coproc: reply public section tag mismatch")
	}
	compressFlag := b[pubOff+3]
	if compressFlag != compressFlagUncompressed {
		return nil, fmt.Errorf("coproc: reply public key compressed, want uncompressed")
	}
	xOff := pubOff + pubSecFixedLen
	if xOff+2*info.PrivLen > len(b) {
		return nil, fmt.Errorf("coproc: reply public point truncated")
	}
	x := append([]byte(nil), b[xOff:xOff+info.PrivLen]...)
	y := append([]byte(nil), b[xOff+info.PrivLen:xOff+2*info.PrivLen]...)

	return &ParsedPrivateToken{D: d, X: x, Y: y}, nil
}
