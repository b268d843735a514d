// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

// Package curve is the curve catalog: the single table of per-curve
// constants every other package in zecc keys off of. Per-curve behaviour
// that is not a table value (clamping, seed hashing, base-point encoding,
// software library choice) is still selected by switching on the curve
// identifier in the packages that implement it.
package curve

import "fmt"

// ID is the opaque curve tag threaded through the whole library.
type ID int

const (
	P256 ID = iota
	P384
	P521
	Ed25519
	Ed448
	X25519
	X448
)

// Family groups curves by the scalar-multiplication variant they use on
// the CPU-instruction path (see cpuinst).
type Family int

const (
	FamilyWeierstrass Family = iota
	FamilyEdwards
	FamilyMontgomery
)

// Info is one row of the catalog.
type Info struct {
	ID ID

	// PrivLen is the canonical byte length of a private scalar, and of
	// every padded coordinate buffer, for this curve.
	PrivLen int

	Family Family

	// MaxSlot is the CPU-instruction parameter-block slot width for this
	// curve (32 for P-256/Ed25519/X25519, 48 for P-384, 80 for P-521, 64
	// for Ed448/X448).
	MaxSlot int

	// FuncIndex indexes into the cpuinst package's per-family function
	// code tables (s390_pcc_functions / s390_kdsa_functions in the
	// vendor's own naming).
	FuncIndex int

	// BaseX, BaseY are the curve's base (generator) point, stored
	// big-endian and padded to PrivLen bytes. For Montgomery curves BaseY
	// is empty; only the u-coordinate (BaseX) is meaningful.
	BaseX, BaseY []byte

	// Order is the order of the base point's subgroup, big-endian,
	// padded to PrivLen bytes.
	Order []byte

	// BitLen is the nominal bit length carried in coprocessor key-token
	// bit-length fields (PrivLen*8 for every curve except P-521, which
	// carries 521 per spec).
	BitLen int

	// ECDSACapable marks curves the CPU-instruction ECDSA path (KDSA)
	// supports. Ed25519/Ed448 scalar multiplication is supported on the
	// CPU path, but their EdDSA signing is not exposed through it here.
	ECDSACapable bool
}

func mustHex(s string) []byte {
	b := make([]byte, len(s)/2)
	for i := range b {
		var hi, lo byte
		hi = nibble(s[2*i])
		lo = nibble(s[2*i+1])
		b[i] = hi<<4 | lo
	}
	return b
}

func nibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		panic("curve: bad hex digit")
	}
}

var catalog = map[ID]Info{
	P256: {
		ID: P256, PrivLen: 32, Family: FamilyWeierstrass, MaxSlot: 32, FuncIndex: 0,
		BaseX: mustHex("6B17D1F2E12C4247F8BCE6E563A440F277037D812DEB33A0F4A13945D898C296"),
		BaseY: mustHex("4FE342E2FE1A7F9B8EE7EB4A7C0F9E162BCE33576B315ECECBB6406837BF51F5"),
		Order: mustHex("FFFFFFFF00000000FFFFFFFFFFFFFFFFBCE6FAADA7179E84F3B9CAC2FC632551"),
		BitLen: 256, ECDSACapable: true,
	},
	P384: {
		ID: P384, PrivLen: 48, Family: FamilyWeierstrass, MaxSlot: 48, FuncIndex: 1,
		BaseX: mustHex("AA87CA22BE8B05378EB1C71EF320AD746E1D3B628BA79B9859F741E082542A385502F25DBF55296C3A545E3872760AB7"),
		BaseY: mustHex("3617DE4A96262C6F5D9E98BF9292DC29F8F41DBD289A147CE9DA3113B5F0B8C00A60B1CE1D7E819D7A431D7C90EA0E5F"),
		Order: mustHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFC7634D81F4372DDF581A0DB248B0A77AECEC196ACCC52973"),
		BitLen: 384, ECDSACapable: true,
	},
	P521: {
		ID: P521, PrivLen: 66, Family: FamilyWeierstrass, MaxSlot: 80, FuncIndex: 2,
		BaseX: mustHex("00C6858E06B70404E9CD9E3ECB662395B4429C648139053FB521F828AF606B4D3DBAA14B5E77EFE75928FE1DC127A2FFA8DE3348B3C1856A429BF97E7E31C2E5BD66"),
		BaseY: mustHex("011839296A789A3BC0045C8A5FB42C7D1BD998F54449579B446817AFBD17273E662C97EE72995EF42640C550B9013FAD0761353C7086A272C24088BE94769FD16650"),
		Order: mustHex("01FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFA51868783BF2F966B7FCC0148F709A5D03BB5C9B8899C47AEBB6FB71E91386409"),
		BitLen: 521, ECDSACapable: true,
	},
	Ed25519: {
		ID: Ed25519, PrivLen: 32, Family: FamilyEdwards, MaxSlot: 32, FuncIndex: 0,
		BaseX: mustHex("216936D3CD6E53FEC0A4E231FDD6DC5C692CC7609525A7B2C9562D608F25D51A"),
		BaseY: mustHex("6666666666666666666666666666666666666666666666666666666666666658"),
		Order: mustHex("1000000000000000000000000000000014DEF9DEA2F79CD65812631A5CF5D3ED"),
		BitLen: 256, ECDSACapable: false,
	},
	Ed448: {
		ID: Ed448, PrivLen: 57, Family: FamilyEdwards, MaxSlot: 64, FuncIndex: 1,
		BaseX: mustHex("004F1970C66BED0DED221D15A622BF36DA9E146570470F1767EA6DE324A3D3A46412AE1AF72AB66511433B80E18B00938E2626A82BC70CC05E"),
		BaseY: mustHex("00693F46716EB6BC248876203756C9C7624BEA73736CA3984087789C1E05A0C2D73AD3FF1CE67C39C4FDBD132C4ED7C8AD9808795BF230FA14"),
		Order: mustHex("003FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF7CCA23E9C44EDB49AED63690216CC2728DC58F552378C292AB5844F3"),
		BitLen: 456, ECDSACapable: false,
	},
	X25519: {
		ID: X25519, PrivLen: 32, Family: FamilyMontgomery, MaxSlot: 32, FuncIndex: 0,
		BaseX: mustHex("0000000000000000000000000000000000000000000000000000000000000009"),
		Order: mustHex("1000000000000000000000000000000014DEF9DEA2F79CD65812631A5CF5D3ED"),
		BitLen: 256, ECDSACapable: false,
	},
	X448: {
		ID: X448, PrivLen: 56, Family: FamilyMontgomery, MaxSlot: 64, FuncIndex: 1,
		BaseX: mustHex("0000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000005"),
		Order: mustHex("3FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF7CCA23E9C44EDB49AED63690216CC2728DC58F552378C292AB5844F3"),
		BitLen: 448, ECDSACapable: false,
	},
}

// Lookup returns the catalog row for id.
func Lookup(id ID) (Info, bool) {
	info, ok := catalog[id]
	return info, ok
}

// MustLookup panics on an unknown id; used where the caller has already
// validated id came from the closed curve set.
func MustLookup(id ID) Info {
	info, ok := catalog[id]
	if !ok {
		panic(fmt.Sprintf("curve: unknown id %d", id))
	}
	return info
}

// PrivLen is a convenience accessor mirroring spec.md's `privlen(curve-id)`.
func PrivLen(id ID) int {
	return MustLookup(id).PrivLen
}

func (f Family) String() string {
	switch f {
	case FamilyWeierstrass:
		return "weierstrass"
	case FamilyEdwards:
		return "edwards"
	case FamilyMontgomery:
		return "montgomery"
	default:
		return "unknown"
	}
}

func (id ID) String() string {
	switch id {
	case P256:
		return "P-256"
	case P384:
		return "P-384"
	case P521:
		return "P-521"
	case Ed25519:
		return "Ed25519"
	case Ed448:
		return "Ed448"
	case X25519:
		return "X25519"
	case X448:
		return "X448"
	default:
		return fmt.Sprintf("curve(%d)", int(id))
	}
}
