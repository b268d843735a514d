// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package cpuinst

import (
	"syscall"

	"github.com/mainframe-crypto/zecc/curve"
	"github.com/mainframe-crypto/zecc/internal/endian"
	"github.com/mainframe-crypto/zecc/internal/zeroize"
)

// weierstrassSlots is the slot layout of the PCC parameter block for the
// Weierstrass/Edwards scalar-multiplication variant (spec.md §4.1):
// {res_x, res_y, x, y, scalar}, each info.MaxSlot bytes wide.
type weierstrassSlots struct {
	buf  []byte
	slot int
}

// pccBlockSize is the full PCC parameter-block size: the defined slots
// followed by reserved scratch space the instruction writes into.
const pccBlockSize = 4096

func newWeierstrassSlots(slot int) *weierstrassSlots {
	return &weierstrassSlots{buf: make([]byte, pccBlockSize), slot: slot}
}

func (w *weierstrassSlots) resX() []byte  { return w.buf[0*w.slot : 1*w.slot] }
func (w *weierstrassSlots) resY() []byte  { return w.buf[1*w.slot : 2*w.slot] }
func (w *weierstrassSlots) x() []byte     { return w.buf[2*w.slot : 3*w.slot] }
func (w *weierstrassSlots) y() []byte     { return w.buf[3*w.slot : 4*w.slot] }
func (w *weierstrassSlots) scalar() []byte { return w.buf[4*w.slot : 5*w.slot] }

func rightAlign(dst, src []byte) {
	copy(dst[len(dst)-len(src):], src)
}

// ScalarMult implements the Weierstrass/Edwards variant of spec.md §4.1:
// right-aligned zero-padded inputs, a single PCC invocation, right-aligned
// tail extraction of the result, full scrub of the parameter block before
// return. wantY controls whether the Y output is also unpacked (Edwards
// base-point multiplication in zecc needs both coordinates; plain ECDH on
// a Weierstrass curve typically only needs X, but callers may always pass
// true for simplicity).
func ScalarMult(id curve.ID, x, y, scalar []byte, wantY bool) (resX, resY []byte, err error) {
	if !Available() {
		return nil, nil, syscall.EINVAL
	}
	info, ok := curve.Lookup(id)
	if !ok || (info.Family != curve.FamilyWeierstrass && info.Family != curve.FamilyEdwards) {
		return nil, nil, syscall.EINVAL
	}
	fc, err := pccFuncCode(info)
	if err != nil {
		return nil, nil, err
	}

	block := newWeierstrassSlots(info.MaxSlot)
	defer zeroize.Bytes(block.buf)

	rightAlign(block.x(), x)
	rightAlign(block.y(), y)
	rightAlign(block.scalar(), scalar)

	if rc := pccInvoke(fc, block.buf); rc != 0 {
		return nil, nil, syscall.EIO
	}

	resX = append([]byte(nil), block.resX()[info.MaxSlot-info.PrivLen:]...)
	if wantY {
		resY = append([]byte(nil), block.resY()[info.MaxSlot-info.PrivLen:]...)
	}
	return resX, resY, nil
}

// montgomerySlots is the {res_u, u, scalar} layout of spec.md §4.1's
// Montgomery variant. Each slot is 32 bytes (X25519) or 64 bytes (X448,
// of which only 56 are meaningful).
type montgomerySlots struct {
	buf  []byte
	slot int
}

func newMontgomerySlots(slot int) *montgomerySlots {
	return &montgomerySlots{buf: make([]byte, pccBlockSize), slot: slot}
}

func (m *montgomerySlots) resU() []byte   { return m.buf[0*m.slot : 1*m.slot] }
func (m *montgomerySlots) u() []byte      { return m.buf[1*m.slot : 2*m.slot] }
func (m *montgomerySlots) scalar() []byte { return m.buf[2*m.slot : 3*m.slot] }

// clampX25519 applies RFC 7748 clamping to a 32-byte little-endian scalar
// and masks the non-canonical high bit of the little-endian u-coordinate,
// both BEFORE the endianness flip to big-endian (spec.md §4.1).
func clampX25519(scalar, u []byte) {
	scalar[0] &= 248
	scalar[31] = (scalar[31] & 127) | 64
	u[31] &= 0x7f
}

// clampX448 applies RFC 7748 clamping to a 56-byte little-endian scalar.
func clampX448(scalar []byte) {
	scalar[0] &= 252
	scalar[55] |= 128
}

// MontgomeryScalarMult implements spec.md §4.1's Montgomery variant. u and
// scalar are little-endian on input (RFC 7748 convention); the result is
// returned little-endian too. privlen must be 32 (X25519) or 56 (X448).
func MontgomeryScalarMult(id curve.ID, u, scalar []byte) (resU []byte, err error) {
	if !Available() {
		return nil, syscall.EINVAL
	}
	info, ok := curve.Lookup(id)
	if !ok || info.Family != curve.FamilyMontgomery {
		return nil, syscall.EINVAL
	}
	fc, err := pccFuncCode(info)
	if err != nil {
		return nil, err
	}

	uCopy := append([]byte(nil), u...)
	scalarCopy := append([]byte(nil), scalar...)
	defer zeroize.Many(uCopy, scalarCopy)

	switch id {
	case curve.X25519:
		clampX25519(scalarCopy, uCopy)
	case curve.X448:
		clampX448(scalarCopy)
	}

	block := newMontgomerySlots(info.MaxSlot)
	defer zeroize.Bytes(block.buf)

	// u and scalar are privlen little-endian bytes (possibly shorter than
	// the 64-byte X448 slot); place them at the low end of a zero-filled
	// slot so that the endianness flip leaves them right-aligned
	// big-endian, matching the Weierstrass variant's padding convention.
	uSlot := make([]byte, info.MaxSlot)
	copy(uSlot, uCopy)
	scalarSlot := make([]byte, info.MaxSlot)
	copy(scalarSlot, scalarCopy)

	endian.Reverse(uSlot)
	endian.Reverse(scalarSlot)
	copy(block.u(), uSlot)
	copy(block.scalar(), scalarSlot)
	zeroize.Many(uSlot, scalarSlot)

	if rc := pccInvoke(fc, block.buf); rc != 0 {
		return nil, syscall.EIO
	}

	res := append([]byte(nil), block.resU()...)
	endian.Reverse(res)
	resU = res[:info.PrivLen]
	return append([]byte(nil), resU...), nil
}
