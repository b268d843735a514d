// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package cpuinst

import (
	"io"
	"syscall"

	"github.com/mainframe-crypto/zecc/curve"
	"github.com/mainframe-crypto/zecc/internal/zeroize"
)

// ecdsaSlots is the {sig_r, sig_s, hash, priv_or_pub_x, priv_or_pub_y_or_rand}
// layout of spec.md §4.2, each slot info.MaxSlot bytes wide.
type ecdsaSlots struct {
	buf  []byte
	slot int
}

func newECDSASlots(slot int) *ecdsaSlots {
	return &ecdsaSlots{buf: make([]byte, 5*slot), slot: slot}
}

func (e *ecdsaSlots) sigR() []byte  { return e.buf[0*e.slot : 1*e.slot] }
func (e *ecdsaSlots) sigS() []byte  { return e.buf[1*e.slot : 2*e.slot] }
func (e *ecdsaSlots) hash() []byte  { return e.buf[2*e.slot : 3*e.slot] }
func (e *ecdsaSlots) slotD() []byte { return e.buf[3*e.slot : 4*e.slot] } // priv_or_pub_x
func (e *ecdsaSlots) slotE() []byte { return e.buf[4*e.slot : 5*e.slot] } // pub_y or rand

// packHash implements the truncation policy of spec.md §4.2: take the
// leftmost slotSize bytes of hash, right-aligned into the slot (Open
// Question (b): this is the SEC 1 convention).
func packHash(slot []byte, hash []byte) {
	slotSize := len(slot)
	n := len(hash)
	if n > slotSize {
		n = slotSize
	}
	off := slotSize - n
	copy(slot[off:], hash[:n])
}

// Sign implements spec.md §4.2's sign path. rng is nil for
// instruction-internal randomness (single invocation); non-nil triggers
// deterministic mode and an unbounded retry loop, draining rng afresh each
// iteration, exactly as spec.md §9's "Deterministic-signature loop" design
// note requires.
func Sign(id curve.ID, priv, hash []byte, rng io.Reader) (r, s []byte, err error) {
	if !Available() {
		return nil, nil, syscall.EINVAL
	}
	info, ok := curve.Lookup(id)
	if !ok || !info.ECDSACapable {
		return nil, nil, syscall.EINVAL
	}
	fc, err := kdsaFuncCode(info, false)
	if err != nil {
		return nil, nil, err
	}

	block := newECDSASlots(info.MaxSlot)
	defer zeroize.Bytes(block.buf)

	packHash(block.hash(), hash)
	rightAlign(block.slotD(), priv)

	if rng == nil {
		if rc := kdsaInvoke(fc, block.buf); rc != 0 {
			return nil, nil, syscall.EIO
		}
	} else {
		fc |= deterministicBit
		for {
			randSlot := block.slotE()
			zeroize.Bytes(randSlot)
			if _, err := io.ReadFull(rng, randSlot[info.MaxSlot-info.PrivLen:]); err != nil {
				return nil, nil, err
			}
			rc := kdsaInvoke(fc, block.buf)
			if rc == 0 {
				break
			}
			// Instruction rejected this k; the spec's retry loop has no
			// bound and expects a fresh draw from rng each pass.
		}
	}

	r = append([]byte(nil), block.sigR()[info.MaxSlot-info.PrivLen:]...)
	s = append([]byte(nil), block.sigS()[info.MaxSlot-info.PrivLen:]...)
	return r, s, nil
}

// Verify implements spec.md §4.2's verify path.
func Verify(id curve.ID, pubX, pubY, hash, r, s []byte) error {
	if !Available() {
		return syscall.EINVAL
	}
	info, ok := curve.Lookup(id)
	if !ok || !info.ECDSACapable {
		return syscall.EINVAL
	}
	fc, err := kdsaFuncCode(info, true)
	if err != nil {
		return err
	}

	block := newECDSASlots(info.MaxSlot)
	defer zeroize.Bytes(block.buf)

	packHash(block.hash(), hash)
	rightAlign(block.sigR(), r)
	rightAlign(block.sigS(), s)
	rightAlign(block.slotD(), pubX)
	rightAlign(block.slotE(), pubY)

	if rc := kdsaInvoke(fc, block.buf); rc != 0 {
		return syscall.EFAULT
	}
	return nil
}
