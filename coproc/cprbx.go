// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

// Package coproc is the coprocessor request builder: it assembles the
// nested binary control blocks spec.md §4.3 describes (outer CPRBX,
// operation parameter block, key-block length prefix, key tokens,
// null-key padding), drives the ZSECSENDCPRB ioctl, and parses the
// reply. Every multi-byte field on the wire is big-endian (spec.md §9
// DESIGN NOTES: "commit to a single byte-order convention").
package coproc

import (
	"encoding/binary"
	"fmt"
)

// CPRBXSize is the fixed size of the outer envelope header.
const CPRBXSize = 28

// CPRBXVersion is the only CPRBX version this library speaks.
const CPRBXVersion = 0x02

// CPRBX is the outer Common Request/Reply Parameter Block envelope that
// wraps every coprocessor request and reply (spec.md §4.3/§GLOSSARY).
type CPRBX struct {
	CPRBLen    uint16
	CPRBVerID  uint8
	FuncID     [2]byte // "T2"
	ReqParmLen uint32
	Domain     uint16
	RplMsgBL   uint32
	RtCode     uint32 // ccp_rtcode, reply only
	RsCode     uint32 // ccp_rscode, reply only
}

// Marshal writes c in the fixed 28-byte big-endian wire layout.
func (c *CPRBX) Marshal() []byte {
	b := make([]byte, CPRBXSize)
	binary.BigEndian.PutUint16(b[0:2], c.CPRBLen)
	b[2] = c.CPRBVerID
	b[3], b[4] = c.FuncID[0], c.FuncID[1]
	binary.BigEndian.PutUint32(b[5:9], c.ReqParmLen)
	binary.BigEndian.PutUint16(b[9:11], c.Domain)
	binary.BigEndian.PutUint32(b[11:15], c.RplMsgBL)
	binary.BigEndian.PutUint32(b[15:19], c.RtCode)
	binary.BigEndian.PutUint32(b[19:23], c.RsCode)
	// b[23:28] reserved, left zero.
	return b
}

// UnmarshalCPRBX reads the fixed 28-byte layout back out of b.
func UnmarshalCPRBX(b []byte) (*CPRBX, error) {
	if len(b) < CPRBXSize {
		return nil, fmt.Errorf("coproc: short CPRBX, got %d bytes", len(b))
	}
	c := &CPRBX{
		CPRBLen:   binary.BigEndian.Uint16(b[0:2]),
		CPRBVerID: b[2],
	}
	c.FuncID[0], c.FuncID[1] = b[3], b[4]
	c.ReqParmLen = binary.BigEndian.Uint32(b[5:9])
	c.Domain = binary.BigEndian.Uint16(b[9:11])
	c.RplMsgBL = binary.BigEndian.Uint32(b[11:15])
	c.RtCode = binary.BigEndian.Uint32(b[15:19])
	c.RsCode = binary.BigEndian.Uint32(b[19:23])
	return c, nil
}

// replyAreaSize is the 2048-byte scratch space reserved for the reply
// CPRBX's parameter block (spec.md §3).
const replyAreaSize = 2048

// RequestBuffer is the single allocation spec.md §3 describes: the first
// half holds the request CPRBX followed by its parameter block, the
// second half is pre-sized space for the reply.
type RequestBuffer struct {
	buf        []byte
	reqParmLen int
}

// NewRequestBuffer allocates a buffer sized for a parameter block of
// reqParmLen bytes, per spec.md §3's `2 x (sizeof(CPRBX) + 2048)` rule
// (2048 is itself the spec's own reply-side sizing budget for a
// parameter block; requests may be smaller or larger, so the first half
// is sized to fit reqParmLen exactly rather than wasting or truncating).
func NewRequestBuffer(reqParmLen int) *RequestBuffer {
	reqHalf := CPRBXSize + reqParmLen
	rplHalf := CPRBXSize + replyAreaSize
	return &RequestBuffer{buf: make([]byte, reqHalf+rplHalf), reqParmLen: reqParmLen}
}

func (r *RequestBuffer) reqHalfLen() int { return CPRBXSize + r.reqParmLen }

// ReqCPRB returns the bytes backing the request CPRBX header.
func (r *RequestBuffer) ReqCPRB() []byte { return r.buf[0:CPRBXSize] }

// ReqParm returns the bytes backing the request parameter block.
func (r *RequestBuffer) ReqParm() []byte { return r.buf[CPRBXSize:r.reqHalfLen()] }

// RplCPRB returns the bytes backing the reply CPRBX header.
func (r *RequestBuffer) RplCPRB() []byte {
	start := r.reqHalfLen()
	return r.buf[start : start+CPRBXSize]
}

// RplParm returns the bytes backing the reply parameter block area.
func (r *RequestBuffer) RplParm() []byte {
	start := r.reqHalfLen() + CPRBXSize
	return r.buf[start:]
}

// Bytes exposes the whole allocation, for the ioctl transport and for
// zeroization.
func (r *RequestBuffer) Bytes() []byte { return r.buf }

// PutReqCPRB serializes c into the request CPRBX area.
func (r *RequestBuffer) PutReqCPRB(c *CPRBX) { copy(r.ReqCPRB(), c.Marshal()) }

// ReadReplyCPRB parses the reply CPRBX area.
func (r *RequestBuffer) ReadReplyCPRB() (*CPRBX, error) {
	return UnmarshalCPRBX(r.RplCPRB())
}
