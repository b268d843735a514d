// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package coproc

import (
	"github.com/mainframe-crypto/zecc/curve"
	"github.com/mainframe-crypto/zecc/internal/zeroize"
)

func roundtrip(parm []byte) (*CPRBX, []byte, error) {
	rb := NewRequestBuffer(len(parm))
	defer zeroize.Bytes(rb.Bytes())

	copy(rb.ReqParm(), parm)
	rb.PutReqCPRB(newRequestCPRBX(len(parm)))

	if err := sendCPRB(rb); err != nil {
		return nil, nil, err
	}
	reply, err := rb.ReadReplyCPRB()
	if err != nil {
		return nil, nil, err
	}
	rplParm := append([]byte(nil), rb.RplParm()...)
	return reply, rplParm, nil
}

// ECDH drives a full ECDH request/reply roundtrip and returns the raw
// shared secret.
func ECDH(info curve.Info, privA *ParsedPrivateToken, pubBX, pubBY []byte) ([]byte, error) {
	parm, err := BuildECDHParm(info, privA, pubBX, pubBY)
	if err != nil {
		return nil, err
	}
	reply, rplParm, err := roundtrip(parm)
	if err != nil {
		return nil, err
	}
	if err := checkReplyOK(reply); err != nil {
		return nil, err
	}
	return ParseECDHReply(info, rplParm)
}

// Sign drives a full ECDSA-sign request/reply roundtrip.
func Sign(info curve.Info, hash, d, x, y []byte) (r, s []byte, err error) {
	parm, err := BuildSignParm(info, hash, d, x, y)
	if err != nil {
		return nil, nil, err
	}
	reply, rplParm, err := roundtrip(parm)
	if err != nil {
		return nil, nil, err
	}
	if err := checkReplyOK(reply); err != nil {
		return nil, nil, err
	}
	return ParseSignReply(info, rplParm)
}

// Verify drives a full ECDSA-verify request/reply roundtrip.
func Verify(info curve.Info, hash, r, s, pubX, pubY []byte) error {
	parm, err := BuildVerifyParm(info, hash, r, s, pubX, pubY)
	if err != nil {
		return err
	}
	reply, _, err := roundtrip(parm)
	if err != nil {
		return err
	}
	return ParseVerifyReply(reply)
}

// Keygen drives a full ECC-keygen request/reply roundtrip.
func Keygen(info curve.Info) (*ParsedPrivateToken, error) {
	parm, err := BuildKeygenParm(info)
	if err != nil {
		return nil, err
	}
	reply, rplParm, err := roundtrip(parm)
	if err != nil {
		return nil, err
	}
	if err := checkReplyOK(reply); err != nil {
		return nil, err
	}
	return ParseKeygenReply(info, rplParm)
}

func checkReplyOK(reply *CPRBX) error {
	if reply.RtCode != 0 {
		return ParseVerifyReply(reply)
	}
	return nil
}
