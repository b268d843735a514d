// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package coproc

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/mainframe-crypto/zecc/curve"
)

// ErrSignatureInvalid is returned by ParseVerifyReply when the
// coprocessor completed the verify operation but rejected the signature
// (CCA return code 4, reason code 429), as distinct from a transport or
// protocol failure.
var ErrSignatureInvalid = errors.New("coproc: signature invalid")

// BuildVerifyParm assembles the ECDSA-verify request parameter block of
// spec.md §4.3: subfunction "SV", the ECDSA rule, a VUD carrying the
// length-prefixed hash followed by the length-prefixed (r, s), and the
// key block holding only the public-key token (no private section: this
// operation never touches a scalar).
func BuildVerifyParm(info curve.Info, hash, r, s, pubX, pubY []byte) ([]byte, error) {
	pubToken, err := BuildPublicToken(info, pubX, pubY)
	if err != nil {
		return nil, err
	}
	sig := append(append([]byte(nil), r...), s...)

	parm := make([]byte, 0, 2+2+8+2+len(hash)+2+len(sig)+2+len(pubToken))
	parm = appendUint16(parm, subfuncVerify)
	parm = appendUint16(parm, ruleLenEight)
	parm = append(parm, ruleECDSA...)
	parm = appendUint16(parm, uint16(len(hash)))
	parm = append(parm, hash...)
	parm = appendUint16(parm, uint16(len(sig)))
	parm = append(parm, sig...)
	parm = appendUint16(parm, uint16(len(pubToken)))
	parm = append(parm, pubToken...)
	return parm, nil
}

// ParseVerifyReply inspects the reply CPRBX's return/reason codes. A
// clean rtcode==0 means the signature checked out; rtcode==4,
// rscode==429 means the coprocessor ran the operation but the signature
// did not verify; anything else is a protocol/transport failure the
// caller should surface as-is.
func ParseVerifyReply(reply *CPRBX) error {
	if reply.RtCode == 0 {
		return nil
	}
	if reply.RtCode == RTCodeUserError && reply.RsCode == RSSignatureInvalid {
		return ErrSignatureInvalid
	}
	return fmt.Errorf("coproc: verify failed with rtcode=%d rscode=%d: %w", reply.RtCode, reply.RsCode, syscall.EIO)
}
