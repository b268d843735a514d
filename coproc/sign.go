// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package coproc

import (
	"encoding/binary"
	"fmt"
	"syscall"

	"github.com/mainframe-crypto/zecc/curve"
)

// BuildSignParm assembles the ECDSA-sign request parameter block of
// spec.md §4.3: subfunction "SG", the ECDSA rule, a length-prefixed hash
// VUD, and the key block carrying the signer's private token.
func BuildSignParm(info curve.Info, hash, d, x, y []byte) ([]byte, error) {
	privToken, err := BuildPrivateToken(info, true, d, x, y)
	if err != nil {
		return nil, err
	}

	parm := make([]byte, 0, 2+2+8+2+len(hash)+2+len(privToken))
	parm = appendUint16(parm, subfuncSign)
	parm = appendUint16(parm, ruleLenEight)
	parm = append(parm, ruleECDSA...)
	parm = appendUint16(parm, uint16(len(hash)))
	parm = append(parm, hash...)
	parm = appendUint16(parm, uint16(len(privToken)))
	parm = append(parm, privToken...)
	return parm, nil
}

// ParseSignReply extracts (r, s) from an ECDSA-sign reply, enforcing
// spec.md §4.3's `vud_len - 8 == 2*privlen` check.
func ParseSignReply(info curve.Info, rplParm []byte) (r, s []byte, err error) {
	if len(rplParm) < 8 {
		return nil, nil, fmt.Errorf("coproc: sign reply too short")
	}
	vudLen := binary.BigEndian.Uint32(rplParm[0:4])
	want := 2 * info.PrivLen
	if int(vudLen)-8 != want {
		return nil, nil, fmt.Errorf("coproc: sign reply vud_len-8=%d, want %d: %w", int(vudLen)-8, want, syscall.EIO)
	}
	if len(rplParm) < 8+want {
		return nil, nil, fmt.Errorf("coproc: sign reply signature truncated")
	}
	sig := rplParm[8 : 8+want]
	r = append([]byte(nil), sig[:info.PrivLen]...)
	s = append([]byte(nil), sig[info.PrivLen:]...)
	return r, s, nil
}
