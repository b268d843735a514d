// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package coproc

import (
	"fmt"

	"github.com/mainframe-crypto/zecc/curve"
)

// BuildKeygenParm assembles the ECC-keygen request parameter block of
// spec.md §4.3: subfunction "PG", the CLEAR rule, and a key block
// containing a skeleton private-key token (curve named, no scalar) plus
// the ECC-null-token terminator.
func BuildKeygenParm(info curve.Info) ([]byte, error) {
	skeleton, err := BuildSkeletonToken(info)
	if err != nil {
		return nil, err
	}
	keyBlock := append(append([]byte(nil), skeleton...), ECCNullToken...)

	parm := make([]byte, 0, 2+2+8+2+len(keyBlock))
	parm = appendUint16(parm, subfuncKeygen)
	parm = appendUint16(parm, ruleLenEight)
	parm = append(parm, ruleClear...)
	parm = appendUint16(parm, uint16(len(keyBlock)))
	parm = append(parm, keyBlock...)
	return parm, nil
}

// ParseKeygenReply extracts the freshly generated (D, X, Y) from an
// ECC-keygen reply, per spec.md §4.3: the private section's
// formatted_data_len must equal privlen, and the public section is
// located by walking section_len bytes past the start of the private
// section, where its compress_flag must read 0x04.
func ParseKeygenReply(info curve.Info, rplParm []byte) (*ParsedPrivateToken, error) {
	if len(rplParm) == 0 {
		return nil, fmt.Errorf("coproc: keygen reply empty")
	}
	return ParsePrivateToken(rplParm, info)
}
