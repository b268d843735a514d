// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package coproc

import (
	"encoding/binary"
	"fmt"
	"syscall"

	"github.com/mainframe-crypto/zecc/curve"
)

// BuildECDHParm assembles the ECDH request parameter block of spec.md
// §4.3: subfunction "DH", the fixed PASSTHRU rule, the 20-byte VUD
// literal, a key-block-length field, and the key-block body itself —
// party A's private token and party B's public token, duplicated and
// padded with four null-key tokens. The firmware's reason for demanding
// the duplication isn't documented upstream; this library just
// replicates the wire shape.
func BuildECDHParm(info curve.Info, privA *ParsedPrivateToken, pubBX, pubBY []byte) ([]byte, error) {
	privToken, err := BuildPrivateToken(info, false, privA.D, privA.X, privA.Y)
	if err != nil {
		return nil, err
	}
	pubToken, err := BuildPublicToken(info, pubBX, pubBY)
	if err != nil {
		return nil, err
	}

	pair := append(append([]byte(nil), privToken...), pubToken...)
	keyBlock := make([]byte, 0, 2*len(pair)+4*len(NullKeyToken))
	keyBlock = append(keyBlock, pair...)
	keyBlock = append(keyBlock, NullKeyToken...)
	keyBlock = append(keyBlock, pair...)
	keyBlock = append(keyBlock, NullKeyToken...)
	keyBlock = append(keyBlock, NullKeyToken...)
	keyBlock = append(keyBlock, NullKeyToken...)

	parm := make([]byte, 0, 2+2+8+len(ecdhVUD)+2+len(keyBlock))
	parm = appendUint16(parm, subfuncECDH)
	parm = appendUint16(parm, ruleLenEight)
	parm = append(parm, rulePassthru...)
	parm = append(parm, ecdhVUD...)
	parm = appendUint16(parm, uint16(len(keyBlock)))
	parm = append(parm, keyBlock...)
	return parm, nil
}

// ParseECDHReply extracts the raw shared secret from an ECDH reply
// parameter block, enforcing spec.md §4.3's `key_len - 4 == privlen`
// check.
func ParseECDHReply(info curve.Info, rplParm []byte) ([]byte, error) {
	if len(rplParm) < 4 {
		return nil, fmt.Errorf("coproc: ECDH reply too short")
	}
	keyLen := binary.BigEndian.Uint32(rplParm[0:4])
	if int(keyLen)-4 != info.PrivLen {
		return nil, fmt.Errorf("coproc: ECDH reply key_len-4=%d, want %d: %w", int(keyLen)-4, info.PrivLen, syscall.EIO)
	}
	if len(rplParm) < 4+info.PrivLen {
		return nil, fmt.Errorf("coproc: ECDH reply secret truncated")
	}
	return append([]byte(nil), rplParm[4:4+info.PrivLen]...), nil
}

func appendUint16(dst []byte, v uint16) []byte {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return append(dst, b[:]...)
}

func appendUint32(dst []byte, v uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return append(dst, b[:]...)
}
