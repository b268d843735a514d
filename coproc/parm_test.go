// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package coproc

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"testing"

	"github.com/mainframe-crypto/zecc/curve"
)

func TestBuildECDHParmStructure(t *testing.T) {
	info := curve.MustLookup(curve.P256)
	priv := &ParsedPrivateToken{
		D: bytes.Repeat([]byte{1}, info.PrivLen),
		X: bytes.Repeat([]byte{2}, info.PrivLen),
		Y: bytes.Repeat([]byte{3}, info.PrivLen),
	}
	pubX := bytes.Repeat([]byte{4}, info.PrivLen)
	pubY := bytes.Repeat([]byte{5}, info.PrivLen)

	parm, err := BuildECDHParm(info, priv, pubX, pubY)
	if err != nil {
		t.Fatalf("BuildECDHParm: %v", err)
	}
	if got := binary.BigEndian.Uint16(parm[0:2]); got != subfuncECDH {
		t.Errorf("subfunction = %#x, want %#x", got, subfuncECDH)
	}
	if !bytes.Equal(parm[4:12], rulePassthru) {
		t.Errorf("rule = %q, want PASSTHRU", parm[4:12])
	}
	if !bytes.Equal(parm[12:32], ecdhVUD) {
		t.Errorf("VUD literal mismatch")
	}
	keyBlockLen := binary.BigEndian.Uint16(parm[32:34])
	if int(keyBlockLen) != len(parm)-34 {
		t.Errorf("keyBlockLen = %d, want %d", keyBlockLen, len(parm)-34)
	}
	// Four null-key tokens total.
	nullCount := bytes.Count(parm[34:], NullKeyToken)
	if nullCount < 4 {
		t.Errorf("found %d null tokens in key block, want at least 4", nullCount)
	}
}

func TestParseECDHReplyLengthCheck(t *testing.T) {
	info := curve.MustLookup(curve.P256)
	secret := bytes.Repeat([]byte{0xAA}, info.PrivLen)
	rplParm := make([]byte, 4+len(secret))
	binary.BigEndian.PutUint32(rplParm[0:4], uint32(len(secret)+4))
	copy(rplParm[4:], secret)

	got, err := ParseECDHReply(info, rplParm)
	if err != nil {
		t.Fatalf("ParseECDHReply: %v", err)
	}
	if !bytes.Equal(got, secret) {
		t.Errorf("secret = % x, want % x", got, secret)
	}

	binary.BigEndian.PutUint32(rplParm[0:4], 999)
	if _, err := ParseECDHReply(info, rplParm); err == nil {
		t.Error("expected length-mismatch error")
	}
}

func TestSignVerifyParmRoundtrip(t *testing.T) {
	info := curve.MustLookup(curve.P256)
	hash := sha256.Sum256([]byte("message"))
	d := bytes.Repeat([]byte{7}, info.PrivLen)
	x := bytes.Repeat([]byte{8}, info.PrivLen)
	y := bytes.Repeat([]byte{9}, info.PrivLen)

	parm, err := BuildSignParm(info, hash[:], d, x, y)
	if err != nil {
		t.Fatalf("BuildSignParm: %v", err)
	}
	if got := binary.BigEndian.Uint16(parm[0:2]); got != subfuncSign {
		t.Errorf("subfunction = %#x, want %#x", got, subfuncSign)
	}

	r := bytes.Repeat([]byte{0xAA}, info.PrivLen)
	s := bytes.Repeat([]byte{0xBB}, info.PrivLen)
	vparm, err := BuildVerifyParm(info, hash[:], r, s, x, y)
	if err != nil {
		t.Fatalf("BuildVerifyParm: %v", err)
	}
	if got := binary.BigEndian.Uint16(vparm[0:2]); got != subfuncVerify {
		t.Errorf("subfunction = %#x, want %#x", got, subfuncVerify)
	}
}

func TestParseSignReplyLengthCheck(t *testing.T) {
	info := curve.MustLookup(curve.P384)
	r := bytes.Repeat([]byte{1}, info.PrivLen)
	s := bytes.Repeat([]byte{2}, info.PrivLen)
	rplParm := make([]byte, 8+2*info.PrivLen)
	binary.BigEndian.PutUint32(rplParm[0:4], uint32(8+2*info.PrivLen))
	copy(rplParm[8:], append(append([]byte(nil), r...), s...))

	gotR, gotS, err := ParseSignReply(info, rplParm)
	if err != nil {
		t.Fatalf("ParseSignReply: %v", err)
	}
	if !bytes.Equal(gotR, r) || !bytes.Equal(gotS, s) {
		t.Errorf("r/s mismatch: got r=% x s=% x", gotR, gotS)
	}
}

func TestParseVerifyReplySignatureInvalid(t *testing.T) {
	reply := &CPRBX{RtCode: RTCodeUserError, RsCode: RSSignatureInvalid}
	if err := ParseVerifyReply(reply); err != ErrSignatureInvalid {
		t.Errorf("got %v, want ErrSignatureInvalid", err)
	}

	ok := &CPRBX{RtCode: 0}
	if err := ParseVerifyReply(ok); err != nil {
		t.Errorf("expected nil for clean rtcode, got %v", err)
	}
}

func TestBuildKeygenParmHasNullTerminator(t *testing.T) {
	info := curve.MustLookup(curve.P256)
	parm, err := BuildKeygenParm(info)
	if err != nil {
		t.Fatalf("BuildKeygenParm: %v", err)
	}
	if !bytes.Contains(parm, ECCNullToken) {
		t.Error("keygen parm block missing ECC-null token terminator")
	}
}
