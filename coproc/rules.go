// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package coproc

// Subfunction codes (spec.md §4.3/§6), each the big-endian uint16 of a
// two-character CCA mnemonic.
const (
	subfuncECDH    = 0x4448 // "DH"
	subfuncSign    = 0x5347 // "SG"
	subfuncVerify  = 0x5356 // "SV"
	subfuncKeygen  = 0x5047 // "PG"
)

// Rule-array literals: a 2-byte length prefix followed by an 8-character
// space-padded ASCII rule name.
var (
	ruleLenEight = uint16(0x000A)
	rulePassthru = []byte("PASSTHRU")
	ruleECDSA    = []byte("ECDSA   ")
	ruleClear    = []byte("CLEAR   ")
)

// ecdhVUD is the fixed 20-byte vendor-unique-data literal spec.md §4.3
// gives for ECDH requests: `00 14 | 00 04 00 91 | 00 06 00 93 00 00 |
// 00 04 00 90 | 00 04 00 92`.
var ecdhVUD = []byte{
	0x00, 0x14,
	0x00, 0x04, 0x00, 0x91,
	0x00, 0x06, 0x00, 0x93, 0x00, 0x00,
	0x00, 0x04, 0x00, 0x90,
	0x00, 0x04, 0x00, 0x92,
}

// RSSignatureInvalid is the CCA reason code returned alongside return
// code 4 when an ECDSA-verify operation completes but the signature does
// not check out (a known, publicly documented CCA return/reason pair,
// not a transport failure).
const (
	RTCodeUserError    = 4
	RSSignatureInvalid = 429
)

// funcIDT2 is the CPRBX func_id spec.md §4.3 uses for every request this
// package builds.
var funcIDT2 = [2]byte{'T', '2'}

func newRequestCPRBX(parmLen int) *CPRBX {
	return &CPRBX{
		CPRBLen:    CPRBXSize,
		CPRBVerID:  CPRBXVersion,
		FuncID:     funcIDT2,
		ReqParmLen: uint32(parmLen),
		Domain:     Domain(),
		RplMsgBL:   uint32(CPRBXSize + replyAreaSize),
	}
}
