// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package coproc

import (
	"bytes"
	"os"
	"strconv"
	"sync/atomic"
)

const defaultDomainPath = "/sys/bus/ap/ap_domain"

var cachedDomain atomic.Int32

func init() {
	cachedDomain.Store(-1)
}

// noDomain is the spec.md §6 sentinel: "on absence or parse failure the
// domain is -1 and all subsequent requests will carry -1 (coprocessor
// may then reject them)". Represented as 0xFFFF in the uint16 wire field,
// since the CPRBX domain field has no native negative representation.
const noDomain = 0xFFFF

// Domain returns the usage domain to place in the request CPRBX, reading
// /sys/bus/ap/ap_domain once and caching the result (spec.md §4.3: the
// domain is read from sysfs, not hardcoded). Falls back to noDomain on
// absence or parse failure (spec.md §6); this is not fatal at this
// layer, but it is deliberately not a valid-looking domain number.
func Domain() uint16 {
	if v := cachedDomain.Load(); v >= 0 {
		return uint16(v)
	}
	v := readDomain(defaultDomainPath)
	cachedDomain.Store(int32(v))
	return uint16(v)
}

// SetDomainForTest overrides the cached domain; used by tests that can't
// rely on a real sysfs file being present.
func SetDomainForTest(d uint16) { cachedDomain.Store(int32(d)) }

func readDomain(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return noDomain
	}
	s := string(bytes.TrimSpace(data))
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 0xffff {
		return noDomain
	}
	return n
}
