// Copyright (C) 2025, Mainframe Crypto Project. All rights reserved.
// See the file LICENSE for licensing terms.

package zecc

import (
	"syscall"
	"testing"
)

func TestDispatchEscalatesOnEINVAL(t *testing.T) {
	caps := Capabilities{MSA9Switch: true, ECCViaOnlineCard: true, ICAOffloadEnabled: false}

	var order []string
	cpu := func() error { order = append(order, "cpu"); return syscall.EINVAL }
	coprocFn := func() error { order = append(order, "coproc"); return syscall.EINVAL }
	sw := func() error { order = append(order, "sw"); return nil }

	if err := dispatch(false, caps, cpu, coprocFn, sw); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	want := []string{"cpu", "coproc", "sw"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestDispatchStopsOnNonEINVALError(t *testing.T) {
	caps := Capabilities{MSA9Switch: true, ECCViaOnlineCard: true, ICAOffloadEnabled: false}
	cpu := func() error { return syscall.EIO }
	coprocCalled := false
	coprocFn := func() error { coprocCalled = true; return nil }

	err := dispatch(false, caps, cpu, coprocFn, nil)
	if err != syscall.EIO {
		t.Errorf("got %v, want EIO", err)
	}
	if coprocCalled {
		t.Error("coprocessor tier should not run after a non-EINVAL CPU error")
	}
}

func TestDispatchForceOffloadSkipsCPUUnlessKeygen(t *testing.T) {
	caps := Capabilities{MSA9Switch: true, ECCViaOnlineCard: true, ICAOffloadEnabled: true}

	cpuCalled := false
	cpu := func() error { cpuCalled = true; return nil }
	coprocFn := func() error { return nil }

	if err := dispatch(false, caps, cpu, coprocFn, nil); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if cpuCalled {
		t.Error("CPU tier must not run when ICAOffloadEnabled forces the coprocessor")
	}

	cpuCalled = false
	if err := dispatch(true, caps, cpu, coprocFn, nil); err != nil {
		t.Fatalf("dispatch (keygen): %v", err)
	}
	if !cpuCalled {
		t.Error("keygen must always try the CPU tier first regardless of ICAOffloadEnabled")
	}
}

func TestDispatchNoOnlineCardReturnsENODEV(t *testing.T) {
	caps := Capabilities{MSA9Switch: true, ECCViaOnlineCard: false, ICAOffloadEnabled: false}

	cpu := func() error { return syscall.EINVAL }
	coprocCalled := false
	coprocFn := func() error { coprocCalled = true; return nil }

	err := dispatch(false, caps, cpu, coprocFn, func() error { return nil })
	if err != syscall.ENODEV {
		t.Errorf("got %v, want ENODEV", err)
	}
	if coprocCalled {
		t.Error("coprocessor tier must not run when ECCViaOnlineCard is false")
	}
}

func TestDispatchFIPSRequiredDeniesEverything(t *testing.T) {
	caps := Capabilities{MSA9Switch: true, ECCViaOnlineCard: true, ICAOffloadEnabled: false, FIPSRequired: true}

	called := false
	cpu := func() error { called = true; return nil }
	if err := dispatch(false, caps, cpu, nil, nil); err != syscall.EACCES {
		t.Errorf("got %v, want EACCES", err)
	}
	if called {
		t.Error("no backend should run when FIPSRequired is set")
	}
}

func TestDispatchSkipsDisabledTiers(t *testing.T) {
	caps := Capabilities{MSA9Switch: false, ECCViaOnlineCard: false, ICAOffloadEnabled: false}

	cpuCalled := false
	cpu := func() error { cpuCalled = true; return nil }
	sw := func() error { return nil }

	if err := dispatchNoCoproc(caps, cpu, sw); err != nil {
		t.Fatalf("dispatchNoCoproc: %v", err)
	}
	if cpuCalled {
		t.Error("disabled CPU tier must not run")
	}
}

func TestStatsRecordsCalls(t *testing.T) {
	caps := Capabilities{}
	before := Stats()[BackendSoftware].Calls
	dispatchNoCoproc(caps, nil, func() error { return nil })
	after := Stats()[BackendSoftware].Calls
	if after != before+1 {
		t.Errorf("software call count = %d, want %d", after, before+1)
	}
}
