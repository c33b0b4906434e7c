package cpu

import "testing"

func TestHasLongMode(t *testing.T) {
	defer func() {
		cpuidFn = ID
	}()

	specs := []struct {
		maxLeaf  uint32
		featEDX  uint32
		exp      bool
		expCalls int
	}{
		// Extended features leaf missing; the feature leaf must not be queried
		{0x80000000, 1 << 29, false, 1},
		// Feature leaf present but LM bit cleared
		{0x80000008, 0x00100800, false, 2},
		// LM bit set (CPUID output from a QEMU qemu64 CPU)
		{0x8000000a, 0x2191abff, true, 2},
		// Only the LM bit is set
		{0x80000001, 1 << 29, true, 2},
	}

	for specIndex, spec := range specs {
		var calls int
		cpuidFn = func(leaf uint32) (uint32, uint32, uint32, uint32) {
			calls++
			switch leaf {
			case extendedLeafBase:
				return spec.maxLeaf, 0, 0, 0
			case extendedFeatures:
				return 0, 0, 0, spec.featEDX
			default:
				t.Errorf("[spec %d] unexpected CPUID leaf 0x%x", specIndex, leaf)
				return 0, 0, 0, 0
			}
		}

		if got := HasLongMode(); got != spec.exp {
			t.Errorf("[spec %d] expected HasLongMode to return %t; got %t", specIndex, spec.exp, got)
		}

		if calls != spec.expCalls {
			t.Errorf("[spec %d] expected %d CPUID invocations; got %d", specIndex, spec.expCalls, calls)
		}
	}
}

func TestMaxExtendedLeaf(t *testing.T) {
	defer func() {
		cpuidFn = ID
	}()

	cpuidFn = func(leaf uint32) (uint32, uint32, uint32, uint32) {
		if leaf != extendedLeafBase {
			t.Fatalf("expected leaf 0x%x; got 0x%x", extendedLeafBase, leaf)
		}
		return 0x80000008, 0, 0, 0
	}

	if got := MaxExtendedLeaf(); got != 0x80000008 {
		t.Fatalf("expected MaxExtendedLeaf to return 0x80000008; got 0x%x", got)
	}
}

func TestHostProbes(t *testing.T) {
	// Tests run on a 64-bit host so both probes must succeed.
	if !HasCPUID() {
		t.Fatal("expected HasCPUID to return true on an amd64 host")
	}

	if !HasLongMode() {
		t.Fatal("expected HasLongMode to return true on an amd64 host")
	}
}
