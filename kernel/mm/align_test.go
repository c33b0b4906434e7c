package mm

import "testing"

func TestAlignment(t *testing.T) {
	specs := []struct {
		addr     uintptr
		expPage  bool
		expLarge bool
	}{
		{0, true, true},
		{0x1000, true, false},
		{0x1001, false, false},
		{0x200000, true, true},
		{0xe00000, true, true},
		{0x201000, true, false},
	}

	for specIndex, spec := range specs {
		if got := IsPageAligned(spec.addr); got != spec.expPage {
			t.Errorf("[spec %d] expected IsPageAligned(0x%x) to return %t; got %t", specIndex, spec.addr, spec.expPage, got)
		}

		if got := IsLargePageAligned(spec.addr); got != spec.expLarge {
			t.Errorf("[spec %d] expected IsLargePageAligned(0x%x) to return %t; got %t", specIndex, spec.addr, spec.expLarge, got)
		}
	}
}

func TestSizes(t *testing.T) {
	if exp, got := Size(16*1024*1024), 16*Mb; got != exp {
		t.Fatalf("expected 16Mb to equal %d; got %d", exp, got)
	}

	if uintptr(2*Mb) != LargePageSize {
		t.Fatalf("expected the large page size to be 2Mb; got %d", LargePageSize)
	}
}
