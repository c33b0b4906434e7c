package console

import (
	"testing"
	"unsafe"
)

func TestCellLayout(t *testing.T) {
	if got := unsafe.Sizeof(Cell{}); got != 2 {
		t.Fatalf("expected cell size to be 2 bytes; got %d", got)
	}

	c := Cell{Glyph: 'A', Colors: NewColors(White, Blue)}
	if exp, got := uint16(0x1f41), c.encode(); got != exp {
		t.Fatalf("expected encoded cell 0x%04x; got 0x%04x", exp, got)
	}
}

func TestLocation(t *testing.T) {
	specs := []struct {
		loc        Location
		expLine    uint64
		expColumn  uint64
		expNext    Location
		expNextTab Location
	}{
		{0, 0, 0, Width, 8},
		{3, 0, 3, Width, 8},
		{8, 0, 8, Width, 16},
		{Width - 1, 0, Width - 1, Width, Width},
		{Width, 1, 0, 2 * Width, Width + 8},
		{10*Width + 77, 10, 77, 11 * Width, 11 * Width},
	}

	for specIndex, spec := range specs {
		if got := spec.loc.Line(); got != spec.expLine {
			t.Errorf("[spec %d] expected line %d; got %d", specIndex, spec.expLine, got)
		}

		if got := spec.loc.Column(); got != spec.expColumn {
			t.Errorf("[spec %d] expected column %d; got %d", specIndex, spec.expColumn, got)
		}

		if got := spec.loc.NextLine(); got != spec.expNext {
			t.Errorf("[spec %d] expected next line location %d; got %d", specIndex, spec.expNext, got)
		}

		if got := spec.loc.NextTab(); got != spec.expNextTab {
			t.Errorf("[spec %d] expected next tab location %d; got %d", specIndex, spec.expNextTab, got)
		}
	}
}
