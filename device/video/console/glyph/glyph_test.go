package glyph

import (
	"testing"

	"golang.org/x/text/encoding/charmap"

	"gopherboot/kernel"
)

func TestFromRuneRoundTrip(t *testing.T) {
	for i := 0; i < 256; i++ {
		g := Glyph(i)
		got, err := FromRune(g.Rune())
		if err != nil {
			t.Errorf("glyph 0x%02x: unexpected error: %v", i, err)
			continue
		}

		if got != g {
			t.Errorf("glyph 0x%02x: expected FromRune(%U) to return 0x%02x; got 0x%02x", i, g.Rune(), i, got)
		}
	}
}

func TestFromRunePrintableASCII(t *testing.T) {
	defer func() {
		lookupFn = lookupSorted
	}()

	lookupFn = func(r rune) (Glyph, *kernel.Error) {
		t.Errorf("unexpected table lookup for %q", r)
		return 0, ErrUnrepresentable
	}

	for r := rune(' '); r <= '~'; r++ {
		g, err := FromRune(r)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", r, err)
		}

		if g != Glyph(r) {
			t.Errorf("expected %q to map to 0x%02x; got 0x%02x", r, r, g)
		}
	}
}

func TestFromRuneSpecialGlyphs(t *testing.T) {
	specs := []struct {
		input rune
		exp   Glyph
	}{
		{'\x00', 0x00},
		{'☺', 0x01},
		{'♥', 0x03},
		{'→', 0x1a},
		{'⌂', 0x7f},
		{'Ç', 0x80},
		{'ß', 0xe1},
		{'█', 0xdb},
		{'■', 0xfe},
		{' ', 0xff},
	}

	for specIndex, spec := range specs {
		got, err := FromRune(spec.input)
		if err != nil {
			t.Errorf("[spec %d] unexpected error: %v", specIndex, err)
			continue
		}

		if got != spec.exp {
			t.Errorf("[spec %d] expected %U to map to 0x%02x; got 0x%02x", specIndex, spec.input, spec.exp, got)
		}
	}
}

func TestFromRuneUnrepresentable(t *testing.T) {
	for specIndex, r := range []rune{'\n', '\t', '\x7f', 'ą', '€', '世', '\U0001F600', -1} {
		g, err := FromRune(r)
		if err != ErrUnrepresentable {
			t.Errorf("[spec %d] expected ErrUnrepresentable for %U; got %v", specIndex, r, err)
		}

		if g != 0 {
			t.Errorf("[spec %d] expected glyph 0 on error; got 0x%02x", specIndex, g)
		}

		if got := FromRuneOrReplacement(r); got != Replacement {
			t.Errorf("[spec %d] expected FromRuneOrReplacement(%U) to return the replacement glyph; got 0x%02x", specIndex, r, got)
		}
	}
}

func TestReplacementGlyph(t *testing.T) {
	if got := Replacement.Rune(); got != '■' {
		t.Fatalf("expected replacement glyph to display as ■; got %q", got)
	}
}

func TestSortedGlyphsTable(t *testing.T) {
	seen := make(map[Glyph]bool, len(sortedGlyphs))
	for i, entry := range sortedGlyphs {
		if i > 0 && sortedGlyphs[i-1].r >= entry.r {
			t.Fatalf("entry %d (%U) is not strictly greater than entry %d (%U)", i, entry.r, i-1, sortedGlyphs[i-1].r)
		}

		if entry.g >= ' ' && entry.g <= '~' {
			t.Errorf("entry %d covers printable ASCII glyph 0x%02x", i, entry.g)
		}

		if chars[entry.g] != entry.r {
			t.Errorf("entry %d maps %U to 0x%02x but that glyph displays %U", i, entry.r, entry.g, chars[entry.g])
		}
		seen[entry.g] = true
	}

	if exp := 256 - int('~'-' '+1); len(seen) != exp {
		t.Fatalf("expected sorted table to cover %d glyphs; got %d", exp, len(seen))
	}
}

func TestUpperHalfMatchesCodePage437(t *testing.T) {
	for i := 0x80; i < 0x100; i++ {
		if exp, got := charmap.CodePage437.DecodeByte(byte(i)), Glyph(i).Rune(); got != exp {
			t.Errorf("glyph 0x%02x: expected %U; got %U", i, exp, got)
		}
	}
}
