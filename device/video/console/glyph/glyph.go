// Package glyph converts Unicode code points to the 256 glyphs of code page
// 437, the character set built into the VGA text mode font.
package glyph

//go:generate go run gopherboot/tools/mkglyphs -out table.go

import (
	"sort"

	"gopherboot/kernel"
)

// Glyph is an index into the code page 437 font.
type Glyph uint8

// Replacement is displayed in place of code points with no glyph (■).
const Replacement Glyph = 0xfe

// ErrUnrepresentable is returned by FromRune for code points that code page
// 437 cannot display.
var ErrUnrepresentable = &kernel.Error{Module: "glyph", Message: "code point has no code page 437 glyph"}

type runeGlyph struct {
	r rune
	g Glyph
}

var (
	// lookupFn resolves code points outside the printable ASCII range. It
	// is overridden by tests to verify that the ASCII fast path never
	// reaches it.
	lookupFn = lookupSorted
)

// Rune returns the code point that g displays as.
func (g Glyph) Rune() rune {
	return chars[g]
}

// FromRune returns the glyph that displays r. Printable ASCII maps to itself;
// everything else is searched for in the code page 437 table.
func FromRune(r rune) (Glyph, *kernel.Error) {
	if r >= ' ' && r <= '~' {
		return Glyph(r), nil
	}

	return lookupFn(r)
}

// FromRuneOrReplacement behaves like FromRune but returns Replacement instead
// of failing.
func FromRuneOrReplacement(r rune) Glyph {
	g, err := FromRune(r)
	if err != nil {
		return Replacement
	}
	return g
}

func lookupSorted(r rune) (Glyph, *kernel.Error) {
	i := sort.Search(len(sortedGlyphs), func(i int) bool {
		return sortedGlyphs[i].r >= r
	})

	if i < len(sortedGlyphs) && sortedGlyphs[i].r == r {
		return sortedGlyphs[i].g, nil
	}

	return 0, ErrUnrepresentable
}
