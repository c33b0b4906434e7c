// Command mkglyphs generates the code page 437 lookup tables used by the
// console glyph package.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"

	"gopherboot/tools/internal/cli"
)

// controlSymbols lists the pictures that the VGA font shows for the C0
// control range.
var controlSymbols = [0x20]rune{
	0x0000, 0x263a, 0x263b, 0x2665, 0x2666, 0x2663, 0x2660, 0x2022,
	0x25d8, 0x25cb, 0x25d9, 0x2642, 0x2640, 0x266a, 0x266b, 0x263c,
	0x25ba, 0x25c4, 0x2195, 0x203c, 0x00b6, 0x00a7, 0x25ac, 0x21a8,
	0x2191, 0x2193, 0x2192, 0x2190, 0x221f, 0x2194, 0x25b2, 0x25bc,
}

// house is the symbol shown for glyph 0x7f.
const house = 0x2302

type runeGlyph struct {
	r rune
	g uint8
}

// buildChars returns the code point displayed by each glyph. The upper half
// of the table comes from the code page 437 decoder.
func buildChars() [256]rune {
	var chars [256]rune

	copy(chars[:], controlSymbols[:])
	for b := 0x20; b < 0x7f; b++ {
		chars[b] = rune(b)
	}
	chars[0x7f] = house

	for b := 0x80; b < 0x100; b++ {
		chars[b] = charmap.CodePage437.DecodeByte(byte(b))
	}

	return chars
}

// sortGlyphs returns the glyphs outside the printable ASCII range ordered by
// code point. It fails if two glyphs display the same code point.
func sortGlyphs(chars [256]rune) ([]runeGlyph, error) {
	var list []runeGlyph
	for g, r := range chars {
		if g >= ' ' && g <= '~' {
			continue
		}
		list = append(list, runeGlyph{r: r, g: uint8(g)})
	}

	sort.SliceStable(list, func(i, j int) bool { return list[i].r < list[j].r })

	for i := 1; i < len(list); i++ {
		if list[i].r == list[i-1].r {
			return nil, fmt.Errorf("glyphs 0x%02x and 0x%02x both display U+%04X", list[i-1].g, list[i].g, list[i].r)
		}
	}

	return list, nil
}

func genTableFile(chars [256]rune, sorted []runeGlyph) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprint(&buf, "// Code generated by mkglyphs. DO NOT EDIT.\n\npackage glyph\n\n")

	fmt.Fprint(&buf, "// chars maps each glyph to the code point it displays.\n")
	fmt.Fprint(&buf, "var chars = [256]rune{\n")
	for row := 0; row < len(chars); row += 8 {
		buf.WriteByte('\t')
		for i, r := range chars[row : row+8] {
			if i != 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(&buf, "0x%04x,", r)
		}
		fmt.Fprintf(&buf, " // 0x%02x\n", row)
	}
	fmt.Fprint(&buf, "}\n\n")

	fmt.Fprint(&buf, "// sortedGlyphs lists every glyph outside the printable ASCII range, ordered\n// by code point.\n")
	fmt.Fprintf(&buf, "var sortedGlyphs = [%d]runeGlyph{\n", len(sorted))
	for i, e := range sorted {
		switch {
		case i%4 == 0:
			buf.WriteByte('\t')
		default:
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "{0x%04x, 0x%02x},", e.r, e.g)
		if i%4 == 3 || i == len(sorted)-1 {
			buf.WriteByte('\n')
		}
	}
	fmt.Fprint(&buf, "}\n")

	return format.Source(buf.Bytes())
}

func runTool() error {
	output := flag.String("out", "-", "a file to write the generated tables or - to output to STDOUT")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, "mkglyphs: generate the code page 437 glyph tables\n\n")
		fmt.Fprint(os.Stderr, "Usage: mkglyphs [options]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger, err := cli.NewLogger("mkglyphs", *verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	chars := buildChars()
	sorted, err := sortGlyphs(chars)
	if err != nil {
		return err
	}
	logger.Debug("built glyph tables", zap.Int("searchable", len(sorted)))

	data, err := genTableFile(chars, sorted)
	if err != nil {
		return err
	}

	if err = cli.WriteOutput(*output, data); err != nil {
		return err
	}
	logger.Info("wrote glyph tables", zap.String("out", *output), zap.Int("bytes", len(data)))

	return nil
}

func main() {
	if err := runTool(); err != nil {
		cli.Exit(err)
	}
}
