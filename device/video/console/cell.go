package console

import "gopherboot/device/video/console/glyph"

const (
	// Width is the number of columns of the text mode screen.
	Width = 80

	// Height is the number of visible rows of the text mode screen.
	Height = 25

	// BufferLines is the number of rows kept by the console. Keeping twice
	// the visible height guarantees that the last Height lines are never
	// evicted while they are being flushed.
	BufferLines = 2 * Height

	// TabWidth is the distance between tab stops.
	TabWidth = 8
)

// Cell is a colored glyph as laid out in video memory: the glyph byte
// followed by the attribute byte.
type Cell struct {
	Glyph  glyph.Glyph
	Colors Colors
}

// BlankCell returns an empty cell painted with colors.
func BlankCell(colors Colors) Cell {
	return Cell{Colors: colors}
}

// encode returns the little-endian 16-bit value the device expects for c.
func (c Cell) encode() uint16 {
	return uint16(c.Colors)<<8 | uint16(c.Glyph)
}

// Location counts the cells written since the console was created. The
// counter only grows; the line and column are derived from it.
type Location uint64

// Line returns the logical line number.
func (l Location) Line() uint64 {
	return uint64(l) / Width
}

// Column returns the column within the current line.
func (l Location) Column() uint64 {
	return uint64(l) % Width
}

// NextLine returns the location of the first column of the following line.
func (l Location) NextLine() Location {
	return Location((l.Line() + 1) * Width)
}

// NextTab returns the location of the next tab stop. A tab stop at the end of
// a line wraps to the start of the following line.
func (l Location) NextTab() Location {
	return l + Location(TabWidth-l.Column()%TabWidth)
}

// row is one line of buffered cells.
type row [Width]Cell
