// Package console implements the kernel's text console on top of the VGA text
// mode framebuffer. The console keeps a scrollback buffer twice the height of
// the screen and copies the visible window to video memory whenever the
// current line changes.
package console

import (
	"unicode/utf8"

	"gopherboot/device/video/console/glyph"
	"gopherboot/kernel/cpu"
	"gopherboot/kernel/sync"
)

const (
	crtcAddrPort = 0x3d4
	crtcDataPort = 0x3d5

	// crtcCursorStart is the CRT controller register whose bit 5 turns
	// the hardware cursor off.
	crtcCursorStart   = 0x0a
	crtcCursorDisable = 1 << 5
)

var (
	portWriteByteFn = cpu.PortWriteByte

	instance Console
	initOnce sync.Once
)

// Console is the text console engine. All of its state is guarded by lock;
// the exported methods acquire it for the duration of the call.
type Console struct {
	lock sync.Spinlock

	buffer   [BufferLines]row
	location Location
	colors   Colors
	surface  surface
}

// Get returns the console singleton. The first call clears the screen and
// hides the hardware cursor.
func Get() *Console {
	initOnce.Do(func() {
		instance.init(framebufferFn())
	})

	return &instance
}

func (c *Console) init(fb []uint32) {
	c.lock.Acquire()
	defer c.lock.Release()

	c.surface = newSurface(fb)
	c.location = 0
	c.colors = DefaultColors
	blank := BlankCell(c.colors)
	for i := range c.buffer {
		for j := range c.buffer[i] {
			c.buffer[i][j] = blank
		}
	}
	c.scrollAndFlush(0)

	portWriteByteFn(crtcAddrPort, crtcCursorStart)
	portWriteByteFn(crtcDataPort, crtcCursorDisable)
}

// WriteString renders s at the current location. Code points that have no
// glyph are displayed as glyph.Replacement. WriteString implements
// io.StringWriter and never fails.
func (c *Console) WriteString(s string) (int, error) {
	c.lock.Acquire()
	for _, r := range s {
		c.writeRune(r)
	}
	c.flushBottom()
	c.lock.Release()

	return len(s), nil
}

// Write implements io.Writer by decoding p as UTF-8. Invalid sequences are
// displayed as glyph.Replacement.
func (c *Console) Write(p []byte) (int, error) {
	c.lock.Acquire()
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		c.writeRune(r)
		i += size
	}
	c.flushBottom()
	c.lock.Release()

	return len(p), nil
}

// Colors returns the colors used for subsequent writes.
func (c *Console) Colors() Colors {
	c.lock.Acquire()
	defer c.lock.Release()
	return c.colors
}

// SetColors sets the colors used for subsequent writes and for rows cleared
// by scrolling. Cells already on screen keep their colors.
func (c *Console) SetColors(colors Colors) {
	c.lock.Acquire()
	c.colors = colors
	c.lock.Release()
}

// Location returns the number of cells written so far.
func (c *Console) Location() Location {
	c.lock.Acquire()
	defer c.lock.Release()
	return c.location
}

// writeRune must be called with the lock held.
func (c *Console) writeRune(r rune) {
	line := c.location.Line()

	switch r {
	case '\n':
		c.location = c.location.NextLine()
	case '\r':
	case '\t':
		c.location = c.location.NextTab()
	default:
		c.buffer[line%BufferLines][c.location.Column()] = Cell{
			Glyph:  glyph.FromRuneOrReplacement(r),
			Colors: c.colors,
		}
		c.location++
	}

	if newLine := c.location.Line(); newLine > line {
		c.clearRow(newLine)
		c.scrollAndFlush(newLine)
	}
}

// clearRow blanks the buffer row backing line using the current colors.
func (c *Console) clearRow(line uint64) {
	blank := BlankCell(c.colors)
	r := &c.buffer[line%BufferLines]
	for i := range r {
		r[i] = blank
	}
}

// scrollAndFlush copies the Height lines ending at line to the screen, or the
// first Height lines if line is still on the first screen.
func (c *Console) scrollAndFlush(line uint64) {
	var top uint64
	if line+1 > Height {
		top = line + 1 - Height
	}

	for i := uint64(0); i < Height; i++ {
		c.surface.writeRow(int(i), &c.buffer[(top+i)%BufferLines])
	}
}

// flushBottom copies the current line to its row on screen.
func (c *Console) flushBottom() {
	line := c.location.Line()
	screenRow := line
	if screenRow > Height-1 {
		screenRow = Height - 1
	}

	c.surface.writeRow(int(screenRow), &c.buffer[line%BufferLines])
}
