package console

// Color is one of the 16 colors of the VGA text mode palette.
type Color uint8

// The default EGA palette, in hardware order.
const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	Yellow
	White
)

var (
	// colorTable decodes a masked 4-bit color field. Every index in the
	// table is reachable, so decoding never fails.
	colorTable = [16]Color{
		Black, Blue, Green, Cyan, Red, Magenta, Brown, LightGray,
		DarkGray, LightBlue, LightGreen, LightCyan, LightRed, LightMagenta, Yellow, White,
	}

	colorNames = [16]string{
		"black", "blue", "green", "cyan", "red", "magenta", "brown", "light gray",
		"dark gray", "light blue", "light green", "light cyan", "light red", "light magenta", "yellow", "white",
	}
)

// String implements fmt.Stringer.
func (c Color) String() string {
	return colorNames[c&0x0f]
}

// Colors packs a foreground color in its low nibble and a background color in
// its high nibble, the layout of the VGA attribute byte.
type Colors uint8

// DefaultColors is light gray text on a black background.
const DefaultColors = Colors(Black)<<4 | Colors(LightGray)

// NewColors packs fg and bg into an attribute byte.
func NewColors(fg, bg Color) Colors {
	return Colors(bg&0x0f)<<4 | Colors(fg&0x0f)
}

// Foreground returns the text color.
func (c Colors) Foreground() Color {
	return colorTable[c&0x0f]
}

// Background returns the color behind the text.
func (c Colors) Background() Color {
	return colorTable[(c>>4)&0x0f]
}

// SetForeground replaces the text color, keeping the background.
func (c *Colors) SetForeground(fg Color) {
	*c = NewColors(fg, c.Background())
}

// SetBackground replaces the background color, keeping the text color.
func (c *Colors) SetBackground(bg Color) {
	*c = NewColors(c.Foreground(), bg)
}
