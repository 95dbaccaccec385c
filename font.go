package display

const (
	glyphWidth   = 5
	glyphAdvance = glyphWidth + 1 // one blank column between characters
	glyphSpace   = 26
)

// glyphs is a 5x7 font for A to Z followed by space. Each byte is one column,
// bit 0 is the top row of the page.
var glyphs = [...][glyphWidth]byte{
	{0x7E, 0x09, 0x09, 0x09, 0x7E}, // A
	{0x7F, 0x49, 0x49, 0x49, 0x36}, // B
	{0x3E, 0x41, 0x41, 0x41, 0x22}, // C
	{0x7F, 0x41, 0x41, 0x41, 0x3E}, // D
	{0x7F, 0x49, 0x49, 0x49, 0x41}, // E
	{0x7F, 0x09, 0x09, 0x09, 0x01}, // F
	{0x3E, 0x41, 0x41, 0x49, 0x7A}, // G
	{0x7F, 0x08, 0x08, 0x08, 0x7F}, // H
	{0x41, 0x41, 0x7F, 0x41, 0x41}, // I
	{0x20, 0x40, 0x41, 0x41, 0x3F}, // J
	{0x7F, 0x08, 0x14, 0x22, 0x41}, // K
	{0x7F, 0x40, 0x40, 0x40, 0x40}, // L
	{0x7F, 0x02, 0x04, 0x02, 0x7F}, // M
	{0x7F, 0x04, 0x08, 0x10, 0x7F}, // N
	{0x3E, 0x41, 0x41, 0x41, 0x3E}, // O
	{0x7F, 0x09, 0x09, 0x09, 0x06}, // P
	{0x3E, 0x41, 0x51, 0x21, 0x5E}, // Q
	{0x7F, 0x09, 0x19, 0x29, 0x46}, // R
	{0x46, 0x49, 0x49, 0x49, 0x31}, // S
	{0x01, 0x01, 0x7F, 0x01, 0x01}, // T
	{0x3F, 0x40, 0x40, 0x40, 0x3F}, // U
	{0x1F, 0x20, 0x40, 0x20, 0x1F}, // V
	{0x7F, 0x20, 0x18, 0x20, 0x7F}, // W
	{0x63, 0x14, 0x08, 0x14, 0x63}, // X
	{0x07, 0x08, 0x70, 0x08, 0x07}, // Y
	{0x61, 0x51, 0x49, 0x45, 0x43}, // Z
	{0x00, 0x00, 0x00, 0x00, 0x00}, // space
}

// glyph returns the column pattern for c.
func glyph(c rune) (*[glyphWidth]byte, bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return &glyphs[c-'A'], true
	case c == ' ':
		return &glyphs[glyphSpace], true
	default:
		return nil, false
	}
}

// Supported reports whether the built-in font can draw c. DrawChar and
// DrawString silently skip anything it can not.
func Supported(c rune) bool {
	_, ok := glyph(c)
	return ok
}
