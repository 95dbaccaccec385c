// Package text renders strings with [font.Face] fonts into any draw.Image,
// such as the display framebuffer.
//
// Use it for text the display's built-in 5x7 font can't draw, like lower
// case, digits or TrueType fonts.
package text

import (
	"fmt"
	"image"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/BeatGlow/picodisplay/draw"
	"github.com/BeatGlow/picodisplay/pixel"
)

// Default is the built-in 7x13 bitmap face.
var Default font.Face = basicfont.Face7x13

// LoadTrueType parses a TrueType font file into a face of size points at
// 72 DPI. Hinting is always full so glyph stems land on whole pixels on a
// monochrome panel.
func LoadTrueType(name string, size float64) (font.Face, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return ParseTrueType(b, size)
}

// ParseTrueType is LoadTrueType for font data already in memory.
func ParseTrueType(ttf []byte, size float64) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("text: invalid font size %g", size)
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("text: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// Draw renders s with face, with the top left corner of the line at pt. Lit
// pixels are set, anything else in dst is left as is. It returns the x
// coordinate just past the last glyph.
func Draw(dst draw.Image, face font.Face, pt image.Point, s string) int {
	if face == nil {
		face = Default
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(pixel.On),
		Face: face,
		Dot:  fixed.P(pt.X, pt.Y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
	return d.Dot.X.Ceil()
}

// Measure returns the size of s drawn with face.
func Measure(face font.Face, s string) image.Point {
	if face == nil {
		face = Default
	}
	m := face.Metrics()
	return image.Point{
		X: font.MeasureString(face, s).Ceil(),
		Y: (m.Ascent + m.Descent).Ceil(),
	}
}
