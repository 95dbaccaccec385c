package pixel

import (
	"image"
	"image/color"
)

// PageHeight is the number of pixel rows packed into one framebuffer byte.
const PageHeight = 8

// Image is a drawable image that can be wiped in one go.
type Image interface {
	image.Image
	Set(x, y int, c color.Color)

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values and is a container that is used by the image formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pages.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

// Clear zeroes every byte of the buffer.
func (p *Buffer) Clear() {
	clear(p.Pix)
}

func makeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

// MonoVerticalLSBImage is a 1-bit per pixel monochrome image in the SSD1xxx
// GDDRAM layout.
//
// The image is split in horizontal pages that are PageHeight pixels high. Each
// page has one byte per column, the least significant bit is the top row of
// the page. A 128x64 image is 8 pages of 128 bytes, 1024 bytes total.
type MonoVerticalLSBImage struct {
	Buffer
}

// NewMonoVerticalLSBImage allocates a zeroed image of w by h pixels. The
// height is rounded up to whole pages.
func NewMonoVerticalLSBImage(w, h int) *MonoVerticalLSBImage {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	pages := (h + PageHeight - 1) / PageHeight
	return &MonoVerticalLSBImage{
		Buffer: makeBuffer(w, h, w, pages*w),
	}
}

func (p *MonoVerticalLSBImage) ColorModel() color.Model {
	return MonoModel
}

// Pages is the number of pages in the image.
func (p *MonoVerticalLSBImage) Pages() int {
	if p.Stride == 0 {
		return 0
	}
	return len(p.Pix) / p.Stride
}

// Page returns the column bytes of page n, or nil if there is no such page.
// The returned slice aliases Pix.
func (p *MonoVerticalLSBImage) Page(n int) []byte {
	if n < 0 || n >= p.Pages() {
		return nil
	}
	off := n * p.Stride
	return p.Pix[off : off+p.Stride : off+p.Stride]
}

// PixOffset returns the index of the byte holding pixel (x, y) and the bit
// mask of the pixel within that byte.
func (p *MonoVerticalLSBImage) PixOffset(x, y int) (int, byte) {
	return (y/PageHeight)*p.Stride + x, byte(1) << uint(y%PageHeight)
}

func (p *MonoVerticalLSBImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	pos, bit := p.PixOffset(x, y)
	return Mono{On: p.Pix[pos]&bit != 0}
}

func (p *MonoVerticalLSBImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	pos, bit := p.PixOffset(x, y)
	if monoModel(c).(Mono).On {
		p.Pix[pos] |= bit
	} else {
		p.Pix[pos] &^= bit
	}
}

func (p *MonoVerticalLSBImage) Fill(c color.Color) {
	var value byte
	if monoModel(c).(Mono).On {
		value = 0xff
	}
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

var _ Image = (*MonoVerticalLSBImage)(nil)
