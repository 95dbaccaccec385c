package pixel

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestMonoVerticalLSBImage(t *testing.T) {
	testCases := []image.Point{
		{},
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(128, 32),
		image.Pt(128, 64),
		image.Pt(96, 12),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := NewMonoVerticalLSBImage(test.X, test.Y)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}
			if v := i.ColorModel(); v != MonoModel {
				it.Errorf("expected mono color model, got %T", v)
			}
			pages := (test.Y + 7) / 8
			if v := len(i.Pix); v != pages*test.X {
				it.Errorf("expected %d bytes of pixels, got %d", pages*test.X, v)
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						i.Set(x, y, c)
						if v := i.ColorModel().Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				before := append([]byte(nil), i.Pix...)
				for y := -test.Y - 1; y < test.Y*2+1; y++ {
					for x := -test.X - 1; x < test.X*2+1; x++ {
						if (image.Point{X: x, Y: y}).In(i.Rect) {
							continue
						}
						i.Set(x, y, On)
						if v := i.At(x, y); v != color.Transparent {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, v)
						}
					}
				}
				for j := range before {
					if before[j] != i.Pix[j] {
						itt.Fatalf("out of bounds Set changed byte %d", j)
					}
				}
			})

			it.Run("fill", func(itt *testing.T) {
				i.Fill(On)
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						if i.At(x, y) != On {
							itt.Fatalf("pixel (%d,%d) is not lit after fill", x, y)
						}
					}
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Clear()
				for j, v := range i.Pix {
					if v != 0 {
						itt.Fatalf("byte %d is %#02x after clear", j, v)
					}
				}
			})
		})
	}
}

func TestMonoVerticalLSBImageLayout(t *testing.T) {
	i := NewMonoVerticalLSBImage(128, 64)

	// Column 3 of page 0: rows 0 and 7.
	i.Set(3, 0, On)
	i.Set(3, 7, On)
	if v := i.Pix[3]; v != 0x81 {
		t.Errorf("expected byte 3 to be 0x81, got %#02x", v)
	}

	// Row 9 is bit 1 of page 1.
	i.Set(127, 9, On)
	if v := i.Pix[1*128+127]; v != 0x02 {
		t.Errorf("expected byte 255 to be 0x02, got %#02x", v)
	}

	i.Set(3, 0, Off)
	if v := i.Pix[3]; v != 0x80 {
		t.Errorf("expected byte 3 to be 0x80 after clearing the top row, got %#02x", v)
	}
}

func TestMonoVerticalLSBImagePage(t *testing.T) {
	i := NewMonoVerticalLSBImage(128, 64)
	if v := i.Pages(); v != 8 {
		t.Fatalf("expected 8 pages, got %d", v)
	}
	for n := 0; n < i.Pages(); n++ {
		page := i.Page(n)
		if len(page) != 128 {
			t.Fatalf("page %d: expected 128 bytes, got %d", n, len(page))
		}
		page[0] = byte(n + 1)
		if v := i.Pix[n*128]; v != byte(n+1) {
			t.Fatalf("page %d does not alias the framebuffer", n)
		}
	}
	if i.Page(-1) != nil || i.Page(8) != nil {
		t.Error("expected nil for pages outside the image")
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(255)),
		G: uint8(rand.Intn(255)),
		B: uint8(rand.Intn(255)),
		A: 0xFF,
	}
}
