package display

import (
	"fmt"
	"log/slog"

	"github.com/BeatGlow/picodisplay/pixel"
)

// SSD1306 panel geometry.
const (
	Width  = 128
	Height = 64
	Pages  = Height / pixel.PageHeight
)

// ssd1306InitSequence brings the controller up for a 128x64 panel with the
// internal charge pump. Arguments follow their opcode, the order matters.
var ssd1306InitSequence = []byte{
	ssd1xxxSetDisplayOff,
	ssd1xxxSetDisplayClockDiv, 0x80,
	ssd1xxxSetMultiplexRatio, Height - 1,
	ssd1xxxSetDisplayOffset, 0x00,
	ssd1xxxSetStartLine,
	ssd1xxxSetChargePump, 0x14,
	ssd1xxxSetMemoryMode, 0x00, // horizontal
	ssd1xxxSetSegmentRemap,
	ssd1xxxSetComScanDec,
	ssd1xxxSetComPins, 0x12,
	ssd1xxxSetContrast, 0xCF,
	ssd1xxxSetPrecharge, 0xF1,
	ssd1xxxSetVCOMDeselect, 0x40,
	ssd1xxxSetDisplayAllOnResume,
	ssd1xxxSetNormalDisplay,
	ssd1xxxSetDisplayOn,
}

// ssd1306Window selects the full frame for the following data transfer.
var ssd1306Window = []byte{
	ssd1xxxSetColumnAddr, 0, Width - 1,
	ssd1xxxSetPageAddr, 0, Pages - 1,
}

type ssd1306 struct {
	baseDisplay
	halted bool
}

// SSD1306 initializes the controller on conn and blanks the panel.
//
// Every command byte goes out as its own I²C transaction.
func SSD1306(conn Conn) (Display, error) {
	d := &ssd1306{
		baseDisplay: baseDisplay{
			MonoVerticalLSBImage: pixel.NewMonoVerticalLSBImage(Width, Height),
			c:                    conn,
		},
	}
	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *ssd1306) String() string {
	return fmt.Sprintf("SSD1306 OLED %dx%d on %s", Width, Height, d.c)
}

func (d *ssd1306) init() (err error) {
	slog.Debug("display: initializing SSD1306", "conn", d.c.String())
	if err = d.commands(ssd1306InitSequence...); err != nil {
		return
	}
	d.Clear()
	return d.Update()
}

func (d *ssd1306) Close() error {
	if !d.halted {
		if err := d.Show(false); err != nil {
			_ = d.c.Close()
			return err
		}
	}
	return d.c.Close()
}

// DrawChar draws c at column x of page y. Coordinates off the display and
// characters without a glyph are ignored. Glyph columns that run past the
// right edge are dropped one by one.
func (d *ssd1306) DrawChar(x, y int, c rune) {
	if x < 0 || y < 0 || x >= Width || y >= Pages {
		return
	}
	g, ok := glyph(c)
	if !ok {
		return
	}
	page := d.Page(y)
	for i, col := range g {
		if x+i < Width {
			page[x+i] = col
		}
	}
}

// DrawString draws s from column x of page y, moving right by one glyph plus
// a blank column per character. It stops at the right edge, there is no
// wrapping.
func (d *ssd1306) DrawString(x, y int, s string) {
	for _, c := range s {
		d.DrawChar(x, y, c)
		x += glyphAdvance
		if x >= Width {
			break
		}
	}
}

// Update sends the whole framebuffer, there is no partial update.
func (d *ssd1306) Update() error {
	if err := d.commands(ssd1306Window...); err != nil {
		return err
	}
	slog.Debug("display: update", "bytes", len(d.Pix))
	return d.data(d.Pix...)
}

func (d *ssd1306) Show(show bool) (err error) {
	if show {
		err = d.command(ssd1xxxSetDisplayOn)
	} else {
		err = d.command(ssd1xxxSetDisplayOff)
	}
	if err == nil {
		d.halted = !show
	}
	return
}

func (d *ssd1306) Invert(invert bool) error {
	if invert {
		return d.command(ssd1xxxSetInvertDisplay)
	}
	return d.command(ssd1xxxSetNormalDisplay)
}

func (d *ssd1306) SetContrast(level uint8) error {
	return d.command(ssd1xxxSetContrast, level)
}
