// Package display drives a 128x64 SSD1306 OLED over I²C as a simple text
// display.
//
// The driver keeps a page organized framebuffer in memory. Drawing only
// touches the framebuffer, nothing reaches the panel until Update sends the
// whole frame:
//
//	c, err := display.OpenI2C(nil)
//	...
//	d, err := display.SSD1306(c)
//	...
//	d.DrawString(0, 0, "OLA MUNDO")
//	err = d.Update()
//
// Text uses a built-in 5x7 font that only has the letters A to Z and space,
// other characters are skipped. The display is also a [draw.Image], so the
// draw and text packages can render into the same framebuffer.
package display

import (
	"errors"

	"github.com/BeatGlow/picodisplay/conn"
	"github.com/BeatGlow/picodisplay/draw"
	"github.com/BeatGlow/picodisplay/pixel"
)

// Errors
var (
	ErrInvalidAddress = conn.ErrAddr
	ErrPin            = errors.New("display: GPIO pin not found")
)

// TransferError is returned when a bus transaction to the controller fails.
type TransferError struct {
	// Op is "command" or "data".
	Op  string
	Err error
}

func (e *TransferError) Error() string {
	return "display: " + e.Op + " transfer failed: " + e.Err.Error()
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

// Display is an OLED text display.
type Display interface {
	draw.Image

	String() string

	// Close turns the display off and closes the connection.
	Close() error

	// Clear the display buffer.
	Clear()

	// DrawChar draws one character with its top left corner at column x of
	// page y.
	DrawChar(x, y int, c rune)

	// DrawString draws text on page y, starting at column x.
	DrawString(x, y int, s string)

	// Buffer is the framebuffer in display RAM layout.
	Buffer() []byte

	// Update sends the framebuffer to the display.
	Update() error

	// Show toggles the display on or off.
	Show(bool) error

	// Invert toggles inverted (black on white) pixels.
	Invert(bool) error

	// SetContrast adjusts the contrast level.
	SetContrast(level uint8) error
}

type baseDisplay struct {
	*pixel.MonoVerticalLSBImage
	c Conn
}

func (d *baseDisplay) command(command byte, args ...byte) error {
	return d.c.Command(command, args...)
}

// commands sends every byte of seq as its own command transaction.
func (d *baseDisplay) commands(seq ...byte) (err error) {
	for _, b := range seq {
		if err = d.c.Command(b); err != nil {
			return
		}
	}
	return
}

func (d *baseDisplay) data(data ...byte) error {
	return d.c.Data(data...)
}

func (d *baseDisplay) Buffer() []byte {
	return d.Pix
}
