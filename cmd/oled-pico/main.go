//go:build tinygo

// Command oled-pico shows three lines of text on an SSD1306 attached to I2C1
// of a Raspberry Pi Pico, SDA on GPIO14 and SCL on GPIO15.
//
//	tinygo flash -target=pico ./cmd/oled-pico
package main

import (
	"machine"
	"time"

	display "github.com/BeatGlow/picodisplay"
	"github.com/BeatGlow/picodisplay/conn"
)

const (
	sdaPin = machine.GPIO14
	sclPin = machine.GPIO15
)

func main() {
	bus := machine.I2C1
	if err := bus.Configure(machine.I2CConfig{
		SDA:       sdaPin,
		SCL:       sclPin,
		Frequency: 400 * machine.KHz,
	}); err != nil {
		halt("could not configure I2C", err)
	}

	t, err := conn.NewTinyGoI2C(bus, display.DefaultAddr)
	if err != nil {
		halt("could not open the display", err)
	}
	output, err := display.SSD1306(display.NewConn(t))
	if err != nil {
		halt("could not initialize the display", err)
	}

	output.Clear()
	output.DrawString(0, 0, "OLA MUNDO")
	output.DrawString(0, 1, "RASPBERRY PI")
	output.DrawString(0, 2, "PICO")
	if err = output.Update(); err != nil {
		halt("could not update the display", err)
	}

	for {
		time.Sleep(time.Second)
	}
}

func halt(msg string, err error) {
	for {
		println(msg, err.Error())
		time.Sleep(time.Second)
	}
}
