package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"periph.io/x/host/v3"

	display "github.com/BeatGlow/picodisplay"
	"github.com/BeatGlow/picodisplay/draw"
	"github.com/BeatGlow/picodisplay/pixel"
	"github.com/BeatGlow/picodisplay/text"
)

var defaultLines = []string{
	"OLA MUNDO",
	"RASPBERRY PI",
	"PICO",
}

func main() {
	busFlag := flag.String("i2c-bus", display.DefaultI2CConfig.Bus, "I²C bus name (default: use first available)")
	addrFlag := flag.Uint("i2c-addr", uint(display.DefaultI2CConfig.Addr), "I²C device address")
	sdaFlag := flag.String("sda", "", "SDA GPIO pin (default: the bus SDA pin)")
	sclFlag := flag.String("scl", "", "SCL GPIO pin (default: the bus SCL pin)")
	ttfFlag := flag.String("ttf", "", "TrueType font for an extra line of free text")
	sizeFlag := flag.Float64("size", 12, "TrueType font size in points")
	extraFlag := flag.String("text", "", "Extra line of free text, drawn with -ttf or the 7x13 face")
	borderFlag := flag.Bool("border", false, "Draw a border around the display")
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [line ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *debugFlag {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *addrFlag > 0x7f {
		fatal(fmt.Errorf("invalid I²C address %#x", *addrFlag))
	}

	lines := flag.Args()
	if len(lines) == 0 {
		lines = defaultLines
	}
	if len(lines) > display.Pages {
		fatal(fmt.Errorf("at most %d lines fit on the display, got %d", display.Pages, len(lines)))
	}

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	conn, err := display.OpenI2C(&display.I2CConfig{
		Bus:  *busFlag,
		Addr: uint8(*addrFlag),
		SDA:  *sdaFlag,
		SCL:  *sclFlag,
	})
	if err != nil {
		fatal(err)
	}
	slog.Info("using connection", "conn", conn.String())

	output, err := display.SSD1306(conn)
	if err != nil {
		_ = conn.Close()
		fatal(err)
	}
	defer output.Close()
	slog.Info("using driver", "display", output.String())

	output.Clear()
	for y, line := range lines {
		for _, c := range line {
			if !display.Supported(c) {
				slog.Warn("character not in the built-in font, skipped", "line", y, "char", string(c))
			}
		}
		output.DrawString(0, y, line)
	}

	if *extraFlag != "" {
		face := text.Default
		if *ttfFlag != "" {
			if face, err = text.LoadTrueType(*ttfFlag, *sizeFlag); err != nil {
				fatal(err)
			}
		}
		// Free text goes below the fixed font lines.
		top := len(lines) * pixel.PageHeight
		text.Draw(output, face, image.Pt(0, top), *extraFlag)
	}

	if *borderFlag {
		draw.Border(output, 0, pixel.On)
	}

	if err = output.Update(); err != nil {
		fatal(err)
	}
	slog.Info("text shown, hit control-c to stop", "lines", strings.Join(lines, " | "))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
}

func fatal(err error) {
	slog.Error("fatal", "err", err)
	os.Exit(1)
}
