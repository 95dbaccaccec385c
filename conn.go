package display

import (
	"fmt"
	"log/slog"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/pin"

	"github.com/BeatGlow/picodisplay/conn"
)

// Conn is the connection interface for communicating with hardware.
type Conn interface {
	String() string

	// Close the connection.
	Close() error

	// Command sends a command byte with optional arguments in one transaction.
	Command(byte, ...byte) error

	// Data sends data bytes in one transaction.
	Data(...byte) error
}

// Transport writes complete I²C transactions to one device, such as
// [conn.I2C] or [conn.TinyGoI2C].
type Transport interface {
	String() string
	Close() error
	Write([]byte) (int, error)
}

// Defaults for SSD1306 modules.
const (
	DefaultAddr  = 0x3c
	DefaultSpeed = 400 * physic.KiloHertz
)

// I2CConfig describes the I²C bus configuration.
type I2CConfig struct {
	// Bus is the periph registry name of the I²C bus, use "" to use the
	// first available bus.
	Bus string

	// Addr is the I²C address.
	Addr uint8

	// SDA and SCL are GPIO pin names in the periph registry. Leave empty to
	// use the pins the bus reports.
	SDA string
	SCL string
}

var DefaultI2CConfig = I2CConfig{
	Addr: DefaultAddr,
}

// OpenI2C opens the configured bus and sets it up with SetupI2C.
func OpenI2C(config *I2CConfig) (Conn, error) {
	if config == nil {
		config = new(I2CConfig)
		*config = DefaultI2CConfig
	}

	sda, err := lookupPin(config.SDA)
	if err != nil {
		return nil, err
	}
	scl, err := lookupPin(config.SCL)
	if err != nil {
		return nil, err
	}

	t, err := conn.OpenI2C(config.Bus, config.Addr)
	if err != nil {
		return nil, err
	}
	c, err := SetupI2C(t.Bus(), sda, scl, config.Addr)
	if err != nil {
		_ = t.Close()
		return nil, err
	}
	return c, nil
}

func lookupPin(name string) (gpio.PinIn, error) {
	if name == "" {
		return nil, nil
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("%w: %q", ErrPin, name)
	}
	return p, nil
}

// SetupI2C brings up bus for the display at addr: the clock runs at
// DefaultSpeed and both pins get a pull-up and are routed to the I²C
// function.
//
// A nil pin falls back to the matching pin of the bus if it implements
// [i2c.Pins]. Pins without an I²C function only get the pull-up, on most
// boards the bus pins are already muxed.
func SetupI2C(bus i2c.Bus, sda, scl gpio.PinIn, addr uint8) (Conn, error) {
	t, err := conn.NewI2C(bus, addr)
	if err != nil {
		return nil, err
	}
	if err = t.SetSpeed(DefaultSpeed); err != nil {
		return nil, fmt.Errorf("display: set bus speed to %s: %w", DefaultSpeed, err)
	}

	if pins, ok := bus.(i2c.Pins); ok {
		if sda == nil {
			sda = pins.SDA()
		}
		if scl == nil {
			scl = pins.SCL()
		}
	}
	if err = setupPin(sda, i2c.SDA); err != nil {
		return nil, err
	}
	if err = setupPin(scl, i2c.SCL); err != nil {
		return nil, err
	}
	return NewConn(t), nil
}

// setupPin enables the pull-up on p, then selects fn. Switching to input
// for the pull-up drops the pin function, so an already routed pin is
// routed again.
func setupPin(p gpio.PinIn, fn pin.Func) error {
	if p == nil || p == gpio.INVALID {
		return nil
	}
	pf, ok := p.(pin.PinFunc)
	var target pin.Func
	if ok {
		target = i2cFunc(pf, fn)
	}

	if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return fmt.Errorf("display: pull-up on %s: %w", p, err)
	}
	if target == "" {
		slog.Debug("display: pin has no I²C function select", "pin", p.String(), "func", string(fn))
		return nil
	}
	if err := pf.SetFunc(target); err != nil {
		return fmt.Errorf("display: set %s to %s: %w", p, target, err)
	}
	slog.Debug("display: routed pin", "pin", p.String(), "func", string(target))
	return nil
}

// i2cFunc returns the specialized function of pf matching fn, such as
// I2C1_SDA for I2C_SDA, or "" if pf has none.
func i2cFunc(pf pin.PinFunc, fn pin.Func) pin.Func {
	if f := pf.Func(); f.Generalize() == fn {
		return f
	}
	for _, f := range pf.SupportedFuncs() {
		if f.Generalize() == fn {
			return f
		}
	}
	return ""
}

type i2cConn struct {
	t Transport
}

// NewConn frames SSD1xxx commands and data with I²C control bytes on t.
func NewConn(t Transport) Conn {
	return &i2cConn{t: t}
}

func (c *i2cConn) String() string {
	return c.t.String()
}

func (c *i2cConn) Close() error {
	return c.t.Close()
}

func (c *i2cConn) Command(cmnd byte, args ...byte) error {
	if _, err := c.t.Write(append([]byte{i2cCommand, cmnd}, args...)); err != nil {
		return &TransferError{Op: "command", Err: err}
	}
	return nil
}

func (c *i2cConn) Data(data ...byte) error {
	if _, err := c.t.Write(append([]byte{i2cData}, data...)); err != nil {
		return &TransferError{Op: "data", Err: err}
	}
	return nil
}
