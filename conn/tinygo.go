package conn

import (
	"fmt"

	"tinygo.org/x/drivers"
)

// TinyGoI2C is a device on a TinyGo I²C bus, such as machine.I2C1.
//
// The bus clock and pins are set up by machine.I2CConfig before the bus is
// handed over here.
type TinyGoI2C struct {
	bus  drivers.I2C
	addr uint16
}

// NewTinyGoI2C binds the TinyGo bus to the device at addr.
func NewTinyGoI2C(bus drivers.I2C, addr uint8) (*TinyGoI2C, error) {
	if addr > 0x7f {
		return nil, fmt.Errorf("%w %#02x", ErrAddr, addr)
	}
	return &TinyGoI2C{bus: bus, addr: uint16(addr)}, nil
}

func (c *TinyGoI2C) String() string {
	return fmt.Sprintf("TinyGo I²C device %#02x", c.addr)
}

// Close is a no-op, machine buses live for the duration of the program.
func (c *TinyGoI2C) Close() error {
	return nil
}

// Write sends p as one bus transaction.
func (c *TinyGoI2C) Write(p []byte) (int, error) {
	if err := c.bus.Tx(c.addr, p, nil); err != nil {
		return 0, err
	}
	return len(p), nil
}
