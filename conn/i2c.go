// Package conn has the bus transports a display connection writes through.
package conn

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
)

// ErrAddr is returned for device addresses that do not fit in 7 bits.
var ErrAddr = errors.New("conn: invalid I²C address")

// I2C is a device on a periph.io I²C bus.
type I2C struct {
	bus  i2c.Bus
	conn conn.Conn
}

// OpenI2C opens the I²C bus by name in the periph registry; use "" to use
// the first available bus.
func OpenI2C(name string, addr uint8) (*I2C, error) {
	bus, err := i2creg.Open(name)
	if err != nil {
		return nil, err
	}
	c, err := NewI2C(bus, addr)
	if err != nil {
		_ = bus.Close()
		return nil, err
	}
	return c, nil
}

// NewI2C binds an already opened bus to the device at addr. Closing the
// returned device closes the bus if it implements io.Closer.
func NewI2C(bus i2c.Bus, addr uint8) (*I2C, error) {
	if addr > 0x7f {
		return nil, fmt.Errorf("%w %#02x", ErrAddr, addr)
	}
	return &I2C{
		bus:  bus,
		conn: &i2c.Dev{Bus: bus, Addr: uint16(addr)},
	}, nil
}

func (c *I2C) String() string {
	return fmt.Sprintf("I²C bus %s", c.bus)
}

// Bus is the underlying I²C bus.
func (c *I2C) Bus() i2c.Bus {
	return c.bus
}

// SetSpeed changes the bus clock.
func (c *I2C) SetSpeed(f physic.Frequency) error {
	return c.bus.SetSpeed(f)
}

func (c *I2C) Close() error {
	if closer, ok := c.bus.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// Write sends p as one bus transaction.
func (c *I2C) Write(p []byte) (int, error) {
	if err := c.conn.Tx(p, nil); err != nil {
		return 0, err
	}
	return len(p), nil
}
