package tester

import "errors"

// MaxRegisters is the size of the register file of an I2CDevice.
const MaxRegisters = 256

// ErrTransaction is returned by a device whose failure point (see
// I2CDevice.FailOn) has been reached.
var ErrTransaction = errors.New("tester: simulated bus failure")

// I2CDevice represents a fake I2C device on a fake I2C bus. Its register
// file can be seeded and inspected directly through Registers.
type I2CDevice struct {
	c    Failer
	addr uint8
	// Registers holds the byte-addressable register file of the device.
	Registers [MaxRegisters]uint8
	// Ops counts every transaction (read or write) addressed to the
	// device, including failed ones.
	Ops int
	// FailOn, when non-zero, makes the FailOn'th transaction (1-based)
	// and every later one fail with Err. Writes that fail leave the
	// register file untouched.
	FailOn int
	// Err is returned by failing transactions. Defaults to
	// ErrTransaction.
	Err error
}

// NewI2CDevice returns a new fake I2C device at the given bus address with a
// zeroed register file.
func NewI2CDevice(c Failer, addr uint8) *I2CDevice {
	return &I2CDevice{
		c:    c,
		addr: addr,
		Err:  ErrTransaction,
	}
}

// Addr returns the I2C address of the device.
func (d *I2CDevice) Addr() uint8 {
	return d.addr
}

// ReadRegister implements the read side of a write-then-read transaction.
func (d *I2CDevice) ReadRegister(r uint8, buf []byte) error {
	d.Ops++
	if d.failed() {
		return d.Err
	}
	d.assertRange(r, buf)
	copy(buf, d.Registers[r:])
	return nil
}

// WriteRegister implements a write transaction carrying the register address
// followed by buf.
func (d *I2CDevice) WriteRegister(r uint8, buf []byte) error {
	d.Ops++
	if d.failed() {
		return d.Err
	}
	d.assertRange(r, buf)
	copy(d.Registers[r:], buf)
	return nil
}

func (d *I2CDevice) failed() bool {
	return d.FailOn != 0 && d.Ops >= d.FailOn
}

func (d *I2CDevice) assertRange(r uint8, buf []byte) {
	if int(r)+len(buf) > MaxRegisters {
		d.c.Fatalf("register access [%#x, %#x) out of range", r, int(r)+len(buf))
	}
}

// I2CBus implements the drivers.I2C interface for a set of fake devices.
type I2CBus struct {
	c       Failer
	devices []*I2CDevice
}

// NewI2CBus returns a new fake I2C bus with no devices attached.
func NewI2CBus(c Failer) *I2CBus {
	return &I2CBus{c: c}
}

// NewDevice creates a fake device at the given address, attaches it to the
// bus and returns it.
func (b *I2CBus) NewDevice(addr uint8) *I2CDevice {
	d := NewI2CDevice(b.c, addr)
	b.AddDevice(d)
	return d
}

// AddDevice attaches a device to the bus. It fails if a device with the same
// address is already attached.
func (b *I2CBus) AddDevice(d *I2CDevice) {
	for _, dev := range b.devices {
		if dev.Addr() == d.Addr() {
			b.c.Fatalf("duplicate device at address %#x", d.Addr())
		}
	}
	b.devices = append(b.devices, d)
}

// ReadRegister implements drivers.I2C.
func (b *I2CBus) ReadRegister(addr uint8, r uint8, buf []byte) error {
	return b.find(addr).ReadRegister(r, buf)
}

// WriteRegister implements drivers.I2C.
func (b *I2CBus) WriteRegister(addr uint8, r uint8, buf []byte) error {
	return b.find(addr).WriteRegister(r, buf)
}

// Tx implements drivers.I2C. A transaction with both a write and a read part
// is treated as a register read from w[0]; a pure write as a register write
// to w[0].
func (b *I2CBus) Tx(addr uint16, w, r []byte) error {
	d := b.find(uint8(addr))
	switch {
	case len(w) == 0:
		b.c.Fatalf("transaction without a register address")
		return nil
	case len(r) > 0:
		return d.ReadRegister(w[0], r)
	default:
		return d.WriteRegister(w[0], w[1:])
	}
}

func (b *I2CBus) find(addr uint8) *I2CDevice {
	for _, dev := range b.devices {
		if dev.Addr() == addr {
			return dev
		}
	}
	b.c.Fatalf("no device at address %#x", addr)
	return nil
}
