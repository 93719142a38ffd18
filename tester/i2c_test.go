package tester_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/tester"
)

var _ drivers.I2C = (*tester.I2CBus)(nil)

func TestRegisterFile(t *testing.T) {
	c := qt.New(t)
	bus := tester.NewI2CBus(c)
	dev := bus.NewDevice(0x32)

	c.Assert(bus.WriteRegister(0x32, 0x07, []byte{0x5A}), qt.IsNil)
	c.Assert(dev.Registers[0x07], qt.Equals, uint8(0x5A))

	buf := make([]byte, 1)
	c.Assert(bus.ReadRegister(0x32, 0x07, buf), qt.IsNil)
	c.Assert(buf[0], qt.Equals, uint8(0x5A))
	c.Assert(dev.Ops, qt.Equals, 2)
}

func TestFailOn(t *testing.T) {
	c := qt.New(t)
	bus := tester.NewI2CBus(c)
	dev := bus.NewDevice(0x32)
	dev.FailOn = 2

	c.Assert(bus.WriteRegister(0x32, 0x00, []byte{1}), qt.IsNil)
	err := bus.WriteRegister(0x32, 0x01, []byte{2})
	c.Assert(err, qt.Equals, tester.ErrTransaction)
	// the failed write must not touch the register file
	c.Assert(dev.Registers[0x00], qt.Equals, uint8(1))
	c.Assert(dev.Registers[0x01], qt.Equals, uint8(0))
}

func TestTx(t *testing.T) {
	c := qt.New(t)
	bus := tester.NewI2CBus(c)
	dev := bus.NewDevice(0x32)

	c.Assert(bus.Tx(0x32, []byte{0x10, 0xAB}, nil), qt.IsNil)
	c.Assert(dev.Registers[0x10], qt.Equals, uint8(0xAB))

	buf := make([]byte, 1)
	c.Assert(bus.Tx(0x32, []byte{0x10}, buf), qt.IsNil)
	c.Assert(buf[0], qt.Equals, uint8(0xAB))
}
