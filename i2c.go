// Package drivers provides the interfaces shared by the device drivers in
// this collection.
package drivers

// I2C represents an I2C bus. It is notably implemented by the machine.I2C
// type on TinyGo targets, and by tester.I2CBus for tests.
type I2C interface {
	// ReadRegister performs a write-then-read transaction: the register
	// address r is written to the device at addr, then len(buf) bytes are
	// read back into buf.
	ReadRegister(addr uint8, r uint8, buf []byte) error

	// WriteRegister writes the register address r followed by buf to the
	// device at addr in a single transaction.
	WriteRegister(addr uint8, r uint8, buf []byte) error

	// Tx performs a raw transaction: write the bytes in w, then read
	// len(r) bytes into r. Either slice may be empty.
	Tx(addr uint16, w, r []byte) error
}
