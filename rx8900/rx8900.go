// Package rx8900 implements a driver for the Epson RX8900 Real-Time Clock
// (RTC). The chip's compatible register bank follows the RX-8803 layout; the
// extended bank adds a temperature readout and backup power control.
//
// Every operation is one or more blocking bus transactions; nothing is
// cached or batched. Single-bit and field updates are read-modify-write over
// two transactions, so the driver must be the only agent talking to the chip
// unless the caller provides bus-level locking.
//
// Datasheet: https://download.epsondevice.com/td/pdf/app/RX8900SA_en.pdf
package rx8900

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"
)

// ErrInvalidWeekday is returned when a weekday register does not hold
// exactly one of the seven one-hot day codes.
var ErrInvalidWeekday = errors.New("rx8900: invalid weekday register value")

type Device struct {
	bus     drivers.I2C
	Address uint8
}

func New(i2c drivers.I2C) Device {
	return Device{
		bus:     i2c,
		Address: DefaultAddress,
	}
}

// Configure establishes a known power-on configuration: timer and all
// interrupts disabled, FOUT select and test bits cleared, voltage flags
// cleared, voltage detector kept running and the backup switch opened. The
// steps run in a fixed order and the first failing write aborts the
// sequence; registers written by earlier steps stay written.
func (d *Device) Configure() error {
	err := d.SetTimerEnable(false)
	if err != nil {
		return err
	}
	err = d.setBit(regExtension, bitFsel0, false)
	if err != nil {
		return err
	}
	err = d.setBit(regExtension, bitFsel1, false)
	if err != nil {
		return err
	}
	err = d.SetTest(false)
	if err != nil {
		return err
	}
	err = d.ClearVoltageDetectFlag()
	if err != nil {
		return err
	}
	err = d.ClearVoltageLowFlag()
	if err != nil {
		return err
	}
	err = d.SetAlarmInterruptEnable(false)
	if err != nil {
		return err
	}
	err = d.SetTimerInterruptEnable(false)
	if err != nil {
		return err
	}
	err = d.SetUpdateInterruptEnable(false)
	if err != nil {
		return err
	}
	err = d.SetVoltageDetectorOff(false)
	if err != nil {
		return err
	}
	return d.SetSwitchOff(true)
}

// Now reads the current date and time. The year register holds only two
// digits; the driver places it in the 2000s century. The six registers are
// read one transaction each, so a rollover between reads can produce a
// skewed result.
//
// If the registers do not decode to a valid time of day, midnight is
// substituted and the date kept; the chip can hold such values after backup
// power ran out.
func (d *Device) Now() (time.Time, error) {
	sec, err := d.Seconds()
	if err != nil {
		return time.Time{}, err
	}
	min, err := d.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	hour, err := d.Hours()
	if err != nil {
		return time.Time{}, err
	}
	day, err := d.Day()
	if err != nil {
		return time.Time{}, err
	}
	month, err := d.Month()
	if err != nil {
		return time.Time{}, err
	}
	year, err := d.Year()
	if err != nil {
		return time.Time{}, err
	}

	if hour > 23 || min > 59 || sec > 59 {
		hour, min, sec = 0, 0, 0
	}
	return time.Date(2000+year, time.Month(month), day, hour, min, sec, 0, time.UTC), nil
}

// Set writes t to the clock, truncated to whole seconds. The registers are
// written one transaction each, in the order year, month, day, weekday,
// hour, minute, second. A failure aborts the sequence without rolling back
// registers already written.
func (d *Device) Set(t time.Time) error {
	err := d.SetYear(t.Year() % 100)
	if err != nil {
		return err
	}
	err = d.SetMonth(int(t.Month()))
	if err != nil {
		return err
	}
	err = d.SetDay(t.Day())
	if err != nil {
		return err
	}
	err = d.SetWeekday(t.Weekday())
	if err != nil {
		return err
	}
	err = d.SetHours(t.Hour())
	if err != nil {
		return err
	}
	err = d.SetMinutes(t.Minute())
	if err != nil {
		return err
	}
	return d.SetSeconds(t.Second())
}

// Seconds returns the seconds register (0-59).
func (d *Device) Seconds() (int, error) {
	val, err := d.readRegister(regSeconds)
	return bcdToDec(val & 0b0111_1111), err
}

// SetSeconds sets the seconds register (0-59).
func (d *Device) SetSeconds(sec int) error {
	return d.writeRegister(regSeconds, decToBcd(sec&0b0111_1111))
}

// Minutes returns the minutes register (0-59).
func (d *Device) Minutes() (int, error) {
	val, err := d.readRegister(regMinutes)
	return bcdToDec(val & 0b0111_1111), err
}

// SetMinutes sets the minutes register (0-59).
func (d *Device) SetMinutes(min int) error {
	return d.writeRegister(regMinutes, decToBcd(min&0b0111_1111))
}

// Hours returns the hours register (0-23). The chip is driven in 24-hour
// mode only.
func (d *Device) Hours() (int, error) {
	val, err := d.readRegister(regHours)
	return bcdToDec(val & 0b0011_1111), err
}

// SetHours sets the hours register (0-23).
func (d *Device) SetHours(hour int) error {
	return d.writeRegister(regHours, decToBcd(hour&0b0011_1111))
}

// Weekday returns the day of the week. The chip counts the weekday
// independently of the date; the two are not cross-checked.
func (d *Device) Weekday() (time.Weekday, error) {
	val, err := d.readRegister(regWeekday)
	if err != nil {
		return time.Sunday, err
	}
	return decodeWeekday(val)
}

// SetWeekday sets the day of the week.
func (d *Device) SetWeekday(day time.Weekday) error {
	return d.writeRegister(regWeekday, encodeWeekday(day))
}

// Day returns the day-of-month register (1-31).
func (d *Device) Day() (int, error) {
	val, err := d.readRegister(regDay)
	return bcdToDec(val & 0b0011_1111), err
}

// SetDay sets the day-of-month register (1-31).
func (d *Device) SetDay(day int) error {
	return d.writeRegister(regDay, decToBcd(day&0b0011_1111))
}

// Month returns the month register (1-12).
func (d *Device) Month() (int, error) {
	val, err := d.readRegister(regMonth)
	return bcdToDec(val & 0b0001_1111), err
}

// SetMonth sets the month register (1-12).
func (d *Device) SetMonth(month int) error {
	return d.writeRegister(regMonth, decToBcd(month&0b0001_1111))
}

// Year returns the year register as two digits within the 2000s century
// (0-99); the chip has no century storage.
func (d *Device) Year() (int, error) {
	val, err := d.readRegister(regYear)
	return bcdToDec(val), err
}

// SetYear sets the year register as two digits within the 2000s century
// (0-99).
func (d *Device) SetYear(year int) error {
	return d.writeRegister(regYear, decToBcd(year&0xFF))
}

// RAM reads the general purpose scratch register. It survives on backup
// power and has no effect on the clock.
func (d *Device) RAM() (uint8, error) {
	return d.readRegister(regRAM)
}

// SetRAM writes the general purpose scratch register.
func (d *Device) SetRAM(val uint8) error {
	return d.writeRegister(regRAM, val)
}

// readRegister performs one write-then-read transaction: the register
// address, then one byte back.
func (d *Device) readRegister(reg uint8) (uint8, error) {
	buf := [1]byte{}
	err := d.bus.ReadRegister(d.Address, reg, buf[:])
	return buf[0], err
}

// writeRegister performs one write transaction carrying the register
// address and the new value.
func (d *Device) writeRegister(reg, val uint8) error {
	buf := [1]byte{val}
	return d.bus.WriteRegister(d.Address, reg, buf[:])
}

func (d *Device) readBit(reg, bit uint8) (bool, error) {
	val, err := d.readRegister(reg)
	return val&(1<<bit) != 0, err
}

// setBit rewrites a single bit of a register with a read-modify-write,
// keeping every other bit as it was read. The read and the write are
// separate transactions; another bus master touching the register in
// between will have its change overwritten.
func (d *Device) setBit(reg, bit uint8, val bool) error {
	cur, err := d.readRegister(reg)
	if err != nil {
		return err
	}
	cur &^= 1 << bit
	if val {
		cur |= 1 << bit
	}
	return d.writeRegister(reg, cur)
}

// readField extracts a multi-bit field from its register.
func (d *Device) readField(f field) (uint8, error) {
	val, err := d.readRegister(f.reg)
	return (val & f.mask) >> f.shift, err
}

// writeField rewrites a multi-bit field with a read-modify-write, keeping
// the bits outside the field's mask as they were read.
func (d *Device) writeField(f field, val uint8) error {
	cur, err := d.readRegister(f.reg)
	if err != nil {
		return err
	}
	return d.writeRegister(f.reg, (cur&^f.mask)|(val<<f.shift&f.mask))
}

// decToBcd converts int to BCD
func decToBcd(dec int) uint8 {
	return uint8(dec + 6*(dec/10))
}

// bcdToDec converts BCD to int
func bcdToDec(bcd uint8) int {
	return int(bcd - 6*(bcd>>4))
}

// The weekday registers hold a one-hot byte: bit 0 is Sunday through bit 6
// Saturday.

func encodeWeekday(day time.Weekday) uint8 {
	return 1 << uint(day)
}

func decodeWeekday(val uint8) (time.Weekday, error) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if val == 1<<uint(day) {
			return day, nil
		}
	}
	return time.Sunday, ErrInvalidWeekday
}
