package rx8900

import "time"

// MinutesAlarm returns the minute the alarm matches on (0-59).
func (d *Device) MinutesAlarm() (int, error) {
	val, err := d.readRegister(regMinutesAlarm)
	return bcdToDec(val & 0b0111_1111), err
}

// MinutesAlarmEnabled reports whether the minute takes part in the alarm
// match.
func (d *Device) MinutesAlarmEnabled() (bool, error) {
	return d.readBit(regMinutesAlarm, bitAlarmEnable)
}

// SetMinutesAlarm sets the minute the alarm matches on and whether that
// match is armed.
func (d *Device) SetMinutesAlarm(min int, enabled bool) error {
	val := decToBcd(min & 0b0111_1111)
	if enabled {
		val |= 1 << bitAlarmEnable
	}
	return d.writeRegister(regMinutesAlarm, val)
}

// HoursAlarm returns the hour the alarm matches on (0-23).
func (d *Device) HoursAlarm() (int, error) {
	val, err := d.readRegister(regHoursAlarm)
	return bcdToDec(val & 0b0011_1111), err
}

// HoursAlarmEnabled reports whether the hour takes part in the alarm match.
func (d *Device) HoursAlarmEnabled() (bool, error) {
	return d.readBit(regHoursAlarm, bitAlarmEnable)
}

// SetHoursAlarm sets the hour the alarm matches on and whether that match
// is armed.
func (d *Device) SetHoursAlarm(hour int, enabled bool) error {
	val := decToBcd(hour & 0b0011_1111)
	if enabled {
		val |= 1 << bitAlarmEnable
	}
	return d.writeRegister(regHoursAlarm, val)
}

// WeekdayAlarm returns the set of weekdays the alarm matches on. Only
// meaningful while the alarm is in week mode (see AlarmType).
func (d *Device) WeekdayAlarm() ([]time.Weekday, error) {
	val, err := d.readRegister(regWeekdayAlarm)
	if err != nil {
		return nil, err
	}
	var days []time.Weekday
	for day := time.Sunday; day <= time.Saturday; day++ {
		if val&encodeWeekday(day) != 0 {
			days = append(days, day)
		}
	}
	return days, nil
}

// WeekdayAlarmEnabled reports whether the weekday set takes part in the
// alarm match.
func (d *Device) WeekdayAlarmEnabled() (bool, error) {
	return d.readBit(regWeekdayAlarm, bitAlarmEnable)
}

// SetWeekdayAlarm sets the weekdays the alarm matches on.
func (d *Device) SetWeekdayAlarm(days []time.Weekday) error {
	var val uint8
	for _, day := range days {
		val |= encodeWeekday(day)
	}
	return d.writeRegister(regWeekdayAlarm, val)
}

// DayAlarm returns the day of the month the alarm matches on (1-31). Only
// meaningful while the alarm is in day mode (see AlarmType); it shares its
// register with the weekday alarm.
func (d *Device) DayAlarm() (int, error) {
	val, err := d.readRegister(regWeekdayAlarm)
	return bcdToDec(val & 0b0111_1111), err
}

// DayAlarmEnabled reports whether the day takes part in the alarm match.
func (d *Device) DayAlarmEnabled() (bool, error) {
	return d.readBit(regWeekdayAlarm, bitAlarmEnable)
}

// SetDayAlarm sets the day of the month the alarm matches on and whether
// that match is armed.
func (d *Device) SetDayAlarm(day int, enabled bool) error {
	val := decToBcd(day & 0b0111_1111)
	if enabled {
		val |= 1 << bitAlarmEnable
	}
	return d.writeRegister(regWeekdayAlarm, val)
}

// TimerCounter reads the 16-bit fixed-cycle timer preset. The counter lives
// in two byte registers, low byte at the lower address; it is always read
// and written through this composed form.
func (d *Device) TimerCounter() (uint16, error) {
	lo, err := d.readRegister(regTimerLow)
	if err != nil {
		return 0, err
	}
	hi, err := d.readRegister(regTimerHigh)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// SetTimerCounter writes the 16-bit fixed-cycle timer preset, low byte
// first.
func (d *Device) SetTimerCounter(val uint16) error {
	err := d.writeRegister(regTimerLow, uint8(val))
	if err != nil {
		return err
	}
	return d.writeRegister(regTimerHigh, uint8(val>>8))
}
