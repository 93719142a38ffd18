package rx8900

// SourceClock selects the clock source driving the fixed-cycle timer.
type SourceClock uint8

const (
	SourceClock4096Hz SourceClock = 0b00
	SourceClock64Hz   SourceClock = 0b01
	SourceClockSecond SourceClock = 0b10
	SourceClockMinute SourceClock = 0b11
)

// AlarmType selects whether the alarm register at 0x0A matches a set of
// weekdays or a day of the month.
type AlarmType uint8

const (
	WeekAlarm AlarmType = iota
	DayAlarm
)

// UpdateInterruptType selects how often the time update interrupt fires.
type UpdateInterruptType uint8

const (
	EverySecond UpdateInterruptType = iota
	EveryMinute
)

// FoutFrequency selects the frequency driven on the FOUT pin.
type FoutFrequency uint8

const (
	Fout32768Hz FoutFrequency = 0b00 // the chip also accepts 0b11 for this
	Fout1024Hz  FoutFrequency = 0b01
	Fout1Hz     FoutFrequency = 0b10
)

// CompensationInterval selects how often the temperature compensation
// circuit adjusts the oscillator.
type CompensationInterval uint8

const (
	Compensation500ms CompensationInterval = 0b00
	Compensation2s    CompensationInterval = 0b01
	Compensation10s   CompensationInterval = 0b10
	Compensation30s   CompensationInterval = 0b11
)

// SourceClock returns the timer source clock selection.
func (d *Device) SourceClock() (SourceClock, error) {
	code, err := d.readField(fieldTsel)
	return SourceClock(code), err
}

// SetSourceClock sets the timer source clock selection.
func (d *Device) SetSourceClock(sc SourceClock) error {
	return d.writeField(fieldTsel, uint8(sc))
}

// FoutFrequency returns the FOUT frequency selection. The chip decodes the
// codes 0b00 and 0b11 both as 32.768 kHz; both report Fout32768Hz.
func (d *Device) FoutFrequency() (FoutFrequency, error) {
	code, err := d.readField(fieldFsel)
	if err != nil {
		return 0, err
	}
	if code == 0b11 {
		return Fout32768Hz, nil
	}
	return FoutFrequency(code), nil
}

// SetFoutFrequency sets the FOUT frequency selection. 32.768 kHz is always
// written as its canonical code 0b00.
func (d *Device) SetFoutFrequency(f FoutFrequency) error {
	return d.writeField(fieldFsel, uint8(f))
}

// AlarmType returns the WADA selection: whether the 0x0A alarm register
// matches weekdays or a day of the month.
func (d *Device) AlarmType() (AlarmType, error) {
	wada, err := d.readBit(regExtension, bitWada)
	if wada {
		return DayAlarm, err
	}
	return WeekAlarm, err
}

// SetAlarmType sets the WADA selection.
func (d *Device) SetAlarmType(t AlarmType) error {
	return d.setBit(regExtension, bitWada, t == DayAlarm)
}

// UpdateInterruptType returns the USEL selection: whether the update
// interrupt fires every second or every minute.
func (d *Device) UpdateInterruptType() (UpdateInterruptType, error) {
	usel, err := d.readBit(regExtension, bitUsel)
	if usel {
		return EveryMinute, err
	}
	return EverySecond, err
}

// SetUpdateInterruptType sets the USEL selection.
func (d *Device) SetUpdateInterruptType(t UpdateInterruptType) error {
	return d.setBit(regExtension, bitUsel, t == EveryMinute)
}

// CompensationInterval returns the temperature compensation interval.
func (d *Device) CompensationInterval() (CompensationInterval, error) {
	code, err := d.readField(fieldCsel)
	return CompensationInterval(code), err
}

// SetCompensationInterval sets the temperature compensation interval.
func (d *Device) SetCompensationInterval(ci CompensationInterval) error {
	return d.writeField(fieldCsel, uint8(ci))
}

// TimerEnabled reports whether the fixed-cycle timer is running.
func (d *Device) TimerEnabled() (bool, error) {
	return d.readBit(regExtension, bitTE)
}

// SetTimerEnable starts or stops the fixed-cycle timer.
func (d *Device) SetTimerEnable(enable bool) error {
	return d.setBit(regExtension, bitTE, enable)
}

// Test reports the manufacturer test bit.
func (d *Device) Test() (bool, error) {
	return d.readBit(regExtension, bitTest)
}

// SetTest sets the manufacturer test bit. It must stay cleared in normal
// operation.
func (d *Device) SetTest(val bool) error {
	return d.setBit(regExtension, bitTest, val)
}

// UpdateFlag reports whether a time update event occurred.
func (d *Device) UpdateFlag() (bool, error) {
	return d.readBit(regFlag, bitUF)
}

// ClearUpdateFlag clears the update flag. The chip sets it again on the
// next update event.
func (d *Device) ClearUpdateFlag() error {
	return d.setBit(regFlag, bitUF, false)
}

// TimerFlag reports whether the fixed-cycle timer expired.
func (d *Device) TimerFlag() (bool, error) {
	return d.readBit(regFlag, bitTF)
}

// ClearTimerFlag clears the timer flag.
func (d *Device) ClearTimerFlag() error {
	return d.setBit(regFlag, bitTF, false)
}

// AlarmFlag reports whether the alarm matched.
func (d *Device) AlarmFlag() (bool, error) {
	return d.readBit(regFlag, bitAF)
}

// ClearAlarmFlag clears the alarm flag so the alarm can match again.
func (d *Device) ClearAlarmFlag() error {
	return d.setBit(regFlag, bitAF, false)
}

// VoltageLowFlag reports whether the supply dropped low enough that the
// clock data is no longer trustworthy and must be set again.
func (d *Device) VoltageLowFlag() (bool, error) {
	return d.readBit(regFlag, bitVLF)
}

// ClearVoltageLowFlag clears the voltage low flag.
func (d *Device) ClearVoltageLowFlag() error {
	return d.setBit(regFlag, bitVLF, false)
}

// VoltageDetectFlag reports whether the voltage detector observed a drop of
// the main supply.
func (d *Device) VoltageDetectFlag() (bool, error) {
	return d.readBit(regFlag, bitVDET)
}

// ClearVoltageDetectFlag clears the voltage detect flag.
func (d *Device) ClearVoltageDetectFlag() error {
	return d.setBit(regFlag, bitVDET, false)
}

// UpdateInterruptEnabled reports whether the update interrupt drives the
// INT pin.
func (d *Device) UpdateInterruptEnabled() (bool, error) {
	return d.readBit(regControl, bitUIE)
}

// SetUpdateInterruptEnable routes the update interrupt to the INT pin.
func (d *Device) SetUpdateInterruptEnable(enable bool) error {
	return d.setBit(regControl, bitUIE, enable)
}

// TimerInterruptEnabled reports whether the timer interrupt drives the INT
// pin.
func (d *Device) TimerInterruptEnabled() (bool, error) {
	return d.readBit(regControl, bitTIE)
}

// SetTimerInterruptEnable routes the timer interrupt to the INT pin.
func (d *Device) SetTimerInterruptEnable(enable bool) error {
	return d.setBit(regControl, bitTIE, enable)
}

// AlarmInterruptEnabled reports whether the alarm interrupt drives the INT
// pin.
func (d *Device) AlarmInterruptEnabled() (bool, error) {
	return d.readBit(regControl, bitAIE)
}

// SetAlarmInterruptEnable routes the alarm interrupt to the INT pin.
func (d *Device) SetAlarmInterruptEnable(enable bool) error {
	return d.setBit(regControl, bitAIE, enable)
}

// Reset reports the reset bit.
func (d *Device) Reset() (bool, error) {
	return d.readBit(regControl, bitReset)
}

// SetReset sets or clears the reset bit. While set, the chip holds the
// sub-second counter cleared.
func (d *Device) SetReset(val bool) error {
	return d.setBit(regControl, bitReset, val)
}

// Temperature returns the raw temperature register value.
func (d *Device) Temperature() (uint8, error) {
	return d.readRegister(regTemp)
}

// TemperatureCelsius returns the temperature converted per the datasheet
// formula (raw*2 - 187.19) / 3.218.
func (d *Device) TemperatureCelsius() (float32, error) {
	raw, err := d.Temperature()
	if err != nil {
		return 0, err
	}
	return (float32(raw)*2 - 187.19) / 3.218, nil
}

// VoltageDetectorOff reports whether the backup voltage detector is
// disabled.
func (d *Device) VoltageDetectorOff() (bool, error) {
	return d.readBit(regBackup, bitVdetOff)
}

// SetVoltageDetectorOff disables or enables the backup voltage detector.
func (d *Device) SetVoltageDetectorOff(off bool) error {
	return d.setBit(regBackup, bitVdetOff, off)
}

// SwitchOff reports whether the backup power switch is held open.
func (d *Device) SwitchOff() (bool, error) {
	return d.readBit(regBackup, bitSwOff)
}

// SetSwitchOff opens or closes the backup power switch.
func (d *Device) SetSwitchOff(off bool) error {
	return d.setBit(regBackup, bitSwOff, off)
}

// BackupSamplingTime returns the 2-bit backup mode sampling time code.
func (d *Device) BackupSamplingTime() (uint8, error) {
	return d.readField(fieldBksmp)
}

// SetBackupSamplingTime sets the 2-bit backup mode sampling time code.
func (d *Device) SetBackupSamplingTime(val uint8) error {
	return d.writeField(fieldBksmp, val)
}
