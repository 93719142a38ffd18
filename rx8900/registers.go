package rx8900

// DefaultAddress is the 7-bit I2C address of the RX8900. It is fixed by the
// chip and cannot be changed.
const DefaultAddress = 0x32

// Register addresses. The compatible bank (0x00-0x0F) matches the RX-8803
// register layout; the extended bank (0x10-0x1F) mirrors it and adds the
// temperature and backup-function registers. 0x19 and 0x1A are unpopulated.
const (
	regSeconds      = 0x00
	regMinutes      = 0x01
	regHours        = 0x02
	regWeekday      = 0x03
	regDay          = 0x04
	regMonth        = 0x05
	regYear         = 0x06
	regRAM          = 0x07
	regMinutesAlarm = 0x08
	regHoursAlarm   = 0x09
	regWeekdayAlarm = 0x0A // day alarm when WADA is set
	regTimerLow     = 0x0B
	regTimerHigh    = 0x0C
	regExtension    = 0x0D
	regFlag         = 0x0E
	regControl      = 0x0F

	regExtSeconds   = 0x10
	regExtMinutes   = 0x11
	regExtHours     = 0x12
	regExtWeekday   = 0x13
	regExtDay       = 0x14
	regExtMonth     = 0x15
	regExtYear      = 0x16
	regTemp         = 0x17
	regBackup       = 0x18
	regExtTimerLow  = 0x1B
	regExtTimerHigh = 0x1C
	regExtExtension = 0x1D
	regExtFlag      = 0x1E
	regExtControl   = 0x1F
)

// Extension register bits.
const (
	bitTest  = 7
	bitWada  = 6 // week/day alarm select
	bitUsel  = 5 // update interrupt select
	bitTE    = 4 // timer enable
	bitFsel1 = 3
	bitFsel0 = 2
	bitTsel1 = 1
	bitTsel0 = 0
)

// Flag register bits.
const (
	bitUF   = 5 // update flag
	bitTF   = 4 // timer flag
	bitAF   = 3 // alarm flag
	bitVLF  = 1 // voltage low flag
	bitVDET = 0 // voltage detect flag
)

// Control register bits.
const (
	bitCsel1 = 7
	bitCsel0 = 6
	bitUIE   = 5 // update interrupt enable
	bitTIE   = 4 // timer interrupt enable
	bitAIE   = 3 // alarm interrupt enable
	bitReset = 0
)

// Backup function register bits.
const (
	bitVdetOff = 3 // voltage detector off
	bitSwOff   = 2 // switch off
	bitBksmp1  = 1
	bitBksmp0  = 0
)

// Alarm registers use bit 7 as the enable bit.
const bitAlarmEnable = 7

// field describes a multi-bit configuration field packed into a shared
// register: the bits selected by mask, right-aligned after shift.
type field struct {
	reg   uint8
	mask  uint8
	shift uint8
}

var (
	fieldFsel  = field{regExtension, 0b0000_1100, 2} // fout frequency select
	fieldTsel  = field{regExtension, 0b0000_0011, 0} // timer source clock select
	fieldCsel  = field{regControl, 0b1100_0000, 6}   // compensation interval select
	fieldBksmp = field{regBackup, 0b0000_0011, 0}    // backup mode sampling time
)
