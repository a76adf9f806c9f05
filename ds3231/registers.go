package ds3231

const (
	// 7-bit I2C address (1101_000b), fixed by the part.
	AddressDefault = 0x68

	// --- Timekeeping registers (packed BCD) ---

	regSeconds = 0x00 // 00..59
	regMinutes = 0x01 // 00..59
	regHours   = 0x02 // 24h or 12h mode, selected by bit 6
	regDay     = 0x03 // day of week 1..7
	regDate    = 0x04 // day of month 01..31
	regMonth   = 0x05 // 01..12, bit 7 = century rollover
	regYear    = 0x06 // 00..99, relative to base century

	// --- Alarm registers ---

	regAlarm1Seconds = 0x07
	regAlarm1Minutes = 0x08
	regAlarm1Hours   = 0x09
	regAlarm1Day     = 0x0A
	regAlarm2Minutes = 0x0B
	regAlarm2Hours   = 0x0C
	regAlarm2Day     = 0x0D

	// --- Control / status / trim ---

	regControl     = 0x0E
	regStatus      = 0x0F
	regAgingOffset = 0x10 // signed trim, ~0.1 ppm/LSB
	regTempMSB     = 0x11 // signed integer °C
	regTempLSB     = 0x12 // fraction in bits 7:6, 0.25 °C/LSB

	// regLast bounds the documented register map; raw accesses past it are
	// rejected before any bus traffic.
	regLast = regTempLSB
)

// Control register (0x0E) bits.
const (
	ctrlA1IE  = 1 << 0 // alarm 1 interrupt enable
	ctrlA2IE  = 1 << 1 // alarm 2 interrupt enable
	ctrlINTCN = 1 << 2 // 1 = interrupt mode, 0 = square wave on INT/SQW
	ctrlRS0   = 1 << 3 // rate select low bit
	ctrlRS1   = 1 << 4 // rate select high bit
	ctrlCONV  = 1 << 5 // force temperature conversion
	ctrlBBSQW = 1 << 6 // battery-backed square wave enable
	ctrlEOSC  = 1 << 7 // oscillator disable on battery (active high)

	ctrlRSMask = ctrlRS0 | ctrlRS1
)

// Status register (0x0F) bits.
const (
	statA1F     = 1 << 0 // alarm 1 matched
	statA2F     = 1 << 1 // alarm 2 matched
	statBSY     = 1 << 2 // TCXO conversion in progress
	statEN32kHz = 1 << 3 // dedicated 32.768 kHz pin enable
	statOSF     = 1 << 7 // oscillator stopped since last clear
)

// Field masks applied before BCD decoding.
const (
	secondsMask = 0x7F
	minutesMask = 0x7F
	hours24Mask = 0x3F
	hour12Mode  = 1 << 6 // hours register is in 12-hour mode
	hour12PM    = 1 << 5
	hour12Mask  = 0x1F
	dayMask     = 0x07
	dateMask    = 0x3F
	monthMask   = 0x1F
	centuryBit  = 1 << 7 // folded into the month register
)
