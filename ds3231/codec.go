package ds3231

import "github.com/ImplFerris/ds3231-rtc/rtc"

// BCD packing/unpacking and the century fold for the timekeeping registers.
//
// The device stores a two-digit year plus one rollover bit in the month
// register, so it can represent base*100 .. base*100+199 for a configured
// base century.

const (
	baseCenturyMin     = 19
	defaultBaseCentury = 20
	baseCenturyMax     = 21
)

// bcdEncode packs 0..99 into tens/units nibbles.
func bcdEncode(v uint8) uint8 {
	return (v/10)<<4 | v%10
}

// bcdDecode unpacks a nibble pair, rejecting any digit above 9 with the
// caller's field error.
func bcdDecode(b uint8, bad rtc.DateTimeError) (uint8, error) {
	hi := b >> 4
	lo := b & 0x0F
	if hi > 9 || lo > 9 {
		return 0, bad
	}
	return hi*10 + lo, nil
}

// decodeHours handles both hour modes: SetTime always writes 24-hour mode,
// but the register may have been left in 12-hour mode by other software.
func decodeHours(b uint8) (uint8, error) {
	if b&hour12Mode == 0 {
		return bcdDecode(b&hours24Mask, rtc.ErrInvalidHour)
	}
	h, err := bcdDecode(b&hour12Mask, rtc.ErrInvalidHour)
	if err != nil {
		return 0, err
	}
	if h < 1 || h > 12 {
		return 0, rtc.ErrInvalidHour
	}
	h %= 12
	if b&hour12PM != 0 {
		h += 12
	}
	return h, nil
}

// decodeTime unpacks the seven timekeeping registers into a validated
// DateTime, resolving the century bit against baseCentury.
func decodeTime(buf []byte, baseCentury uint8) (rtc.DateTime, error) {
	sec, err := bcdDecode(buf[0]&secondsMask, rtc.ErrInvalidSecond)
	if err != nil {
		return rtc.DateTime{}, err
	}
	min, err := bcdDecode(buf[1]&minutesMask, rtc.ErrInvalidMinute)
	if err != nil {
		return rtc.DateTime{}, err
	}
	hour, err := decodeHours(buf[2])
	if err != nil {
		return rtc.DateTime{}, err
	}
	weekday, err := bcdDecode(buf[3]&dayMask, rtc.ErrInvalidWeekday)
	if err != nil {
		return rtc.DateTime{}, err
	}
	day, err := bcdDecode(buf[4]&dateMask, rtc.ErrInvalidDay)
	if err != nil {
		return rtc.DateTime{}, err
	}
	month, err := bcdDecode(buf[5]&monthMask, rtc.ErrInvalidMonth)
	if err != nil {
		return rtc.DateTime{}, err
	}
	yy, err := bcdDecode(buf[6], rtc.ErrInvalidYear)
	if err != nil {
		return rtc.DateTime{}, err
	}

	year := uint16(baseCentury)*100 + uint16(yy)
	if buf[5]&centuryBit != 0 {
		year += 100
	}

	dt := rtc.DateTime{
		Year:    year,
		Month:   month,
		Day:     day,
		Weekday: weekday,
		Hour:    hour,
		Minute:  min,
		Second:  sec,
	}
	if err := dt.Validate(); err != nil {
		return rtc.DateTime{}, err
	}
	return dt, nil
}

// encodeTime is the exact inverse of decodeTime: seven packed BCD bytes into
// out, 24-hour mode forced, century bit set when the year falls in the upper
// of the two representable centuries. dt must already be validated.
func encodeTime(dt rtc.DateTime, baseCentury uint8, out []byte) error {
	off := int(dt.Year) - int(baseCentury)*100
	if off < 0 || off > 199 {
		return rtc.ErrInvalidYear
	}

	out[0] = bcdEncode(dt.Second)
	out[1] = bcdEncode(dt.Minute)
	out[2] = bcdEncode(dt.Hour) // bit 6 clear selects 24-hour mode
	out[3] = bcdEncode(dt.Weekday)
	out[4] = bcdEncode(dt.Day)
	out[5] = bcdEncode(dt.Month)
	if off >= 100 {
		out[5] |= centuryBit
	}
	out[6] = bcdEncode(uint8(off % 100))
	return nil
}
