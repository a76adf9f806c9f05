// Package rtc defines the calendar value type, error classification and
// capability interfaces shared by real-time-clock drivers. It is
// device-independent: drivers translate between these types and their own
// register layouts.
//
// The package is TinyGo-friendly: no fmt, no allocations on library paths.
package rtc

import (
	"time"

	"github.com/ImplFerris/ds3231-rtc/x/mathx"
)

// DateTimeError reports which calendar field failed range validation.
// It is a value, comparable, and classifies as KindInvalidDateTime.
type DateTimeError uint8

const (
	// ErrInvalidYear: year outside 1900..2199.
	ErrInvalidYear DateTimeError = iota + 1
	// ErrInvalidMonth: month outside 1..12.
	ErrInvalidMonth
	// ErrInvalidDay: day outside 1..days-in-month (leap-year aware).
	ErrInvalidDay
	// ErrInvalidWeekday: weekday outside 1..7.
	ErrInvalidWeekday
	// ErrInvalidHour: hour outside 0..23.
	ErrInvalidHour
	// ErrInvalidMinute: minute outside 0..59.
	ErrInvalidMinute
	// ErrInvalidSecond: second outside 0..59.
	ErrInvalidSecond
)

func (e DateTimeError) Error() string {
	switch e {
	case ErrInvalidYear:
		return "rtc: invalid year"
	case ErrInvalidMonth:
		return "rtc: invalid month"
	case ErrInvalidDay:
		return "rtc: invalid day"
	case ErrInvalidWeekday:
		return "rtc: invalid weekday"
	case ErrInvalidHour:
		return "rtc: invalid hour"
	case ErrInvalidMinute:
		return "rtc: invalid minute"
	case ErrInvalidSecond:
		return "rtc: invalid second"
	default:
		return "rtc: invalid datetime"
	}
}

// Kind classifies every DateTimeError as an invalid-datetime failure.
func (e DateTimeError) Kind() ErrorKind { return KindInvalidDateTime }

// DateTime is a plain calendar value. Weekday is 1..7 with a
// device/application-defined start of week (the DS3231 and friends only
// require it to advance and roll over).
type DateTime struct {
	Year    uint16
	Month   uint8 // 1..12
	Day     uint8 // 1..31
	Weekday uint8 // 1..7
	Hour    uint8 // 0..23
	Minute  uint8
	Second  uint8
}

// NewDateTime builds and validates a DateTime in one step.
func NewDateTime(year uint16, month, day, weekday, hour, minute, second uint8) (DateTime, error) {
	dt := DateTime{
		Year:    year,
		Month:   month,
		Day:     day,
		Weekday: weekday,
		Hour:    hour,
		Minute:  minute,
		Second:  second,
	}
	if err := dt.Validate(); err != nil {
		return DateTime{}, err
	}
	return dt, nil
}

// Validate range-checks every field, including month lengths and leap years.
func (dt DateTime) Validate() error {
	if !mathx.Between(dt.Year, 1900, 2199) {
		return ErrInvalidYear
	}
	if !mathx.Between(dt.Month, 1, 12) {
		return ErrInvalidMonth
	}
	if !mathx.Between(dt.Day, 1, DaysInMonth(dt.Year, dt.Month)) {
		return ErrInvalidDay
	}
	if !mathx.Between(dt.Weekday, 1, 7) {
		return ErrInvalidWeekday
	}
	if dt.Hour > 23 {
		return ErrInvalidHour
	}
	if dt.Minute > 59 {
		return ErrInvalidMinute
	}
	if dt.Second > 59 {
		return ErrInvalidSecond
	}
	return nil
}

// IsLeapYear follows the Gregorian rule.
func IsLeapYear(year uint16) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the length of month in year, 0 for an invalid month.
func DaysInMonth(year uint16, month uint8) uint8 {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// Time converts to a stdlib time.Time in UTC. Weekday is not carried over;
// time.Time derives it from the date.
func (dt DateTime) Time() time.Time {
	return time.Date(int(dt.Year), time.Month(dt.Month), int(dt.Day),
		int(dt.Hour), int(dt.Minute), int(dt.Second), 0, time.UTC)
}

// FromTime converts a time.Time (interpreted in its own location) to a
// DateTime. Weekday maps Sunday..Saturday to 1..7.
func FromTime(t time.Time) DateTime {
	return DateTime{
		Year:    uint16(t.Year()),
		Month:   uint8(t.Month()),
		Day:     uint8(t.Day()),
		Weekday: uint8(t.Weekday()) + 1,
		Hour:    uint8(t.Hour()),
		Minute:  uint8(t.Minute()),
		Second:  uint8(t.Second()),
	}
}

// String renders "YYYY-MM-DD hh:mm:ss" without fmt, suitable for println on
// MCU targets.
func (dt DateTime) String() string {
	var buf [19]byte
	put2 := func(i int, v uint8) {
		buf[i] = '0' + v/10
		buf[i+1] = '0' + v%10
	}
	put2(0, uint8(dt.Year/100))
	put2(2, uint8(dt.Year%100))
	buf[4] = '-'
	put2(5, dt.Month)
	buf[7] = '-'
	put2(8, dt.Day)
	buf[10] = ' '
	put2(11, dt.Hour)
	buf[13] = ':'
	put2(14, dt.Minute)
	buf[16] = ':'
	put2(17, dt.Second)
	return string(buf[:])
}
