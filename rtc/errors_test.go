package rtc

import (
	"errors"
	"testing"
)

func TestKindOf(t *testing.T) {
	if got := KindOf(nil); got != KindOther {
		t.Errorf("KindOf(nil) = %v, want KindOther", got)
	}
	if got := KindOf(errors.New("plain")); got != KindOther {
		t.Errorf("KindOf(plain) = %v, want KindOther", got)
	}
	for _, e := range []DateTimeError{
		ErrInvalidYear, ErrInvalidMonth, ErrInvalidDay,
		ErrInvalidWeekday, ErrInvalidHour, ErrInvalidMinute, ErrInvalidSecond,
	} {
		if got := KindOf(e); got != KindInvalidDateTime {
			t.Errorf("KindOf(%v) = %v, want KindInvalidDateTime", e, got)
		}
	}
}

func TestErrorKindString(t *testing.T) {
	cases := map[ErrorKind]string{
		KindOther:                   "other",
		KindBus:                     "bus",
		KindInvalidAddress:          "invalid_address",
		KindUnsupportedSqwFrequency: "unsupported_sqw_frequency",
		KindInvalidDateTime:         "invalid_datetime",
		KindInvalidBaseCentury:      "invalid_base_century",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}

func TestSquareWaveFreqHz(t *testing.T) {
	cases := map[SquareWaveFreq]uint32{
		SquareWave1Hz:     1,
		SquareWave1024Hz:  1024,
		SquareWave4096Hz:  4096,
		SquareWave8192Hz:  8192,
		SquareWave32768Hz: 32768,
		SquareWaveFreq(9): 0,
	}
	for f, want := range cases {
		if got := f.Hz(); got != want {
			t.Errorf("Hz() = %d, want %d", got, want)
		}
	}
}
