package ds3231

import (
	"errors"
	"testing"

	"github.com/ImplFerris/ds3231-rtc/rtc"
)

func TestErrorKindMappings(t *testing.T) {
	cases := []struct {
		err  error
		want rtc.ErrorKind
	}{
		{&BusError{Err: errors.New("nack")}, rtc.KindBus},
		{ErrInvalidAddress, rtc.KindInvalidAddress},
		{ErrUnsupportedSqwFrequency, rtc.KindUnsupportedSqwFrequency},
		{ErrInvalidBaseCentury, rtc.KindInvalidBaseCentury},
		{rtc.ErrInvalidDay, rtc.KindInvalidDateTime},
		{errInvalidAlarm, rtc.KindOther},
	}
	for _, c := range cases {
		if got := rtc.KindOf(c.err); got != c.want {
			t.Errorf("KindOf(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}

func TestBusErrorUnwrap(t *testing.T) {
	inner := errors.New("sda held low")
	var err error = &BusError{Err: inner}
	if !errors.Is(err, inner) {
		t.Fatalf("errors.Is failed to reach the transport error")
	}
	var be *BusError
	if !errors.As(err, &be) || be.Err != inner {
		t.Fatalf("errors.As failed to recover *BusError")
	}
}

func TestDriverErrorsImplementRTCError(t *testing.T) {
	for _, err := range []rtc.Error{
		ErrInvalidAddress,
		ErrUnsupportedSqwFrequency,
		ErrInvalidBaseCentury,
		&BusError{Err: errors.New("x")},
	} {
		if err.Error() == "" {
			t.Errorf("%T has empty message", err)
		}
	}
}
