package ds3231

import "github.com/ImplFerris/ds3231-rtc/rtc"

// driverError is a comparable sentinel with a fixed classification.
// TinyGo-safe: no fmt, no allocation after package init.
type driverError struct {
	kind rtc.ErrorKind
	msg  string
}

func (e *driverError) Error() string       { return e.msg }
func (e *driverError) Kind() rtc.ErrorKind { return e.kind }

// Driver-detected failures. Each is raised before any further bus access
// within the failing call.
var (
	// ErrInvalidAddress: raw register address outside the documented map.
	ErrInvalidAddress = &driverError{rtc.KindInvalidAddress, "ds3231: register address out of range"}
	// ErrUnsupportedSqwFrequency: the INT/SQW pin cannot produce the rate.
	ErrUnsupportedSqwFrequency = &driverError{rtc.KindUnsupportedSqwFrequency, "ds3231: unsupported square wave frequency"}
	// ErrInvalidBaseCentury: configured base century outside 19..21.
	ErrInvalidBaseCentury = &driverError{rtc.KindInvalidBaseCentury, "ds3231: base century must be 19, 20 or 21"}

	errInvalidAlarm = &driverError{rtc.KindOther, "ds3231: unknown alarm selector"}
)

// BusError wraps a transport failure opaquely. The driver never inspects the
// inner error; Unwrap exposes it so callers can reach transport-specific
// detail via errors.Is/As. The rendered message is presentation only.
type BusError struct {
	Err error
}

func (e *BusError) Error() string       { return "ds3231: i2c transfer failed: " + e.Err.Error() }
func (e *BusError) Kind() rtc.ErrorKind { return rtc.KindBus }
func (e *BusError) Unwrap() error       { return e.Err }
