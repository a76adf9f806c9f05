package rtc

// ErrorKind is a stable, transport-independent classification of RTC
// failures. Callers that need to branch on failure mode should use KindOf
// rather than matching concrete error types, which may be driver-specific.
type ErrorKind uint8

const (
	// KindOther is the fallback for errors outside the RTC taxonomy.
	KindOther ErrorKind = iota
	// KindBus marks a wrapped transport (I2C/SPI) failure.
	KindBus
	// KindInvalidAddress marks a register/NVRAM address outside the device map.
	KindInvalidAddress
	// KindUnsupportedSqwFrequency marks a square-wave rate the device cannot output.
	KindUnsupportedSqwFrequency
	// KindInvalidDateTime marks calendar fields that fail range validation.
	KindInvalidDateTime
	// KindInvalidBaseCentury marks a base-century configuration outside 19..21.
	KindInvalidBaseCentury
)

func (k ErrorKind) String() string {
	switch k {
	case KindBus:
		return "bus"
	case KindInvalidAddress:
		return "invalid_address"
	case KindUnsupportedSqwFrequency:
		return "unsupported_sqw_frequency"
	case KindInvalidDateTime:
		return "invalid_datetime"
	case KindInvalidBaseCentury:
		return "invalid_base_century"
	default:
		return "other"
	}
}

// Error is implemented by every error an RTC driver returns. Kind gives the
// classification; Error() remains free-form presentation text and must not
// be used for control flow.
type Error interface {
	error
	Kind() ErrorKind
}

// KindOf extracts the ErrorKind from err, defaulting to KindOther.
// A nil error has no kind and also reports KindOther.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindOther
	}
	type kinder interface{ Kind() ErrorKind }
	if k, ok := err.(kinder); ok {
		return k.Kind()
	}
	return KindOther
}
