package rtc

// SquareWaveFreq enumerates the square-wave output rates an RTC may offer.
// A given device typically supports only a subset; drivers reject the rest
// with an unsupported-frequency error before touching the bus.
type SquareWaveFreq uint8

const (
	// SquareWave1Hz is 1 Hz.
	SquareWave1Hz SquareWaveFreq = iota
	// SquareWave1024Hz is 1.024 kHz.
	SquareWave1024Hz
	// SquareWave4096Hz is 4.096 kHz.
	SquareWave4096Hz
	// SquareWave8192Hz is 8.192 kHz.
	SquareWave8192Hz
	// SquareWave32768Hz is 32.768 kHz. Some devices expose this only on a
	// dedicated pin rather than the configurable square-wave output.
	SquareWave32768Hz
)

// Hz returns the nominal output rate in hertz, 0 for an unknown value.
func (f SquareWaveFreq) Hz() uint32 {
	switch f {
	case SquareWave1Hz:
		return 1
	case SquareWave1024Hz:
		return 1024
	case SquareWave4096Hz:
		return 4096
	case SquareWave8192Hz:
		return 8192
	case SquareWave32768Hz:
		return 32768
	default:
		return 0
	}
}

// RealTimeClock is the minimal timekeeping capability.
type RealTimeClock interface {
	// ReadTime returns the current device time.
	ReadTime() (DateTime, error)
	// SetTime writes dt to the device after validating it.
	SetTime(dt DateTime) error
}

// SquareWave is the square-wave output capability. Enable/Disable switch the
// shared output pin between square-wave and interrupt mode without touching
// the configured rate; SetFrequency changes the rate without changing the
// mode; Start does both in a single device transaction where the hardware
// allows it.
type SquareWave interface {
	EnableSquareWave() error
	DisableSquareWave() error
	SetSquareWaveFrequency(freq SquareWaveFreq) error
	StartSquareWave(freq SquareWaveFreq) error
}
