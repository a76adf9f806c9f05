package ds3231

import "github.com/ImplFerris/ds3231-rtc/rtc"

// Square-wave output control on the shared INT/SQW pin. The pin produces
// 1 Hz, 1.024 kHz, 4.096 kHz or 8.192 kHz; 32.768 kHz is only available on
// the dedicated 32kHz pin (see Enable32kHzOutput) and is rejected here.

// freqToRateBits maps a supported frequency onto the RS field of the control
// register. Anything else fails with ErrUnsupportedSqwFrequency.
func freqToRateBits(freq rtc.SquareWaveFreq) (uint8, error) {
	switch freq {
	case rtc.SquareWave1Hz:
		return 0b0000_0000, nil
	case rtc.SquareWave1024Hz:
		return 0b0000_1000, nil
	case rtc.SquareWave4096Hz:
		return 0b0001_0000, nil
	case rtc.SquareWave8192Hz:
		return 0b0001_1000, nil
	default:
		return 0, ErrUnsupportedSqwFrequency
	}
}

// EnableSquareWave clears INTCN, routing the oscillator to the INT/SQW pin
// at the last configured (or power-on default) rate. Rate bits are left
// untouched.
func (d *Device) EnableSquareWave() error {
	return d.clearRegisterBits(regControl, ctrlINTCN)
}

// DisableSquareWave sets INTCN, returning the pin to interrupt mode. The
// rate bits are retained for a future enable.
func (d *Device) DisableSquareWave() error {
	return d.setRegisterBits(regControl, ctrlINTCN)
}

// SetSquareWaveFrequency splices freq's rate bits into the control register,
// leaving INTCN and every other control bit untouched. An unsupported
// frequency fails before any bus access.
func (d *Device) SetSquareWaveFrequency(freq rtc.SquareWaveFreq) error {
	rateBits, err := freqToRateBits(freq)
	if err != nil {
		return err
	}
	return d.updateRegister(regControl, rateBits, ctrlRSMask&^rateBits)
}

// StartSquareWave sets the rate and enables the output in a single register
// transaction: one read, and one write only if either the rate bits or INTCN
// need to change.
func (d *Device) StartSquareWave(freq rtc.SquareWaveFreq) error {
	rateBits, err := freqToRateBits(freq)
	if err != nil {
		return err
	}
	return d.updateRegister(regControl, rateBits, (ctrlRSMask&^rateBits)|ctrlINTCN)
}
