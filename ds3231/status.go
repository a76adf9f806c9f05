package ds3231

// Status and trim registers: oscillator health, the dedicated 32 kHz pin,
// alarm interrupt bits, die temperature and the aging trim.

// Alarm selects one of the two alarm units for interrupt-bit operations.
// Alarm match configuration itself is outside this driver's scope.
type Alarm uint8

const (
	Alarm1 Alarm = 1
	Alarm2 Alarm = 2
)

func (a Alarm) bits() (enable, flag uint8) {
	switch a {
	case Alarm1:
		return ctrlA1IE, statA1F
	case Alarm2:
		return ctrlA2IE, statA2F
	default:
		return 0, 0
	}
}

// LostTime reports the oscillator-stop flag (OSF). When set, the oscillator
// has stopped since the flag was last cleared and the time registers may be
// stale; callers typically set the time and then ClearLostTimeFlag.
func (d *Device) LostTime() (bool, error) {
	v, err := d.readRegister(regStatus)
	if err != nil {
		return false, err
	}
	return v&statOSF != 0, nil
}

// ClearLostTimeFlag clears OSF. One read, and a write only if the flag was
// set.
func (d *Device) ClearLostTimeFlag() error {
	return d.clearRegisterBits(regStatus, statOSF)
}

// Busy reports whether a TCXO temperature conversion is in progress.
func (d *Device) Busy() (bool, error) {
	v, err := d.readRegister(regStatus)
	if err != nil {
		return false, err
	}
	return v&statBSY != 0, nil
}

// Enable32kHzOutput drives the dedicated 32kHz pin. This is independent of
// the INT/SQW square-wave output.
func (d *Device) Enable32kHzOutput() error {
	return d.setRegisterBits(regStatus, statEN32kHz)
}

// Disable32kHzOutput puts the 32kHz pin into high impedance.
func (d *Device) Disable32kHzOutput() error {
	return d.clearRegisterBits(regStatus, statEN32kHz)
}

// EnableOscillator keeps the oscillator running on battery power (clears
// EOSC). The oscillator always runs on Vcc regardless of this bit.
func (d *Device) EnableOscillator() error {
	return d.clearRegisterBits(regControl, ctrlEOSC)
}

// DisableOscillator stops the oscillator when the device falls back to
// battery power (sets EOSC). Timekeeping halts until power returns.
func (d *Device) DisableOscillator() error {
	return d.setRegisterBits(regControl, ctrlEOSC)
}

// EnableBatteryBackedSquareWave keeps the square-wave/interrupt output
// running on battery power (sets BBSQW).
func (d *Device) EnableBatteryBackedSquareWave() error {
	return d.setRegisterBits(regControl, ctrlBBSQW)
}

// DisableBatteryBackedSquareWave forces the output low on battery power.
func (d *Device) DisableBatteryBackedSquareWave() error {
	return d.clearRegisterBits(regControl, ctrlBBSQW)
}

// EnableAlarmInterrupt sets the interrupt-enable bit for a. It does not
// touch INTCN; pair with DisableSquareWave to route alarms to the pin.
func (d *Device) EnableAlarmInterrupt(a Alarm) error {
	enable, _ := a.bits()
	if enable == 0 {
		return errInvalidAlarm
	}
	return d.setRegisterBits(regControl, enable)
}

// DisableAlarmInterrupt clears the interrupt-enable bit for a.
func (d *Device) DisableAlarmInterrupt(a Alarm) error {
	enable, _ := a.bits()
	if enable == 0 {
		return errInvalidAlarm
	}
	return d.clearRegisterBits(regControl, enable)
}

// AlarmTriggered reports the match flag for a. The flag stays set until
// ClearAlarmFlag.
func (d *Device) AlarmTriggered(a Alarm) (bool, error) {
	_, flag := a.bits()
	if flag == 0 {
		return false, errInvalidAlarm
	}
	v, err := d.readRegister(regStatus)
	if err != nil {
		return false, err
	}
	return v&flag != 0, nil
}

// ClearAlarmFlag clears the match flag for a.
func (d *Device) ClearAlarmFlag(a Alarm) error {
	_, flag := a.bits()
	if flag == 0 {
		return errInvalidAlarm
	}
	return d.clearRegisterBits(regStatus, flag)
}

// TemperatureMilliC returns the die temperature in milli-°C. The device
// reports a 10-bit two's-complement value at 0.25 °C/LSB, refreshed every
// 64 s (or via a forced conversion). Both registers are read in one
// transaction.
func (d *Device) TemperatureMilliC() (int32, error) {
	if err := d.readRegisters(regTempMSB, d.r[:2]); err != nil {
		return 0, err
	}
	raw := int16(int8(d.r[0]))<<2 | int16(d.r[1]>>6)
	return int32(raw) * 250, nil
}

// AgingOffset returns the signed oscillator trim value.
func (d *Device) AgingOffset() (int8, error) {
	v, err := d.readRegister(regAgingOffset)
	if err != nil {
		return 0, err
	}
	return int8(v), nil
}

// SetAgingOffset writes the signed oscillator trim value. The new trim takes
// effect at the next temperature conversion.
func (d *Device) SetAgingOffset(offset int8) error {
	return d.writeRegister(regAgingOffset, uint8(offset))
}
