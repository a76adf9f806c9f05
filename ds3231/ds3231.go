// Package ds3231 provides a driver for the DS3231 extremely-accurate I2C
// real-time clock.
//
// Design notes (datasheet references):
// • I2C, fixed 7-bit address 0x68; single-register reads are one combined
//   write-then-read transaction, writes are one [reg, value] transfer.
// • Timekeeping registers 0x00..0x06 hold packed BCD with a century rollover
//   bit folded into the month register; the host resolves it against a
//   configurable base century (19/20/21).
// • Every configuration-bit mutation is a read-modify-write that skips the
//   write when nothing changes.
// • Single-owner, single-threaded use is assumed; serialising access to one
//   device across goroutines is the caller's responsibility.
package ds3231

import (
	"github.com/ImplFerris/ds3231-rtc/rtc"
	"github.com/ImplFerris/ds3231-rtc/x/mathx"
	"tinygo.org/x/drivers"
)

// Compile-time capability checks.
var (
	_ rtc.RealTimeClock = (*Device)(nil)
	_ rtc.SquareWave    = (*Device)(nil)
)

// Config controls non-hardware behaviour. All fields are optional.
type Config struct {
	// Address defaults to AddressDefault if zero. The DS3231's address is
	// fixed in silicon; this exists for bus multiplexers and test rigs.
	Address uint16
	// BaseCentury anchors the device's single century-rollover bit to an
	// absolute year: representable years are BaseCentury*100 ..
	// BaseCentury*100+199. Must be 19, 20 or 21; 0 defaults to 20.
	BaseCentury uint8
}

// Device wraps an I2C connection to a DS3231. The bus handle is held
// exclusively for the duration of each call; calls never overlap.
type Device struct {
	bus         drivers.I2C
	addr        uint16
	baseCentury uint8

	// Fixed buffers to avoid per-call heap allocations.
	w [8]byte
	r [7]byte
}

// New creates a DS3231 connection with default configuration. The I2C bus
// must already be configured. This only creates the Device object; it does
// not touch the hardware.
func New(bus drivers.I2C) *Device {
	return &Device{
		bus:         bus,
		addr:        AddressDefault,
		baseCentury: defaultBaseCentury,
	}
}

// Configure applies cfg. It fails with ErrInvalidBaseCentury, and leaves the
// device untouched, if BaseCentury is outside 19..21.
func (d *Device) Configure(cfg Config) error {
	if cfg.BaseCentury != 0 {
		if !mathx.Between(cfg.BaseCentury, baseCenturyMin, baseCenturyMax) {
			return ErrInvalidBaseCentury
		}
		d.baseCentury = cfg.BaseCentury
	}
	if cfg.Address != 0 {
		d.addr = cfg.Address
	}
	return nil
}

// BaseCentury returns the configured century anchor.
func (d *Device) BaseCentury() uint8 { return d.baseCentury }

// ReadTime reads the seven timekeeping registers in one transaction and
// decodes them into a validated DateTime.
func (d *Device) ReadTime() (rtc.DateTime, error) {
	if err := d.readRegisters(regSeconds, d.r[:7]); err != nil {
		return rtc.DateTime{}, err
	}
	return decodeTime(d.r[:7], d.baseCentury)
}

// SetTime validates dt, encodes it and writes all seven timekeeping
// registers in one transfer. Validation failures occur before any bus
// access. 24-hour mode is always selected.
func (d *Device) SetTime(dt rtc.DateTime) error {
	if err := dt.Validate(); err != nil {
		return err
	}
	d.w[0] = regSeconds
	if err := encodeTime(dt, d.baseCentury, d.w[1:8]); err != nil {
		return err
	}
	if err := d.bus.Tx(d.addr, d.w[:8], nil); err != nil {
		return &BusError{Err: err}
	}
	return nil
}
