package ds3231

// Single-register I2C operations and the read-modify-write primitive every
// bit-field mutator in the driver goes through.
//
// NOTE: I2C.Tx MUST perform a write followed by a repeated-start read when
// both w and r are provided, without releasing the bus.

// readRegister is one combined write-then-read transaction.
func (d *Device) readRegister(reg uint8) (uint8, error) {
	d.w[0] = reg
	if err := d.bus.Tx(d.addr, d.w[:1], d.r[:1]); err != nil {
		return 0, &BusError{Err: err}
	}
	return d.r[0], nil
}

// readRegisters reads len(dst) consecutive registers starting at reg in one
// transaction.
func (d *Device) readRegisters(reg uint8, dst []byte) error {
	d.w[0] = reg
	if err := d.bus.Tx(d.addr, d.w[:1], dst); err != nil {
		return &BusError{Err: err}
	}
	return nil
}

// writeRegister is one [reg, value] transfer.
func (d *Device) writeRegister(reg, value uint8) error {
	d.w[0] = reg
	d.w[1] = value
	if err := d.bus.Tx(d.addr, d.w[:2], nil); err != nil {
		return &BusError{Err: err}
	}
	return nil
}

// updateRegister sets the bits in set, clears the bits in clear, and elides
// the write when the result equals the value read: an update that changes
// nothing costs exactly one read and zero writes. A read failure aborts
// before any write; a write failure is surfaced unchanged. No retry.
func (d *Device) updateRegister(reg, set, clear uint8) error {
	current, err := d.readRegister(reg)
	if err != nil {
		return err
	}
	next := (current | set) &^ clear
	if next == current {
		return nil
	}
	return d.writeRegister(reg, next)
}

func (d *Device) setRegisterBits(reg, mask uint8) error {
	return d.updateRegister(reg, mask, 0)
}

func (d *Device) clearRegisterBits(reg, mask uint8) error {
	return d.updateRegister(reg, 0, mask)
}

// ReadRegister reads a single register by raw address. Addresses past the
// documented map fail with ErrInvalidAddress before any bus access.
func (d *Device) ReadRegister(addr uint8) (uint8, error) {
	if addr > regLast {
		return 0, ErrInvalidAddress
	}
	return d.readRegister(addr)
}

// WriteRegister writes a single register by raw address, with the same
// address check as ReadRegister.
func (d *Device) WriteRegister(addr, value uint8) error {
	if addr > regLast {
		return ErrInvalidAddress
	}
	return d.writeRegister(addr, value)
}
