package ds3231

import (
	"bytes"
	"testing"

	"tinygo.org/x/drivers"
)

// Compile-time check.
var _ drivers.I2C = (*playbackI2C)(nil)

// i2cTx is one expected transaction: the bytes the driver must write, the
// bytes to play back, and an optional injected failure.
type i2cTx struct {
	w   []byte
	r   []byte
	err error
}

// playbackI2C verifies the driver's bus traffic against a script. Every test
// must end with done() so elided writes are provable.
type playbackI2C struct {
	t      *testing.T
	script []i2cTx
	n      int
}

func newPlayback(t *testing.T, script ...i2cTx) *playbackI2C {
	return &playbackI2C{t: t, script: script}
}

func (m *playbackI2C) Tx(addr uint16, w, r []byte) error {
	m.t.Helper()
	if addr != AddressDefault {
		m.t.Fatalf("tx %d: address = %#x, want %#x", m.n, addr, AddressDefault)
	}
	if m.n >= len(m.script) {
		m.t.Fatalf("unexpected transaction %d: write % x", m.n, w)
	}
	tx := m.script[m.n]
	m.n++
	if !bytes.Equal(w, tx.w) {
		m.t.Fatalf("tx %d: write % x, want % x", m.n-1, w, tx.w)
	}
	if tx.err != nil {
		return tx.err
	}
	if len(r) != len(tx.r) {
		m.t.Fatalf("tx %d: read length %d, want %d", m.n-1, len(r), len(tx.r))
	}
	copy(r, tx.r)
	return nil
}

func (m *playbackI2C) done() {
	m.t.Helper()
	if m.n != len(m.script) {
		m.t.Fatalf("finished with %d of %d scripted transactions", m.n, len(m.script))
	}
}

func newTestDevice(t *testing.T, script ...i2cTx) (*Device, *playbackI2C) {
	m := newPlayback(t, script...)
	return New(m), m
}
