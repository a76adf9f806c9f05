//go:build pico

// clocktest exercises a DS3231 breakout on a Pico: sets the clock after a
// power loss, starts the 1 Hz square wave on INT/SQW, then streams the time
// over UART0.
package main

import (
	"machine"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"github.com/ImplFerris/ds3231-rtc/ds3231"
	"github.com/ImplFerris/ds3231-rtc/rtc"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(1500 * time.Millisecond)
	println("boot")

	u := uartx.UART0
	_ = u.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})

	i2c := machine.I2C0
	if err := i2c.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz}); err != nil {
		println("i2c configure:", err.Error())
		return
	}

	d := ds3231.New(i2c)
	if err := d.Configure(ds3231.Config{BaseCentury: 20}); err != nil {
		println("rtc configure:", err.Error())
		return
	}

	lost, err := d.LostTime()
	if err != nil {
		println("rtc status:", err.Error())
		return
	}
	if lost {
		println("oscillator stopped, setting build-time clock")
		dt := rtc.FromTime(time.Date(2026, time.August, 26, 12, 0, 0, 0, time.UTC))
		if err := d.SetTime(dt); err != nil {
			println("set time:", err.Error())
			return
		}
		if err := d.ClearLostTimeFlag(); err != nil {
			println("clear osf:", err.Error())
			return
		}
	}

	if err := d.StartSquareWave(rtc.SquareWave1Hz); err != nil {
		println("start sqw:", err.Error())
		return
	}
	println("1 Hz square wave running on INT/SQW")

	prev := uint8(60) // out of range so the first read always prints
	for {
		dt, err := d.ReadTime()
		if err != nil {
			println("read time:", err.Error())
			time.Sleep(time.Second)
			continue
		}
		if dt.Second != prev {
			prev = dt.Second
			line := dt.String() + "\r\n"
			_, _ = u.Write([]byte(line))
			println(dt.String())
		}
		time.Sleep(100 * time.Millisecond)
	}
}
