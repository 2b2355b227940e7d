//go:build rp2040 || rp2350

package main

import (
	"errors"
	"machine"
	"time"

	"tinygo.org/x/drivers/ds3231"

	"segclock/core"
)

// DS3231 on I2C0: SDA=GP4, SCL=GP5
const rtcBusFrequency = 400 * machine.KHz

var (
	errRTCInvalid = errors.New("RTC time not valid")
	errRTCMissing = errors.New("DS3231 not responding")
)

// RTC wraps the battery-backed DS3231 that seeds the time-of-day register
type RTC struct {
	dev ds3231.Device
}

// NewRTC configures I2C0 and the DS3231 on it
func NewRTC() (*RTC, error) {
	err := machine.I2C0.Configure(machine.I2CConfig{
		Frequency: rtcBusFrequency,
		SDA:       machine.GPIO4,
		SCL:       machine.GPIO5,
	})
	if err != nil {
		return nil, err
	}

	r := &RTC{dev: ds3231.New(machine.I2C0)}
	if !r.dev.Configure() {
		return nil, errRTCMissing
	}
	return r, nil
}

// Ticks reads the RTC as a time-of-day register value
func (r *RTC) Ticks() (int32, error) {
	if !r.dev.IsTimeValid() {
		return 0, errRTCInvalid
	}
	t, err := r.dev.ReadTime()
	if err != nil {
		return 0, err
	}
	return core.TicksFromClock(t.Hour(), t.Minute(), t.Second()), nil
}

// SetTicks stores a register value as the RTC wall time, keeping the RTC date
func (r *RTC) SetTicks(ticks int32) error {
	date := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	if r.dev.IsTimeValid() {
		if now, err := r.dev.ReadTime(); err == nil {
			date = now
		}
	}

	secs := int(ticks+core.TickHalf) >> core.TickShift
	t := time.Date(date.Year(), date.Month(), date.Day(),
		0, 0, secs%core.SecondsPerDay, 0, time.UTC)
	return r.dev.SetTime(t)
}
