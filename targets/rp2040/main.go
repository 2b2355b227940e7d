//go:build rp2040 || rp2350

package main

import (
	"machine"
	"time"

	"segclock/core"
)

const (
	// One register tick
	updatePeriodUS = second / core.TicksPerSecond

	// Re-anchor to the DS3231 once a minute
	rtcResyncUS = 60 * second
)

var (
	registers  *core.Registers
	display    *PIODisplay
	tickSource *core.TickSource
	rtc        *RTC
	link       *Link
)

func main() {
	// Clear any watchdog state left from a previous run
	err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
	if err != nil {
		return
	}

	InitUSB()
	InitDebugUART()

	registers = core.NewRegisters(0)
	tickSource = core.NewTickSource(registers)

	display = NewPIODisplay(registers)
	if err := display.Init(); err != nil {
		core.DebugPrintln("[CLOCK] PIO init failed: " + err.Error())
		return
	}
	core.SetPortsDriver(display)

	rtc, err = NewRTC()
	if err != nil {
		core.DebugPrintln("[CLOCK] RTC init failed: " + err.Error())
		rtc = nil
	}
	syncFromRTC(Uptime())

	link = NewLink(setTime)

	lastUpdate := Uptime()
	lastResync := lastUpdate
	dumped := false
	for {
		link.Poll()

		now := Uptime()
		if now-lastResync >= rtcResyncUS {
			syncFromRTC(now)
			lastResync = now
		}

		if now-lastUpdate >= updatePeriodUS {
			lastUpdate = now
			tickSource.Advance(now)

			status := core.UpdateClock()
			if last, ok := core.LastUpdate(); ok {
				link.Report(last.Ticks, last.Pattern, status)
			}
			if status != 0 && !dumped {
				core.DumpUpdateRing()
				dumped = true
			}
		}

		time.Sleep(100 * time.Microsecond)
	}
}

// syncFromRTC anchors the tick source to the RTC. The RTC has whole-second
// resolution, so a register already inside the RTC second keeps its phase.
// Without a valid RTC the register keeps counting from its current anchor.
func syncFromRTC(now uint64) {
	if rtc == nil {
		return
	}
	ticks, err := rtc.Ticks()
	if err != nil {
		core.DebugPrintln("[CLOCK] RTC read failed: " + err.Error())
		return
	}
	if tickSource.SyncSeconds(ticks, now) {
		core.DebugPrintln("[CLOCK] re-anchored to RTC")
	}
}

// setTime handles a set_time command from the host
func setTime(ticks int32) {
	tickSource.Sync(ticks, Uptime())
	if rtc != nil {
		if err := rtc.SetTicks(ticks); err != nil {
			core.DebugPrintln("[CLOCK] RTC write failed: " + err.Error())
		}
	}
}
