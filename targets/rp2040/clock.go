//go:build rp2040 || rp2350

package main

import (
	"runtime/volatile"
	"unsafe"
)

// Free-running 64-bit microsecond counter of the TIMER block
const (
	timerBase   = 0x40054000
	timerRawHi  = timerBase + 0x08
	timerRawLo  = timerBase + 0x0C
	microsecond = 1
	second      = 1000000 * microsecond
)

var (
	rawHi = (*volatile.Register32)(unsafe.Pointer(uintptr(timerRawHi)))
	rawLo = (*volatile.Register32)(unsafe.Pointer(uintptr(timerRawLo)))
)

// Uptime returns microseconds since reset
func Uptime() uint64 {
	hi := rawHi.Get()
	for {
		lo := rawLo.Get()
		again := rawHi.Get()
		if again == hi {
			return uint64(hi)<<32 | uint64(lo)
		}
		// Low word wrapped between the reads
		hi = again
	}
}
