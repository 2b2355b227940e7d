//go:build tinygo

package core

import "runtime/interrupt"

// disableInterrupts masks interrupts while the tick source anchor is rewritten
func disableInterrupts() interrupt.State {
	return interrupt.Disable()
}

// restoreInterrupts puts back the mask saved by disableInterrupts
func restoreInterrupts(state interrupt.State) {
	interrupt.Restore(state)
}
