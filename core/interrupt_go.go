//go:build !tinygo

package core

// State stands in for the saved interrupt mask on regular Go
type State uintptr

// disableInterrupts is a no-op on regular Go; tick source tests run single-threaded
func disableInterrupts() State {
	return 0
}

// restoreInterrupts is a no-op on regular Go
func restoreInterrupts(State) {}
